package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// extractionPromptTemplate asks the completion service for a fixed-shape
// JSON object and nothing else.
const extractionPromptTemplate = `Analyze this flight search query and extract the following information in JSON format:
Query: %q

Extract:
- origin_city: The departure city/location
- destination_city: The arrival city/location
- departure_date: Departure date (YYYY-MM-DD format)
- return_date: Return date if roundtrip (YYYY-MM-DD format, null if one-way)
- passengers: Number of passengers (default 1)
- max_price: Maximum price in USD (null if not specified)
- trip_type: "roundtrip" or "one-way"

Today's year is %d.
Return only valid JSON, no other text.`

// modelExtraction is the JSON shape the model is asked to emit.
type modelExtraction struct {
	OriginCity      string   `json:"origin_city"`
	DestinationCity string   `json:"destination_city"`
	DepartureDate   string   `json:"departure_date"`
	ReturnDate      string   `json:"return_date"`
	Passengers      int      `json:"passengers"`
	MaxPrice        *float64 `json:"max_price"`
	TripType        string   `json:"trip_type"`
}

// ModelExtractor extracts trip parameters by asking a completion service
// for structured JSON. A completion that cannot be parsed is a hard failure
// for the request; there is no retry.
type ModelExtractor struct {
	completer Completer
	year      func() int
	log       zerolog.Logger
}

// NewModelExtractor creates a ModelExtractor over the given completer.
// yearFn supplies the current year for the prompt; nil means "ask when
// extracting" is resolved by the prompt itself and zero is sent.
func NewModelExtractor(completer Completer, yearFn func() int, log zerolog.Logger) *ModelExtractor {
	return &ModelExtractor{completer: completer, year: yearFn, log: log}
}

// Extract sends the prompt and parses the completion as JSON. Any failure
// yields an empty TripQuery plus a wrapped ErrUnderstanding.
func (e *ModelExtractor) Extract(ctx context.Context, query string) (domain.TripQuery, error) {
	year := 0
	if e.year != nil {
		year = e.year()
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, query, year)

	raw, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return domain.TripQuery{}, fmt.Errorf("%w: %v", domain.ErrUnderstanding, err)
	}

	var parsed modelExtraction
	if err := json.Unmarshal([]byte(stripToJSON(raw)), &parsed); err != nil {
		e.log.Error().Str("completion", raw).Msg("Completion was not valid JSON")
		return domain.TripQuery{}, fmt.Errorf("%w: completion was not valid JSON", domain.ErrUnderstanding)
	}

	q := domain.TripQuery{
		Origin:        strings.TrimSpace(parsed.OriginCity),
		Destination:   strings.TrimSpace(parsed.DestinationCity),
		DepartureDate: parsed.DepartureDate,
		ReturnDate:    parsed.ReturnDate,
		Passengers:    parsed.Passengers,
		FlightBudget:  parsed.MaxPrice,
	}
	if strings.EqualFold(parsed.TripType, "one-way") {
		q.ReturnDate = ""
	}
	q.SetDefaults()

	e.log.Info().Interface("extracted", q).Msg("Query understood")
	return q, nil
}

// stripToJSON trims the completion down to the outermost JSON object; some
// models wrap the object in prose or code fences despite the instruction.
func stripToJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}

// Ensure ModelExtractor implements Extractor at compile time.
var _ Extractor = (*ModelExtractor)(nil)
