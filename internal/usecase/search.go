// Package usecase contains the flight query orchestration: query
// understanding, airport resolution, provider search and the optional
// conversational summary, composed into one request pipeline.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// QueryExtractor turns a natural-language query into trip parameters.
type QueryExtractor interface {
	Extract(ctx context.Context, query string) (domain.TripQuery, error)
}

// AirportResolver resolves a city name to an airport code.
type AirportResolver interface {
	Resolve(ctx context.Context, city string) (*domain.AirportResolution, error)
}

// ReplyWriter produces the conversational summary for a finished search.
type ReplyWriter interface {
	Summarize(ctx context.Context, result *domain.SearchResult) string
}

// FlightQueryUseCase is the end-to-end pipeline for one free-text query.
type FlightQueryUseCase interface {
	// Query runs extraction, resolution and search for the given text.
	// Request-level failures (incomplete query, unresolvable city,
	// provider outage) come back as wrapped sentinel errors; the process
	// itself never treats them as fatal.
	Query(ctx context.Context, text string) (*domain.SearchResult, error)
}

// flightQueryUseCase implements FlightQueryUseCase as a strictly sequential
// pipeline: each stage's failure short-circuits the rest.
type flightQueryUseCase struct {
	extractor QueryExtractor
	resolver  AirportResolver
	provider  domain.FlightProvider
	replies   ReplyWriter
	mockMode  bool
	log       zerolog.Logger
}

// Option configures the use case.
type Option func(*flightQueryUseCase)

// WithReplyWriter enables the conversational summary stage. Without it the
// result carries offers only.
func WithReplyWriter(w ReplyWriter) Option {
	return func(uc *flightQueryUseCase) {
		uc.replies = w
	}
}

// WithMockMode short-circuits the pipeline with a canned result so the
// endpoint can be exercised without upstream credentials.
func WithMockMode() Option {
	return func(uc *flightQueryUseCase) {
		uc.mockMode = true
	}
}

// NewFlightQueryUseCase creates the pipeline over the given collaborators.
func NewFlightQueryUseCase(extractor QueryExtractor, resolver AirportResolver, provider domain.FlightProvider, log zerolog.Logger, opts ...Option) FlightQueryUseCase {
	uc := &flightQueryUseCase{
		extractor: extractor,
		resolver:  resolver,
		provider:  provider,
		log:       log,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Query implements FlightQueryUseCase.
func (uc *flightQueryUseCase) Query(ctx context.Context, text string) (*domain.SearchResult, error) {
	searchID := uuid.New().String()

	if uc.mockMode {
		uc.log.Info().Str("search_id", searchID).Msg("Mock mode, returning canned result")
		return mockResult(searchID), nil
	}

	trip, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Query understanding failed")
		return failedResult(searchID, trip, err), err
	}

	if err := trip.Validate(); err != nil {
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Extracted query incomplete")
		return failedResult(searchID, trip, err), err
	}

	result := domain.NewSearchResult(searchID, trip)

	origin, err := uc.resolver.Resolve(ctx, trip.Origin)
	if err != nil {
		err = fmt.Errorf("resolving origin: %w", err)
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Origin resolution failed")
		result.Error = err.Error()
		return result, err
	}
	result.Origin = origin

	// The destination is only attempted after the origin resolved; a
	// failed origin never costs a destination lookup, and a failed
	// destination never costs a flight search.
	destination, err := uc.resolver.Resolve(ctx, trip.Destination)
	if err != nil {
		err = fmt.Errorf("resolving destination: %w", err)
		uc.log.Warn().Str("search_id", searchID).Err(err).Msg("Destination resolution failed")
		result.Error = err.Error()
		return result, err
	}
	result.Destination = destination

	req := domain.FlightRequest{
		OriginCode:      origin.Code,
		DestinationCode: destination.Code,
		DepartureDate:   trip.DepartureDate,
		ReturnDate:      trip.ReturnDate,
		Passengers:      trip.Passengers,
		MaxPrice:        trip.FlightBudget,
	}

	page, err := uc.provider.Search(ctx, req)
	if err != nil {
		uc.log.Error().
			Str("search_id", searchID).
			Str("provider", uc.provider.Name()).
			Err(err).
			Msg("Flight search failed")
		result.Error = err.Error()
		return result, err
	}

	result.SetOffers(page.Offers)
	result.Partial = page.Partial

	uc.log.Info().
		Str("search_id", searchID).
		Str("origin", origin.Code).
		Str("destination", destination.Code).
		Int("offers", result.Count).
		Bool("partial", result.Partial).
		Msg("Flight search completed")

	if uc.replies != nil {
		result.Reply = uc.replies.Summarize(ctx, result)
	}

	return result, nil
}

// failedResult builds the error-bearing result returned alongside a
// pipeline failure, so callers that render partial results have one.
func failedResult(id string, trip domain.TripQuery, err error) *domain.SearchResult {
	result := domain.NewSearchResult(id, trip)
	result.Error = err.Error()
	return result
}

// IsClientError reports whether the pipeline failure was caused by the
// request rather than an upstream dependency.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrUnderstanding)
}

// Ensure flightQueryUseCase implements FlightQueryUseCase at compile time.
var _ FlightQueryUseCase = (*flightQueryUseCase)(nil)
