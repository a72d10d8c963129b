package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// fallbackReply is used whenever the completion service cannot produce a
// summary. The search result itself is unaffected.
const fallbackReply = "Sorry, I couldn't generate a helpful summary."

// summaryOfferLimit caps how many offers are shown to the model; the full
// list is already price-sorted so the head is the interesting part.
const summaryOfferLimit = 5

const summaryPromptTemplate = `You are a helpful travel assistant. Summarize these flight search results conversationally for the user.

Trip: %s to %s, departing %s%s, %d passenger(s).%s

Flight options (sorted by price, cheapest first):
%s

Write a short, friendly summary (2-4 sentences) highlighting the cheapest option and anything notable. Mention prices in USD. Do not invent flights that are not listed.`

// Completer is the completion-service call the summarizer depends on.
// Implemented by the groq client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Summarizer writes the conversational reply for a finished search. A
// summarization failure degrades to a fixed apology; it never fails the
// search.
type Summarizer struct {
	completer Completer
	log       zerolog.Logger
}

// NewSummarizer creates a Summarizer over the given completer.
func NewSummarizer(completer Completer, log zerolog.Logger) *Summarizer {
	return &Summarizer{completer: completer, log: log}
}

// Summarize implements ReplyWriter.
func (s *Summarizer) Summarize(ctx context.Context, result *domain.SearchResult) string {
	if result.Count == 0 {
		return fmt.Sprintf("I couldn't find any flights from %s to %s for those dates.",
			result.Query.Origin, result.Query.Destination)
	}

	reply, err := s.completer.Complete(ctx, s.buildPrompt(result))
	if err != nil || reply == "" {
		s.log.Warn().Err(err).Msg("Summary generation failed, using fallback reply")
		return fallbackReply
	}
	return reply
}

func (s *Summarizer) buildPrompt(result *domain.SearchResult) string {
	q := result.Query

	returnPart := ""
	if q.IsRoundTrip() {
		returnPart = fmt.Sprintf(", returning %s", q.ReturnDate)
	}

	budgetPart := ""
	if q.FlightBudget != nil {
		budgetPart = fmt.Sprintf(" Flight budget: $%.0f.", *q.FlightBudget)
	}

	offers := result.Offers
	if len(offers) > summaryOfferLimit {
		offers = offers[:summaryOfferLimit]
	}
	offersJSON, err := json.Marshal(offers)
	if err != nil {
		offersJSON = []byte("[]")
	}

	return fmt.Sprintf(summaryPromptTemplate,
		q.Origin, q.Destination, q.DepartureDate, returnPart, q.Passengers, budgetPart,
		string(offersJSON))
}

// Ensure Summarizer implements ReplyWriter at compile time.
var _ ReplyWriter = (*Summarizer)(nil)
