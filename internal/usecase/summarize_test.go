package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
)

type recordingCompleter struct {
	reply  string
	err    error
	prompt string
}

func (r *recordingCompleter) Complete(_ context.Context, prompt string) (string, error) {
	r.prompt = prompt
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func summarizedResult() *domain.SearchResult {
	flightBudget := 200.0
	result := domain.NewSearchResult("id-1", domain.TripQuery{
		Origin:        "New York",
		Destination:   "Dallas",
		DepartureDate: "2026-07-10",
		ReturnDate:    "2026-07-13",
		Passengers:    2,
		FlightBudget:  &flightBudget,
	})
	result.SetOffers([]domain.FlightOffer{
		{Type: domain.OfferRoundTrip, Price: 187.5},
		{Type: domain.OfferRoundTrip, Price: 214.0},
	})
	return result
}

func TestSummarizer_Summarize(t *testing.T) {
	log := zerolog.Nop()

	t.Run("returns the completion for a result with offers", func(t *testing.T) {
		completer := &recordingCompleter{reply: "The cheapest roundtrip is $187.50."}
		s := NewSummarizer(completer, log)

		reply := s.Summarize(context.Background(), summarizedResult())

		assert.Equal(t, "The cheapest roundtrip is $187.50.", reply)
		assert.Contains(t, completer.prompt, "New York to Dallas")
		assert.Contains(t, completer.prompt, "returning 2026-07-13")
		assert.Contains(t, completer.prompt, "$200")
		assert.Contains(t, completer.prompt, "187.5")
	})

	t.Run("no offers short-circuits without a completion call", func(t *testing.T) {
		completer := &recordingCompleter{reply: "unused"}
		s := NewSummarizer(completer, log)

		result := domain.NewSearchResult("id-2", domain.TripQuery{Origin: "A", Destination: "B"})
		reply := s.Summarize(context.Background(), result)

		assert.Contains(t, reply, "couldn't find any flights")
		assert.Empty(t, completer.prompt)
	})

	t.Run("completion failure degrades to the fallback reply", func(t *testing.T) {
		completer := &recordingCompleter{err: errors.New("overloaded")}
		s := NewSummarizer(completer, log)

		reply := s.Summarize(context.Background(), summarizedResult())
		assert.Equal(t, fallbackReply, reply)
	})

	t.Run("empty completion also degrades to the fallback", func(t *testing.T) {
		completer := &recordingCompleter{reply: ""}
		s := NewSummarizer(completer, log)

		reply := s.Summarize(context.Background(), summarizedResult())
		assert.Equal(t, fallbackReply, reply)
	})

	t.Run("only the cheapest offers reach the prompt", func(t *testing.T) {
		completer := &recordingCompleter{reply: "ok"}
		s := NewSummarizer(completer, log)

		result := summarizedResult()
		var offers []domain.FlightOffer
		for i := 0; i < 8; i++ {
			offers = append(offers, domain.FlightOffer{Type: domain.OfferOneWay, Price: float64(100 + i), ItineraryID: string(rune('a' + i))})
		}
		result.SetOffers(offers)

		_ = s.Summarize(context.Background(), result)

		require.NotEmpty(t, completer.prompt)
		assert.Contains(t, completer.prompt, `"e"`)
		assert.NotContains(t, completer.prompt, `"f"`)
	})
}
