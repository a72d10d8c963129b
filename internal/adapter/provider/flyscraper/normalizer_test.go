package flyscraper

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
)

func makeLeg(airline, flightNumber string) rawLeg {
	return rawLeg{
		Departure:         rawEndpoint{Time: "2026-07-10T08:00:00"},
		Arrival:           rawEndpoint{Time: "2026-07-10T11:00:00"},
		StopCount:         1,
		DurationInMinutes: 180,
		Carriers:          rawCarriers{Marketing: []rawCarrier{{Name: airline, FlightNumber: flightNumber}}},
	}
}

func makeItinerary(id string, price any, legs ...rawLeg) rawItinerary {
	return rawItinerary{
		ID:      id,
		Legs:    legs,
		Pricing: rawPricing{PricingOptions: []rawPricingOption{{Price: rawPrice{Amount: price}}}},
	}
}

func TestNormalize(t *testing.T) {
	t.Run("two legs with return date become a roundtrip offer", func(t *testing.T) {
		offers := normalize([]rawItinerary{
			makeItinerary("rt-1", 350.0, makeLeg("Mock Air", "MA1"), makeLeg("Mock Air", "MA2")),
		}, true)

		require.Len(t, offers, 1)
		offer := offers[0]
		assert.Equal(t, domain.OfferRoundTrip, offer.Type)
		assert.Equal(t, 350.0, offer.Price)
		assert.Nil(t, offer.Leg)
		require.NotNil(t, offer.Outbound)
		require.NotNil(t, offer.Return)
		assert.Equal(t, "MA1", offer.Outbound.FlightNumber)
		assert.Equal(t, "MA2", offer.Return.FlightNumber)
	})

	t.Run("single leg becomes a one-way offer", func(t *testing.T) {
		offers := normalize([]rawItinerary{
			makeItinerary("ow-1", 120.0, makeLeg("Mock Air", "MA1")),
		}, false)

		require.Len(t, offers, 1)
		offer := offers[0]
		assert.Equal(t, domain.OfferOneWay, offer.Type)
		require.NotNil(t, offer.Leg)
		assert.Nil(t, offer.Outbound)
		assert.Nil(t, offer.Return)
		assert.Equal(t, "Mock Air", offer.Leg.Airline)
		assert.Equal(t, 1, offer.Leg.Stops)
		assert.Equal(t, 180, offer.Leg.DurationMinutes)
	})

	t.Run("one leg with a return date requested falls through to one-way", func(t *testing.T) {
		offers := normalize([]rawItinerary{
			makeItinerary("odd-1", 99.0, makeLeg("Mock Air", "MA1")),
		}, true)

		require.Len(t, offers, 1)
		assert.Equal(t, domain.OfferOneWay, offers[0].Type)
		assert.NotNil(t, offers[0].Leg)
	})

	t.Run("itineraries without legs are skipped", func(t *testing.T) {
		offers := normalize([]rawItinerary{
			{ID: "legless"},
			makeItinerary("ok", 50.0, makeLeg("Mock Air", "MA1")),
		}, false)

		require.Len(t, offers, 1)
		assert.Equal(t, "ok", offers[0].ItineraryID)
	})

	t.Run("output is capped at ten itineraries", func(t *testing.T) {
		var itineraries []rawItinerary
		for i := 0; i < 15; i++ {
			itineraries = append(itineraries,
				makeItinerary(fmt.Sprintf("it-%d", i), float64(100+i), makeLeg("Mock Air", "MA1")))
		}

		offers := normalize(itineraries, false)
		assert.Len(t, offers, maxItineraries)
	})

	t.Run("offers come back sorted ascending with unpriced last", func(t *testing.T) {
		offers := normalize([]rawItinerary{
			makeItinerary("mid", 250.0, makeLeg("A", "1")),
			makeItinerary("no-price", "n/a", makeLeg("B", "2")),
			makeItinerary("cheap", "99.50", makeLeg("C", "3")),
		}, false)

		require.Len(t, offers, 3)
		assert.Equal(t, "cheap", offers[0].ItineraryID)
		assert.Equal(t, 99.5, offers[0].Price)
		assert.Equal(t, "mid", offers[1].ItineraryID)
		assert.Equal(t, "no-price", offers[2].ItineraryID)
		assert.False(t, offers[2].HasPrice())
	})
}

func TestNormalizeLeg_MissingCarrier(t *testing.T) {
	leg := normalizeLeg(rawLeg{
		Departure: rawEndpoint{Time: "2026-07-10T08:00:00"},
		Arrival:   rawEndpoint{Time: "2026-07-10T09:00:00"},
	})

	assert.Equal(t, unknownAirline, leg.Airline)
	assert.Empty(t, leg.FlightNumber)
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   float64
	}{
		{"numeric amount", 187.5, 187.5},
		{"string amount", "212.75", 212.75},
		{"unparsable string", "call us", math.NaN()},
		{"unexpected type", map[string]any{}, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPrice(makeItinerary("x", tt.amount, makeLeg("A", "1")))
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractPrice_NoPricingOptions(t *testing.T) {
	got := extractPrice(rawItinerary{ID: "empty", Legs: []rawLeg{makeLeg("A", "1")}})
	assert.True(t, math.IsNaN(got))
}
