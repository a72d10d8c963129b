package flyscraper

import (
	"math"
	"strconv"

	"github.com/flightquery/flightquery/internal/domain"
)

// maxItineraries caps how many upstream itineraries are processed per
// search. This is an explicit resource bound, not a pagination contract.
const maxItineraries = 10

// unknownAirline is the placeholder when the marketing carrier is absent.
const unknownAirline = "Unknown Airline"

// normalize converts raw itineraries into the domain's tagged offer
// variant, capped at maxItineraries, and re-sorts ascending by price.
// Itineraries without legs are skipped; offers with unparsable prices are
// kept and sort last.
func normalize(itineraries []rawItinerary, roundTrip bool) []domain.FlightOffer {
	if len(itineraries) > maxItineraries {
		itineraries = itineraries[:maxItineraries]
	}

	offers := make([]domain.FlightOffer, 0, len(itineraries))
	for _, it := range itineraries {
		if len(it.Legs) == 0 {
			continue
		}
		offers = append(offers, normalizeItinerary(it, roundTrip))
	}

	domain.SortOffersByPrice(offers)
	return offers
}

// normalizeItinerary decides the offer shape once: two legs with a return
// date requested is a roundtrip; anything else falls through to one-way,
// including the anomalous one-leg-with-return-date case.
func normalizeItinerary(it rawItinerary, roundTrip bool) domain.FlightOffer {
	price := extractPrice(it)

	if len(it.Legs) == 2 && roundTrip {
		outbound := normalizeLeg(it.Legs[0])
		ret := normalizeLeg(it.Legs[1])
		return domain.FlightOffer{
			Type:        domain.OfferRoundTrip,
			Price:       price,
			Outbound:    &outbound,
			Return:      &ret,
			ItineraryID: it.ID,
		}
	}

	leg := normalizeLeg(it.Legs[0])
	return domain.FlightOffer{
		Type:        domain.OfferOneWay,
		Price:       price,
		Leg:         &leg,
		ItineraryID: it.ID,
	}
}

// normalizeLeg extracts one directional segment. The first marketing
// carrier entry names the flight.
func normalizeLeg(leg rawLeg) domain.Leg {
	airline := unknownAirline
	flightNumber := ""
	if len(leg.Carriers.Marketing) > 0 {
		m := leg.Carriers.Marketing[0]
		if m.Name != "" {
			airline = m.Name
		}
		flightNumber = m.FlightNumber
	}

	return domain.Leg{
		Airline:         airline,
		FlightNumber:    flightNumber,
		DepartureTime:   leg.Departure.Time,
		ArrivalTime:     leg.Arrival.Time,
		Stops:           leg.StopCount,
		DurationMinutes: leg.DurationInMinutes,
	}
}

// extractPrice reads the first pricing option's amount. The field arrives
// as a number or a string; anything unparsable becomes NaN so the offer
// sorts after all priced offers instead of being dropped.
func extractPrice(it rawItinerary) float64 {
	if len(it.Pricing.PricingOptions) == 0 {
		return math.NaN()
	}

	switch v := it.Pricing.PricingOptions[0].Price.Amount.(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}
