package usecase

import "github.com/flightquery/flightquery/internal/domain"

// mockResult is the canned answer served in mock mode. The shape matches a
// real result so clients can be developed against it without credentials.
func mockResult(id string) *domain.SearchResult {
	budget := 500.0
	flightBudget := budget * domain.FlightBudgetShare

	trip := domain.TripQuery{
		Origin:        "New York",
		Destination:   "Dallas",
		DepartureDate: "2026-07-10",
		ReturnDate:    "2026-07-13",
		Passengers:    2,
		Budget:        &budget,
		FlightBudget:  &flightBudget,
	}
	result := domain.NewSearchResult(id, trip)
	result.Origin = &domain.AirportResolution{City: "New York", Code: "NYCA", Source: "gazetteer"}
	result.Destination = &domain.AirportResolution{City: "Dallas", Code: "DFWA", Source: "gazetteer"}
	result.SetOffers([]domain.FlightOffer{
		{
			Type:        domain.OfferRoundTrip,
			Price:       187.50,
			ItineraryID: "mock-itinerary-1",
			Outbound: &domain.Leg{
				Airline:         "Mock Air",
				FlightNumber:    "MA101",
				DepartureTime:   "2026-07-10T08:30:00",
				ArrivalTime:     "2026-07-10T11:45:00",
				Stops:           0,
				DurationMinutes: 195,
			},
			Return: &domain.Leg{
				Airline:         "Mock Air",
				FlightNumber:    "MA102",
				DepartureTime:   "2026-07-13T17:00:00",
				ArrivalTime:     "2026-07-13T20:10:00",
				Stops:           0,
				DurationMinutes: 190,
			},
		},
		{
			Type:        domain.OfferRoundTrip,
			Price:       214.00,
			ItineraryID: "mock-itinerary-2",
			Outbound: &domain.Leg{
				Airline:         "Sample Airlines",
				FlightNumber:    "SA220",
				DepartureTime:   "2026-07-10T06:15:00",
				ArrivalTime:     "2026-07-10T10:05:00",
				Stops:           1,
				DurationMinutes: 230,
			},
			Return: &domain.Leg{
				Airline:         "Sample Airlines",
				FlightNumber:    "SA221",
				DepartureTime:   "2026-07-13T12:40:00",
				ArrivalTime:     "2026-07-13T16:20:00",
				Stops:           1,
				DurationMinutes: 220,
			},
		},
	})
	result.Reply = "Found 2 roundtrip options from New York to Dallas. The cheapest is $187.50 with Mock Air, departing July 10 and returning July 13."
	return result
}
