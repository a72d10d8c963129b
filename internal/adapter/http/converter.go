package http

import (
	"github.com/flightquery/flightquery/internal/domain"
)

// ToSearchResultDTO converts a domain SearchResult to its transfer shape.
func ToSearchResultDTO(result *domain.SearchResult) *SearchResultDTO {
	if result == nil {
		return nil
	}

	dto := &SearchResultDTO{
		ID: result.ID,
		Query: TripQueryDTO{
			Origin:        result.Query.Origin,
			Destination:   result.Query.Destination,
			DepartureDate: result.Query.DepartureDate,
			ReturnDate:    result.Query.ReturnDate,
			Passengers:    result.Query.Passengers,
			Budget:        result.Query.Budget,
			FlightBudget:  result.Query.FlightBudget,
		},
		Origin:      toAirportDTO(result.Origin),
		Destination: toAirportDTO(result.Destination),
		Flights:     make([]OfferDTO, len(result.Offers)),
		Count:       result.Count,
		Partial:     result.Partial,
		Reply:       result.Reply,
		Error:       result.Error,
	}

	for i := range result.Offers {
		dto.Flights[i] = toOfferDTO(&result.Offers[i])
	}

	return dto
}

func toAirportDTO(res *domain.AirportResolution) *AirportDTO {
	if res == nil {
		return nil
	}
	return &AirportDTO{
		City:      res.City,
		Code:      res.Code,
		Source:    res.Source,
		Synthetic: res.Synthetic,
	}
}

func toOfferDTO(offer *domain.FlightOffer) OfferDTO {
	dto := OfferDTO{
		Type:        string(offer.Type),
		ItineraryID: offer.ItineraryID,
		Leg:         toLegDTO(offer.Leg),
		Outbound:    toLegDTO(offer.Outbound),
		Return:      toLegDTO(offer.Return),
	}
	if offer.HasPrice() {
		price := offer.Price
		dto.Price = &price
	}
	return dto
}

func toLegDTO(leg *domain.Leg) *LegDTO {
	if leg == nil {
		return nil
	}
	return &LegDTO{
		Airline:         leg.Airline,
		FlightNumber:    leg.FlightNumber,
		DepartureTime:   leg.DepartureTime,
		ArrivalTime:     leg.ArrivalTime,
		Stops:           leg.Stops,
		DurationMinutes: leg.DurationMinutes,
	}
}
