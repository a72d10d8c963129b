package http

// SearchResultDTO is the data transfer object for query responses. It
// matches the expected API output format with snake_case fields.
type SearchResultDTO struct {
	ID          string         `json:"id"`
	Query       TripQueryDTO   `json:"query"`
	Origin      *AirportDTO    `json:"origin,omitempty"`
	Destination *AirportDTO    `json:"destination,omitempty"`
	Flights     []OfferDTO     `json:"flights"`
	Count       int            `json:"count"`
	Partial     bool           `json:"partial,omitempty"`
	Reply       string         `json:"reply,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// TripQueryDTO echoes the extracted trip parameters.
type TripQueryDTO struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Passengers    int      `json:"passengers"`
	Budget        *float64 `json:"budget,omitempty"`
	FlightBudget  *float64 `json:"flight_budget,omitempty"`
}

// AirportDTO echoes a resolved airport.
type AirportDTO struct {
	City      string `json:"city"`
	Code      string `json:"code"`
	Source    string `json:"source,omitempty"`
	Synthetic bool   `json:"synthetic,omitempty"`
}

// OfferDTO is the data transfer object for one flight offer. Price is a
// pointer so offers whose price could not be parsed serialize as null.
type OfferDTO struct {
	Type        string   `json:"type"`
	Price       *float64 `json:"price"`
	ItineraryID string   `json:"itinerary_id,omitempty"`

	// Leg is set for one-way offers.
	Leg *LegDTO `json:"leg,omitempty"`

	// Outbound and Return are set for roundtrip offers.
	Outbound *LegDTO `json:"outbound,omitempty"`
	Return   *LegDTO `json:"return,omitempty"`
}

// LegDTO represents one flight leg.
type LegDTO struct {
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flight_number,omitempty"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Stops           int    `json:"stops"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}
