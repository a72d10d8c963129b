// Package domain contains the core entities for the flight query service.
// These entities are provider-agnostic and carry no dependencies on the
// adapter or transport layers.
package domain

import "fmt"

// TripQuery is the structured form of a free-text travel query.
// It is produced once by an extractor and treated as immutable afterwards;
// fields the extractor could not determine stay at their zero value.
type TripQuery struct {
	// Origin is the departure city as named by the user (e.g., "New York")
	Origin string `json:"origin"`

	// Destination is the arrival city as named by the user
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the inbound date in YYYY-MM-DD format; empty for one-way trips
	ReturnDate string `json:"return_date,omitempty"`

	// Passengers is the number of travellers (default 1)
	Passengers int `json:"passengers"`

	// Budget is the total trip budget in USD; nil when not stated
	Budget *float64 `json:"budget,omitempty"`

	// FlightBudget is the share of Budget allocated to flights; nil when Budget is nil
	FlightBudget *float64 `json:"flight_budget,omitempty"`
}

// FlightBudgetShare is the fixed fraction of the total budget allocated to flights.
const FlightBudgetShare = 0.4

// Validate checks that the fields required for a flight search are present.
// A missing field is terminal for the request, not a retry condition.
func (q *TripQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin city is missing from query", ErrInvalidRequest)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination city is missing from query", ErrInvalidRequest)
	}
	if q.DepartureDate == "" {
		return fmt.Errorf("%w: departure date is missing from query", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies default values to optional fields.
func (q *TripQuery) SetDefaults() {
	if q.Passengers < 1 {
		q.Passengers = 1
	}
}

// IsRoundTrip reports whether the query includes a return date.
func (q *TripQuery) IsRoundTrip() bool {
	return q.ReturnDate != ""
}

// FlightRequest is the validated, airport-addressed form of a TripQuery,
// ready to be sent to a flight provider.
type FlightRequest struct {
	// OriginCode is the resolved IATA-style code for the origin
	OriginCode string

	// DestinationCode is the resolved IATA-style code for the destination
	DestinationCode string

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string

	// ReturnDate is the inbound date; empty for one-way requests
	ReturnDate string

	// Passengers is the number of adult travellers
	Passengers int

	// MaxPrice caps offer prices in USD; nil for no cap
	MaxPrice *float64
}

// IsRoundTrip reports whether the request includes a return date.
func (r *FlightRequest) IsRoundTrip() bool {
	return r.ReturnDate != ""
}
