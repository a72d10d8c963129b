package domain

import (
	"encoding/json"
	"math"
	"sort"
)

// OfferType discriminates the two offer shapes. It is decided once at
// normalization time and never re-derived downstream.
type OfferType string

// Offer types.
const (
	OfferOneWay    OfferType = "one-way"
	OfferRoundTrip OfferType = "roundtrip"
)

// Leg is one directional flight segment of an offer.
type Leg struct {
	// Airline is the marketing carrier's display name
	Airline string `json:"airline"`

	// FlightNumber is the marketing flight number
	FlightNumber string `json:"flight_number"`

	// DepartureTime is the scheduled departure timestamp as reported upstream
	DepartureTime string `json:"departure_time"`

	// ArrivalTime is the scheduled arrival timestamp as reported upstream
	ArrivalTime string `json:"arrival_time"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int `json:"duration_minutes"`
}

// FlightOffer is a normalized bookable itinerary. Exactly one of the leg
// layouts is populated, selected by Type: one-way offers carry Leg,
// roundtrip offers carry Outbound and Return.
type FlightOffer struct {
	// Type tags the offer shape
	Type OfferType `json:"type"`

	// Price is the total offer price in USD. NaN marks a price the upstream
	// response did not carry in parsable form; such offers sort last.
	Price float64 `json:"price"`

	// Leg is the single segment of a one-way offer
	Leg *Leg `json:"leg,omitempty"`

	// Outbound is the first segment of a roundtrip offer
	Outbound *Leg `json:"outbound,omitempty"`

	// Return is the second segment of a roundtrip offer
	Return *Leg `json:"return,omitempty"`

	// ItineraryID is the upstream itinerary identifier
	ItineraryID string `json:"itinerary_id,omitempty"`
}

// HasPrice reports whether the offer carries a parsable price.
func (o *FlightOffer) HasPrice() bool {
	return !math.IsNaN(o.Price)
}

// SortKey returns the value the offer sorts by: its price, or +Inf when the
// price could not be parsed so the offer lands after all priced offers.
func (o *FlightOffer) SortKey() float64 {
	if math.IsNaN(o.Price) {
		return math.Inf(1)
	}
	return o.Price
}

// MarshalJSON emits a null price for offers whose upstream price was not
// parsable; encoding/json rejects NaN outright.
func (o FlightOffer) MarshalJSON() ([]byte, error) {
	type alias FlightOffer
	shadow := struct {
		alias
		Price *float64 `json:"price"`
	}{alias: alias(o)}
	if !math.IsNaN(o.Price) {
		shadow.Price = &o.Price
	}
	return json.Marshal(shadow)
}

// SortOffersByPrice sorts offers ascending by price in place. Offers without
// a parsable price keep their relative order and sort after all priced offers;
// they are never dropped.
func SortOffersByPrice(offers []FlightOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].SortKey() < offers[j].SortKey()
	})
}
