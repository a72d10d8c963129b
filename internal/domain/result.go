package domain

import "context"

// Coordinates is a geocoded point for a city name.
type Coordinates struct {
	// Lat is the latitude in decimal degrees
	Lat float64

	// Lon is the longitude in decimal degrees
	Lon float64

	// DisplayName is the geocoder's canonical name for the place
	DisplayName string
}

// AirportCandidate is an intermediate result from the nearby-airport search.
// Candidates exist only while the resolver picks the best one.
type AirportCandidate struct {
	// Name is the airport's display name
	Name string

	// IATACode is the extracted 3-letter code; empty when none was found
	IATACode string

	// DistanceKm is the distance from the query point
	DistanceKm float64

	// Country is the airport's country name
	Country string
}

// AirportResolution is the outcome of resolving a city name to a code.
type AirportResolution struct {
	// City is the city name as resolved
	City string `json:"city"`

	// Code is the IATA-style code used to address the flight API
	Code string `json:"code"`

	// Source names the resolution tier that produced the code
	// (gazetteer, geo, flyscraper, synthetic)
	Source string `json:"source,omitempty"`

	// Synthetic marks a locally fabricated placeholder code. It is a
	// documented degraded mode, never presented as a verified code.
	Synthetic bool `json:"synthetic,omitempty"`
}

// FlightPage is a provider's normalized answer to a FlightRequest.
type FlightPage struct {
	// Offers is the normalized offer list, sorted ascending by price
	Offers []FlightOffer

	// Partial is set when the upstream reported its result set incomplete.
	// The client proceeds with what it has instead of polling to completion.
	Partial bool
}

//go:generate mockgen -source=result.go -destination=mock_provider.go -package=domain

// FlightProvider searches for flights between two resolved airports.
type FlightProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search issues the request and returns a normalized page of offers.
	// Transport and parse failures come back as wrapped ErrUpstream or
	// ErrBadResponse, never as panics.
	Search(ctx context.Context, req FlightRequest) (*FlightPage, error)
}

// SearchResult is the top-level response for one query. It is created once
// per request and never persisted.
type SearchResult struct {
	// ID identifies this search (one per request)
	ID string `json:"id"`

	// Query echoes the extracted trip parameters
	Query TripQuery `json:"query"`

	// Origin and Destination echo the resolved airports
	Origin      *AirportResolution `json:"origin,omitempty"`
	Destination *AirportResolution `json:"destination,omitempty"`

	// Offers is the normalized, price-sorted offer list
	Offers []FlightOffer `json:"offers"`

	// Count is the number of offers
	Count int `json:"count"`

	// Partial is set when the upstream reported incomplete results
	Partial bool `json:"partial,omitempty"`

	// Reply is the optional conversational summary
	Reply string `json:"reply,omitempty"`

	// Error carries the user-facing failure description, if any
	Error string `json:"error,omitempty"`
}

// NewSearchResult builds a result around the extracted query with a non-nil
// offer list.
func NewSearchResult(id string, query TripQuery) *SearchResult {
	return &SearchResult{
		ID:     id,
		Query:  query,
		Offers: []FlightOffer{},
	}
}

// SetOffers stores the offers and keeps Count consistent.
func (r *SearchResult) SetOffers(offers []FlightOffer) {
	if offers == nil {
		offers = []FlightOffer{}
	}
	r.Offers = offers
	r.Count = len(offers)
}
