package flyscraper

// Wire shapes of the FlyScraper flight search response. Only the fields the
// normalizer reads are declared; the upstream payload carries much more.

type searchResponse struct {
	Data searchData `json:"data"`
}

type searchData struct {
	Context     searchContext  `json:"context"`
	Itineraries []rawItinerary `json:"itineraries"`
}

type searchContext struct {
	// Status is "complete" or "incomplete"; incomplete results would need
	// polling the continuation endpoint for the rest
	Status string `json:"status"`
}

type rawItinerary struct {
	ID      string     `json:"id"`
	Legs    []rawLeg   `json:"legs"`
	Pricing rawPricing `json:"pricing"`
}

type rawPricing struct {
	PricingOptions []rawPricingOption `json:"pricingOptions"`
}

type rawPricingOption struct {
	Price rawPrice `json:"price"`
}

type rawPrice struct {
	// Amount arrives as number or string depending on the upstream path,
	// so it is decoded leniently
	Amount any `json:"amount"`
}

type rawLeg struct {
	Departure         rawEndpoint `json:"departure"`
	Arrival           rawEndpoint `json:"arrival"`
	StopCount         int         `json:"stopCount"`
	DurationInMinutes int         `json:"durationInMinutes"`
	Carriers          rawCarriers `json:"carriers"`
}

type rawEndpoint struct {
	Time string `json:"time"`
}

type rawCarriers struct {
	Marketing []rawCarrier `json:"marketing"`
}

type rawCarrier struct {
	Name         string `json:"name"`
	FlightNumber string `json:"flightNumber"`
}

// airportSearchResponse is the wire shape of an /airport/search answer.
type airportSearchResponse struct {
	Data []airportRecord `json:"data"`
}

type airportRecord struct {
	SkyID string `json:"skyId"`
}
