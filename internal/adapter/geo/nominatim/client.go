// Package nominatim implements geocoding through the OpenStreetMap
// Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// userAgent identifies the service to Nominatim, which rejects anonymous
// clients.
const userAgent = "flightquery/1.0"

// Client geocodes free-text place names to coordinates.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client against the public endpoint with the given timeout.
func New(timeout time.Duration, log zerolog.Logger) *Client {
	return NewWithBaseURL(DefaultBaseURL, timeout, log)
}

// NewWithBaseURL creates a Client against a custom endpoint, used in tests.
func NewWithBaseURL(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// location is the wire shape of one Nominatim search candidate.
type location struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a city name to coordinates using the first candidate.
// No candidates yields ErrNoCoordinates; transport and shape failures come
// back wrapped so the resolver can fall through to the next tier.
func (c *Client) Geocode(ctx context.Context, city string) (*domain.Coordinates, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode %q: %v", domain.ErrUpstream, city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocode %q: status %d", domain.ErrUpstream, city, resp.StatusCode)
	}

	var candidates []location
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("%w: geocode %q: %v", domain.ErrBadResponse, city, err)
	}

	if len(candidates) == 0 {
		c.log.Warn().Str("city", city).Msg("No coordinates found")
		return nil, fmt.Errorf("%w: %q", domain.ErrNoCoordinates, city)
	}

	first := candidates[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode %q: bad latitude %q", domain.ErrBadResponse, city, first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode %q: bad longitude %q", domain.ErrBadResponse, city, first.Lon)
	}

	c.log.Debug().
		Str("city", city).
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("Geocoded city")

	return &domain.Coordinates{Lat: lat, Lon: lon, DisplayName: first.DisplayName}, nil
}
