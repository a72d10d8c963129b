// Package flyscraper implements the FlyScraper (RapidAPI) flight search and
// airport search clients, and normalizes the heterogeneous response into the
// domain's tagged offer variant.
package flyscraper

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
	"github.com/flightquery/flightquery/internal/infrastructure/ratelimit"
)

// ProviderName is the unique identifier for the FlyScraper provider.
const ProviderName = "flyscraper"

// DefaultBaseURL is the RapidAPI endpoint.
const DefaultBaseURL = "https://flyscraper.p.rapidapi.com"

// rapidAPIHost is the host header RapidAPI routes on.
const rapidAPIHost = "flyscraper.p.rapidapi.com"

// airportSearchLimit caps the candidates requested from /airport/search.
const airportSearchLimit = 5

// Client talks to the FlyScraper API. It implements domain.FlightProvider
// and additionally offers airport search for the resolver's last tier.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *ratelimit.HostLimiter
	log     zerolog.Logger
}

// New creates a Client against the public endpoint.
func New(apiKey string, timeout time.Duration, limiter *ratelimit.HostLimiter, log zerolog.Logger) *Client {
	return NewWithBaseURL(DefaultBaseURL, apiKey, timeout, limiter, log)
}

// NewWithBaseURL creates a Client against a custom endpoint, used in tests.
func NewWithBaseURL(baseURL, apiKey string, timeout time.Duration, limiter *ratelimit.HostLimiter, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		log:     log,
	}
}

// Name returns the provider's unique identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Search issues a flight search and returns a normalized page of offers.
// Fixed request parameters: economy cabin, USD, server-side price sort.
// An "incomplete" upstream status is surfaced as a partial page with a
// warning, not polled to completion.
func (c *Client) Search(ctx context.Context, req domain.FlightRequest) (*domain.FlightPage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: RAPIDAPI_KEY", domain.ErrMissingCredential)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, rapidAPIHost); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("originSkyId", req.OriginCode)
	q.Set("destinationSkyId", req.DestinationCode)
	q.Set("departureDate", req.DepartureDate)
	q.Set("adults", strconv.Itoa(req.Passengers))
	q.Set("cabinClass", "economy")
	q.Set("currency", "USD")
	q.Set("sort", "price")
	if req.IsRoundTrip() {
		q.Set("returnDate", req.ReturnDate)
	}

	c.log.Info().
		Str("origin", req.OriginCode).
		Str("destination", req.DestinationCode).
		Str("departure", req.DepartureDate).
		Str("return", req.ReturnDate).
		Msg("Searching flights")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flight/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build flight search request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: flight search: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: flight search: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: flight search: %v", domain.ErrBadResponse, err)
	}

	partial := body.Data.Context.Status == "incomplete"
	if partial {
		c.log.Warn().Msg("Flight search returned incomplete results; proceeding without polling the continuation endpoint")
	}

	offers := normalize(body.Data.Itineraries, req.IsRoundTrip())

	return &domain.FlightPage{Offers: offers, Partial: partial}, nil
}

// SearchAirport looks up an airport location code for a free-text query and
// returns the first (most relevant) candidate's skyId. An empty candidate
// list is ErrAirportNotFound.
func (c *Client) SearchAirport(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: RAPIDAPI_KEY", domain.ErrMissingCredential)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, rapidAPIHost); err != nil {
			return "", err
		}
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(airportSearchLimit))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/airport/search?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build airport search request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: airport search %q: %v", domain.ErrUpstream, query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: airport search %q: status %d", domain.ErrUpstream, query, resp.StatusCode)
	}

	var body airportSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: airport search %q: %v", domain.ErrBadResponse, query, err)
	}

	if len(body.Data) == 0 || body.Data[0].SkyID == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrAirportNotFound, query)
	}

	return body.Data[0].SkyID, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)
}

// Ensure Client implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Client)(nil)
