// Package geonames implements the nearby-airport search through the
// GeoNames findNearbyJSON API.
package geonames

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/infrastructure/ratelimit"
)

// DefaultBaseURL is the GeoNames web service endpoint.
const DefaultBaseURL = "https://secure.geonames.org"

// Search parameters fixed by contract: airports within 50 km, at most 10
// candidates, closest first.
const (
	SearchRadiusKm = 50
	MaxCandidates  = 10
)

// Client finds airports near a point. Calls require a configured GeoNames
// username; without one every call fails softly with ErrMissingCredential.
type Client struct {
	baseURL  string
	username string
	http     *http.Client
	limiter  *ratelimit.HostLimiter
	log      zerolog.Logger
}

// New creates a Client against the public endpoint.
func New(username string, timeout time.Duration, limiter *ratelimit.HostLimiter, log zerolog.Logger) *Client {
	return NewWithBaseURL(DefaultBaseURL, username, timeout, limiter, log)
}

// NewWithBaseURL creates a Client against a custom endpoint, used in tests.
func NewWithBaseURL(baseURL, username string, timeout time.Duration, limiter *ratelimit.HostLimiter, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		http:     &http.Client{Timeout: timeout},
		limiter:  limiter,
		log:      log,
	}
}

// geoNamesResponse is the wire shape of a findNearbyJSON answer.
type geoNamesResponse struct {
	Geonames []geoNamesAirport `json:"geonames"`
}

type geoNamesAirport struct {
	Name           string              `json:"name"`
	Distance       string              `json:"distance"`
	CountryName    string              `json:"countryName"`
	AlternateNames []geoNamesAltName   `json:"alternateNames"`
}

type geoNamesAltName struct {
	Lang string `json:"lang"`
	Name string `json:"name"`
}

// FindNearbyAirports returns airport candidates around the given point,
// sorted ascending by distance, each with its IATA code when one could be
// extracted from the display name or the iata-tagged alternate names.
func (c *Client) FindNearbyAirports(ctx context.Context, coords domain.Coordinates) ([]domain.AirportCandidate, error) {
	if c.username == "" {
		return nil, fmt.Errorf("%w: GEONAMES_USERNAME", domain.ErrMissingCredential)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, "geonames"); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	q.Set("featureClass", "S")
	q.Set("featureCode", "AIRP")
	q.Set("radius", strconv.Itoa(SearchRadiusKm))
	q.Set("maxRows", strconv.Itoa(MaxCandidates))
	q.Set("style", "FULL")
	q.Set("username", c.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/findNearbyJSON?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build nearby-airport request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: geonames: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geonames: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body geoNamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: geonames: %v", domain.ErrBadResponse, err)
	}

	candidates := make([]domain.AirportCandidate, 0, len(body.Geonames))
	for _, a := range body.Geonames {
		dist, _ := strconv.ParseFloat(a.Distance, 64)
		candidates = append(candidates, domain.AirportCandidate{
			Name:       a.Name,
			IATACode:   extractIATACode(a),
			DistanceKm: dist,
			Country:    a.CountryName,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	c.log.Debug().
		Int("candidates", len(candidates)).
		Float64("lat", coords.Lat).
		Float64("lon", coords.Lon).
		Msg("Nearby airport search")

	return candidates, nil
}

// extractIATACode pulls a 3-letter uppercase code out of an airport record:
// first from a "(XXX)" suffix in the display name, then from an alternate
// name tagged with the "iata" language code.
func extractIATACode(a geoNamesAirport) string {
	if open := strings.LastIndex(a.Name, "("); open >= 0 {
		if close := strings.Index(a.Name[open:], ")"); close >= 0 {
			code := a.Name[open+1 : open+close]
			if isIATACode(code) {
				return code
			}
		}
	}

	for _, alt := range a.AlternateNames {
		if alt.Lang == "iata" && alt.Name != "" {
			return alt.Name
		}
	}

	return ""
}

// isIATACode reports whether s is exactly three uppercase ASCII letters.
func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
