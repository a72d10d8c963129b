package resolver

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// AirportSearcher queries a remote airport search for a location code.
// Implemented by the flyscraper client.
type AirportSearcher interface {
	SearchAirport(ctx context.Context, query string) (string, error)
}

// nameAliases are hard-coded rewrites the remote search matches better.
var nameAliases = map[string]string{
	"new york":    "nyc",
	"los angeles": "la",
}

// RemoteSearchStrategy is the final resolution tier: the flight API's own
// airport search, retried with name variants when the original query
// misses.
type RemoteSearchStrategy struct {
	searcher AirportSearcher
	log      zerolog.Logger
}

// NewRemoteSearchStrategy creates the remote-search resolution tier.
func NewRemoteSearchStrategy(searcher AirportSearcher, log zerolog.Logger) *RemoteSearchStrategy {
	return &RemoteSearchStrategy{searcher: searcher, log: log}
}

// Name identifies the tier.
func (s *RemoteSearchStrategy) Name() string {
	return "flyscraper"
}

// Resolve queries the remote search with the city name and, on a miss, with
// each name variant in turn. Variant misses are not retries of the same
// request; each is a distinct query.
func (s *RemoteSearchStrategy) Resolve(ctx context.Context, city string) (string, error) {
	code, err := s.searcher.SearchAirport(ctx, city)
	if err == nil {
		return code, nil
	}
	lastErr := err

	for _, variant := range nameVariants(city) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		s.log.Debug().Str("city", city).Str("variant", variant).Msg("Trying name variant")
		code, err = s.searcher.SearchAirport(ctx, variant)
		if err == nil {
			return code, nil
		}
		lastErr = err
	}

	return "", lastErr
}

// nameVariants generates the alternate query spellings: no spaces, first
// word only, and the hard-coded aliases. The original spelling is excluded;
// the caller already tried it.
func nameVariants(city string) []string {
	lower := strings.ToLower(strings.TrimSpace(city))

	candidates := []string{
		strings.ReplaceAll(lower, " ", ""),
	}
	if i := strings.IndexByte(lower, ' '); i > 0 {
		candidates = append(candidates, lower[:i])
	}
	if alias, ok := nameAliases[lower]; ok {
		candidates = append(candidates, alias)
	}

	seen := map[string]bool{lower: true}
	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}
