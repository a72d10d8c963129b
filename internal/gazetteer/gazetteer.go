// Package gazetteer provides the static city-to-airport-code table with
// process-lifetime memoization of dynamically discovered codes.
package gazetteer

import (
	"strings"
	"sync"
)

// Gazetteer maps lower-cased city names to IATA-style codes. Lookups on the
// static table need no network call. Codes discovered through the resolver
// are memoized for the rest of the process; the cache is never persisted.
//
// Concurrent memoization is last-writer-wins by contract: a city always
// resolves to the same code, so overlapping writes store identical values.
type Gazetteer struct {
	mu    sync.RWMutex
	codes map[string]string
}

// New returns a Gazetteer seeded with the static city table.
func New() *Gazetteer {
	codes := make(map[string]string, len(staticCodes))
	for city, code := range staticCodes {
		codes[city] = code
	}
	return &Gazetteer{codes: codes}
}

// NewEmpty returns a Gazetteer with no seed entries. Useful in tests that
// need full control over the table.
func NewEmpty() *Gazetteer {
	return &Gazetteer{codes: make(map[string]string)}
}

// Lookup returns the code for a city by exact lower-cased match.
func (g *Gazetteer) Lookup(city string) (string, bool) {
	key := normalize(city)
	g.mu.RLock()
	defer g.mu.RUnlock()
	code, ok := g.codes[key]
	return code, ok
}

// Memoize stores a dynamically resolved code for the rest of the process.
func (g *Gazetteer) Memoize(city, code string) {
	if city == "" || code == "" {
		return
	}
	key := normalize(city)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.codes[key] = code
}

// Len returns the number of known city entries.
func (g *Gazetteer) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.codes)
}

// Synthetic fabricates a placeholder code from the city name itself,
// upper-cased with an "A" suffix. It is a degraded mode: callers must flag
// it so it is never mistaken for a verified code.
func Synthetic(city string) string {
	return strings.ToUpper(normalize(city)) + "A"
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
