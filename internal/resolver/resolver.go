// Package resolver turns city names into airport codes through an ordered
// chain of resolution strategies.
package resolver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/gazetteer"
)

// Strategy is one tier of airport resolution. A strategy either produces a
// code or returns an error; the composite resolver moves to the next tier
// on any error. No strategy may fabricate a code.
type Strategy interface {
	// Name identifies the tier in logs and in Resolution.Source.
	Name() string

	// Resolve attempts to find a code for the city.
	Resolve(ctx context.Context, city string) (string, error)
}

// Resolver resolves city names by walking its strategies in order, first
// success wins, sequentially with no parallel fan-out. Gazetteer hits
// short-circuit before any strategy runs; dynamic successes are memoized
// back into the gazetteer for the rest of the process.
type Resolver struct {
	gaz            *gazetteer.Gazetteer
	strategies     []Strategy
	allowSynthetic bool
	log            zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSyntheticFallback lets resolution fall back to a fabricated <CITY>A
// code when every tier misses. The resolution is flagged as synthetic so it
// is never mistaken for a verified code.
func WithSyntheticFallback() Option {
	return func(r *Resolver) {
		r.allowSynthetic = true
	}
}

// New creates a Resolver over the given gazetteer and strategy chain.
func New(gaz *gazetteer.Gazetteer, strategies []Strategy, log zerolog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		gaz:        gaz,
		strategies: strategies,
		log:        log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve turns a city name into an airport resolution. Exhausting every
// tier returns ErrAirportNotFound naming the city; a guessed code is never
// silently presented as authoritative.
func (r *Resolver) Resolve(ctx context.Context, city string) (*domain.AirportResolution, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: empty city name", domain.ErrInvalidRequest)
	}

	if code, ok := r.gaz.Lookup(city); ok {
		r.log.Debug().Str("city", city).Str("code", code).Msg("Gazetteer hit")
		return &domain.AirportResolution{City: city, Code: code, Source: "gazetteer"}, nil
	}

	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := s.Resolve(ctx, city)
		if err != nil {
			r.log.Debug().
				Str("city", city).
				Str("strategy", s.Name()).
				Err(err).
				Msg("Resolution tier missed")
			continue
		}

		r.gaz.Memoize(city, code)
		r.log.Info().
			Str("city", city).
			Str("code", code).
			Str("strategy", s.Name()).
			Msg("Resolved airport code")
		return &domain.AirportResolution{City: city, Code: code, Source: s.Name()}, nil
	}

	if r.allowSynthetic {
		code := gazetteer.Synthetic(city)
		r.log.Warn().Str("city", city).Str("code", code).Msg("Falling back to synthetic code")
		return &domain.AirportResolution{City: city, Code: code, Source: "synthetic", Synthetic: true}, nil
	}

	return nil, fmt.Errorf("%w: no airport code for city %q", domain.ErrAirportNotFound, city)
}
