package resolver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flightquery/flightquery/internal/domain"
)

// Geocoder converts a free-text city name to coordinates.
// Implemented by the nominatim client.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (*domain.Coordinates, error)
}

// NearbyAirportFinder retrieves distance-sorted airport candidates around a
// point. Implemented by the geonames client.
type NearbyAirportFinder interface {
	FindNearbyAirports(ctx context.Context, coords domain.Coordinates) ([]domain.AirportCandidate, error)
}

// GeoStrategy resolves a city through geocoding plus nearby-airport search,
// with the local airport table as in-tier fallback for candidates that came
// back without a recognized code.
type GeoStrategy struct {
	geocoder Geocoder
	nearby   NearbyAirportFinder
	table    *AirportTable
	log      zerolog.Logger
}

// NewGeoStrategy creates the geographic resolution tier. The table may be
// nil when no local airport file is available.
func NewGeoStrategy(geocoder Geocoder, nearby NearbyAirportFinder, table *AirportTable, log zerolog.Logger) *GeoStrategy {
	return &GeoStrategy{
		geocoder: geocoder,
		nearby:   nearby,
		table:    table,
		log:      log,
	}
}

// Name identifies the tier.
func (s *GeoStrategy) Name() string {
	return "geo"
}

// Resolve geocodes the city, walks the candidates in distance order and
// returns the first code found; candidates without an embedded code are
// retried against the local table before moving on.
func (s *GeoStrategy) Resolve(ctx context.Context, city string) (string, error) {
	coords, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return "", err
	}

	candidates, err := s.nearby.FindNearbyAirports(ctx, *coords)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no airports within range of %q", domain.ErrAirportNotFound, city)
	}

	for _, cand := range candidates {
		if cand.IATACode != "" {
			s.log.Debug().
				Str("city", city).
				Str("airport", cand.Name).
				Str("code", cand.IATACode).
				Float64("distance_km", cand.DistanceKm).
				Msg("Nearby airport carries code")
			return cand.IATACode, nil
		}

		if s.table != nil {
			if code := s.table.FindIATA(cand.Name, city); code != "" {
				s.log.Debug().
					Str("city", city).
					Str("airport", cand.Name).
					Str("code", code).
					Msg("Airport table supplied code")
				return code, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no coded airport near %q", domain.ErrAirportNotFound, city)
}
