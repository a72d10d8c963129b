package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
)

type stubGeocoder struct {
	coords *domain.Coordinates
	err    error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (*domain.Coordinates, error) {
	return s.coords, s.err
}

type stubNearby struct {
	candidates []domain.AirportCandidate
	err        error
}

func (s *stubNearby) FindNearbyAirports(_ context.Context, _ domain.Coordinates) ([]domain.AirportCandidate, error) {
	return s.candidates, s.err
}

func TestGeoStrategy_Resolve(t *testing.T) {
	log := zerolog.Nop()
	coords := &domain.Coordinates{Lat: 32.78, Lon: -96.8}

	t.Run("first candidate with a code wins", func(t *testing.T) {
		s := NewGeoStrategy(
			&stubGeocoder{coords: coords},
			&stubNearby{candidates: []domain.AirportCandidate{
				{Name: "Small Strip", DistanceKm: 1.0},
				{Name: "Dallas Love Field (DAL)", IATACode: "DAL", DistanceKm: 9.8},
			}},
			nil, log)

		code, err := s.Resolve(context.Background(), "Dallas")
		require.NoError(t, err)
		assert.Equal(t, "DAL", code)
	})

	t.Run("codeless candidate falls back to the local table", func(t *testing.T) {
		table, err := ReadAirportTable(strings.NewReader(tableCSV))
		require.NoError(t, err)

		s := NewGeoStrategy(
			&stubGeocoder{coords: coords},
			&stubNearby{candidates: []domain.AirportCandidate{
				{Name: "Dallas Love Field", DistanceKm: 9.8},
			}},
			table, log)

		code, err := s.Resolve(context.Background(), "Dallas")
		require.NoError(t, err)
		assert.Equal(t, "DAL", code)
	})

	t.Run("geocode failure propagates", func(t *testing.T) {
		s := NewGeoStrategy(
			&stubGeocoder{err: domain.ErrNoCoordinates},
			&stubNearby{}, nil, log)

		_, err := s.Resolve(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, domain.ErrNoCoordinates)
	})

	t.Run("no candidates in range is ErrAirportNotFound", func(t *testing.T) {
		s := NewGeoStrategy(&stubGeocoder{coords: coords}, &stubNearby{}, nil, log)

		_, err := s.Resolve(context.Background(), "Remoteville")
		assert.ErrorIs(t, err, domain.ErrAirportNotFound)
	})

	t.Run("candidates without any resolvable code fail", func(t *testing.T) {
		s := NewGeoStrategy(
			&stubGeocoder{coords: coords},
			&stubNearby{candidates: []domain.AirportCandidate{
				{Name: "Mystery Field", DistanceKm: 3.2},
			}},
			nil, log)

		_, err := s.Resolve(context.Background(), "Remoteville")
		assert.ErrorIs(t, err, domain.ErrAirportNotFound)
	})
}
