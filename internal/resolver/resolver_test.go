package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/gazetteer"
)

// stubStrategy is a scripted resolution tier that counts its invocations.
type stubStrategy struct {
	name  string
	code  string
	err   error
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Resolve(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.code, nil
}

func TestResolver_Resolve(t *testing.T) {
	log := zerolog.Nop()

	t.Run("gazetteer hit short-circuits all strategies", func(t *testing.T) {
		strategy := &stubStrategy{name: "geo", code: "XXX"}
		r := New(gazetteer.New(), []Strategy{strategy}, log)

		res, err := r.Resolve(context.Background(), "Dallas")
		require.NoError(t, err)
		assert.Equal(t, "DFWA", res.Code)
		assert.Equal(t, "gazetteer", res.Source)
		assert.Zero(t, strategy.calls)
	})

	t.Run("strategies run in order, first success wins", func(t *testing.T) {
		first := &stubStrategy{name: "geo", err: errors.New("tier missed")}
		second := &stubStrategy{name: "flyscraper", code: "SGF"}
		r := New(gazetteer.NewEmpty(), []Strategy{first, second}, log)

		res, err := r.Resolve(context.Background(), "Springfield")
		require.NoError(t, err)
		assert.Equal(t, "SGF", res.Code)
		assert.Equal(t, "flyscraper", res.Source)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
	})

	t.Run("successful resolution is memoized for the process", func(t *testing.T) {
		strategy := &stubStrategy{name: "geo", code: "SGF"}
		r := New(gazetteer.NewEmpty(), []Strategy{strategy}, log)

		first, err := r.Resolve(context.Background(), "Springfield")
		require.NoError(t, err)

		// The second resolution must not touch any strategy.
		second, err := r.Resolve(context.Background(), "Springfield")
		require.NoError(t, err)

		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, "gazetteer", second.Source)
		assert.Equal(t, 1, strategy.calls)
	})

	t.Run("exhausted tiers fail naming the city", func(t *testing.T) {
		strategy := &stubStrategy{name: "geo", err: errors.New("tier missed")}
		r := New(gazetteer.NewEmpty(), []Strategy{strategy}, log)

		_, err := r.Resolve(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAirportNotFound)
		assert.Contains(t, err.Error(), "Atlantis")
	})

	t.Run("synthetic fallback is opt-in and flagged", func(t *testing.T) {
		strategy := &stubStrategy{name: "geo", err: errors.New("tier missed")}
		r := New(gazetteer.NewEmpty(), []Strategy{strategy}, log, WithSyntheticFallback())

		res, err := r.Resolve(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Equal(t, "ATLANTISA", res.Code)
		assert.Equal(t, "synthetic", res.Source)
		assert.True(t, res.Synthetic)
	})

	t.Run("empty city is invalid", func(t *testing.T) {
		r := New(gazetteer.NewEmpty(), nil, log)

		_, err := r.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		strategy := &stubStrategy{name: "geo", code: "XXX"}
		r := New(gazetteer.NewEmpty(), []Strategy{strategy}, log)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Resolve(ctx, "Dallas")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, strategy.calls)
	})
}
