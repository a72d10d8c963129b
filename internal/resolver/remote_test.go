package resolver

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
)

// scriptedSearcher answers per-query and records the order of queries seen.
type scriptedSearcher struct {
	answers map[string]string
	queries []string
}

func (s *scriptedSearcher) SearchAirport(_ context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	if code, ok := s.answers[query]; ok {
		return code, nil
	}
	return "", domain.ErrAirportNotFound
}

func TestRemoteSearchStrategy_Resolve(t *testing.T) {
	log := zerolog.Nop()

	t.Run("original query succeeding needs no variants", func(t *testing.T) {
		searcher := &scriptedSearcher{answers: map[string]string{"Austin": "AUS"}}
		s := NewRemoteSearchStrategy(searcher, log)

		code, err := s.Resolve(context.Background(), "Austin")
		require.NoError(t, err)
		assert.Equal(t, "AUS", code)
		assert.Equal(t, []string{"Austin"}, searcher.queries)
	})

	t.Run("alias variant rescues a miss", func(t *testing.T) {
		searcher := &scriptedSearcher{answers: map[string]string{"nyc": "NYCA"}}
		s := NewRemoteSearchStrategy(searcher, log)

		code, err := s.Resolve(context.Background(), "New York")
		require.NoError(t, err)
		assert.Equal(t, "NYCA", code)
		// Original first, then no-spaces, first word, alias.
		assert.Equal(t, []string{"New York", "newyork", "new", "nyc"}, searcher.queries)
	})

	t.Run("exhausted variants return the last error", func(t *testing.T) {
		searcher := &scriptedSearcher{}
		s := NewRemoteSearchStrategy(searcher, log)

		_, err := s.Resolve(context.Background(), "Nowhere Land")
		assert.ErrorIs(t, err, domain.ErrAirportNotFound)
		assert.Equal(t, []string{"Nowhere Land", "nowhereland", "nowhere"}, searcher.queries)
	})
}

func TestNameVariants(t *testing.T) {
	tests := []struct {
		name string
		city string
		want []string
	}{
		{
			name: "multiword city gets no-space and first-word variants",
			city: "San Jose",
			want: []string{"sanjose", "san"},
		},
		{
			name: "aliased city also gets the alias",
			city: "Los Angeles",
			want: []string{"losangeles", "los", "la"},
		},
		{
			name: "single word yields nothing new",
			city: "Dallas",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nameVariants(tt.city))
		})
	}
}
