package extract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/infrastructure/timeutil"
)

func fixedClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func TestPatternExtractor_Extract(t *testing.T) {
	e := NewPatternExtractor(fixedClock())

	t.Run("full query extracts every field", func(t *testing.T) {
		q, err := e.Extract(context.Background(),
			"flights from New York to Dallas from July 10 to July 13 budget 500 for 2 people")
		require.NoError(t, err)

		assert.Equal(t, "New York", q.Origin)
		assert.Equal(t, "Dallas", q.Destination)
		assert.Equal(t, "2026-07-10", q.DepartureDate)
		assert.Equal(t, "2026-07-13", q.ReturnDate)
		assert.Equal(t, 2, q.Passengers)
		require.NotNil(t, q.Budget)
		assert.Equal(t, 500.0, *q.Budget)
		require.NotNil(t, q.FlightBudget)
		assert.Equal(t, 200.0, *q.FlightBudget)
	})

	t.Run("missing fields stay at zero values", func(t *testing.T) {
		q, err := e.Extract(context.Background(), "I want to travel somewhere nice")
		require.NoError(t, err)

		assert.Empty(t, q.Origin)
		assert.Empty(t, q.DepartureDate)
		assert.Nil(t, q.Budget)
		assert.Equal(t, 1, q.Passengers)
	})

	t.Run("budget phrasing variants", func(t *testing.T) {
		for _, query := range []string{
			"from Boston to Miami budget 800",
			"from Boston to Miami budget is 800",
			"from Boston to Miami budget of $800",
		} {
			q, err := e.Extract(context.Background(), query)
			require.NoError(t, err)
			require.NotNil(t, q.Budget, query)
			assert.Equal(t, 800.0, *q.Budget, query)
			assert.Equal(t, 320.0, *q.FlightBudget, query)
		}
	})

	t.Run("ordinal day suffixes parse", func(t *testing.T) {
		q, err := e.Extract(context.Background(),
			"from Boston to Miami from August 1st to August 23rd")
		require.NoError(t, err)

		assert.Equal(t, "2026-08-01", q.DepartureDate)
		assert.Equal(t, "2026-08-23", q.ReturnDate)
	})

	t.Run("abbreviated month names parse", func(t *testing.T) {
		q, err := e.Extract(context.Background(),
			"from Boston to Miami from dec 5 to dec 12")
		require.NoError(t, err)

		assert.Equal(t, "2026-12-05", q.DepartureDate)
		assert.Equal(t, "2026-12-12", q.ReturnDate)
	})

	t.Run("unknown month leaves both dates empty", func(t *testing.T) {
		q, err := e.Extract(context.Background(),
			"from Boston to Miami from Smarch 5 to Smarch 12")
		require.NoError(t, err)

		assert.Empty(t, q.DepartureDate)
		assert.Empty(t, q.ReturnDate)
	})

	t.Run("dates anchor to the clock's year", func(t *testing.T) {
		nextYear := NewPatternExtractor(
			timeutil.NewMockClock(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))

		q, err := nextYear.Extract(context.Background(),
			"from Boston to Miami from July 10 to July 13")
		require.NoError(t, err)
		assert.Equal(t, "2027-07-10", q.DepartureDate)
	})

	t.Run("passenger phrasing variants", func(t *testing.T) {
		for query, want := range map[string]int{
			"from A to B for 3 people":   3,
			"from A to B for 2 persons":  2,
			"from A to B 4 passengers":   4,
			"from A to B with no count":  1,
		} {
			q, err := e.Extract(context.Background(), query)
			require.NoError(t, err)
			assert.Equal(t, want, q.Passengers, query)
		}
	})
}
