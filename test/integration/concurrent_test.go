package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/test/mock"
)

// TestConcurrent_QueryRequests tests that concurrent requests are handled
// without interference; each runs the full pipeline once.
func TestConcurrent_QueryRequests(t *testing.T) {
	provider := mock.NewProvider("flyscraper").
		WithDelay(10 * time.Millisecond). // small delay to increase overlap
		WithOffers(mock.SampleOffers(3))
	ts := NewTestServer(CreateUseCase(provider))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.QueryRequest(DefaultQuery())
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		dto, err := results[i].ParseResult()
		require.NoError(t, err)
		assert.Equal(t, 3, dto.Count, "request %d should have 3 offers", i)
	}

	assert.Equal(t, numRequests, provider.CallCount())
}

// TestConcurrent_IndependentSearchIDs tests that every concurrent request
// gets its own search identifier.
func TestConcurrent_IndependentSearchIDs(t *testing.T) {
	provider := mock.NewProvider("flyscraper").WithOffers(mock.SampleOffers(1))
	ts := NewTestServer(CreateUseCase(provider))

	numRequests := 5
	var wg sync.WaitGroup
	ids := make([]string, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.QueryRequest(DefaultQuery())
			if resp.Code == http.StatusOK {
				if dto, err := resp.ParseResult(); err == nil {
					ids[idx] = dto.ID
				}
			}
		}(i)
	}

	wg.Wait()

	seen := make(map[string]bool, numRequests)
	for i, id := range ids {
		require.NotEmpty(t, id, "request %d should carry a search id", i)
		assert.False(t, seen[id], "search id %q duplicated", id)
		seen[id] = true
	}
}
