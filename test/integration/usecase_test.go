package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightquery/flightquery/internal/domain"
	"github.com/flightquery/flightquery/internal/usecase"
	"github.com/flightquery/flightquery/test/mock"
)

// TestFlightQuery_EndToEnd drives the real extractor and resolver against
// the mock provider and checks the request that reaches it.
func TestFlightQuery_EndToEnd(t *testing.T) {
	provider := mock.NewProvider("flyscraper").WithOffers(mock.SampleOffers(3))
	uc := CreateUseCase(provider)

	result, err := uc.Query(context.Background(), DefaultQuery())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.Count)
	assert.Empty(t, result.Error)

	require.NotNil(t, result.Origin)
	assert.Equal(t, "NYCA", result.Origin.Code)
	require.NotNil(t, result.Destination)
	assert.Equal(t, "DFWA", result.Destination.Code)

	assert.Equal(t, 1, provider.CallCount())
	req, ok := provider.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "NYCA", req.OriginCode)
	assert.Equal(t, "DFWA", req.DestinationCode)
	assert.Equal(t, "2026-07-10", req.DepartureDate)
	assert.Equal(t, "2026-07-13", req.ReturnDate)
	assert.Equal(t, 2, req.Passengers)
	require.NotNil(t, req.MaxPrice)
	assert.Equal(t, 200.0, *req.MaxPrice)
}

// TestFlightQuery_ProviderOutage checks that an upstream failure surfaces
// as a wrapped sentinel with the result carrying the description.
func TestFlightQuery_ProviderOutage(t *testing.T) {
	provider := mock.NewProvider("flyscraper").
		WithError(fmt.Errorf("%w: flight search: status 502", domain.ErrUpstream))
	uc := CreateUseCase(provider)

	result, err := uc.Query(context.Background(), DefaultQuery())

	assert.ErrorIs(t, err, domain.ErrUpstream)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, result.Count)
	assert.Equal(t, 1, provider.CallCount())
}

// TestFlightQuery_SlowProviderTimesOut checks that a request deadline cuts
// off a slow provider.
func TestFlightQuery_SlowProviderTimesOut(t *testing.T) {
	provider := mock.NewProvider("flyscraper").
		WithDelay(200 * time.Millisecond).
		WithOffers(mock.SampleOffers(1))
	uc := CreateUseCase(provider)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := uc.Query(ctx, DefaultQuery())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestFlightQuery_UnknownCityStopsBeforeSearch checks that an unresolvable
// origin never costs a flight call.
func TestFlightQuery_UnknownCityStopsBeforeSearch(t *testing.T) {
	provider := mock.NewProvider("flyscraper").WithOffers(mock.SampleOffers(2))
	uc := CreateUseCase(provider)

	_, err := uc.Query(context.Background(),
		"from Atlantis to Dallas from July 10 to July 13 for 2 people")

	assert.ErrorIs(t, err, domain.ErrAirportNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Zero(t, provider.CallCount())
}

// TestFlightQuery_ReplyFromCompleter checks the summary stage end to end
// with the mock completer.
func TestFlightQuery_ReplyFromCompleter(t *testing.T) {
	provider := mock.NewProvider("flyscraper").WithOffers(mock.SampleOffers(2))
	completer := mock.NewCompleter("The cheapest option is $100 on Sample Airlines.")
	uc := CreateUseCase(provider,
		usecase.WithReplyWriter(usecase.NewSummarizer(completer, zerolog.Nop())))

	result, err := uc.Query(context.Background(), DefaultQuery())

	require.NoError(t, err)
	assert.Equal(t, "The cheapest option is $100 on Sample Airlines.", result.Reply)

	prompts := completer.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "New York to Dallas")
}
