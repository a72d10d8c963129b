// Package mock provides test doubles for the flight query pipeline.
// These mocks are designed for integration-style tests that need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flightquery/flightquery/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors and pages for testing timeout and
// failure scenarios. Configure it with the builder pattern methods.
type Provider struct {
	name      string
	page      *domain.FlightPage
	err       error
	delay     time.Duration
	callCount int
	requests  []domain.FlightRequest
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
func NewProvider(name string) *Provider {
	return &Provider{
		name: name,
		page: &domain.FlightPage{Offers: []domain.FlightOffer{}},
	}
}

// WithPage configures the provider to return the given page.
func (p *Provider) WithPage(page *domain.FlightPage) *Provider {
	p.page = page
	return p
}

// WithOffers configures the provider to return a page with the given offers.
func (p *Provider) WithOffers(offers []domain.FlightOffer) *Provider {
	p.page = &domain.FlightPage{Offers: offers}
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider with the configured behavior.
func (p *Provider) Search(ctx context.Context, req domain.FlightRequest) (*domain.FlightPage, error) {
	p.mu.Lock()
	p.callCount++
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return p.page, nil
}

// CallCount reports how many times Search has been invoked.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastRequest returns the most recent request Search received, if any.
func (p *Provider) LastRequest() (domain.FlightRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return domain.FlightRequest{}, false
	}
	return p.requests[len(p.requests)-1], true
}

// Reset clears the recorded calls while keeping the configuration.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.requests = nil
}

// Ensure Provider implements FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// SampleOffers generates count one-way offers with ascending prices,
// already in the order a normalized page carries them.
func SampleOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)
	for i := 0; i < count; i++ {
		offers[i] = domain.FlightOffer{
			Type:        domain.OfferOneWay,
			Price:       100 + float64(i*25),
			ItineraryID: fmt.Sprintf("sample-%d", i+1),
			Leg: &domain.Leg{
				Airline:         "Sample Airlines",
				FlightNumber:    fmt.Sprintf("SA%d", 100+i),
				DepartureTime:   "2026-07-10T08:00:00",
				ArrivalTime:     "2026-07-10T11:30:00",
				Stops:           0,
				DurationMinutes: 210,
			},
		}
	}
	return offers
}

// Completer is a configurable mock of the completion-service dependency
// shared by the model extractor and the summarizer.
type Completer struct {
	reply   string
	err     error
	prompts []string
	mu      sync.Mutex
}

// NewCompleter creates a mock completer returning the given reply.
func NewCompleter(reply string) *Completer {
	return &Completer{reply: reply}
}

// WithError configures the completer to fail with the given error.
func (c *Completer) WithError(err error) *Completer {
	c.err = err
	return c
}

// Complete records the prompt and returns the configured reply or error.
func (c *Completer) Complete(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

// Prompts returns every prompt the completer has seen.
func (c *Completer) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
