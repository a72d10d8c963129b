// Package ratelimit throttles outbound calls to external services.
// RapidAPI and GeoNames both meter free-tier usage, so every client waits on
// a shared per-host limiter before issuing a request.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the default limit applied to hosts without an explicit one.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns the default limit, generous enough for interactive
// use while staying under free-tier quotas.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

// HostLimiter maintains one token-bucket limiter per external host.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// New creates a HostLimiter with the given default limit.
func New(cfg Config) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// NewWithDefaults creates a HostLimiter with the default configuration.
func NewWithDefaults() *HostLimiter {
	return New(DefaultConfig())
}

// limiter returns the limiter for a host, creating it on first use.
func (h *HostLimiter) limiter(host string) *rate.Limiter {
	h.mu.RLock()
	l, ok := h.limiters[host]
	h.mu.RUnlock()
	if ok {
		return l
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if l, ok = h.limiters[host]; ok {
		return l
	}
	l = rate.NewLimiter(rate.Limit(h.defaults.RequestsPerSecond), h.defaults.BurstSize)
	h.limiters[host] = l
	return l
}

// SetHostLimit overrides the limit for a specific host.
func (h *HostLimiter) SetHostLimit(host string, rps float64, burst int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.limiters[host] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the host's limiter permits a request or the context is
// cancelled.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	return h.limiter(host).Wait(ctx)
}
