package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_Wait(t *testing.T) {
	t.Run("requests within burst pass immediately", func(t *testing.T) {
		h := New(Config{RequestsPerSecond: 1, BurstSize: 3})

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, h.Wait(context.Background(), "api.example.com"))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		h := New(Config{RequestsPerSecond: 1, BurstSize: 1})

		require.NoError(t, h.Wait(context.Background(), "host-a"))

		// host-a's bucket is drained but host-b's is untouched.
		start := time.Now()
		require.NoError(t, h.Wait(context.Background(), "host-b"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		h := New(Config{RequestsPerSecond: 0.001, BurstSize: 1})

		require.NoError(t, h.Wait(context.Background(), "slow-host"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := h.Wait(ctx, "slow-host")
		assert.Error(t, err)
	})
}

func TestHostLimiter_SetHostLimit(t *testing.T) {
	h := New(Config{RequestsPerSecond: 0.001, BurstSize: 1})
	h.SetHostLimit("fast-host", 100, 10)

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Wait(context.Background(), "fast-host"))
	}
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}
