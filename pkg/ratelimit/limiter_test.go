package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

func TestAcquireRelease(t *testing.T) {
	l := NewLimiter(map[string]config.RateLimitConfig{
		"openai": {RequestsPerMinute: 600, Burst: 10, MaxConcurrent: 1, AcquireTimeout: time.Second},
	})

	release, err := l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	release()

	// Slot is free again.
	release, err = l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	release()

	// Double release must not free a second slot.
	release, err = l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	release()
	release()
	r1, err := l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	defer r1()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "openai")
	require.Error(t, err)
}

func TestConcurrencyCap(t *testing.T) {
	l := NewLimiter(map[string]config.RateLimitConfig{
		"openai": {RequestsPerMinute: 60000, Burst: 100, MaxConcurrent: 3, AcquireTimeout: 5 * time.Second},
	})

	var inFlight, peak atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "openai")
			require.NoError(t, err)
			defer release()

			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestAcquireTimeoutMapsToRateLimited(t *testing.T) {
	l := NewLimiter(map[string]config.RateLimitConfig{
		"openai": {RequestsPerMinute: 60, Burst: 1, MaxConcurrent: 1, AcquireTimeout: 50 * time.Millisecond},
	})

	release, err := l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), "openai")
	require.Error(t, err)
	assert.Equal(t, provider.CodeRateLimited, provider.CodeOf(err))
}

func TestAcquireCancelMapsToCancelled(t *testing.T) {
	l := NewLimiter(map[string]config.RateLimitConfig{
		"openai": {RequestsPerMinute: 60, Burst: 1, MaxConcurrent: 1, AcquireTimeout: 5 * time.Second},
	})

	release, err := l.Acquire(context.Background(), "openai")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = l.Acquire(ctx, "openai")
	require.Error(t, err)
	assert.Equal(t, provider.CodeCancelled, provider.CodeOf(err))
}

func TestUnknownProviderPassesThrough(t *testing.T) {
	l := NewLimiter(nil)
	release, err := l.Acquire(context.Background(), "anything")
	require.NoError(t, err)
	release()
}

func TestZeroRateDeniesEvenWithBurst(t *testing.T) {
	// A shut-off provider must not serve its configured burst.
	l := NewLimiter(map[string]config.RateLimitConfig{
		"openai": {RequestsPerMinute: 0, Burst: 10, MaxConcurrent: 8, AcquireTimeout: 50 * time.Millisecond},
	})

	_, err := l.Acquire(context.Background(), "openai")
	require.Error(t, err)
	assert.Equal(t, provider.CodeRateLimited, provider.CodeOf(err))
}

func TestLinearBackoff(t *testing.T) {
	b := &Linear{Interval: 100 * time.Millisecond, Max: 250 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 200*time.Millisecond, b.NextBackOff())
	assert.Equal(t, 250*time.Millisecond, b.NextBackOff()) // capped
	assert.Equal(t, 250*time.Millisecond, b.NextBackOff())

	b.Reset()
	assert.Equal(t, 100*time.Millisecond, b.NextBackOff())
}

func TestNewExponentialGrows(t *testing.T) {
	b := NewExponential(config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
	})

	// With default jitter the first wait lands in [50ms, 150ms].
	first := b.NextBackOff()
	assert.Greater(t, first, time.Duration(0))
	assert.LessOrEqual(t, first, 200*time.Millisecond)
}

func TestNewBackOffSelectsStrategy(t *testing.T) {
	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
		BackoffStrategy: "linear",
	}

	lin, ok := NewBackOff(cfg).(*Linear)
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, lin.Interval)
	assert.Equal(t, time.Second, lin.Max)

	cfg.BackoffStrategy = "exponential"
	_, ok = NewBackOff(cfg).(*Linear)
	assert.False(t, ok)

	// Unset strategy keeps the historical exponential default.
	cfg.BackoffStrategy = ""
	_, ok = NewBackOff(cfg).(*Linear)
	assert.False(t, ok)
}
