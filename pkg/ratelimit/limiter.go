// Package ratelimit throttles outbound provider calls with a token
// bucket for request rate and a weighted semaphore for in-flight
// concurrency. Waiters are served in FIFO order by the semaphore.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

// providerLimiter pairs the two gates for one provider.
type providerLimiter struct {
	tokens *rate.Limiter
	slots  *semaphore.Weighted
	cfg    config.RateLimitConfig
}

// Limiter gates requests per provider. Unknown providers pass through
// ungated; rules are fixed at construction.
type Limiter struct {
	mu        sync.RWMutex
	providers map[string]*providerLimiter
}

// NewLimiter builds a limiter from per-provider rules.
func NewLimiter(rules map[string]config.RateLimitConfig) *Limiter {
	l := &Limiter{providers: make(map[string]*providerLimiter, len(rules))}
	for name, cfg := range rules {
		burst := cfg.Burst
		if cfg.RequestsPerMinute <= 0 {
			// A zero rate means the provider is shut off; a leftover burst
			// allowance must not let the first few requests through.
			burst = 0
		}
		l.providers[name] = &providerLimiter{
			tokens: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), burst),
			slots:  semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
			cfg:    cfg,
		}
	}
	return l
}

// Acquire blocks until providerName may issue a request, or until the
// acquire timeout (or ctx) expires. On success the returned release
// function MUST be called when the request finishes; on failure the
// error is RATE_LIMIT_EXCEEDED for timeout and CANCELLED for caller
// cancellation.
func (l *Limiter) Acquire(ctx context.Context, providerName string) (release func(), err error) {
	l.mu.RLock()
	pl := l.providers[providerName]
	l.mu.RUnlock()
	if pl == nil {
		return func() {}, nil
	}

	if pl.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pl.cfg.AcquireTimeout)
		defer cancel()
	}

	// Concurrency slot first so a caller never burns a rate token while
	// it still cannot run.
	if err := pl.slots.Acquire(ctx, 1); err != nil {
		return nil, mapAcquireErr(ctx, providerName, err)
	}
	if err := pl.tokens.Wait(ctx); err != nil {
		pl.slots.Release(1)
		return nil, mapAcquireErr(ctx, providerName, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { pl.slots.Release(1) })
	}, nil
}

// mapAcquireErr distinguishes a timed-out wait (backpressure, retryable)
// from caller cancellation (terminal).
func mapAcquireErr(ctx context.Context, providerName string, err error) error {
	if ctx.Err() == context.Canceled {
		return provider.WrapError(provider.CodeCancelled, providerName, err)
	}
	return provider.WrapError(provider.CodeRateLimited, providerName,
		err)
}
