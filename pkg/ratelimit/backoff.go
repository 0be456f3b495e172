package ratelimit

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/brandlens/brandlens/pkg/config"
)

// NewBackOff selects the retry schedule named by cfg.BackoffStrategy.
// An empty or unknown strategy falls back to exponential.
func NewBackOff(cfg config.RetryConfig) backoff.BackOff {
	if cfg.BackoffStrategy == "linear" {
		return &Linear{Interval: cfg.InitialInterval, Max: cfg.MaxInterval}
	}
	return NewExponential(cfg)
}

// NewExponential builds the gateway's retry schedule from cfg:
// exponential growth with jitter, capped at MaxInterval, never stopping
// on its own (the attempt budget is enforced by the caller).
func NewExponential(cfg config.RetryConfig) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.Multiplier = cfg.Multiplier
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Linear is a fixed-step backoff: interval, 2*interval, 3*interval, up
// to max. Used where predictable pacing matters more than contention
// spreading, e.g. waiting out a provider's advertised retry window.
type Linear struct {
	Interval time.Duration
	Max      time.Duration

	step int
}

var _ backoff.BackOff = (*Linear)(nil)

// NextBackOff returns the next wait.
func (l *Linear) NextBackOff() time.Duration {
	l.step++
	d := time.Duration(l.step) * l.Interval
	if l.Max > 0 && d > l.Max {
		return l.Max
	}
	return d
}

// Reset restarts the schedule.
func (l *Linear) Reset() {
	l.step = 0
}
