// Package breaker wraps sony/gobreaker with the provider error taxonomy:
// one breaker per provider, tripped by consecutive failures, probing with
// exactly one request after the cooldown.
package breaker

import (
	"log/slog"
	"sync"

	"github.com/sony/gobreaker"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

// Set holds one circuit breaker per provider. Breakers are created
// lazily on first use so providers added at runtime (tests, mocks) work
// without registration.
type Set struct {
	cfg config.BreakerConfig
	log *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewSet builds an empty breaker set with shared tuning.
func NewSet(cfg config.BreakerConfig) *Set {
	return &Set{
		cfg:      cfg,
		log:      slog.With("component", "breaker"),
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Execute runs fn behind providerName's breaker. While the breaker is
// open, calls fail fast with PROVIDER_UNAVAILABLE and fn is never
// invoked. Terminal caller-side errors (cancel, budget, invalid request)
// do not count as provider failures.
func (s *Set) Execute(providerName string, fn func() (*provider.Response, error)) (*provider.Response, error) {
	cb := s.breaker(providerName)

	out, err := cb.Execute(func() (any, error) {
		resp, err := fn()
		if err != nil && !countsAsFailure(err) {
			// Smuggle the error past the breaker's failure counter.
			return &outcome{err: err}, nil
		}
		return &outcome{resp: resp, err: err}, err
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, provider.NewError(provider.CodeProviderUnavailable, providerName, "circuit open")
		}
		return nil, err
	}

	o := out.(*outcome)
	return o.resp, o.err
}

// State returns the current breaker state name for providerName.
func (s *Set) State(providerName string) string {
	return s.breaker(providerName).State().String()
}

type outcome struct {
	resp *provider.Response
	err  error
}

// countsAsFailure reports whether err indicates provider unhealth.
// Rate limiting is backpressure, not an outage, and caller-side errors
// say nothing about the provider.
func countsAsFailure(err error) bool {
	switch provider.CodeOf(err) {
	case provider.CodeProviderUnavailable, provider.CodeTimeout, provider.CodeQuotaExceeded:
		return true
	default:
		return false
	}
}

func (s *Set) breaker(providerName string) *gobreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, ok := s.breakers[providerName]; ok {
		return cb
	}

	threshold := uint32(s.cfg.ConsecutiveFailures)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 1, // exactly one half-open probe
		Interval:    s.cfg.Window,
		Timeout:     s.cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.log.Warn("Circuit breaker state change",
				"provider", name, "from", from.String(), "to", to.String())
		},
	})
	s.breakers[providerName] = cb
	return cb
}

// Healthy reports whether providerName's breaker currently admits
// requests (closed or half-open).
func (s *Set) Healthy(providerName string) bool {
	return s.breaker(providerName).State() != gobreaker.StateOpen
}
