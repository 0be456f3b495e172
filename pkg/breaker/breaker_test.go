package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

func testConfig() config.BreakerConfig {
	return config.BreakerConfig{
		ConsecutiveFailures: 3,
		Window:              time.Minute,
		Cooldown:            100 * time.Millisecond,
	}
}

func unavailable() (*provider.Response, error) {
	return nil, provider.NewError(provider.CodeProviderUnavailable, "p", "down")
}

func ok() (*provider.Response, error) {
	return &provider.Response{Text: "ok"}, nil
}

func TestTripsAfterConsecutiveFailures(t *testing.T) {
	s := NewSet(testConfig())

	for range 3 {
		_, err := s.Execute("p", unavailable)
		require.Error(t, err)
	}

	// Open now: fail fast without invoking fn.
	invoked := false
	_, err := s.Execute("p", func() (*provider.Response, error) {
		invoked = true
		return ok()
	})
	require.Error(t, err)
	assert.False(t, invoked)
	assert.Equal(t, provider.CodeProviderUnavailable, provider.CodeOf(err))
	assert.Contains(t, err.Error(), "circuit open")
}

func TestHalfOpenProbeRecovers(t *testing.T) {
	s := NewSet(testConfig())

	for range 3 {
		_, _ = s.Execute("p", unavailable)
	}
	assert.False(t, s.Healthy("p"))

	time.Sleep(150 * time.Millisecond)

	// One successful probe closes the breaker again.
	resp, err := s.Execute("p", ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.True(t, s.Healthy("p"))

	_, err = s.Execute("p", ok)
	assert.NoError(t, err)
}

func TestHalfOpenProbeFailureReopens(t *testing.T) {
	s := NewSet(testConfig())

	for range 3 {
		_, _ = s.Execute("p", unavailable)
	}
	time.Sleep(150 * time.Millisecond)

	_, err := s.Execute("p", unavailable)
	require.Error(t, err)
	assert.False(t, s.Healthy("p"))
}

func TestSuccessResetsConsecutiveCount(t *testing.T) {
	s := NewSet(testConfig())

	_, _ = s.Execute("p", unavailable)
	_, _ = s.Execute("p", unavailable)
	_, _ = s.Execute("p", ok)
	_, _ = s.Execute("p", unavailable)
	_, _ = s.Execute("p", unavailable)

	// Never hit 3 consecutive, so still closed.
	assert.True(t, s.Healthy("p"))
}

func TestCallerSideErrorsDoNotTrip(t *testing.T) {
	s := NewSet(testConfig())

	cancelled := func() (*provider.Response, error) {
		return nil, provider.NewError(provider.CodeCancelled, "p", "ctx cancelled")
	}
	for range 10 {
		_, err := s.Execute("p", cancelled)
		require.Error(t, err)
		assert.Equal(t, provider.CodeCancelled, provider.CodeOf(err))
	}
	assert.True(t, s.Healthy("p"))

	// Rate limiting is backpressure, not unhealth.
	limited := func() (*provider.Response, error) {
		return nil, provider.NewError(provider.CodeRateLimited, "p", "slow down")
	}
	for range 10 {
		_, _ = s.Execute("p", limited)
	}
	assert.True(t, s.Healthy("p"))
}

func TestBreakersAreIndependent(t *testing.T) {
	s := NewSet(testConfig())

	for range 3 {
		_, _ = s.Execute("a", unavailable)
	}
	assert.False(t, s.Healthy("a"))
	assert.True(t, s.Healthy("b"))

	_, err := s.Execute("b", ok)
	assert.NoError(t, err)
}

func TestUntypedErrorCountsAsFailure(t *testing.T) {
	s := NewSet(testConfig())

	plain := func() (*provider.Response, error) {
		return nil, errors.New("connection reset")
	}
	for range 3 {
		_, _ = s.Execute("p", plain)
	}
	assert.False(t, s.Healthy("p"))
}
