package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/breaker"
	"github.com/brandlens/brandlens/pkg/cache"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/ratelimit"
)

// fastRetry keeps the retry loop sub-millisecond in tests.
func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
		BackoffStrategy: "exponential",
	}
}

func newTestGateway(t *testing.T, opts Options) *Gateway {
	t.Helper()
	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = fastRetry(1)
	}
	g, err := New(opts)
	require.NoError(t, err)
	return g
}

func newTestCache(t *testing.T, ttl time.Duration) (*cache.ResponseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewWithClient(rdb, ttl, "test"), mr
}

func unavailable(name string) error {
	return provider.NewError(provider.CodeProviderUnavailable, name, "upstream down")
}

func TestSearchFailoverOrder(t *testing.T) {
	a := provider.NewMockAdapter("a")
	b := provider.NewMockAdapter("b")
	a.FailNext(unavailable("a"))

	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a, b}})

	resp, err := g.Search(context.Background(), SearchOptions{}, provider.Request{Prompt: "best crm"})
	require.NoError(t, err)
	assert.Equal(t, "b", resp.Provider)
	assert.Equal(t, 1, a.Calls())
	assert.Equal(t, 1, b.Calls())
}

func TestSearchRetriesOnlyRetryable(t *testing.T) {
	a := provider.NewMockAdapter("a")
	a.FailNext(
		provider.NewError(provider.CodeRateLimited, "a", "slow down"),
		provider.NewError(provider.CodeTimeout, "a", "deadline"),
	)

	g := newTestGateway(t, Options{
		Adapters: []provider.Adapter{a},
		Retry:    fastRetry(3),
	})

	resp, err := g.Search(context.Background(), SearchOptions{}, provider.Request{Prompt: "best crm"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Provider)
	assert.Equal(t, 3, a.Calls())
}

func TestSearchTerminalErrorSkipsRetry(t *testing.T) {
	a := provider.NewMockAdapter("a")
	a.FailNext(provider.NewError(provider.CodeInvalidRequest, "a", "bad prompt"))

	g := newTestGateway(t, Options{
		Adapters: []provider.Adapter{a},
		Retry:    fastRetry(3),
	})

	_, err := g.Search(context.Background(), SearchOptions{}, provider.Request{Prompt: "best crm"})
	require.Error(t, err)
	assert.Equal(t, provider.CodeAllProvidersFailed, provider.CodeOf(err))
	assert.Equal(t, 1, a.Calls())
}

func TestSearchAllFailedAggregatesCauses(t *testing.T) {
	a := provider.NewMockAdapter("a")
	b := provider.NewMockAdapter("b")
	a.FailNext(provider.NewError(provider.CodeInvalidRequest, "a", "bad prompt"))
	b.FailNext(unavailable("b"))

	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a, b}})

	_, err := g.Search(context.Background(), SearchOptions{}, provider.Request{Prompt: "best crm"})
	require.Error(t, err)

	var afe *provider.AllFailedError
	require.ErrorAs(t, err, &afe)
	require.Len(t, afe.Causes, 2)
	assert.Equal(t, provider.CodeInvalidRequest, provider.CodeOf(afe.Causes["a"]))
	assert.Equal(t, provider.CodeProviderUnavailable, provider.CodeOf(afe.Causes["b"]))
}

func TestSearchCacheHitShortCircuits(t *testing.T) {
	a := provider.NewMockAdapter("a")
	rc, _ := newTestCache(t, time.Hour)

	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}, Cache: rc})
	req := provider.Request{Prompt: "best crm"}

	first, err := g.Search(context.Background(), SearchOptions{}, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := g.Search(context.Background(), SearchOptions{}, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 1, a.Calls())
}

func TestSearchLastKnownGoodFallback(t *testing.T) {
	a := provider.NewMockAdapter("a")
	rc, mr := newTestCache(t, time.Minute)

	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}, Cache: rc})
	req := provider.Request{Prompt: "best crm"}

	fresh, err := g.Search(context.Background(), SearchOptions{}, req)
	require.NoError(t, err)

	// TTL entry expires; the last-known-good copy has no TTL.
	mr.FastForward(time.Hour)

	a.FailNext(unavailable("a"))
	stale, err := g.Search(context.Background(), SearchOptions{}, req)
	require.NoError(t, err)
	assert.True(t, stale.Cached)
	assert.Equal(t, fresh.Text, stale.Text)
	assert.Equal(t, 2, a.Calls())
}

func TestSearchCircuitOpenSkipsAdapter(t *testing.T) {
	a := provider.NewMockAdapter("a")
	g := newTestGateway(t, Options{
		Adapters: []provider.Adapter{a},
		Breakers: breaker.NewSet(config.BreakerConfig{
			ConsecutiveFailures: 2,
			Window:              time.Minute,
			Cooldown:            time.Minute,
		}),
	})
	req := provider.Request{Prompt: "best crm"}

	a.FailNext(unavailable("a"), unavailable("a"))
	for range 2 {
		_, err := g.Search(context.Background(), SearchOptions{}, req)
		require.Error(t, err)
	}

	// Breaker is open now: the third call must fail fast without touching
	// the adapter.
	_, err := g.Search(context.Background(), SearchOptions{}, req)
	require.Error(t, err)
	assert.Equal(t, provider.CodeAllProvidersFailed, provider.CodeOf(err))
	assert.Equal(t, 2, a.Calls())
	assert.Equal(t, "open", g.BreakerState()["a"])
}

func TestSearchBudgetDenialSurfacesDirectly(t *testing.T) {
	// With every candidate denied for budget the caller gets the budget
	// error itself, not an all-providers-failed wrapper, so fan-out stop
	// logic can match on the code.
	a := provider.NewMockAdapter("a", provider.WithMockCost(0.01))
	accountant := costs.NewAccountant(config.BudgetConfig{DailyLimit: 0.005}, nil)

	g := newTestGateway(t, Options{
		Adapters:   []provider.Adapter{a},
		Accountant: accountant,
	})

	_, err := g.Search(context.Background(),
		SearchOptions{AuditID: "audit-1", Providers: []string{"a"}},
		provider.Request{Prompt: "best crm"})
	require.Error(t, err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(err))

	var afe *provider.AllFailedError
	assert.False(t, errors.As(err, &afe))
	assert.Equal(t, 0, a.Calls())
}

func TestSearchFailedCallReleasesReservation(t *testing.T) {
	// The estimate held at admission must not stay booked after a failed
	// call, or headroom leaks away request by request.
	a := provider.NewMockAdapter("a", provider.WithMockCost(0.4))
	accountant := costs.NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, nil)

	g := newTestGateway(t, Options{
		Adapters:   []provider.Adapter{a},
		Accountant: accountant,
	})
	req := provider.Request{Prompt: "best crm"}

	for range 3 {
		a.FailNext(provider.NewError(provider.CodeInvalidRequest, "a", "bad prompt"))
		_, err := g.Search(context.Background(), SearchOptions{}, req)
		require.Error(t, err)
	}

	// Three failed 0.40 estimates released; two real calls still fit.
	for range 2 {
		_, err := g.Search(context.Background(), SearchOptions{}, req)
		require.NoError(t, err)
	}
	_, err := g.Search(context.Background(), SearchOptions{}, req)
	require.Error(t, err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(err))
}

func TestSearchZeroRateProviderFailsOver(t *testing.T) {
	a := provider.NewMockAdapter("a")
	b := provider.NewMockAdapter("b")
	limiter := ratelimit.NewLimiter(map[string]config.RateLimitConfig{
		"a": {RequestsPerMinute: 0, Burst: 10, MaxConcurrent: 8, AcquireTimeout: 20 * time.Millisecond},
	})

	g := newTestGateway(t, Options{
		Adapters: []provider.Adapter{a, b},
		Limiter:  limiter,
	})

	resp, err := g.Search(context.Background(), SearchOptions{}, provider.Request{Prompt: "best crm"})
	require.NoError(t, err)
	assert.Equal(t, "b", resp.Provider)
	assert.Equal(t, 0, a.Calls())
}

func TestWarmCachePrimesSearch(t *testing.T) {
	a := provider.NewMockAdapter("a")
	rc, _ := newTestCache(t, time.Hour)
	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}, Cache: rc})

	req := provider.Request{Prompt: "best crm"}
	n := g.WarmCache(context.Background(), []WarmEntry{{
		Provider: "a",
		Request:  req,
		Response: &provider.Response{Provider: "a", Model: "mock-1", Text: "warmed answer", Cost: 0.001},
	}})
	assert.Equal(t, 1, n)

	resp, err := g.Search(context.Background(), SearchOptions{}, req)
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, "warmed answer", resp.Text)
	assert.Equal(t, 0, a.Calls())
}

func TestWarmCacheWithoutCache(t *testing.T) {
	a := provider.NewMockAdapter("a")
	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}})

	n := g.WarmCache(context.Background(), []WarmEntry{{
		Provider: "a",
		Request:  provider.Request{Prompt: "q"},
		Response: &provider.Response{Provider: "a", Text: "x"},
	}})
	assert.Equal(t, 0, n)
}

func TestBatchSearchOrderAndSummary(t *testing.T) {
	a := provider.NewMockAdapter("a", provider.WithMockCost(0.002))
	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}})

	items := []BatchItem{
		{ID: "q1", Request: provider.Request{Prompt: "one"}},
		{ID: "q2", Request: provider.Request{Prompt: "two"}},
		{ID: "q3", Request: provider.Request{Prompt: "three"}},
	}
	results, summary, err := g.BatchSearch(context.Background(),
		BatchOptions{Concurrency: 2}, items)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, want := range []string{"q1", "q2", "q3"} {
		assert.Equal(t, want, results[i].ID)
		require.NoError(t, results[i].Err)
	}
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.InDelta(t, 0.006, summary.TotalCost, 0.0001)
}

func TestBatchSearchStopsOnBudgetExceeded(t *testing.T) {
	a := provider.NewMockAdapter("a", provider.WithMockCost(0.001))
	accountant := costs.NewAccountant(config.BudgetConfig{DailyLimit: 0.0025}, nil)

	g := newTestGateway(t, Options{
		Adapters:   []provider.Adapter{a},
		Accountant: accountant,
	})

	items := make([]BatchItem, 5)
	for i := range items {
		items[i] = BatchItem{
			ID:      string(rune('a' + i)),
			Request: provider.Request{Prompt: "query " + string(rune('a'+i))},
		}
	}

	opts := BatchOptions{
		SearchOptions:        SearchOptions{AuditID: "audit-1", Providers: []string{"a"}},
		Concurrency:          1,
		StopOnBudgetExceeded: true,
	}
	results, summary, err := g.BatchSearch(context.Background(), opts, items)
	require.NoError(t, err)

	// Two items fit the cap, the third is denied, the rest are cancelled
	// without ever reaching the provider.
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 2, a.Calls())

	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(results[2].Err))
	for _, r := range results[3:] {
		assert.Equal(t, provider.CodeCancelled, provider.CodeOf(r.Err))
	}
}

func TestBatchSearchCancelledContext(t *testing.T) {
	a := provider.NewMockAdapter("a", provider.WithMockLatency(50*time.Millisecond))
	g := newTestGateway(t, Options{Adapters: []provider.Adapter{a}})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	items := []BatchItem{
		{ID: "q1", Request: provider.Request{Prompt: "one"}},
		{ID: "q2", Request: provider.Request{Prompt: "two"}},
	}
	_, _, err := g.BatchSearch(ctx, BatchOptions{Concurrency: 1}, items)
	require.Error(t, err)
	assert.Equal(t, provider.CodeCancelled, provider.CodeOf(err))
}
