// Package gateway is the single entry point for all LLM provider calls.
// It layers budget admission, rate limiting, circuit breaking, response
// caching, bounded retry, and priority failover over the raw adapters,
// so callers see one Search method and one error taxonomy.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/brandlens/brandlens/pkg/breaker"
	"github.com/brandlens/brandlens/pkg/cache"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/ratelimit"
)

// Gateway fronts the configured provider adapters in priority order.
type Gateway struct {
	adapters   []provider.Adapter // priority order, index 0 preferred
	limiter    *ratelimit.Limiter
	breakers   *breaker.Set
	cache      *cache.ResponseCache
	accountant *costs.Accountant
	retryCfg   config.RetryConfig
	metrics    *telemetry
	log        *slog.Logger
}

// Options configures gateway construction.
type Options struct {
	Adapters   []provider.Adapter
	Limiter    *ratelimit.Limiter
	Breakers   *breaker.Set
	Cache      *cache.ResponseCache // nil disables caching
	Accountant *costs.Accountant
	Retry      config.RetryConfig
	Registerer prometheus.Registerer // nil uses the default registry
}

// New builds a gateway. At least one adapter is required.
func New(opts Options) (*Gateway, error) {
	if len(opts.Adapters) == 0 {
		return nil, errors.New("gateway requires at least one adapter")
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.NewLimiter(nil)
	}
	if opts.Breakers == nil {
		opts.Breakers = breaker.NewSet(*config.DefaultBreakerConfig())
	}
	if opts.Accountant == nil {
		opts.Accountant = costs.NewAccountant(config.BudgetConfig{}, nil)
	}
	if opts.Retry.MaxAttempts <= 0 {
		opts.Retry = *config.DefaultRetryConfig()
	}

	return &Gateway{
		adapters:   opts.Adapters,
		limiter:    opts.Limiter,
		breakers:   opts.Breakers,
		cache:      opts.Cache,
		accountant: opts.Accountant,
		retryCfg:   opts.Retry,
		metrics:    newTelemetry(opts.Registerer),
		log:        slog.With("component", "gateway"),
	}, nil
}

// SearchOptions scopes one Search call.
type SearchOptions struct {
	// AuditID attributes spend to an audit budget. Empty skips the
	// per-audit cap.
	AuditID string

	// Providers restricts and reorders the candidate list. Empty means
	// all adapters in priority order.
	Providers []string

	// SkipCache bypasses the read path; successful responses are still
	// written back.
	SkipCache bool
}

// Search issues req against the candidate providers in order. Per
// provider: cache lookup, budget admission, rate-limit acquire, then up
// to MaxAttempts breaker-guarded calls with exponential backoff on
// retryable errors. The first success wins; when every candidate is
// exhausted a last-known-good cache entry is served if present, else an
// ALL_PROVIDERS_FAILED error aggregating the per-provider causes.
func (g *Gateway) Search(ctx context.Context, opts SearchOptions, req provider.Request) (*provider.Response, error) {
	candidates := g.candidates(opts.Providers)
	if len(candidates) == 0 {
		return nil, provider.NewError(provider.CodeInvalidRequest, "", "no matching providers")
	}

	causes := make(map[string]error, len(candidates))

	for _, adapter := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, mapCtxErr(ctx, "")
		}

		name := adapter.Name()
		key := ""
		if g.cache != nil {
			key = g.cache.Key(name, req)
		}

		if !opts.SkipCache && g.cache != nil {
			if resp, err := g.cache.Get(ctx, key); err == nil {
				g.metrics.cacheHits.Inc()
				g.metrics.observe(name, "cache_hit", 0, 0)
				return resp, nil
			}
		}

		if !g.breakers.Healthy(name) {
			causes[name] = provider.NewError(provider.CodeProviderUnavailable, name, "circuit open")
			g.metrics.observe(name, "circuit_open", 0, 0)
			continue
		}

		reservation, err := g.accountant.MayIssue(name, opts.AuditID, adapter.EstimateCost(req))
		if err != nil {
			if isAuditBudget(err) {
				// The audit cap spans providers; failing over cannot help.
				g.metrics.observe(name, "budget", 0, 0)
				return nil, err
			}
			causes[name] = err
			g.metrics.observe(name, "budget", 0, 0)
			continue
		}

		resp, err := g.searchOne(ctx, adapter, req)
		if err == nil {
			reservation.Settle(resp.Cost)
			if g.cache != nil {
				g.cache.Set(ctx, key, resp)
			}
			return resp, nil
		}
		reservation.Release()

		code := provider.CodeOf(err)
		if code == provider.CodeCancelled {
			return nil, err
		}
		causes[name] = err
		g.log.Warn("Provider exhausted, failing over",
			"provider", name, "code", string(code), "error", err)
	}

	// When every candidate was denied for budget the denial is policy,
	// not provider failure: surface it as-is so fan-outs can stop instead
	// of treating it as an outage.
	if err := budgetDenial(candidates, causes); err != nil {
		return nil, err
	}

	if resp := g.lastKnownGood(ctx, candidates, req); resp != nil {
		g.log.Warn("All providers failed, serving last-known-good cache entry")
		return resp, nil
	}

	return nil, &provider.AllFailedError{Causes: causes}
}

// budgetDenial returns the representative cause when every candidate was
// denied with COST_LIMIT_EXCEEDED, nil otherwise.
func budgetDenial(candidates []provider.Adapter, causes map[string]error) error {
	if len(causes) != len(candidates) {
		return nil
	}
	var denial error
	for _, cause := range causes {
		if provider.CodeOf(cause) != provider.CodeBudgetExceeded {
			return nil
		}
		denial = cause
	}
	return denial
}

// searchOne runs the retry loop for a single adapter. Spend settlement
// is the caller's job via the admission reservation.
func (g *Gateway) searchOne(ctx context.Context, adapter provider.Adapter, req provider.Request) (*provider.Response, error) {
	name := adapter.Name()
	policy := ratelimit.NewBackOff(g.retryCfg)

	var lastErr error
	for attempt := 1; attempt <= g.retryCfg.MaxAttempts; attempt++ {
		release, err := g.limiter.Acquire(ctx, name)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := g.breakers.Execute(name, func() (*provider.Response, error) {
			return adapter.Search(ctx, req)
		})
		elapsed := time.Since(start)
		release()

		if err == nil {
			g.metrics.observe(name, "success", elapsed.Seconds(), resp.Cost)
			return resp, nil
		}

		lastErr = err
		code := provider.CodeOf(err)
		g.metrics.observe(name, string(code), elapsed.Seconds(), 0)

		if !provider.IsRetryable(err) || attempt == g.retryCfg.MaxAttempts {
			return nil, err
		}

		wait := policy.NextBackOff()
		// A provider-advertised retry window overrides the computed wait
		// when it is longer.
		if ra := provider.RetryAfterOf(err); ra > wait {
			wait = ra
		}
		g.log.Debug("Retrying provider call",
			"provider", name, "attempt", attempt, "wait", wait, "code", string(code))

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, mapCtxErr(ctx, name)
		}
	}
	return nil, lastErr
}

// lastKnownGood scans candidates for a stale cached answer.
func (g *Gateway) lastKnownGood(ctx context.Context, candidates []provider.Adapter, req provider.Request) *provider.Response {
	if g.cache == nil {
		return nil
	}
	for _, adapter := range candidates {
		key := g.cache.Key(adapter.Name(), req)
		if resp, err := g.cache.LastKnownGood(ctx, key); err == nil {
			return resp
		}
	}
	return nil
}

// WarmEntry seeds the response cache with an answer obtained outside the
// normal search path, typically replayed from a prior audit.
type WarmEntry struct {
	Provider string
	Request  provider.Request
	Response *provider.Response
}

// WarmCache preloads the response cache and returns the number of
// entries written. A nil cache makes it a no-op.
func (g *Gateway) WarmCache(ctx context.Context, entries []WarmEntry) int {
	if g.cache == nil || len(entries) == 0 {
		return 0
	}
	keyed := make(map[string]*provider.Response, len(entries))
	for _, e := range entries {
		if e.Response == nil {
			continue
		}
		keyed[g.cache.Key(e.Provider, e.Request)] = e.Response
	}
	n := g.cache.Warm(ctx, keyed)
	g.log.Info("Response cache warmed", "entries", n)
	return n
}

// candidates resolves the ordered adapter list for a request.
func (g *Gateway) candidates(names []string) []provider.Adapter {
	if len(names) == 0 {
		return g.adapters
	}

	byName := make(map[string]provider.Adapter, len(g.adapters))
	for _, a := range g.adapters {
		byName[a.Name()] = a
	}

	out := make([]provider.Adapter, 0, len(names))
	for _, name := range names {
		if a, ok := byName[name]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Providers returns the configured provider names in priority order.
func (g *Gateway) Providers() []string {
	names := make([]string, len(g.adapters))
	for i, a := range g.adapters {
		names[i] = a.Name()
	}
	return names
}

// BreakerState exposes the breaker state per provider for health output.
func (g *Gateway) BreakerState() map[string]string {
	out := make(map[string]string, len(g.adapters))
	for _, a := range g.adapters {
		out[a.Name()] = g.breakers.State(a.Name())
	}
	return out
}

func isAuditBudget(err error) bool {
	var pe *provider.Error
	return errors.As(err, &pe) &&
		pe.Code == provider.CodeBudgetExceeded &&
		pe.Message == "audit budget exhausted"
}

func mapCtxErr(ctx context.Context, providerName string) error {
	if ctx.Err() == context.DeadlineExceeded {
		return provider.WrapError(provider.CodeTimeout, providerName, ctx.Err())
	}
	return provider.WrapError(provider.CodeCancelled, providerName, ctx.Err())
}
