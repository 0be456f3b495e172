package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/provider"
)

func newTestCache(t *testing.T, ttl time.Duration) (*ResponseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewWithClient(rdb, ttl, "test"), mr
}

func sampleResponse() *provider.Response {
	return &provider.Response{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		Text:      "BrandLens ranks first for AI visibility audits.",
		TokensIn:  120,
		TokensOut: 340,
		Cost:      0.0021,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	key := c.Key("openai", provider.Request{Prompt: "best audit tool?"})
	c.Set(ctx, key, sampleResponse())

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "BrandLens ranks first for AI visibility audits.", got.Text)
	assert.Equal(t, 0.0021, got.Cost)
	assert.True(t, got.Cached)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	_, err := c.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestKeyFingerprint(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	base := provider.Request{Prompt: "q", Temperature: 0.7}

	// Same inputs, same key.
	assert.Equal(t, c.Key("openai", base), c.Key("openai", base))

	// Any field change produces a different key.
	changed := base
	changed.Temperature = 0.8
	assert.NotEqual(t, c.Key("openai", base), c.Key("openai", changed))

	withModel := base
	withModel.Model = "gpt-4o"
	assert.NotEqual(t, c.Key("openai", base), c.Key("openai", withModel))

	// Provider participates too.
	assert.NotEqual(t, c.Key("openai", base), c.Key("anthropic", base))
}

func TestTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := c.Key("openai", provider.Request{Prompt: "q"})
	c.Set(ctx, key, sampleResponse())

	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestLastKnownGoodSurvivesExpiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	key := c.Key("openai", provider.Request{Prompt: "q"})
	c.Set(ctx, key, sampleResponse())

	mr.FastForward(24 * time.Hour)

	_, err := c.Get(ctx, key)
	require.ErrorIs(t, err, ErrMiss)

	lkg, err := c.LastKnownGood(ctx, key)
	require.NoError(t, err)
	assert.True(t, lkg.Cached)
	assert.Equal(t, "openai", lkg.Provider)
}

func TestWarm(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	k1 := c.Key("openai", provider.Request{Prompt: "a"})
	k2 := c.Key("openai", provider.Request{Prompt: "b"})
	n := c.Warm(ctx, map[string]*provider.Response{
		k1: sampleResponse(),
		k2: sampleResponse(),
	})
	assert.Equal(t, 2, n)

	_, err := c.Get(ctx, k1)
	assert.NoError(t, err)
	_, err = c.Get(ctx, k2)
	assert.NoError(t, err)
}

func TestNilCacheAlwaysMisses(t *testing.T) {
	var c *ResponseCache
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	c.Set(ctx, "k", sampleResponse()) // must not panic
	assert.Equal(t, 0, c.Warm(ctx, nil))
	assert.NoError(t, c.Close())
}

func TestCorruptEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)

	require.NoError(t, mr.Set("test:resp:bad", "not gzip"))
	_, err := c.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrMiss)
}
