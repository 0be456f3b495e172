// Package cache is the Redis-backed response cache of the provider
// gateway. Entries are keyed by a SHA-256 fingerprint of the normalized
// request, stored gzip-compressed, and expire after a configurable TTL.
// A separate last-known-good copy without TTL survives provider outages.
package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("cache miss")

// ResponseCache stores provider responses in Redis. A nil *ResponseCache
// is valid and behaves as an always-miss cache, so callers need no
// enabled checks.
type ResponseCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *slog.Logger
}

// New connects to Redis per cfg and verifies the connection. Returns
// (nil, nil) when the cache is disabled.
func New(ctx context.Context, cfg config.CacheConfig) (*ResponseCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: os.Getenv(cfg.PasswordEnv),
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &ResponseCache{
		rdb:       rdb,
		ttl:       cfg.TTL,
		namespace: cfg.Namespace,
		log:       slog.With("component", "cache"),
	}, nil
}

// NewWithClient wraps an existing client, used by tests with miniredis.
func NewWithClient(rdb *redis.Client, ttl time.Duration, namespace string) *ResponseCache {
	return &ResponseCache{
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		log:       slog.With("component", "cache"),
	}
}

// Close releases the Redis connection.
func (c *ResponseCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// Key fingerprints one (provider, request) pair. All request fields
// participate so that any semantic change produces a new key.
func (c *ResponseCache) Key(providerName string, req provider.Request) string {
	payload, _ := json.Marshal(struct {
		Provider string           `json:"provider"`
		Request  provider.Request `json:"request"`
	}{Provider: providerName, Request: req})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for key, or ErrMiss. Redis errors are
// degraded to misses with a warning so a cache outage never fails a
// request.
func (c *ResponseCache) Get(ctx context.Context, key string) (*provider.Response, error) {
	if c == nil {
		return nil, ErrMiss
	}

	raw, err := c.rdb.Get(ctx, c.fullKey("resp", key)).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		c.log.Warn("Cache read failed, treating as miss", "error", err)
		return nil, ErrMiss
	}

	resp, err := decode(raw)
	if err != nil {
		c.log.Warn("Corrupt cache entry, treating as miss", "key", key, "error", err)
		return nil, ErrMiss
	}
	resp.Cached = true
	return resp, nil
}

// Set stores resp under key with the configured TTL and refreshes the
// last-known-good copy. Write failures are logged, never surfaced.
func (c *ResponseCache) Set(ctx context.Context, key string, resp *provider.Response) {
	if c == nil {
		return
	}

	raw, err := encode(resp)
	if err != nil {
		c.log.Warn("Failed to encode response for cache", "error", err)
		return
	}

	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, c.fullKey("resp", key), raw, c.ttl)
	pipe.Set(ctx, c.fullKey("lkg", key), raw, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn("Cache write failed", "key", key, "error", err)
	}
}

// LastKnownGood returns the non-expiring copy for key, used when every
// provider has failed and a stale answer beats no answer.
func (c *ResponseCache) LastKnownGood(ctx context.Context, key string) (*provider.Response, error) {
	if c == nil {
		return nil, ErrMiss
	}

	raw, err := c.rdb.Get(ctx, c.fullKey("lkg", key)).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, ErrMiss
	}

	resp, err := decode(raw)
	if err != nil {
		return nil, ErrMiss
	}
	resp.Cached = true
	return resp, nil
}

// Warm preloads entries, typically replayed from a previous audit of the
// same company. Returns how many entries were written.
func (c *ResponseCache) Warm(ctx context.Context, entries map[string]*provider.Response) int {
	if c == nil {
		return 0
	}

	n := 0
	for key, resp := range entries {
		raw, err := encode(resp)
		if err != nil {
			continue
		}
		if err := c.rdb.Set(ctx, c.fullKey("resp", key), raw, c.ttl).Err(); err != nil {
			c.log.Warn("Cache warmup write failed", "key", key, "error", err)
			continue
		}
		n++
	}
	c.log.Info("Cache warmed", "entries", n)
	return n
}

func (c *ResponseCache) fullKey(kind, key string) string {
	return c.namespace + ":" + kind + ":" + key
}

// encode gzips the JSON form of resp.
func encode(resp *provider.Response) ([]byte, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(raw []byte) (*provider.Response, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	var resp provider.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
