// Package e2e provides end-to-end test infrastructure for the audit
// pipeline: a full BrandLens instance with real PostgreSQL, real worker
// pool and streaming, and deterministic mock providers.
package e2e

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/pkg/api"
	"github.com/brandlens/brandlens/pkg/audit"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/database"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/querygen"
	"github.com/brandlens/brandlens/pkg/queue"
	"github.com/brandlens/brandlens/pkg/storage"
	testdb "github.com/brandlens/brandlens/test/database"
)

// TestApp boots a complete BrandLens instance for e2e testing.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client
	Store     *storage.Store

	// Mock providers, keyed by name, for scripting failures and latency.
	Adapters map[string]*provider.MockAdapter

	Gateway        *gateway.Gateway
	Accountant     *costs.Accountant
	EventPublisher *events.EventPublisher
	ConnManager    *events.ConnectionManager
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Server         *api.Server

	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSURL   string // e.g. "ws://127.0.0.1:54321/ws"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	providers    []string
	responder    func(provider.Request) string
	mockLatency  time.Duration
	workerCount  int
	maxAudits    int
	auditTimeout time.Duration
	orphanScan   time.Duration
	orphanAfter  time.Duration
	dbClient     *database.Client // injected (for multi-replica tests)
	podID        string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithProviders sets the mock provider names (default: openai, anthropic).
func WithProviders(names ...string) TestAppOption {
	return func(c *testAppConfig) { c.providers = names }
}

// WithResponder overrides the mock providers' answer text.
func WithResponder(fn func(provider.Request) string) TestAppOption {
	return func(c *testAppConfig) { c.responder = fn }
}

// WithMockLatency makes every provider call take d.
func WithMockLatency(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.mockLatency = d }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxConcurrentAudits caps audits processed across all replicas.
func WithMaxConcurrentAudits(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxAudits = n }
}

// WithAuditTimeout bounds one audit's wall time.
func WithAuditTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.auditTimeout = d }
}

// WithOrphanScan tightens the orphan detector for tests: scan every
// interval, requeue audits whose heartbeat is older than threshold.
func WithOrphanScan(interval, threshold time.Duration) TestAppOption {
	return func(c *testAppConfig) {
		c.orphanScan = interval
		c.orphanAfter = threshold
	}
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for claiming and orphan
// detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// defaultResponder answers every prompt with text that mentions the
// brands the e2e scenarios audit, so the analyzer has something to find.
func defaultResponder(req provider.Request) string {
	return fmt.Sprintf(
		"Acme CRM is a strong choice for startups, though Salesforce and HubSpot "+
			"remain the established leaders. For the question %q, Acme CRM is worth evaluating.",
		req.Prompt)
}

// NewTestApp creates and starts a full BrandLens test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tc := &testAppConfig{
		providers:    []string{"openai", "anthropic"},
		responder:    defaultResponder,
		workerCount:  1,
		auditTimeout: 60 * time.Second,
		orphanScan:   1 * time.Minute,
		orphanAfter:  1 * time.Minute,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.maxAudits == 0 {
		tc.maxAudits = tc.workerCount
	}

	cfg := testConfig(tc)

	// 1. Database — per-test schema unless a shared client was injected.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client
	store := storage.New(entClient)

	// 2. Mock providers behind the real gateway.
	adapters := make(map[string]*provider.MockAdapter, len(tc.providers))
	adapterList := make([]provider.Adapter, 0, len(tc.providers))
	for _, name := range tc.providers {
		mockOpts := []provider.MockOption{provider.WithMockResponder(tc.responder)}
		if tc.mockLatency > 0 {
			mockOpts = append(mockOpts, provider.WithMockLatency(tc.mockLatency))
		}
		m := provider.NewMockAdapter(name, mockOpts...)
		adapters[name] = m
		adapterList = append(adapterList, m)
	}

	accountant := costs.NewAccountant(*cfg.Budget, store)
	gw, err := gateway.New(gateway.Options{
		Adapters:   adapterList,
		Accountant: accountant,
		Retry:      *cfg.Retry,
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	// 3. Streaming infrastructure — real, backed by the test DB plus a
	// dedicated LISTEN connection.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	eventLog := events.NewEventLog(dbClient.DB())
	connManager := events.NewConnectionManager(eventLog, 5*time.Second)

	ctx := context.Background()
	notifyListener := events.NewNotifyListener(testdb.BaseDSN(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.BindListener(notifyListener)

	// 4. Pipeline executor and worker pool.
	executor, err := audit.NewExecutor(audit.Options{
		Store:      store,
		Generator:  querygen.NewBuiltinGenerator(),
		Gateway:    gw,
		Accountant: accountant,
		Events:     eventPublisher,
		Config:     cfg.Audit,
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, cfg.Queue, executor, eventPublisher)
	require.NoError(t, workerPool.Start(ctx))

	// 5. HTTP server on a random port.
	server := api.NewServer(api.Options{
		Store:       store,
		DBClient:    dbClient,
		WorkerPool:  workerPool,
		ConnManager: connManager,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{Handler: server.Router()}
	go func() { _ = srv.Serve(ln) }()

	addr := ln.Addr().String()

	app := &TestApp{
		Config:         cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		Store:          store,
		Adapters:       adapters,
		Gateway:        gw,
		Accountant:     accountant,
		EventPublisher: eventPublisher,
		ConnManager:    connManager,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", addr),
		WSURL:          fmt.Sprintf("ws://%s/ws", addr),
		t:              t,
	}

	// Cleanup in reverse-creation order.
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		workerPool.Stop()
		notifyListener.Stop(shutdownCtx)
	})

	return app
}

// testConfig builds a config tuned for fast tests: few queries, tight
// polling, near-immediate retries.
func testConfig(tc *testAppConfig) *config.Config {
	cfg := &config.Config{
		Budget:    config.DefaultBudgetConfig(),
		Breaker:   config.DefaultBreakerConfig(),
		Cache:     config.DefaultCacheConfig(),
		Retry:     config.DefaultRetryConfig(),
		Audit:     config.DefaultAuditConfig(),
		QueryGen:  config.DefaultQueryGenConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		HTTP:      config.DefaultHTTPConfig(),
	}

	cfg.Retry.MaxAttempts = 2
	cfg.Retry.InitialInterval = 10 * time.Millisecond
	cfg.Retry.MaxInterval = 50 * time.Millisecond

	cfg.Audit.QueriesPerCategory = 2
	cfg.Audit.BatchesPerCategory = 2
	cfg.Audit.DefaultConcurrency = 2
	cfg.Audit.MaxConcurrency = 4
	cfg.Audit.ProgressInterval = 10 * time.Millisecond
	cfg.Audit.PhaseTimeout = 30 * time.Second

	cfg.Queue.WorkerCount = tc.workerCount
	cfg.Queue.MaxConcurrentAudits = tc.maxAudits
	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.AuditTimeout = tc.auditTimeout
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.HeartbeatInterval = 1 * time.Second
	cfg.Queue.OrphanDetectionInterval = tc.orphanScan
	cfg.Queue.OrphanThreshold = tc.orphanAfter

	return cfg
}
