// BrandLens audit server — accepts audit submissions over HTTP, runs the
// worker pool that drives audits through the pipeline, and streams
// progress over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brandlens/brandlens/pkg/aggregate"
	"github.com/brandlens/brandlens/pkg/api"
	"github.com/brandlens/brandlens/pkg/audit"
	"github.com/brandlens/brandlens/pkg/breaker"
	"github.com/brandlens/brandlens/pkg/cache"
	"github.com/brandlens/brandlens/pkg/cleanup"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/database"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/querygen"
	"github.com/brandlens/brandlens/pkg/queue"
	"github.com/brandlens/brandlens/pkg/ratelimit"
	"github.com/brandlens/brandlens/pkg/storage"
	"github.com/brandlens/brandlens/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting BrandLens",
		"version", version.String(), "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"providers", stats.Providers,
		"enabled_providers", stats.EnabledProviders)

	// 2. Initialize database (runs embedded migrations)
	dbClient, err := database.NewClient(ctx, *cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup cleanup: requeue audits this pod left running
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan catches anything missed
	}

	// 4. Storage layer, event publisher, and cost accountant. The
	// accountant broadcasts threshold alerts through the publisher.
	store := storage.New(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	accountant := costs.NewAccountant(*cfg.Budget, store,
		costs.WithAlertFunc(func(alert costs.Alert) {
			slog.Warn("Budget threshold crossed",
				"provider", alert.Provider, "period", alert.Period,
				"level", alert.Level, "spent", alert.Spent, "limit", alert.Limit)
			err := eventPublisher.PublishBudgetAlert(ctx, events.BudgetAlertPayload{
				Type:      events.EventTypeBudgetAlert,
				Provider:  alert.Provider,
				Period:    alert.Period,
				Level:     alert.Level,
				Spent:     alert.Spent,
				Limit:     alert.Limit,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			})
			if err != nil {
				slog.Warn("Failed to broadcast budget alert",
					"provider", alert.Provider, "level", alert.Level, "error", err)
			}
		}))
	if err := accountant.Restore(ctx); err != nil {
		slog.Warn("Failed to restore spend ledger, starting from zero", "error", err)
	}

	// 5. Provider adapters, cache, and gateway
	adapters := make([]provider.Adapter, 0, len(cfg.EnabledProviders()))
	for _, pc := range cfg.EnabledProviders() {
		adapter, err := provider.NewAdapter(pc)
		if err != nil {
			slog.Error("Failed to build provider adapter", "provider", pc.Name, "error", err)
			os.Exit(1)
		}
		adapters = append(adapters, adapter)
	}
	if len(adapters) == 0 {
		slog.Error("No enabled providers configured")
		os.Exit(1)
	}

	var responseCache *cache.ResponseCache
	if cfg.Cache.Enabled {
		responseCache, err = cache.New(ctx, *cfg.Cache)
		if err != nil {
			slog.Warn("Response cache unavailable, continuing without caching",
				"addr", cfg.Cache.Addr, "error", err)
		} else {
			defer func() {
				if err := responseCache.Close(); err != nil {
					slog.Error("Error closing response cache", "error", err)
				}
			}()
			slog.Info("Response cache connected", "addr", cfg.Cache.Addr)
		}
	}

	gw, err := gateway.New(gateway.Options{
		Adapters:   adapters,
		Limiter:    ratelimit.NewLimiter(cfg.RateLimit),
		Breakers:   breaker.NewSet(*cfg.Breaker),
		Cache:      responseCache,
		Accountant: accountant,
		Retry:      *cfg.Retry,
	})
	if err != nil {
		slog.Error("Failed to build provider gateway", "error", err)
		os.Exit(1)
	}
	slog.Info("Provider gateway initialized", "providers", gw.Providers())

	// 6. Query generator (gRPC service or builtin rules)
	generator, err := querygen.New(*cfg.QueryGen)
	if err != nil {
		slog.Error("Failed to build query generator", "error", err)
		os.Exit(1)
	}

	// 7. Streaming infrastructure: WebSocket hub and the dedicated LISTEN
	// connection
	eventLog := events.NewEventLog(dbClient.DB())
	connManager := events.NewConnectionManager(eventLog, 10*time.Second)

	notifyListener := events.NewNotifyListener(cfg.Database.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.BindListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 8. Pipeline executor and worker pool
	executor, err := audit.NewExecutor(audit.Options{
		Store:      store,
		Generator:  generator,
		Gateway:    gw,
		Accountant: accountant,
		Events:     eventPublisher,
		Summarizer: &aggregate.LLMSummarizer{Gateway: gw},
		Config:     cfg.Audit,

		WarmCacheFromPrior: cfg.Cache.Enabled && cfg.Cache.WarmFromPrevious,
	})
	if err != nil {
		slog.Error("Failed to build pipeline executor", "error", err)
		os.Exit(1)
	}

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background retention sweeper (old audits, stale events)
	cleanupSvc := cleanup.NewService(cfg.Retention, store)
	cleanupSvc.Start(ctx)

	// 10. HTTP ingress
	httpServer := api.NewServer(api.Options{
		Store:       store,
		DBClient:    dbClient,
		WorkerPool:  workerPool,
		ConnManager: connManager,
	})
	srv := &http.Server{
		Addr:    cfg.HTTP.ListenAddr,
		Handler: httpServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("BrandLens started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, on their own budget
	cleanupSvc.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete audits will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer httpCancel()
	if err := srv.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
