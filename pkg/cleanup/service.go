// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/storage"
)

// Service periodically enforces retention policies:
//   - Deletes finished audits past the retention window (cascades to
//     all per-audit data)
//   - Removes stale Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	store  *storage.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, store *storage.Store) *Service {
	return &Service{
		config: cfg,
		store:  store,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"audit_retention_days", s.config.AuditRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldAudits(ctx)
	s.purgeStaleEvents(ctx)
}

func (s *Service) purgeOldAudits(ctx context.Context) {
	count, err := s.store.PurgeTerminalAudits(ctx, s.config.AuditRetentionDays)
	if err != nil {
		slog.Error("Retention: audit purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old audits", "count", count)
	}
}

func (s *Service) purgeStaleEvents(ctx context.Context) {
	count, err := s.store.PurgeStaleEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up stale events", "count", count)
	}
}
