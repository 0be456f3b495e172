package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned audits.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running audits with stale heartbeats and
// requeues them as pending. The persisted phase is kept, so the next
// claimant resumes mid-pipeline instead of starting over.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Audit.Query().
		Where(
			audit.StatusEQ(audit.StatusRunning),
			audit.LastHeartbeatAtNotNil(),
			audit.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned audits: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned audits", "count", len(orphans))

	recovered := 0
	for _, a := range orphans {
		if err := p.requeueOrphanedAudit(ctx, a); err != nil {
			slog.Error("Failed to requeue orphaned audit",
				"audit_id", a.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedAudit returns a single orphaned audit to the pending queue.
func (p *WorkerPool) requeueOrphanedAudit(ctx context.Context, a *ent.Audit) error {
	log := slog.With("audit_id", a.ID, "old_pod_id", a.PodID)

	lastHeartbeat := "unknown"
	if a.LastHeartbeatAt != nil {
		lastHeartbeat = a.LastHeartbeatAt.Format(time.RFC3339)
	}

	// Guarded on the stale heartbeat so a concurrent heartbeat (the old pod
	// coming back) wins the race and keeps its claim.
	n, err := p.client.Audit.Update().
		Where(
			audit.ID(a.ID),
			audit.StatusEQ(audit.StatusRunning),
			audit.LastHeartbeatAtLT(time.Now().Add(-p.config.OrphanThreshold)),
		).
		SetStatus(audit.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue audit: %w", err)
	}
	if n == 0 {
		log.Info("Orphan candidate recovered on its own, skipping requeue")
		return nil
	}

	log.Warn("Orphaned audit requeued as pending",
		"phase", a.Phase,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues audits owned by this pod that were running
// when the pod previously crashed. Called once during startup, before the
// worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Audit.Query().
		Where(
			audit.StatusEQ(audit.StatusRunning),
			audit.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, a := range orphans {
		err := a.Update().
			SetStatus(audit.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"audit_id", a.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan requeued", "audit_id", a.ID, "phase", a.Phase)
	}

	return nil
}
