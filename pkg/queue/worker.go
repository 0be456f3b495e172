package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/event"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes audits.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  AuditExecutor
	publisher StatusPublisher
	pool      AuditRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentAuditID  string
	auditsProcessed int
	lastActivity    time.Time
}

// AuditRegistry is the subset of WorkerPool used by Worker for audit registration.
type AuditRegistry interface {
	RegisterAudit(auditID string, cancel context.CancelFunc)
	UnregisterAudit(auditID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (streaming disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor AuditExecutor, pool AuditRegistry, publisher StatusPublisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentAuditID:  w.currentAuditID,
		AuditsProcessed: w.auditsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoAuditsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing audit", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an audit, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active audits: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentAudits {
		return ErrAtCapacity
	}

	// 2. Claim next audit
	a, err := w.claimNextAudit(ctx)
	if err != nil {
		return err
	}

	log := slog.With("audit_id", a.ID, "worker_id", w.id)
	log.Info("Audit claimed", "phase", a.Phase, "company", a.CompanyName)

	// Publish audit status "running" to both audit and global channels
	w.publishAuditStatus(ctx, a.ID, audit.StatusRunning, string(a.Phase), nil)

	w.setStatus(WorkerStatusWorking, a.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create audit context with timeout
	auditCtx, cancelAudit := context.WithTimeout(ctx, w.config.AuditTimeout)
	defer cancelAudit()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterAudit(a.ID, cancelAudit)
	defer w.pool.UnregisterAudit(a.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(auditCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, a.ID)

	// 6. Execute the pipeline
	result := w.executor.Execute(auditCtx, a)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(auditCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: audit.StatusFailed,
				Error:  fmt.Errorf("audit timed out after %v", w.config.AuditTimeout),
			}
		case errors.Is(auditCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: audit.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: audit.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(auditCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: audit.StatusFailed,
			Error:  fmt.Errorf("audit timed out after %v", w.config.AuditTimeout),
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(auditCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: audit.StatusCancelled,
			Error:  context.Canceled,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	// 10. Update terminal status (use background context — audit ctx may be cancelled)
	if err := w.updateAuditTerminalStatus(context.Background(), a, result); err != nil {
		log.Error("Failed to update audit terminal status", "error", err)
		return err
	}

	// 10a. Publish terminal audit status event
	w.publishAuditStatus(context.Background(), a.ID, result.Status, string(events.StageVerify), result)

	// 11. Cleanup transient events after grace period (60s) to allow clients
	// to receive final events before they are deleted.
	w.scheduleEventCleanup(a.ID)

	w.mu.Lock()
	w.auditsProcessed++
	w.mu.Unlock()

	log.Info("Audit processing complete", "status", result.Status)
	return nil
}

// claimNextAudit atomically claims the next pending audit using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextAudit(ctx context.Context) (*ent.Audit, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	a, err := tx.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		Order(ent.Asc(audit.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAuditsAvailable
		}
		return nil, fmt.Errorf("failed to query pending audit: %w", err)
	}

	// Claim: set running, pod_id, started_at, last_heartbeat_at.
	// started_at survives a requeue — it marks the FIRST claim.
	now := time.Now()
	update := a.Update().
		SetStatus(audit.StatusRunning).
		SetPodID(w.podID).
		SetLastHeartbeatAt(now)
	if a.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	a, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim audit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return a, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, auditID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Audit.UpdateOneID(auditID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "audit_id", auditID, "error", err)
			}
		}
	}
}

// updateAuditTerminalStatus writes the final audit status. Guarded on the
// running state so an audit already moved to a terminal state (e.g. by the
// orphan scanner) is never overwritten.
func (w *Worker) updateAuditTerminalStatus(ctx context.Context, a *ent.Audit, result *ExecutionResult) error {
	update := w.client.Audit.Update().
		Where(
			audit.ID(a.ID),
			audit.StatusEQ(audit.StatusRunning),
		).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.VerifyWarning != "" {
		update = update.SetVerifyWarning(result.VerifyWarning)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		slog.Warn("Audit no longer running at terminal update, leaving as-is",
			"audit_id", a.ID, "intended_status", result.Status)
	}
	return nil
}

// publishAuditStatus publishes an audit status event to both the audit-specific
// and global channels for real-time WebSocket delivery. Non-blocking: errors are logged.
// result carries the completion extras and may be nil.
func (w *Worker) publishAuditStatus(ctx context.Context, auditID string, status audit.Status, stage string, result *ExecutionResult) {
	if w.publisher == nil {
		return
	}
	payload := events.AuditStatusPayload{
		Type:      events.EventTypeAuditStatus,
		AuditID:   auditID,
		Status:    string(status),
		Stage:     stage,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
	if result != nil {
		payload.VerifyWarning = result.VerifyWarning
		if status == audit.StatusCompleted {
			payload.OverallScore = result.OverallScore
			payload.TotalCost = result.TotalCost
		}
	}
	if err := w.publisher.PublishAuditStatus(ctx, auditID, payload); err != nil {
		slog.Warn("Failed to publish audit status",
			"audit_id", auditID, "status", status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of transient events after a 60-second
// grace period, allowing WebSocket clients to receive final events.
func (w *Worker) scheduleEventCleanup(auditID string) {
	time.AfterFunc(60*time.Second, func() {
		if err := w.cleanupAuditEvents(context.Background(), auditID); err != nil {
			slog.Warn("Failed to cleanup audit events after grace period",
				"audit_id", auditID, "error", err)
		}
	})
}

// cleanupAuditEvents removes transient Event records used for WebSocket delivery.
func (w *Worker) cleanupAuditEvents(ctx context.Context, auditID string) error {
	_, err := w.client.Event.Delete().
		Where(event.AuditIDEQ(auditID)).
		Exec(ctx)
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, auditID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAuditID = auditID
	w.lastActivity = time.Now()
}
