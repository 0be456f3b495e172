// Package queue provides audit queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/events"
)

// Sentinel errors for queue operations.
var (
	// ErrNoAuditsAvailable indicates no pending audits are in the queue.
	ErrNoAuditsAvailable = errors.New("no audits available")

	// ErrAtCapacity indicates the global concurrent audit limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// AuditExecutor is the interface for audit pipeline processing.
//
// The executor owns the ENTIRE pipeline internally:
//   - Runs the phases in order, resuming from the persisted phase when the
//     audit was requeued after a crash
//   - If a phase fails, the audit stops immediately
//   - Checks the cancel flag at batch boundaries
//
// The executor writes results PROGRESSIVELY during execution, not at the end.
// The worker only handles: claiming, heartbeat, terminal status update, and
// event cleanup.
type AuditExecutor interface {
	Execute(ctx context.Context, a *ent.Audit) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All intermediate
// state (queries, responses, insights, aggregates) was already written to DB
// by the executor during processing.
type ExecutionResult struct {
	Status        audit.Status // completed, failed, cancelled
	VerifyWarning string       // Set when verification returned partial
	OverallScore  float64      // Final visibility score (if completed)
	TotalCost     float64      // Total spend in USD (if completed)
	Error         error        // Error details (if failed)
}

// StatusPublisher publishes audit lifecycle events for WebSocket delivery.
// Implemented by events.EventPublisher; nil disables streaming.
type StatusPublisher interface {
	PublishAuditStatus(ctx context.Context, auditID string, payload events.AuditStatusPayload) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveAudits     int            `json:"active_audits"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentAuditID  string    `json:"current_audit_id,omitempty"`
	AuditsProcessed int       `json:"audits_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
