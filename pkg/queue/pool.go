package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  AuditExecutor
	publisher StatusPublisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Audit cancel registry: audit_id → cancel function
	activeAudits map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// publisher may be nil (streaming disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor AuditExecutor, publisher StatusPublisher) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
		activeAudits: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current audits before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	// Log active audits
	active := p.getActiveAuditIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active audits to complete",
			"count", len(active),
			"audit_ids", active)
	}

	// Signal all workers to stop (they finish current audits)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterAudit stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterAudit(auditID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeAudits[auditID] = cancel
}

// UnregisterAudit removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterAudit(auditID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeAudits, auditID)
}

// CancelAudit triggers context cancellation for an audit on this pod.
// Returns true if the audit was found and cancelled on this pod. Audits
// running on other pods are reached via the cancel_requested flag instead.
func (p *WorkerPool) CancelAudit(auditID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeAudits[auditID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeAudits, errA := p.client.Audit.Query().
		Where(
			audit.StatusEQ(audit.StatusRunning),
			audit.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active audits for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeAudits <= p.config.MaxConcurrentAudits && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active audits query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveAudits:     activeAudits,
		MaxConcurrent:    p.config.MaxConcurrentAudits,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveAuditIDs returns IDs of currently processing audits (for logging).
func (p *WorkerPool) getActiveAuditIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	audits := make([]string, 0, len(p.activeAudits))
	for id := range p.activeAudits {
		audits = append(audits, id)
	}
	return audits
}
