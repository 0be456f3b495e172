package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/config"
	testdb "github.com/brandlens/brandlens/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestAudit creates an audit in pending status.
func createTestAudit(ctx context.Context, t *testing.T, client *ent.Client) *ent.Audit {
	t.Helper()
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		SetIndustry("B2B SaaS").
		SetCompetitors([]string{"Salesforce", "HubSpot"}).
		SetStatus(audit.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return a
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentAudits:     10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		AuditTimeout:            30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending audit.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create a pending audit
	a := createTestAudit(ctx, t, client)

	// Create worker and claim
	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextAudit(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending audit")
	assert.Equal(t, a.ID, claimed.ID)
	assert.Equal(t, audit.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoAuditsAvailable
	claimed2, err := w.claimNextAudit(ctx)
	assert.ErrorIs(t, err, ErrNoAuditsAvailable)
	assert.Nil(t, claimed2, "no more pending audits should be available")
}

// TestClaimPreservesStartedAtOnRequeue tests that a requeued audit keeps its
// original started_at when claimed again.
func TestClaimPreservesStartedAtOnRequeue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	firstClaim := time.Now().Add(-10 * time.Minute).Truncate(time.Millisecond)
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		SetStatus(audit.StatusPending).
		SetPhase(audit.PhaseAnalyze).
		SetStartedAt(firstClaim).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextAudit(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, claimed.ID)
	assert.Equal(t, audit.PhaseAnalyze, claimed.Phase, "requeued audit should keep its phase")
	require.NotNil(t, claimed.StartedAt)
	assert.WithinDuration(t, firstClaim, *claimed.StartedAt, time.Second,
		"started_at should mark the first claim, not the requeue")
}

// TestConcurrentClaimsDifferentAudits tests that concurrent workers claim different audits.
func TestConcurrentClaimsDifferentAudits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create multiple pending audits
	auditIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		a := createTestAudit(ctx, t, client)
		auditIDs[a.ID] = struct{}{}
	}

	// Spawn multiple workers concurrently
	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			a, err := w.claimNextAudit(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if a != nil {
				mu.Lock()
				claimed = append(claimed, a.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil audit without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	// Check for errors from goroutines
	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 audits should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 audits should be claimed")

	// Verify no duplicates
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "audit %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	// All claimed audits should be from the original set
	for _, id := range claimed {
		_, ok := auditIDs[id]
		assert.True(t, ok, "claimed audit %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that orphaned audits are detected and requeued.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create an audit that simulates a crash (running with old heartbeat)
	staleBeat := time.Now().Add(-10 * time.Minute) // Way past orphan threshold
	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		SetStatus(audit.StatusRunning).
		SetPhase(audit.PhaseFanOut).
		SetPodID("crashed-pod").
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// Run orphan detection
	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 1 * time.Second // Very short for test

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	err = pool.detectAndRecoverOrphans(ctx)
	require.NoError(t, err)

	// Verify the audit is back in the queue with its phase intact
	updated, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusPending, updated.Status)
	assert.Equal(t, audit.PhaseFanOut, updated.Phase, "phase survives requeue for resume")
	assert.Nil(t, updated.PodID)
	assert.Nil(t, updated.LastHeartbeatAt)

	// Verify orphan metrics tracked
	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanRecoverySkipsFreshHeartbeats tests that audits with recent
// heartbeats are left alone.
func TestOrphanRecoverySkipsFreshHeartbeats(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	a, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		SetStatus(audit.StatusRunning).
		SetPodID("healthy-pod").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.OrphanThreshold = 5 * time.Minute

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: cfg,
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusRunning, updated.Status, "healthy audit should not be requeued")
}

// TestStartupOrphanCleanup tests the one-time startup orphan requeue.
func TestStartupOrphanCleanup(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	// Create audits that belong to this pod
	for i := 0; i < 3; i++ {
		_, err := client.Audit.Create().
			SetID(uuid.New().String()).
			SetCompanyName("Acme CRM").
			SetCompanyDomain("acme.io").
			SetStatus(audit.StatusRunning).
			SetPodID(podID).
			Save(ctx)
		require.NoError(t, err)
	}

	// Also create an audit for a different pod (should not be affected)
	otherAudit, err := client.Audit.Create().
		SetID(uuid.New().String()).
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		SetStatus(audit.StatusRunning).
		SetPodID("other-pod").
		Save(ctx)
	require.NoError(t, err)

	// Run startup cleanup
	err = CleanupStartupOrphans(ctx, client, podID)
	require.NoError(t, err)

	// Verify this pod's audits are back in the queue
	pending, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3, "this pod's audits should be requeued")
	for _, a := range pending {
		assert.Nil(t, a.PodID, "requeued audit %s should have no owner", a.ID)
	}

	// Verify other pod's audit is untouched
	other, err := client.Audit.Get(ctx, otherAudit.ID)
	require.NoError(t, err)
	assert.Equal(t, audit.StatusRunning, other.Status, "other pod's audit should be untouched")
}

// mockExecutor counts executions and tracks which audits were processed.
type mockExecutor struct {
	processed  atomic.Int64
	audits     sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, a *ent.Audit) *ExecutionResult {
	m.processed.Add(1)
	if a != nil {
		m.audits.Store(a.ID, struct{}{})
	}

	// Track in-progress audits
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &ExecutionResult{
				Status: audit.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: audit.StatusCancelled,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status:       audit.StatusCompleted,
		OverallScore: 0.42,
		TotalCost:    0.10,
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create pending audits
	for i := 0; i < 3; i++ {
		createTestAudit(ctx, t, client)
	}

	// Create pool with mock executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for audits to be processed
	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		fmt.Sprintf("waiting for audits to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 3 })

	// Stop the pool gracefully
	pool.Stop()

	// All audits should be completed
	audits, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, audits, 3, "all 3 audits should be completed")

	// Health should show all workers
	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create multiple pending audits
	for i := 0; i < 5; i++ {
		createTestAudit(ctx, t, client)
	}

	// Configure pool: use 2 workers matching MaxConcurrentAudits to avoid races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentAudits = 2 // Global limit
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	// Mock executor with release channel for deterministic control
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentAudits audits are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d audits in progress, got: %d", cfg.MaxConcurrentAudits, executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentAudits) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	// Verify exactly MaxConcurrentAudits are in progress (no races with 2 workers)
	assert.Equal(t, int64(cfg.MaxConcurrentAudits), executor.inProgress.Load(),
		"should have exactly MaxConcurrentAudits in progress")

	// Verify the database also shows MaxConcurrentAudits running
	dbRunning, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentAudits, dbRunning, "DB should show MaxConcurrentAudits running")

	// Release executions to complete
	close(releaseCh)

	// Wait for first batch to complete
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for first batch to complete, in_progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim remaining audits (3 more)
	// Wait for all 5 audits to be processed
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all audits to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 5 })

	// Stop the pool
	pool.Stop()

	// Verify all 5 audits completed
	completedCount, err := client.Audit.Query().
		Where(audit.StatusEQ(audit.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 audits should complete")
}

// TestHeartbeatUpdates tests that heartbeats update last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create a pending audit
	a := createTestAudit(ctx, t, client)

	// Configure pool with short heartbeat interval and blocking executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond // Short interval for testing

	// Mock executor that blocks until released (to keep the audit running)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for the audit to be claimed
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for audit to be claimed",
		func() bool {
			got, err := client.Audit.Get(ctx, a.ID)
			require.NoError(t, err)
			return got.Status == audit.StatusRunning && got.LastHeartbeatAt != nil
		})

	// Get initial last_heartbeat_at
	a1, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, audit.StatusRunning, a1.Status)
	require.NotNil(t, a1.LastHeartbeatAt)
	initialTime := *a1.LastHeartbeatAt

	// Wait for at least one heartbeat to occur (heartbeat interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	// Get updated last_heartbeat_at
	a2, err := client.Audit.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, audit.StatusRunning, a2.Status, "audit should still be running")
	require.NotNil(t, a2.LastHeartbeatAt)

	// Verify heartbeat actually updated the timestamp
	assert.True(t, a2.LastHeartbeatAt.After(initialTime), "last_heartbeat_at should be updated by heartbeat")

	// Release executor and stop pool
	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Audit) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// AuditExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks audit failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		a := createTestAudit(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for audit to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded marks audit failed with timeout", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		a := createTestAudit(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.AuditTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for audit to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result with cancellation marks audit cancelled", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		a := createTestAudit(ctx, t, client)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.AuditTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait for the audit to be claimed (running)
		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for audit to be claimed",
			func() bool {
				got, err := client.Audit.Get(ctx, a.ID)
				require.NoError(t, err)
				return got.Status == audit.StatusRunning
			})

		// Cancel the audit via the pool (simulates API-triggered cancellation)
		cancelled := pool.CancelAudit(a.ID)
		require.True(t, cancelled, "CancelAudit should find the active audit")

		// Wait for the executor to finish and status to be persisted
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for audit to reach terminal status",
			func() bool {
				got, err := client.Audit.Get(ctx, a.ID)
				require.NoError(t, err)
				return got.Status == audit.StatusCancelled
			})

		pool.Stop()

		updated, err := client.Audit.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelled, updated.Status)
	})
}
