package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelAudit(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	// Register an audit
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterAudit("audit-1", cancel)

	// Cancel should succeed for registered audit
	assert.True(t, pool.CancelAudit("audit-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown audit
	assert.False(t, pool.CancelAudit("unknown"))
}

func TestPoolUnregisterAudit(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterAudit("audit-1", cancel)

	// Should find it
	assert.True(t, pool.CancelAudit("audit-1"))

	// Unregister
	pool.UnregisterAudit("audit-1")

	// Should not find it anymore
	assert.False(t, pool.CancelAudit("audit-1"))
}

func TestPoolGetActiveAuditIDs(t *testing.T) {
	pool := &WorkerPool{
		activeAudits: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.getActiveAuditIDs()
	assert.Empty(t, ids)

	// Register audits
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterAudit("audit-a", cancel1)
	pool.RegisterAudit("audit-b", cancel2)

	ids = pool.getActiveAuditIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "audit-a")
	assert.Contains(t, ids, "audit-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:       make(chan struct{}),
		activeAudits: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}
