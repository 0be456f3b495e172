package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
)

// TestCancelRunningAudit cancels an audit mid fan-out. Provider latency
// keeps the audit running long enough for the cancel flag to land, and
// the executor observes it at the next batch boundary.
func TestCancelRunningAudit(t *testing.T) {
	app := NewTestApp(t, WithMockLatency(200*time.Millisecond))
	ctx := context.Background()

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusRunning, 15*time.Second)

	code := app.CancelAudit(t, submitted.ID)
	require.Equal(t, http.StatusAccepted, code)

	app.WaitForStatus(t, submitted.ID, entaudit.StatusCancelled, 30*time.Second)

	// Partial work stays: whatever was written before the boundary check
	// survives for a later resubmission to reuse.
	a, err := app.Store.GetAudit(ctx, submitted.ID)
	require.NoError(t, err)
	assert.True(t, a.CancelRequested)
	assert.NotNil(t, a.CompletedAt)
}

// TestCancelPendingAudit cancels before any worker claims the audit.
// With no worker capacity the row stays pending, so the cancel endpoint
// flips it to cancelled directly.
func TestCancelPendingAudit(t *testing.T) {
	// Zero-latency audits complete fast, so saturate the single worker
	// with a slow audit first.
	app := NewTestApp(t, WithMockLatency(300*time.Millisecond), WithMaxConcurrentAudits(1))

	blocker := app.submitDefaultAudit(t)
	app.WaitForStatus(t, blocker.ID, entaudit.StatusRunning, 15*time.Second)

	pending := app.submitDefaultAudit(t)
	code := app.CancelAudit(t, pending.ID)
	require.Equal(t, http.StatusAccepted, code)

	app.WaitForStatus(t, pending.ID, entaudit.StatusCancelled, 5*time.Second)

	// The running audit is unaffected by the other cancellation.
	a, err := app.Store.GetAudit(context.Background(), blocker.ID)
	require.NoError(t, err)
	assert.False(t, a.CancelRequested)
}

// TestCancelCompletedAuditConflicts verifies terminal audits reject
// cancellation with 409.
func TestCancelCompletedAuditConflicts(t *testing.T) {
	app := NewTestApp(t)

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusCompleted, 60*time.Second)

	code := app.CancelAudit(t, submitted.ID)
	assert.Equal(t, http.StatusConflict, code)
}
