package e2e

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
)

// TestAuditTimesOut gives the worker a deadline no audit can meet and
// verifies the audit fails with a timeout message instead of hanging.
func TestAuditTimesOut(t *testing.T) {
	app := NewTestApp(t,
		WithAuditTimeout(500*time.Millisecond),
		WithMockLatency(300*time.Millisecond),
	)

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusFailed, 30*time.Second)

	a, err := app.Store.GetAudit(context.Background(), submitted.ID)
	require.NoError(t, err)
	require.NotNil(t, a.ErrorMessage)
	assert.True(t, strings.Contains(*a.ErrorMessage, "timed out"),
		"unexpected error message: %s", *a.ErrorMessage)
}
