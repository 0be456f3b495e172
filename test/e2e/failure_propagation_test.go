package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/provider"
)

// TestAuditSurvivesSingleProviderOutage scripts one provider to fail
// every call. The audit still completes on the healthy provider's
// responses, and the outage is reported on the event stream.
func TestAuditSurvivesSingleProviderOutage(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	// Enough scripted failures to outlast every fan-out item and retry.
	fails := make([]error, 0, 500)
	for i := 0; i < 500; i++ {
		fails = append(fails, provider.NewError(provider.CodeRateLimited, "anthropic", "scripted outage"))
	}
	app.Adapters["anthropic"].FailNext(fails...)

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusCompleted, 90*time.Second)

	responses, err := app.Store.LoadResponses(ctx, submitted.ID)
	require.NoError(t, err)
	require.NotEmpty(t, responses)
	for _, r := range responses {
		assert.Equal(t, "openai", r.Provider)
	}

	// The dead provider's failures were surfaced as error events.
	types := app.EventTypes(t, submitted.ID)
	assert.Contains(t, types, events.EventTypeAuditError)

	// Completion still carries a score from the surviving provider.
	got := app.GetAudit(t, submitted.ID)
	require.NotNil(t, got.OverallScore)
	assert.Greater(t, *got.OverallScore, 0.0)
}

// TestAuditFailsWhenAllProvidersDown verifies that a total provider
// outage fails the audit at verification: no responses means nothing to
// score.
func TestAuditFailsWhenAllProvidersDown(t *testing.T) {
	app := NewTestApp(t)

	fails := make([]error, 0, 500)
	for i := 0; i < 500; i++ {
		fails = append(fails, provider.NewError(provider.CodeProviderUnavailable, "any", "scripted outage"))
	}
	for _, adapter := range app.Adapters {
		adapter.FailNext(fails...)
	}

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusFailed, 90*time.Second)

	a, err := app.Store.GetAudit(context.Background(), submitted.ID)
	require.NoError(t, err)
	require.NotNil(t, a.ErrorMessage)
	assert.NotEmpty(t, *a.ErrorMessage)
}
