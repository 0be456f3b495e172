package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/models"
)

// TestFullAuditPipeline submits an audit over HTTP and follows it through
// every phase to completion, checking the persisted artifacts at each
// layer: queries, responses, metrics, aggregates, summary, dashboard.
func TestFullAuditPipeline(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	submitted := app.submitDefaultAudit(t)
	app.WaitForStatus(t, submitted.ID, entaudit.StatusCompleted, 60*time.Second)

	// HTTP view.
	got := app.GetAudit(t, submitted.ID)
	assert.Equal(t, string(entaudit.StatusCompleted), got.Status)
	require.NotNil(t, got.OverallScore)
	assert.Greater(t, *got.OverallScore, 0.0)
	require.NotNil(t, got.TotalCost)
	assert.Greater(t, *got.TotalCost, 0.0)
	assert.Equal(t, 100.0, got.Progress)

	// One query set per category, fanned out to every provider.
	queries, err := app.Store.LoadQueries(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Len(t, queries, len(models.Categories())*app.Config.Audit.QueriesPerCategory)

	responses, err := app.Store.LoadResponses(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Len(t, responses, len(queries)*len(app.Adapters))
	for _, r := range responses {
		assert.NotNil(t, r.MetricsExtractedAt, "response %s missing metrics", r.ID)
		assert.True(t, r.BrandMentioned)
	}

	aggs, err := app.Store.LoadCategoryAggregates(ctx, submitted.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, aggs)

	summary, err := app.Store.LoadSummary(ctx, submitted.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, summary.Narrative)

	dash, err := app.Store.GetDashboard(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, len(responses), dash.TotalResponses)

	// Stage transitions and the terminal status were persisted for
	// catchup. Progress events are transient and covered by the
	// WebSocket streaming test.
	types := app.EventTypes(t, submitted.ID)
	assert.Contains(t, types, events.EventTypeStageComplete)
	assert.Contains(t, types, events.EventTypeAuditStatus)
}

// TestConcurrentAudits runs several audits through one replica at once.
func TestConcurrentAudits(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(3), WithMaxConcurrentAudits(3))

	const n = 4
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, app.submitDefaultAudit(t).ID)
	}

	for _, id := range ids {
		app.WaitForStatus(t, id, entaudit.StatusCompleted, 90*time.Second)
	}

	for _, id := range ids {
		got := app.GetAudit(t, id)
		require.NotNil(t, got.OverallScore, "audit %s has no score", id)
	}
}
