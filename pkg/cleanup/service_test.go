package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/ent"
	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/storage"
	testdb "github.com/brandlens/brandlens/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		AuditRetentionDays: 90,
		EventTTL:           1 * time.Hour,
		CleanupInterval:    1 * time.Hour,
	}
}

func createAudit(t *testing.T, store *storage.Store) *ent.Audit {
	t.Helper()
	a, err := store.CreateAudit(context.Background(), storage.CreateAuditParams{
		Profile: models.CompanyProfile{Name: "Acme CRM", Domain: "acme.io"},
	})
	require.NoError(t, err)
	return a
}

func TestService_PurgesOldCompletedAudits(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createAudit(t, store)
	seedRows, err := store.StoreQueries(ctx, a.ID, []models.GeneratedQuery{
		{Query: "best crm for startups", Category: models.CategorySolutionSeeking, Priority: models.PriorityHigh, Difficulty: 4},
	})
	require.NoError(t, err)
	require.Len(t, seedRows, 1)

	err = client.Audit.UpdateOneID(a.ID).
		SetStatus(entaudit.StatusCompleted).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), store)
	svc.runAll(ctx)

	_, err = store.GetAudit(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Children go with the audit via the cascade.
	remaining, err := client.AuditQuery.Query().
		Where(auditquery.AuditID(a.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestService_PurgesOldCancelledAuditsWithoutCompletedAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createAudit(t, store)
	err := client.Audit.UpdateOneID(a.ID).
		SetStatus(entaudit.StatusCancelled).
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), store)
	svc.runAll(ctx)

	_, err = store.GetAudit(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestService_PreservesRecentAndRunningAudits(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	recent := createAudit(t, store)
	err := client.Audit.UpdateOneID(recent.ID).
		SetStatus(entaudit.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// A running audit with an ancient created_at must survive: retention
	// only applies to terminal states.
	running := createAudit(t, store)
	err = client.Audit.UpdateOneID(running.ID).
		SetStatus(entaudit.StatusRunning).
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), store)
	svc.runAll(ctx)

	_, err = store.GetAudit(ctx, recent.ID)
	assert.NoError(t, err)
	_, err = store.GetAudit(ctx, running.ID)
	assert.NoError(t, err)
}

func TestService_PurgesStaleEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createAudit(t, store)

	stale, err := client.Event.Create().
		SetAuditID(a.ID).
		SetChannel("audit:" + a.ID).
		SetPayload(map[string]any{"type": "progress"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.Event.Create().
		SetAuditID(a.ID).
		SetChannel("audit:" + a.ID).
		SetPayload(map[string]any{"type": "progress"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), store)
	svc.runAll(ctx)

	_, err = client.Event.Get(ctx, stale.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.Event.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)

	svc := NewService(retentionConfig(), store)
	svc.Start(context.Background())
	// Start is idempotent.
	svc.Start(context.Background())
	svc.Stop()
}
