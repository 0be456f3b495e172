package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/brandlens/brandlens/ent"
)

// newTestClient connects to CI_DATABASE_URL when set, otherwise starts
// a throwaway postgres container, and applies the schema plus the
// custom indexes.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 10, health.Pool.MaxOpen)
	assert.GreaterOrEqual(t, health.ResponseTimeMS, int64(0))
}

func TestHealthStatusJSONShape(t *testing.T) {
	client := newTestClient(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(health)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Durations are serialized in milliseconds, not nanoseconds.
	ms, ok := decoded["response_time_ms"].(float64)
	require.True(t, ok)
	assert.Less(t, ms, float64(1_000_000))

	pool, ok := decoded["pool"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, pool, "wait_ms")
	assert.Contains(t, pool, "max_open")
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Audit.Create().
		SetID("audit-fts").
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		Save(ctx)
	require.NoError(t, err)

	resp1, err := client.ProviderResponse.Create().
		SetID("resp-1").
		SetQueryID("q-1").
		SetAuditID("audit-fts").
		SetProvider("openai").
		SetModel("gpt-4o").
		SetText("Acme CRM is the leading platform for pipeline automation").
		Save(ctx)
	require.NoError(t, err)

	resp2, err := client.ProviderResponse.Create().
		SetID("resp-2").
		SetQueryID("q-2").
		SetAuditID("audit-fts").
		SetProvider("openai").
		SetModel("gpt-4o").
		SetText("Popular alternatives include Salesforce and HubSpot").
		Save(ctx)
	require.NoError(t, err)

	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT response_id FROM provider_responses
			WHERE to_tsvector('english', text) @@ to_tsquery('english', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var out []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			out = append(out, id)
		}
		return out
	}

	assert.Equal(t, []string{resp1.ID}, search("pipeline & automation"))
	assert.Equal(t, []string{resp2.ID}, search("alternatives"))
}

func TestCascadeDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Audit.Create().
		SetID("audit-cascade").
		SetCompanyName("Acme CRM").
		SetCompanyDomain("acme.io").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditQuery.Create().
		SetID("q-cascade").
		SetAuditID("audit-cascade").
		SetText("best crm for startups").
		SetCategory("solution_seeking").
		SetPositionInAudit(0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.DB().ExecContext(ctx,
		`DELETE FROM audits WHERE audit_id = $1`, "audit-cascade")
	require.NoError(t, err)

	count, err := client.AuditQuery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
