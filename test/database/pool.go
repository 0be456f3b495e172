// Package database provisions throwaway PostgreSQL schemas for
// integration tests. CI points the suite at an external server through
// CI_DATABASE_URL; local runs share one postgres container per test
// binary. Either way each test gets its own schema, so audit suites
// can run in parallel against a single server.
package database

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/pkg/database"
)

var (
	containerDSN  string
	containerOnce sync.Once
	containerErr  error
)

// BaseDSN returns the backing server's connection string, without any
// search_path. Tests that need a dedicated connection outside the
// pool, like NotifyListener's LISTEN conn, use it directly.
func BaseDSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("CI_DATABASE_URL"); dsn != "" {
		return dsn
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("brandlens_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		containerDSN, containerErr = container.ConnectionString(ctx, "sslmode=disable")
	})
	require.NoError(t, containerErr, "shared postgres container unavailable")
	return containerDSN
}

// provisionSchema creates a schema named after the running test and
// registers its drop with t.Cleanup. The returned DSN carries
// search_path, so every connection of a pool opened on it lands in
// that schema.
func provisionSchema(t *testing.T, baseDSN string) string {
	t.Helper()
	name := schemaName(t)

	db, err := stdsql.Open("pgx", baseDSN)
	require.NoError(t, err)
	_, execErr := db.ExecContext(context.Background(), "CREATE SCHEMA "+name)
	_ = db.Close()
	require.NoError(t, execErr)

	// Registered before any pool opens on the schema, so LIFO cleanup
	// closes the pools first and drops the schema last.
	t.Cleanup(func() {
		drop, err := stdsql.Open("pgx", baseDSN)
		if err != nil {
			t.Logf("schema %s left behind: %v", name, err)
			return
		}
		defer func() { _ = drop.Close() }()
		_, err = drop.ExecContext(context.Background(),
			"DROP SCHEMA IF EXISTS "+name+" CASCADE")
		if err != nil {
			t.Logf("schema %s left behind: %v", name, err)
		}
	})

	sep := "?"
	if strings.Contains(baseDSN, "?") {
		sep = "&"
	}
	return baseDSN + sep + "search_path=" + name
}

// schemaName derives an identifier-safe schema name from the test
// name, truncated to stay under PostgreSQL's 63-byte identifier cap,
// with a random suffix so reruns never collide.
func schemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// openPool opens a fresh connection pool on dsn with test-sized limits
// and wraps it in an ent client. Both are closed via t.Cleanup.
func openPool(t *testing.T, dsn string) (*stdsql.DB, *entsql.Driver, *ent.Client) {
	t.Helper()

	db, err := stdsql.Open("pgx", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return db, drv, entClient
}

// migrateSchema creates the audit tables plus the full-text and
// partial indexes the queue's claim queries depend on.
func migrateSchema(t *testing.T, entClient *ent.Client, drv *entsql.Driver) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))
}
