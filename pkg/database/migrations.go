package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on response and query text.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for response text full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_provider_responses_text_gin
		ON provider_responses USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create response text GIN index: %w", err)
	}

	// GIN index for query text full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_queries_text_gin
		ON audit_queries USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create query text GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent/Atlas
// cannot express. The queue worker scans only pending and running rows,
// so the hot-path indexes are restricted to those statuses.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// FIFO claim scan: SELECT ... WHERE status = 'pending' ORDER BY created_at
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS audits_pending_created_at
		ON audits (created_at)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending claim index: %w", err)
	}

	// Orphan scan: running rows with a stale heartbeat
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS audits_running_last_heartbeat_at
		ON audits (last_heartbeat_at)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create orphan scan index: %w", err)
	}

	return nil
}
