// Package storage is the persistence layer of the audit pipeline. It
// wraps the Ent client with domain operations: audit lifecycle updates,
// per-row metric writes with exact affected-row accounting, UPSERT-keyed
// insight cells, delete-and-insert aggregate layers, dashboard
// materialization, and post-analyze verification.
//
// All writes are keyed so that re-running any phase is safe.
package storage

import (
	"log/slog"

	"github.com/brandlens/brandlens/ent"
)

// Store provides all persistence operations for the audit pipeline.
type Store struct {
	client *ent.Client
	log    *slog.Logger
}

// New creates a Store on top of an Ent client.
func New(client *ent.Client) *Store {
	return &Store{
		client: client,
		log:    slog.With("component", "storage"),
	}
}
