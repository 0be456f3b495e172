package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/event"
)

// PurgeTerminalAudits deletes finished audits older than the retention
// window. Child rows (queries, responses, insights, aggregates,
// priorities, summary, dashboard) are removed by the cascade on the
// audit edge. Running and pending audits are never touched.
//
// Audits cancelled before they started have no completed_at, so the
// cutoff falls back to created_at for those rows.
func (s *Store) PurgeTerminalAudits(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.Audit.Delete().
		Where(
			audit.StatusIn(audit.StatusCompleted, audit.StatusFailed, audit.StatusCancelled),
			audit.Or(
				audit.CompletedAtLT(cutoff),
				audit.And(audit.CompletedAtIsNil(), audit.CreatedAtLT(cutoff)),
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal audits: %w", err)
	}

	return count, nil
}

// PurgeStaleEvents deletes persisted catchup events older than the TTL.
// The per-audit grace-period cleanup handles the common case; this sweep
// catches events whose audit never reached a terminal state.
func (s *Store) PurgeStaleEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale events: %w", err)
	}

	return count, nil
}
