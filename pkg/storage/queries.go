package storage

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/google/uuid"
)

// StoreQueries persists the generated query set and the audit's
// total_queries in one transaction. Re-running the phase replaces the
// previous set.
func (s *Store) StoreQueries(ctx context.Context, auditID string, queries []models.GeneratedQuery) ([]*ent.AuditQuery, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.AuditQuery.Delete().
		Where(auditquery.AuditID(auditID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear previous queries: %w", err)
	}

	builders := make([]*ent.AuditQueryCreate, 0, len(queries))
	for i, q := range queries {
		builder := tx.AuditQuery.Create().
			SetID(uuid.New().String()).
			SetAuditID(auditID).
			SetText(q.Query).
			SetCategory(auditquery.Category(q.Category)).
			SetPriority(auditquery.Priority(q.Priority)).
			SetDifficulty(q.Difficulty).
			SetPositionInAudit(i)
		if q.Intent != "" {
			builder.SetIntent(q.Intent)
		}
		builders = append(builders, builder)
	}

	rows, err := tx.AuditQuery.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store queries: %w", err)
	}

	if _, err := tx.Audit.Update().
		Where(audit.ID(auditID)).
		SetTotalQueries(len(rows)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to set total queries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rows, nil
}

// LoadQueries returns the audit's queries in generation order.
func (s *Store) LoadQueries(ctx context.Context, auditID string) ([]*ent.AuditQuery, error) {
	rows, err := s.client.AuditQuery.Query().
		Where(auditquery.AuditID(auditID)).
		Order(ent.Asc(auditquery.FieldPositionInAudit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return rows, nil
}
