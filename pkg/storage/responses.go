package storage

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/google/uuid"
)

// ResponseRecord is one provider response plus its fan-out coordinates.
type ResponseRecord struct {
	ID            string // generated when empty
	QueryID       string
	QueryText     string
	BatchID       string
	BatchNumber   int
	BatchPosition int
	Response      provider.Response
}

// StoreResponses persists a completed batch of provider responses in one
// transaction. Rows are keyed by (query_id, provider); a redelivered
// batch replaces nothing and fails nothing — already-present rows are
// skipped.
func (s *Store) StoreResponses(ctx context.Context, auditID string, records []ResponseRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}

		exists, err := tx.ProviderResponse.Query().
			Where(
				providerresponse.QueryID(rec.QueryID),
				providerresponse.Provider(rec.Response.Provider),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing response: %w", err)
		}
		if exists {
			continue
		}

		builder := tx.ProviderResponse.Create().
			SetID(id).
			SetQueryID(rec.QueryID).
			SetAuditID(auditID).
			SetProvider(rec.Response.Provider).
			SetModel(rec.Response.Model).
			SetText(rec.Response.Text).
			SetTokensIn(rec.Response.TokensIn).
			SetTokensOut(rec.Response.TokensOut).
			SetCost(rec.Response.Cost).
			SetLatencyMs(rec.Response.LatencyMS).
			SetCached(rec.Response.Cached).
			SetBatchNumber(rec.BatchNumber).
			SetBatchPosition(rec.BatchPosition)
		if len(rec.Response.Citations) > 0 {
			builder.SetCitations(rec.Response.Citations)
		}
		if rec.BatchID != "" {
			builder.SetBatchID(rec.BatchID)
		}
		if rec.QueryText != "" {
			builder.SetQueryText(rec.QueryText)
		}
		if !rec.Response.CreatedAt.IsZero() {
			builder.SetCreatedAt(rec.Response.CreatedAt)
		}

		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to store response for query %s: %w", rec.QueryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadResponses returns all responses of an audit.
func (s *Store) LoadResponses(ctx context.Context, auditID string) ([]*ent.ProviderResponse, error) {
	rows, err := s.client.ProviderResponse.Query().
		Where(providerresponse.AuditID(auditID)).
		Order(ent.Asc(providerresponse.FieldBatchNumber), ent.Asc(providerresponse.FieldBatchPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	return rows, nil
}

// ResponseOf reconstructs the provider response persisted on a row, the
// inverse of the StoreResponses column mapping.
func ResponseOf(row *ent.ProviderResponse) provider.Response {
	return provider.Response{
		Provider:  row.Provider,
		Model:     row.Model,
		Text:      row.Text,
		TokensIn:  row.TokensIn,
		TokensOut: row.TokensOut,
		Cost:      row.Cost,
		LatencyMS: row.LatencyMs,
		Cached:    row.Cached,
		Citations: row.Citations,
		CreatedAt: row.CreatedAt,
	}
}

// PriorAuditResponses returns the responses of the most recently
// completed audit for the same company domain, excluding excludeID.
// (nil, nil) when no prior completed audit exists. Used to warm the
// response cache before fan-out.
func (s *Store) PriorAuditResponses(ctx context.Context, domain, excludeID string) ([]*ent.ProviderResponse, error) {
	prior, err := s.client.Audit.Query().
		Where(
			audit.CompanyDomain(domain),
			audit.StatusEQ(audit.StatusCompleted),
			audit.IDNEQ(excludeID),
		).
		Order(ent.Desc(audit.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find prior audit: %w", err)
	}
	return s.LoadResponses(ctx, prior.ID)
}

// AnsweredQueryIDs returns the query IDs that already have a response
// from the given provider, used to skip work on resume.
func (s *Store) AnsweredQueryIDs(ctx context.Context, auditID, providerName string) (map[string]bool, error) {
	ids, err := s.client.ProviderResponse.Query().
		Where(
			providerresponse.AuditID(auditID),
			providerresponse.Provider(providerName),
		).
		Select(providerresponse.FieldQueryID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load answered queries: %w", err)
	}

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
