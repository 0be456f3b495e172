package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes audit events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via
// NOTIFY; transient progress events are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to
// the audit's channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishProgress broadcasts an audit.progress transient event (no DB
// persistence). High-frequency; the executor throttles emission.
func (p *EventPublisher) PublishProgress(ctx context.Context, auditID string, payload ProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, AuditChannel(auditID), payloadJSON)
}

// PublishStageComplete persists and broadcasts an audit.stage event.
func (p *EventPublisher) PublishStageComplete(ctx context.Context, auditID string, payload StageCompletePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageCompletePayload: %w", err)
	}
	return p.persistAndNotify(ctx, auditID, AuditChannel(auditID), payloadJSON)
}

// PublishAuditStatus persists a status event to the audit channel and
// broadcasts a transient copy to the global audits channel.
// Both publishes are best-effort: if the persistent one fails, the
// transient one is still attempted. Returns the first error encountered.
func (p *EventPublisher) PublishAuditStatus(ctx context.Context, auditID string, payload AuditStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AuditStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, auditID, AuditChannel(auditID), payloadJSON); err != nil {
		slog.Warn("Failed to publish audit status to audit channel",
			"audit_id", auditID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to the global audits channel (transient — for the
	// audit list page).
	if err := p.notifyOnly(ctx, GlobalAuditsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish audit status to global channel",
			"audit_id", auditID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishBudgetAlert broadcasts a budget.alert transient event on the
// global audits channel. Spend alerts concern operators, not a single
// audit, so they are never persisted.
func (p *EventPublisher) PublishBudgetAlert(ctx context.Context, payload BudgetAlertPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BudgetAlertPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalAuditsChannel, payloadJSON)
}

// PublishError persists and broadcasts an audit.error event.
func (p *EventPublisher) PublishError(ctx context.Context, auditID string, payload ErrorPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ErrorPayload: %w", err)
	}
	return p.persistAndNotify(ctx, auditID, AuditChannel(auditID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, auditID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (audit_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		auditID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields the client
// needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		AuditID   string `json:"audit_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"audit_id":  routing.AuditID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
