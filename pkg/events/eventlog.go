package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// StoredEvent is one persisted row from the events table, decoded for
// replay.
type StoredEvent struct {
	ID      int
	Payload map[string]any
}

// ReplaySource supplies persisted events a subscriber missed.
// Implemented by EventLog; test doubles stand in for it elsewhere.
type ReplaySource interface {
	EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]StoredEvent, error)
}

// EventLog reads the events table that PublishPersistent writes.
type EventLog struct {
	db *sql.DB
}

// NewEventLog creates a ReplaySource over the shared connection pool.
func NewEventLog(db *sql.DB) *EventLog {
	return &EventLog{db: db}
}

// EventsSince returns events on channel with id > sinceID, oldest
// first, up to limit rows.
func (l *EventLog) EventsSince(ctx context.Context, channel string, sinceID, limit int) ([]StoredEvent, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("event replay query failed: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var (
			id      int
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("event replay scan failed: %w", err)
		}
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("event replay decode failed for event %d: %w", id, err)
		}
		out = append(out, StoredEvent{ID: id, Payload: m})
	}
	return out, rows.Err()
}
