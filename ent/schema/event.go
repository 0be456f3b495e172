package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is a persisted real-time event — the durable half of the
// NOTIFY/LISTEN bus. Rows are written in the same transaction as the
// pg_notify call and replayed to late subscribers via catchup.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id"),
		field.String("channel"),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("audit_id"),
	}
}
