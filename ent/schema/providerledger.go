package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderLedger is the persisted snapshot of the cost accountant's
// per-provider counters. The in-memory accountant is authoritative while
// the process runs; the ledger restores counters after restart.
type ProviderLedger struct {
	ent.Schema
}

// Fields of the ProviderLedger.
func (ProviderLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Unique(),
		field.Float("daily_cost").
			Default(0),
		field.Float("monthly_cost").
			Default(0),
		field.Float("total_cost").
			Default(0),
		field.Int("requests_today").
			Default(0),
		field.Time("last_reset").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProviderLedger.
func (ProviderLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider").
			Unique(),
	}
}
