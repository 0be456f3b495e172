package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RankingSnapshot is a persisted ranking dataset used by the ranking
// analyzer for historical comparison.
type RankingSnapshot struct {
	ent.Schema
}

// Fields of the RankingSnapshot.
func (RankingSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("target_domain"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
		field.JSON("rankings", []map[string]any{}).
			Comment("Serialized ranking.QueryRanking values"),
	}
}

// Indexes of the RankingSnapshot.
func (RankingSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_domain", "taken_at"),
	}
}
