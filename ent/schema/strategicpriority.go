package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StrategicPriority is the L2 aggregation layer — 9 to 15 ranked
// priorities synthesized from all L1 rows of an audit.
type StrategicPriority struct {
	ent.Schema
}

// Fields of the StrategicPriority.
func (StrategicPriority) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id"),
		field.Int("rank").
			Comment("1-based; ordering key impact desc, support desc, title asc"),
		field.String("title"),
		field.Text("rationale").
			Optional(),
		field.JSON("evidence_refs", []string{}).
			Optional(),
		field.Float("impact_score").
			Default(0),
		field.Int("support_count").
			Default(0),
		field.Enum("estimated_impact").
			Values("low", "medium", "high").
			Default("medium"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the StrategicPriority.
func (StrategicPriority) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("strategic_priorities").
			Unique().
			Required().
			Field("audit_id"),
	}
}

// Indexes of the StrategicPriority.
func (StrategicPriority) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "rank").
			Unique(),
	}
}
