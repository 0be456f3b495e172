package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DashboardSnapshot is the final materialized view of an audit — built
// only from the executive summary and the cost summary, idempotent on
// audit_id.
type DashboardSnapshot struct {
	ent.Schema
}

// Fields of the DashboardSnapshot.
func (DashboardSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id").
			Unique(),
		field.Float("overall_score"),
		field.Int("total_queries"),
		field.Int("total_responses"),
		field.JSON("platform_breakdown", map[string]any{}).
			Optional().
			Comment("Per-provider response counts and spend"),
		field.JSON("top_recommendations", []string{}).
			Optional(),
		field.Float("total_cost").
			Default(0),
		field.Time("generated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DashboardSnapshot.
func (DashboardSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("dashboard_snapshot").
			Unique().
			Required().
			Field("audit_id"),
	}
}

// Indexes of the DashboardSnapshot.
func (DashboardSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id").
			Unique(),
	}
}
