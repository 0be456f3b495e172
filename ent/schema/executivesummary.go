package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutiveSummary is the L3 aggregation layer — exactly one row per audit.
type ExecutiveSummary struct {
	ent.Schema
}

// Fields of the ExecutiveSummary.
func (ExecutiveSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id").
			Unique(),
		field.Float("overall_score").
			Comment("Weighted mean of L1 category scores, [0, 100]"),
		field.Text("narrative").
			Optional(),
		field.JSON("top_recommendations", []string{}).
			Optional(),
		field.JSON("risks", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the ExecutiveSummary.
func (ExecutiveSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("executive_summary").
			Unique().
			Required().
			Field("audit_id"),
	}
}

// Indexes of the ExecutiveSummary.
func (ExecutiveSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id").
			Unique(),
	}
}
