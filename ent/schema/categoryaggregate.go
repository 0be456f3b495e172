package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryAggregate is the L1 aggregation layer — one row per
// (audit, category).
type CategoryAggregate struct {
	ent.Schema
}

// Fields of the CategoryAggregate.
func (CategoryAggregate) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id"),
		field.Enum("category").
			Values("problem_unaware", "solution_seeking", "brand_specific",
				"comparison", "evaluation", "post_purchase"),
		field.Int("response_count").
			Default(0),
		field.Float("avg_geo_score").
			Default(0),
		field.Float("avg_sov_score").
			Default(0),
		field.Float("avg_sentiment").
			Default(0),
		field.Float("avg_context_completeness").
			Default(0),
		field.Float("mention_rate").
			Default(0).
			Comment("Fraction of responses mentioning the brand"),
		field.JSON("top_themes", []string{}).
			Optional(),
		field.JSON("priority_recommendations", []string{}).
			Optional().
			Comment("At most 3, ranked by support_count x avg_score"),
		field.Text("competitive_summary").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the CategoryAggregate.
func (CategoryAggregate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("category_aggregates").
			Unique().
			Required().
			Field("audit_id"),
	}
}

// Indexes of the CategoryAggregate.
func (CategoryAggregate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "category").
			Unique(),
	}
}
