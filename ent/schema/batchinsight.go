package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BatchInsight holds raw extracted insights for one (category, batch,
// extraction type) cell. Writes use UPSERT semantics on the natural key;
// later writes overwrite.
type BatchInsight struct {
	ent.Schema
}

// Fields of the BatchInsight.
func (BatchInsight) Fields() []ent.Field {
	return []ent.Field{
		field.String("audit_id"),
		field.Enum("category").
			Values("problem_unaware", "solution_seeking", "brand_specific",
				"comparison", "evaluation", "post_purchase"),
		field.Int("batch_number"),
		field.Enum("extraction_type").
			Values("recommendations", "competitive_gaps", "content_opportunities"),
		field.JSON("insights", []string{}).
			Comment("At most 10 entries"),
		field.JSON("response_ids", []string{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BatchInsight.
func (BatchInsight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("batch_insights").
			Unique().
			Required().
			Field("audit_id"),
	}
}

// Indexes of the BatchInsight.
func (BatchInsight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "category", "batch_number", "extraction_type").
			Unique(),
		index.Fields("audit_id"),
	}
}
