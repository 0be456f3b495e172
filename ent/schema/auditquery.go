package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditQuery holds the schema definition for a generated search-intent
// query. Rows are immutable after creation.
type AuditQuery struct {
	ent.Schema
}

// Fields of the AuditQuery.
func (AuditQuery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("query_id").
			Unique().
			Immutable(),
		field.String("audit_id").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.Enum("category").
			Values("problem_unaware", "solution_seeking", "brand_specific",
				"comparison", "evaluation", "post_purchase").
			Immutable(),
		field.String("intent").
			Optional().
			Immutable(),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium").
			Immutable(),
		field.Int("difficulty").
			Default(0).
			Immutable().
			Comment("0-10 scale"),
		field.Int("position_in_audit").
			Immutable(),
	}
}

// Edges of the AuditQuery.
func (AuditQuery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("queries").
			Unique().
			Required().
			Immutable().
			Field("audit_id"),
	}
}

// Indexes of the AuditQuery.
func (AuditQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id"),
		index.Fields("audit_id", "category"),
	}
}
