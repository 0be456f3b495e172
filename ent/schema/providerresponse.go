package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderResponse holds one LLM response per (query, provider), plus the
// per-response visibility metrics written by the analyze phase. The row is
// append-only for the response columns; the metrics columns are written in
// a single UPDATE by the storage layer.
type ProviderResponse struct {
	ent.Schema
}

// Fields of the ProviderResponse.
func (ProviderResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("query_id").
			Immutable(),
		field.String("audit_id").
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Text("text").
			Immutable(),
		field.Int("tokens_in").
			Default(0).
			Immutable(),
		field.Int("tokens_out").
			Default(0).
			Immutable(),
		field.Float("cost").
			Default(0).
			Immutable().
			Comment("USD, 4-decimal precision"),
		field.Int("latency_ms").
			Default(0).
			Immutable(),
		field.Bool("cached").
			Default(false).
			Immutable(),
		field.JSON("citations", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// ── Analyze-phase metrics (one UPDATE covers all of these) ──
		field.Bool("brand_mentioned").
			Default(false),
		field.Int("mention_count").
			Default(0),
		field.Int("mention_position").
			Default(-1).
			Comment("First rune index of the brand mention; -1 when absent"),
		field.Float("first_position_percentage").
			Default(0).
			Comment("Mention position as % of response length"),
		field.String("mention_context").
			Optional(),
		field.Float("sentiment").
			Default(0).
			Comment("[-1, 1]; 0 when evidence is balanced"),
		field.Float("recommendation_strength").
			Default(0),
		field.JSON("competitor_analysis", []map[string]any{}).
			Optional().
			Comment("Always a list, never a map — see pkg/analyzer"),
		field.JSON("features_mentioned", []string{}).
			Optional(),
		field.JSON("value_props", []string{}).
			Optional(),
		field.Float("featured_snippet_potential").
			Default(0),
		field.Bool("voice_search_optimized").
			Default(false),
		field.Float("geo_score").
			Default(0).
			Comment("[0, 100]"),
		field.Float("sov_score").
			Default(0).
			Comment("[0, 100]"),
		field.Float("context_completeness").
			Default(0).
			Comment("[0, 100]"),
		field.Enum("buyer_journey_category").
			Values("problem_unaware", "solution_seeking", "brand_specific",
				"comparison", "evaluation", "post_purchase").
			Optional(),
		field.Float("context_quality").
			Default(0),
		field.JSON("additional_metrics", map[string]any{}).
			Optional(),
		field.Time("metrics_extracted_at").
			Optional().
			Nillable(),
		field.String("extraction_error").
			Optional().
			Nillable().
			Comment("Set instead of metrics_extracted_at when extraction failed"),
		field.String("batch_id").
			Optional(),
		field.Int("batch_number").
			Default(0),
		field.Int("batch_position").
			Default(0),
		field.Text("query_text").
			Optional().
			Comment("Denormalized for the aggregation layers"),
	}
}

// Edges of the ProviderResponse.
func (ProviderResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("responses").
			Unique().
			Required().
			Immutable().
			Field("audit_id"),
	}
}

// Indexes of the ProviderResponse.
func (ProviderResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id"),
		index.Fields("query_id", "provider").
			Unique(),
		index.Fields("audit_id", "batch_number"),
	}
}
