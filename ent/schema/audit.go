package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Audit holds the schema definition for the Audit entity — one invocation
// of the end-to-end visibility pipeline for a single company.
type Audit struct {
	ent.Schema
}

// Fields of the Audit.
func (Audit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("company_name").
			Comment("Brand name being audited"),
		field.String("company_domain").
			Comment("Primary domain (e.g. example.com)"),
		field.String("industry").
			Optional(),
		field.JSON("competitors", []string{}).
			Optional(),
		field.JSON("brand_aliases", []string{}).
			Optional().
			Comment("Alternative brand spellings matched by the analyzer"),
		field.Bool("include_subdomains").
			Default(false).
			Comment("Whether bare-domain mentions on subdomains count"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Enum("phase").
			Values("query_gen", "fan_out", "analyze", "aggregate_l1",
				"aggregate_l2", "aggregate_l3", "dashboard", "verify").
			Default("query_gen"),
		field.Int("total_queries").
			Default(0),
		field.Int("queries_completed").
			Default(0),
		field.JSON("provider_priority", []string{}).
			Optional().
			Comment("Provider iteration order; empty means gateway default"),
		field.Int("concurrency").
			Default(0).
			Comment("Fan-out concurrency override; 0 means gateway default"),
		field.Bool("cancel_requested").
			Default(false),
		field.String("verify_warning").
			Optional().
			Nillable().
			Comment("Set when verification returned partial"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the audit"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Audit.
func (Audit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("queries", AuditQuery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("responses", ProviderResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("batch_insights", BatchInsight.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("category_aggregates", CategoryAggregate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("strategic_priorities", StrategicPriority.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executive_summary", ExecutiveSummary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dashboard_snapshot", DashboardSnapshot.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Audit.
func (Audit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("company_domain"),
	}
}
