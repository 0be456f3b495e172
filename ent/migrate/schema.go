// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditsColumns holds the columns for the "audits" table.
	AuditsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString},
		{Name: "company_domain", Type: field.TypeString},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "competitors", Type: field.TypeJSON, Nullable: true},
		{Name: "brand_aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "include_subdomains", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"query_gen", "fan_out", "analyze", "aggregate_l1", "aggregate_l2", "aggregate_l3", "dashboard", "verify"}, Default: "query_gen"},
		{Name: "total_queries", Type: field.TypeInt, Default: 0},
		{Name: "queries_completed", Type: field.TypeInt, Default: 0},
		{Name: "provider_priority", Type: field.TypeJSON, Nullable: true},
		{Name: "concurrency", Type: field.TypeInt, Default: 0},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "verify_warning", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// AuditsTable holds the schema information for the "audits" table.
	AuditsTable = &schema.Table{
		Name:       "audits",
		Columns:    AuditsColumns,
		PrimaryKey: []*schema.Column{AuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "audit_status",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[7]},
			},
			{
				Name:    "audit_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[7], AuditsColumns[16]},
			},
			{
				Name:    "audit_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[7], AuditsColumns[20]},
			},
			{
				Name:    "audit_company_domain",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2]},
			},
		},
	}
	// AuditQueriesColumns holds the columns for the "audit_queries" table.
	AuditQueriesColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"problem_unaware", "solution_seeking", "brand_specific", "comparison", "evaluation", "post_purchase"}},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "difficulty", Type: field.TypeInt, Default: 0},
		{Name: "position_in_audit", Type: field.TypeInt},
		{Name: "audit_id", Type: field.TypeString},
	}
	// AuditQueriesTable holds the schema information for the "audit_queries" table.
	AuditQueriesTable = &schema.Table{
		Name:       "audit_queries",
		Columns:    AuditQueriesColumns,
		PrimaryKey: []*schema.Column{AuditQueriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_queries_audits_queries",
				Columns:    []*schema.Column{AuditQueriesColumns[7]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditquery_audit_id",
				Unique:  false,
				Columns: []*schema.Column{AuditQueriesColumns[7]},
			},
			{
				Name:    "auditquery_audit_id_category",
				Unique:  false,
				Columns: []*schema.Column{AuditQueriesColumns[7], AuditQueriesColumns[2]},
			},
		},
	}
	// BatchInsightsColumns holds the columns for the "batch_insights" table.
	BatchInsightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"problem_unaware", "solution_seeking", "brand_specific", "comparison", "evaluation", "post_purchase"}},
		{Name: "batch_number", Type: field.TypeInt},
		{Name: "extraction_type", Type: field.TypeEnum, Enums: []string{"recommendations", "competitive_gaps", "content_opportunities"}},
		{Name: "insights", Type: field.TypeJSON},
		{Name: "response_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
	}
	// BatchInsightsTable holds the schema information for the "batch_insights" table.
	BatchInsightsTable = &schema.Table{
		Name:       "batch_insights",
		Columns:    BatchInsightsColumns,
		PrimaryKey: []*schema.Column{BatchInsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_insights_audits_batch_insights",
				Columns:    []*schema.Column{BatchInsightsColumns[7]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batchinsight_audit_id_category_batch_number_extraction_type",
				Unique:  true,
				Columns: []*schema.Column{BatchInsightsColumns[7], BatchInsightsColumns[1], BatchInsightsColumns[2], BatchInsightsColumns[3]},
			},
			{
				Name:    "batchinsight_audit_id",
				Unique:  false,
				Columns: []*schema.Column{BatchInsightsColumns[7]},
			},
		},
	}
	// CategoryAggregatesColumns holds the columns for the "category_aggregates" table.
	CategoryAggregatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"problem_unaware", "solution_seeking", "brand_specific", "comparison", "evaluation", "post_purchase"}},
		{Name: "response_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_geo_score", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_sov_score", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_sentiment", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_context_completeness", Type: field.TypeFloat64, Default: 0},
		{Name: "mention_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "top_themes", Type: field.TypeJSON, Nullable: true},
		{Name: "priority_recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "competitive_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
	}
	// CategoryAggregatesTable holds the schema information for the "category_aggregates" table.
	CategoryAggregatesTable = &schema.Table{
		Name:       "category_aggregates",
		Columns:    CategoryAggregatesColumns,
		PrimaryKey: []*schema.Column{CategoryAggregatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "category_aggregates_audits_category_aggregates",
				Columns:    []*schema.Column{CategoryAggregatesColumns[12]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "categoryaggregate_audit_id_category",
				Unique:  true,
				Columns: []*schema.Column{CategoryAggregatesColumns[12], CategoryAggregatesColumns[1]},
			},
		},
	}
	// DashboardSnapshotsColumns holds the columns for the "dashboard_snapshots" table.
	DashboardSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "total_queries", Type: field.TypeInt},
		{Name: "total_responses", Type: field.TypeInt},
		{Name: "platform_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "top_recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString, Unique: true},
	}
	// DashboardSnapshotsTable holds the schema information for the "dashboard_snapshots" table.
	DashboardSnapshotsTable = &schema.Table{
		Name:       "dashboard_snapshots",
		Columns:    DashboardSnapshotsColumns,
		PrimaryKey: []*schema.Column{DashboardSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dashboard_snapshots_audits_dashboard_snapshot",
				Columns:    []*schema.Column{DashboardSnapshotsColumns[8]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dashboardsnapshot_audit_id",
				Unique:  true,
				Columns: []*schema.Column{DashboardSnapshotsColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "audit_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_audit_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// ExecutiveSummariesColumns holds the columns for the "executive_summaries" table.
	ExecutiveSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "narrative", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "top_recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "risks", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString, Unique: true},
	}
	// ExecutiveSummariesTable holds the schema information for the "executive_summaries" table.
	ExecutiveSummariesTable = &schema.Table{
		Name:       "executive_summaries",
		Columns:    ExecutiveSummariesColumns,
		PrimaryKey: []*schema.Column{ExecutiveSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executive_summaries_audits_executive_summary",
				Columns:    []*schema.Column{ExecutiveSummariesColumns[6]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executivesummary_audit_id",
				Unique:  true,
				Columns: []*schema.Column{ExecutiveSummariesColumns[6]},
			},
		},
	}
	// ProviderLedgersColumns holds the columns for the "provider_ledgers" table.
	ProviderLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString, Unique: true},
		{Name: "daily_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "monthly_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "requests_today", Type: field.TypeInt, Default: 0},
		{Name: "last_reset", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderLedgersTable holds the schema information for the "provider_ledgers" table.
	ProviderLedgersTable = &schema.Table{
		Name:       "provider_ledgers",
		Columns:    ProviderLedgersColumns,
		PrimaryKey: []*schema.Column{ProviderLedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "providerledger_provider",
				Unique:  true,
				Columns: []*schema.Column{ProviderLedgersColumns[1]},
			},
		},
	}
	// ProviderResponsesColumns holds the columns for the "provider_responses" table.
	ProviderResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "query_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "citations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "brand_mentioned", Type: field.TypeBool, Default: false},
		{Name: "mention_count", Type: field.TypeInt, Default: 0},
		{Name: "mention_position", Type: field.TypeInt, Default: -1},
		{Name: "first_position_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "mention_context", Type: field.TypeString, Nullable: true},
		{Name: "sentiment", Type: field.TypeFloat64, Default: 0},
		{Name: "recommendation_strength", Type: field.TypeFloat64, Default: 0},
		{Name: "competitor_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "features_mentioned", Type: field.TypeJSON, Nullable: true},
		{Name: "value_props", Type: field.TypeJSON, Nullable: true},
		{Name: "featured_snippet_potential", Type: field.TypeFloat64, Default: 0},
		{Name: "voice_search_optimized", Type: field.TypeBool, Default: false},
		{Name: "geo_score", Type: field.TypeFloat64, Default: 0},
		{Name: "sov_score", Type: field.TypeFloat64, Default: 0},
		{Name: "context_completeness", Type: field.TypeFloat64, Default: 0},
		{Name: "buyer_journey_category", Type: field.TypeEnum, Nullable: true, Enums: []string{"problem_unaware", "solution_seeking", "brand_specific", "comparison", "evaluation", "post_purchase"}},
		{Name: "context_quality", Type: field.TypeFloat64, Default: 0},
		{Name: "additional_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "metrics_extracted_at", Type: field.TypeTime, Nullable: true},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "batch_number", Type: field.TypeInt, Default: 0},
		{Name: "batch_position", Type: field.TypeInt, Default: 0},
		{Name: "query_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "audit_id", Type: field.TypeString},
	}
	// ProviderResponsesTable holds the schema information for the "provider_responses" table.
	ProviderResponsesTable = &schema.Table{
		Name:       "provider_responses",
		Columns:    ProviderResponsesColumns,
		PrimaryKey: []*schema.Column{ProviderResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "provider_responses_audits_responses",
				Columns:    []*schema.Column{ProviderResponsesColumns[36]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "providerresponse_audit_id",
				Unique:  false,
				Columns: []*schema.Column{ProviderResponsesColumns[36]},
			},
			{
				Name:    "providerresponse_query_id_provider",
				Unique:  true,
				Columns: []*schema.Column{ProviderResponsesColumns[1], ProviderResponsesColumns[2]},
			},
			{
				Name:    "providerresponse_audit_id_batch_number",
				Unique:  false,
				Columns: []*schema.Column{ProviderResponsesColumns[36], ProviderResponsesColumns[33]},
			},
		},
	}
	// RankingSnapshotsColumns holds the columns for the "ranking_snapshots" table.
	RankingSnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "target_domain", Type: field.TypeString},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "rankings", Type: field.TypeJSON},
	}
	// RankingSnapshotsTable holds the schema information for the "ranking_snapshots" table.
	RankingSnapshotsTable = &schema.Table{
		Name:       "ranking_snapshots",
		Columns:    RankingSnapshotsColumns,
		PrimaryKey: []*schema.Column{RankingSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rankingsnapshot_target_domain_taken_at",
				Unique:  false,
				Columns: []*schema.Column{RankingSnapshotsColumns[1], RankingSnapshotsColumns[2]},
			},
		},
	}
	// StrategicPrioritiesColumns holds the columns for the "strategic_priorities" table.
	StrategicPrioritiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rank", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "impact_score", Type: field.TypeFloat64, Default: 0},
		{Name: "support_count", Type: field.TypeInt, Default: 0},
		{Name: "estimated_impact", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
	}
	// StrategicPrioritiesTable holds the schema information for the "strategic_priorities" table.
	StrategicPrioritiesTable = &schema.Table{
		Name:       "strategic_priorities",
		Columns:    StrategicPrioritiesColumns,
		PrimaryKey: []*schema.Column{StrategicPrioritiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "strategic_priorities_audits_strategic_priorities",
				Columns:    []*schema.Column{StrategicPrioritiesColumns[9]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "strategicpriority_audit_id_rank",
				Unique:  true,
				Columns: []*schema.Column{StrategicPrioritiesColumns[9], StrategicPrioritiesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditsTable,
		AuditQueriesTable,
		BatchInsightsTable,
		CategoryAggregatesTable,
		DashboardSnapshotsTable,
		EventsTable,
		ExecutiveSummariesTable,
		ProviderLedgersTable,
		ProviderResponsesTable,
		RankingSnapshotsTable,
		StrategicPrioritiesTable,
	}
)

func init() {
	AuditQueriesTable.ForeignKeys[0].RefTable = AuditsTable
	BatchInsightsTable.ForeignKeys[0].RefTable = AuditsTable
	CategoryAggregatesTable.ForeignKeys[0].RefTable = AuditsTable
	DashboardSnapshotsTable.ForeignKeys[0].RefTable = AuditsTable
	ExecutiveSummariesTable.ForeignKeys[0].RefTable = AuditsTable
	ProviderResponsesTable.ForeignKeys[0].RefTable = AuditsTable
	StrategicPrioritiesTable.ForeignKeys[0].RefTable = AuditsTable
}
