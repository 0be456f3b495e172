// Code generated by ent, DO NOT EDIT.

package audit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the audit type in the database.
	Label = "audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldCompanyDomain holds the string denoting the company_domain field in the database.
	FieldCompanyDomain = "company_domain"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldCompetitors holds the string denoting the competitors field in the database.
	FieldCompetitors = "competitors"
	// FieldBrandAliases holds the string denoting the brand_aliases field in the database.
	FieldBrandAliases = "brand_aliases"
	// FieldIncludeSubdomains holds the string denoting the include_subdomains field in the database.
	FieldIncludeSubdomains = "include_subdomains"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldTotalQueries holds the string denoting the total_queries field in the database.
	FieldTotalQueries = "total_queries"
	// FieldQueriesCompleted holds the string denoting the queries_completed field in the database.
	FieldQueriesCompleted = "queries_completed"
	// FieldProviderPriority holds the string denoting the provider_priority field in the database.
	FieldProviderPriority = "provider_priority"
	// FieldConcurrency holds the string denoting the concurrency field in the database.
	FieldConcurrency = "concurrency"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldVerifyWarning holds the string denoting the verify_warning field in the database.
	FieldVerifyWarning = "verify_warning"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeQueries holds the string denoting the queries edge name in mutations.
	EdgeQueries = "queries"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// EdgeBatchInsights holds the string denoting the batch_insights edge name in mutations.
	EdgeBatchInsights = "batch_insights"
	// EdgeCategoryAggregates holds the string denoting the category_aggregates edge name in mutations.
	EdgeCategoryAggregates = "category_aggregates"
	// EdgeStrategicPriorities holds the string denoting the strategic_priorities edge name in mutations.
	EdgeStrategicPriorities = "strategic_priorities"
	// EdgeExecutiveSummary holds the string denoting the executive_summary edge name in mutations.
	EdgeExecutiveSummary = "executive_summary"
	// EdgeDashboardSnapshot holds the string denoting the dashboard_snapshot edge name in mutations.
	EdgeDashboardSnapshot = "dashboard_snapshot"
	// AuditQueryFieldID holds the string denoting the ID field of the AuditQuery.
	AuditQueryFieldID = "query_id"
	// ProviderResponseFieldID holds the string denoting the ID field of the ProviderResponse.
	ProviderResponseFieldID = "response_id"
	// BatchInsightFieldID holds the string denoting the ID field of the BatchInsight.
	BatchInsightFieldID = "id"
	// CategoryAggregateFieldID holds the string denoting the ID field of the CategoryAggregate.
	CategoryAggregateFieldID = "id"
	// StrategicPriorityFieldID holds the string denoting the ID field of the StrategicPriority.
	StrategicPriorityFieldID = "id"
	// ExecutiveSummaryFieldID holds the string denoting the ID field of the ExecutiveSummary.
	ExecutiveSummaryFieldID = "id"
	// DashboardSnapshotFieldID holds the string denoting the ID field of the DashboardSnapshot.
	DashboardSnapshotFieldID = "id"
	// Table holds the table name of the audit in the database.
	Table = "audits"
	// QueriesTable is the table that holds the queries relation/edge.
	QueriesTable = "audit_queries"
	// QueriesInverseTable is the table name for the AuditQuery entity.
	// It exists in this package in order to avoid circular dependency with the "auditquery" package.
	QueriesInverseTable = "audit_queries"
	// QueriesColumn is the table column denoting the queries relation/edge.
	QueriesColumn = "audit_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "provider_responses"
	// ResponsesInverseTable is the table name for the ProviderResponse entity.
	// It exists in this package in order to avoid circular dependency with the "providerresponse" package.
	ResponsesInverseTable = "provider_responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "audit_id"
	// BatchInsightsTable is the table that holds the batch_insights relation/edge.
	BatchInsightsTable = "batch_insights"
	// BatchInsightsInverseTable is the table name for the BatchInsight entity.
	// It exists in this package in order to avoid circular dependency with the "batchinsight" package.
	BatchInsightsInverseTable = "batch_insights"
	// BatchInsightsColumn is the table column denoting the batch_insights relation/edge.
	BatchInsightsColumn = "audit_id"
	// CategoryAggregatesTable is the table that holds the category_aggregates relation/edge.
	CategoryAggregatesTable = "category_aggregates"
	// CategoryAggregatesInverseTable is the table name for the CategoryAggregate entity.
	// It exists in this package in order to avoid circular dependency with the "categoryaggregate" package.
	CategoryAggregatesInverseTable = "category_aggregates"
	// CategoryAggregatesColumn is the table column denoting the category_aggregates relation/edge.
	CategoryAggregatesColumn = "audit_id"
	// StrategicPrioritiesTable is the table that holds the strategic_priorities relation/edge.
	StrategicPrioritiesTable = "strategic_priorities"
	// StrategicPrioritiesInverseTable is the table name for the StrategicPriority entity.
	// It exists in this package in order to avoid circular dependency with the "strategicpriority" package.
	StrategicPrioritiesInverseTable = "strategic_priorities"
	// StrategicPrioritiesColumn is the table column denoting the strategic_priorities relation/edge.
	StrategicPrioritiesColumn = "audit_id"
	// ExecutiveSummaryTable is the table that holds the executive_summary relation/edge.
	ExecutiveSummaryTable = "executive_summaries"
	// ExecutiveSummaryInverseTable is the table name for the ExecutiveSummary entity.
	// It exists in this package in order to avoid circular dependency with the "executivesummary" package.
	ExecutiveSummaryInverseTable = "executive_summaries"
	// ExecutiveSummaryColumn is the table column denoting the executive_summary relation/edge.
	ExecutiveSummaryColumn = "audit_id"
	// DashboardSnapshotTable is the table that holds the dashboard_snapshot relation/edge.
	DashboardSnapshotTable = "dashboard_snapshots"
	// DashboardSnapshotInverseTable is the table name for the DashboardSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "dashboardsnapshot" package.
	DashboardSnapshotInverseTable = "dashboard_snapshots"
	// DashboardSnapshotColumn is the table column denoting the dashboard_snapshot relation/edge.
	DashboardSnapshotColumn = "audit_id"
)

// Columns holds all SQL columns for audit fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldCompanyDomain,
	FieldIndustry,
	FieldCompetitors,
	FieldBrandAliases,
	FieldIncludeSubdomains,
	FieldStatus,
	FieldPhase,
	FieldTotalQueries,
	FieldQueriesCompleted,
	FieldProviderPriority,
	FieldConcurrency,
	FieldCancelRequested,
	FieldVerifyWarning,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIncludeSubdomains holds the default value on creation for the "include_subdomains" field.
	DefaultIncludeSubdomains bool
	// DefaultTotalQueries holds the default value on creation for the "total_queries" field.
	DefaultTotalQueries int
	// DefaultQueriesCompleted holds the default value on creation for the "queries_completed" field.
	DefaultQueriesCompleted int
	// DefaultConcurrency holds the default value on creation for the "concurrency" field.
	DefaultConcurrency int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("audit: invalid enum value for status field: %q", s)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseQueryGen is the default value of the Phase enum.
const DefaultPhase = PhaseQueryGen

// Phase values.
const (
	PhaseQueryGen    Phase = "query_gen"
	PhaseFanOut      Phase = "fan_out"
	PhaseAnalyze     Phase = "analyze"
	PhaseAggregateL1 Phase = "aggregate_l1"
	PhaseAggregateL2 Phase = "aggregate_l2"
	PhaseAggregateL3 Phase = "aggregate_l3"
	PhaseDashboard   Phase = "dashboard"
	PhaseVerify      Phase = "verify"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseQueryGen, PhaseFanOut, PhaseAnalyze, PhaseAggregateL1, PhaseAggregateL2, PhaseAggregateL3, PhaseDashboard, PhaseVerify:
		return nil
	default:
		return fmt.Errorf("audit: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the Audit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByCompanyDomain orders the results by the company_domain field.
func ByCompanyDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyDomain, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByIncludeSubdomains orders the results by the include_subdomains field.
func ByIncludeSubdomains(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeSubdomains, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByTotalQueries orders the results by the total_queries field.
func ByTotalQueries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQueries, opts...).ToFunc()
}

// ByQueriesCompleted orders the results by the queries_completed field.
func ByQueriesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueriesCompleted, opts...).ToFunc()
}

// ByConcurrency orders the results by the concurrency field.
func ByConcurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrency, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByVerifyWarning orders the results by the verify_warning field.
func ByVerifyWarning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifyWarning, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByQueriesCount orders the results by queries count.
func ByQueriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQueriesStep(), opts...)
	}
}

// ByQueries orders the results by queries terms.
func ByQueries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQueriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByResponsesCount orders the results by responses count.
func ByResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResponsesStep(), opts...)
	}
}

// ByResponses orders the results by responses terms.
func ByResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBatchInsightsCount orders the results by batch_insights count.
func ByBatchInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBatchInsightsStep(), opts...)
	}
}

// ByBatchInsights orders the results by batch_insights terms.
func ByBatchInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCategoryAggregatesCount orders the results by category_aggregates count.
func ByCategoryAggregatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCategoryAggregatesStep(), opts...)
	}
}

// ByCategoryAggregates orders the results by category_aggregates terms.
func ByCategoryAggregates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryAggregatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStrategicPrioritiesCount orders the results by strategic_priorities count.
func ByStrategicPrioritiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStrategicPrioritiesStep(), opts...)
	}
}

// ByStrategicPriorities orders the results by strategic_priorities terms.
func ByStrategicPriorities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStrategicPrioritiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutiveSummaryField orders the results by executive_summary field.
func ByExecutiveSummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutiveSummaryStep(), sql.OrderByField(field, opts...))
	}
}

// ByDashboardSnapshotField orders the results by dashboard_snapshot field.
func ByDashboardSnapshotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDashboardSnapshotStep(), sql.OrderByField(field, opts...))
	}
}
func newQueriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QueriesInverseTable, AuditQueryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, ProviderResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
func newBatchInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInsightsInverseTable, BatchInsightFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BatchInsightsTable, BatchInsightsColumn),
	)
}
func newCategoryAggregatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryAggregatesInverseTable, CategoryAggregateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CategoryAggregatesTable, CategoryAggregatesColumn),
	)
}
func newStrategicPrioritiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StrategicPrioritiesInverseTable, StrategicPriorityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StrategicPrioritiesTable, StrategicPrioritiesColumn),
	)
}
func newExecutiveSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutiveSummaryInverseTable, ExecutiveSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ExecutiveSummaryTable, ExecutiveSummaryColumn),
	)
}
func newDashboardSnapshotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DashboardSnapshotInverseTable, DashboardSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DashboardSnapshotTable, DashboardSnapshotColumn),
	)
}
