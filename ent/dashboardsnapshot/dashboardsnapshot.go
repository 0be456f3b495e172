// Code generated by ent, DO NOT EDIT.

package dashboardsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dashboardsnapshot type in the database.
	Label = "dashboard_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldTotalQueries holds the string denoting the total_queries field in the database.
	FieldTotalQueries = "total_queries"
	// FieldTotalResponses holds the string denoting the total_responses field in the database.
	FieldTotalResponses = "total_responses"
	// FieldPlatformBreakdown holds the string denoting the platform_breakdown field in the database.
	FieldPlatformBreakdown = "platform_breakdown"
	// FieldTopRecommendations holds the string denoting the top_recommendations field in the database.
	FieldTopRecommendations = "top_recommendations"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the dashboardsnapshot in the database.
	Table = "dashboard_snapshots"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "dashboard_snapshots"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for dashboardsnapshot fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldOverallScore,
	FieldTotalQueries,
	FieldTotalResponses,
	FieldPlatformBreakdown,
	FieldTopRecommendations,
	FieldTotalCost,
	FieldGeneratedAt,
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
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// UpdateDefaultGeneratedAt holds the default value on update for the "generated_at" field.
	UpdateDefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the DashboardSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByTotalQueries orders the results by the total_queries field.
func ByTotalQueries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQueries, opts...).ToFunc()
}

// ByTotalResponses orders the results by the total_responses field.
func ByTotalResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalResponses, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByAuditField orders the results by audit field.
func ByAuditField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
	)
}
