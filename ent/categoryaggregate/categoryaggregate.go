// Code generated by ent, DO NOT EDIT.

package categoryaggregate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the categoryaggregate type in the database.
	Label = "category_aggregate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldResponseCount holds the string denoting the response_count field in the database.
	FieldResponseCount = "response_count"
	// FieldAvgGeoScore holds the string denoting the avg_geo_score field in the database.
	FieldAvgGeoScore = "avg_geo_score"
	// FieldAvgSovScore holds the string denoting the avg_sov_score field in the database.
	FieldAvgSovScore = "avg_sov_score"
	// FieldAvgSentiment holds the string denoting the avg_sentiment field in the database.
	FieldAvgSentiment = "avg_sentiment"
	// FieldAvgContextCompleteness holds the string denoting the avg_context_completeness field in the database.
	FieldAvgContextCompleteness = "avg_context_completeness"
	// FieldMentionRate holds the string denoting the mention_rate field in the database.
	FieldMentionRate = "mention_rate"
	// FieldTopThemes holds the string denoting the top_themes field in the database.
	FieldTopThemes = "top_themes"
	// FieldPriorityRecommendations holds the string denoting the priority_recommendations field in the database.
	FieldPriorityRecommendations = "priority_recommendations"
	// FieldCompetitiveSummary holds the string denoting the competitive_summary field in the database.
	FieldCompetitiveSummary = "competitive_summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the categoryaggregate in the database.
	Table = "category_aggregates"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "category_aggregates"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for categoryaggregate fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldCategory,
	FieldResponseCount,
	FieldAvgGeoScore,
	FieldAvgSovScore,
	FieldAvgSentiment,
	FieldAvgContextCompleteness,
	FieldMentionRate,
	FieldTopThemes,
	FieldPriorityRecommendations,
	FieldCompetitiveSummary,
	FieldCreatedAt,
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
	// DefaultResponseCount holds the default value on creation for the "response_count" field.
	DefaultResponseCount int
	// DefaultAvgGeoScore holds the default value on creation for the "avg_geo_score" field.
	DefaultAvgGeoScore float64
	// DefaultAvgSovScore holds the default value on creation for the "avg_sov_score" field.
	DefaultAvgSovScore float64
	// DefaultAvgSentiment holds the default value on creation for the "avg_sentiment" field.
	DefaultAvgSentiment float64
	// DefaultAvgContextCompleteness holds the default value on creation for the "avg_context_completeness" field.
	DefaultAvgContextCompleteness float64
	// DefaultMentionRate holds the default value on creation for the "mention_rate" field.
	DefaultMentionRate float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryProblemUnaware  Category = "problem_unaware"
	CategorySolutionSeeking Category = "solution_seeking"
	CategoryBrandSpecific   Category = "brand_specific"
	CategoryComparison      Category = "comparison"
	CategoryEvaluation      Category = "evaluation"
	CategoryPostPurchase    Category = "post_purchase"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryProblemUnaware, CategorySolutionSeeking, CategoryBrandSpecific, CategoryComparison, CategoryEvaluation, CategoryPostPurchase:
		return nil
	default:
		return fmt.Errorf("categoryaggregate: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the CategoryAggregate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByResponseCount orders the results by the response_count field.
func ByResponseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseCount, opts...).ToFunc()
}

// ByAvgGeoScore orders the results by the avg_geo_score field.
func ByAvgGeoScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgGeoScore, opts...).ToFunc()
}

// ByAvgSovScore orders the results by the avg_sov_score field.
func ByAvgSovScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgSovScore, opts...).ToFunc()
}

// ByAvgSentiment orders the results by the avg_sentiment field.
func ByAvgSentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgSentiment, opts...).ToFunc()
}

// ByAvgContextCompleteness orders the results by the avg_context_completeness field.
func ByAvgContextCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgContextCompleteness, opts...).ToFunc()
}

// ByMentionRate orders the results by the mention_rate field.
func ByMentionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionRate, opts...).ToFunc()
}

// ByCompetitiveSummary orders the results by the competitive_summary field.
func ByCompetitiveSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetitiveSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
