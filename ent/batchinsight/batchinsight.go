// Code generated by ent, DO NOT EDIT.

package batchinsight

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the batchinsight type in the database.
	Label = "batch_insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldBatchNumber holds the string denoting the batch_number field in the database.
	FieldBatchNumber = "batch_number"
	// FieldExtractionType holds the string denoting the extraction_type field in the database.
	FieldExtractionType = "extraction_type"
	// FieldInsights holds the string denoting the insights field in the database.
	FieldInsights = "insights"
	// FieldResponseIds holds the string denoting the response_ids field in the database.
	FieldResponseIds = "response_ids"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the batchinsight in the database.
	Table = "batch_insights"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "batch_insights"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for batchinsight fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldCategory,
	FieldBatchNumber,
	FieldExtractionType,
	FieldInsights,
	FieldResponseIds,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
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
		return fmt.Errorf("batchinsight: invalid enum value for category field: %q", c)
	}
}

// ExtractionType defines the type for the "extraction_type" enum field.
type ExtractionType string

// ExtractionType values.
const (
	ExtractionTypeRecommendations      ExtractionType = "recommendations"
	ExtractionTypeCompetitiveGaps      ExtractionType = "competitive_gaps"
	ExtractionTypeContentOpportunities ExtractionType = "content_opportunities"
)

func (et ExtractionType) String() string {
	return string(et)
}

// ExtractionTypeValidator is a validator for the "extraction_type" field enum values. It is called by the builders before save.
func ExtractionTypeValidator(et ExtractionType) error {
	switch et {
	case ExtractionTypeRecommendations, ExtractionTypeCompetitiveGaps, ExtractionTypeContentOpportunities:
		return nil
	default:
		return fmt.Errorf("batchinsight: invalid enum value for extraction_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the BatchInsight queries.
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

// ByBatchNumber orders the results by the batch_number field.
func ByBatchNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNumber, opts...).ToFunc()
}

// ByExtractionType orders the results by the extraction_type field.
func ByExtractionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionType, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
