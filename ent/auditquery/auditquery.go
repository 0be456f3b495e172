// Code generated by ent, DO NOT EDIT.

package auditquery

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the auditquery type in the database.
	Label = "audit_query"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "query_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldPositionInAudit holds the string denoting the position_in_audit field in the database.
	FieldPositionInAudit = "position_in_audit"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the auditquery in the database.
	Table = "audit_queries"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "audit_queries"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for auditquery fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldText,
	FieldCategory,
	FieldIntent,
	FieldPriority,
	FieldDifficulty,
	FieldPositionInAudit,
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
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
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
		return fmt.Errorf("auditquery: invalid enum value for category field: %q", c)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("auditquery: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the AuditQuery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByPositionInAudit orders the results by the position_in_audit field.
func ByPositionInAudit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionInAudit, opts...).ToFunc()
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
