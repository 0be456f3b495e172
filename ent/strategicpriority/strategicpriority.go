// Code generated by ent, DO NOT EDIT.

package strategicpriority

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the strategicpriority type in the database.
	Label = "strategic_priority"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldEvidenceRefs holds the string denoting the evidence_refs field in the database.
	FieldEvidenceRefs = "evidence_refs"
	// FieldImpactScore holds the string denoting the impact_score field in the database.
	FieldImpactScore = "impact_score"
	// FieldSupportCount holds the string denoting the support_count field in the database.
	FieldSupportCount = "support_count"
	// FieldEstimatedImpact holds the string denoting the estimated_impact field in the database.
	FieldEstimatedImpact = "estimated_impact"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the strategicpriority in the database.
	Table = "strategic_priorities"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "strategic_priorities"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for strategicpriority fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldRank,
	FieldTitle,
	FieldRationale,
	FieldEvidenceRefs,
	FieldImpactScore,
	FieldSupportCount,
	FieldEstimatedImpact,
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
	// DefaultImpactScore holds the default value on creation for the "impact_score" field.
	DefaultImpactScore float64
	// DefaultSupportCount holds the default value on creation for the "support_count" field.
	DefaultSupportCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EstimatedImpact defines the type for the "estimated_impact" enum field.
type EstimatedImpact string

// EstimatedImpactMedium is the default value of the EstimatedImpact enum.
const DefaultEstimatedImpact = EstimatedImpactMedium

// EstimatedImpact values.
const (
	EstimatedImpactLow    EstimatedImpact = "low"
	EstimatedImpactMedium EstimatedImpact = "medium"
	EstimatedImpactHigh   EstimatedImpact = "high"
)

func (ei EstimatedImpact) String() string {
	return string(ei)
}

// EstimatedImpactValidator is a validator for the "estimated_impact" field enum values. It is called by the builders before save.
func EstimatedImpactValidator(ei EstimatedImpact) error {
	switch ei {
	case EstimatedImpactLow, EstimatedImpactMedium, EstimatedImpactHigh:
		return nil
	default:
		return fmt.Errorf("strategicpriority: invalid enum value for estimated_impact field: %q", ei)
	}
}

// OrderOption defines the ordering options for the StrategicPriority queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByImpactScore orders the results by the impact_score field.
func ByImpactScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpactScore, opts...).ToFunc()
}

// BySupportCount orders the results by the support_count field.
func BySupportCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportCount, opts...).ToFunc()
}

// ByEstimatedImpact orders the results by the estimated_impact field.
func ByEstimatedImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedImpact, opts...).ToFunc()
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
