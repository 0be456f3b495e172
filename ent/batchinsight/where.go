// Code generated by ent, DO NOT EDIT.

package batchinsight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldAuditID, v))
}

// BatchNumber applies equality check predicate on the "batch_number" field. It's identical to BatchNumberEQ.
func BatchNumber(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldBatchNumber, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldUpdatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldContainsFold(FieldAuditID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldCategory, vs...))
}

// BatchNumberEQ applies the EQ predicate on the "batch_number" field.
func BatchNumberEQ(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchNumberNEQ applies the NEQ predicate on the "batch_number" field.
func BatchNumberNEQ(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldBatchNumber, v))
}

// BatchNumberIn applies the In predicate on the "batch_number" field.
func BatchNumberIn(vs ...int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldBatchNumber, vs...))
}

// BatchNumberNotIn applies the NotIn predicate on the "batch_number" field.
func BatchNumberNotIn(vs ...int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldBatchNumber, vs...))
}

// BatchNumberGT applies the GT predicate on the "batch_number" field.
func BatchNumberGT(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGT(FieldBatchNumber, v))
}

// BatchNumberGTE applies the GTE predicate on the "batch_number" field.
func BatchNumberGTE(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGTE(FieldBatchNumber, v))
}

// BatchNumberLT applies the LT predicate on the "batch_number" field.
func BatchNumberLT(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLT(FieldBatchNumber, v))
}

// BatchNumberLTE applies the LTE predicate on the "batch_number" field.
func BatchNumberLTE(v int) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLTE(FieldBatchNumber, v))
}

// ExtractionTypeEQ applies the EQ predicate on the "extraction_type" field.
func ExtractionTypeEQ(v ExtractionType) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldExtractionType, v))
}

// ExtractionTypeNEQ applies the NEQ predicate on the "extraction_type" field.
func ExtractionTypeNEQ(v ExtractionType) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldExtractionType, v))
}

// ExtractionTypeIn applies the In predicate on the "extraction_type" field.
func ExtractionTypeIn(vs ...ExtractionType) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldExtractionType, vs...))
}

// ExtractionTypeNotIn applies the NotIn predicate on the "extraction_type" field.
func ExtractionTypeNotIn(vs ...ExtractionType) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldExtractionType, vs...))
}

// ResponseIdsIsNil applies the IsNil predicate on the "response_ids" field.
func ResponseIdsIsNil() predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIsNull(FieldResponseIds))
}

// ResponseIdsNotNil applies the NotNil predicate on the "response_ids" field.
func ResponseIdsNotNil() predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotNull(FieldResponseIds))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BatchInsight {
	return predicate.BatchInsight(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.BatchInsight {
	return predicate.BatchInsight(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.BatchInsight {
	return predicate.BatchInsight(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchInsight) predicate.BatchInsight {
	return predicate.BatchInsight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchInsight) predicate.BatchInsight {
	return predicate.BatchInsight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchInsight) predicate.BatchInsight {
	return predicate.BatchInsight(sql.NotPredicates(p))
}
