// Code generated by ent, DO NOT EDIT.

package executivesummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldAuditID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldOverallScore, v))
}

// Narrative applies equality check predicate on the "narrative" field. It's identical to NarrativeEQ.
func Narrative(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldNarrative, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldContainsFold(FieldAuditID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLTE(FieldOverallScore, v))
}

// NarrativeEQ applies the EQ predicate on the "narrative" field.
func NarrativeEQ(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldNarrative, v))
}

// NarrativeNEQ applies the NEQ predicate on the "narrative" field.
func NarrativeNEQ(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNEQ(FieldNarrative, v))
}

// NarrativeIn applies the In predicate on the "narrative" field.
func NarrativeIn(vs ...string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIn(FieldNarrative, vs...))
}

// NarrativeNotIn applies the NotIn predicate on the "narrative" field.
func NarrativeNotIn(vs ...string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotIn(FieldNarrative, vs...))
}

// NarrativeGT applies the GT predicate on the "narrative" field.
func NarrativeGT(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGT(FieldNarrative, v))
}

// NarrativeGTE applies the GTE predicate on the "narrative" field.
func NarrativeGTE(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGTE(FieldNarrative, v))
}

// NarrativeLT applies the LT predicate on the "narrative" field.
func NarrativeLT(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLT(FieldNarrative, v))
}

// NarrativeLTE applies the LTE predicate on the "narrative" field.
func NarrativeLTE(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLTE(FieldNarrative, v))
}

// NarrativeContains applies the Contains predicate on the "narrative" field.
func NarrativeContains(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldContains(FieldNarrative, v))
}

// NarrativeHasPrefix applies the HasPrefix predicate on the "narrative" field.
func NarrativeHasPrefix(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldHasPrefix(FieldNarrative, v))
}

// NarrativeHasSuffix applies the HasSuffix predicate on the "narrative" field.
func NarrativeHasSuffix(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldHasSuffix(FieldNarrative, v))
}

// NarrativeIsNil applies the IsNil predicate on the "narrative" field.
func NarrativeIsNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIsNull(FieldNarrative))
}

// NarrativeNotNil applies the NotNil predicate on the "narrative" field.
func NarrativeNotNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotNull(FieldNarrative))
}

// NarrativeEqualFold applies the EqualFold predicate on the "narrative" field.
func NarrativeEqualFold(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEqualFold(FieldNarrative, v))
}

// NarrativeContainsFold applies the ContainsFold predicate on the "narrative" field.
func NarrativeContainsFold(v string) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldContainsFold(FieldNarrative, v))
}

// TopRecommendationsIsNil applies the IsNil predicate on the "top_recommendations" field.
func TopRecommendationsIsNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIsNull(FieldTopRecommendations))
}

// TopRecommendationsNotNil applies the NotNil predicate on the "top_recommendations" field.
func TopRecommendationsNotNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotNull(FieldTopRecommendations))
}

// RisksIsNil applies the IsNil predicate on the "risks" field.
func RisksIsNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIsNull(FieldRisks))
}

// RisksNotNil applies the NotNil predicate on the "risks" field.
func RisksNotNil() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotNull(FieldRisks))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutiveSummary) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutiveSummary) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutiveSummary) predicate.ExecutiveSummary {
	return predicate.ExecutiveSummary(sql.NotPredicates(p))
}
