// Code generated by ent, DO NOT EDIT.

package strategicpriority

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldAuditID, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldRank, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldTitle, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldRationale, v))
}

// ImpactScore applies equality check predicate on the "impact_score" field. It's identical to ImpactScoreEQ.
func ImpactScore(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldImpactScore, v))
}

// SupportCount applies equality check predicate on the "support_count" field. It's identical to SupportCountEQ.
func SupportCount(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldSupportCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContainsFold(FieldAuditID, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldRank, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContainsFold(FieldTitle, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldContainsFold(FieldRationale, v))
}

// EvidenceRefsIsNil applies the IsNil predicate on the "evidence_refs" field.
func EvidenceRefsIsNil() predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIsNull(FieldEvidenceRefs))
}

// EvidenceRefsNotNil applies the NotNil predicate on the "evidence_refs" field.
func EvidenceRefsNotNil() predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotNull(FieldEvidenceRefs))
}

// ImpactScoreEQ applies the EQ predicate on the "impact_score" field.
func ImpactScoreEQ(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldImpactScore, v))
}

// ImpactScoreNEQ applies the NEQ predicate on the "impact_score" field.
func ImpactScoreNEQ(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldImpactScore, v))
}

// ImpactScoreIn applies the In predicate on the "impact_score" field.
func ImpactScoreIn(vs ...float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldImpactScore, vs...))
}

// ImpactScoreNotIn applies the NotIn predicate on the "impact_score" field.
func ImpactScoreNotIn(vs ...float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldImpactScore, vs...))
}

// ImpactScoreGT applies the GT predicate on the "impact_score" field.
func ImpactScoreGT(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldImpactScore, v))
}

// ImpactScoreGTE applies the GTE predicate on the "impact_score" field.
func ImpactScoreGTE(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldImpactScore, v))
}

// ImpactScoreLT applies the LT predicate on the "impact_score" field.
func ImpactScoreLT(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldImpactScore, v))
}

// ImpactScoreLTE applies the LTE predicate on the "impact_score" field.
func ImpactScoreLTE(v float64) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldImpactScore, v))
}

// SupportCountEQ applies the EQ predicate on the "support_count" field.
func SupportCountEQ(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldSupportCount, v))
}

// SupportCountNEQ applies the NEQ predicate on the "support_count" field.
func SupportCountNEQ(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldSupportCount, v))
}

// SupportCountIn applies the In predicate on the "support_count" field.
func SupportCountIn(vs ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldSupportCount, vs...))
}

// SupportCountNotIn applies the NotIn predicate on the "support_count" field.
func SupportCountNotIn(vs ...int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldSupportCount, vs...))
}

// SupportCountGT applies the GT predicate on the "support_count" field.
func SupportCountGT(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldSupportCount, v))
}

// SupportCountGTE applies the GTE predicate on the "support_count" field.
func SupportCountGTE(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldSupportCount, v))
}

// SupportCountLT applies the LT predicate on the "support_count" field.
func SupportCountLT(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldSupportCount, v))
}

// SupportCountLTE applies the LTE predicate on the "support_count" field.
func SupportCountLTE(v int) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldSupportCount, v))
}

// EstimatedImpactEQ applies the EQ predicate on the "estimated_impact" field.
func EstimatedImpactEQ(v EstimatedImpact) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldEstimatedImpact, v))
}

// EstimatedImpactNEQ applies the NEQ predicate on the "estimated_impact" field.
func EstimatedImpactNEQ(v EstimatedImpact) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldEstimatedImpact, v))
}

// EstimatedImpactIn applies the In predicate on the "estimated_impact" field.
func EstimatedImpactIn(vs ...EstimatedImpact) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldEstimatedImpact, vs...))
}

// EstimatedImpactNotIn applies the NotIn predicate on the "estimated_impact" field.
func EstimatedImpactNotIn(vs ...EstimatedImpact) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldEstimatedImpact, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.StrategicPriority {
	return predicate.StrategicPriority(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.StrategicPriority {
	return predicate.StrategicPriority(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StrategicPriority) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StrategicPriority) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StrategicPriority) predicate.StrategicPriority {
	return predicate.StrategicPriority(sql.NotPredicates(p))
}
