// Code generated by ent, DO NOT EDIT.

package rankingsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldContainsFold(FieldID, id))
}

// TargetDomain applies equality check predicate on the "target_domain" field. It's identical to TargetDomainEQ.
func TargetDomain(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldTargetDomain, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TargetDomainEQ applies the EQ predicate on the "target_domain" field.
func TargetDomainEQ(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldTargetDomain, v))
}

// TargetDomainNEQ applies the NEQ predicate on the "target_domain" field.
func TargetDomainNEQ(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNEQ(FieldTargetDomain, v))
}

// TargetDomainIn applies the In predicate on the "target_domain" field.
func TargetDomainIn(vs ...string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldIn(FieldTargetDomain, vs...))
}

// TargetDomainNotIn applies the NotIn predicate on the "target_domain" field.
func TargetDomainNotIn(vs ...string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNotIn(FieldTargetDomain, vs...))
}

// TargetDomainGT applies the GT predicate on the "target_domain" field.
func TargetDomainGT(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGT(FieldTargetDomain, v))
}

// TargetDomainGTE applies the GTE predicate on the "target_domain" field.
func TargetDomainGTE(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGTE(FieldTargetDomain, v))
}

// TargetDomainLT applies the LT predicate on the "target_domain" field.
func TargetDomainLT(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLT(FieldTargetDomain, v))
}

// TargetDomainLTE applies the LTE predicate on the "target_domain" field.
func TargetDomainLTE(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLTE(FieldTargetDomain, v))
}

// TargetDomainContains applies the Contains predicate on the "target_domain" field.
func TargetDomainContains(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldContains(FieldTargetDomain, v))
}

// TargetDomainHasPrefix applies the HasPrefix predicate on the "target_domain" field.
func TargetDomainHasPrefix(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldHasPrefix(FieldTargetDomain, v))
}

// TargetDomainHasSuffix applies the HasSuffix predicate on the "target_domain" field.
func TargetDomainHasSuffix(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldHasSuffix(FieldTargetDomain, v))
}

// TargetDomainEqualFold applies the EqualFold predicate on the "target_domain" field.
func TargetDomainEqualFold(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEqualFold(FieldTargetDomain, v))
}

// TargetDomainContainsFold applies the ContainsFold predicate on the "target_domain" field.
func TargetDomainContainsFold(v string) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldContainsFold(FieldTargetDomain, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RankingSnapshot) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RankingSnapshot) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RankingSnapshot) predicate.RankingSnapshot {
	return predicate.RankingSnapshot(sql.NotPredicates(p))
}
