// Code generated by ent, DO NOT EDIT.

package auditquery

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContainsFold(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldAuditID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldText, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldIntent, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldDifficulty, v))
}

// PositionInAudit applies equality check predicate on the "position_in_audit" field. It's identical to PositionInAuditEQ.
func PositionInAudit(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldPositionInAudit, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContainsFold(FieldAuditID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContainsFold(FieldText, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldCategory, vs...))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldContainsFold(FieldIntent, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldPriority, vs...))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldDifficulty, v))
}

// PositionInAuditEQ applies the EQ predicate on the "position_in_audit" field.
func PositionInAuditEQ(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldEQ(FieldPositionInAudit, v))
}

// PositionInAuditNEQ applies the NEQ predicate on the "position_in_audit" field.
func PositionInAuditNEQ(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNEQ(FieldPositionInAudit, v))
}

// PositionInAuditIn applies the In predicate on the "position_in_audit" field.
func PositionInAuditIn(vs ...int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldIn(FieldPositionInAudit, vs...))
}

// PositionInAuditNotIn applies the NotIn predicate on the "position_in_audit" field.
func PositionInAuditNotIn(vs ...int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldNotIn(FieldPositionInAudit, vs...))
}

// PositionInAuditGT applies the GT predicate on the "position_in_audit" field.
func PositionInAuditGT(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGT(FieldPositionInAudit, v))
}

// PositionInAuditGTE applies the GTE predicate on the "position_in_audit" field.
func PositionInAuditGTE(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldGTE(FieldPositionInAudit, v))
}

// PositionInAuditLT applies the LT predicate on the "position_in_audit" field.
func PositionInAuditLT(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLT(FieldPositionInAudit, v))
}

// PositionInAuditLTE applies the LTE predicate on the "position_in_audit" field.
func PositionInAuditLTE(v int) predicate.AuditQuery {
	return predicate.AuditQuery(sql.FieldLTE(FieldPositionInAudit, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditQuery {
	return predicate.AuditQuery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditQuery {
	return predicate.AuditQuery(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditQuery) predicate.AuditQuery {
	return predicate.AuditQuery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditQuery) predicate.AuditQuery {
	return predicate.AuditQuery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditQuery) predicate.AuditQuery {
	return predicate.AuditQuery(sql.NotPredicates(p))
}
