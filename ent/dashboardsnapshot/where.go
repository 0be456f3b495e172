// Code generated by ent, DO NOT EDIT.

package dashboardsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldAuditID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldOverallScore, v))
}

// TotalQueries applies equality check predicate on the "total_queries" field. It's identical to TotalQueriesEQ.
func TotalQueries(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalQueries, v))
}

// TotalResponses applies equality check predicate on the "total_responses" field. It's identical to TotalResponsesEQ.
func TotalResponses(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalResponses, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalCost, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldGeneratedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldContainsFold(FieldAuditID, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldOverallScore, v))
}

// TotalQueriesEQ applies the EQ predicate on the "total_queries" field.
func TotalQueriesEQ(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalQueries, v))
}

// TotalQueriesNEQ applies the NEQ predicate on the "total_queries" field.
func TotalQueriesNEQ(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldTotalQueries, v))
}

// TotalQueriesIn applies the In predicate on the "total_queries" field.
func TotalQueriesIn(vs ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldTotalQueries, vs...))
}

// TotalQueriesNotIn applies the NotIn predicate on the "total_queries" field.
func TotalQueriesNotIn(vs ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldTotalQueries, vs...))
}

// TotalQueriesGT applies the GT predicate on the "total_queries" field.
func TotalQueriesGT(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldTotalQueries, v))
}

// TotalQueriesGTE applies the GTE predicate on the "total_queries" field.
func TotalQueriesGTE(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldTotalQueries, v))
}

// TotalQueriesLT applies the LT predicate on the "total_queries" field.
func TotalQueriesLT(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldTotalQueries, v))
}

// TotalQueriesLTE applies the LTE predicate on the "total_queries" field.
func TotalQueriesLTE(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldTotalQueries, v))
}

// TotalResponsesEQ applies the EQ predicate on the "total_responses" field.
func TotalResponsesEQ(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalResponses, v))
}

// TotalResponsesNEQ applies the NEQ predicate on the "total_responses" field.
func TotalResponsesNEQ(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldTotalResponses, v))
}

// TotalResponsesIn applies the In predicate on the "total_responses" field.
func TotalResponsesIn(vs ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldTotalResponses, vs...))
}

// TotalResponsesNotIn applies the NotIn predicate on the "total_responses" field.
func TotalResponsesNotIn(vs ...int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldTotalResponses, vs...))
}

// TotalResponsesGT applies the GT predicate on the "total_responses" field.
func TotalResponsesGT(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldTotalResponses, v))
}

// TotalResponsesGTE applies the GTE predicate on the "total_responses" field.
func TotalResponsesGTE(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldTotalResponses, v))
}

// TotalResponsesLT applies the LT predicate on the "total_responses" field.
func TotalResponsesLT(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldTotalResponses, v))
}

// TotalResponsesLTE applies the LTE predicate on the "total_responses" field.
func TotalResponsesLTE(v int) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldTotalResponses, v))
}

// PlatformBreakdownIsNil applies the IsNil predicate on the "platform_breakdown" field.
func PlatformBreakdownIsNil() predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIsNull(FieldPlatformBreakdown))
}

// PlatformBreakdownNotNil applies the NotNil predicate on the "platform_breakdown" field.
func PlatformBreakdownNotNil() predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotNull(FieldPlatformBreakdown))
}

// TopRecommendationsIsNil applies the IsNil predicate on the "top_recommendations" field.
func TopRecommendationsIsNil() predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIsNull(FieldTopRecommendations))
}

// TopRecommendationsNotNil applies the NotNil predicate on the "top_recommendations" field.
func TopRecommendationsNotNil() predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotNull(FieldTopRecommendations))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldTotalCost, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.FieldLTE(FieldGeneratedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DashboardSnapshot) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DashboardSnapshot) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DashboardSnapshot) predicate.DashboardSnapshot {
	return predicate.DashboardSnapshot(sql.NotPredicates(p))
}
