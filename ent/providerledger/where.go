// Code generated by ent, DO NOT EDIT.

package providerledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldProvider, v))
}

// DailyCost applies equality check predicate on the "daily_cost" field. It's identical to DailyCostEQ.
func DailyCost(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldDailyCost, v))
}

// MonthlyCost applies equality check predicate on the "monthly_cost" field. It's identical to MonthlyCostEQ.
func MonthlyCost(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldMonthlyCost, v))
}

// TotalCost applies equality check predicate on the "total_cost" field. It's identical to TotalCostEQ.
func TotalCost(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldTotalCost, v))
}

// RequestsToday applies equality check predicate on the "requests_today" field. It's identical to RequestsTodayEQ.
func RequestsToday(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldRequestsToday, v))
}

// LastReset applies equality check predicate on the "last_reset" field. It's identical to LastResetEQ.
func LastReset(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldLastReset, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldContainsFold(FieldProvider, v))
}

// DailyCostEQ applies the EQ predicate on the "daily_cost" field.
func DailyCostEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldDailyCost, v))
}

// DailyCostNEQ applies the NEQ predicate on the "daily_cost" field.
func DailyCostNEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldDailyCost, v))
}

// DailyCostIn applies the In predicate on the "daily_cost" field.
func DailyCostIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldDailyCost, vs...))
}

// DailyCostNotIn applies the NotIn predicate on the "daily_cost" field.
func DailyCostNotIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldDailyCost, vs...))
}

// DailyCostGT applies the GT predicate on the "daily_cost" field.
func DailyCostGT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldDailyCost, v))
}

// DailyCostGTE applies the GTE predicate on the "daily_cost" field.
func DailyCostGTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldDailyCost, v))
}

// DailyCostLT applies the LT predicate on the "daily_cost" field.
func DailyCostLT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldDailyCost, v))
}

// DailyCostLTE applies the LTE predicate on the "daily_cost" field.
func DailyCostLTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldDailyCost, v))
}

// MonthlyCostEQ applies the EQ predicate on the "monthly_cost" field.
func MonthlyCostEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldMonthlyCost, v))
}

// MonthlyCostNEQ applies the NEQ predicate on the "monthly_cost" field.
func MonthlyCostNEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldMonthlyCost, v))
}

// MonthlyCostIn applies the In predicate on the "monthly_cost" field.
func MonthlyCostIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldMonthlyCost, vs...))
}

// MonthlyCostNotIn applies the NotIn predicate on the "monthly_cost" field.
func MonthlyCostNotIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldMonthlyCost, vs...))
}

// MonthlyCostGT applies the GT predicate on the "monthly_cost" field.
func MonthlyCostGT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldMonthlyCost, v))
}

// MonthlyCostGTE applies the GTE predicate on the "monthly_cost" field.
func MonthlyCostGTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldMonthlyCost, v))
}

// MonthlyCostLT applies the LT predicate on the "monthly_cost" field.
func MonthlyCostLT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldMonthlyCost, v))
}

// MonthlyCostLTE applies the LTE predicate on the "monthly_cost" field.
func MonthlyCostLTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldMonthlyCost, v))
}

// TotalCostEQ applies the EQ predicate on the "total_cost" field.
func TotalCostEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldTotalCost, v))
}

// TotalCostNEQ applies the NEQ predicate on the "total_cost" field.
func TotalCostNEQ(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldTotalCost, v))
}

// TotalCostIn applies the In predicate on the "total_cost" field.
func TotalCostIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldTotalCost, vs...))
}

// TotalCostNotIn applies the NotIn predicate on the "total_cost" field.
func TotalCostNotIn(vs ...float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldTotalCost, vs...))
}

// TotalCostGT applies the GT predicate on the "total_cost" field.
func TotalCostGT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldTotalCost, v))
}

// TotalCostGTE applies the GTE predicate on the "total_cost" field.
func TotalCostGTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldTotalCost, v))
}

// TotalCostLT applies the LT predicate on the "total_cost" field.
func TotalCostLT(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldTotalCost, v))
}

// TotalCostLTE applies the LTE predicate on the "total_cost" field.
func TotalCostLTE(v float64) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldTotalCost, v))
}

// RequestsTodayEQ applies the EQ predicate on the "requests_today" field.
func RequestsTodayEQ(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldRequestsToday, v))
}

// RequestsTodayNEQ applies the NEQ predicate on the "requests_today" field.
func RequestsTodayNEQ(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldRequestsToday, v))
}

// RequestsTodayIn applies the In predicate on the "requests_today" field.
func RequestsTodayIn(vs ...int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldRequestsToday, vs...))
}

// RequestsTodayNotIn applies the NotIn predicate on the "requests_today" field.
func RequestsTodayNotIn(vs ...int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldRequestsToday, vs...))
}

// RequestsTodayGT applies the GT predicate on the "requests_today" field.
func RequestsTodayGT(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldRequestsToday, v))
}

// RequestsTodayGTE applies the GTE predicate on the "requests_today" field.
func RequestsTodayGTE(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldRequestsToday, v))
}

// RequestsTodayLT applies the LT predicate on the "requests_today" field.
func RequestsTodayLT(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldRequestsToday, v))
}

// RequestsTodayLTE applies the LTE predicate on the "requests_today" field.
func RequestsTodayLTE(v int) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldRequestsToday, v))
}

// LastResetEQ applies the EQ predicate on the "last_reset" field.
func LastResetEQ(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldLastReset, v))
}

// LastResetNEQ applies the NEQ predicate on the "last_reset" field.
func LastResetNEQ(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldLastReset, v))
}

// LastResetIn applies the In predicate on the "last_reset" field.
func LastResetIn(vs ...time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldLastReset, vs...))
}

// LastResetNotIn applies the NotIn predicate on the "last_reset" field.
func LastResetNotIn(vs ...time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldLastReset, vs...))
}

// LastResetGT applies the GT predicate on the "last_reset" field.
func LastResetGT(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldLastReset, v))
}

// LastResetGTE applies the GTE predicate on the "last_reset" field.
func LastResetGTE(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldLastReset, v))
}

// LastResetLT applies the LT predicate on the "last_reset" field.
func LastResetLT(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldLastReset, v))
}

// LastResetLTE applies the LTE predicate on the "last_reset" field.
func LastResetLTE(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldLastReset, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderLedger) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderLedger) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderLedger) predicate.ProviderLedger {
	return predicate.ProviderLedger(sql.NotPredicates(p))
}
