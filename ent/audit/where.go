// Code generated by ent, DO NOT EDIT.

package audit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyDomain applies equality check predicate on the "company_domain" field. It's identical to CompanyDomainEQ.
func CompanyDomain(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompanyDomain, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIndustry, v))
}

// IncludeSubdomains applies equality check predicate on the "include_subdomains" field. It's identical to IncludeSubdomainsEQ.
func IncludeSubdomains(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIncludeSubdomains, v))
}

// TotalQueries applies equality check predicate on the "total_queries" field. It's identical to TotalQueriesEQ.
func TotalQueries(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldTotalQueries, v))
}

// QueriesCompleted applies equality check predicate on the "queries_completed" field. It's identical to QueriesCompletedEQ.
func QueriesCompleted(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldQueriesCompleted, v))
}

// Concurrency applies equality check predicate on the "concurrency" field. It's identical to ConcurrencyEQ.
func Concurrency(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldConcurrency, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCancelRequested, v))
}

// VerifyWarning applies equality check predicate on the "verify_warning" field. It's identical to VerifyWarningEQ.
func VerifyWarning(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldVerifyWarning, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldCompanyName, v))
}

// CompanyDomainEQ applies the EQ predicate on the "company_domain" field.
func CompanyDomainEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompanyDomain, v))
}

// CompanyDomainNEQ applies the NEQ predicate on the "company_domain" field.
func CompanyDomainNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCompanyDomain, v))
}

// CompanyDomainIn applies the In predicate on the "company_domain" field.
func CompanyDomainIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCompanyDomain, vs...))
}

// CompanyDomainNotIn applies the NotIn predicate on the "company_domain" field.
func CompanyDomainNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCompanyDomain, vs...))
}

// CompanyDomainGT applies the GT predicate on the "company_domain" field.
func CompanyDomainGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCompanyDomain, v))
}

// CompanyDomainGTE applies the GTE predicate on the "company_domain" field.
func CompanyDomainGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCompanyDomain, v))
}

// CompanyDomainLT applies the LT predicate on the "company_domain" field.
func CompanyDomainLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCompanyDomain, v))
}

// CompanyDomainLTE applies the LTE predicate on the "company_domain" field.
func CompanyDomainLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCompanyDomain, v))
}

// CompanyDomainContains applies the Contains predicate on the "company_domain" field.
func CompanyDomainContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldCompanyDomain, v))
}

// CompanyDomainHasPrefix applies the HasPrefix predicate on the "company_domain" field.
func CompanyDomainHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldCompanyDomain, v))
}

// CompanyDomainHasSuffix applies the HasSuffix predicate on the "company_domain" field.
func CompanyDomainHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldCompanyDomain, v))
}

// CompanyDomainEqualFold applies the EqualFold predicate on the "company_domain" field.
func CompanyDomainEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldCompanyDomain, v))
}

// CompanyDomainContainsFold applies the ContainsFold predicate on the "company_domain" field.
func CompanyDomainContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldCompanyDomain, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldIndustry, v))
}

// CompetitorsIsNil applies the IsNil predicate on the "competitors" field.
func CompetitorsIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldCompetitors))
}

// CompetitorsNotNil applies the NotNil predicate on the "competitors" field.
func CompetitorsNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldCompetitors))
}

// BrandAliasesIsNil applies the IsNil predicate on the "brand_aliases" field.
func BrandAliasesIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldBrandAliases))
}

// BrandAliasesNotNil applies the NotNil predicate on the "brand_aliases" field.
func BrandAliasesNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldBrandAliases))
}

// IncludeSubdomainsEQ applies the EQ predicate on the "include_subdomains" field.
func IncludeSubdomainsEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIncludeSubdomains, v))
}

// IncludeSubdomainsNEQ applies the NEQ predicate on the "include_subdomains" field.
func IncludeSubdomainsNEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldIncludeSubdomains, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStatus, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldPhase, vs...))
}

// TotalQueriesEQ applies the EQ predicate on the "total_queries" field.
func TotalQueriesEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldTotalQueries, v))
}

// TotalQueriesNEQ applies the NEQ predicate on the "total_queries" field.
func TotalQueriesNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldTotalQueries, v))
}

// TotalQueriesIn applies the In predicate on the "total_queries" field.
func TotalQueriesIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldTotalQueries, vs...))
}

// TotalQueriesNotIn applies the NotIn predicate on the "total_queries" field.
func TotalQueriesNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldTotalQueries, vs...))
}

// TotalQueriesGT applies the GT predicate on the "total_queries" field.
func TotalQueriesGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldTotalQueries, v))
}

// TotalQueriesGTE applies the GTE predicate on the "total_queries" field.
func TotalQueriesGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldTotalQueries, v))
}

// TotalQueriesLT applies the LT predicate on the "total_queries" field.
func TotalQueriesLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldTotalQueries, v))
}

// TotalQueriesLTE applies the LTE predicate on the "total_queries" field.
func TotalQueriesLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldTotalQueries, v))
}

// QueriesCompletedEQ applies the EQ predicate on the "queries_completed" field.
func QueriesCompletedEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldQueriesCompleted, v))
}

// QueriesCompletedNEQ applies the NEQ predicate on the "queries_completed" field.
func QueriesCompletedNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldQueriesCompleted, v))
}

// QueriesCompletedIn applies the In predicate on the "queries_completed" field.
func QueriesCompletedIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldQueriesCompleted, vs...))
}

// QueriesCompletedNotIn applies the NotIn predicate on the "queries_completed" field.
func QueriesCompletedNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldQueriesCompleted, vs...))
}

// QueriesCompletedGT applies the GT predicate on the "queries_completed" field.
func QueriesCompletedGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldQueriesCompleted, v))
}

// QueriesCompletedGTE applies the GTE predicate on the "queries_completed" field.
func QueriesCompletedGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldQueriesCompleted, v))
}

// QueriesCompletedLT applies the LT predicate on the "queries_completed" field.
func QueriesCompletedLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldQueriesCompleted, v))
}

// QueriesCompletedLTE applies the LTE predicate on the "queries_completed" field.
func QueriesCompletedLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldQueriesCompleted, v))
}

// ProviderPriorityIsNil applies the IsNil predicate on the "provider_priority" field.
func ProviderPriorityIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldProviderPriority))
}

// ProviderPriorityNotNil applies the NotNil predicate on the "provider_priority" field.
func ProviderPriorityNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldProviderPriority))
}

// ConcurrencyEQ applies the EQ predicate on the "concurrency" field.
func ConcurrencyEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldConcurrency, v))
}

// ConcurrencyNEQ applies the NEQ predicate on the "concurrency" field.
func ConcurrencyNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldConcurrency, v))
}

// ConcurrencyIn applies the In predicate on the "concurrency" field.
func ConcurrencyIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldConcurrency, vs...))
}

// ConcurrencyNotIn applies the NotIn predicate on the "concurrency" field.
func ConcurrencyNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldConcurrency, vs...))
}

// ConcurrencyGT applies the GT predicate on the "concurrency" field.
func ConcurrencyGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldConcurrency, v))
}

// ConcurrencyGTE applies the GTE predicate on the "concurrency" field.
func ConcurrencyGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldConcurrency, v))
}

// ConcurrencyLT applies the LT predicate on the "concurrency" field.
func ConcurrencyLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldConcurrency, v))
}

// ConcurrencyLTE applies the LTE predicate on the "concurrency" field.
func ConcurrencyLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldConcurrency, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCancelRequested, v))
}

// VerifyWarningEQ applies the EQ predicate on the "verify_warning" field.
func VerifyWarningEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldVerifyWarning, v))
}

// VerifyWarningNEQ applies the NEQ predicate on the "verify_warning" field.
func VerifyWarningNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldVerifyWarning, v))
}

// VerifyWarningIn applies the In predicate on the "verify_warning" field.
func VerifyWarningIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldVerifyWarning, vs...))
}

// VerifyWarningNotIn applies the NotIn predicate on the "verify_warning" field.
func VerifyWarningNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldVerifyWarning, vs...))
}

// VerifyWarningGT applies the GT predicate on the "verify_warning" field.
func VerifyWarningGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldVerifyWarning, v))
}

// VerifyWarningGTE applies the GTE predicate on the "verify_warning" field.
func VerifyWarningGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldVerifyWarning, v))
}

// VerifyWarningLT applies the LT predicate on the "verify_warning" field.
func VerifyWarningLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldVerifyWarning, v))
}

// VerifyWarningLTE applies the LTE predicate on the "verify_warning" field.
func VerifyWarningLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldVerifyWarning, v))
}

// VerifyWarningContains applies the Contains predicate on the "verify_warning" field.
func VerifyWarningContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldVerifyWarning, v))
}

// VerifyWarningHasPrefix applies the HasPrefix predicate on the "verify_warning" field.
func VerifyWarningHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldVerifyWarning, v))
}

// VerifyWarningHasSuffix applies the HasSuffix predicate on the "verify_warning" field.
func VerifyWarningHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldVerifyWarning, v))
}

// VerifyWarningIsNil applies the IsNil predicate on the "verify_warning" field.
func VerifyWarningIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldVerifyWarning))
}

// VerifyWarningNotNil applies the NotNil predicate on the "verify_warning" field.
func VerifyWarningNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldVerifyWarning))
}

// VerifyWarningEqualFold applies the EqualFold predicate on the "verify_warning" field.
func VerifyWarningEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldVerifyWarning, v))
}

// VerifyWarningContainsFold applies the ContainsFold predicate on the "verify_warning" field.
func VerifyWarningContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldVerifyWarning, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasQueries applies the HasEdge predicate on the "queries" edge.
func HasQueries() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueriesWith applies the HasEdge predicate on the "queries" edge with a given conditions (other predicates).
func HasQueriesWith(preds ...predicate.AuditQuery) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newQueriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.ProviderResponse) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatchInsights applies the HasEdge predicate on the "batch_insights" edge.
func HasBatchInsights() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchInsightsTable, BatchInsightsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchInsightsWith applies the HasEdge predicate on the "batch_insights" edge with a given conditions (other predicates).
func HasBatchInsightsWith(preds ...predicate.BatchInsight) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newBatchInsightsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategoryAggregates applies the HasEdge predicate on the "category_aggregates" edge.
func HasCategoryAggregates() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CategoryAggregatesTable, CategoryAggregatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryAggregatesWith applies the HasEdge predicate on the "category_aggregates" edge with a given conditions (other predicates).
func HasCategoryAggregatesWith(preds ...predicate.CategoryAggregate) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newCategoryAggregatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStrategicPriorities applies the HasEdge predicate on the "strategic_priorities" edge.
func HasStrategicPriorities() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StrategicPrioritiesTable, StrategicPrioritiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStrategicPrioritiesWith applies the HasEdge predicate on the "strategic_priorities" edge with a given conditions (other predicates).
func HasStrategicPrioritiesWith(preds ...predicate.StrategicPriority) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newStrategicPrioritiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutiveSummary applies the HasEdge predicate on the "executive_summary" edge.
func HasExecutiveSummary() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ExecutiveSummaryTable, ExecutiveSummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutiveSummaryWith applies the HasEdge predicate on the "executive_summary" edge with a given conditions (other predicates).
func HasExecutiveSummaryWith(preds ...predicate.ExecutiveSummary) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newExecutiveSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDashboardSnapshot applies the HasEdge predicate on the "dashboard_snapshot" edge.
func HasDashboardSnapshot() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DashboardSnapshotTable, DashboardSnapshotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDashboardSnapshotWith applies the HasEdge predicate on the "dashboard_snapshot" edge with a given conditions (other predicates).
func HasDashboardSnapshotWith(preds ...predicate.DashboardSnapshot) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newDashboardSnapshotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.NotPredicates(p))
}
