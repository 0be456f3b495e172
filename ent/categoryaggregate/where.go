// Code generated by ent, DO NOT EDIT.

package categoryaggregate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAuditID, v))
}

// ResponseCount applies equality check predicate on the "response_count" field. It's identical to ResponseCountEQ.
func ResponseCount(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldResponseCount, v))
}

// AvgGeoScore applies equality check predicate on the "avg_geo_score" field. It's identical to AvgGeoScoreEQ.
func AvgGeoScore(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgGeoScore, v))
}

// AvgSovScore applies equality check predicate on the "avg_sov_score" field. It's identical to AvgSovScoreEQ.
func AvgSovScore(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgSovScore, v))
}

// AvgSentiment applies equality check predicate on the "avg_sentiment" field. It's identical to AvgSentimentEQ.
func AvgSentiment(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgSentiment, v))
}

// AvgContextCompleteness applies equality check predicate on the "avg_context_completeness" field. It's identical to AvgContextCompletenessEQ.
func AvgContextCompleteness(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgContextCompleteness, v))
}

// MentionRate applies equality check predicate on the "mention_rate" field. It's identical to MentionRateEQ.
func MentionRate(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldMentionRate, v))
}

// CompetitiveSummary applies equality check predicate on the "competitive_summary" field. It's identical to CompetitiveSummaryEQ.
func CompetitiveSummary(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldCompetitiveSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldContainsFold(FieldAuditID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldCategory, vs...))
}

// ResponseCountEQ applies the EQ predicate on the "response_count" field.
func ResponseCountEQ(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldResponseCount, v))
}

// ResponseCountNEQ applies the NEQ predicate on the "response_count" field.
func ResponseCountNEQ(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldResponseCount, v))
}

// ResponseCountIn applies the In predicate on the "response_count" field.
func ResponseCountIn(vs ...int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldResponseCount, vs...))
}

// ResponseCountNotIn applies the NotIn predicate on the "response_count" field.
func ResponseCountNotIn(vs ...int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldResponseCount, vs...))
}

// ResponseCountGT applies the GT predicate on the "response_count" field.
func ResponseCountGT(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldResponseCount, v))
}

// ResponseCountGTE applies the GTE predicate on the "response_count" field.
func ResponseCountGTE(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldResponseCount, v))
}

// ResponseCountLT applies the LT predicate on the "response_count" field.
func ResponseCountLT(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldResponseCount, v))
}

// ResponseCountLTE applies the LTE predicate on the "response_count" field.
func ResponseCountLTE(v int) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldResponseCount, v))
}

// AvgGeoScoreEQ applies the EQ predicate on the "avg_geo_score" field.
func AvgGeoScoreEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgGeoScore, v))
}

// AvgGeoScoreNEQ applies the NEQ predicate on the "avg_geo_score" field.
func AvgGeoScoreNEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldAvgGeoScore, v))
}

// AvgGeoScoreIn applies the In predicate on the "avg_geo_score" field.
func AvgGeoScoreIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldAvgGeoScore, vs...))
}

// AvgGeoScoreNotIn applies the NotIn predicate on the "avg_geo_score" field.
func AvgGeoScoreNotIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldAvgGeoScore, vs...))
}

// AvgGeoScoreGT applies the GT predicate on the "avg_geo_score" field.
func AvgGeoScoreGT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldAvgGeoScore, v))
}

// AvgGeoScoreGTE applies the GTE predicate on the "avg_geo_score" field.
func AvgGeoScoreGTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldAvgGeoScore, v))
}

// AvgGeoScoreLT applies the LT predicate on the "avg_geo_score" field.
func AvgGeoScoreLT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldAvgGeoScore, v))
}

// AvgGeoScoreLTE applies the LTE predicate on the "avg_geo_score" field.
func AvgGeoScoreLTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldAvgGeoScore, v))
}

// AvgSovScoreEQ applies the EQ predicate on the "avg_sov_score" field.
func AvgSovScoreEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgSovScore, v))
}

// AvgSovScoreNEQ applies the NEQ predicate on the "avg_sov_score" field.
func AvgSovScoreNEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldAvgSovScore, v))
}

// AvgSovScoreIn applies the In predicate on the "avg_sov_score" field.
func AvgSovScoreIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldAvgSovScore, vs...))
}

// AvgSovScoreNotIn applies the NotIn predicate on the "avg_sov_score" field.
func AvgSovScoreNotIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldAvgSovScore, vs...))
}

// AvgSovScoreGT applies the GT predicate on the "avg_sov_score" field.
func AvgSovScoreGT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldAvgSovScore, v))
}

// AvgSovScoreGTE applies the GTE predicate on the "avg_sov_score" field.
func AvgSovScoreGTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldAvgSovScore, v))
}

// AvgSovScoreLT applies the LT predicate on the "avg_sov_score" field.
func AvgSovScoreLT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldAvgSovScore, v))
}

// AvgSovScoreLTE applies the LTE predicate on the "avg_sov_score" field.
func AvgSovScoreLTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldAvgSovScore, v))
}

// AvgSentimentEQ applies the EQ predicate on the "avg_sentiment" field.
func AvgSentimentEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgSentiment, v))
}

// AvgSentimentNEQ applies the NEQ predicate on the "avg_sentiment" field.
func AvgSentimentNEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldAvgSentiment, v))
}

// AvgSentimentIn applies the In predicate on the "avg_sentiment" field.
func AvgSentimentIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldAvgSentiment, vs...))
}

// AvgSentimentNotIn applies the NotIn predicate on the "avg_sentiment" field.
func AvgSentimentNotIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldAvgSentiment, vs...))
}

// AvgSentimentGT applies the GT predicate on the "avg_sentiment" field.
func AvgSentimentGT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldAvgSentiment, v))
}

// AvgSentimentGTE applies the GTE predicate on the "avg_sentiment" field.
func AvgSentimentGTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldAvgSentiment, v))
}

// AvgSentimentLT applies the LT predicate on the "avg_sentiment" field.
func AvgSentimentLT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldAvgSentiment, v))
}

// AvgSentimentLTE applies the LTE predicate on the "avg_sentiment" field.
func AvgSentimentLTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldAvgSentiment, v))
}

// AvgContextCompletenessEQ applies the EQ predicate on the "avg_context_completeness" field.
func AvgContextCompletenessEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldAvgContextCompleteness, v))
}

// AvgContextCompletenessNEQ applies the NEQ predicate on the "avg_context_completeness" field.
func AvgContextCompletenessNEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldAvgContextCompleteness, v))
}

// AvgContextCompletenessIn applies the In predicate on the "avg_context_completeness" field.
func AvgContextCompletenessIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldAvgContextCompleteness, vs...))
}

// AvgContextCompletenessNotIn applies the NotIn predicate on the "avg_context_completeness" field.
func AvgContextCompletenessNotIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldAvgContextCompleteness, vs...))
}

// AvgContextCompletenessGT applies the GT predicate on the "avg_context_completeness" field.
func AvgContextCompletenessGT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldAvgContextCompleteness, v))
}

// AvgContextCompletenessGTE applies the GTE predicate on the "avg_context_completeness" field.
func AvgContextCompletenessGTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldAvgContextCompleteness, v))
}

// AvgContextCompletenessLT applies the LT predicate on the "avg_context_completeness" field.
func AvgContextCompletenessLT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldAvgContextCompleteness, v))
}

// AvgContextCompletenessLTE applies the LTE predicate on the "avg_context_completeness" field.
func AvgContextCompletenessLTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldAvgContextCompleteness, v))
}

// MentionRateEQ applies the EQ predicate on the "mention_rate" field.
func MentionRateEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldMentionRate, v))
}

// MentionRateNEQ applies the NEQ predicate on the "mention_rate" field.
func MentionRateNEQ(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldMentionRate, v))
}

// MentionRateIn applies the In predicate on the "mention_rate" field.
func MentionRateIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldMentionRate, vs...))
}

// MentionRateNotIn applies the NotIn predicate on the "mention_rate" field.
func MentionRateNotIn(vs ...float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldMentionRate, vs...))
}

// MentionRateGT applies the GT predicate on the "mention_rate" field.
func MentionRateGT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldMentionRate, v))
}

// MentionRateGTE applies the GTE predicate on the "mention_rate" field.
func MentionRateGTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldMentionRate, v))
}

// MentionRateLT applies the LT predicate on the "mention_rate" field.
func MentionRateLT(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldMentionRate, v))
}

// MentionRateLTE applies the LTE predicate on the "mention_rate" field.
func MentionRateLTE(v float64) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldMentionRate, v))
}

// TopThemesIsNil applies the IsNil predicate on the "top_themes" field.
func TopThemesIsNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIsNull(FieldTopThemes))
}

// TopThemesNotNil applies the NotNil predicate on the "top_themes" field.
func TopThemesNotNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotNull(FieldTopThemes))
}

// PriorityRecommendationsIsNil applies the IsNil predicate on the "priority_recommendations" field.
func PriorityRecommendationsIsNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIsNull(FieldPriorityRecommendations))
}

// PriorityRecommendationsNotNil applies the NotNil predicate on the "priority_recommendations" field.
func PriorityRecommendationsNotNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotNull(FieldPriorityRecommendations))
}

// CompetitiveSummaryEQ applies the EQ predicate on the "competitive_summary" field.
func CompetitiveSummaryEQ(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryNEQ applies the NEQ predicate on the "competitive_summary" field.
func CompetitiveSummaryNEQ(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryIn applies the In predicate on the "competitive_summary" field.
func CompetitiveSummaryIn(vs ...string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldCompetitiveSummary, vs...))
}

// CompetitiveSummaryNotIn applies the NotIn predicate on the "competitive_summary" field.
func CompetitiveSummaryNotIn(vs ...string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldCompetitiveSummary, vs...))
}

// CompetitiveSummaryGT applies the GT predicate on the "competitive_summary" field.
func CompetitiveSummaryGT(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryGTE applies the GTE predicate on the "competitive_summary" field.
func CompetitiveSummaryGTE(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryLT applies the LT predicate on the "competitive_summary" field.
func CompetitiveSummaryLT(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryLTE applies the LTE predicate on the "competitive_summary" field.
func CompetitiveSummaryLTE(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryContains applies the Contains predicate on the "competitive_summary" field.
func CompetitiveSummaryContains(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldContains(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryHasPrefix applies the HasPrefix predicate on the "competitive_summary" field.
func CompetitiveSummaryHasPrefix(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldHasPrefix(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryHasSuffix applies the HasSuffix predicate on the "competitive_summary" field.
func CompetitiveSummaryHasSuffix(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldHasSuffix(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryIsNil applies the IsNil predicate on the "competitive_summary" field.
func CompetitiveSummaryIsNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIsNull(FieldCompetitiveSummary))
}

// CompetitiveSummaryNotNil applies the NotNil predicate on the "competitive_summary" field.
func CompetitiveSummaryNotNil() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotNull(FieldCompetitiveSummary))
}

// CompetitiveSummaryEqualFold applies the EqualFold predicate on the "competitive_summary" field.
func CompetitiveSummaryEqualFold(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEqualFold(FieldCompetitiveSummary, v))
}

// CompetitiveSummaryContainsFold applies the ContainsFold predicate on the "competitive_summary" field.
func CompetitiveSummaryContainsFold(v string) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldContainsFold(FieldCompetitiveSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.CategoryAggregate {
	return predicate.CategoryAggregate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryAggregate) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryAggregate) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryAggregate) predicate.CategoryAggregate {
	return predicate.CategoryAggregate(sql.NotPredicates(p))
}
