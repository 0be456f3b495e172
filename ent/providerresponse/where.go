// Code generated by ent, DO NOT EDIT.

package providerresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brandlens/brandlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldID, id))
}

// QueryID applies equality check predicate on the "query_id" field. It's identical to QueryIDEQ.
func QueryID(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldQueryID, v))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldAuditID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldModel, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldText, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokensOut, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCost, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldLatencyMs, v))
}

// Cached applies equality check predicate on the "cached" field. It's identical to CachedEQ.
func Cached(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCached, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// BrandMentioned applies equality check predicate on the "brand_mentioned" field. It's identical to BrandMentionedEQ.
func BrandMentioned(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBrandMentioned, v))
}

// MentionCount applies equality check predicate on the "mention_count" field. It's identical to MentionCountEQ.
func MentionCount(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionCount, v))
}

// MentionPosition applies equality check predicate on the "mention_position" field. It's identical to MentionPositionEQ.
func MentionPosition(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionPosition, v))
}

// FirstPositionPercentage applies equality check predicate on the "first_position_percentage" field. It's identical to FirstPositionPercentageEQ.
func FirstPositionPercentage(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldFirstPositionPercentage, v))
}

// MentionContext applies equality check predicate on the "mention_context" field. It's identical to MentionContextEQ.
func MentionContext(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionContext, v))
}

// Sentiment applies equality check predicate on the "sentiment" field. It's identical to SentimentEQ.
func Sentiment(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldSentiment, v))
}

// RecommendationStrength applies equality check predicate on the "recommendation_strength" field. It's identical to RecommendationStrengthEQ.
func RecommendationStrength(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRecommendationStrength, v))
}

// FeaturedSnippetPotential applies equality check predicate on the "featured_snippet_potential" field. It's identical to FeaturedSnippetPotentialEQ.
func FeaturedSnippetPotential(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldFeaturedSnippetPotential, v))
}

// VoiceSearchOptimized applies equality check predicate on the "voice_search_optimized" field. It's identical to VoiceSearchOptimizedEQ.
func VoiceSearchOptimized(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldVoiceSearchOptimized, v))
}

// GeoScore applies equality check predicate on the "geo_score" field. It's identical to GeoScoreEQ.
func GeoScore(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldGeoScore, v))
}

// SovScore applies equality check predicate on the "sov_score" field. It's identical to SovScoreEQ.
func SovScore(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldSovScore, v))
}

// ContextCompleteness applies equality check predicate on the "context_completeness" field. It's identical to ContextCompletenessEQ.
func ContextCompleteness(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldContextCompleteness, v))
}

// ContextQuality applies equality check predicate on the "context_quality" field. It's identical to ContextQualityEQ.
func ContextQuality(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldContextQuality, v))
}

// MetricsExtractedAt applies equality check predicate on the "metrics_extracted_at" field. It's identical to MetricsExtractedAtEQ.
func MetricsExtractedAt(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMetricsExtractedAt, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldExtractionError, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchID, v))
}

// BatchNumber applies equality check predicate on the "batch_number" field. It's identical to BatchNumberEQ.
func BatchNumber(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchPosition applies equality check predicate on the "batch_position" field. It's identical to BatchPositionEQ.
func BatchPosition(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchPosition, v))
}

// QueryText applies equality check predicate on the "query_text" field. It's identical to QueryTextEQ.
func QueryText(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldQueryText, v))
}

// QueryIDEQ applies the EQ predicate on the "query_id" field.
func QueryIDEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldQueryID, v))
}

// QueryIDNEQ applies the NEQ predicate on the "query_id" field.
func QueryIDNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldQueryID, v))
}

// QueryIDIn applies the In predicate on the "query_id" field.
func QueryIDIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldQueryID, vs...))
}

// QueryIDNotIn applies the NotIn predicate on the "query_id" field.
func QueryIDNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldQueryID, vs...))
}

// QueryIDGT applies the GT predicate on the "query_id" field.
func QueryIDGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldQueryID, v))
}

// QueryIDGTE applies the GTE predicate on the "query_id" field.
func QueryIDGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldQueryID, v))
}

// QueryIDLT applies the LT predicate on the "query_id" field.
func QueryIDLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldQueryID, v))
}

// QueryIDLTE applies the LTE predicate on the "query_id" field.
func QueryIDLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldQueryID, v))
}

// QueryIDContains applies the Contains predicate on the "query_id" field.
func QueryIDContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldQueryID, v))
}

// QueryIDHasPrefix applies the HasPrefix predicate on the "query_id" field.
func QueryIDHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldQueryID, v))
}

// QueryIDHasSuffix applies the HasSuffix predicate on the "query_id" field.
func QueryIDHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldQueryID, v))
}

// QueryIDEqualFold applies the EqualFold predicate on the "query_id" field.
func QueryIDEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldQueryID, v))
}

// QueryIDContainsFold applies the ContainsFold predicate on the "query_id" field.
func QueryIDContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldQueryID, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldAuditID, vs...))
}

// AuditIDGT applies the GT predicate on the "audit_id" field.
func AuditIDGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldAuditID, v))
}

// AuditIDGTE applies the GTE predicate on the "audit_id" field.
func AuditIDGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldAuditID, v))
}

// AuditIDLT applies the LT predicate on the "audit_id" field.
func AuditIDLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldAuditID, v))
}

// AuditIDLTE applies the LTE predicate on the "audit_id" field.
func AuditIDLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldAuditID, v))
}

// AuditIDContains applies the Contains predicate on the "audit_id" field.
func AuditIDContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldAuditID, v))
}

// AuditIDHasPrefix applies the HasPrefix predicate on the "audit_id" field.
func AuditIDHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldAuditID, v))
}

// AuditIDHasSuffix applies the HasSuffix predicate on the "audit_id" field.
func AuditIDHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldAuditID, v))
}

// AuditIDEqualFold applies the EqualFold predicate on the "audit_id" field.
func AuditIDEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldAuditID, v))
}

// AuditIDContainsFold applies the ContainsFold predicate on the "audit_id" field.
func AuditIDContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldAuditID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldModel, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldText, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldTokensOut, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldCost, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldLatencyMs, v))
}

// CachedEQ applies the EQ predicate on the "cached" field.
func CachedEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCached, v))
}

// CachedNEQ applies the NEQ predicate on the "cached" field.
func CachedNEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCached, v))
}

// CitationsIsNil applies the IsNil predicate on the "citations" field.
func CitationsIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldCitations))
}

// CitationsNotNil applies the NotNil predicate on the "citations" field.
func CitationsNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldCitations))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// BrandMentionedEQ applies the EQ predicate on the "brand_mentioned" field.
func BrandMentionedEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBrandMentioned, v))
}

// BrandMentionedNEQ applies the NEQ predicate on the "brand_mentioned" field.
func BrandMentionedNEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldBrandMentioned, v))
}

// MentionCountEQ applies the EQ predicate on the "mention_count" field.
func MentionCountEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionCount, v))
}

// MentionCountNEQ applies the NEQ predicate on the "mention_count" field.
func MentionCountNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldMentionCount, v))
}

// MentionCountIn applies the In predicate on the "mention_count" field.
func MentionCountIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldMentionCount, vs...))
}

// MentionCountNotIn applies the NotIn predicate on the "mention_count" field.
func MentionCountNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldMentionCount, vs...))
}

// MentionCountGT applies the GT predicate on the "mention_count" field.
func MentionCountGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldMentionCount, v))
}

// MentionCountGTE applies the GTE predicate on the "mention_count" field.
func MentionCountGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldMentionCount, v))
}

// MentionCountLT applies the LT predicate on the "mention_count" field.
func MentionCountLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldMentionCount, v))
}

// MentionCountLTE applies the LTE predicate on the "mention_count" field.
func MentionCountLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldMentionCount, v))
}

// MentionPositionEQ applies the EQ predicate on the "mention_position" field.
func MentionPositionEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionPosition, v))
}

// MentionPositionNEQ applies the NEQ predicate on the "mention_position" field.
func MentionPositionNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldMentionPosition, v))
}

// MentionPositionIn applies the In predicate on the "mention_position" field.
func MentionPositionIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldMentionPosition, vs...))
}

// MentionPositionNotIn applies the NotIn predicate on the "mention_position" field.
func MentionPositionNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldMentionPosition, vs...))
}

// MentionPositionGT applies the GT predicate on the "mention_position" field.
func MentionPositionGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldMentionPosition, v))
}

// MentionPositionGTE applies the GTE predicate on the "mention_position" field.
func MentionPositionGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldMentionPosition, v))
}

// MentionPositionLT applies the LT predicate on the "mention_position" field.
func MentionPositionLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldMentionPosition, v))
}

// MentionPositionLTE applies the LTE predicate on the "mention_position" field.
func MentionPositionLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldMentionPosition, v))
}

// FirstPositionPercentageEQ applies the EQ predicate on the "first_position_percentage" field.
func FirstPositionPercentageEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldFirstPositionPercentage, v))
}

// FirstPositionPercentageNEQ applies the NEQ predicate on the "first_position_percentage" field.
func FirstPositionPercentageNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldFirstPositionPercentage, v))
}

// FirstPositionPercentageIn applies the In predicate on the "first_position_percentage" field.
func FirstPositionPercentageIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldFirstPositionPercentage, vs...))
}

// FirstPositionPercentageNotIn applies the NotIn predicate on the "first_position_percentage" field.
func FirstPositionPercentageNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldFirstPositionPercentage, vs...))
}

// FirstPositionPercentageGT applies the GT predicate on the "first_position_percentage" field.
func FirstPositionPercentageGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldFirstPositionPercentage, v))
}

// FirstPositionPercentageGTE applies the GTE predicate on the "first_position_percentage" field.
func FirstPositionPercentageGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldFirstPositionPercentage, v))
}

// FirstPositionPercentageLT applies the LT predicate on the "first_position_percentage" field.
func FirstPositionPercentageLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldFirstPositionPercentage, v))
}

// FirstPositionPercentageLTE applies the LTE predicate on the "first_position_percentage" field.
func FirstPositionPercentageLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldFirstPositionPercentage, v))
}

// MentionContextEQ applies the EQ predicate on the "mention_context" field.
func MentionContextEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMentionContext, v))
}

// MentionContextNEQ applies the NEQ predicate on the "mention_context" field.
func MentionContextNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldMentionContext, v))
}

// MentionContextIn applies the In predicate on the "mention_context" field.
func MentionContextIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldMentionContext, vs...))
}

// MentionContextNotIn applies the NotIn predicate on the "mention_context" field.
func MentionContextNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldMentionContext, vs...))
}

// MentionContextGT applies the GT predicate on the "mention_context" field.
func MentionContextGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldMentionContext, v))
}

// MentionContextGTE applies the GTE predicate on the "mention_context" field.
func MentionContextGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldMentionContext, v))
}

// MentionContextLT applies the LT predicate on the "mention_context" field.
func MentionContextLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldMentionContext, v))
}

// MentionContextLTE applies the LTE predicate on the "mention_context" field.
func MentionContextLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldMentionContext, v))
}

// MentionContextContains applies the Contains predicate on the "mention_context" field.
func MentionContextContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldMentionContext, v))
}

// MentionContextHasPrefix applies the HasPrefix predicate on the "mention_context" field.
func MentionContextHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldMentionContext, v))
}

// MentionContextHasSuffix applies the HasSuffix predicate on the "mention_context" field.
func MentionContextHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldMentionContext, v))
}

// MentionContextIsNil applies the IsNil predicate on the "mention_context" field.
func MentionContextIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldMentionContext))
}

// MentionContextNotNil applies the NotNil predicate on the "mention_context" field.
func MentionContextNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldMentionContext))
}

// MentionContextEqualFold applies the EqualFold predicate on the "mention_context" field.
func MentionContextEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldMentionContext, v))
}

// MentionContextContainsFold applies the ContainsFold predicate on the "mention_context" field.
func MentionContextContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldMentionContext, v))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldSentiment, vs...))
}

// SentimentGT applies the GT predicate on the "sentiment" field.
func SentimentGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldSentiment, v))
}

// SentimentGTE applies the GTE predicate on the "sentiment" field.
func SentimentGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldSentiment, v))
}

// SentimentLT applies the LT predicate on the "sentiment" field.
func SentimentLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldSentiment, v))
}

// SentimentLTE applies the LTE predicate on the "sentiment" field.
func SentimentLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldSentiment, v))
}

// RecommendationStrengthEQ applies the EQ predicate on the "recommendation_strength" field.
func RecommendationStrengthEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRecommendationStrength, v))
}

// RecommendationStrengthNEQ applies the NEQ predicate on the "recommendation_strength" field.
func RecommendationStrengthNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldRecommendationStrength, v))
}

// RecommendationStrengthIn applies the In predicate on the "recommendation_strength" field.
func RecommendationStrengthIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldRecommendationStrength, vs...))
}

// RecommendationStrengthNotIn applies the NotIn predicate on the "recommendation_strength" field.
func RecommendationStrengthNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldRecommendationStrength, vs...))
}

// RecommendationStrengthGT applies the GT predicate on the "recommendation_strength" field.
func RecommendationStrengthGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldRecommendationStrength, v))
}

// RecommendationStrengthGTE applies the GTE predicate on the "recommendation_strength" field.
func RecommendationStrengthGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldRecommendationStrength, v))
}

// RecommendationStrengthLT applies the LT predicate on the "recommendation_strength" field.
func RecommendationStrengthLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldRecommendationStrength, v))
}

// RecommendationStrengthLTE applies the LTE predicate on the "recommendation_strength" field.
func RecommendationStrengthLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldRecommendationStrength, v))
}

// CompetitorAnalysisIsNil applies the IsNil predicate on the "competitor_analysis" field.
func CompetitorAnalysisIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldCompetitorAnalysis))
}

// CompetitorAnalysisNotNil applies the NotNil predicate on the "competitor_analysis" field.
func CompetitorAnalysisNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldCompetitorAnalysis))
}

// FeaturesMentionedIsNil applies the IsNil predicate on the "features_mentioned" field.
func FeaturesMentionedIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldFeaturesMentioned))
}

// FeaturesMentionedNotNil applies the NotNil predicate on the "features_mentioned" field.
func FeaturesMentionedNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldFeaturesMentioned))
}

// ValuePropsIsNil applies the IsNil predicate on the "value_props" field.
func ValuePropsIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldValueProps))
}

// ValuePropsNotNil applies the NotNil predicate on the "value_props" field.
func ValuePropsNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldValueProps))
}

// FeaturedSnippetPotentialEQ applies the EQ predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldFeaturedSnippetPotential, v))
}

// FeaturedSnippetPotentialNEQ applies the NEQ predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldFeaturedSnippetPotential, v))
}

// FeaturedSnippetPotentialIn applies the In predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldFeaturedSnippetPotential, vs...))
}

// FeaturedSnippetPotentialNotIn applies the NotIn predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldFeaturedSnippetPotential, vs...))
}

// FeaturedSnippetPotentialGT applies the GT predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldFeaturedSnippetPotential, v))
}

// FeaturedSnippetPotentialGTE applies the GTE predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldFeaturedSnippetPotential, v))
}

// FeaturedSnippetPotentialLT applies the LT predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldFeaturedSnippetPotential, v))
}

// FeaturedSnippetPotentialLTE applies the LTE predicate on the "featured_snippet_potential" field.
func FeaturedSnippetPotentialLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldFeaturedSnippetPotential, v))
}

// VoiceSearchOptimizedEQ applies the EQ predicate on the "voice_search_optimized" field.
func VoiceSearchOptimizedEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldVoiceSearchOptimized, v))
}

// VoiceSearchOptimizedNEQ applies the NEQ predicate on the "voice_search_optimized" field.
func VoiceSearchOptimizedNEQ(v bool) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldVoiceSearchOptimized, v))
}

// GeoScoreEQ applies the EQ predicate on the "geo_score" field.
func GeoScoreEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldGeoScore, v))
}

// GeoScoreNEQ applies the NEQ predicate on the "geo_score" field.
func GeoScoreNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldGeoScore, v))
}

// GeoScoreIn applies the In predicate on the "geo_score" field.
func GeoScoreIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldGeoScore, vs...))
}

// GeoScoreNotIn applies the NotIn predicate on the "geo_score" field.
func GeoScoreNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldGeoScore, vs...))
}

// GeoScoreGT applies the GT predicate on the "geo_score" field.
func GeoScoreGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldGeoScore, v))
}

// GeoScoreGTE applies the GTE predicate on the "geo_score" field.
func GeoScoreGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldGeoScore, v))
}

// GeoScoreLT applies the LT predicate on the "geo_score" field.
func GeoScoreLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldGeoScore, v))
}

// GeoScoreLTE applies the LTE predicate on the "geo_score" field.
func GeoScoreLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldGeoScore, v))
}

// SovScoreEQ applies the EQ predicate on the "sov_score" field.
func SovScoreEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldSovScore, v))
}

// SovScoreNEQ applies the NEQ predicate on the "sov_score" field.
func SovScoreNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldSovScore, v))
}

// SovScoreIn applies the In predicate on the "sov_score" field.
func SovScoreIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldSovScore, vs...))
}

// SovScoreNotIn applies the NotIn predicate on the "sov_score" field.
func SovScoreNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldSovScore, vs...))
}

// SovScoreGT applies the GT predicate on the "sov_score" field.
func SovScoreGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldSovScore, v))
}

// SovScoreGTE applies the GTE predicate on the "sov_score" field.
func SovScoreGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldSovScore, v))
}

// SovScoreLT applies the LT predicate on the "sov_score" field.
func SovScoreLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldSovScore, v))
}

// SovScoreLTE applies the LTE predicate on the "sov_score" field.
func SovScoreLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldSovScore, v))
}

// ContextCompletenessEQ applies the EQ predicate on the "context_completeness" field.
func ContextCompletenessEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldContextCompleteness, v))
}

// ContextCompletenessNEQ applies the NEQ predicate on the "context_completeness" field.
func ContextCompletenessNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldContextCompleteness, v))
}

// ContextCompletenessIn applies the In predicate on the "context_completeness" field.
func ContextCompletenessIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessNotIn applies the NotIn predicate on the "context_completeness" field.
func ContextCompletenessNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldContextCompleteness, vs...))
}

// ContextCompletenessGT applies the GT predicate on the "context_completeness" field.
func ContextCompletenessGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldContextCompleteness, v))
}

// ContextCompletenessGTE applies the GTE predicate on the "context_completeness" field.
func ContextCompletenessGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldContextCompleteness, v))
}

// ContextCompletenessLT applies the LT predicate on the "context_completeness" field.
func ContextCompletenessLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldContextCompleteness, v))
}

// ContextCompletenessLTE applies the LTE predicate on the "context_completeness" field.
func ContextCompletenessLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldContextCompleteness, v))
}

// BuyerJourneyCategoryEQ applies the EQ predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryEQ(v BuyerJourneyCategory) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBuyerJourneyCategory, v))
}

// BuyerJourneyCategoryNEQ applies the NEQ predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryNEQ(v BuyerJourneyCategory) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldBuyerJourneyCategory, v))
}

// BuyerJourneyCategoryIn applies the In predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryIn(vs ...BuyerJourneyCategory) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldBuyerJourneyCategory, vs...))
}

// BuyerJourneyCategoryNotIn applies the NotIn predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryNotIn(vs ...BuyerJourneyCategory) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldBuyerJourneyCategory, vs...))
}

// BuyerJourneyCategoryIsNil applies the IsNil predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldBuyerJourneyCategory))
}

// BuyerJourneyCategoryNotNil applies the NotNil predicate on the "buyer_journey_category" field.
func BuyerJourneyCategoryNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldBuyerJourneyCategory))
}

// ContextQualityEQ applies the EQ predicate on the "context_quality" field.
func ContextQualityEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldContextQuality, v))
}

// ContextQualityNEQ applies the NEQ predicate on the "context_quality" field.
func ContextQualityNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldContextQuality, v))
}

// ContextQualityIn applies the In predicate on the "context_quality" field.
func ContextQualityIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldContextQuality, vs...))
}

// ContextQualityNotIn applies the NotIn predicate on the "context_quality" field.
func ContextQualityNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldContextQuality, vs...))
}

// ContextQualityGT applies the GT predicate on the "context_quality" field.
func ContextQualityGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldContextQuality, v))
}

// ContextQualityGTE applies the GTE predicate on the "context_quality" field.
func ContextQualityGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldContextQuality, v))
}

// ContextQualityLT applies the LT predicate on the "context_quality" field.
func ContextQualityLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldContextQuality, v))
}

// ContextQualityLTE applies the LTE predicate on the "context_quality" field.
func ContextQualityLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldContextQuality, v))
}

// AdditionalMetricsIsNil applies the IsNil predicate on the "additional_metrics" field.
func AdditionalMetricsIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldAdditionalMetrics))
}

// AdditionalMetricsNotNil applies the NotNil predicate on the "additional_metrics" field.
func AdditionalMetricsNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldAdditionalMetrics))
}

// MetricsExtractedAtEQ applies the EQ predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtNEQ applies the NEQ predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtNEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtIn applies the In predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldMetricsExtractedAt, vs...))
}

// MetricsExtractedAtNotIn applies the NotIn predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtNotIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldMetricsExtractedAt, vs...))
}

// MetricsExtractedAtGT applies the GT predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtGT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtGTE applies the GTE predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtGTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtLT applies the LT predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtLT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtLTE applies the LTE predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtLTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldMetricsExtractedAt, v))
}

// MetricsExtractedAtIsNil applies the IsNil predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldMetricsExtractedAt))
}

// MetricsExtractedAtNotNil applies the NotNil predicate on the "metrics_extracted_at" field.
func MetricsExtractedAtNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldMetricsExtractedAt))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldExtractionError, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldBatchID, v))
}

// BatchNumberEQ applies the EQ predicate on the "batch_number" field.
func BatchNumberEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchNumberNEQ applies the NEQ predicate on the "batch_number" field.
func BatchNumberNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldBatchNumber, v))
}

// BatchNumberIn applies the In predicate on the "batch_number" field.
func BatchNumberIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldBatchNumber, vs...))
}

// BatchNumberNotIn applies the NotIn predicate on the "batch_number" field.
func BatchNumberNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldBatchNumber, vs...))
}

// BatchNumberGT applies the GT predicate on the "batch_number" field.
func BatchNumberGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldBatchNumber, v))
}

// BatchNumberGTE applies the GTE predicate on the "batch_number" field.
func BatchNumberGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldBatchNumber, v))
}

// BatchNumberLT applies the LT predicate on the "batch_number" field.
func BatchNumberLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldBatchNumber, v))
}

// BatchNumberLTE applies the LTE predicate on the "batch_number" field.
func BatchNumberLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldBatchNumber, v))
}

// BatchPositionEQ applies the EQ predicate on the "batch_position" field.
func BatchPositionEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldBatchPosition, v))
}

// BatchPositionNEQ applies the NEQ predicate on the "batch_position" field.
func BatchPositionNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldBatchPosition, v))
}

// BatchPositionIn applies the In predicate on the "batch_position" field.
func BatchPositionIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldBatchPosition, vs...))
}

// BatchPositionNotIn applies the NotIn predicate on the "batch_position" field.
func BatchPositionNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldBatchPosition, vs...))
}

// BatchPositionGT applies the GT predicate on the "batch_position" field.
func BatchPositionGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldBatchPosition, v))
}

// BatchPositionGTE applies the GTE predicate on the "batch_position" field.
func BatchPositionGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldBatchPosition, v))
}

// BatchPositionLT applies the LT predicate on the "batch_position" field.
func BatchPositionLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldBatchPosition, v))
}

// BatchPositionLTE applies the LTE predicate on the "batch_position" field.
func BatchPositionLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldBatchPosition, v))
}

// QueryTextEQ applies the EQ predicate on the "query_text" field.
func QueryTextEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldQueryText, v))
}

// QueryTextNEQ applies the NEQ predicate on the "query_text" field.
func QueryTextNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldQueryText, v))
}

// QueryTextIn applies the In predicate on the "query_text" field.
func QueryTextIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldQueryText, vs...))
}

// QueryTextNotIn applies the NotIn predicate on the "query_text" field.
func QueryTextNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldQueryText, vs...))
}

// QueryTextGT applies the GT predicate on the "query_text" field.
func QueryTextGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldQueryText, v))
}

// QueryTextGTE applies the GTE predicate on the "query_text" field.
func QueryTextGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldQueryText, v))
}

// QueryTextLT applies the LT predicate on the "query_text" field.
func QueryTextLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldQueryText, v))
}

// QueryTextLTE applies the LTE predicate on the "query_text" field.
func QueryTextLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldQueryText, v))
}

// QueryTextContains applies the Contains predicate on the "query_text" field.
func QueryTextContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldQueryText, v))
}

// QueryTextHasPrefix applies the HasPrefix predicate on the "query_text" field.
func QueryTextHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldQueryText, v))
}

// QueryTextHasSuffix applies the HasSuffix predicate on the "query_text" field.
func QueryTextHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldQueryText, v))
}

// QueryTextIsNil applies the IsNil predicate on the "query_text" field.
func QueryTextIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldQueryText))
}

// QueryTextNotNil applies the NotNil predicate on the "query_text" field.
func QueryTextNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldQueryText))
}

// QueryTextEqualFold applies the EqualFold predicate on the "query_text" field.
func QueryTextEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldQueryText, v))
}

// QueryTextContainsFold applies the ContainsFold predicate on the "query_text" field.
func QueryTextContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldQueryText, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.ProviderResponse {
	return predicate.ProviderResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.ProviderResponse {
	return predicate.ProviderResponse(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.NotPredicates(p))
}
