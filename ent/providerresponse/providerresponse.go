// Code generated by ent, DO NOT EDIT.

package providerresponse

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the providerresponse type in the database.
	Label = "provider_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "response_id"
	// FieldQueryID holds the string denoting the query_id field in the database.
	FieldQueryID = "query_id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldCached holds the string denoting the cached field in the database.
	FieldCached = "cached"
	// FieldCitations holds the string denoting the citations field in the database.
	FieldCitations = "citations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldBrandMentioned holds the string denoting the brand_mentioned field in the database.
	FieldBrandMentioned = "brand_mentioned"
	// FieldMentionCount holds the string denoting the mention_count field in the database.
	FieldMentionCount = "mention_count"
	// FieldMentionPosition holds the string denoting the mention_position field in the database.
	FieldMentionPosition = "mention_position"
	// FieldFirstPositionPercentage holds the string denoting the first_position_percentage field in the database.
	FieldFirstPositionPercentage = "first_position_percentage"
	// FieldMentionContext holds the string denoting the mention_context field in the database.
	FieldMentionContext = "mention_context"
	// FieldSentiment holds the string denoting the sentiment field in the database.
	FieldSentiment = "sentiment"
	// FieldRecommendationStrength holds the string denoting the recommendation_strength field in the database.
	FieldRecommendationStrength = "recommendation_strength"
	// FieldCompetitorAnalysis holds the string denoting the competitor_analysis field in the database.
	FieldCompetitorAnalysis = "competitor_analysis"
	// FieldFeaturesMentioned holds the string denoting the features_mentioned field in the database.
	FieldFeaturesMentioned = "features_mentioned"
	// FieldValueProps holds the string denoting the value_props field in the database.
	FieldValueProps = "value_props"
	// FieldFeaturedSnippetPotential holds the string denoting the featured_snippet_potential field in the database.
	FieldFeaturedSnippetPotential = "featured_snippet_potential"
	// FieldVoiceSearchOptimized holds the string denoting the voice_search_optimized field in the database.
	FieldVoiceSearchOptimized = "voice_search_optimized"
	// FieldGeoScore holds the string denoting the geo_score field in the database.
	FieldGeoScore = "geo_score"
	// FieldSovScore holds the string denoting the sov_score field in the database.
	FieldSovScore = "sov_score"
	// FieldContextCompleteness holds the string denoting the context_completeness field in the database.
	FieldContextCompleteness = "context_completeness"
	// FieldBuyerJourneyCategory holds the string denoting the buyer_journey_category field in the database.
	FieldBuyerJourneyCategory = "buyer_journey_category"
	// FieldContextQuality holds the string denoting the context_quality field in the database.
	FieldContextQuality = "context_quality"
	// FieldAdditionalMetrics holds the string denoting the additional_metrics field in the database.
	FieldAdditionalMetrics = "additional_metrics"
	// FieldMetricsExtractedAt holds the string denoting the metrics_extracted_at field in the database.
	FieldMetricsExtractedAt = "metrics_extracted_at"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldBatchNumber holds the string denoting the batch_number field in the database.
	FieldBatchNumber = "batch_number"
	// FieldBatchPosition holds the string denoting the batch_position field in the database.
	FieldBatchPosition = "batch_position"
	// FieldQueryText holds the string denoting the query_text field in the database.
	FieldQueryText = "query_text"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// AuditFieldID holds the string denoting the ID field of the Audit.
	AuditFieldID = "audit_id"
	// Table holds the table name of the providerresponse in the database.
	Table = "provider_responses"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "provider_responses"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for providerresponse fields.
var Columns = []string{
	FieldID,
	FieldQueryID,
	FieldAuditID,
	FieldProvider,
	FieldModel,
	FieldText,
	FieldTokensIn,
	FieldTokensOut,
	FieldCost,
	FieldLatencyMs,
	FieldCached,
	FieldCitations,
	FieldCreatedAt,
	FieldBrandMentioned,
	FieldMentionCount,
	FieldMentionPosition,
	FieldFirstPositionPercentage,
	FieldMentionContext,
	FieldSentiment,
	FieldRecommendationStrength,
	FieldCompetitorAnalysis,
	FieldFeaturesMentioned,
	FieldValueProps,
	FieldFeaturedSnippetPotential,
	FieldVoiceSearchOptimized,
	FieldGeoScore,
	FieldSovScore,
	FieldContextCompleteness,
	FieldBuyerJourneyCategory,
	FieldContextQuality,
	FieldAdditionalMetrics,
	FieldMetricsExtractedAt,
	FieldExtractionError,
	FieldBatchID,
	FieldBatchNumber,
	FieldBatchPosition,
	FieldQueryText,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int
	// DefaultCached holds the default value on creation for the "cached" field.
	DefaultCached bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultBrandMentioned holds the default value on creation for the "brand_mentioned" field.
	DefaultBrandMentioned bool
	// DefaultMentionCount holds the default value on creation for the "mention_count" field.
	DefaultMentionCount int
	// DefaultMentionPosition holds the default value on creation for the "mention_position" field.
	DefaultMentionPosition int
	// DefaultFirstPositionPercentage holds the default value on creation for the "first_position_percentage" field.
	DefaultFirstPositionPercentage float64
	// DefaultSentiment holds the default value on creation for the "sentiment" field.
	DefaultSentiment float64
	// DefaultRecommendationStrength holds the default value on creation for the "recommendation_strength" field.
	DefaultRecommendationStrength float64
	// DefaultFeaturedSnippetPotential holds the default value on creation for the "featured_snippet_potential" field.
	DefaultFeaturedSnippetPotential float64
	// DefaultVoiceSearchOptimized holds the default value on creation for the "voice_search_optimized" field.
	DefaultVoiceSearchOptimized bool
	// DefaultGeoScore holds the default value on creation for the "geo_score" field.
	DefaultGeoScore float64
	// DefaultSovScore holds the default value on creation for the "sov_score" field.
	DefaultSovScore float64
	// DefaultContextCompleteness holds the default value on creation for the "context_completeness" field.
	DefaultContextCompleteness float64
	// DefaultContextQuality holds the default value on creation for the "context_quality" field.
	DefaultContextQuality float64
	// DefaultBatchNumber holds the default value on creation for the "batch_number" field.
	DefaultBatchNumber int
	// DefaultBatchPosition holds the default value on creation for the "batch_position" field.
	DefaultBatchPosition int
)

// BuyerJourneyCategory defines the type for the "buyer_journey_category" enum field.
type BuyerJourneyCategory string

// BuyerJourneyCategory values.
const (
	BuyerJourneyCategoryProblemUnaware  BuyerJourneyCategory = "problem_unaware"
	BuyerJourneyCategorySolutionSeeking BuyerJourneyCategory = "solution_seeking"
	BuyerJourneyCategoryBrandSpecific   BuyerJourneyCategory = "brand_specific"
	BuyerJourneyCategoryComparison      BuyerJourneyCategory = "comparison"
	BuyerJourneyCategoryEvaluation      BuyerJourneyCategory = "evaluation"
	BuyerJourneyCategoryPostPurchase    BuyerJourneyCategory = "post_purchase"
)

func (bjc BuyerJourneyCategory) String() string {
	return string(bjc)
}

// BuyerJourneyCategoryValidator is a validator for the "buyer_journey_category" field enum values. It is called by the builders before save.
func BuyerJourneyCategoryValidator(bjc BuyerJourneyCategory) error {
	switch bjc {
	case BuyerJourneyCategoryProblemUnaware, BuyerJourneyCategorySolutionSeeking, BuyerJourneyCategoryBrandSpecific, BuyerJourneyCategoryComparison, BuyerJourneyCategoryEvaluation, BuyerJourneyCategoryPostPurchase:
		return nil
	default:
		return fmt.Errorf("providerresponse: invalid enum value for buyer_journey_category field: %q", bjc)
	}
}

// OrderOption defines the ordering options for the ProviderResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueryID orders the results by the query_id field.
func ByQueryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByCached orders the results by the cached field.
func ByCached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCached, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBrandMentioned orders the results by the brand_mentioned field.
func ByBrandMentioned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandMentioned, opts...).ToFunc()
}

// ByMentionCount orders the results by the mention_count field.
func ByMentionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionCount, opts...).ToFunc()
}

// ByMentionPosition orders the results by the mention_position field.
func ByMentionPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionPosition, opts...).ToFunc()
}

// ByFirstPositionPercentage orders the results by the first_position_percentage field.
func ByFirstPositionPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstPositionPercentage, opts...).ToFunc()
}

// ByMentionContext orders the results by the mention_context field.
func ByMentionContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentionContext, opts...).ToFunc()
}

// BySentiment orders the results by the sentiment field.
func BySentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentiment, opts...).ToFunc()
}

// ByRecommendationStrength orders the results by the recommendation_strength field.
func ByRecommendationStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationStrength, opts...).ToFunc()
}

// ByFeaturedSnippetPotential orders the results by the featured_snippet_potential field.
func ByFeaturedSnippetPotential(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeaturedSnippetPotential, opts...).ToFunc()
}

// ByVoiceSearchOptimized orders the results by the voice_search_optimized field.
func ByVoiceSearchOptimized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoiceSearchOptimized, opts...).ToFunc()
}

// ByGeoScore orders the results by the geo_score field.
func ByGeoScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeoScore, opts...).ToFunc()
}

// BySovScore orders the results by the sov_score field.
func BySovScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSovScore, opts...).ToFunc()
}

// ByContextCompleteness orders the results by the context_completeness field.
func ByContextCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextCompleteness, opts...).ToFunc()
}

// ByBuyerJourneyCategory orders the results by the buyer_journey_category field.
func ByBuyerJourneyCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerJourneyCategory, opts...).ToFunc()
}

// ByContextQuality orders the results by the context_quality field.
func ByContextQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextQuality, opts...).ToFunc()
}

// ByMetricsExtractedAt orders the results by the metrics_extracted_at field.
func ByMetricsExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricsExtractedAt, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByBatchNumber orders the results by the batch_number field.
func ByBatchNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNumber, opts...).ToFunc()
}

// ByBatchPosition orders the results by the batch_position field.
func ByBatchPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchPosition, opts...).ToFunc()
}

// ByQueryText orders the results by the query_text field.
func ByQueryText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryText, opts...).ToFunc()
}

// ByAuditField orders the results by audit field.
func ByAuditField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditStep(), sql.OrderByField(field, opts...))
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, AuditFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
