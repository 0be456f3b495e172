// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/providerresponse"
)

// ProviderResponseCreate is the builder for creating a ProviderResponse entity.
type ProviderResponseCreate struct {
	config
	mutation *ProviderResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueryID sets the "query_id" field.
func (_c *ProviderResponseCreate) SetQueryID(v string) *ProviderResponseCreate {
	_c.mutation.SetQueryID(v)
	return _c
}

// SetAuditID sets the "audit_id" field.
func (_c *ProviderResponseCreate) SetAuditID(v string) *ProviderResponseCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderResponseCreate) SetProvider(v string) *ProviderResponseCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ProviderResponseCreate) SetModel(v string) *ProviderResponseCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ProviderResponseCreate) SetText(v string) *ProviderResponseCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *ProviderResponseCreate) SetTokensIn(v int) *ProviderResponseCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableTokensIn(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *ProviderResponseCreate) SetTokensOut(v int) *ProviderResponseCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableTokensOut(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ProviderResponseCreate) SetCost(v float64) *ProviderResponseCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableCost(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ProviderResponseCreate) SetLatencyMs(v int) *ProviderResponseCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableLatencyMs(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCached sets the "cached" field.
func (_c *ProviderResponseCreate) SetCached(v bool) *ProviderResponseCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableCached(v *bool) *ProviderResponseCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetCitations sets the "citations" field.
func (_c *ProviderResponseCreate) SetCitations(v []string) *ProviderResponseCreate {
	_c.mutation.SetCitations(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderResponseCreate) SetCreatedAt(v time.Time) *ProviderResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableCreatedAt(v *time.Time) *ProviderResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_c *ProviderResponseCreate) SetBrandMentioned(v bool) *ProviderResponseCreate {
	_c.mutation.SetBrandMentioned(v)
	return _c
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableBrandMentioned(v *bool) *ProviderResponseCreate {
	if v != nil {
		_c.SetBrandMentioned(*v)
	}
	return _c
}

// SetMentionCount sets the "mention_count" field.
func (_c *ProviderResponseCreate) SetMentionCount(v int) *ProviderResponseCreate {
	_c.mutation.SetMentionCount(v)
	return _c
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableMentionCount(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetMentionCount(*v)
	}
	return _c
}

// SetMentionPosition sets the "mention_position" field.
func (_c *ProviderResponseCreate) SetMentionPosition(v int) *ProviderResponseCreate {
	_c.mutation.SetMentionPosition(v)
	return _c
}

// SetNillableMentionPosition sets the "mention_position" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableMentionPosition(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetMentionPosition(*v)
	}
	return _c
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (_c *ProviderResponseCreate) SetFirstPositionPercentage(v float64) *ProviderResponseCreate {
	_c.mutation.SetFirstPositionPercentage(v)
	return _c
}

// SetNillableFirstPositionPercentage sets the "first_position_percentage" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableFirstPositionPercentage(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetFirstPositionPercentage(*v)
	}
	return _c
}

// SetMentionContext sets the "mention_context" field.
func (_c *ProviderResponseCreate) SetMentionContext(v string) *ProviderResponseCreate {
	_c.mutation.SetMentionContext(v)
	return _c
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableMentionContext(v *string) *ProviderResponseCreate {
	if v != nil {
		_c.SetMentionContext(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *ProviderResponseCreate) SetSentiment(v float64) *ProviderResponseCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableSentiment(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (_c *ProviderResponseCreate) SetRecommendationStrength(v float64) *ProviderResponseCreate {
	_c.mutation.SetRecommendationStrength(v)
	return _c
}

// SetNillableRecommendationStrength sets the "recommendation_strength" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableRecommendationStrength(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetRecommendationStrength(*v)
	}
	return _c
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (_c *ProviderResponseCreate) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseCreate {
	_c.mutation.SetCompetitorAnalysis(v)
	return _c
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (_c *ProviderResponseCreate) SetFeaturesMentioned(v []string) *ProviderResponseCreate {
	_c.mutation.SetFeaturesMentioned(v)
	return _c
}

// SetValueProps sets the "value_props" field.
func (_c *ProviderResponseCreate) SetValueProps(v []string) *ProviderResponseCreate {
	_c.mutation.SetValueProps(v)
	return _c
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (_c *ProviderResponseCreate) SetFeaturedSnippetPotential(v float64) *ProviderResponseCreate {
	_c.mutation.SetFeaturedSnippetPotential(v)
	return _c
}

// SetNillableFeaturedSnippetPotential sets the "featured_snippet_potential" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableFeaturedSnippetPotential(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetFeaturedSnippetPotential(*v)
	}
	return _c
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (_c *ProviderResponseCreate) SetVoiceSearchOptimized(v bool) *ProviderResponseCreate {
	_c.mutation.SetVoiceSearchOptimized(v)
	return _c
}

// SetNillableVoiceSearchOptimized sets the "voice_search_optimized" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableVoiceSearchOptimized(v *bool) *ProviderResponseCreate {
	if v != nil {
		_c.SetVoiceSearchOptimized(*v)
	}
	return _c
}

// SetGeoScore sets the "geo_score" field.
func (_c *ProviderResponseCreate) SetGeoScore(v float64) *ProviderResponseCreate {
	_c.mutation.SetGeoScore(v)
	return _c
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableGeoScore(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetGeoScore(*v)
	}
	return _c
}

// SetSovScore sets the "sov_score" field.
func (_c *ProviderResponseCreate) SetSovScore(v float64) *ProviderResponseCreate {
	_c.mutation.SetSovScore(v)
	return _c
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableSovScore(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetSovScore(*v)
	}
	return _c
}

// SetContextCompleteness sets the "context_completeness" field.
func (_c *ProviderResponseCreate) SetContextCompleteness(v float64) *ProviderResponseCreate {
	_c.mutation.SetContextCompleteness(v)
	return _c
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableContextCompleteness(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetContextCompleteness(*v)
	}
	return _c
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (_c *ProviderResponseCreate) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseCreate {
	_c.mutation.SetBuyerJourneyCategory(v)
	return _c
}

// SetNillableBuyerJourneyCategory sets the "buyer_journey_category" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableBuyerJourneyCategory(v *providerresponse.BuyerJourneyCategory) *ProviderResponseCreate {
	if v != nil {
		_c.SetBuyerJourneyCategory(*v)
	}
	return _c
}

// SetContextQuality sets the "context_quality" field.
func (_c *ProviderResponseCreate) SetContextQuality(v float64) *ProviderResponseCreate {
	_c.mutation.SetContextQuality(v)
	return _c
}

// SetNillableContextQuality sets the "context_quality" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableContextQuality(v *float64) *ProviderResponseCreate {
	if v != nil {
		_c.SetContextQuality(*v)
	}
	return _c
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_c *ProviderResponseCreate) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseCreate {
	_c.mutation.SetAdditionalMetrics(v)
	return _c
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (_c *ProviderResponseCreate) SetMetricsExtractedAt(v time.Time) *ProviderResponseCreate {
	_c.mutation.SetMetricsExtractedAt(v)
	return _c
}

// SetNillableMetricsExtractedAt sets the "metrics_extracted_at" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableMetricsExtractedAt(v *time.Time) *ProviderResponseCreate {
	if v != nil {
		_c.SetMetricsExtractedAt(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *ProviderResponseCreate) SetExtractionError(v string) *ProviderResponseCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableExtractionError(v *string) *ProviderResponseCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ProviderResponseCreate) SetBatchID(v string) *ProviderResponseCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableBatchID(v *string) *ProviderResponseCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetBatchNumber sets the "batch_number" field.
func (_c *ProviderResponseCreate) SetBatchNumber(v int) *ProviderResponseCreate {
	_c.mutation.SetBatchNumber(v)
	return _c
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableBatchNumber(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetBatchNumber(*v)
	}
	return _c
}

// SetBatchPosition sets the "batch_position" field.
func (_c *ProviderResponseCreate) SetBatchPosition(v int) *ProviderResponseCreate {
	_c.mutation.SetBatchPosition(v)
	return _c
}

// SetNillableBatchPosition sets the "batch_position" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableBatchPosition(v *int) *ProviderResponseCreate {
	if v != nil {
		_c.SetBatchPosition(*v)
	}
	return _c
}

// SetQueryText sets the "query_text" field.
func (_c *ProviderResponseCreate) SetQueryText(v string) *ProviderResponseCreate {
	_c.mutation.SetQueryText(v)
	return _c
}

// SetNillableQueryText sets the "query_text" field if the given value is not nil.
func (_c *ProviderResponseCreate) SetNillableQueryText(v *string) *ProviderResponseCreate {
	if v != nil {
		_c.SetQueryText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderResponseCreate) SetID(v string) *ProviderResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *ProviderResponseCreate) SetAudit(v *Audit) *ProviderResponseCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_c *ProviderResponseCreate) Mutation() *ProviderResponseMutation {
	return _c.mutation
}

// Save creates the ProviderResponse in the database.
func (_c *ProviderResponseCreate) Save(ctx context.Context) (*ProviderResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderResponseCreate) SaveX(ctx context.Context) *ProviderResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderResponseCreate) defaults() {
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := providerresponse.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := providerresponse.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := providerresponse.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := providerresponse.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Cached(); !ok {
		v := providerresponse.DefaultCached
		_c.mutation.SetCached(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providerresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.BrandMentioned(); !ok {
		v := providerresponse.DefaultBrandMentioned
		_c.mutation.SetBrandMentioned(v)
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		v := providerresponse.DefaultMentionCount
		_c.mutation.SetMentionCount(v)
	}
	if _, ok := _c.mutation.MentionPosition(); !ok {
		v := providerresponse.DefaultMentionPosition
		_c.mutation.SetMentionPosition(v)
	}
	if _, ok := _c.mutation.FirstPositionPercentage(); !ok {
		v := providerresponse.DefaultFirstPositionPercentage
		_c.mutation.SetFirstPositionPercentage(v)
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		v := providerresponse.DefaultSentiment
		_c.mutation.SetSentiment(v)
	}
	if _, ok := _c.mutation.RecommendationStrength(); !ok {
		v := providerresponse.DefaultRecommendationStrength
		_c.mutation.SetRecommendationStrength(v)
	}
	if _, ok := _c.mutation.FeaturedSnippetPotential(); !ok {
		v := providerresponse.DefaultFeaturedSnippetPotential
		_c.mutation.SetFeaturedSnippetPotential(v)
	}
	if _, ok := _c.mutation.VoiceSearchOptimized(); !ok {
		v := providerresponse.DefaultVoiceSearchOptimized
		_c.mutation.SetVoiceSearchOptimized(v)
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		v := providerresponse.DefaultGeoScore
		_c.mutation.SetGeoScore(v)
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		v := providerresponse.DefaultSovScore
		_c.mutation.SetSovScore(v)
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		v := providerresponse.DefaultContextCompleteness
		_c.mutation.SetContextCompleteness(v)
	}
	if _, ok := _c.mutation.ContextQuality(); !ok {
		v := providerresponse.DefaultContextQuality
		_c.mutation.SetContextQuality(v)
	}
	if _, ok := _c.mutation.BatchNumber(); !ok {
		v := providerresponse.DefaultBatchNumber
		_c.mutation.SetBatchNumber(v)
	}
	if _, ok := _c.mutation.BatchPosition(); !ok {
		v := providerresponse.DefaultBatchPosition
		_c.mutation.SetBatchPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderResponseCreate) check() error {
	if _, ok := _c.mutation.QueryID(); !ok {
		return &ValidationError{Name: "query_id", err: errors.New(`ent: missing required field "ProviderResponse.query_id"`)}
	}
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "ProviderResponse.audit_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderResponse.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ProviderResponse.model"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ProviderResponse.text"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "ProviderResponse.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "ProviderResponse.tokens_out"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "ProviderResponse.cost"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ProviderResponse.latency_ms"`)}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "ProviderResponse.cached"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderResponse.created_at"`)}
	}
	if _, ok := _c.mutation.BrandMentioned(); !ok {
		return &ValidationError{Name: "brand_mentioned", err: errors.New(`ent: missing required field "ProviderResponse.brand_mentioned"`)}
	}
	if _, ok := _c.mutation.MentionCount(); !ok {
		return &ValidationError{Name: "mention_count", err: errors.New(`ent: missing required field "ProviderResponse.mention_count"`)}
	}
	if _, ok := _c.mutation.MentionPosition(); !ok {
		return &ValidationError{Name: "mention_position", err: errors.New(`ent: missing required field "ProviderResponse.mention_position"`)}
	}
	if _, ok := _c.mutation.FirstPositionPercentage(); !ok {
		return &ValidationError{Name: "first_position_percentage", err: errors.New(`ent: missing required field "ProviderResponse.first_position_percentage"`)}
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		return &ValidationError{Name: "sentiment", err: errors.New(`ent: missing required field "ProviderResponse.sentiment"`)}
	}
	if _, ok := _c.mutation.RecommendationStrength(); !ok {
		return &ValidationError{Name: "recommendation_strength", err: errors.New(`ent: missing required field "ProviderResponse.recommendation_strength"`)}
	}
	if _, ok := _c.mutation.FeaturedSnippetPotential(); !ok {
		return &ValidationError{Name: "featured_snippet_potential", err: errors.New(`ent: missing required field "ProviderResponse.featured_snippet_potential"`)}
	}
	if _, ok := _c.mutation.VoiceSearchOptimized(); !ok {
		return &ValidationError{Name: "voice_search_optimized", err: errors.New(`ent: missing required field "ProviderResponse.voice_search_optimized"`)}
	}
	if _, ok := _c.mutation.GeoScore(); !ok {
		return &ValidationError{Name: "geo_score", err: errors.New(`ent: missing required field "ProviderResponse.geo_score"`)}
	}
	if _, ok := _c.mutation.SovScore(); !ok {
		return &ValidationError{Name: "sov_score", err: errors.New(`ent: missing required field "ProviderResponse.sov_score"`)}
	}
	if _, ok := _c.mutation.ContextCompleteness(); !ok {
		return &ValidationError{Name: "context_completeness", err: errors.New(`ent: missing required field "ProviderResponse.context_completeness"`)}
	}
	if v, ok := _c.mutation.BuyerJourneyCategory(); ok {
		if err := providerresponse.BuyerJourneyCategoryValidator(v); err != nil {
			return &ValidationError{Name: "buyer_journey_category", err: fmt.Errorf(`ent: validator failed for field "ProviderResponse.buyer_journey_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextQuality(); !ok {
		return &ValidationError{Name: "context_quality", err: errors.New(`ent: missing required field "ProviderResponse.context_quality"`)}
	}
	if _, ok := _c.mutation.BatchNumber(); !ok {
		return &ValidationError{Name: "batch_number", err: errors.New(`ent: missing required field "ProviderResponse.batch_number"`)}
	}
	if _, ok := _c.mutation.BatchPosition(); !ok {
		return &ValidationError{Name: "batch_position", err: errors.New(`ent: missing required field "ProviderResponse.batch_position"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "ProviderResponse.audit"`)}
	}
	return nil
}

func (_c *ProviderResponseCreate) sqlSave(ctx context.Context) (*ProviderResponse, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProviderResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderResponseCreate) createSpec() (*ProviderResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerresponse.Table, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueryID(); ok {
		_spec.SetField(providerresponse.FieldQueryID, field.TypeString, value)
		_node.QueryID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providerresponse.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(providerresponse.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(providerresponse.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(providerresponse.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(providerresponse.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(providerresponse.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(providerresponse.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(providerresponse.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.Citations(); ok {
		_spec.SetField(providerresponse.FieldCitations, field.TypeJSON, value)
		_node.Citations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providerresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.BrandMentioned(); ok {
		_spec.SetField(providerresponse.FieldBrandMentioned, field.TypeBool, value)
		_node.BrandMentioned = value
	}
	if value, ok := _c.mutation.MentionCount(); ok {
		_spec.SetField(providerresponse.FieldMentionCount, field.TypeInt, value)
		_node.MentionCount = value
	}
	if value, ok := _c.mutation.MentionPosition(); ok {
		_spec.SetField(providerresponse.FieldMentionPosition, field.TypeInt, value)
		_node.MentionPosition = value
	}
	if value, ok := _c.mutation.FirstPositionPercentage(); ok {
		_spec.SetField(providerresponse.FieldFirstPositionPercentage, field.TypeFloat64, value)
		_node.FirstPositionPercentage = value
	}
	if value, ok := _c.mutation.MentionContext(); ok {
		_spec.SetField(providerresponse.FieldMentionContext, field.TypeString, value)
		_node.MentionContext = value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(providerresponse.FieldSentiment, field.TypeFloat64, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.RecommendationStrength(); ok {
		_spec.SetField(providerresponse.FieldRecommendationStrength, field.TypeFloat64, value)
		_node.RecommendationStrength = value
	}
	if value, ok := _c.mutation.CompetitorAnalysis(); ok {
		_spec.SetField(providerresponse.FieldCompetitorAnalysis, field.TypeJSON, value)
		_node.CompetitorAnalysis = value
	}
	if value, ok := _c.mutation.FeaturesMentioned(); ok {
		_spec.SetField(providerresponse.FieldFeaturesMentioned, field.TypeJSON, value)
		_node.FeaturesMentioned = value
	}
	if value, ok := _c.mutation.ValueProps(); ok {
		_spec.SetField(providerresponse.FieldValueProps, field.TypeJSON, value)
		_node.ValueProps = value
	}
	if value, ok := _c.mutation.FeaturedSnippetPotential(); ok {
		_spec.SetField(providerresponse.FieldFeaturedSnippetPotential, field.TypeFloat64, value)
		_node.FeaturedSnippetPotential = value
	}
	if value, ok := _c.mutation.VoiceSearchOptimized(); ok {
		_spec.SetField(providerresponse.FieldVoiceSearchOptimized, field.TypeBool, value)
		_node.VoiceSearchOptimized = value
	}
	if value, ok := _c.mutation.GeoScore(); ok {
		_spec.SetField(providerresponse.FieldGeoScore, field.TypeFloat64, value)
		_node.GeoScore = value
	}
	if value, ok := _c.mutation.SovScore(); ok {
		_spec.SetField(providerresponse.FieldSovScore, field.TypeFloat64, value)
		_node.SovScore = value
	}
	if value, ok := _c.mutation.ContextCompleteness(); ok {
		_spec.SetField(providerresponse.FieldContextCompleteness, field.TypeFloat64, value)
		_node.ContextCompleteness = value
	}
	if value, ok := _c.mutation.BuyerJourneyCategory(); ok {
		_spec.SetField(providerresponse.FieldBuyerJourneyCategory, field.TypeEnum, value)
		_node.BuyerJourneyCategory = value
	}
	if value, ok := _c.mutation.ContextQuality(); ok {
		_spec.SetField(providerresponse.FieldContextQuality, field.TypeFloat64, value)
		_node.ContextQuality = value
	}
	if value, ok := _c.mutation.AdditionalMetrics(); ok {
		_spec.SetField(providerresponse.FieldAdditionalMetrics, field.TypeJSON, value)
		_node.AdditionalMetrics = value
	}
	if value, ok := _c.mutation.MetricsExtractedAt(); ok {
		_spec.SetField(providerresponse.FieldMetricsExtractedAt, field.TypeTime, value)
		_node.MetricsExtractedAt = &value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(providerresponse.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(providerresponse.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.BatchNumber(); ok {
		_spec.SetField(providerresponse.FieldBatchNumber, field.TypeInt, value)
		_node.BatchNumber = value
	}
	if value, ok := _c.mutation.BatchPosition(); ok {
		_spec.SetField(providerresponse.FieldBatchPosition, field.TypeInt, value)
		_node.BatchPosition = value
	}
	if value, ok := _c.mutation.QueryText(); ok {
		_spec.SetField(providerresponse.FieldQueryText, field.TypeString, value)
		_node.QueryText = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   providerresponse.AuditTable,
			Columns: []string{providerresponse.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderResponse.Create().
//		SetQueryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderResponseUpsert) {
//			SetQueryID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderResponseCreate) OnConflict(opts ...sql.ConflictOption) *ProviderResponseUpsertOne {
	_c.conflict = opts
	return &ProviderResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderResponseCreate) OnConflictColumns(columns ...string) *ProviderResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderResponseUpsertOne{
		create: _c,
	}
}

type (
	// ProviderResponseUpsertOne is the builder for "upsert"-ing
	//  one ProviderResponse node.
	ProviderResponseUpsertOne struct {
		create *ProviderResponseCreate
	}

	// ProviderResponseUpsert is the "OnConflict" setter.
	ProviderResponseUpsert struct {
		*sql.UpdateSet
	}
)

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *ProviderResponseUpsert) SetBrandMentioned(v bool) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldBrandMentioned, v)
	return u
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateBrandMentioned() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldBrandMentioned)
	return u
}

// SetMentionCount sets the "mention_count" field.
func (u *ProviderResponseUpsert) SetMentionCount(v int) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldMentionCount, v)
	return u
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateMentionCount() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldMentionCount)
	return u
}

// AddMentionCount adds v to the "mention_count" field.
func (u *ProviderResponseUpsert) AddMentionCount(v int) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldMentionCount, v)
	return u
}

// SetMentionPosition sets the "mention_position" field.
func (u *ProviderResponseUpsert) SetMentionPosition(v int) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldMentionPosition, v)
	return u
}

// UpdateMentionPosition sets the "mention_position" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateMentionPosition() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldMentionPosition)
	return u
}

// AddMentionPosition adds v to the "mention_position" field.
func (u *ProviderResponseUpsert) AddMentionPosition(v int) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldMentionPosition, v)
	return u
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (u *ProviderResponseUpsert) SetFirstPositionPercentage(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldFirstPositionPercentage, v)
	return u
}

// UpdateFirstPositionPercentage sets the "first_position_percentage" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateFirstPositionPercentage() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldFirstPositionPercentage)
	return u
}

// AddFirstPositionPercentage adds v to the "first_position_percentage" field.
func (u *ProviderResponseUpsert) AddFirstPositionPercentage(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldFirstPositionPercentage, v)
	return u
}

// SetMentionContext sets the "mention_context" field.
func (u *ProviderResponseUpsert) SetMentionContext(v string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldMentionContext, v)
	return u
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateMentionContext() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldMentionContext)
	return u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *ProviderResponseUpsert) ClearMentionContext() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldMentionContext)
	return u
}

// SetSentiment sets the "sentiment" field.
func (u *ProviderResponseUpsert) SetSentiment(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldSentiment, v)
	return u
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateSentiment() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldSentiment)
	return u
}

// AddSentiment adds v to the "sentiment" field.
func (u *ProviderResponseUpsert) AddSentiment(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldSentiment, v)
	return u
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (u *ProviderResponseUpsert) SetRecommendationStrength(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldRecommendationStrength, v)
	return u
}

// UpdateRecommendationStrength sets the "recommendation_strength" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateRecommendationStrength() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldRecommendationStrength)
	return u
}

// AddRecommendationStrength adds v to the "recommendation_strength" field.
func (u *ProviderResponseUpsert) AddRecommendationStrength(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldRecommendationStrength, v)
	return u
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (u *ProviderResponseUpsert) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldCompetitorAnalysis, v)
	return u
}

// UpdateCompetitorAnalysis sets the "competitor_analysis" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateCompetitorAnalysis() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldCompetitorAnalysis)
	return u
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (u *ProviderResponseUpsert) ClearCompetitorAnalysis() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldCompetitorAnalysis)
	return u
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (u *ProviderResponseUpsert) SetFeaturesMentioned(v []string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldFeaturesMentioned, v)
	return u
}

// UpdateFeaturesMentioned sets the "features_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateFeaturesMentioned() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldFeaturesMentioned)
	return u
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (u *ProviderResponseUpsert) ClearFeaturesMentioned() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldFeaturesMentioned)
	return u
}

// SetValueProps sets the "value_props" field.
func (u *ProviderResponseUpsert) SetValueProps(v []string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldValueProps, v)
	return u
}

// UpdateValueProps sets the "value_props" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateValueProps() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldValueProps)
	return u
}

// ClearValueProps clears the value of the "value_props" field.
func (u *ProviderResponseUpsert) ClearValueProps() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldValueProps)
	return u
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (u *ProviderResponseUpsert) SetFeaturedSnippetPotential(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldFeaturedSnippetPotential, v)
	return u
}

// UpdateFeaturedSnippetPotential sets the "featured_snippet_potential" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateFeaturedSnippetPotential() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldFeaturedSnippetPotential)
	return u
}

// AddFeaturedSnippetPotential adds v to the "featured_snippet_potential" field.
func (u *ProviderResponseUpsert) AddFeaturedSnippetPotential(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldFeaturedSnippetPotential, v)
	return u
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (u *ProviderResponseUpsert) SetVoiceSearchOptimized(v bool) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldVoiceSearchOptimized, v)
	return u
}

// UpdateVoiceSearchOptimized sets the "voice_search_optimized" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateVoiceSearchOptimized() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldVoiceSearchOptimized)
	return u
}

// SetGeoScore sets the "geo_score" field.
func (u *ProviderResponseUpsert) SetGeoScore(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldGeoScore, v)
	return u
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateGeoScore() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldGeoScore)
	return u
}

// AddGeoScore adds v to the "geo_score" field.
func (u *ProviderResponseUpsert) AddGeoScore(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldGeoScore, v)
	return u
}

// SetSovScore sets the "sov_score" field.
func (u *ProviderResponseUpsert) SetSovScore(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldSovScore, v)
	return u
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateSovScore() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldSovScore)
	return u
}

// AddSovScore adds v to the "sov_score" field.
func (u *ProviderResponseUpsert) AddSovScore(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldSovScore, v)
	return u
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *ProviderResponseUpsert) SetContextCompleteness(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldContextCompleteness, v)
	return u
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateContextCompleteness() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldContextCompleteness)
	return u
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *ProviderResponseUpsert) AddContextCompleteness(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldContextCompleteness, v)
	return u
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (u *ProviderResponseUpsert) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldBuyerJourneyCategory, v)
	return u
}

// UpdateBuyerJourneyCategory sets the "buyer_journey_category" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateBuyerJourneyCategory() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldBuyerJourneyCategory)
	return u
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (u *ProviderResponseUpsert) ClearBuyerJourneyCategory() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldBuyerJourneyCategory)
	return u
}

// SetContextQuality sets the "context_quality" field.
func (u *ProviderResponseUpsert) SetContextQuality(v float64) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldContextQuality, v)
	return u
}

// UpdateContextQuality sets the "context_quality" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateContextQuality() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldContextQuality)
	return u
}

// AddContextQuality adds v to the "context_quality" field.
func (u *ProviderResponseUpsert) AddContextQuality(v float64) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldContextQuality, v)
	return u
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (u *ProviderResponseUpsert) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldAdditionalMetrics, v)
	return u
}

// UpdateAdditionalMetrics sets the "additional_metrics" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateAdditionalMetrics() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldAdditionalMetrics)
	return u
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (u *ProviderResponseUpsert) ClearAdditionalMetrics() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldAdditionalMetrics)
	return u
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (u *ProviderResponseUpsert) SetMetricsExtractedAt(v time.Time) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldMetricsExtractedAt, v)
	return u
}

// UpdateMetricsExtractedAt sets the "metrics_extracted_at" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateMetricsExtractedAt() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldMetricsExtractedAt)
	return u
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (u *ProviderResponseUpsert) ClearMetricsExtractedAt() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldMetricsExtractedAt)
	return u
}

// SetExtractionError sets the "extraction_error" field.
func (u *ProviderResponseUpsert) SetExtractionError(v string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldExtractionError, v)
	return u
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateExtractionError() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldExtractionError)
	return u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *ProviderResponseUpsert) ClearExtractionError() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldExtractionError)
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *ProviderResponseUpsert) SetBatchID(v string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateBatchID() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldBatchID)
	return u
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ProviderResponseUpsert) ClearBatchID() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldBatchID)
	return u
}

// SetBatchNumber sets the "batch_number" field.
func (u *ProviderResponseUpsert) SetBatchNumber(v int) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldBatchNumber, v)
	return u
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateBatchNumber() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldBatchNumber)
	return u
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *ProviderResponseUpsert) AddBatchNumber(v int) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldBatchNumber, v)
	return u
}

// SetBatchPosition sets the "batch_position" field.
func (u *ProviderResponseUpsert) SetBatchPosition(v int) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldBatchPosition, v)
	return u
}

// UpdateBatchPosition sets the "batch_position" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateBatchPosition() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldBatchPosition)
	return u
}

// AddBatchPosition adds v to the "batch_position" field.
func (u *ProviderResponseUpsert) AddBatchPosition(v int) *ProviderResponseUpsert {
	u.Add(providerresponse.FieldBatchPosition, v)
	return u
}

// SetQueryText sets the "query_text" field.
func (u *ProviderResponseUpsert) SetQueryText(v string) *ProviderResponseUpsert {
	u.Set(providerresponse.FieldQueryText, v)
	return u
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *ProviderResponseUpsert) UpdateQueryText() *ProviderResponseUpsert {
	u.SetExcluded(providerresponse.FieldQueryText)
	return u
}

// ClearQueryText clears the value of the "query_text" field.
func (u *ProviderResponseUpsert) ClearQueryText() *ProviderResponseUpsert {
	u.SetNull(providerresponse.FieldQueryText)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(providerresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderResponseUpsertOne) UpdateNewValues() *ProviderResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(providerresponse.FieldID)
		}
		if _, exists := u.create.mutation.QueryID(); exists {
			s.SetIgnore(providerresponse.FieldQueryID)
		}
		if _, exists := u.create.mutation.AuditID(); exists {
			s.SetIgnore(providerresponse.FieldAuditID)
		}
		if _, exists := u.create.mutation.Provider(); exists {
			s.SetIgnore(providerresponse.FieldProvider)
		}
		if _, exists := u.create.mutation.Model(); exists {
			s.SetIgnore(providerresponse.FieldModel)
		}
		if _, exists := u.create.mutation.Text(); exists {
			s.SetIgnore(providerresponse.FieldText)
		}
		if _, exists := u.create.mutation.TokensIn(); exists {
			s.SetIgnore(providerresponse.FieldTokensIn)
		}
		if _, exists := u.create.mutation.TokensOut(); exists {
			s.SetIgnore(providerresponse.FieldTokensOut)
		}
		if _, exists := u.create.mutation.Cost(); exists {
			s.SetIgnore(providerresponse.FieldCost)
		}
		if _, exists := u.create.mutation.LatencyMs(); exists {
			s.SetIgnore(providerresponse.FieldLatencyMs)
		}
		if _, exists := u.create.mutation.Cached(); exists {
			s.SetIgnore(providerresponse.FieldCached)
		}
		if _, exists := u.create.mutation.Citations(); exists {
			s.SetIgnore(providerresponse.FieldCitations)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(providerresponse.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProviderResponseUpsertOne) Ignore() *ProviderResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderResponseUpsertOne) DoNothing() *ProviderResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderResponseCreate.OnConflict
// documentation for more info.
func (u *ProviderResponseUpsertOne) Update(set func(*ProviderResponseUpsert)) *ProviderResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *ProviderResponseUpsertOne) SetBrandMentioned(v bool) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBrandMentioned(v)
	})
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateBrandMentioned() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBrandMentioned()
	})
}

// SetMentionCount sets the "mention_count" field.
func (u *ProviderResponseUpsertOne) SetMentionCount(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionCount(v)
	})
}

// AddMentionCount adds v to the "mention_count" field.
func (u *ProviderResponseUpsertOne) AddMentionCount(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddMentionCount(v)
	})
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateMentionCount() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionCount()
	})
}

// SetMentionPosition sets the "mention_position" field.
func (u *ProviderResponseUpsertOne) SetMentionPosition(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionPosition(v)
	})
}

// AddMentionPosition adds v to the "mention_position" field.
func (u *ProviderResponseUpsertOne) AddMentionPosition(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddMentionPosition(v)
	})
}

// UpdateMentionPosition sets the "mention_position" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateMentionPosition() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionPosition()
	})
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (u *ProviderResponseUpsertOne) SetFirstPositionPercentage(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFirstPositionPercentage(v)
	})
}

// AddFirstPositionPercentage adds v to the "first_position_percentage" field.
func (u *ProviderResponseUpsertOne) AddFirstPositionPercentage(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddFirstPositionPercentage(v)
	})
}

// UpdateFirstPositionPercentage sets the "first_position_percentage" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateFirstPositionPercentage() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFirstPositionPercentage()
	})
}

// SetMentionContext sets the "mention_context" field.
func (u *ProviderResponseUpsertOne) SetMentionContext(v string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionContext(v)
	})
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateMentionContext() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionContext()
	})
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *ProviderResponseUpsertOne) ClearMentionContext() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearMentionContext()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *ProviderResponseUpsertOne) SetSentiment(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetSentiment(v)
	})
}

// AddSentiment adds v to the "sentiment" field.
func (u *ProviderResponseUpsertOne) AddSentiment(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateSentiment() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateSentiment()
	})
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (u *ProviderResponseUpsertOne) SetRecommendationStrength(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetRecommendationStrength(v)
	})
}

// AddRecommendationStrength adds v to the "recommendation_strength" field.
func (u *ProviderResponseUpsertOne) AddRecommendationStrength(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddRecommendationStrength(v)
	})
}

// UpdateRecommendationStrength sets the "recommendation_strength" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateRecommendationStrength() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateRecommendationStrength()
	})
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (u *ProviderResponseUpsertOne) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetCompetitorAnalysis(v)
	})
}

// UpdateCompetitorAnalysis sets the "competitor_analysis" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateCompetitorAnalysis() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateCompetitorAnalysis()
	})
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (u *ProviderResponseUpsertOne) ClearCompetitorAnalysis() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearCompetitorAnalysis()
	})
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (u *ProviderResponseUpsertOne) SetFeaturesMentioned(v []string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFeaturesMentioned(v)
	})
}

// UpdateFeaturesMentioned sets the "features_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateFeaturesMentioned() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFeaturesMentioned()
	})
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (u *ProviderResponseUpsertOne) ClearFeaturesMentioned() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearFeaturesMentioned()
	})
}

// SetValueProps sets the "value_props" field.
func (u *ProviderResponseUpsertOne) SetValueProps(v []string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetValueProps(v)
	})
}

// UpdateValueProps sets the "value_props" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateValueProps() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateValueProps()
	})
}

// ClearValueProps clears the value of the "value_props" field.
func (u *ProviderResponseUpsertOne) ClearValueProps() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearValueProps()
	})
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (u *ProviderResponseUpsertOne) SetFeaturedSnippetPotential(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFeaturedSnippetPotential(v)
	})
}

// AddFeaturedSnippetPotential adds v to the "featured_snippet_potential" field.
func (u *ProviderResponseUpsertOne) AddFeaturedSnippetPotential(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddFeaturedSnippetPotential(v)
	})
}

// UpdateFeaturedSnippetPotential sets the "featured_snippet_potential" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateFeaturedSnippetPotential() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFeaturedSnippetPotential()
	})
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (u *ProviderResponseUpsertOne) SetVoiceSearchOptimized(v bool) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetVoiceSearchOptimized(v)
	})
}

// UpdateVoiceSearchOptimized sets the "voice_search_optimized" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateVoiceSearchOptimized() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateVoiceSearchOptimized()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *ProviderResponseUpsertOne) SetGeoScore(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *ProviderResponseUpsertOne) AddGeoScore(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateGeoScore() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *ProviderResponseUpsertOne) SetSovScore(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *ProviderResponseUpsertOne) AddSovScore(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateSovScore() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateSovScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *ProviderResponseUpsertOne) SetContextCompleteness(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *ProviderResponseUpsertOne) AddContextCompleteness(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateContextCompleteness() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (u *ProviderResponseUpsertOne) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBuyerJourneyCategory(v)
	})
}

// UpdateBuyerJourneyCategory sets the "buyer_journey_category" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateBuyerJourneyCategory() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBuyerJourneyCategory()
	})
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (u *ProviderResponseUpsertOne) ClearBuyerJourneyCategory() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearBuyerJourneyCategory()
	})
}

// SetContextQuality sets the "context_quality" field.
func (u *ProviderResponseUpsertOne) SetContextQuality(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetContextQuality(v)
	})
}

// AddContextQuality adds v to the "context_quality" field.
func (u *ProviderResponseUpsertOne) AddContextQuality(v float64) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddContextQuality(v)
	})
}

// UpdateContextQuality sets the "context_quality" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateContextQuality() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateContextQuality()
	})
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (u *ProviderResponseUpsertOne) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetAdditionalMetrics(v)
	})
}

// UpdateAdditionalMetrics sets the "additional_metrics" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateAdditionalMetrics() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateAdditionalMetrics()
	})
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (u *ProviderResponseUpsertOne) ClearAdditionalMetrics() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearAdditionalMetrics()
	})
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (u *ProviderResponseUpsertOne) SetMetricsExtractedAt(v time.Time) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMetricsExtractedAt(v)
	})
}

// UpdateMetricsExtractedAt sets the "metrics_extracted_at" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateMetricsExtractedAt() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMetricsExtractedAt()
	})
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (u *ProviderResponseUpsertOne) ClearMetricsExtractedAt() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearMetricsExtractedAt()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *ProviderResponseUpsertOne) SetExtractionError(v string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateExtractionError() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *ProviderResponseUpsertOne) ClearExtractionError() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearExtractionError()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *ProviderResponseUpsertOne) SetBatchID(v string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateBatchID() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ProviderResponseUpsertOne) ClearBatchID() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearBatchID()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *ProviderResponseUpsertOne) SetBatchNumber(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchNumber(v)
	})
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *ProviderResponseUpsertOne) AddBatchNumber(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateBatchNumber() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchNumber()
	})
}

// SetBatchPosition sets the "batch_position" field.
func (u *ProviderResponseUpsertOne) SetBatchPosition(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchPosition(v)
	})
}

// AddBatchPosition adds v to the "batch_position" field.
func (u *ProviderResponseUpsertOne) AddBatchPosition(v int) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddBatchPosition(v)
	})
}

// UpdateBatchPosition sets the "batch_position" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateBatchPosition() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchPosition()
	})
}

// SetQueryText sets the "query_text" field.
func (u *ProviderResponseUpsertOne) SetQueryText(v string) *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetQueryText(v)
	})
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *ProviderResponseUpsertOne) UpdateQueryText() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateQueryText()
	})
}

// ClearQueryText clears the value of the "query_text" field.
func (u *ProviderResponseUpsertOne) ClearQueryText() *ProviderResponseUpsertOne {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearQueryText()
	})
}

// Exec executes the query.
func (u *ProviderResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProviderResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProviderResponseUpsertOne.ID is not supported by MySQL driver. Use ProviderResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProviderResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderResponseCreateBulk is the builder for creating many ProviderResponse entities in bulk.
type ProviderResponseCreateBulk struct {
	config
	err      error
	builders []*ProviderResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the ProviderResponse entities in the database.
func (_c *ProviderResponseCreateBulk) Save(ctx context.Context) ([]*ProviderResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderResponseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProviderResponseCreateBulk) SaveX(ctx context.Context) []*ProviderResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderResponseUpsert) {
//			SetQueryID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProviderResponseUpsertBulk {
	_c.conflict = opts
	return &ProviderResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderResponseCreateBulk) OnConflictColumns(columns ...string) *ProviderResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderResponseUpsertBulk{
		create: _c,
	}
}

// ProviderResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of ProviderResponse nodes.
type ProviderResponseUpsertBulk struct {
	create *ProviderResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(providerresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderResponseUpsertBulk) UpdateNewValues() *ProviderResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(providerresponse.FieldID)
			}
			if _, exists := b.mutation.QueryID(); exists {
				s.SetIgnore(providerresponse.FieldQueryID)
			}
			if _, exists := b.mutation.AuditID(); exists {
				s.SetIgnore(providerresponse.FieldAuditID)
			}
			if _, exists := b.mutation.Provider(); exists {
				s.SetIgnore(providerresponse.FieldProvider)
			}
			if _, exists := b.mutation.Model(); exists {
				s.SetIgnore(providerresponse.FieldModel)
			}
			if _, exists := b.mutation.Text(); exists {
				s.SetIgnore(providerresponse.FieldText)
			}
			if _, exists := b.mutation.TokensIn(); exists {
				s.SetIgnore(providerresponse.FieldTokensIn)
			}
			if _, exists := b.mutation.TokensOut(); exists {
				s.SetIgnore(providerresponse.FieldTokensOut)
			}
			if _, exists := b.mutation.Cost(); exists {
				s.SetIgnore(providerresponse.FieldCost)
			}
			if _, exists := b.mutation.LatencyMs(); exists {
				s.SetIgnore(providerresponse.FieldLatencyMs)
			}
			if _, exists := b.mutation.Cached(); exists {
				s.SetIgnore(providerresponse.FieldCached)
			}
			if _, exists := b.mutation.Citations(); exists {
				s.SetIgnore(providerresponse.FieldCitations)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(providerresponse.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProviderResponseUpsertBulk) Ignore() *ProviderResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderResponseUpsertBulk) DoNothing() *ProviderResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderResponseCreateBulk.OnConflict
// documentation for more info.
func (u *ProviderResponseUpsertBulk) Update(set func(*ProviderResponseUpsert)) *ProviderResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderResponseUpsert{UpdateSet: update})
	}))
	return u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (u *ProviderResponseUpsertBulk) SetBrandMentioned(v bool) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBrandMentioned(v)
	})
}

// UpdateBrandMentioned sets the "brand_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateBrandMentioned() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBrandMentioned()
	})
}

// SetMentionCount sets the "mention_count" field.
func (u *ProviderResponseUpsertBulk) SetMentionCount(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionCount(v)
	})
}

// AddMentionCount adds v to the "mention_count" field.
func (u *ProviderResponseUpsertBulk) AddMentionCount(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddMentionCount(v)
	})
}

// UpdateMentionCount sets the "mention_count" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateMentionCount() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionCount()
	})
}

// SetMentionPosition sets the "mention_position" field.
func (u *ProviderResponseUpsertBulk) SetMentionPosition(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionPosition(v)
	})
}

// AddMentionPosition adds v to the "mention_position" field.
func (u *ProviderResponseUpsertBulk) AddMentionPosition(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddMentionPosition(v)
	})
}

// UpdateMentionPosition sets the "mention_position" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateMentionPosition() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionPosition()
	})
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (u *ProviderResponseUpsertBulk) SetFirstPositionPercentage(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFirstPositionPercentage(v)
	})
}

// AddFirstPositionPercentage adds v to the "first_position_percentage" field.
func (u *ProviderResponseUpsertBulk) AddFirstPositionPercentage(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddFirstPositionPercentage(v)
	})
}

// UpdateFirstPositionPercentage sets the "first_position_percentage" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateFirstPositionPercentage() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFirstPositionPercentage()
	})
}

// SetMentionContext sets the "mention_context" field.
func (u *ProviderResponseUpsertBulk) SetMentionContext(v string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMentionContext(v)
	})
}

// UpdateMentionContext sets the "mention_context" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateMentionContext() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMentionContext()
	})
}

// ClearMentionContext clears the value of the "mention_context" field.
func (u *ProviderResponseUpsertBulk) ClearMentionContext() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearMentionContext()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *ProviderResponseUpsertBulk) SetSentiment(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetSentiment(v)
	})
}

// AddSentiment adds v to the "sentiment" field.
func (u *ProviderResponseUpsertBulk) AddSentiment(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateSentiment() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateSentiment()
	})
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (u *ProviderResponseUpsertBulk) SetRecommendationStrength(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetRecommendationStrength(v)
	})
}

// AddRecommendationStrength adds v to the "recommendation_strength" field.
func (u *ProviderResponseUpsertBulk) AddRecommendationStrength(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddRecommendationStrength(v)
	})
}

// UpdateRecommendationStrength sets the "recommendation_strength" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateRecommendationStrength() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateRecommendationStrength()
	})
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (u *ProviderResponseUpsertBulk) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetCompetitorAnalysis(v)
	})
}

// UpdateCompetitorAnalysis sets the "competitor_analysis" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateCompetitorAnalysis() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateCompetitorAnalysis()
	})
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (u *ProviderResponseUpsertBulk) ClearCompetitorAnalysis() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearCompetitorAnalysis()
	})
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (u *ProviderResponseUpsertBulk) SetFeaturesMentioned(v []string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFeaturesMentioned(v)
	})
}

// UpdateFeaturesMentioned sets the "features_mentioned" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateFeaturesMentioned() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFeaturesMentioned()
	})
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (u *ProviderResponseUpsertBulk) ClearFeaturesMentioned() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearFeaturesMentioned()
	})
}

// SetValueProps sets the "value_props" field.
func (u *ProviderResponseUpsertBulk) SetValueProps(v []string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetValueProps(v)
	})
}

// UpdateValueProps sets the "value_props" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateValueProps() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateValueProps()
	})
}

// ClearValueProps clears the value of the "value_props" field.
func (u *ProviderResponseUpsertBulk) ClearValueProps() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearValueProps()
	})
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (u *ProviderResponseUpsertBulk) SetFeaturedSnippetPotential(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetFeaturedSnippetPotential(v)
	})
}

// AddFeaturedSnippetPotential adds v to the "featured_snippet_potential" field.
func (u *ProviderResponseUpsertBulk) AddFeaturedSnippetPotential(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddFeaturedSnippetPotential(v)
	})
}

// UpdateFeaturedSnippetPotential sets the "featured_snippet_potential" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateFeaturedSnippetPotential() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateFeaturedSnippetPotential()
	})
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (u *ProviderResponseUpsertBulk) SetVoiceSearchOptimized(v bool) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetVoiceSearchOptimized(v)
	})
}

// UpdateVoiceSearchOptimized sets the "voice_search_optimized" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateVoiceSearchOptimized() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateVoiceSearchOptimized()
	})
}

// SetGeoScore sets the "geo_score" field.
func (u *ProviderResponseUpsertBulk) SetGeoScore(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetGeoScore(v)
	})
}

// AddGeoScore adds v to the "geo_score" field.
func (u *ProviderResponseUpsertBulk) AddGeoScore(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddGeoScore(v)
	})
}

// UpdateGeoScore sets the "geo_score" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateGeoScore() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateGeoScore()
	})
}

// SetSovScore sets the "sov_score" field.
func (u *ProviderResponseUpsertBulk) SetSovScore(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetSovScore(v)
	})
}

// AddSovScore adds v to the "sov_score" field.
func (u *ProviderResponseUpsertBulk) AddSovScore(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddSovScore(v)
	})
}

// UpdateSovScore sets the "sov_score" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateSovScore() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateSovScore()
	})
}

// SetContextCompleteness sets the "context_completeness" field.
func (u *ProviderResponseUpsertBulk) SetContextCompleteness(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetContextCompleteness(v)
	})
}

// AddContextCompleteness adds v to the "context_completeness" field.
func (u *ProviderResponseUpsertBulk) AddContextCompleteness(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddContextCompleteness(v)
	})
}

// UpdateContextCompleteness sets the "context_completeness" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateContextCompleteness() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateContextCompleteness()
	})
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (u *ProviderResponseUpsertBulk) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBuyerJourneyCategory(v)
	})
}

// UpdateBuyerJourneyCategory sets the "buyer_journey_category" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateBuyerJourneyCategory() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBuyerJourneyCategory()
	})
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (u *ProviderResponseUpsertBulk) ClearBuyerJourneyCategory() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearBuyerJourneyCategory()
	})
}

// SetContextQuality sets the "context_quality" field.
func (u *ProviderResponseUpsertBulk) SetContextQuality(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetContextQuality(v)
	})
}

// AddContextQuality adds v to the "context_quality" field.
func (u *ProviderResponseUpsertBulk) AddContextQuality(v float64) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddContextQuality(v)
	})
}

// UpdateContextQuality sets the "context_quality" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateContextQuality() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateContextQuality()
	})
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (u *ProviderResponseUpsertBulk) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetAdditionalMetrics(v)
	})
}

// UpdateAdditionalMetrics sets the "additional_metrics" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateAdditionalMetrics() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateAdditionalMetrics()
	})
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (u *ProviderResponseUpsertBulk) ClearAdditionalMetrics() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearAdditionalMetrics()
	})
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (u *ProviderResponseUpsertBulk) SetMetricsExtractedAt(v time.Time) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetMetricsExtractedAt(v)
	})
}

// UpdateMetricsExtractedAt sets the "metrics_extracted_at" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateMetricsExtractedAt() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateMetricsExtractedAt()
	})
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (u *ProviderResponseUpsertBulk) ClearMetricsExtractedAt() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearMetricsExtractedAt()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *ProviderResponseUpsertBulk) SetExtractionError(v string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateExtractionError() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *ProviderResponseUpsertBulk) ClearExtractionError() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearExtractionError()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *ProviderResponseUpsertBulk) SetBatchID(v string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateBatchID() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *ProviderResponseUpsertBulk) ClearBatchID() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearBatchID()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *ProviderResponseUpsertBulk) SetBatchNumber(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchNumber(v)
	})
}

// AddBatchNumber adds v to the "batch_number" field.
func (u *ProviderResponseUpsertBulk) AddBatchNumber(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateBatchNumber() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchNumber()
	})
}

// SetBatchPosition sets the "batch_position" field.
func (u *ProviderResponseUpsertBulk) SetBatchPosition(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetBatchPosition(v)
	})
}

// AddBatchPosition adds v to the "batch_position" field.
func (u *ProviderResponseUpsertBulk) AddBatchPosition(v int) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.AddBatchPosition(v)
	})
}

// UpdateBatchPosition sets the "batch_position" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateBatchPosition() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateBatchPosition()
	})
}

// SetQueryText sets the "query_text" field.
func (u *ProviderResponseUpsertBulk) SetQueryText(v string) *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.SetQueryText(v)
	})
}

// UpdateQueryText sets the "query_text" field to the value that was provided on create.
func (u *ProviderResponseUpsertBulk) UpdateQueryText() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.UpdateQueryText()
	})
}

// ClearQueryText clears the value of the "query_text" field.
func (u *ProviderResponseUpsertBulk) ClearQueryText() *ProviderResponseUpsertBulk {
	return u.Update(func(s *ProviderResponseUpsert) {
		s.ClearQueryText()
	})
}

// Exec executes the query.
func (u *ProviderResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProviderResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProviderResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
