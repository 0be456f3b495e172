// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brandlens/brandlens/ent/predicate"
	"github.com/brandlens/brandlens/ent/providerresponse"
)

// ProviderResponseUpdate is the builder for updating ProviderResponse entities.
type ProviderResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderResponseMutation
}

// Where appends a list predicates to the ProviderResponseUpdate builder.
func (_u *ProviderResponseUpdate) Where(ps ...predicate.ProviderResponse) *ProviderResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_u *ProviderResponseUpdate) SetBrandMentioned(v bool) *ProviderResponseUpdate {
	_u.mutation.SetBrandMentioned(v)
	return _u
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableBrandMentioned(v *bool) *ProviderResponseUpdate {
	if v != nil {
		_u.SetBrandMentioned(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *ProviderResponseUpdate) SetMentionCount(v int) *ProviderResponseUpdate {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableMentionCount(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *ProviderResponseUpdate) AddMentionCount(v int) *ProviderResponseUpdate {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetMentionPosition sets the "mention_position" field.
func (_u *ProviderResponseUpdate) SetMentionPosition(v int) *ProviderResponseUpdate {
	_u.mutation.ResetMentionPosition()
	_u.mutation.SetMentionPosition(v)
	return _u
}

// SetNillableMentionPosition sets the "mention_position" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableMentionPosition(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetMentionPosition(*v)
	}
	return _u
}

// AddMentionPosition adds value to the "mention_position" field.
func (_u *ProviderResponseUpdate) AddMentionPosition(v int) *ProviderResponseUpdate {
	_u.mutation.AddMentionPosition(v)
	return _u
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (_u *ProviderResponseUpdate) SetFirstPositionPercentage(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetFirstPositionPercentage()
	_u.mutation.SetFirstPositionPercentage(v)
	return _u
}

// SetNillableFirstPositionPercentage sets the "first_position_percentage" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableFirstPositionPercentage(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetFirstPositionPercentage(*v)
	}
	return _u
}

// AddFirstPositionPercentage adds value to the "first_position_percentage" field.
func (_u *ProviderResponseUpdate) AddFirstPositionPercentage(v float64) *ProviderResponseUpdate {
	_u.mutation.AddFirstPositionPercentage(v)
	return _u
}

// SetMentionContext sets the "mention_context" field.
func (_u *ProviderResponseUpdate) SetMentionContext(v string) *ProviderResponseUpdate {
	_u.mutation.SetMentionContext(v)
	return _u
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableMentionContext(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetMentionContext(*v)
	}
	return _u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (_u *ProviderResponseUpdate) ClearMentionContext() *ProviderResponseUpdate {
	_u.mutation.ClearMentionContext()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ProviderResponseUpdate) SetSentiment(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetSentiment()
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableSentiment(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// AddSentiment adds value to the "sentiment" field.
func (_u *ProviderResponseUpdate) AddSentiment(v float64) *ProviderResponseUpdate {
	_u.mutation.AddSentiment(v)
	return _u
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (_u *ProviderResponseUpdate) SetRecommendationStrength(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetRecommendationStrength()
	_u.mutation.SetRecommendationStrength(v)
	return _u
}

// SetNillableRecommendationStrength sets the "recommendation_strength" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableRecommendationStrength(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetRecommendationStrength(*v)
	}
	return _u
}

// AddRecommendationStrength adds value to the "recommendation_strength" field.
func (_u *ProviderResponseUpdate) AddRecommendationStrength(v float64) *ProviderResponseUpdate {
	_u.mutation.AddRecommendationStrength(v)
	return _u
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (_u *ProviderResponseUpdate) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpdate {
	_u.mutation.SetCompetitorAnalysis(v)
	return _u
}

// AppendCompetitorAnalysis appends value to the "competitor_analysis" field.
func (_u *ProviderResponseUpdate) AppendCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpdate {
	_u.mutation.AppendCompetitorAnalysis(v)
	return _u
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (_u *ProviderResponseUpdate) ClearCompetitorAnalysis() *ProviderResponseUpdate {
	_u.mutation.ClearCompetitorAnalysis()
	return _u
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (_u *ProviderResponseUpdate) SetFeaturesMentioned(v []string) *ProviderResponseUpdate {
	_u.mutation.SetFeaturesMentioned(v)
	return _u
}

// AppendFeaturesMentioned appends value to the "features_mentioned" field.
func (_u *ProviderResponseUpdate) AppendFeaturesMentioned(v []string) *ProviderResponseUpdate {
	_u.mutation.AppendFeaturesMentioned(v)
	return _u
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (_u *ProviderResponseUpdate) ClearFeaturesMentioned() *ProviderResponseUpdate {
	_u.mutation.ClearFeaturesMentioned()
	return _u
}

// SetValueProps sets the "value_props" field.
func (_u *ProviderResponseUpdate) SetValueProps(v []string) *ProviderResponseUpdate {
	_u.mutation.SetValueProps(v)
	return _u
}

// AppendValueProps appends value to the "value_props" field.
func (_u *ProviderResponseUpdate) AppendValueProps(v []string) *ProviderResponseUpdate {
	_u.mutation.AppendValueProps(v)
	return _u
}

// ClearValueProps clears the value of the "value_props" field.
func (_u *ProviderResponseUpdate) ClearValueProps() *ProviderResponseUpdate {
	_u.mutation.ClearValueProps()
	return _u
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (_u *ProviderResponseUpdate) SetFeaturedSnippetPotential(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetFeaturedSnippetPotential()
	_u.mutation.SetFeaturedSnippetPotential(v)
	return _u
}

// SetNillableFeaturedSnippetPotential sets the "featured_snippet_potential" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableFeaturedSnippetPotential(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetFeaturedSnippetPotential(*v)
	}
	return _u
}

// AddFeaturedSnippetPotential adds value to the "featured_snippet_potential" field.
func (_u *ProviderResponseUpdate) AddFeaturedSnippetPotential(v float64) *ProviderResponseUpdate {
	_u.mutation.AddFeaturedSnippetPotential(v)
	return _u
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (_u *ProviderResponseUpdate) SetVoiceSearchOptimized(v bool) *ProviderResponseUpdate {
	_u.mutation.SetVoiceSearchOptimized(v)
	return _u
}

// SetNillableVoiceSearchOptimized sets the "voice_search_optimized" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableVoiceSearchOptimized(v *bool) *ProviderResponseUpdate {
	if v != nil {
		_u.SetVoiceSearchOptimized(*v)
	}
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *ProviderResponseUpdate) SetGeoScore(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableGeoScore(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *ProviderResponseUpdate) AddGeoScore(v float64) *ProviderResponseUpdate {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *ProviderResponseUpdate) SetSovScore(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableSovScore(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *ProviderResponseUpdate) AddSovScore(v float64) *ProviderResponseUpdate {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *ProviderResponseUpdate) SetContextCompleteness(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableContextCompleteness(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *ProviderResponseUpdate) AddContextCompleteness(v float64) *ProviderResponseUpdate {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (_u *ProviderResponseUpdate) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseUpdate {
	_u.mutation.SetBuyerJourneyCategory(v)
	return _u
}

// SetNillableBuyerJourneyCategory sets the "buyer_journey_category" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableBuyerJourneyCategory(v *providerresponse.BuyerJourneyCategory) *ProviderResponseUpdate {
	if v != nil {
		_u.SetBuyerJourneyCategory(*v)
	}
	return _u
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (_u *ProviderResponseUpdate) ClearBuyerJourneyCategory() *ProviderResponseUpdate {
	_u.mutation.ClearBuyerJourneyCategory()
	return _u
}

// SetContextQuality sets the "context_quality" field.
func (_u *ProviderResponseUpdate) SetContextQuality(v float64) *ProviderResponseUpdate {
	_u.mutation.ResetContextQuality()
	_u.mutation.SetContextQuality(v)
	return _u
}

// SetNillableContextQuality sets the "context_quality" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableContextQuality(v *float64) *ProviderResponseUpdate {
	if v != nil {
		_u.SetContextQuality(*v)
	}
	return _u
}

// AddContextQuality adds value to the "context_quality" field.
func (_u *ProviderResponseUpdate) AddContextQuality(v float64) *ProviderResponseUpdate {
	_u.mutation.AddContextQuality(v)
	return _u
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_u *ProviderResponseUpdate) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseUpdate {
	_u.mutation.SetAdditionalMetrics(v)
	return _u
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (_u *ProviderResponseUpdate) ClearAdditionalMetrics() *ProviderResponseUpdate {
	_u.mutation.ClearAdditionalMetrics()
	return _u
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (_u *ProviderResponseUpdate) SetMetricsExtractedAt(v time.Time) *ProviderResponseUpdate {
	_u.mutation.SetMetricsExtractedAt(v)
	return _u
}

// SetNillableMetricsExtractedAt sets the "metrics_extracted_at" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableMetricsExtractedAt(v *time.Time) *ProviderResponseUpdate {
	if v != nil {
		_u.SetMetricsExtractedAt(*v)
	}
	return _u
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (_u *ProviderResponseUpdate) ClearMetricsExtractedAt() *ProviderResponseUpdate {
	_u.mutation.ClearMetricsExtractedAt()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *ProviderResponseUpdate) SetExtractionError(v string) *ProviderResponseUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableExtractionError(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *ProviderResponseUpdate) ClearExtractionError() *ProviderResponseUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ProviderResponseUpdate) SetBatchID(v string) *ProviderResponseUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableBatchID(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ProviderResponseUpdate) ClearBatchID() *ProviderResponseUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *ProviderResponseUpdate) SetBatchNumber(v int) *ProviderResponseUpdate {
	_u.mutation.ResetBatchNumber()
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableBatchNumber(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// AddBatchNumber adds value to the "batch_number" field.
func (_u *ProviderResponseUpdate) AddBatchNumber(v int) *ProviderResponseUpdate {
	_u.mutation.AddBatchNumber(v)
	return _u
}

// SetBatchPosition sets the "batch_position" field.
func (_u *ProviderResponseUpdate) SetBatchPosition(v int) *ProviderResponseUpdate {
	_u.mutation.ResetBatchPosition()
	_u.mutation.SetBatchPosition(v)
	return _u
}

// SetNillableBatchPosition sets the "batch_position" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableBatchPosition(v *int) *ProviderResponseUpdate {
	if v != nil {
		_u.SetBatchPosition(*v)
	}
	return _u
}

// AddBatchPosition adds value to the "batch_position" field.
func (_u *ProviderResponseUpdate) AddBatchPosition(v int) *ProviderResponseUpdate {
	_u.mutation.AddBatchPosition(v)
	return _u
}

// SetQueryText sets the "query_text" field.
func (_u *ProviderResponseUpdate) SetQueryText(v string) *ProviderResponseUpdate {
	_u.mutation.SetQueryText(v)
	return _u
}

// SetNillableQueryText sets the "query_text" field if the given value is not nil.
func (_u *ProviderResponseUpdate) SetNillableQueryText(v *string) *ProviderResponseUpdate {
	if v != nil {
		_u.SetQueryText(*v)
	}
	return _u
}

// ClearQueryText clears the value of the "query_text" field.
func (_u *ProviderResponseUpdate) ClearQueryText() *ProviderResponseUpdate {
	_u.mutation.ClearQueryText()
	return _u
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_u *ProviderResponseUpdate) Mutation() *ProviderResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderResponseUpdate) check() error {
	if v, ok := _u.mutation.BuyerJourneyCategory(); ok {
		if err := providerresponse.BuyerJourneyCategoryValidator(v); err != nil {
			return &ValidationError{Name: "buyer_journey_category", err: fmt.Errorf(`ent: validator failed for field "ProviderResponse.buyer_journey_category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProviderResponse.audit"`)
	}
	return nil
}

func (_u *ProviderResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerresponse.Table, providerresponse.Columns, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(providerresponse.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.BrandMentioned(); ok {
		_spec.SetField(providerresponse.FieldBrandMentioned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(providerresponse.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(providerresponse.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MentionPosition(); ok {
		_spec.SetField(providerresponse.FieldMentionPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionPosition(); ok {
		_spec.AddField(providerresponse.FieldMentionPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstPositionPercentage(); ok {
		_spec.SetField(providerresponse.FieldFirstPositionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstPositionPercentage(); ok {
		_spec.AddField(providerresponse.FieldFirstPositionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionContext(); ok {
		_spec.SetField(providerresponse.FieldMentionContext, field.TypeString, value)
	}
	if _u.mutation.MentionContextCleared() {
		_spec.ClearField(providerresponse.FieldMentionContext, field.TypeString)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(providerresponse.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentiment(); ok {
		_spec.AddField(providerresponse.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationStrength(); ok {
		_spec.SetField(providerresponse.FieldRecommendationStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationStrength(); ok {
		_spec.AddField(providerresponse.FieldRecommendationStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetitorAnalysis(); ok {
		_spec.SetField(providerresponse.FieldCompetitorAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitorAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldCompetitorAnalysis, value)
		})
	}
	if _u.mutation.CompetitorAnalysisCleared() {
		_spec.ClearField(providerresponse.FieldCompetitorAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeaturesMentioned(); ok {
		_spec.SetField(providerresponse.FieldFeaturesMentioned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeaturesMentioned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldFeaturesMentioned, value)
		})
	}
	if _u.mutation.FeaturesMentionedCleared() {
		_spec.ClearField(providerresponse.FieldFeaturesMentioned, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValueProps(); ok {
		_spec.SetField(providerresponse.FieldValueProps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValueProps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldValueProps, value)
		})
	}
	if _u.mutation.ValuePropsCleared() {
		_spec.ClearField(providerresponse.FieldValueProps, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeaturedSnippetPotential(); ok {
		_spec.SetField(providerresponse.FieldFeaturedSnippetPotential, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeaturedSnippetPotential(); ok {
		_spec.AddField(providerresponse.FieldFeaturedSnippetPotential, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VoiceSearchOptimized(); ok {
		_spec.SetField(providerresponse.FieldVoiceSearchOptimized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(providerresponse.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(providerresponse.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(providerresponse.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(providerresponse.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(providerresponse.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(providerresponse.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BuyerJourneyCategory(); ok {
		_spec.SetField(providerresponse.FieldBuyerJourneyCategory, field.TypeEnum, value)
	}
	if _u.mutation.BuyerJourneyCategoryCleared() {
		_spec.ClearField(providerresponse.FieldBuyerJourneyCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.ContextQuality(); ok {
		_spec.SetField(providerresponse.FieldContextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextQuality(); ok {
		_spec.AddField(providerresponse.FieldContextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdditionalMetrics(); ok {
		_spec.SetField(providerresponse.FieldAdditionalMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalMetricsCleared() {
		_spec.ClearField(providerresponse.FieldAdditionalMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetricsExtractedAt(); ok {
		_spec.SetField(providerresponse.FieldMetricsExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.MetricsExtractedAtCleared() {
		_spec.ClearField(providerresponse.FieldMetricsExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(providerresponse.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(providerresponse.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(providerresponse.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(providerresponse.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(providerresponse.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNumber(); ok {
		_spec.AddField(providerresponse.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchPosition(); ok {
		_spec.SetField(providerresponse.FieldBatchPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchPosition(); ok {
		_spec.AddField(providerresponse.FieldBatchPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueryText(); ok {
		_spec.SetField(providerresponse.FieldQueryText, field.TypeString, value)
	}
	if _u.mutation.QueryTextCleared() {
		_spec.ClearField(providerresponse.FieldQueryText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderResponseUpdateOne is the builder for updating a single ProviderResponse entity.
type ProviderResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderResponseMutation
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (_u *ProviderResponseUpdateOne) SetBrandMentioned(v bool) *ProviderResponseUpdateOne {
	_u.mutation.SetBrandMentioned(v)
	return _u
}

// SetNillableBrandMentioned sets the "brand_mentioned" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableBrandMentioned(v *bool) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetBrandMentioned(*v)
	}
	return _u
}

// SetMentionCount sets the "mention_count" field.
func (_u *ProviderResponseUpdateOne) SetMentionCount(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetMentionCount()
	_u.mutation.SetMentionCount(v)
	return _u
}

// SetNillableMentionCount sets the "mention_count" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableMentionCount(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetMentionCount(*v)
	}
	return _u
}

// AddMentionCount adds value to the "mention_count" field.
func (_u *ProviderResponseUpdateOne) AddMentionCount(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddMentionCount(v)
	return _u
}

// SetMentionPosition sets the "mention_position" field.
func (_u *ProviderResponseUpdateOne) SetMentionPosition(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetMentionPosition()
	_u.mutation.SetMentionPosition(v)
	return _u
}

// SetNillableMentionPosition sets the "mention_position" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableMentionPosition(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetMentionPosition(*v)
	}
	return _u
}

// AddMentionPosition adds value to the "mention_position" field.
func (_u *ProviderResponseUpdateOne) AddMentionPosition(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddMentionPosition(v)
	return _u
}

// SetFirstPositionPercentage sets the "first_position_percentage" field.
func (_u *ProviderResponseUpdateOne) SetFirstPositionPercentage(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetFirstPositionPercentage()
	_u.mutation.SetFirstPositionPercentage(v)
	return _u
}

// SetNillableFirstPositionPercentage sets the "first_position_percentage" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableFirstPositionPercentage(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetFirstPositionPercentage(*v)
	}
	return _u
}

// AddFirstPositionPercentage adds value to the "first_position_percentage" field.
func (_u *ProviderResponseUpdateOne) AddFirstPositionPercentage(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddFirstPositionPercentage(v)
	return _u
}

// SetMentionContext sets the "mention_context" field.
func (_u *ProviderResponseUpdateOne) SetMentionContext(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetMentionContext(v)
	return _u
}

// SetNillableMentionContext sets the "mention_context" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableMentionContext(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetMentionContext(*v)
	}
	return _u
}

// ClearMentionContext clears the value of the "mention_context" field.
func (_u *ProviderResponseUpdateOne) ClearMentionContext() *ProviderResponseUpdateOne {
	_u.mutation.ClearMentionContext()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ProviderResponseUpdateOne) SetSentiment(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetSentiment()
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableSentiment(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// AddSentiment adds value to the "sentiment" field.
func (_u *ProviderResponseUpdateOne) AddSentiment(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddSentiment(v)
	return _u
}

// SetRecommendationStrength sets the "recommendation_strength" field.
func (_u *ProviderResponseUpdateOne) SetRecommendationStrength(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetRecommendationStrength()
	_u.mutation.SetRecommendationStrength(v)
	return _u
}

// SetNillableRecommendationStrength sets the "recommendation_strength" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableRecommendationStrength(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetRecommendationStrength(*v)
	}
	return _u
}

// AddRecommendationStrength adds value to the "recommendation_strength" field.
func (_u *ProviderResponseUpdateOne) AddRecommendationStrength(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddRecommendationStrength(v)
	return _u
}

// SetCompetitorAnalysis sets the "competitor_analysis" field.
func (_u *ProviderResponseUpdateOne) SetCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpdateOne {
	_u.mutation.SetCompetitorAnalysis(v)
	return _u
}

// AppendCompetitorAnalysis appends value to the "competitor_analysis" field.
func (_u *ProviderResponseUpdateOne) AppendCompetitorAnalysis(v []map[string]interface{}) *ProviderResponseUpdateOne {
	_u.mutation.AppendCompetitorAnalysis(v)
	return _u
}

// ClearCompetitorAnalysis clears the value of the "competitor_analysis" field.
func (_u *ProviderResponseUpdateOne) ClearCompetitorAnalysis() *ProviderResponseUpdateOne {
	_u.mutation.ClearCompetitorAnalysis()
	return _u
}

// SetFeaturesMentioned sets the "features_mentioned" field.
func (_u *ProviderResponseUpdateOne) SetFeaturesMentioned(v []string) *ProviderResponseUpdateOne {
	_u.mutation.SetFeaturesMentioned(v)
	return _u
}

// AppendFeaturesMentioned appends value to the "features_mentioned" field.
func (_u *ProviderResponseUpdateOne) AppendFeaturesMentioned(v []string) *ProviderResponseUpdateOne {
	_u.mutation.AppendFeaturesMentioned(v)
	return _u
}

// ClearFeaturesMentioned clears the value of the "features_mentioned" field.
func (_u *ProviderResponseUpdateOne) ClearFeaturesMentioned() *ProviderResponseUpdateOne {
	_u.mutation.ClearFeaturesMentioned()
	return _u
}

// SetValueProps sets the "value_props" field.
func (_u *ProviderResponseUpdateOne) SetValueProps(v []string) *ProviderResponseUpdateOne {
	_u.mutation.SetValueProps(v)
	return _u
}

// AppendValueProps appends value to the "value_props" field.
func (_u *ProviderResponseUpdateOne) AppendValueProps(v []string) *ProviderResponseUpdateOne {
	_u.mutation.AppendValueProps(v)
	return _u
}

// ClearValueProps clears the value of the "value_props" field.
func (_u *ProviderResponseUpdateOne) ClearValueProps() *ProviderResponseUpdateOne {
	_u.mutation.ClearValueProps()
	return _u
}

// SetFeaturedSnippetPotential sets the "featured_snippet_potential" field.
func (_u *ProviderResponseUpdateOne) SetFeaturedSnippetPotential(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetFeaturedSnippetPotential()
	_u.mutation.SetFeaturedSnippetPotential(v)
	return _u
}

// SetNillableFeaturedSnippetPotential sets the "featured_snippet_potential" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableFeaturedSnippetPotential(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetFeaturedSnippetPotential(*v)
	}
	return _u
}

// AddFeaturedSnippetPotential adds value to the "featured_snippet_potential" field.
func (_u *ProviderResponseUpdateOne) AddFeaturedSnippetPotential(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddFeaturedSnippetPotential(v)
	return _u
}

// SetVoiceSearchOptimized sets the "voice_search_optimized" field.
func (_u *ProviderResponseUpdateOne) SetVoiceSearchOptimized(v bool) *ProviderResponseUpdateOne {
	_u.mutation.SetVoiceSearchOptimized(v)
	return _u
}

// SetNillableVoiceSearchOptimized sets the "voice_search_optimized" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableVoiceSearchOptimized(v *bool) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetVoiceSearchOptimized(*v)
	}
	return _u
}

// SetGeoScore sets the "geo_score" field.
func (_u *ProviderResponseUpdateOne) SetGeoScore(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetGeoScore()
	_u.mutation.SetGeoScore(v)
	return _u
}

// SetNillableGeoScore sets the "geo_score" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableGeoScore(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetGeoScore(*v)
	}
	return _u
}

// AddGeoScore adds value to the "geo_score" field.
func (_u *ProviderResponseUpdateOne) AddGeoScore(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddGeoScore(v)
	return _u
}

// SetSovScore sets the "sov_score" field.
func (_u *ProviderResponseUpdateOne) SetSovScore(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetSovScore()
	_u.mutation.SetSovScore(v)
	return _u
}

// SetNillableSovScore sets the "sov_score" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableSovScore(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetSovScore(*v)
	}
	return _u
}

// AddSovScore adds value to the "sov_score" field.
func (_u *ProviderResponseUpdateOne) AddSovScore(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddSovScore(v)
	return _u
}

// SetContextCompleteness sets the "context_completeness" field.
func (_u *ProviderResponseUpdateOne) SetContextCompleteness(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetContextCompleteness()
	_u.mutation.SetContextCompleteness(v)
	return _u
}

// SetNillableContextCompleteness sets the "context_completeness" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableContextCompleteness(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetContextCompleteness(*v)
	}
	return _u
}

// AddContextCompleteness adds value to the "context_completeness" field.
func (_u *ProviderResponseUpdateOne) AddContextCompleteness(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddContextCompleteness(v)
	return _u
}

// SetBuyerJourneyCategory sets the "buyer_journey_category" field.
func (_u *ProviderResponseUpdateOne) SetBuyerJourneyCategory(v providerresponse.BuyerJourneyCategory) *ProviderResponseUpdateOne {
	_u.mutation.SetBuyerJourneyCategory(v)
	return _u
}

// SetNillableBuyerJourneyCategory sets the "buyer_journey_category" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableBuyerJourneyCategory(v *providerresponse.BuyerJourneyCategory) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetBuyerJourneyCategory(*v)
	}
	return _u
}

// ClearBuyerJourneyCategory clears the value of the "buyer_journey_category" field.
func (_u *ProviderResponseUpdateOne) ClearBuyerJourneyCategory() *ProviderResponseUpdateOne {
	_u.mutation.ClearBuyerJourneyCategory()
	return _u
}

// SetContextQuality sets the "context_quality" field.
func (_u *ProviderResponseUpdateOne) SetContextQuality(v float64) *ProviderResponseUpdateOne {
	_u.mutation.ResetContextQuality()
	_u.mutation.SetContextQuality(v)
	return _u
}

// SetNillableContextQuality sets the "context_quality" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableContextQuality(v *float64) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetContextQuality(*v)
	}
	return _u
}

// AddContextQuality adds value to the "context_quality" field.
func (_u *ProviderResponseUpdateOne) AddContextQuality(v float64) *ProviderResponseUpdateOne {
	_u.mutation.AddContextQuality(v)
	return _u
}

// SetAdditionalMetrics sets the "additional_metrics" field.
func (_u *ProviderResponseUpdateOne) SetAdditionalMetrics(v map[string]interface{}) *ProviderResponseUpdateOne {
	_u.mutation.SetAdditionalMetrics(v)
	return _u
}

// ClearAdditionalMetrics clears the value of the "additional_metrics" field.
func (_u *ProviderResponseUpdateOne) ClearAdditionalMetrics() *ProviderResponseUpdateOne {
	_u.mutation.ClearAdditionalMetrics()
	return _u
}

// SetMetricsExtractedAt sets the "metrics_extracted_at" field.
func (_u *ProviderResponseUpdateOne) SetMetricsExtractedAt(v time.Time) *ProviderResponseUpdateOne {
	_u.mutation.SetMetricsExtractedAt(v)
	return _u
}

// SetNillableMetricsExtractedAt sets the "metrics_extracted_at" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableMetricsExtractedAt(v *time.Time) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetMetricsExtractedAt(*v)
	}
	return _u
}

// ClearMetricsExtractedAt clears the value of the "metrics_extracted_at" field.
func (_u *ProviderResponseUpdateOne) ClearMetricsExtractedAt() *ProviderResponseUpdateOne {
	_u.mutation.ClearMetricsExtractedAt()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *ProviderResponseUpdateOne) SetExtractionError(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableExtractionError(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *ProviderResponseUpdateOne) ClearExtractionError() *ProviderResponseUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ProviderResponseUpdateOne) SetBatchID(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableBatchID(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *ProviderResponseUpdateOne) ClearBatchID() *ProviderResponseUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *ProviderResponseUpdateOne) SetBatchNumber(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetBatchNumber()
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableBatchNumber(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// AddBatchNumber adds value to the "batch_number" field.
func (_u *ProviderResponseUpdateOne) AddBatchNumber(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddBatchNumber(v)
	return _u
}

// SetBatchPosition sets the "batch_position" field.
func (_u *ProviderResponseUpdateOne) SetBatchPosition(v int) *ProviderResponseUpdateOne {
	_u.mutation.ResetBatchPosition()
	_u.mutation.SetBatchPosition(v)
	return _u
}

// SetNillableBatchPosition sets the "batch_position" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableBatchPosition(v *int) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetBatchPosition(*v)
	}
	return _u
}

// AddBatchPosition adds value to the "batch_position" field.
func (_u *ProviderResponseUpdateOne) AddBatchPosition(v int) *ProviderResponseUpdateOne {
	_u.mutation.AddBatchPosition(v)
	return _u
}

// SetQueryText sets the "query_text" field.
func (_u *ProviderResponseUpdateOne) SetQueryText(v string) *ProviderResponseUpdateOne {
	_u.mutation.SetQueryText(v)
	return _u
}

// SetNillableQueryText sets the "query_text" field if the given value is not nil.
func (_u *ProviderResponseUpdateOne) SetNillableQueryText(v *string) *ProviderResponseUpdateOne {
	if v != nil {
		_u.SetQueryText(*v)
	}
	return _u
}

// ClearQueryText clears the value of the "query_text" field.
func (_u *ProviderResponseUpdateOne) ClearQueryText() *ProviderResponseUpdateOne {
	_u.mutation.ClearQueryText()
	return _u
}

// Mutation returns the ProviderResponseMutation object of the builder.
func (_u *ProviderResponseUpdateOne) Mutation() *ProviderResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderResponseUpdate builder.
func (_u *ProviderResponseUpdateOne) Where(ps ...predicate.ProviderResponse) *ProviderResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderResponseUpdateOne) Select(field string, fields ...string) *ProviderResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderResponse entity.
func (_u *ProviderResponseUpdateOne) Save(ctx context.Context) (*ProviderResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderResponseUpdateOne) SaveX(ctx context.Context) *ProviderResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderResponseUpdateOne) check() error {
	if v, ok := _u.mutation.BuyerJourneyCategory(); ok {
		if err := providerresponse.BuyerJourneyCategoryValidator(v); err != nil {
			return &ValidationError{Name: "buyer_journey_category", err: fmt.Errorf(`ent: validator failed for field "ProviderResponse.buyer_journey_category": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProviderResponse.audit"`)
	}
	return nil
}

func (_u *ProviderResponseUpdateOne) sqlSave(ctx context.Context) (_node *ProviderResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providerresponse.Table, providerresponse.Columns, sqlgraph.NewFieldSpec(providerresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerresponse.FieldID)
		for _, f := range fields {
			if !providerresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerresponse.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CitationsCleared() {
		_spec.ClearField(providerresponse.FieldCitations, field.TypeJSON)
	}
	if value, ok := _u.mutation.BrandMentioned(); ok {
		_spec.SetField(providerresponse.FieldBrandMentioned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MentionCount(); ok {
		_spec.SetField(providerresponse.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionCount(); ok {
		_spec.AddField(providerresponse.FieldMentionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MentionPosition(); ok {
		_spec.SetField(providerresponse.FieldMentionPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMentionPosition(); ok {
		_spec.AddField(providerresponse.FieldMentionPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstPositionPercentage(); ok {
		_spec.SetField(providerresponse.FieldFirstPositionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstPositionPercentage(); ok {
		_spec.AddField(providerresponse.FieldFirstPositionPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MentionContext(); ok {
		_spec.SetField(providerresponse.FieldMentionContext, field.TypeString, value)
	}
	if _u.mutation.MentionContextCleared() {
		_spec.ClearField(providerresponse.FieldMentionContext, field.TypeString)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(providerresponse.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSentiment(); ok {
		_spec.AddField(providerresponse.FieldSentiment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecommendationStrength(); ok {
		_spec.SetField(providerresponse.FieldRecommendationStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecommendationStrength(); ok {
		_spec.AddField(providerresponse.FieldRecommendationStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetitorAnalysis(); ok {
		_spec.SetField(providerresponse.FieldCompetitorAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompetitorAnalysis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldCompetitorAnalysis, value)
		})
	}
	if _u.mutation.CompetitorAnalysisCleared() {
		_spec.ClearField(providerresponse.FieldCompetitorAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeaturesMentioned(); ok {
		_spec.SetField(providerresponse.FieldFeaturesMentioned, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeaturesMentioned(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldFeaturesMentioned, value)
		})
	}
	if _u.mutation.FeaturesMentionedCleared() {
		_spec.ClearField(providerresponse.FieldFeaturesMentioned, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValueProps(); ok {
		_spec.SetField(providerresponse.FieldValueProps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValueProps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, providerresponse.FieldValueProps, value)
		})
	}
	if _u.mutation.ValuePropsCleared() {
		_spec.ClearField(providerresponse.FieldValueProps, field.TypeJSON)
	}
	if value, ok := _u.mutation.FeaturedSnippetPotential(); ok {
		_spec.SetField(providerresponse.FieldFeaturedSnippetPotential, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeaturedSnippetPotential(); ok {
		_spec.AddField(providerresponse.FieldFeaturedSnippetPotential, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VoiceSearchOptimized(); ok {
		_spec.SetField(providerresponse.FieldVoiceSearchOptimized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GeoScore(); ok {
		_spec.SetField(providerresponse.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGeoScore(); ok {
		_spec.AddField(providerresponse.FieldGeoScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SovScore(); ok {
		_spec.SetField(providerresponse.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSovScore(); ok {
		_spec.AddField(providerresponse.FieldSovScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextCompleteness(); ok {
		_spec.SetField(providerresponse.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextCompleteness(); ok {
		_spec.AddField(providerresponse.FieldContextCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BuyerJourneyCategory(); ok {
		_spec.SetField(providerresponse.FieldBuyerJourneyCategory, field.TypeEnum, value)
	}
	if _u.mutation.BuyerJourneyCategoryCleared() {
		_spec.ClearField(providerresponse.FieldBuyerJourneyCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.ContextQuality(); ok {
		_spec.SetField(providerresponse.FieldContextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextQuality(); ok {
		_spec.AddField(providerresponse.FieldContextQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdditionalMetrics(); ok {
		_spec.SetField(providerresponse.FieldAdditionalMetrics, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalMetricsCleared() {
		_spec.ClearField(providerresponse.FieldAdditionalMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MetricsExtractedAt(); ok {
		_spec.SetField(providerresponse.FieldMetricsExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.MetricsExtractedAtCleared() {
		_spec.ClearField(providerresponse.FieldMetricsExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(providerresponse.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(providerresponse.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(providerresponse.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(providerresponse.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(providerresponse.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchNumber(); ok {
		_spec.AddField(providerresponse.FieldBatchNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchPosition(); ok {
		_spec.SetField(providerresponse.FieldBatchPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchPosition(); ok {
		_spec.AddField(providerresponse.FieldBatchPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueryText(); ok {
		_spec.SetField(providerresponse.FieldQueryText, field.TypeString, value)
	}
	if _u.mutation.QueryTextCleared() {
		_spec.ClearField(providerresponse.FieldQueryText, field.TypeString)
	}
	_node = &ProviderResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
