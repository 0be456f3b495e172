// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/event"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/providerledger"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
	"github.com/brandlens/brandlens/ent/schema"
	"github.com/brandlens/brandlens/ent/strategicpriority"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditFields := schema.Audit{}.Fields()
	_ = auditFields
	// auditDescIncludeSubdomains is the schema descriptor for include_subdomains field.
	auditDescIncludeSubdomains := auditFields[6].Descriptor()
	// audit.DefaultIncludeSubdomains holds the default value on creation for the include_subdomains field.
	audit.DefaultIncludeSubdomains = auditDescIncludeSubdomains.Default.(bool)
	// auditDescTotalQueries is the schema descriptor for total_queries field.
	auditDescTotalQueries := auditFields[9].Descriptor()
	// audit.DefaultTotalQueries holds the default value on creation for the total_queries field.
	audit.DefaultTotalQueries = auditDescTotalQueries.Default.(int)
	// auditDescQueriesCompleted is the schema descriptor for queries_completed field.
	auditDescQueriesCompleted := auditFields[10].Descriptor()
	// audit.DefaultQueriesCompleted holds the default value on creation for the queries_completed field.
	audit.DefaultQueriesCompleted = auditDescQueriesCompleted.Default.(int)
	// auditDescConcurrency is the schema descriptor for concurrency field.
	auditDescConcurrency := auditFields[12].Descriptor()
	// audit.DefaultConcurrency holds the default value on creation for the concurrency field.
	audit.DefaultConcurrency = auditDescConcurrency.Default.(int)
	// auditDescCancelRequested is the schema descriptor for cancel_requested field.
	auditDescCancelRequested := auditFields[13].Descriptor()
	// audit.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	audit.DefaultCancelRequested = auditDescCancelRequested.Default.(bool)
	// auditDescCreatedAt is the schema descriptor for created_at field.
	auditDescCreatedAt := auditFields[16].Descriptor()
	// audit.DefaultCreatedAt holds the default value on creation for the created_at field.
	audit.DefaultCreatedAt = auditDescCreatedAt.Default.(func() time.Time)
	auditqueryFields := schema.AuditQuery{}.Fields()
	_ = auditqueryFields
	// auditqueryDescDifficulty is the schema descriptor for difficulty field.
	auditqueryDescDifficulty := auditqueryFields[6].Descriptor()
	// auditquery.DefaultDifficulty holds the default value on creation for the difficulty field.
	auditquery.DefaultDifficulty = auditqueryDescDifficulty.Default.(int)
	batchinsightFields := schema.BatchInsight{}.Fields()
	_ = batchinsightFields
	// batchinsightDescUpdatedAt is the schema descriptor for updated_at field.
	batchinsightDescUpdatedAt := batchinsightFields[6].Descriptor()
	// batchinsight.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batchinsight.DefaultUpdatedAt = batchinsightDescUpdatedAt.Default.(func() time.Time)
	// batchinsight.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batchinsight.UpdateDefaultUpdatedAt = batchinsightDescUpdatedAt.UpdateDefault.(func() time.Time)
	categoryaggregateFields := schema.CategoryAggregate{}.Fields()
	_ = categoryaggregateFields
	// categoryaggregateDescResponseCount is the schema descriptor for response_count field.
	categoryaggregateDescResponseCount := categoryaggregateFields[2].Descriptor()
	// categoryaggregate.DefaultResponseCount holds the default value on creation for the response_count field.
	categoryaggregate.DefaultResponseCount = categoryaggregateDescResponseCount.Default.(int)
	// categoryaggregateDescAvgGeoScore is the schema descriptor for avg_geo_score field.
	categoryaggregateDescAvgGeoScore := categoryaggregateFields[3].Descriptor()
	// categoryaggregate.DefaultAvgGeoScore holds the default value on creation for the avg_geo_score field.
	categoryaggregate.DefaultAvgGeoScore = categoryaggregateDescAvgGeoScore.Default.(float64)
	// categoryaggregateDescAvgSovScore is the schema descriptor for avg_sov_score field.
	categoryaggregateDescAvgSovScore := categoryaggregateFields[4].Descriptor()
	// categoryaggregate.DefaultAvgSovScore holds the default value on creation for the avg_sov_score field.
	categoryaggregate.DefaultAvgSovScore = categoryaggregateDescAvgSovScore.Default.(float64)
	// categoryaggregateDescAvgSentiment is the schema descriptor for avg_sentiment field.
	categoryaggregateDescAvgSentiment := categoryaggregateFields[5].Descriptor()
	// categoryaggregate.DefaultAvgSentiment holds the default value on creation for the avg_sentiment field.
	categoryaggregate.DefaultAvgSentiment = categoryaggregateDescAvgSentiment.Default.(float64)
	// categoryaggregateDescAvgContextCompleteness is the schema descriptor for avg_context_completeness field.
	categoryaggregateDescAvgContextCompleteness := categoryaggregateFields[6].Descriptor()
	// categoryaggregate.DefaultAvgContextCompleteness holds the default value on creation for the avg_context_completeness field.
	categoryaggregate.DefaultAvgContextCompleteness = categoryaggregateDescAvgContextCompleteness.Default.(float64)
	// categoryaggregateDescMentionRate is the schema descriptor for mention_rate field.
	categoryaggregateDescMentionRate := categoryaggregateFields[7].Descriptor()
	// categoryaggregate.DefaultMentionRate holds the default value on creation for the mention_rate field.
	categoryaggregate.DefaultMentionRate = categoryaggregateDescMentionRate.Default.(float64)
	// categoryaggregateDescCreatedAt is the schema descriptor for created_at field.
	categoryaggregateDescCreatedAt := categoryaggregateFields[11].Descriptor()
	// categoryaggregate.DefaultCreatedAt holds the default value on creation for the created_at field.
	categoryaggregate.DefaultCreatedAt = categoryaggregateDescCreatedAt.Default.(func() time.Time)
	dashboardsnapshotFields := schema.DashboardSnapshot{}.Fields()
	_ = dashboardsnapshotFields
	// dashboardsnapshotDescTotalCost is the schema descriptor for total_cost field.
	dashboardsnapshotDescTotalCost := dashboardsnapshotFields[6].Descriptor()
	// dashboardsnapshot.DefaultTotalCost holds the default value on creation for the total_cost field.
	dashboardsnapshot.DefaultTotalCost = dashboardsnapshotDescTotalCost.Default.(float64)
	// dashboardsnapshotDescGeneratedAt is the schema descriptor for generated_at field.
	dashboardsnapshotDescGeneratedAt := dashboardsnapshotFields[7].Descriptor()
	// dashboardsnapshot.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	dashboardsnapshot.DefaultGeneratedAt = dashboardsnapshotDescGeneratedAt.Default.(func() time.Time)
	// dashboardsnapshot.UpdateDefaultGeneratedAt holds the default value on update for the generated_at field.
	dashboardsnapshot.UpdateDefaultGeneratedAt = dashboardsnapshotDescGeneratedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executivesummaryFields := schema.ExecutiveSummary{}.Fields()
	_ = executivesummaryFields
	// executivesummaryDescCreatedAt is the schema descriptor for created_at field.
	executivesummaryDescCreatedAt := executivesummaryFields[5].Descriptor()
	// executivesummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	executivesummary.DefaultCreatedAt = executivesummaryDescCreatedAt.Default.(func() time.Time)
	providerledgerFields := schema.ProviderLedger{}.Fields()
	_ = providerledgerFields
	// providerledgerDescDailyCost is the schema descriptor for daily_cost field.
	providerledgerDescDailyCost := providerledgerFields[1].Descriptor()
	// providerledger.DefaultDailyCost holds the default value on creation for the daily_cost field.
	providerledger.DefaultDailyCost = providerledgerDescDailyCost.Default.(float64)
	// providerledgerDescMonthlyCost is the schema descriptor for monthly_cost field.
	providerledgerDescMonthlyCost := providerledgerFields[2].Descriptor()
	// providerledger.DefaultMonthlyCost holds the default value on creation for the monthly_cost field.
	providerledger.DefaultMonthlyCost = providerledgerDescMonthlyCost.Default.(float64)
	// providerledgerDescTotalCost is the schema descriptor for total_cost field.
	providerledgerDescTotalCost := providerledgerFields[3].Descriptor()
	// providerledger.DefaultTotalCost holds the default value on creation for the total_cost field.
	providerledger.DefaultTotalCost = providerledgerDescTotalCost.Default.(float64)
	// providerledgerDescRequestsToday is the schema descriptor for requests_today field.
	providerledgerDescRequestsToday := providerledgerFields[4].Descriptor()
	// providerledger.DefaultRequestsToday holds the default value on creation for the requests_today field.
	providerledger.DefaultRequestsToday = providerledgerDescRequestsToday.Default.(int)
	// providerledgerDescLastReset is the schema descriptor for last_reset field.
	providerledgerDescLastReset := providerledgerFields[5].Descriptor()
	// providerledger.DefaultLastReset holds the default value on creation for the last_reset field.
	providerledger.DefaultLastReset = providerledgerDescLastReset.Default.(func() time.Time)
	// providerledgerDescUpdatedAt is the schema descriptor for updated_at field.
	providerledgerDescUpdatedAt := providerledgerFields[6].Descriptor()
	// providerledger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	providerledger.DefaultUpdatedAt = providerledgerDescUpdatedAt.Default.(func() time.Time)
	// providerledger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	providerledger.UpdateDefaultUpdatedAt = providerledgerDescUpdatedAt.UpdateDefault.(func() time.Time)
	providerresponseFields := schema.ProviderResponse{}.Fields()
	_ = providerresponseFields
	// providerresponseDescTokensIn is the schema descriptor for tokens_in field.
	providerresponseDescTokensIn := providerresponseFields[6].Descriptor()
	// providerresponse.DefaultTokensIn holds the default value on creation for the tokens_in field.
	providerresponse.DefaultTokensIn = providerresponseDescTokensIn.Default.(int)
	// providerresponseDescTokensOut is the schema descriptor for tokens_out field.
	providerresponseDescTokensOut := providerresponseFields[7].Descriptor()
	// providerresponse.DefaultTokensOut holds the default value on creation for the tokens_out field.
	providerresponse.DefaultTokensOut = providerresponseDescTokensOut.Default.(int)
	// providerresponseDescCost is the schema descriptor for cost field.
	providerresponseDescCost := providerresponseFields[8].Descriptor()
	// providerresponse.DefaultCost holds the default value on creation for the cost field.
	providerresponse.DefaultCost = providerresponseDescCost.Default.(float64)
	// providerresponseDescLatencyMs is the schema descriptor for latency_ms field.
	providerresponseDescLatencyMs := providerresponseFields[9].Descriptor()
	// providerresponse.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	providerresponse.DefaultLatencyMs = providerresponseDescLatencyMs.Default.(int)
	// providerresponseDescCached is the schema descriptor for cached field.
	providerresponseDescCached := providerresponseFields[10].Descriptor()
	// providerresponse.DefaultCached holds the default value on creation for the cached field.
	providerresponse.DefaultCached = providerresponseDescCached.Default.(bool)
	// providerresponseDescCreatedAt is the schema descriptor for created_at field.
	providerresponseDescCreatedAt := providerresponseFields[12].Descriptor()
	// providerresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerresponse.DefaultCreatedAt = providerresponseDescCreatedAt.Default.(func() time.Time)
	// providerresponseDescBrandMentioned is the schema descriptor for brand_mentioned field.
	providerresponseDescBrandMentioned := providerresponseFields[13].Descriptor()
	// providerresponse.DefaultBrandMentioned holds the default value on creation for the brand_mentioned field.
	providerresponse.DefaultBrandMentioned = providerresponseDescBrandMentioned.Default.(bool)
	// providerresponseDescMentionCount is the schema descriptor for mention_count field.
	providerresponseDescMentionCount := providerresponseFields[14].Descriptor()
	// providerresponse.DefaultMentionCount holds the default value on creation for the mention_count field.
	providerresponse.DefaultMentionCount = providerresponseDescMentionCount.Default.(int)
	// providerresponseDescMentionPosition is the schema descriptor for mention_position field.
	providerresponseDescMentionPosition := providerresponseFields[15].Descriptor()
	// providerresponse.DefaultMentionPosition holds the default value on creation for the mention_position field.
	providerresponse.DefaultMentionPosition = providerresponseDescMentionPosition.Default.(int)
	// providerresponseDescFirstPositionPercentage is the schema descriptor for first_position_percentage field.
	providerresponseDescFirstPositionPercentage := providerresponseFields[16].Descriptor()
	// providerresponse.DefaultFirstPositionPercentage holds the default value on creation for the first_position_percentage field.
	providerresponse.DefaultFirstPositionPercentage = providerresponseDescFirstPositionPercentage.Default.(float64)
	// providerresponseDescSentiment is the schema descriptor for sentiment field.
	providerresponseDescSentiment := providerresponseFields[18].Descriptor()
	// providerresponse.DefaultSentiment holds the default value on creation for the sentiment field.
	providerresponse.DefaultSentiment = providerresponseDescSentiment.Default.(float64)
	// providerresponseDescRecommendationStrength is the schema descriptor for recommendation_strength field.
	providerresponseDescRecommendationStrength := providerresponseFields[19].Descriptor()
	// providerresponse.DefaultRecommendationStrength holds the default value on creation for the recommendation_strength field.
	providerresponse.DefaultRecommendationStrength = providerresponseDescRecommendationStrength.Default.(float64)
	// providerresponseDescFeaturedSnippetPotential is the schema descriptor for featured_snippet_potential field.
	providerresponseDescFeaturedSnippetPotential := providerresponseFields[23].Descriptor()
	// providerresponse.DefaultFeaturedSnippetPotential holds the default value on creation for the featured_snippet_potential field.
	providerresponse.DefaultFeaturedSnippetPotential = providerresponseDescFeaturedSnippetPotential.Default.(float64)
	// providerresponseDescVoiceSearchOptimized is the schema descriptor for voice_search_optimized field.
	providerresponseDescVoiceSearchOptimized := providerresponseFields[24].Descriptor()
	// providerresponse.DefaultVoiceSearchOptimized holds the default value on creation for the voice_search_optimized field.
	providerresponse.DefaultVoiceSearchOptimized = providerresponseDescVoiceSearchOptimized.Default.(bool)
	// providerresponseDescGeoScore is the schema descriptor for geo_score field.
	providerresponseDescGeoScore := providerresponseFields[25].Descriptor()
	// providerresponse.DefaultGeoScore holds the default value on creation for the geo_score field.
	providerresponse.DefaultGeoScore = providerresponseDescGeoScore.Default.(float64)
	// providerresponseDescSovScore is the schema descriptor for sov_score field.
	providerresponseDescSovScore := providerresponseFields[26].Descriptor()
	// providerresponse.DefaultSovScore holds the default value on creation for the sov_score field.
	providerresponse.DefaultSovScore = providerresponseDescSovScore.Default.(float64)
	// providerresponseDescContextCompleteness is the schema descriptor for context_completeness field.
	providerresponseDescContextCompleteness := providerresponseFields[27].Descriptor()
	// providerresponse.DefaultContextCompleteness holds the default value on creation for the context_completeness field.
	providerresponse.DefaultContextCompleteness = providerresponseDescContextCompleteness.Default.(float64)
	// providerresponseDescContextQuality is the schema descriptor for context_quality field.
	providerresponseDescContextQuality := providerresponseFields[29].Descriptor()
	// providerresponse.DefaultContextQuality holds the default value on creation for the context_quality field.
	providerresponse.DefaultContextQuality = providerresponseDescContextQuality.Default.(float64)
	// providerresponseDescBatchNumber is the schema descriptor for batch_number field.
	providerresponseDescBatchNumber := providerresponseFields[34].Descriptor()
	// providerresponse.DefaultBatchNumber holds the default value on creation for the batch_number field.
	providerresponse.DefaultBatchNumber = providerresponseDescBatchNumber.Default.(int)
	// providerresponseDescBatchPosition is the schema descriptor for batch_position field.
	providerresponseDescBatchPosition := providerresponseFields[35].Descriptor()
	// providerresponse.DefaultBatchPosition holds the default value on creation for the batch_position field.
	providerresponse.DefaultBatchPosition = providerresponseDescBatchPosition.Default.(int)
	rankingsnapshotFields := schema.RankingSnapshot{}.Fields()
	_ = rankingsnapshotFields
	// rankingsnapshotDescTakenAt is the schema descriptor for taken_at field.
	rankingsnapshotDescTakenAt := rankingsnapshotFields[2].Descriptor()
	// rankingsnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	rankingsnapshot.DefaultTakenAt = rankingsnapshotDescTakenAt.Default.(func() time.Time)
	strategicpriorityFields := schema.StrategicPriority{}.Fields()
	_ = strategicpriorityFields
	// strategicpriorityDescImpactScore is the schema descriptor for impact_score field.
	strategicpriorityDescImpactScore := strategicpriorityFields[5].Descriptor()
	// strategicpriority.DefaultImpactScore holds the default value on creation for the impact_score field.
	strategicpriority.DefaultImpactScore = strategicpriorityDescImpactScore.Default.(float64)
	// strategicpriorityDescSupportCount is the schema descriptor for support_count field.
	strategicpriorityDescSupportCount := strategicpriorityFields[6].Descriptor()
	// strategicpriority.DefaultSupportCount holds the default value on creation for the support_count field.
	strategicpriority.DefaultSupportCount = strategicpriorityDescSupportCount.Default.(int)
	// strategicpriorityDescCreatedAt is the schema descriptor for created_at field.
	strategicpriorityDescCreatedAt := strategicpriorityFields[8].Descriptor()
	// strategicpriority.DefaultCreatedAt holds the default value on creation for the created_at field.
	strategicpriority.DefaultCreatedAt = strategicpriorityDescCreatedAt.Default.(func() time.Time)
}
