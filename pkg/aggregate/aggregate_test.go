package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func metric(batch int, geo, sov, sentiment, completeness float64, mentioned bool) models.ResponseMetrics {
	return models.ResponseMetrics{
		BatchNumber:         batch,
		GeoScore:            geo,
		SovScore:            sov,
		Sentiment:           sentiment,
		ContextCompleteness: completeness,
		BrandMentioned:      mentioned,
	}
}

func insightSet(cat models.Category, batch int, recs ...string) models.BatchInsightSet {
	return models.BatchInsightSet{
		Category:    cat,
		BatchNumber: batch,
		Insights: map[models.ExtractionType][]string{
			models.ExtractionRecommendations:      recs,
			models.ExtractionCompetitiveGaps:      {},
			models.ExtractionContentOpportunities: {},
		},
	}
}

func TestBuildCategoryAggregateAverages(t *testing.T) {
	agg := BuildCategoryAggregate(CategoryInput{
		Category: models.CategoryComparison,
		Responses: []models.ResponseMetrics{
			metric(1, 80, 60, 0.5, 70, true),
			metric(1, 40, 20, -0.5, 30, false),
		},
	})

	assert.Equal(t, 2, agg.ResponseCount)
	assert.Equal(t, 60.0, agg.AvgGeoScore)
	assert.Equal(t, 40.0, agg.AvgSovScore)
	assert.Equal(t, 0.0, agg.AvgSentiment)
	assert.Equal(t, 50.0, agg.AvgContextCompleteness)
	assert.Equal(t, 0.5, agg.MentionRate)
	// 0.5*60 + 0.3*40 + 0.2*50 = 52.
	assert.Equal(t, 52.0, agg.Score())
}

func TestBuildCategoryAggregateEmpty(t *testing.T) {
	agg := BuildCategoryAggregate(CategoryInput{Category: models.CategoryEvaluation})

	assert.Equal(t, 0, agg.ResponseCount)
	assert.Equal(t, 0.0, agg.Score())
	assert.NotNil(t, agg.TopThemes)
	assert.NotNil(t, agg.PriorityRecommendations)
}

func TestTopThemesRankedByFrequency(t *testing.T) {
	agg := BuildCategoryAggregate(CategoryInput{
		Category: models.CategorySolutionSeeking,
		Responses: []models.ResponseMetrics{
			{FeaturesMentioned: []string{"automation", "api"}, ValueProps: []string{"scalable"}},
			{FeaturesMentioned: []string{"automation"}},
			{FeaturesMentioned: []string{"automation", "api"}},
		},
	})

	require.GreaterOrEqual(t, len(agg.TopThemes), 3)
	assert.Equal(t, "automation", agg.TopThemes[0])
	assert.Equal(t, "api", agg.TopThemes[1])
}

func TestPriorityRecommendationsDedupAndCap(t *testing.T) {
	responses := []models.ResponseMetrics{
		metric(1, 50, 0, 0, 0, true),
		metric(2, 50, 0, 0, 0, true),
		metric(3, 50, 0, 0, 0, true),
	}
	insights := []models.BatchInsightSet{
		insightSet(models.CategoryComparison, 1, "Publish comparison pages.", "Improve FAQ coverage", "Add pricing page", "Target long-tail queries"),
		// Same text modulo casing and trailing punctuation: one entry,
		// support 2.
		insightSet(models.CategoryComparison, 2, "publish comparison pages"),
		insightSet(models.CategoryComparison, 3, "Publish comparison pages."),
	}

	agg := BuildCategoryAggregate(CategoryInput{
		Category:  models.CategoryComparison,
		Responses: responses,
		Insights:  insights,
	})

	require.Len(t, agg.PriorityRecommendations, 3)
	// Three supporting batches beats every single-batch recommendation.
	assert.Equal(t, "Publish comparison pages.", agg.PriorityRecommendations[0])
}

func TestCompetitiveSummaryNamesLeader(t *testing.T) {
	agg := BuildCategoryAggregate(CategoryInput{
		Category: models.CategoryEvaluation,
		Responses: []models.ResponseMetrics{
			{BrandMentioned: true, CompetitorAnalysis: []models.CompetitorMention{
				{Competitor: "HubSpot", Mentioned: true},
				{Competitor: "Salesforce", Mentioned: true},
			}},
			{CompetitorAnalysis: []models.CompetitorMention{
				{Competitor: "HubSpot", Mentioned: true},
			}},
		},
	})

	assert.Contains(t, agg.CompetitiveSummary, "HubSpot leads competitor visibility")
	assert.Contains(t, agg.CompetitiveSummary, "2 of 2 responses")
}

func TestBuildL1CanonicalOrder(t *testing.T) {
	inputs := []CategoryInput{
		{Category: models.CategoryEvaluation, Responses: []models.ResponseMetrics{metric(1, 10, 0, 0, 0, false)}},
		{Category: models.CategoryProblemUnaware, Responses: []models.ResponseMetrics{metric(1, 20, 0, 0, 0, true)}},
	}

	out := BuildL1(inputs)

	require.Len(t, out, 2)
	assert.Equal(t, models.CategoryProblemUnaware, out[0].Category)
	assert.Equal(t, models.CategoryEvaluation, out[1].Category)
}
