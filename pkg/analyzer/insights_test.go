package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func scored(id string, m models.ResponseMetrics) ScoredResponse {
	return ScoredResponse{ResponseID: id, Metrics: m}
}

func TestExtractBatchInsightsAllCellsPresent(t *testing.T) {
	a := New(testProfile())

	set := a.ExtractBatchInsights(models.CategoryComparison, 2, []ScoredResponse{
		scored("r1", models.ResponseMetrics{BrandMentioned: true, GeoScore: 80}),
	})

	assert.Equal(t, models.CategoryComparison, set.Category)
	assert.Equal(t, 2, set.BatchNumber)
	require.Len(t, set.Insights, 3)
	for _, typ := range models.ExtractionTypes() {
		cell, ok := set.Insights[typ]
		require.True(t, ok, "missing cell %s", typ)
		assert.NotNil(t, cell)
	}
	assert.Equal(t, []string{"r1"}, set.ResponseIDs)
}

func TestRecommendationInsightsFlagAbsence(t *testing.T) {
	a := New(testProfile())

	set := a.ExtractBatchInsights(models.CategoryEvaluation, 1, []ScoredResponse{
		scored("r1", models.ResponseMetrics{BrandMentioned: true, GeoScore: 70}),
		scored("r2", models.ResponseMetrics{BrandMentioned: false}),
		scored("r3", models.ResponseMetrics{BrandMentioned: false}),
	})

	recs := set.Insights[models.ExtractionRecommendations]
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "absent from 2 of 3 responses")
}

func TestCompetitiveGapInsights(t *testing.T) {
	a := New(testProfile())

	mentioned := []models.CompetitorMention{{Competitor: "HubSpot", Mentioned: true}}
	set := a.ExtractBatchInsights(models.CategorySolutionSeeking, 1, []ScoredResponse{
		scored("r1", models.ResponseMetrics{BrandMentioned: false, CompetitorAnalysis: mentioned}),
		scored("r2", models.ResponseMetrics{BrandMentioned: true, CompetitorAnalysis: mentioned}),
	})

	gaps := set.Insights[models.ExtractionCompetitiveGaps]
	require.Len(t, gaps, 1)
	assert.Contains(t, gaps[0], "HubSpot appears in 1 of 2 responses where Acme CRM is absent")
}

func TestContentOpportunityInsights(t *testing.T) {
	a := New(testProfile())

	set := a.ExtractBatchInsights(models.CategoryProblemUnaware, 3, []ScoredResponse{
		scored("r1", models.ResponseMetrics{
			BrandMentioned:    false,
			FeaturesMentioned: []string{"automation"},
			ValueProps:        []string{"free trial"},
		}),
		// Brand-present responses do not feed opportunity extraction.
		scored("r2", models.ResponseMetrics{
			BrandMentioned:    true,
			FeaturesMentioned: []string{"reporting"},
		}),
	})

	opps := set.Insights[models.ExtractionContentOpportunities]
	require.Len(t, opps, 2)
	assert.Contains(t, opps[0], `"automation"`)
	assert.Contains(t, opps[1], `"free trial"`)
}

func TestInsightsCappedPerCell(t *testing.T) {
	a := New(testProfile())

	var responses []ScoredResponse
	for i := 0; i < 30; i++ {
		responses = append(responses, scored(
			fmt.Sprintf("r%02d", i),
			models.ResponseMetrics{
				BrandMentioned:    false,
				FeaturesMentioned: []string{fmt.Sprintf("feature-%02d", i)},
			}))
	}

	set := a.ExtractBatchInsights(models.CategoryPostPurchase, 1, responses)

	for typ, cell := range set.Insights {
		assert.LessOrEqual(t, len(cell), models.MaxInsightsPerCell, "cell %s", typ)
	}
	assert.Len(t, set.ResponseIDs, 30)
}

func TestInsightsEmptyBatch(t *testing.T) {
	set := New(testProfile()).ExtractBatchInsights(models.CategoryBrandSpecific, 1, nil)

	for _, typ := range models.ExtractionTypes() {
		assert.Empty(t, set.Insights[typ])
		assert.NotNil(t, set.Insights[typ])
	}
	assert.Empty(t, set.ResponseIDs)
}

func TestInsightsDeterministic(t *testing.T) {
	a := New(testProfile())
	responses := []ScoredResponse{
		scored("r2", models.ResponseMetrics{BrandMentioned: false,
			FeaturesMentioned: []string{"api", "automation"}}),
		scored("r1", models.ResponseMetrics{BrandMentioned: false,
			CompetitorAnalysis: []models.CompetitorMention{
				{Competitor: "Salesforce", Mentioned: true},
				{Competitor: "HubSpot", Mentioned: true},
			}}),
	}

	first := a.ExtractBatchInsights(models.CategoryComparison, 1, responses)
	second := a.ExtractBatchInsights(models.CategoryComparison, 1, responses)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"r1", "r2"}, first.ResponseIDs)
}
