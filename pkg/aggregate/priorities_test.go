package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func weakAggregate(cat models.Category) CategoryAggregate {
	return CategoryAggregate{Category: cat, ResponseCount: 8, AvgGeoScore: 20}
}

func TestBuildPrioritiesCardinality(t *testing.T) {
	// No insights at all: baselines must still reach the minimum.
	out := BuildPriorities(nil, nil)
	assert.GreaterOrEqual(t, len(out), MinPriorities)
	assert.LessOrEqual(t, len(out), MaxPriorities)

	// A flood of distinct insights must be capped at the maximum.
	var insights []models.BatchInsightSet
	for batch := 1; batch <= 4; batch++ {
		var recs []string
		for i := 0; i < 8; i++ {
			recs = append(recs, fmt.Sprintf("Unique action %d-%d", batch, i))
		}
		insights = append(insights, insightSet(models.CategoryComparison, batch, recs...))
	}
	out = BuildPriorities([]CategoryAggregate{weakAggregate(models.CategoryComparison)}, insights)
	assert.Len(t, out, MaxPriorities)
}

func TestBuildPrioritiesRanksAreSequential(t *testing.T) {
	out := BuildPriorities([]CategoryAggregate{weakAggregate(models.CategoryEvaluation)}, []models.BatchInsightSet{
		insightSet(models.CategoryEvaluation, 1, "Fix review coverage"),
	})

	for i, p := range out {
		assert.Equal(t, i+1, p.Rank)
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.EvidenceRefs)
		assert.Contains(t, []Impact{ImpactLow, ImpactMedium, ImpactHigh}, p.EstimatedImpact)
	}
}

func TestBuildPrioritiesOrdering(t *testing.T) {
	agg := weakAggregate(models.CategoryComparison)
	insights := []models.BatchInsightSet{
		insightSet(models.CategoryComparison, 1, "Repeated action", "One-off action"),
		insightSet(models.CategoryComparison, 2, "Repeated action"),
		insightSet(models.CategoryComparison, 3, "Repeated action"),
	}

	out := BuildPriorities([]CategoryAggregate{agg}, insights)

	require.NotEmpty(t, out)
	assert.Equal(t, "Repeated action", out[0].Title)
	assert.Equal(t, 3, out[0].SupportCount)
	assert.Greater(t, out[0].ImpactScore, out[1].ImpactScore)

	// Evidence refs point at the contributing batches.
	assert.Equal(t, []string{
		"category/comparison/batch/1",
		"category/comparison/batch/2",
		"category/comparison/batch/3",
	}, out[0].EvidenceRefs)
}

func TestBuildPrioritiesDeduplicatesAcrossCells(t *testing.T) {
	set := insightSet(models.CategoryComparison, 1)
	set.Insights[models.ExtractionRecommendations] = []string{"Close the gap"}
	set.Insights[models.ExtractionCompetitiveGaps] = []string{"close the gap."}

	out := BuildPriorities([]CategoryAggregate{weakAggregate(models.CategoryComparison)},
		[]models.BatchInsightSet{set})

	matches := 0
	for _, p := range out {
		if normalizeText(p.Title) == "close the gap" {
			matches++
			assert.Equal(t, 2, p.SupportCount)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestBuildPrioritiesDeterministic(t *testing.T) {
	aggs := []CategoryAggregate{
		weakAggregate(models.CategoryComparison),
		weakAggregate(models.CategoryEvaluation),
	}
	insights := []models.BatchInsightSet{
		insightSet(models.CategoryEvaluation, 2, "B action", "A action"),
		insightSet(models.CategoryComparison, 1, "C action"),
	}

	first := BuildPriorities(aggs, insights)
	second := BuildPriorities(aggs, insights)
	assert.Equal(t, first, second)
}
