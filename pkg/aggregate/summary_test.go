package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

type stubSummarizer struct {
	narrative string
	err       error
	calls     int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ SummaryInput) (string, error) {
	s.calls++
	return s.narrative, s.err
}

func summaryAggregates() []CategoryAggregate {
	return []CategoryAggregate{
		{Category: models.CategoryComparison, ResponseCount: 8, AvgGeoScore: 80, AvgSovScore: 60, AvgContextCompleteness: 70, MentionRate: 0.9},
		{Category: models.CategoryEvaluation, ResponseCount: 8, AvgGeoScore: 40, AvgSovScore: 20, AvgContextCompleteness: 30, MentionRate: 0.5},
	}
}

func TestOverallScoreUniformWeights(t *testing.T) {
	s := BuildSummary(context.Background(), "Acme", summaryAggregates(), nil)

	// Comparison: 0.5*80+0.3*60+0.2*70 = 72; evaluation: 0.5*40+0.3*20+0.2*30 = 32.
	assert.Equal(t, 52.0, s.OverallScore)
}

func TestOverallScoreCustomWeights(t *testing.T) {
	s := BuildSummary(context.Background(), "Acme", summaryAggregates(), nil,
		WithWeights(Weights{
			models.CategoryComparison: 3,
			models.CategoryEvaluation: 1,
		}))

	// (72*3 + 32*1) / 4 = 62.
	assert.Equal(t, 62.0, s.OverallScore)
}

func TestOverallScoreEmpty(t *testing.T) {
	s := BuildSummary(context.Background(), "Acme", nil, nil)
	assert.Equal(t, 0.0, s.OverallScore)
	assert.Contains(t, s.Narrative, "No scored responses")
}

func TestTopRecommendationsAreFirstKPriorities(t *testing.T) {
	priorities := []Priority{
		{Rank: 1, Title: "First"},
		{Rank: 2, Title: "Second"},
		{Rank: 3, Title: "Third"},
	}

	s := BuildSummary(context.Background(), "Acme", summaryAggregates(), priorities,
		WithTopRecommendations(2))

	assert.Equal(t, []string{"First", "Second"}, s.TopRecommendations)
}

func TestSummarizerNarrativeUsed(t *testing.T) {
	stub := &stubSummarizer{narrative: "  Acme is doing fine.  "}

	s := BuildSummary(context.Background(), "Acme", summaryAggregates(), nil,
		WithSummarizer(stub))

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Acme is doing fine.", s.Narrative)
}

func TestSummarizerFailureFallsBack(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("provider down")}

	s := BuildSummary(context.Background(), "Acme", summaryAggregates(),
		[]Priority{{Rank: 1, Title: "Lead the market"}},
		WithSummarizer(stub))

	require.NotEmpty(t, s.Narrative)
	assert.Contains(t, s.Narrative, "Acme scores 52/100")
	assert.Contains(t, s.Narrative, "Lead the market")
}

func TestDeterministicNarrativeNamesExtremes(t *testing.T) {
	s := BuildSummary(context.Background(), "Acme", summaryAggregates(), nil)

	assert.Contains(t, s.Narrative, "comparison")
	assert.Contains(t, s.Narrative, "evaluation")
}

func TestRiskDetection(t *testing.T) {
	aggs := []CategoryAggregate{
		{Category: models.CategoryProblemUnaware, ResponseCount: 8, MentionRate: 0.1},
		{Category: models.CategoryComparison, ResponseCount: 8, MentionRate: 0.8, AvgSentiment: -0.4},
		{Category: models.CategoryEvaluation}, // no data: not a risk row
	}

	s := BuildSummary(context.Background(), "Acme", aggs, nil)

	require.Len(t, s.Risks, 2)
	assert.Contains(t, s.Risks[0], "only 10% of problem_unaware")
	assert.Contains(t, s.Risks[1], "sentiment in comparison")
}
