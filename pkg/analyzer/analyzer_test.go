package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func testProfile() models.CompanyProfile {
	return models.CompanyProfile{
		Name:        "Acme CRM",
		Domain:      "acme.io",
		Competitors: []string{"Salesforce", "HubSpot"},
		Aliases:     []string{"AcmeHQ"},
	}
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestAnalyzeBrandMentioned(t *testing.T) {
	a := New(testProfile(), WithClock(fixedClock()))

	m := a.Analyze(Input{
		ResponseText: "Acme CRM is an excellent choice for small teams. " +
			"It offers automation and reporting, and many users highly recommend Acme CRM.",
		QueryText: "best CRM for small teams",
	})

	assert.True(t, m.BrandMentioned)
	assert.Equal(t, 2, m.MentionCount)
	assert.Equal(t, 0, m.MentionPosition)
	assert.Equal(t, 0.0, m.FirstPositionPercentage)
	assert.Contains(t, m.MentionContext, "excellent choice")
	assert.Greater(t, m.Sentiment, 0.0)
	assert.Greater(t, m.RecommendationStrength, 0.0)
	assert.Contains(t, m.FeaturesMentioned, "automation")
	assert.Greater(t, m.GeoScore, 50.0)
	assert.Equal(t, fixedClock()(), m.ExtractedAt)
}

func TestAnalyzeBrandAbsent(t *testing.T) {
	a := New(testProfile())

	m := a.Analyze(Input{
		ResponseText: "Salesforce and HubSpot dominate this market.",
		QueryText:    "top CRM platforms",
	})

	assert.False(t, m.BrandMentioned)
	assert.Equal(t, 0, m.MentionCount)
	assert.Equal(t, -1, m.MentionPosition)
	assert.Empty(t, m.MentionContext)
	assert.Equal(t, 0.0, m.GeoScore)
	assert.Equal(t, 0.0, m.RecommendationStrength)
	assert.Equal(t, 0.0, m.SovScore)
}

func TestAnalyzeEmptyText(t *testing.T) {
	m := New(testProfile()).Analyze(Input{QueryText: "anything"})

	assert.False(t, m.BrandMentioned)
	assert.Equal(t, -1, m.MentionPosition)
	assert.NotNil(t, m.CompetitorAnalysis)
	assert.False(t, m.ExtractedAt.IsZero())
}

func TestAliasCountsAsMention(t *testing.T) {
	m := New(testProfile()).Analyze(Input{
		ResponseText: "Follow AcmeHQ for product updates.",
	})

	assert.True(t, m.BrandMentioned)
	assert.Equal(t, 1, m.MentionCount)
}

func TestSubdomainMentionGatedByProfile(t *testing.T) {
	text := "See docs.acme.io for setup instructions."

	strict := New(testProfile()).Analyze(Input{ResponseText: text})
	assert.False(t, strict.BrandMentioned)

	profile := testProfile()
	profile.IncludeSubdomains = true
	loose := New(profile).Analyze(Input{ResponseText: text})
	assert.True(t, loose.BrandMentioned)
}

func TestSentimentBounds(t *testing.T) {
	a := New(testProfile())

	positive := a.Analyze(Input{ResponseText: "Acme CRM is excellent, reliable, and powerful."})
	assert.Greater(t, positive.Sentiment, 0.0)
	assert.LessOrEqual(t, positive.Sentiment, 1.0)

	negative := a.Analyze(Input{ResponseText: "Acme CRM is slow, buggy, and expensive."})
	assert.Less(t, negative.Sentiment, 0.0)
	assert.GreaterOrEqual(t, negative.Sentiment, -1.0)

	balanced := a.Analyze(Input{ResponseText: "Acme CRM is excellent but expensive."})
	assert.Equal(t, 0.0, balanced.Sentiment)

	neutral := a.Analyze(Input{ResponseText: "Acme CRM stores customer records."})
	assert.Equal(t, 0.0, neutral.Sentiment)
}

func TestCompetitorAnalysisAlwaysList(t *testing.T) {
	a := New(testProfile())

	m := a.Analyze(Input{ResponseText: "HubSpot is a popular alternative."})

	require.Len(t, m.CompetitorAnalysis, 2)
	assert.Equal(t, "Salesforce", m.CompetitorAnalysis[0].Competitor)
	assert.False(t, m.CompetitorAnalysis[0].Mentioned)
	assert.Equal(t, -1, m.CompetitorAnalysis[0].Position)

	hubspot := m.CompetitorAnalysis[1]
	assert.True(t, hubspot.Mentioned)
	assert.Equal(t, 0, hubspot.Position)
	assert.Contains(t, hubspot.Context, "popular alternative")
}

func TestSovScore(t *testing.T) {
	a := New(testProfile())

	m := a.Analyze(Input{ResponseText: "Acme CRM competes with Salesforce and HubSpot."})
	// 1 brand mention vs 2 competitor mentions.
	assert.InDelta(t, 33.33, m.SovScore, 0.01)

	solo := a.Analyze(Input{ResponseText: "Acme CRM leads this space. Acme CRM again."})
	assert.Equal(t, 100.0, solo.SovScore)
}

func TestBuyerJourneyClassification(t *testing.T) {
	a := New(testProfile())

	cases := map[string]models.Category{
		"acme crm vs salesforce":              models.CategoryComparison,
		"acme crm pricing":                    models.CategoryEvaluation,
		"how to set up a sales pipeline":      models.CategoryPostPurchase,
		"acme crm login":                      models.CategoryBrandSpecific,
		"best crm tools for startups":         models.CategorySolutionSeeking,
		"why do deals stall in my pipeline":   models.CategoryProblemUnaware,
	}
	for queryText, want := range cases {
		m := a.Analyze(Input{QueryText: queryText})
		assert.Equal(t, want, m.BuyerJourneyCategory, "query %q", queryText)
	}
}

func TestBuyerJourneyFallsBackToQueryCategory(t *testing.T) {
	m := New(testProfile()).Analyze(Input{
		QueryText: "crm market share 2026",
		Category:  models.CategoryEvaluation,
	})
	assert.Equal(t, models.CategoryEvaluation, m.BuyerJourneyCategory)
}

func TestBatchContextCarriedThrough(t *testing.T) {
	m := New(testProfile()).Analyze(Input{
		ResponseText:  "Acme CRM.",
		QueryText:     "q",
		BatchID:       "batch-2",
		BatchNumber:   2,
		BatchPosition: 5,
	})

	assert.Equal(t, "batch-2", m.BatchID)
	assert.Equal(t, 2, m.BatchNumber)
	assert.Equal(t, 5, m.BatchPosition)
	assert.Equal(t, "q", m.QueryText)
}

func TestScoresStayInRange(t *testing.T) {
	a := New(testProfile())
	texts := []string{
		"",
		"Acme CRM Acme CRM Acme CRM Acme CRM Acme CRM Acme CRM highly recommend best choice top pick",
		"Salesforce only.",
	}
	for _, text := range texts {
		m := a.Analyze(Input{ResponseText: text, QueryText: "what is a crm"})
		assert.GreaterOrEqual(t, m.GeoScore, 0.0)
		assert.LessOrEqual(t, m.GeoScore, 100.0)
		assert.GreaterOrEqual(t, m.SovScore, 0.0)
		assert.LessOrEqual(t, m.SovScore, 100.0)
		assert.GreaterOrEqual(t, m.ContextCompleteness, 0.0)
		assert.LessOrEqual(t, m.ContextCompleteness, 100.0)
		assert.GreaterOrEqual(t, m.RecommendationStrength, 0.0)
		assert.LessOrEqual(t, m.RecommendationStrength, 1.0)
		assert.GreaterOrEqual(t, m.FeaturedSnippetPotential, 0.0)
		assert.LessOrEqual(t, m.FeaturedSnippetPotential, 1.0)
	}
}
