package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/models"
)

func testAnalyzer() *Analyzer {
	return New(Config{
		TargetDomain: "example.com",
		Competitors:  []string{"competitor1.com", "competitor2.com", "competitor3.com"},
	})
}

func query(text string, typ models.QueryType) models.GeneratedQuery {
	return models.GeneratedQuery{Query: text, Type: typ, Priority: models.PriorityMedium}
}

func result(pos int, domain, url string) models.SearchResult {
	return models.SearchResult{Position: pos, Domain: domain, URL: url}
}

func TestAnalyzeHappyPath(t *testing.T) {
	queries := []models.GeneratedQuery{
		query("best CRM software", models.QueryTypeCommercial),
		query("example.com reviews", models.QueryTypeNavigational),
	}
	results := map[string]models.SearchResults{
		"best CRM software": {
			Query: "best CRM software",
			Results: []models.SearchResult{
				result(1, "competitor1.com", "https://competitor1.com/crm"),
				result(2, "example.com", "https://example.com/products/crm"),
				result(3, "competitor2.com", "https://competitor2.com/"),
			},
		},
		"example.com reviews": {
			Query: "example.com reviews",
			Results: []models.SearchResult{
				result(1, "reviewsite.com", "https://reviewsite.com/example"),
				result(2, "example.com", "https://example.com/"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	assert.Equal(t, 2, a.Summary.TotalQueries)
	require.Len(t, a.Rankings, 2)
	assert.Equal(t, 2.0, a.Summary.AveragePosition)
	assert.Equal(t, 1, a.Summary.HomepageRankings)

	reviews := a.Rankings[1]
	assert.Equal(t, 2, reviews.Position)
	assert.Equal(t, "https://example.com/", reviews.URL)
	assert.True(t, reviews.IsHomepage)

	crm := a.Rankings[0]
	assert.False(t, crm.IsHomepage)
	assert.Equal(t, 1, crm.CompetitorPositions["competitor1.com"])
	assert.Equal(t, 3, crm.CompetitorPositions["competitor2.com"])
	assert.Equal(t, 0, crm.CompetitorPositions["competitor3.com"])
}

func TestFeaturedSnippetOwnership(t *testing.T) {
	queries := []models.GeneratedQuery{query("what is a CRM", models.QueryTypeInformational)}
	results := map[string]models.SearchResults{
		"what is a CRM": {
			Features: models.SERPFeatures{HasFeaturedSnippet: true},
			Results: []models.SearchResult{
				result(1, "example.com", "https://example.com/guide"),
				result(2, "competitor1.com", "https://competitor1.com/what-is-crm"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	r := a.Rankings[0]
	assert.True(t, r.FeaturedSnippetIsOurs)
	assert.Greater(t, r.AICitationLikelihood, 80.0)
	assert.Empty(t, a.SnippetOpportunities)
}

func TestFeaturedSnippetOpportunity(t *testing.T) {
	queries := []models.GeneratedQuery{query("what is a CRM", models.QueryTypeInformational)}
	results := map[string]models.SearchResults{
		"what is a CRM": {
			Features: models.SERPFeatures{HasFeaturedSnippet: true},
			Results: []models.SearchResult{
				result(1, "competitor1.com", "https://competitor1.com/what-is-crm"),
				result(2, "otherblog.com", "https://otherblog.com/crm"),
				result(3, "example.com", "https://example.com/guide"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	r := a.Rankings[0]
	assert.False(t, r.FeaturedSnippetIsOurs)

	require.Len(t, a.SnippetOpportunities, 1)
	opp := a.SnippetOpportunities[0]
	assert.Equal(t, "what is a CRM", opp.Query)
	assert.Equal(t, 3, opp.Position)
	assert.Equal(t, "competitor1.com", opp.CurrentSnippetHolder)
}

func TestMultipleTargetURLsLowestPositionWins(t *testing.T) {
	queries := []models.GeneratedQuery{query("crm pricing", models.QueryTypeCommercial)}
	results := map[string]models.SearchResults{
		"crm pricing": {
			Results: []models.SearchResult{
				result(2, "example.com", "https://example.com/pricing"),
				result(7, "example.com", "https://example.com/blog/pricing-guide"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	r := a.Rankings[0]
	assert.Equal(t, 2, r.Position)
	assert.Equal(t, "https://example.com/pricing", r.URL)
	require.Len(t, r.MultipleURLs, 2)
	assert.Equal(t, 7, r.MultipleURLs[1].Position)
}

func TestSubdomainHandling(t *testing.T) {
	queries := []models.GeneratedQuery{query("crm docs", models.QueryTypeInformational)}
	results := map[string]models.SearchResults{
		"crm docs": {
			Results: []models.SearchResult{
				result(4, "docs.example.com", "https://docs.example.com/start"),
			},
		},
	}

	strict := New(Config{TargetDomain: "example.com"}).Analyze(queries, results)
	assert.Equal(t, 0, strict.Rankings[0].Position)

	loose := New(Config{TargetDomain: "example.com", IncludeSubdomains: true}).Analyze(queries, results)
	assert.Equal(t, 4, loose.Rankings[0].Position)
}

func TestAdsAreIgnored(t *testing.T) {
	queries := []models.GeneratedQuery{query("buy crm", models.QueryTypeTransactional)}
	results := map[string]models.SearchResults{
		"buy crm": {
			Results: []models.SearchResult{
				{Position: 1, Domain: "example.com", URL: "https://example.com/ad", IsAd: true},
				result(5, "example.com", "https://example.com/buy"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)
	assert.Equal(t, 5, a.Rankings[0].Position)
}

func TestContentGaps(t *testing.T) {
	queries := []models.GeneratedQuery{
		{Query: "crm for startups", Type: models.QueryTypeCommercial,
			Priority: models.PriorityHigh, MonthlySearchVolume: 2000},
		{Query: "crm integrations", Type: models.QueryTypeInformational,
			Priority: models.PriorityLow},
	}
	results := map[string]models.SearchResults{
		// Two competitors rank, target absent: a gap.
		"crm for startups": {
			Results: []models.SearchResult{
				result(1, "competitor2.com", "https://competitor2.com/startups"),
				result(3, "competitor1.com", "https://competitor1.com/startups"),
			},
		},
		// Only one competitor ranks: not a gap.
		"crm integrations": {
			Results: []models.SearchResult{
				result(2, "competitor1.com", "https://competitor1.com/integrations"),
			},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	require.Len(t, a.ContentGaps, 1)
	gap := a.ContentGaps[0]
	assert.Equal(t, "crm for startups", gap.Query)
	assert.Equal(t, 2, gap.CompetitorCount)
	assert.Equal(t, []string{"competitor2.com", "competitor1.com"}, gap.Competitors)
	// base = high(3) * (1 + 2000/1000) = 9; score = 9 * 2 competitors.
	assert.Equal(t, 18.0, gap.OpportunityScore)
}

func TestLowHangingFruit(t *testing.T) {
	queries := []models.GeneratedQuery{
		query("crm comparison", models.QueryTypeCommercial),
		query("crm features", models.QueryTypeInformational),
	}
	results := map[string]models.SearchResults{
		"crm comparison": {
			Results: []models.SearchResult{result(13, "example.com", "https://example.com/compare")},
		},
		"crm features": {
			Results: []models.SearchResult{result(3, "example.com", "https://example.com/features")},
		},
	}

	a := testAnalyzer().Analyze(queries, results)

	require.Len(t, a.LowHangingFruit, 1)
	fruit := a.LowHangingFruit[0]
	assert.Equal(t, "crm comparison", fruit.Query)
	assert.Equal(t, 13, fruit.Position)
	assert.NotEmpty(t, fruit.Recommendations)
}

func TestByQueryTypeGrouping(t *testing.T) {
	queries := []models.GeneratedQuery{
		query("q1", models.QueryTypeInformational),
		query("q2", models.QueryTypeInformational),
		query("q3", models.QueryTypeCommercial),
	}
	results := map[string]models.SearchResults{
		"q1": {Results: []models.SearchResult{result(2, "example.com", "https://example.com/a")}},
		"q2": {Results: []models.SearchResult{result(6, "example.com", "https://example.com/b")}},
		// q3: target absent.
		"q3": {Results: []models.SearchResult{result(1, "competitor1.com", "https://competitor1.com/")}},
	}

	a := testAnalyzer().Analyze(queries, results)

	info := a.ByQueryType[models.QueryTypeInformational]
	assert.Equal(t, 2, info.Queries)
	assert.Equal(t, 2, info.RankedQueries)
	assert.Equal(t, 4.0, info.AveragePosition)
	assert.Equal(t, 100.0, info.RankingRate)

	comm := a.ByQueryType[models.QueryTypeCommercial]
	assert.Equal(t, 0, comm.RankedQueries)
	assert.Equal(t, 0.0, comm.RankingRate)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	queries := []models.GeneratedQuery{
		query("best CRM software", models.QueryTypeCommercial),
		query("crm comparison", models.QueryTypeCommercial),
	}
	results := map[string]models.SearchResults{
		"best CRM software": {
			Features: models.SERPFeatures{HasFeaturedSnippet: true},
			Results: []models.SearchResult{
				result(1, "example.com", "https://example.com/"),
				result(2, "competitor1.com", "https://competitor1.com/"),
			},
		},
		"crm comparison": {
			Results: []models.SearchResult{result(12, "example.com", "https://example.com/compare")},
		},
	}

	first := testAnalyzer().Analyze(queries, results)
	second := testAnalyzer().Analyze(queries, results)
	assert.Equal(t, first, second)
}

func TestCitationLikelihoodDecreasesWithPosition(t *testing.T) {
	at := func(pos int) float64 {
		return citationLikelihood(QueryRanking{Position: pos})
	}

	assert.Greater(t, at(1), at(2))
	assert.Greater(t, at(3), at(4))
	assert.Greater(t, at(10), at(11))
	assert.Greater(t, at(20), at(25))
	assert.Greater(t, at(25), at(0))

	owned := citationLikelihood(QueryRanking{Position: 1, FeaturedSnippetIsOurs: true})
	assert.Greater(t, owned, 80.0)
	assert.LessOrEqual(t, owned, 100.0)
}

func TestWWWPrefixNormalized(t *testing.T) {
	queries := []models.GeneratedQuery{query("q", models.QueryTypeInformational)}
	results := map[string]models.SearchResults{
		"q": {Results: []models.SearchResult{result(3, "www.example.com", "https://www.example.com/")}},
	}

	a := testAnalyzer().Analyze(queries, results)
	assert.Equal(t, 3, a.Rankings[0].Position)
}
