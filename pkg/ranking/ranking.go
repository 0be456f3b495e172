// Package ranking analyzes SERP-style search results for a target domain:
// per-query rankings, competitor positions, SERP-feature ownership,
// AI-citation likelihood, content gaps, and opportunities. The analysis is
// a pure function of its inputs — identical queries, results, and config
// always produce identical output.
package ranking

import (
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/brandlens/brandlens/pkg/models"
)

// Config scopes one analysis run.
type Config struct {
	// TargetDomain is the domain whose visibility is being measured.
	TargetDomain string

	// Competitors are the domains compared against the target.
	Competitors []string

	// IncludeSubdomains treats *.TargetDomain (and *.competitor) results
	// as matches for the respective domain.
	IncludeSubdomains bool
}

// URLPosition is one matched URL of the target within a query's results.
type URLPosition struct {
	Position int    `json:"position"`
	URL      string `json:"url"`
}

// QueryRanking is the per-query output.
type QueryRanking struct {
	Query string           `json:"query"`
	Type  models.QueryType `json:"type,omitempty"`

	// Position is the target's best (lowest) organic position, 0 when the
	// target does not rank.
	Position   int    `json:"position"`
	URL        string `json:"url,omitempty"`
	IsHomepage bool   `json:"is_homepage"`

	// MultipleURLs lists every target URL in the results, best first.
	MultipleURLs []URLPosition `json:"multiple_urls,omitempty"`

	// CompetitorPositions maps each configured competitor to its first
	// position, 0 when absent.
	CompetitorPositions map[string]int `json:"competitor_positions"`

	Features              models.SERPFeatures `json:"features"`
	FeaturedSnippetIsOurs bool                `json:"featured_snippet_is_ours"`

	// AICitationLikelihood estimates on [0, 100] how likely a generative
	// engine is to cite the target for this query.
	AICitationLikelihood float64 `json:"ai_citation_likelihood"`
}

// Summary totals one analysis.
type Summary struct {
	TotalQueries     int     `json:"total_queries"`
	RankedQueries    int     `json:"ranked_queries"`
	HomepageRankings int     `json:"homepage_rankings"`
	AveragePosition  float64 `json:"average_position"` // over ranked queries only
	RankingRate      float64 `json:"ranking_rate"`     // percent of queries ranked
}

// TypeStats groups ranking performance by query type.
type TypeStats struct {
	Queries         int     `json:"queries"`
	RankedQueries   int     `json:"ranked_queries"`
	AveragePosition float64 `json:"average_position"`
	RankingRate     float64 `json:"ranking_rate"`
}

// Analysis is the full output of Analyze.
type Analysis struct {
	TargetDomain         string                          `json:"target_domain"`
	Rankings             []QueryRanking                  `json:"rankings"`
	Summary              Summary                         `json:"summary"`
	ByQueryType          map[models.QueryType]TypeStats  `json:"by_query_type"`
	ContentGaps          []ContentGap                    `json:"content_gaps"`
	LowHangingFruit      []Opportunity                   `json:"low_hanging_fruit"`
	SnippetOpportunities []FeaturedSnippetOpportunity    `json:"featured_snippet_opportunities"`
}

// Analyzer runs ranking analyses for one target/competitor set.
type Analyzer struct {
	cfg Config
}

// New builds an analyzer. Domains are normalized once up front.
func New(cfg Config) *Analyzer {
	cfg.TargetDomain = normalizeDomain(cfg.TargetDomain)
	normalized := make([]string, len(cfg.Competitors))
	for i, c := range cfg.Competitors {
		normalized[i] = normalizeDomain(c)
	}
	cfg.Competitors = normalized
	return &Analyzer{cfg: cfg}
}

// Analyze computes the full ranking analysis. results maps query text to
// its SERP; queries without results produce an unranked entry. Rankings
// are emitted in query order.
func (a *Analyzer) Analyze(queries []models.GeneratedQuery, results map[string]models.SearchResults) *Analysis {
	analysis := &Analysis{
		TargetDomain: a.cfg.TargetDomain,
		Rankings:     make([]QueryRanking, 0, len(queries)),
	}

	for _, q := range queries {
		serp := results[q.Query]
		analysis.Rankings = append(analysis.Rankings, a.analyzeQuery(q, serp))
	}

	analysis.Summary = summarize(analysis.Rankings)
	analysis.ByQueryType = groupByType(queries, analysis.Rankings)
	analysis.ContentGaps = a.contentGaps(queries, analysis.Rankings)
	analysis.LowHangingFruit = a.lowHangingFruit(analysis.Rankings)
	analysis.SnippetOpportunities = a.snippetOpportunities(analysis.Rankings, results)
	return analysis
}

// analyzeQuery derives the per-query ranking from one SERP.
func (a *Analyzer) analyzeQuery(q models.GeneratedQuery, serp models.SearchResults) QueryRanking {
	r := QueryRanking{
		Query:               q.Query,
		Type:                q.Type,
		Features:            serp.Features,
		CompetitorPositions: make(map[string]int, len(a.cfg.Competitors)),
	}

	for _, res := range serp.Results {
		if res.IsAd {
			continue
		}
		if a.matchesTarget(res) {
			r.MultipleURLs = append(r.MultipleURLs, URLPosition{Position: res.Position, URL: res.URL})
		}
	}

	// Lowest position wins when the target appears multiple times; every
	// match is retained in MultipleURLs.
	sort.Slice(r.MultipleURLs, func(i, j int) bool {
		return r.MultipleURLs[i].Position < r.MultipleURLs[j].Position
	})
	if len(r.MultipleURLs) > 0 {
		r.Position = r.MultipleURLs[0].Position
		r.URL = r.MultipleURLs[0].URL
		r.IsHomepage = isHomepage(r.URL)
	}

	for _, comp := range a.cfg.Competitors {
		r.CompetitorPositions[comp] = firstPosition(serp.Results, comp, a.cfg.IncludeSubdomains)
	}

	r.FeaturedSnippetIsOurs = serp.Features.HasFeaturedSnippet && r.Position == 1
	r.AICitationLikelihood = citationLikelihood(r)
	return r
}

// citationLikelihood maps a ranking to [0, 100]: decreasing in position,
// boosted by top-3 placement and featured-snippet ownership.
func citationLikelihood(r QueryRanking) float64 {
	var base float64
	switch {
	case r.Position == 0:
		base = 5
	case r.Position <= 3:
		base = 70 - float64(r.Position-1)*10
	case r.Position <= 10:
		base = 40 - float64(r.Position-4)*3
	case r.Position <= 20:
		base = 15
	default:
		base = 8
	}

	if r.Position >= 1 && r.Position <= 3 {
		base += 10
	}
	if r.FeaturedSnippetIsOurs {
		base += 15
	}
	return math.Min(100, math.Max(0, base))
}

func summarize(rankings []QueryRanking) Summary {
	s := Summary{TotalQueries: len(rankings)}

	positionSum := 0
	for _, r := range rankings {
		if r.Position == 0 {
			continue
		}
		s.RankedQueries++
		positionSum += r.Position
		if r.IsHomepage {
			s.HomepageRankings++
		}
	}
	if s.RankedQueries > 0 {
		s.AveragePosition = round2(float64(positionSum) / float64(s.RankedQueries))
	}
	if s.TotalQueries > 0 {
		s.RankingRate = round2(float64(s.RankedQueries) / float64(s.TotalQueries) * 100)
	}
	return s
}

func groupByType(queries []models.GeneratedQuery, rankings []QueryRanking) map[models.QueryType]TypeStats {
	out := make(map[models.QueryType]TypeStats)
	sums := make(map[models.QueryType]int)

	for i, q := range queries {
		stats := out[q.Type]
		stats.Queries++
		if rankings[i].Position > 0 {
			stats.RankedQueries++
			sums[q.Type] += rankings[i].Position
		}
		out[q.Type] = stats
	}

	for typ, stats := range out {
		if stats.RankedQueries > 0 {
			stats.AveragePosition = round2(float64(sums[typ]) / float64(stats.RankedQueries))
		}
		stats.RankingRate = round2(float64(stats.RankedQueries) / float64(stats.Queries) * 100)
		out[typ] = stats
	}
	return out
}

// ── domain matching ──

func (a *Analyzer) matchesTarget(res models.SearchResult) bool {
	return matchesDomain(resultDomain(res), a.cfg.TargetDomain, a.cfg.IncludeSubdomains)
}

// firstPosition returns the first organic position of domain, 0 when absent.
func firstPosition(results []models.SearchResult, domain string, subdomains bool) int {
	for _, res := range results {
		if res.IsAd {
			continue
		}
		if matchesDomain(resultDomain(res), domain, subdomains) {
			return res.Position
		}
	}
	return 0
}

// resultDomain prefers the explicit domain field, falling back to the URL
// host.
func resultDomain(res models.SearchResult) string {
	if res.Domain != "" {
		return normalizeDomain(res.Domain)
	}
	u, err := url.Parse(res.URL)
	if err != nil {
		return ""
	}
	return normalizeDomain(u.Hostname())
}

func matchesDomain(domain, target string, subdomains bool) bool {
	if domain == "" || target == "" {
		return false
	}
	if domain == target {
		return true
	}
	return subdomains && strings.HasSuffix(domain, "."+target)
}

// normalizeDomain lowercases and strips the www prefix so example.com and
// www.example.com compare equal.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(domain, "www.")
}

// isHomepage reports whether u points at the domain root.
func isHomepage(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return (parsed.Path == "" || parsed.Path == "/") && parsed.RawQuery == ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
