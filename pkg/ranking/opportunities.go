package ranking

import (
	"fmt"
	"sort"

	"github.com/brandlens/brandlens/pkg/models"
)

// ContentGap is a query where the target does not rank while at least two
// competitors do.
type ContentGap struct {
	Query            string   `json:"query"`
	Competitors      []string `json:"competitors"` // ranked competitors, best first
	CompetitorCount  int      `json:"competitor_count"`
	SearchVolume     int      `json:"search_volume,omitempty"`
	Priority         models.Priority `json:"priority"`
	OpportunityScore float64  `json:"opportunity_score"`
}

// Opportunity is a low-hanging-fruit query: the target ranks on page two
// (positions 11-20), where modest improvement moves it onto page one.
type Opportunity struct {
	Query           string   `json:"query"`
	Position        int      `json:"position"`
	URL             string   `json:"url"`
	Recommendations []string `json:"recommendations"`
}

// FeaturedSnippetOpportunity is a query with a featured snippet the target
// could capture: it already ranks 2-10 but the snippet belongs to someone
// else.
type FeaturedSnippetOpportunity struct {
	Query                string `json:"query"`
	Position             int    `json:"position"`
	CurrentSnippetHolder string `json:"current_snippet_holder"`
}

// contentGaps finds queries where the target is absent but competitors
// are established. Score scales with volume, priority, and how many
// competitors already rank.
func (a *Analyzer) contentGaps(queries []models.GeneratedQuery, rankings []QueryRanking) []ContentGap {
	var gaps []ContentGap

	for i, r := range rankings {
		if r.Position != 0 {
			continue
		}

		type rankedComp struct {
			domain   string
			position int
		}
		var ranked []rankedComp
		for _, comp := range a.cfg.Competitors {
			if pos := r.CompetitorPositions[comp]; pos > 0 {
				ranked = append(ranked, rankedComp{domain: comp, position: pos})
			}
		}
		if len(ranked) < 2 {
			continue
		}
		sort.Slice(ranked, func(x, y int) bool { return ranked[x].position < ranked[y].position })

		domains := make([]string, len(ranked))
		for j, rc := range ranked {
			domains[j] = rc.domain
		}

		q := queries[i]
		gaps = append(gaps, ContentGap{
			Query:            r.Query,
			Competitors:      domains,
			CompetitorCount:  len(ranked),
			SearchVolume:     q.MonthlySearchVolume,
			Priority:         q.Priority,
			OpportunityScore: round2(gapBase(q.MonthlySearchVolume, q.Priority) * float64(len(ranked))),
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].OpportunityScore != gaps[j].OpportunityScore {
			return gaps[i].OpportunityScore > gaps[j].OpportunityScore
		}
		return gaps[i].Query < gaps[j].Query
	})
	return gaps
}

// gapBase combines search volume and query priority into the per-gap base
// score, before the competitor multiplier.
func gapBase(volume int, priority models.Priority) float64 {
	weight := 1.0
	switch priority {
	case models.PriorityMedium:
		weight = 2.0
	case models.PriorityHigh:
		weight = 3.0
	}

	volumeFactor := 1.0 + float64(volume)/1000.0
	if volumeFactor > 10 {
		volumeFactor = 10
	}
	return weight * volumeFactor
}

// lowHangingFruit emits recommendations for page-two rankings.
func (a *Analyzer) lowHangingFruit(rankings []QueryRanking) []Opportunity {
	var out []Opportunity

	for _, r := range rankings {
		if r.Position < 11 || r.Position > 20 {
			continue
		}
		out = append(out, Opportunity{
			Query:    r.Query,
			Position: r.Position,
			URL:      r.URL,
			Recommendations: []string{
				fmt.Sprintf("Refresh and expand the page ranking #%d for %q", r.Position, r.Query),
				"Add internal links from high-authority pages to this URL",
				"Align the title and headings with the exact query phrasing",
			},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Query < out[j].Query
	})
	return out
}

// snippetOpportunities finds featured snippets the target could take over:
// it ranks 2-10 on a query whose snippet is held by the #1 result.
func (a *Analyzer) snippetOpportunities(rankings []QueryRanking, results map[string]models.SearchResults) []FeaturedSnippetOpportunity {
	var out []FeaturedSnippetOpportunity

	for _, r := range rankings {
		if !r.Features.HasFeaturedSnippet || r.FeaturedSnippetIsOurs {
			continue
		}
		if r.Position < 2 || r.Position > 10 {
			continue
		}

		holder := ""
		for _, res := range results[r.Query].Results {
			if !res.IsAd && res.Position == 1 {
				holder = resultDomain(res)
				break
			}
		}

		out = append(out, FeaturedSnippetOpportunity{
			Query:                r.Query,
			Position:             r.Position,
			CurrentSnippetHolder: holder,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Query < out[j].Query
	})
	return out
}
