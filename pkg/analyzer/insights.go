package analyzer

import (
	"fmt"
	"sort"

	"github.com/brandlens/brandlens/pkg/models"
)

// ScoredResponse pairs a stored response ID with its derived metrics, the
// input to batch-insight extraction.
type ScoredResponse struct {
	ResponseID string
	Metrics    models.ResponseMetrics
}

// ExtractBatchInsights produces the three insight cells for one
// (category, batch): recommendations, competitive gaps, and content
// opportunities, each capped at MaxInsightsPerCell. Every cell is present
// even when empty so downstream verification can count cells, not guess.
func (a *Analyzer) ExtractBatchInsights(category models.Category, batchNumber int, responses []ScoredResponse) models.BatchInsightSet {
	set := models.BatchInsightSet{
		Category:    category,
		BatchNumber: batchNumber,
		Insights: map[models.ExtractionType][]string{
			models.ExtractionRecommendations:      a.recommendationInsights(responses),
			models.ExtractionCompetitiveGaps:      a.competitiveGapInsights(responses),
			models.ExtractionContentOpportunities: a.contentOpportunityInsights(responses),
		},
	}

	for _, r := range responses {
		set.ResponseIDs = append(set.ResponseIDs, r.ResponseID)
	}
	sort.Strings(set.ResponseIDs)

	a.log.Debug("extracted batch insights",
		"category", category,
		"batch_number", batchNumber,
		"responses", len(responses))
	return set
}

// recommendationInsights derives actionable guidance from aggregate
// weaknesses across the batch.
func (a *Analyzer) recommendationInsights(responses []ScoredResponse) []string {
	if len(responses) == 0 {
		return []string{}
	}

	var (
		mentioned    int
		geoSum       float64
		sentimentSum float64
		recSum       float64
		snippetReady int
	)
	for _, r := range responses {
		if r.Metrics.BrandMentioned {
			mentioned++
		}
		geoSum += r.Metrics.GeoScore
		sentimentSum += r.Metrics.Sentiment
		recSum += r.Metrics.RecommendationStrength
		if r.Metrics.FeaturedSnippetPotential >= 0.6 {
			snippetReady++
		}
	}
	n := len(responses)
	brand := a.profile.Name

	var out []string
	if mentioned < n {
		out = append(out, fmt.Sprintf(
			"%s is absent from %d of %d responses in this batch; publish authoritative content targeting these queries",
			brand, n-mentioned, n))
	}
	if avg := geoSum / float64(n); mentioned > 0 && avg < 50 {
		out = append(out, fmt.Sprintf(
			"Average generative visibility is %.0f/100; move %s mentions earlier and increase mention depth",
			avg, brand))
	}
	if avg := sentimentSum / float64(n); mentioned > 0 && avg < 0 {
		out = append(out, fmt.Sprintf(
			"Net sentiment around %s is negative in this batch; address the recurring criticisms in public messaging",
			brand))
	}
	if avg := recSum / float64(n); mentioned > 0 && avg < 0.2 {
		out = append(out, fmt.Sprintf(
			"%s is mentioned but rarely recommended; seed comparison and best-of content with explicit endorsements",
			brand))
	}
	if snippetReady > 0 {
		out = append(out, fmt.Sprintf(
			"%d of %d responses already have snippet-ready structure; mirror that format on the corresponding pages",
			snippetReady, n))
	}
	return cap10(out)
}

// competitiveGapInsights names competitors that outperform the brand
// across the batch, most dominant first.
func (a *Analyzer) competitiveGapInsights(responses []ScoredResponse) []string {
	type stat struct {
		name          string
		mentions      int
		aloneMentions int // responses where competitor appears and brand does not
	}

	stats := make(map[string]*stat)
	brandMentions := 0
	for _, r := range responses {
		if r.Metrics.BrandMentioned {
			brandMentions++
		}
		for _, c := range r.Metrics.CompetitorAnalysis {
			if !c.Mentioned {
				continue
			}
			s := stats[c.Competitor]
			if s == nil {
				s = &stat{name: c.Competitor}
				stats[c.Competitor] = s
			}
			s.mentions++
			if !r.Metrics.BrandMentioned {
				s.aloneMentions++
			}
		}
	}

	ordered := make([]*stat, 0, len(stats))
	for _, s := range stats {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].mentions != ordered[j].mentions {
			return ordered[i].mentions > ordered[j].mentions
		}
		return ordered[i].name < ordered[j].name
	})

	n := len(responses)
	var out []string
	for _, s := range ordered {
		switch {
		case s.aloneMentions > 0:
			out = append(out, fmt.Sprintf(
				"%s appears in %d of %d responses where %s is absent",
				s.name, s.aloneMentions, n, a.profile.Name))
		case s.mentions > brandMentions:
			out = append(out, fmt.Sprintf(
				"%s is mentioned more often than %s in this batch (%d vs %d responses)",
				s.name, a.profile.Name, s.mentions, brandMentions))
		}
	}
	if out == nil {
		out = []string{}
	}
	return cap10(out)
}

// contentOpportunityInsights surfaces themes the responses discuss without
// associating them with the brand.
func (a *Analyzer) contentOpportunityInsights(responses []ScoredResponse) []string {
	// Features raised only in responses that never mention the brand are
	// topics the brand has no generative footprint on.
	orphanFeatures := make(map[string]int)
	orphanProps := make(map[string]int)
	for _, r := range responses {
		if r.Metrics.BrandMentioned {
			continue
		}
		for _, f := range r.Metrics.FeaturesMentioned {
			orphanFeatures[f]++
		}
		for _, p := range r.Metrics.ValueProps {
			orphanProps[p]++
		}
	}

	var out []string
	for _, f := range sortedKeysByCount(orphanFeatures) {
		out = append(out, fmt.Sprintf(
			"%q is discussed in %d brand-absent responses; create content positioning %s on this capability",
			f, orphanFeatures[f], a.profile.Name))
	}
	for _, p := range sortedKeysByCount(orphanProps) {
		out = append(out, fmt.Sprintf(
			"Responses emphasize %q without referencing %s; reinforce this value proposition in owned content",
			p, a.profile.Name))
	}
	if out == nil {
		out = []string{}
	}
	return cap10(out)
}

func sortedKeysByCount(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func cap10(insights []string) []string {
	if insights == nil {
		return []string{}
	}
	if len(insights) > models.MaxInsightsPerCell {
		return insights[:models.MaxInsightsPerCell]
	}
	return insights
}
