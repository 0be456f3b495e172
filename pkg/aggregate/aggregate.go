// Package aggregate builds the layered report from per-response metrics:
// category aggregates (L1), strategic priorities (L2), and the executive
// summary (L3). All layers are pure computations; persistence and
// idempotency live in the storage layer.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/brandlens/brandlens/pkg/models"
)

const (
	maxTopThemes               = 5
	maxPriorityRecommendations = 3
)

// CategoryAggregate is one L1 row: the rollup of every scored response in
// a buyer-journey category.
type CategoryAggregate struct {
	Category                models.Category `json:"category"`
	ResponseCount           int             `json:"response_count"`
	AvgGeoScore             float64         `json:"avg_geo_score"`
	AvgSovScore             float64         `json:"avg_sov_score"`
	AvgSentiment            float64         `json:"avg_sentiment"`
	AvgContextCompleteness  float64         `json:"avg_context_completeness"`
	MentionRate             float64         `json:"mention_rate"` // [0, 1]
	TopThemes               []string        `json:"top_themes"`
	PriorityRecommendations []string        `json:"priority_recommendations"` // at most 3
	CompetitiveSummary      string          `json:"competitive_summary"`
}

// Score is the category's composite visibility score on [0, 100], the
// input to the L3 weighted mean.
func (c CategoryAggregate) Score() float64 {
	return round2(0.5*c.AvgGeoScore + 0.3*c.AvgSovScore + 0.2*c.AvgContextCompleteness)
}

// CategoryInput is everything the analyze phase produced for one category.
type CategoryInput struct {
	Category  models.Category
	Responses []models.ResponseMetrics
	Insights  []models.BatchInsightSet // this category's batches only
}

// BuildCategoryAggregate computes one L1 row. A category with no responses
// yields a zeroed row so downstream layers see the full category set.
func BuildCategoryAggregate(in CategoryInput) CategoryAggregate {
	agg := CategoryAggregate{
		Category:                in.Category,
		ResponseCount:           len(in.Responses),
		TopThemes:               []string{},
		PriorityRecommendations: []string{},
	}
	if len(in.Responses) == 0 {
		return agg
	}

	mentioned := 0
	for _, m := range in.Responses {
		agg.AvgGeoScore += m.GeoScore
		agg.AvgSovScore += m.SovScore
		agg.AvgSentiment += m.Sentiment
		agg.AvgContextCompleteness += m.ContextCompleteness
		if m.BrandMentioned {
			mentioned++
		}
	}
	n := float64(len(in.Responses))
	agg.AvgGeoScore = round2(agg.AvgGeoScore / n)
	agg.AvgSovScore = round2(agg.AvgSovScore / n)
	agg.AvgSentiment = round2(agg.AvgSentiment / n)
	agg.AvgContextCompleteness = round2(agg.AvgContextCompleteness / n)
	agg.MentionRate = round2(float64(mentioned) / n)

	agg.TopThemes = topThemes(in.Responses)
	agg.PriorityRecommendations = rankRecommendations(in.Responses, in.Insights)
	agg.CompetitiveSummary = competitiveSummary(in.Responses, mentioned)
	return agg
}

// BuildL1 computes the full L1 layer in canonical category order.
func BuildL1(inputs []CategoryInput) []CategoryAggregate {
	byCategory := make(map[models.Category]CategoryInput, len(inputs))
	for _, in := range inputs {
		byCategory[in.Category] = in
	}

	var out []CategoryAggregate
	for _, cat := range models.Categories() {
		in, ok := byCategory[cat]
		if !ok {
			continue
		}
		out = append(out, BuildCategoryAggregate(in))
	}
	return out
}

// topThemes ranks features and value props by frequency across the
// category's responses, ties broken alphabetically.
func topThemes(responses []models.ResponseMetrics) []string {
	counts := make(map[string]int)
	for _, m := range responses {
		for _, f := range m.FeaturesMentioned {
			counts[f]++
		}
		for _, p := range m.ValueProps {
			counts[p]++
		}
	}

	themes := make([]string, 0, len(counts))
	for t := range counts {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool {
		if counts[themes[i]] != counts[themes[j]] {
			return counts[themes[i]] > counts[themes[j]]
		}
		return themes[i] < themes[j]
	})

	if len(themes) > maxTopThemes {
		themes = themes[:maxTopThemes]
	}
	return themes
}

// recommendation is one deduplicated insight with its batch support.
type recommendation struct {
	text    string // first-seen original casing
	support int    // distinct batches containing it
	score   float64
}

// rankRecommendations deduplicates recommendation insights by normalized
// text across the category's batches and ranks them by
// support_count x avg_score, where avg_score is the mean geo score of the
// supporting batches.
func rankRecommendations(responses []models.ResponseMetrics, insights []models.BatchInsightSet) []string {
	batchGeo := batchGeoAverages(responses)

	byText := make(map[string]*recommendation)
	var order []string

	sorted := append([]models.BatchInsightSet(nil), insights...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BatchNumber < sorted[j].BatchNumber })

	type support struct {
		batches map[int]bool
		geoSum  float64
	}
	supports := make(map[string]*support)

	for _, set := range sorted {
		for _, text := range set.Insights[models.ExtractionRecommendations] {
			key := normalizeText(text)
			if key == "" {
				continue
			}
			if byText[key] == nil {
				byText[key] = &recommendation{text: text}
				supports[key] = &support{batches: make(map[int]bool)}
				order = append(order, key)
			}
			s := supports[key]
			if !s.batches[set.BatchNumber] {
				s.batches[set.BatchNumber] = true
				s.geoSum += batchGeo[set.BatchNumber]
			}
		}
	}

	for key, rec := range byText {
		s := supports[key]
		rec.support = len(s.batches)
		avg := 0.0
		if rec.support > 0 {
			avg = s.geoSum / float64(rec.support)
		}
		rec.score = round2(float64(rec.support) * avg)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := byText[order[i]], byText[order[j]]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.support != b.support {
			return a.support > b.support
		}
		return order[i] < order[j]
	})

	out := make([]string, 0, maxPriorityRecommendations)
	for _, key := range order {
		out = append(out, byText[key].text)
		if len(out) == maxPriorityRecommendations {
			break
		}
	}
	return out
}

// batchGeoAverages computes the mean geo score per batch number.
func batchGeoAverages(responses []models.ResponseMetrics) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, m := range responses {
		sums[m.BatchNumber] += m.GeoScore
		counts[m.BatchNumber]++
	}

	out := make(map[int]float64, len(sums))
	for batch, sum := range sums {
		out[batch] = sum / float64(counts[batch])
	}
	return out
}

// competitiveSummary renders a one-line competitor picture for the
// category.
func competitiveSummary(responses []models.ResponseMetrics, brandMentioned int) string {
	counts := make(map[string]int)
	for _, m := range responses {
		for _, c := range m.CompetitorAnalysis {
			if c.Mentioned {
				counts[c.Competitor]++
			}
		}
	}
	if len(counts) == 0 {
		return "No competitor activity detected in this category."
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	leader := names[0]
	return fmt.Sprintf(
		"%s leads competitor visibility (mentioned in %d of %d responses); brand mentioned in %d.",
		leader, counts[leader], len(responses), brandMentioned)
}

// normalizeText is the dedup key for insight text: lowercased, collapsed
// whitespace, trailing punctuation stripped.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ".!")
	return strings.Join(strings.Fields(s), " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
