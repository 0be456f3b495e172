package aggregate

import (
	"fmt"
	"sort"

	"github.com/brandlens/brandlens/pkg/models"
)

// L2 always emits between MinPriorities and MaxPriorities rows.
const (
	MinPriorities = 9
	MaxPriorities = 15
)

// Impact is the qualitative estimate attached to a strategic priority.
type Impact string

// Impact levels.
const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Priority is one L2 row: a ranked, evidence-backed strategic action.
type Priority struct {
	Rank            int      `json:"rank"` // 1-based
	Title           string   `json:"title"`
	Rationale       string   `json:"rationale"`
	EvidenceRefs    []string `json:"evidence_refs"`
	ImpactScore     float64  `json:"impact_score"`
	SupportCount    int      `json:"support_count"`
	EstimatedImpact Impact   `json:"estimated_impact"`
}

// BuildPriorities synthesizes the L2 layer from L1 rows and the raw batch
// insights. Candidates come from category recommendations, competitive
// gaps, and content opportunities, deduplicated by normalized title and
// ordered by impact_score desc, support_count desc, title asc. Baseline
// priorities pad the list to MinPriorities; it never exceeds
// MaxPriorities.
func BuildPriorities(aggregates []CategoryAggregate, insights []models.BatchInsightSet) []Priority {
	byCategory := make(map[models.Category]CategoryAggregate, len(aggregates))
	for _, agg := range aggregates {
		byCategory[agg.Category] = agg
	}

	type candidate struct {
		Priority
		key string
	}
	var candidates []*candidate
	byKey := make(map[string]*candidate)

	sorted := append([]models.BatchInsightSet(nil), insights...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].BatchNumber < sorted[j].BatchNumber
	})

	for _, set := range sorted {
		severity := severityOf(byCategory[set.Category])
		ref := fmt.Sprintf("category/%s/batch/%d", set.Category, set.BatchNumber)

		for _, typ := range models.ExtractionTypes() {
			for _, text := range set.Insights[typ] {
				key := normalizeText(text)
				if key == "" {
					continue
				}
				c := byKey[key]
				if c == nil {
					c = &candidate{key: key, Priority: Priority{
						Title: text,
						Rationale: fmt.Sprintf("Surfaced by %s extraction in %s queries",
							typ, set.Category),
					}}
					byKey[key] = c
					candidates = append(candidates, c)
				}
				c.SupportCount++
				c.ImpactScore = round2(c.ImpactScore + severity)
				c.EvidenceRefs = appendUnique(c.EvidenceRefs, ref)
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		if a.SupportCount != b.SupportCount {
			return a.SupportCount > b.SupportCount
		}
		return a.Title < b.Title
	})

	out := make([]Priority, 0, MaxPriorities)
	for _, c := range candidates {
		out = append(out, c.Priority)
		if len(out) == MaxPriorities {
			break
		}
	}
	out = padPriorities(out, aggregates)

	for i := range out {
		out[i].Rank = i + 1
		out[i].EstimatedImpact = impactOf(out[i].ImpactScore)
		if out[i].EvidenceRefs == nil {
			out[i].EvidenceRefs = []string{}
		}
	}
	return out
}

// severityOf weights a category's insights by how far it is from full
// visibility: a weak category makes its insights more urgent.
func severityOf(agg CategoryAggregate) float64 {
	if agg.ResponseCount == 0 {
		return 5 // no data is itself a mid-grade problem
	}
	return round2((100 - agg.Score()) / 10)
}

// padPriorities appends deterministic per-category baselines until the
// list reaches MinPriorities.
func padPriorities(out []Priority, aggregates []CategoryAggregate) []Priority {
	if len(out) >= MinPriorities {
		return out
	}

	have := make(map[string]bool, len(out))
	for _, p := range out {
		have[normalizeText(p.Title)] = true
	}

	baselines := baselinePriorities(aggregates)
	for _, p := range baselines {
		if len(out) >= MinPriorities {
			break
		}
		if have[normalizeText(p.Title)] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// baselinePriorities is the fixed fallback set: one visibility priority
// per category in canonical order, then generic program actions. Its size
// guarantees padding can always reach MinPriorities.
func baselinePriorities(aggregates []CategoryAggregate) []Priority {
	byCategory := make(map[models.Category]CategoryAggregate, len(aggregates))
	for _, agg := range aggregates {
		byCategory[agg.Category] = agg
	}

	var out []Priority
	for _, cat := range models.Categories() {
		agg := byCategory[cat]
		out = append(out, Priority{
			Title: fmt.Sprintf("Grow generative share of voice in %s queries", cat),
			Rationale: fmt.Sprintf(
				"Category visibility score %.0f/100 across %d responses",
				agg.Score(), agg.ResponseCount),
			EvidenceRefs: []string{fmt.Sprintf("category/%s", cat)},
			ImpactScore:  severityOf(agg),
			SupportCount: agg.ResponseCount,
		})
	}

	for _, title := range []string{
		"Establish a recurring visibility audit cadence",
		"Publish structured FAQ content for snippet capture",
		"Monitor competitor generative mentions monthly",
	} {
		out = append(out, Priority{
			Title:        title,
			Rationale:    "Program baseline",
			EvidenceRefs: []string{},
			ImpactScore:  1,
		})
	}
	return out
}

func impactOf(score float64) Impact {
	switch {
	case score >= 12:
		return ImpactHigh
	case score >= 6:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func appendUnique(refs []string, ref string) []string {
	for _, r := range refs {
		if r == ref {
			return refs
		}
	}
	return append(refs, ref)
}
