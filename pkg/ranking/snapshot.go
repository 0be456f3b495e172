package ranking

import (
	"sort"
	"time"
)

// Snapshot is a persisted ranking dataset used for historical deltas.
type Snapshot struct {
	ID           string         `json:"id"`
	TargetDomain string         `json:"target_domain"`
	TakenAt      time.Time      `json:"taken_at"`
	Rankings     []QueryRanking `json:"rankings"`
}

// Impact classifies the magnitude of a position change.
type Impact string

// Impact levels by absolute position delta: 1-2 low, 3-5 medium, >5 high.
const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Change is one query's position movement between a snapshot and a newer
// analysis. Change = NewPosition - OldPosition; negative means improvement.
type Change struct {
	Query       string `json:"query"`
	OldPosition int    `json:"old_position"` // 0 = previously unranked
	NewPosition int    `json:"new_position"` // 0 = no longer ranked
	Change      int    `json:"change"`
	Impact      Impact `json:"impact"`
}

// ComparisonSummary counts movement directions.
type ComparisonSummary struct {
	Improved int `json:"improved"`
	Declined int `json:"declined"`
	Stable   int `json:"stable"`
}

// Comparison is the diff between a snapshot and new rankings.
type Comparison struct {
	Summary ComparisonSummary `json:"summary"`
	Changes []Change          `json:"changes"`
}

// Compare diffs newRankings against a prior snapshot. Queries present only
// on one side are treated as entering (old position 0) or leaving (new
// position 0); entering or leaving the rankings entirely is always
// high-impact.
func Compare(snapshot Snapshot, newRankings []QueryRanking) Comparison {
	old := make(map[string]int, len(snapshot.Rankings))
	for _, r := range snapshot.Rankings {
		old[r.Query] = r.Position
	}

	var cmp Comparison
	seen := make(map[string]bool, len(newRankings))

	for _, r := range newRankings {
		seen[r.Query] = true
		cmp.record(r.Query, old[r.Query], r.Position)
	}
	for _, r := range snapshot.Rankings {
		if !seen[r.Query] {
			cmp.record(r.Query, r.Position, 0)
		}
	}

	sort.Slice(cmp.Changes, func(i, j int) bool {
		return cmp.Changes[i].Query < cmp.Changes[j].Query
	})
	return cmp
}

func (c *Comparison) record(query string, oldPos, newPos int) {
	change := Change{Query: query, OldPosition: oldPos, NewPosition: newPos}

	switch {
	case oldPos == newPos:
		c.Summary.Stable++
		change.Impact = ImpactLow
	case oldPos == 0: // entered the rankings; delta undefined, positions tell the story
		c.Summary.Improved++
		change.Impact = ImpactHigh
	case newPos == 0: // fell out of the rankings
		c.Summary.Declined++
		change.Impact = ImpactHigh
	default:
		change.Change = newPos - oldPos
		if change.Change < 0 {
			c.Summary.Improved++
		} else {
			c.Summary.Declined++
		}
		change.Impact = impactOf(change.Change)
	}

	c.Changes = append(c.Changes, change)
}

func impactOf(delta int) Impact {
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= 2:
		return ImpactLow
	case delta <= 5:
		return ImpactMedium
	default:
		return ImpactHigh
	}
}
