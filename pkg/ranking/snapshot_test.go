package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWith(positions map[string]int) Snapshot {
	s := Snapshot{ID: "snap-1", TargetDomain: "example.com", TakenAt: time.Now()}
	for q, pos := range positions {
		s.Rankings = append(s.Rankings, QueryRanking{Query: q, Position: pos})
	}
	return s
}

func rankingsWith(positions map[string]int) []QueryRanking {
	out := make([]QueryRanking, 0, len(positions))
	for q, pos := range positions {
		out = append(out, QueryRanking{Query: q, Position: pos})
	}
	return out
}

func changeFor(t *testing.T, cmp Comparison, query string) Change {
	t.Helper()
	for _, c := range cmp.Changes {
		if c.Query == query {
			return c
		}
	}
	t.Fatalf("no change recorded for %q", query)
	return Change{}
}

func TestCompareMovements(t *testing.T) {
	old := snapshotWith(map[string]int{
		"improved": 8,
		"declined": 3,
		"stable":   5,
	})
	cmp := Compare(old, rankingsWith(map[string]int{
		"improved": 6,
		"declined": 10,
		"stable":   5,
	}))

	assert.Equal(t, ComparisonSummary{Improved: 1, Declined: 1, Stable: 1}, cmp.Summary)

	up := changeFor(t, cmp, "improved")
	assert.Equal(t, -2, up.Change) // negative = improvement
	assert.Equal(t, ImpactLow, up.Impact)

	down := changeFor(t, cmp, "declined")
	assert.Equal(t, 7, down.Change)
	assert.Equal(t, ImpactHigh, down.Impact)

	flat := changeFor(t, cmp, "stable")
	assert.Equal(t, 0, flat.Change)
}

func TestCompareImpactBands(t *testing.T) {
	assert.Equal(t, ImpactLow, impactOf(-2))
	assert.Equal(t, ImpactMedium, impactOf(4))
	assert.Equal(t, ImpactMedium, impactOf(-5))
	assert.Equal(t, ImpactHigh, impactOf(6))
}

func TestCompareEnterAndLeave(t *testing.T) {
	old := snapshotWith(map[string]int{"leaving": 4})
	cmp := Compare(old, rankingsWith(map[string]int{"entering": 9}))

	require.Len(t, cmp.Changes, 2)
	assert.Equal(t, 1, cmp.Summary.Improved)
	assert.Equal(t, 1, cmp.Summary.Declined)

	entered := changeFor(t, cmp, "entering")
	assert.Equal(t, 0, entered.OldPosition)
	assert.Equal(t, 9, entered.NewPosition)
	assert.Equal(t, ImpactHigh, entered.Impact)

	left := changeFor(t, cmp, "leaving")
	assert.Equal(t, 4, left.OldPosition)
	assert.Equal(t, 0, left.NewPosition)
	assert.Equal(t, ImpactHigh, left.Impact)
}

func TestCompareUnrankedBothSidesIsStable(t *testing.T) {
	old := snapshotWith(map[string]int{"q": 0})
	cmp := Compare(old, rankingsWith(map[string]int{"q": 0}))

	assert.Equal(t, 1, cmp.Summary.Stable)
}
