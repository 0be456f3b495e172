package analyzer

import "strings"

// The lexicons below back the rule-based extraction. They are intentionally
// small and generic across SaaS verticals; per-industry tuning happens by
// extending the company profile aliases, not these lists.

var positiveLexicon = []string{
	"excellent", "great", "best", "leading", "popular", "powerful",
	"reliable", "robust", "recommended", "intuitive", "seamless",
	"trusted", "strong", "impressive", "outstanding", "top-rated",
	"easy", "affordable", "efficient", "innovative",
}

var negativeLexicon = []string{
	"poor", "bad", "worst", "weak", "limited", "lacking", "expensive",
	"difficult", "confusing", "clunky", "outdated", "unreliable",
	"slow", "buggy", "frustrating", "disappointing", "complicated",
}

var featureLexicon = []string{
	"integration", "automation", "analytics", "reporting", "api",
	"dashboard", "workflow", "pipeline", "security", "mobile app",
	"customization", "collaboration", "templates", "notifications",
	"permissions", "sso", "audit log",
}

var valuePropLexicon = []string{
	"easy to use", "user-friendly", "affordable", "cost-effective",
	"reliable", "scalable", "flexible", "free trial", "free plan",
	"24/7 support", "no-code", "all-in-one",
}

// recommendationPhrases weight explicit recommendation language. Scores
// are summed and clamped to 1.
var recommendationPhrases = map[string]float64{
	"highly recommend": 0.5,
	"recommend":        0.3,
	"best choice":      0.4,
	"top pick":         0.4,
	"top choice":       0.4,
	"go-to":            0.3,
	"ideal for":        0.25,
	"great option":     0.25,
	"excellent option": 0.3,
	"stands out":       0.25,
}

// sentimentOf scores lowered text on [-1, 1] from lexicon hit counts.
// Balanced or absent signal yields exactly 0.
func sentimentOf(lower string) float64 {
	pos := countHits(lower, positiveLexicon)
	neg := countHits(lower, negativeLexicon)
	if pos+neg == 0 {
		return 0
	}
	return round2(float64(pos-neg) / float64(pos+neg))
}

func countHits(lower string, lexicon []string) int {
	total := 0
	for _, term := range lexicon {
		total += strings.Count(lower, term)
	}
	return total
}
