// Package analyzer derives per-response visibility metrics from LLM
// response text: brand mentions, sentiment, competitor analysis, buyer
// journey classification, and the GEO/SOV/completeness scores. The
// extraction is rule-backed and deterministic; the contract is the
// ResponseMetrics schema, not the method.
package analyzer

import (
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brandlens/brandlens/pkg/models"
)

// Analyzer extracts metrics for one company profile. Safe for concurrent
// use; all state is fixed at construction.
type Analyzer struct {
	profile    models.CompanyProfile
	brandTerms []string // lowercased: name, domain, aliases
	domain     string   // lowercased bare domain, "" when unset
	log        *slog.Logger
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the extraction timestamp source for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New builds an analyzer for profile.
func New(profile models.CompanyProfile, opts ...Option) *Analyzer {
	a := &Analyzer{
		profile: profile,
		log:     slog.With("component", "analyzer", "brand", profile.Name),
		now:     time.Now,
	}

	seen := make(map[string]bool)
	for _, term := range append([]string{profile.Name, profile.Domain}, profile.Aliases...) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		a.brandTerms = append(a.brandTerms, term)
	}

	a.domain = strings.ToLower(strings.TrimSpace(profile.Domain))

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Input is one response to analyze.
type Input struct {
	ResponseText  string
	QueryText     string
	Category      models.Category // the query's category, used as fallback
	BatchID       string
	BatchNumber   int
	BatchPosition int
}

// Analyze derives the full metrics set for one response. It never fails:
// empty or degenerate text produces zeroed metrics with ExtractedAt set.
func (a *Analyzer) Analyze(in Input) models.ResponseMetrics {
	text := in.ResponseText
	lower := strings.ToLower(text)

	m := models.ResponseMetrics{
		MentionPosition:      -1,
		CompetitorAnalysis:   []models.CompetitorMention{},
		BuyerJourneyCategory: a.classifyJourney(in.QueryText, in.Category),
		ExtractedAt:          a.now().UTC(),
		BatchID:              in.BatchID,
		BatchNumber:          in.BatchNumber,
		BatchPosition:        in.BatchPosition,
		QueryText:            in.QueryText,
	}

	m.MentionCount, m.MentionPosition = a.countBrandMentions(lower)
	m.BrandMentioned = m.MentionCount > 0
	if m.BrandMentioned {
		if total := utf8.RuneCountInString(text); total > 0 {
			m.FirstPositionPercentage = round2(float64(m.MentionPosition) / float64(total) * 100)
		}
		m.MentionContext = sentenceAt(text, m.MentionPosition)
	}

	m.Sentiment = sentimentOf(lower)
	m.RecommendationStrength = a.recommendationStrength(lower)
	m.CompetitorAnalysis = a.analyzeCompetitors(text, lower)
	m.FeaturesMentioned = matchTerms(lower, featureLexicon)
	m.ValueProps = matchTerms(lower, valuePropLexicon)
	m.FeaturedSnippetPotential = snippetPotential(text)
	m.VoiceSearchOptimized = voiceOptimized(in.QueryText, text)

	m.GeoScore = geoScore(m)
	m.SovScore = sovScore(m)
	m.ContextCompleteness = contextCompleteness(m)
	m.ContextQuality = round2(m.ContextCompleteness*0.4 + (m.Sentiment+1)/2*100*0.3 + m.RecommendationStrength*100*0.3)

	m.AdditionalMetrics = map[string]any{
		"response_chars": utf8.RuneCountInString(text),
		"word_count":     len(strings.Fields(text)),
		"brand_terms":    len(a.brandTerms),
	}
	return m
}

// countBrandMentions counts non-overlapping occurrences of any brand term
// and returns the earliest rune index, -1 when absent. A bare-domain hit
// preceded by a subdomain label (docs.example.com) only counts when the
// profile opts into subdomains.
func (a *Analyzer) countBrandMentions(lower string) (count, first int) {
	first = -1
	for _, term := range a.brandTerms {
		for idx := 0; ; {
			found := strings.Index(lower[idx:], term)
			if found < 0 {
				break
			}
			abs := idx + found
			idx = abs + len(term)

			if term == a.domain && !a.profile.IncludeSubdomains && abs > 0 && lower[abs-1] == '.' {
				continue
			}

			count++
			runePos := utf8.RuneCountInString(lower[:abs])
			if first < 0 || runePos < first {
				first = runePos
			}
		}
	}
	return count, first
}

// analyzeCompetitors emits one entry per configured competitor, always as
// a list (see CoerceCompetitorAnalysis for the legacy map shape).
func (a *Analyzer) analyzeCompetitors(text, lower string) []models.CompetitorMention {
	out := make([]models.CompetitorMention, 0, len(a.profile.Competitors))
	for _, comp := range a.profile.Competitors {
		needle := strings.ToLower(strings.TrimSpace(comp))
		entry := models.CompetitorMention{Competitor: comp, Position: -1}
		if needle != "" {
			if idx := strings.Index(lower, needle); idx >= 0 {
				entry.Mentioned = true
				entry.Position = utf8.RuneCountInString(lower[:idx])
				entry.Context = sentenceAt(text, entry.Position)
			}
		}
		out = append(out, entry)
	}
	return out
}

// recommendationStrength scores recommendation language near brand terms
// on [0, 1].
func (a *Analyzer) recommendationStrength(lower string) float64 {
	if !containsAny(lower, a.brandTerms) {
		return 0
	}

	score := 0.0
	for phrase, weight := range recommendationPhrases {
		if strings.Contains(lower, phrase) {
			score += weight
		}
	}
	return math.Min(1, round2(score))
}

// geoScore estimates generative-engine visibility on [0, 100]: mention
// presence, early placement, density, and recommendation language.
func geoScore(m models.ResponseMetrics) float64 {
	if !m.BrandMentioned {
		return 0
	}

	score := 40.0

	// Earlier first mention is worth up to 25 points.
	score += (100 - math.Min(100, m.FirstPositionPercentage)) * 0.25

	// Mention density: saturates at 5 mentions.
	score += math.Min(5, float64(m.MentionCount)) * 3

	score += m.RecommendationStrength * 20
	return math.Min(100, round2(score))
}

// sovScore is the brand's share of voice against competitors on [0, 100].
func sovScore(m models.ResponseMetrics) float64 {
	competitorMentions := 0
	for _, c := range m.CompetitorAnalysis {
		if c.Mentioned {
			competitorMentions++
		}
	}

	total := m.MentionCount + competitorMentions
	if total == 0 {
		return 0
	}
	return round2(float64(m.MentionCount) / float64(total) * 100)
}

// contextCompleteness scores how substantively the brand is discussed on
// [0, 100]: mention context plus concrete features and value props.
func contextCompleteness(m models.ResponseMetrics) float64 {
	score := 0.0
	if m.BrandMentioned {
		score += 25
	}
	if len(m.MentionContext) >= 40 {
		score += 15
	}
	score += math.Min(4, float64(len(m.FeaturesMentioned))) * 10
	score += math.Min(2, float64(len(m.ValueProps))) * 10
	return math.Min(100, round2(score))
}

// classifyJourney maps a query onto the fixed buyer-journey set, falling
// back to the generator's category when no rule matches.
func (a *Analyzer) classifyJourney(queryText string, fallback models.Category) models.Category {
	q := strings.ToLower(queryText)

	switch {
	case containsAny(q, []string{" vs ", " versus ", "compare", "alternative"}):
		return models.CategoryComparison
	case containsAny(q, []string{"review", "pricing", "worth it", "pros and cons"}):
		return models.CategoryEvaluation
	case containsAny(q, []string{"setup", "set up", "tutorial", "cancel", "upgrade", "migrate from"}):
		return models.CategoryPostPurchase
	case containsAny(q, a.brandTerms):
		return models.CategoryBrandSpecific
	case containsAny(q, []string{"best ", "top ", "tools for", "software for", "solution"}):
		return models.CategorySolutionSeeking
	case containsAny(q, []string{"why ", "what is", "how do i", "problem"}):
		return models.CategoryProblemUnaware
	}

	if fallback != "" {
		return fallback
	}
	return models.CategorySolutionSeeking
}

// snippetPotential estimates featured-snippet suitability on [0, 1]:
// concise lead, list structure, and moderate length.
func snippetPotential(text string) float64 {
	score := 0.0

	sentences := splitSentences(text)
	if len(sentences) > 0 && len(strings.Fields(sentences[0])) <= 30 {
		score += 0.4
	}
	if strings.Contains(text, "\n- ") || strings.Contains(text, "\n1.") || strings.Contains(text, "\n* ") {
		score += 0.4
	}
	if words := len(strings.Fields(text)); words >= 40 && words <= 300 {
		score += 0.2
	}
	return round2(score)
}

// voiceOptimized reports whether the response reads as a direct spoken
// answer to a question-form query.
func voiceOptimized(queryText, text string) bool {
	q := strings.ToLower(queryText)
	if !containsAny(q, []string{"what", "how", "why", "when", "which", "who"}) {
		return false
	}
	sentences := splitSentences(text)
	return len(sentences) > 0 && len(strings.Fields(sentences[0])) <= 25
}

// sentenceAt returns the sentence containing the given rune position.
func sentenceAt(text string, runePos int) string {
	pos := 0
	for _, s := range splitSentences(text) {
		pos += utf8.RuneCountInString(s) + 1
		if runePos < pos {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

var sentenceSplit = regexp.MustCompile(`[.!?\n]+`)

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchTerms(lower string, lexicon []string) []string {
	var out []string
	for _, term := range lexicon {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
