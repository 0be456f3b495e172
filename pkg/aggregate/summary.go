package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/provider"
)

// DefaultTopRecommendations is how many L2 titles the summary carries.
const DefaultTopRecommendations = 5

// Weights maps each category to its share of the overall score. Only
// categories present in the L1 layer contribute; weights are normalized
// over the present set.
type Weights map[models.Category]float64

// UniformWeights gives every category equal weight.
func UniformWeights() Weights {
	w := make(Weights, len(models.Categories()))
	for _, cat := range models.Categories() {
		w[cat] = 1
	}
	return w
}

// Summary is the L3 layer: one row per audit.
type Summary struct {
	OverallScore       float64  `json:"overall_score"` // [0, 100]
	Narrative          string   `json:"narrative"`
	TopRecommendations []string `json:"top_recommendations"`
	Risks              []string `json:"risks"`
}

// SummaryInput is what a Summarizer sees when writing the narrative.
type SummaryInput struct {
	BrandName    string
	OverallScore float64
	Aggregates   []CategoryAggregate
	Priorities   []Priority
}

// Summarizer writes the executive narrative. Implementations may call an
// LLM; errors fall back to the deterministic narrative.
type Summarizer interface {
	Summarize(ctx context.Context, in SummaryInput) (string, error)
}

// SummaryOption configures BuildSummary.
type SummaryOption func(*summaryOptions)

type summaryOptions struct {
	weights    Weights
	summarizer Summarizer
	topK       int
}

// WithWeights overrides the uniform category weights.
func WithWeights(w Weights) SummaryOption {
	return func(o *summaryOptions) { o.weights = w }
}

// WithSummarizer installs a narrative writer.
func WithSummarizer(s Summarizer) SummaryOption {
	return func(o *summaryOptions) { o.summarizer = s }
}

// WithTopRecommendations overrides how many L2 titles are carried.
func WithTopRecommendations(k int) SummaryOption {
	return func(o *summaryOptions) {
		if k > 0 {
			o.topK = k
		}
	}
}

// BuildSummary computes the L3 layer: the weighted overall score, the
// narrative, the first K priorities, and the detected risks. A failing
// summarizer degrades to the deterministic narrative, never to an error.
func BuildSummary(ctx context.Context, brand string, aggregates []CategoryAggregate, priorities []Priority, opts ...SummaryOption) Summary {
	o := summaryOptions{weights: UniformWeights(), topK: DefaultTopRecommendations}
	for _, opt := range opts {
		opt(&o)
	}

	s := Summary{
		OverallScore:       overallScore(aggregates, o.weights),
		TopRecommendations: []string{},
		Risks:              detectRisks(aggregates),
	}
	for _, p := range priorities {
		s.TopRecommendations = append(s.TopRecommendations, p.Title)
		if len(s.TopRecommendations) == o.topK {
			break
		}
	}

	in := SummaryInput{
		BrandName:    brand,
		OverallScore: s.OverallScore,
		Aggregates:   aggregates,
		Priorities:   priorities,
	}
	if o.summarizer != nil {
		narrative, err := o.summarizer.Summarize(ctx, in)
		if err == nil && strings.TrimSpace(narrative) != "" {
			s.Narrative = strings.TrimSpace(narrative)
			return s
		}
		if err != nil {
			slog.Warn("summarizer failed, using deterministic narrative", "error", err)
		}
	}
	s.Narrative = deterministicNarrative(in)
	return s
}

// overallScore is the weighted mean of the present categories' composite
// scores.
func overallScore(aggregates []CategoryAggregate, weights Weights) float64 {
	var weighted, total float64
	for _, agg := range aggregates {
		w := weights[agg.Category]
		if w <= 0 {
			continue
		}
		weighted += agg.Score() * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return round2(weighted / total)
}

// detectRisks flags categories with weak presence or negative sentiment.
func detectRisks(aggregates []CategoryAggregate) []string {
	risks := []string{}
	for _, agg := range aggregates {
		if agg.ResponseCount == 0 {
			continue
		}
		if agg.MentionRate < 0.3 {
			risks = append(risks, fmt.Sprintf(
				"Brand appears in only %.0f%% of %s responses",
				agg.MentionRate*100, agg.Category))
		}
		if agg.AvgSentiment < 0 {
			risks = append(risks, fmt.Sprintf(
				"Net sentiment in %s responses is negative (%.2f)",
				agg.Category, agg.AvgSentiment))
		}
	}
	return risks
}

// deterministicNarrative is the fallback narrative: strongest and weakest
// categories plus the lead priority, in fixed phrasing.
func deterministicNarrative(in SummaryInput) string {
	if len(in.Aggregates) == 0 {
		return fmt.Sprintf("No scored responses were available for %s in this audit.", in.BrandName)
	}

	ranked := append([]CategoryAggregate(nil), in.Aggregates...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score() != ranked[j].Score() {
			return ranked[i].Score() > ranked[j].Score()
		}
		return ranked[i].Category < ranked[j].Category
	})
	strongest, weakest := ranked[0], ranked[len(ranked)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s scores %.0f/100 for AI visibility across %d categories.",
		in.BrandName, in.OverallScore, len(in.Aggregates))
	fmt.Fprintf(&b, " Strongest presence: %s (%.0f); weakest: %s (%.0f).",
		strongest.Category, strongest.Score(), weakest.Category, weakest.Score())
	if len(in.Priorities) > 0 {
		fmt.Fprintf(&b, " Lead priority: %s.", strings.TrimRight(in.Priorities[0].Title, "."))
	}
	return b.String()
}

// LLMSummarizer writes the narrative through the provider gateway.
type LLMSummarizer struct {
	Gateway   *gateway.Gateway
	AuditID   string
	Providers []string // priority order; empty means gateway default
	Model     string
	MaxTokens int
}

// Summarize prompts the first healthy provider with the audit's key
// figures.
func (s *LLMSummarizer) Summarize(ctx context.Context, in SummaryInput) (string, error) {
	maxTokens := s.MaxTokens
	if maxTokens == 0 {
		maxTokens = 400
	}

	resp, err := s.Gateway.Search(ctx, gateway.SearchOptions{
		AuditID:   s.AuditID,
		Providers: s.Providers,
	}, provider.Request{
		SystemPrompt: "You write concise executive summaries of brand visibility audits. Respond with a single paragraph, no preamble.",
		Prompt:       summarizerPrompt(in),
		Model:        s.Model,
		Temperature:  0.2,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize via gateway: %w", err)
	}
	return resp.Text, nil
}

func summarizerPrompt(in SummaryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand: %s\nOverall AI visibility score: %.0f/100\n\nCategory scores:\n",
		in.BrandName, in.OverallScore)
	for _, agg := range in.Aggregates {
		fmt.Fprintf(&b, "- %s: %.0f/100, mention rate %.0f%%, sentiment %.2f\n",
			agg.Category, agg.Score(), agg.MentionRate*100, agg.AvgSentiment)
	}
	b.WriteString("\nTop priorities:\n")
	for i, p := range in.Priorities {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Title)
	}
	b.WriteString("\nWrite the executive summary paragraph.")
	return b.String()
}
