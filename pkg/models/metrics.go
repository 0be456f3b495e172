package models

import "time"

// CompetitorMention is one entry of the competitor_analysis list.
// The analyzer guarantees competitor analysis is ALWAYS a list of these,
// never a map — legacy map-shaped classifier output is coerced.
type CompetitorMention struct {
	Competitor string `json:"competitor"`
	Mentioned  bool   `json:"mentioned"`
	Position   int    `json:"position,omitempty"` // first rune index, -1 when absent
	Context    string `json:"context,omitempty"`
}

// ResponseMetrics is the full per-response metrics schema written by the
// analyze phase. Every field maps to a column on the provider_responses
// table; the storage layer updates all of them in a single statement.
type ResponseMetrics struct {
	BrandMentioned          bool                `json:"brand_mentioned"`
	MentionCount            int                 `json:"mention_count"`
	MentionPosition         int                 `json:"mention_position"` // -1 when absent
	FirstPositionPercentage float64             `json:"first_position_percentage"`
	MentionContext          string              `json:"mention_context,omitempty"`
	Sentiment               float64             `json:"sentiment"` // [-1, 1]
	RecommendationStrength  float64             `json:"recommendation_strength"`
	CompetitorAnalysis      []CompetitorMention `json:"competitor_analysis"`
	FeaturesMentioned       []string            `json:"features_mentioned,omitempty"`
	ValueProps              []string            `json:"value_props,omitempty"`
	FeaturedSnippetPotential float64            `json:"featured_snippet_potential"`
	VoiceSearchOptimized    bool                `json:"voice_search_optimized"`
	GeoScore                float64             `json:"geo_score"` // [0, 100]
	SovScore                float64             `json:"sov_score"` // [0, 100]
	ContextCompleteness     float64             `json:"context_completeness"` // [0, 100]
	BuyerJourneyCategory    Category            `json:"buyer_journey_category"`
	ContextQuality          float64             `json:"context_quality"`
	AdditionalMetrics       map[string]any      `json:"additional_metrics,omitempty"`
	ExtractedAt             time.Time           `json:"metrics_extracted_at"`
	BatchID                 string              `json:"batch_id,omitempty"`
	BatchNumber             int                 `json:"batch_number"`
	BatchPosition           int                 `json:"batch_position"`
	QueryText               string              `json:"query_text,omitempty"`
}

// ExtractionType identifies one of the three batch-insight extraction
// passes run per (category, batch).
type ExtractionType string

// Extraction types. All three must exist per batch for verification to
// report complete.
const (
	ExtractionRecommendations      ExtractionType = "recommendations"
	ExtractionCompetitiveGaps      ExtractionType = "competitive_gaps"
	ExtractionContentOpportunities ExtractionType = "content_opportunities"
)

// ExtractionTypes returns the fixed extraction-type set.
func ExtractionTypes() []ExtractionType {
	return []ExtractionType{
		ExtractionRecommendations,
		ExtractionCompetitiveGaps,
		ExtractionContentOpportunities,
	}
}

// MaxInsightsPerCell caps the insights stored per
// (category, batch, extraction_type) cell.
const MaxInsightsPerCell = 10

// BatchInsightSet is the analyzer's output for one (category, batch):
// the three extraction cells plus the responses that produced them.
type BatchInsightSet struct {
	Category    Category                    `json:"category"`
	BatchNumber int                         `json:"batch_number"`
	Insights    map[ExtractionType][]string `json:"insights"`
	ResponseIDs []string                    `json:"response_ids"`
}
