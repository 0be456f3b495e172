package analyzer

import (
	"log/slog"
	"sort"

	"github.com/brandlens/brandlens/pkg/models"
)

// CoerceCompetitorAnalysis normalizes decoded competitor-analysis JSON into
// the canonical list shape. Older stored rows (and some provider-side
// classifiers) emitted a map keyed by competitor name; those are converted
// with a structured warning, never a failure. Unrecognized shapes yield an
// empty list.
func CoerceCompetitorAnalysis(raw any, log *slog.Logger) []models.CompetitorMention {
	if log == nil {
		log = slog.Default()
	}

	switch v := raw.(type) {
	case nil:
		return []models.CompetitorMention{}

	case []models.CompetitorMention:
		if v == nil {
			return []models.CompetitorMention{}
		}
		return v

	case []any:
		out := make([]models.CompetitorMention, 0, len(v))
		for _, item := range v {
			if entry, ok := item.(map[string]any); ok {
				out = append(out, mentionFromMap(entryName(entry), entry))
			}
		}
		return out

	case map[string]any:
		// Legacy map shape: {"competitor1.com": {...}} or {"x": true}.
		log.Warn("coercing legacy map-shaped competitor analysis",
			"competitors", len(v))

		out := make([]models.CompetitorMention, 0, len(v))
		for name, val := range v {
			switch inner := val.(type) {
			case bool:
				out = append(out, models.CompetitorMention{
					Competitor: name, Mentioned: inner, Position: -1,
				})
			case map[string]any:
				out = append(out, mentionFromMap(name, inner))
			default:
				out = append(out, models.CompetitorMention{Competitor: name, Position: -1})
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Competitor < out[j].Competitor })
		return out

	default:
		log.Warn("discarding competitor analysis of unknown shape")
		return []models.CompetitorMention{}
	}
}

func entryName(m map[string]any) string {
	for _, key := range []string{"competitor", "name"} {
		if s, ok := m[key].(string); ok {
			return s
		}
	}
	return ""
}

func mentionFromMap(name string, m map[string]any) models.CompetitorMention {
	entry := models.CompetitorMention{Competitor: name, Position: -1}
	if b, ok := m["mentioned"].(bool); ok {
		entry.Mentioned = b
	}
	switch p := m["position"].(type) {
	case float64:
		entry.Position = int(p)
	case int:
		entry.Position = p
	}
	if s, ok := m["context"].(string); ok {
		entry.Context = s
	}
	return entry
}
