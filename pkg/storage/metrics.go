package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/analyzer"
	"github.com/brandlens/brandlens/pkg/models"
)

// MetricsRecord pairs a response with its extracted metrics. When
// ExtractionError is set the row records the failure instead of metrics.
type MetricsRecord struct {
	ResponseID      string
	Metrics         models.ResponseMetrics
	ExtractionError string
}

// MetricsResult is the per-batch accounting of StoreResponseMetrics.
type MetricsResult struct {
	SuccessCount int
	ErrorCount   int
}

// StoreResponseMetrics writes each metrics row in its own transaction,
// with one UPDATE covering every metrics column. An update matching no
// row is a missing-parent error; it is counted and logged, never aborts
// the batch. More than one matched row would mean a broken primary key
// and aborts the phase.
func (s *Store) StoreResponseMetrics(ctx context.Context, auditID string, records []MetricsRecord) (MetricsResult, error) {
	var result MetricsResult

	for _, rec := range records {
		n, err := s.updateMetricsRow(ctx, auditID, rec)
		if err != nil {
			s.log.Error("Failed to store response metrics",
				"audit_id", auditID, "response_id", rec.ResponseID, "error", err)
			result.ErrorCount++
			continue
		}
		switch n {
		case 1:
			result.SuccessCount++
		case 0:
			s.log.Error("Metrics update matched no response row",
				"audit_id", auditID, "response_id", rec.ResponseID, "error", ErrMissingParent)
			result.ErrorCount++
		default:
			return result, fmt.Errorf("metrics update for response %s matched %d rows", rec.ResponseID, n)
		}
	}

	return result, nil
}

// updateMetricsRow issues the single UPDATE for one response.
func (s *Store) updateMetricsRow(ctx context.Context, auditID string, rec MetricsRecord) (int, error) {
	update := s.client.ProviderResponse.Update().
		Where(
			providerresponse.ID(rec.ResponseID),
			providerresponse.AuditID(auditID),
		)

	if rec.ExtractionError != "" {
		update.SetExtractionError(rec.ExtractionError)
		return update.Save(ctx)
	}

	m := rec.Metrics
	extractedAt := m.ExtractedAt
	if extractedAt.IsZero() {
		extractedAt = time.Now()
	}

	update.
		SetBrandMentioned(m.BrandMentioned).
		SetMentionCount(m.MentionCount).
		SetMentionPosition(m.MentionPosition).
		SetFirstPositionPercentage(m.FirstPositionPercentage).
		SetMentionContext(m.MentionContext).
		SetSentiment(m.Sentiment).
		SetRecommendationStrength(m.RecommendationStrength).
		SetCompetitorAnalysis(competitorRows(m.CompetitorAnalysis)).
		SetFeaturesMentioned(emptyIfNil(m.FeaturesMentioned)).
		SetValueProps(emptyIfNil(m.ValueProps)).
		SetFeaturedSnippetPotential(m.FeaturedSnippetPotential).
		SetVoiceSearchOptimized(m.VoiceSearchOptimized).
		SetGeoScore(m.GeoScore).
		SetSovScore(m.SovScore).
		SetContextCompleteness(m.ContextCompleteness).
		SetContextQuality(m.ContextQuality).
		SetMetricsExtractedAt(extractedAt).
		SetBatchNumber(m.BatchNumber).
		SetBatchPosition(m.BatchPosition).
		ClearExtractionError()

	if m.BuyerJourneyCategory != "" {
		update.SetBuyerJourneyCategory(providerresponse.BuyerJourneyCategory(m.BuyerJourneyCategory))
	} else {
		update.ClearBuyerJourneyCategory()
	}
	if m.AdditionalMetrics != nil {
		update.SetAdditionalMetrics(m.AdditionalMetrics)
	} else {
		update.ClearAdditionalMetrics()
	}
	if m.BatchID != "" {
		update.SetBatchID(m.BatchID)
	}
	if m.QueryText != "" {
		update.SetQueryText(m.QueryText)
	}

	return update.Save(ctx)
}

// MetricsOf reconstructs the typed metrics set from a stored response row,
// the inverse of updateMetricsRow. Used when a phase re-runs after a
// restart and the in-memory metrics are gone.
func MetricsOf(row *ent.ProviderResponse) models.ResponseMetrics {
	m := models.ResponseMetrics{
		BrandMentioned:           row.BrandMentioned,
		MentionCount:             row.MentionCount,
		MentionPosition:          row.MentionPosition,
		FirstPositionPercentage:  row.FirstPositionPercentage,
		MentionContext:           row.MentionContext,
		Sentiment:                row.Sentiment,
		RecommendationStrength:   row.RecommendationStrength,
		CompetitorAnalysis:       competitorMentions(row.CompetitorAnalysis),
		FeaturesMentioned:        row.FeaturesMentioned,
		ValueProps:               row.ValueProps,
		FeaturedSnippetPotential: row.FeaturedSnippetPotential,
		VoiceSearchOptimized:     row.VoiceSearchOptimized,
		GeoScore:                 row.GeoScore,
		SovScore:                 row.SovScore,
		ContextCompleteness:      row.ContextCompleteness,
		BuyerJourneyCategory:     models.Category(row.BuyerJourneyCategory),
		ContextQuality:           row.ContextQuality,
		AdditionalMetrics:        row.AdditionalMetrics,
		BatchID:                  row.BatchID,
		BatchNumber:              row.BatchNumber,
		BatchPosition:            row.BatchPosition,
		QueryText:                row.QueryText,
	}
	if row.MetricsExtractedAt != nil {
		m.ExtractedAt = *row.MetricsExtractedAt
	}
	return m
}

// competitorMentions converts the JSON column shape back to the typed
// list through the shared shape coercion, so stored legacy rows decode
// the same way fresh extractions do.
func competitorMentions(rows []map[string]any) []models.CompetitorMention {
	raw := make([]any, len(rows))
	for i, row := range rows {
		raw[i] = row
	}
	return analyzer.CoerceCompetitorAnalysis(raw, nil)
}

// competitorRows converts the typed competitor list to the JSON column
// shape. The column is always a list, never a map.
func competitorRows(mentions []models.CompetitorMention) []map[string]any {
	out := make([]map[string]any, 0, len(mentions))
	for _, m := range mentions {
		row := map[string]any{
			"competitor": m.Competitor,
			"mentioned":  m.Mentioned,
			"position":   m.Position,
		}
		if m.Context != "" {
			row["context"] = m.Context
		}
		out = append(out, row)
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
