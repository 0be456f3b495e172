package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/brandlens/brandlens/ent/auditquery"
	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/models"
)

// VerifyStatus is the outcome of post-analyze verification.
type VerifyStatus string

// Verification outcomes. failed aborts the audit; partial completes it
// with a persisted warning.
const (
	VerifyComplete VerifyStatus = "complete"
	VerifyPartial  VerifyStatus = "partial"
	VerifyFailed   VerifyStatus = "failed"
)

// VerifyReport lists everything the analyze phase should have produced
// but did not.
type VerifyReport struct {
	Status  VerifyStatus
	Missing []string
}

// VerifyPhase checks that every response has metrics_extracted_at set and
// that every expected (category, batch, extraction_type) insight cell
// exists. No responses at all, or metrics missing for half or more of
// them, is failed; anything else missing is partial.
func (s *Store) VerifyPhase(ctx context.Context, auditID string) (VerifyReport, error) {
	queries, err := s.client.AuditQuery.Query().
		Where(auditquery.AuditID(auditID)).
		Select(auditquery.FieldID, auditquery.FieldCategory).
		All(ctx)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("failed to load queries: %w", err)
	}
	categoryOf := make(map[string]models.Category, len(queries))
	for _, q := range queries {
		categoryOf[q.ID] = models.Category(q.Category)
	}

	responses, err := s.client.ProviderResponse.Query().
		Where(providerresponse.AuditID(auditID)).
		Select(
			providerresponse.FieldID,
			providerresponse.FieldQueryID,
			providerresponse.FieldBatchNumber,
			providerresponse.FieldMetricsExtractedAt,
		).
		All(ctx)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("failed to load responses: %w", err)
	}

	if len(responses) == 0 {
		return VerifyReport{Status: VerifyFailed, Missing: []string{"responses"}}, nil
	}

	var missing []string
	missingMetrics := 0
	type cell struct {
		category models.Category
		batch    int
	}
	expectedCells := make(map[cell]bool)

	for _, r := range responses {
		if r.MetricsExtractedAt == nil {
			missingMetrics++
			missing = append(missing, fmt.Sprintf("response/%s/metrics", r.ID))
		}
		if cat, ok := categoryOf[r.QueryID]; ok {
			expectedCells[cell{category: cat, batch: r.BatchNumber}] = true
		}
	}

	insightRows, err := s.client.BatchInsight.Query().
		Where(batchinsight.AuditID(auditID)).
		Select(
			batchinsight.FieldCategory,
			batchinsight.FieldBatchNumber,
			batchinsight.FieldExtractionType,
		).
		All(ctx)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("failed to load insight cells: %w", err)
	}

	haveCell := make(map[string]bool, len(insightRows))
	for _, row := range insightRows {
		haveCell[cellKey(models.Category(row.Category), row.BatchNumber, models.ExtractionType(row.ExtractionType))] = true
	}

	for c := range expectedCells {
		for _, typ := range models.ExtractionTypes() {
			key := cellKey(c.category, c.batch, typ)
			if !haveCell[key] {
				missing = append(missing, "insight/"+key)
			}
		}
	}
	sort.Strings(missing)

	report := VerifyReport{Missing: missing}
	switch {
	case missingMetrics*2 >= len(responses):
		report.Status = VerifyFailed
	case len(missing) > 0:
		report.Status = VerifyPartial
	default:
		report.Status = VerifyComplete
	}
	return report, nil
}

func cellKey(category models.Category, batch int, typ models.ExtractionType) string {
	return fmt.Sprintf("%s/batch/%d/%s", category, batch, typ)
}
