package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brandlens/brandlens/ent/batchinsight"
	"github.com/brandlens/brandlens/pkg/models"
)

// StoreBatchInsights upserts the three extraction cells of one
// (category, batch) on the natural key. Re-running the analyze phase
// overwrites the cells in place.
func (s *Store) StoreBatchInsights(ctx context.Context, auditID string, set models.BatchInsightSet) error {
	for _, typ := range models.ExtractionTypes() {
		insights := set.Insights[typ]
		if insights == nil {
			insights = []string{}
		}

		err := s.client.BatchInsight.Create().
			SetAuditID(auditID).
			SetCategory(batchinsight.Category(set.Category)).
			SetBatchNumber(set.BatchNumber).
			SetExtractionType(batchinsight.ExtractionType(typ)).
			SetInsights(insights).
			SetResponseIds(emptyIfNil(set.ResponseIDs)).
			SetUpdatedAt(time.Now()).
			OnConflictColumns(
				batchinsight.FieldAuditID,
				batchinsight.FieldCategory,
				batchinsight.FieldBatchNumber,
				batchinsight.FieldExtractionType,
			).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert %s insights for %s batch %d: %w",
				typ, set.Category, set.BatchNumber, err)
		}
	}
	return nil
}

// LoadBatchInsights reassembles the audit's insight cells into per
// (category, batch) sets, ordered by category then batch number.
func (s *Store) LoadBatchInsights(ctx context.Context, auditID string) ([]models.BatchInsightSet, error) {
	rows, err := s.client.BatchInsight.Query().
		Where(batchinsight.AuditID(auditID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch insights: %w", err)
	}

	type key struct {
		category models.Category
		batch    int
	}
	sets := make(map[key]*models.BatchInsightSet)
	var order []key

	for _, row := range rows {
		k := key{category: models.Category(row.Category), batch: row.BatchNumber}
		set, ok := sets[k]
		if !ok {
			set = &models.BatchInsightSet{
				Category:    k.category,
				BatchNumber: k.batch,
				Insights:    make(map[models.ExtractionType][]string),
				ResponseIDs: row.ResponseIds,
			}
			sets[k] = set
			order = append(order, k)
		}
		set.Insights[models.ExtractionType(row.ExtractionType)] = row.Insights
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].category != order[j].category {
			return order[i].category < order[j].category
		}
		return order[i].batch < order[j].batch
	})

	out := make([]models.BatchInsightSet, 0, len(order))
	for _, k := range order {
		out = append(out, *sets[k])
	}
	return out, nil
}
