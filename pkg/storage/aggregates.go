package storage

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/categoryaggregate"
	"github.com/brandlens/brandlens/ent/executivesummary"
	"github.com/brandlens/brandlens/ent/strategicpriority"
	"github.com/brandlens/brandlens/pkg/aggregate"
	"github.com/brandlens/brandlens/pkg/models"
)

// StoreCategoryAggregates replaces the audit's L1 layer in one
// transaction.
func (s *Store) StoreCategoryAggregates(ctx context.Context, auditID string, aggregates []aggregate.CategoryAggregate) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.CategoryAggregate.Delete().
		Where(categoryaggregate.AuditID(auditID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear category aggregates: %w", err)
	}

	builders := make([]*ent.CategoryAggregateCreate, 0, len(aggregates))
	for _, agg := range aggregates {
		builders = append(builders, tx.CategoryAggregate.Create().
			SetAuditID(auditID).
			SetCategory(categoryaggregate.Category(agg.Category)).
			SetResponseCount(agg.ResponseCount).
			SetAvgGeoScore(agg.AvgGeoScore).
			SetAvgSovScore(agg.AvgSovScore).
			SetAvgSentiment(agg.AvgSentiment).
			SetAvgContextCompleteness(agg.AvgContextCompleteness).
			SetMentionRate(agg.MentionRate).
			SetTopThemes(emptyIfNil(agg.TopThemes)).
			SetPriorityRecommendations(emptyIfNil(agg.PriorityRecommendations)).
			SetCompetitiveSummary(agg.CompetitiveSummary))
	}
	if _, err := tx.CategoryAggregate.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to store category aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadCategoryAggregates returns the audit's L1 layer in canonical
// category order.
func (s *Store) LoadCategoryAggregates(ctx context.Context, auditID string) ([]aggregate.CategoryAggregate, error) {
	rows, err := s.client.CategoryAggregate.Query().
		Where(categoryaggregate.AuditID(auditID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category aggregates: %w", err)
	}

	byCategory := make(map[models.Category]*ent.CategoryAggregate, len(rows))
	for _, row := range rows {
		byCategory[models.Category(row.Category)] = row
	}

	var out []aggregate.CategoryAggregate
	for _, cat := range models.Categories() {
		row, ok := byCategory[cat]
		if !ok {
			continue
		}
		out = append(out, aggregate.CategoryAggregate{
			Category:                cat,
			ResponseCount:           row.ResponseCount,
			AvgGeoScore:             row.AvgGeoScore,
			AvgSovScore:             row.AvgSovScore,
			AvgSentiment:            row.AvgSentiment,
			AvgContextCompleteness:  row.AvgContextCompleteness,
			MentionRate:             row.MentionRate,
			TopThemes:               row.TopThemes,
			PriorityRecommendations: row.PriorityRecommendations,
			CompetitiveSummary:      row.CompetitiveSummary,
		})
	}
	return out, nil
}

// StorePriorities replaces the audit's L2 layer in one transaction.
func (s *Store) StorePriorities(ctx context.Context, auditID string, priorities []aggregate.Priority) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StrategicPriority.Delete().
		Where(strategicpriority.AuditID(auditID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear strategic priorities: %w", err)
	}

	builders := make([]*ent.StrategicPriorityCreate, 0, len(priorities))
	for _, p := range priorities {
		builders = append(builders, tx.StrategicPriority.Create().
			SetAuditID(auditID).
			SetRank(p.Rank).
			SetTitle(p.Title).
			SetRationale(p.Rationale).
			SetEvidenceRefs(emptyIfNil(p.EvidenceRefs)).
			SetImpactScore(p.ImpactScore).
			SetSupportCount(p.SupportCount).
			SetEstimatedImpact(strategicpriority.EstimatedImpact(p.EstimatedImpact)))
	}
	if _, err := tx.StrategicPriority.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to store strategic priorities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadPriorities returns the audit's L2 layer ordered by rank.
func (s *Store) LoadPriorities(ctx context.Context, auditID string) ([]aggregate.Priority, error) {
	rows, err := s.client.StrategicPriority.Query().
		Where(strategicpriority.AuditID(auditID)).
		Order(ent.Asc(strategicpriority.FieldRank)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load strategic priorities: %w", err)
	}

	out := make([]aggregate.Priority, 0, len(rows))
	for _, row := range rows {
		out = append(out, aggregate.Priority{
			Rank:            row.Rank,
			Title:           row.Title,
			Rationale:       row.Rationale,
			EvidenceRefs:    row.EvidenceRefs,
			ImpactScore:     row.ImpactScore,
			SupportCount:    row.SupportCount,
			EstimatedImpact: aggregate.Impact(row.EstimatedImpact),
		})
	}
	return out, nil
}

// StoreSummary replaces the audit's L3 row in one transaction.
func (s *Store) StoreSummary(ctx context.Context, auditID string, summary aggregate.Summary) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecutiveSummary.Delete().
		Where(executivesummary.AuditID(auditID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear executive summary: %w", err)
	}

	if _, err := tx.ExecutiveSummary.Create().
		SetAuditID(auditID).
		SetOverallScore(summary.OverallScore).
		SetNarrative(summary.Narrative).
		SetTopRecommendations(emptyIfNil(summary.TopRecommendations)).
		SetRisks(emptyIfNil(summary.Risks)).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to store executive summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadSummary returns the audit's L3 row.
func (s *Store) LoadSummary(ctx context.Context, auditID string) (aggregate.Summary, error) {
	row, err := s.client.ExecutiveSummary.Query().
		Where(executivesummary.AuditID(auditID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return aggregate.Summary{}, ErrNotFound
		}
		return aggregate.Summary{}, fmt.Errorf("failed to load executive summary: %w", err)
	}

	return aggregate.Summary{
		OverallScore:       row.OverallScore,
		Narrative:          row.Narrative,
		TopRecommendations: row.TopRecommendations,
		Risks:              row.Risks,
	}, nil
}
