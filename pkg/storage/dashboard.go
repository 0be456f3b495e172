package storage

import (
	"context"
	"fmt"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/dashboardsnapshot"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/provider"
)

// MaterializeDashboard builds the final dashboard row from the executive
// summary and the audit's cost summary, as a single idempotent upsert on
// audit_id.
func (s *Store) MaterializeDashboard(ctx context.Context, auditID string) (*ent.DashboardSnapshot, error) {
	summary, err := s.LoadSummary(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("dashboard requires the executive summary: %w", err)
	}

	a, err := s.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}

	breakdown, totalResponses, totalCost, err := s.platformBreakdown(ctx, auditID)
	if err != nil {
		return nil, err
	}

	err = s.client.DashboardSnapshot.Create().
		SetAuditID(auditID).
		SetOverallScore(summary.OverallScore).
		SetTotalQueries(a.TotalQueries).
		SetTotalResponses(totalResponses).
		SetPlatformBreakdown(breakdown).
		SetTopRecommendations(emptyIfNil(summary.TopRecommendations)).
		SetTotalCost(totalCost).
		OnConflictColumns(dashboardsnapshot.FieldAuditID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert dashboard snapshot: %w", err)
	}

	snapshot, err := s.client.DashboardSnapshot.Query().
		Where(dashboardsnapshot.AuditID(auditID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard snapshot: %w", err)
	}
	return snapshot, nil
}

// GetDashboard returns the materialized dashboard row.
func (s *Store) GetDashboard(ctx context.Context, auditID string) (*ent.DashboardSnapshot, error) {
	snapshot, err := s.client.DashboardSnapshot.Query().
		Where(dashboardsnapshot.AuditID(auditID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load dashboard snapshot: %w", err)
	}
	return snapshot, nil
}

// platformBreakdown aggregates per-provider response counts and spend.
func (s *Store) platformBreakdown(ctx context.Context, auditID string) (map[string]any, int, float64, error) {
	var rows []struct {
		Provider string  `json:"provider"`
		Count    int     `json:"count"`
		Sum      float64 `json:"sum"`
	}
	err := s.client.ProviderResponse.Query().
		Where(providerresponse.AuditID(auditID)).
		GroupBy(providerresponse.FieldProvider).
		Aggregate(ent.Count(), ent.Sum(providerresponse.FieldCost)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to aggregate provider spend: %w", err)
	}

	breakdown := make(map[string]any, len(rows))
	totalResponses := 0
	totalCost := 0.0
	for _, row := range rows {
		breakdown[row.Provider] = map[string]any{
			"responses": row.Count,
			"cost":      provider.RoundCost(row.Sum),
		}
		totalResponses += row.Count
		totalCost += row.Sum
	}
	return breakdown, totalResponses, provider.RoundCost(totalCost), nil
}
