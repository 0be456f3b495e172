package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/brandlens/brandlens/ent/providerledger"
	"github.com/brandlens/brandlens/pkg/costs"
)

// LoadLedgers implements costs.LedgerStore. It returns the persisted
// spend counters of every provider.
func (s *Store) LoadLedgers(ctx context.Context) ([]costs.LedgerEntry, error) {
	rows, err := s.client.ProviderLedger.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider ledgers: %w", err)
	}

	out := make([]costs.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, costs.LedgerEntry{
			Provider:      row.Provider,
			DailyCost:     row.DailyCost,
			MonthlyCost:   row.MonthlyCost,
			TotalCost:     row.TotalCost,
			RequestsToday: row.RequestsToday,
			LastReset:     row.LastReset,
		})
	}
	return out, nil
}

// SaveLedger implements costs.LedgerStore with an upsert on the provider
// name.
func (s *Store) SaveLedger(ctx context.Context, entry costs.LedgerEntry) error {
	err := s.client.ProviderLedger.Create().
		SetProvider(entry.Provider).
		SetDailyCost(entry.DailyCost).
		SetMonthlyCost(entry.MonthlyCost).
		SetTotalCost(entry.TotalCost).
		SetRequestsToday(entry.RequestsToday).
		SetLastReset(entry.LastReset).
		SetUpdatedAt(time.Now()).
		OnConflictColumns(providerledger.FieldProvider).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert provider ledger: %w", err)
	}
	return nil
}
