package costs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

type memStore struct {
	mu      sync.Mutex
	entries map[string]LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]LedgerEntry)}
}

func (s *memStore) LoadLedgers(context.Context) ([]LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LedgerEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) SaveLedger(_ context.Context, entry LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Provider] = entry
	return nil
}

func TestMayIssueDailyLimit(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, nil)

	res, err := a.MayIssue("openai", "a1", 0.6)
	require.NoError(t, err)
	res.Settle(0.6)

	// 0.6 spent, 0.5 more would exceed 1.0.
	_, err = a.MayIssue("openai", "a1", 0.5)
	require.Error(t, err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(err))
	assert.Contains(t, err.Error(), "daily")

	// A cheaper request still fits.
	res, err = a.MayIssue("openai", "a1", 0.3)
	assert.NoError(t, err)
	res.Release()
}

func TestMayIssueAuditLimit(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{AuditLimit: 1.0}, nil)

	a.Record("openai", "audit-1", 0.5)
	a.Record("anthropic", "audit-1", 0.4)

	// Audit cap spans providers.
	_, err := a.MayIssue("google", "audit-1", 0.2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit")

	// A different audit is unaffected.
	res, err := a.MayIssue("google", "audit-2", 0.2)
	assert.NoError(t, err)
	res.Release()
}

func TestMayIssuePerRequestLimit(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{DailyLimit: 100, PerRequestLimit: 1.0}, nil)

	_, err := a.MayIssue("openai", "a1", 1.5)
	require.Error(t, err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(err))
	assert.Contains(t, err.Error(), "per-request")

	res, err := a.MayIssue("openai", "a1", 1.0)
	assert.NoError(t, err)
	res.Release()
}

func TestConcurrentAdmissionsRespectDailyCap(t *testing.T) {
	// 9.00 already spent against a 10.00 cap: of five simultaneous 0.50
	// admissions at most two may pass, never all five.
	a := NewAccountant(config.BudgetConfig{DailyLimit: 10.0}, nil)
	a.Record("mock", "", 9.0)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted []*Reservation
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, err := a.MayIssue("mock", "", 0.5); err == nil {
				mu.Lock()
				admitted = append(admitted, res)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, admitted, 2)
	for _, res := range admitted {
		res.Settle(0.5)
	}

	summary := a.Summary()
	require.Len(t, summary, 1)
	assert.LessOrEqual(t, summary[0].DailyCost, 10.0)
}

func TestReleaseReturnsHeadroom(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, nil)

	res, err := a.MayIssue("openai", "a1", 0.8)
	require.NoError(t, err)

	// The reservation holds the headroom while in flight.
	_, err = a.MayIssue("openai", "a1", 0.5)
	require.Error(t, err)

	// A failed call releases it without booking spend.
	res.Release()
	res2, err := a.MayIssue("openai", "a1", 0.5)
	require.NoError(t, err)
	res2.Release()
	assert.Equal(t, 0.0, a.AuditSpend("a1"))
}

func TestSettleBooksActualCost(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, nil)

	res, err := a.MayIssue("openai", "a1", 0.8)
	require.NoError(t, err)
	res.Settle(0.2)

	// Settle and Release are one-shot; repeats must not double-book.
	res.Settle(0.2)
	res.Release()

	assert.Equal(t, 0.2, a.AuditSpend("a1"))
	res2, err := a.MayIssue("openai", "a1", 0.7)
	require.NoError(t, err)
	res2.Release()
}

func TestZeroLimitsMeanUnlimited(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{}, nil)
	a.Record("openai", "a1", 9999)
	res, err := a.MayIssue("openai", "a1", 9999)
	assert.NoError(t, err)
	res.Release()
}

func TestDailyRollover(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	a := NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, nil,
		WithClock(func() time.Time { return now }))

	a.Record("openai", "", 0.9)
	_, err := a.MayIssue("openai", "", 0.2)
	require.Error(t, err)

	// Past midnight the daily counter resets, monthly carries over.
	now = now.Add(2 * time.Hour)
	res, err := a.MayIssue("openai", "", 0.2)
	assert.NoError(t, err)
	res.Release()

	summary := a.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, 0.0, summary[0].DailyCost)
	assert.Equal(t, 0.9, summary[0].MonthlyCost)
	assert.Equal(t, 0.9, summary[0].TotalCost)
}

func TestMonthlyRollover(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	a := NewAccountant(config.BudgetConfig{MonthlyLimit: 1.0}, nil,
		WithClock(func() time.Time { return now }))

	a.Record("openai", "", 0.9)
	_, err := a.MayIssue("openai", "", 0.2)
	require.Error(t, err)

	now = time.Date(2026, 4, 1, 0, 1, 0, 0, time.UTC)
	res, err := a.MayIssue("openai", "", 0.2)
	assert.NoError(t, err)
	res.Release()
}

func TestRestore(t *testing.T) {
	store := newMemStore()
	store.entries["openai"] = LedgerEntry{
		Provider:  "openai",
		DailyCost: 0.8, MonthlyCost: 3.0, TotalCost: 10.0,
		LastReset: time.Now(),
	}

	a := NewAccountant(config.BudgetConfig{DailyLimit: 1.0}, store)
	require.NoError(t, a.Restore(context.Background()))

	// Restored spend counts against the cap immediately.
	_, err := a.MayIssue("openai", "", 0.3)
	require.Error(t, err)
	assert.Equal(t, provider.CodeBudgetExceeded, provider.CodeOf(err))
}

func TestRecordPersistsAsync(t *testing.T) {
	store := newMemStore()
	a := NewAccountant(config.BudgetConfig{}, store)

	a.Record("openai", "a1", 0.25)

	assert.Eventually(t, func() bool {
		entries, _ := store.LoadLedgers(context.Background())
		return len(entries) == 1 && entries[0].TotalCost == 0.25
	}, time.Second, 10*time.Millisecond)
}

func TestReleaseAudit(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{AuditLimit: 1.0}, nil)
	a.Record("openai", "a1", 0.9)
	assert.Equal(t, 0.9, a.AuditSpend("a1"))

	a.ReleaseAudit("a1")
	assert.Equal(t, 0.0, a.AuditSpend("a1"))
	res, err := a.MayIssue("openai", "a1", 0.9)
	assert.NoError(t, err)
	res.Release()
}

func TestConcurrentRecord(t *testing.T) {
	a := NewAccountant(config.BudgetConfig{}, nil)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Record("openai", "a1", 0.01)
		}()
	}
	wg.Wait()

	assert.InDelta(t, 1.0, a.AuditSpend("a1"), 0.0001)
	summary := a.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, 100, summary[0].RequestsToday)
}

func TestBudgetAlertsFireOncePerLevel(t *testing.T) {
	var (
		mu     sync.Mutex
		alerts []Alert
	)
	a := NewAccountant(config.BudgetConfig{
		DailyLimit: 10.0,
		Alerts:     config.BudgetAlertsConfig{WarningThreshold: 0.8, CriticalThreshold: 0.95},
	}, nil, WithAlertFunc(func(al Alert) {
		mu.Lock()
		alerts = append(alerts, al)
		mu.Unlock()
	}))

	a.Record("openai", "", 7.0) // below warning
	a.Record("openai", "", 1.5) // 8.5 >= 8.0 warning
	a.Record("openai", "", 0.3) // still warning, no repeat
	a.Record("openai", "", 0.8) // 9.6 >= 9.5 critical

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, alerts, 2)
	assert.Equal(t, "warning", alerts[0].Level)
	assert.Equal(t, "daily", alerts[0].Period)
	assert.Equal(t, "critical", alerts[1].Level)
	assert.Equal(t, 10.0, alerts[1].Limit)
}

func TestBudgetAlertsResetOnRollover(t *testing.T) {
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	var (
		mu     sync.Mutex
		alerts []Alert
	)
	a := NewAccountant(config.BudgetConfig{
		DailyLimit: 10.0,
		Alerts:     config.BudgetAlertsConfig{WarningThreshold: 0.8, CriticalThreshold: 0.95},
	}, nil,
		WithClock(func() time.Time { return now }),
		WithAlertFunc(func(al Alert) {
			mu.Lock()
			alerts = append(alerts, al)
			mu.Unlock()
		}))

	a.Record("openai", "", 8.5)
	now = now.Add(24 * time.Hour)
	a.Record("openai", "", 8.5)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, alerts, 2)
	assert.Equal(t, "warning", alerts[0].Level)
	assert.Equal(t, "warning", alerts[1].Level)
}
