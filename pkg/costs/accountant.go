// Package costs implements budget admission and spend accounting for the
// provider gateway. Spend is tracked in memory per provider and per audit,
// flushed asynchronously to the ledger store, and restored from it on
// startup so restarts never forget money already spent.
package costs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/provider"
)

// LedgerEntry is the persisted spend state of one provider.
type LedgerEntry struct {
	Provider      string
	DailyCost     float64
	MonthlyCost   float64
	TotalCost     float64
	RequestsToday int
	LastReset     time.Time
}

// LedgerStore persists provider spend across restarts.
type LedgerStore interface {
	LoadLedgers(ctx context.Context) ([]LedgerEntry, error)
	SaveLedger(ctx context.Context, entry LedgerEntry) error
}

// Alert reports a budget cap approaching exhaustion. Level is "warning"
// or "critical"; Period is "daily" or "monthly".
type Alert struct {
	Provider string
	Period   string
	Level    string
	Spent    float64
	Limit    float64
}

// Alert levels, ordered: a critical alert supersedes a warning.
const (
	alertNone = iota
	alertWarning
	alertCritical
)

// providerSpend is the in-memory counter set for one provider.
type providerSpend struct {
	daily         float64
	monthly       float64
	total         float64
	pending       float64 // reserved by admitted, unfinished requests
	requestsToday int
	lastReset     time.Time
	dailyAlert    int // highest alert level fired this day
	monthlyAlert  int // highest alert level fired this month
}

// Accountant enforces daily, monthly, per-audit, and per-request budget
// caps. MayIssue admits a request against the estimate and reserves it,
// so concurrent in-flight admissions cannot jointly overrun a cap; the
// returned Reservation is settled with the actual cost or released when
// the call never completes.
type Accountant struct {
	limits  config.BudgetConfig
	store   LedgerStore
	log     *slog.Logger
	now     func() time.Time
	alertFn func(Alert)

	mu            sync.Mutex
	providers     map[string]*providerSpend
	audits        map[string]float64
	pendingAudits map[string]float64
}

// Option configures an Accountant.
type Option func(*Accountant)

// WithClock overrides the time source, used by rollover tests.
func WithClock(now func() time.Time) Option {
	return func(a *Accountant) { a.now = now }
}

// WithAlertFunc overrides the alert sink. The default logs through slog.
func WithAlertFunc(fn func(Alert)) Option {
	return func(a *Accountant) { a.alertFn = fn }
}

// NewAccountant builds an accountant. store may be nil for tests; spend
// then lives only in memory.
func NewAccountant(limits config.BudgetConfig, store LedgerStore, opts ...Option) *Accountant {
	a := &Accountant{
		limits:        limits,
		store:         store,
		log:           slog.With("component", "costs"),
		now:           time.Now,
		providers:     make(map[string]*providerSpend),
		audits:        make(map[string]float64),
		pendingAudits: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.alertFn == nil {
		a.alertFn = a.logAlert
	}
	return a
}

// Restore loads persisted ledgers into memory. Call once during startup,
// before any request is admitted.
func (a *Accountant) Restore(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	entries, err := a.store.LoadLedgers(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range entries {
		a.providers[e.Provider] = &providerSpend{
			daily:         e.DailyCost,
			monthly:       e.MonthlyCost,
			total:         e.TotalCost,
			requestsToday: e.RequestsToday,
			lastReset:     e.LastReset,
		}
	}
	a.log.Info("Restored provider ledgers", "providers", len(entries))
	return nil
}

// Reservation holds estimated spend against the caps while its request
// is in flight. Exactly one of Settle or Release must be called; extra
// calls are no-ops.
type Reservation struct {
	a        *Accountant
	provider string
	auditID  string
	estimate float64
	once     sync.Once
}

// Settle replaces the reservation's estimate with the actual cost and
// books it.
func (r *Reservation) Settle(cost float64) {
	if r == nil {
		return
	}
	r.once.Do(func() { r.a.settle(r, cost, true) })
}

// Release drops the reservation without booking anything, for requests
// that failed after admission.
func (r *Reservation) Release() {
	if r == nil {
		return
	}
	r.once.Do(func() { r.a.settle(r, 0, false) })
}

// MayIssue reports whether a request with the given cost estimate may be
// issued. Returns a COST_LIMIT_EXCEEDED error naming the breached cap,
// or a Reservation holding the estimate against the caps until Settle or
// Release. Admission counts booked spend plus all outstanding
// reservations, so the worst overshoot of any cap is bounded by a single
// request's estimate.
func (a *Accountant) MayIssue(providerName, auditID string, estimate float64) (*Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ps := a.spendLocked(providerName)
	a.rolloverLocked(providerName, ps)

	if a.limits.PerRequestLimit > 0 && estimate > a.limits.PerRequestLimit {
		return nil, provider.NewError(provider.CodeBudgetExceeded, providerName, "request exceeds per-request cap")
	}
	if a.limits.DailyLimit > 0 && ps.daily+ps.pending+estimate > a.limits.DailyLimit {
		return nil, provider.NewError(provider.CodeBudgetExceeded, providerName, "daily budget exhausted")
	}
	if a.limits.MonthlyLimit > 0 && ps.monthly+ps.pending+estimate > a.limits.MonthlyLimit {
		return nil, provider.NewError(provider.CodeBudgetExceeded, providerName, "monthly budget exhausted")
	}
	if auditID != "" && a.limits.AuditLimit > 0 &&
		a.audits[auditID]+a.pendingAudits[auditID]+estimate > a.limits.AuditLimit {
		return nil, provider.NewError(provider.CodeBudgetExceeded, providerName, "audit budget exhausted")
	}

	ps.pending += estimate
	if auditID != "" {
		a.pendingAudits[auditID] += estimate
	}
	return &Reservation{a: a, provider: providerName, auditID: auditID, estimate: estimate}, nil
}

// settle removes a reservation's estimate from the pending counters and,
// when book is set, records the actual cost in its place.
func (a *Accountant) settle(r *Reservation, cost float64, book bool) {
	a.mu.Lock()
	ps := a.spendLocked(r.provider)
	ps.pending -= r.estimate
	if ps.pending < 0 {
		ps.pending = 0
	}
	if r.auditID != "" {
		if p := a.pendingAudits[r.auditID] - r.estimate; p > 0 {
			a.pendingAudits[r.auditID] = p
		} else {
			delete(a.pendingAudits, r.auditID)
		}
	}
	a.mu.Unlock()

	if book {
		a.Record(r.provider, r.auditID, cost)
	}
}

// Record books actual spend after a successful provider call and flushes
// the provider's ledger asynchronously. Persist failures are logged, not
// surfaced; in-memory counters remain authoritative until the next flush.
func (a *Accountant) Record(providerName, auditID string, cost float64) {
	cost = provider.RoundCost(cost)

	a.mu.Lock()
	ps := a.spendLocked(providerName)
	a.rolloverLocked(providerName, ps)
	ps.daily = provider.RoundCost(ps.daily + cost)
	ps.monthly = provider.RoundCost(ps.monthly + cost)
	ps.total = provider.RoundCost(ps.total + cost)
	ps.requestsToday++
	if auditID != "" {
		a.audits[auditID] = provider.RoundCost(a.audits[auditID] + cost)
	}
	entry := a.entryLocked(providerName, ps)
	alerts := a.thresholdAlertsLocked(providerName, ps)
	a.mu.Unlock()

	for _, alert := range alerts {
		a.alertFn(alert)
	}

	if a.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.store.SaveLedger(ctx, entry); err != nil {
			a.log.Error("Failed to persist provider ledger",
				"provider", entry.Provider, "error", err)
		}
	}()
}

// AuditSpend returns the booked spend of one audit.
func (a *Accountant) AuditSpend(auditID string) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.audits[auditID]
}

// ReleaseAudit drops the per-audit counters once the audit reaches a
// terminal state. The total remains persisted on the audit row.
func (a *Accountant) ReleaseAudit(auditID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.audits, auditID)
	delete(a.pendingAudits, auditID)
}

// Summary returns a snapshot of all provider ledgers.
func (a *Accountant) Summary() []LedgerEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]LedgerEntry, 0, len(a.providers))
	for name, ps := range a.providers {
		a.rolloverLocked(name, ps)
		out = append(out, a.entryLocked(name, ps))
	}
	return out
}

func (a *Accountant) spendLocked(providerName string) *providerSpend {
	ps, ok := a.providers[providerName]
	if !ok {
		ps = &providerSpend{lastReset: a.now()}
		a.providers[providerName] = ps
	}
	return ps
}

// rolloverLocked resets the daily counter at local midnight and the
// monthly counter at the month boundary. Pending reservations survive a
// rollover; they are still in flight.
func (a *Accountant) rolloverLocked(providerName string, ps *providerSpend) {
	now := a.now()
	last := ps.lastReset

	sameDay := now.Year() == last.Year() && now.YearDay() == last.YearDay()
	if sameDay {
		return
	}

	a.log.Info("Rolling over daily spend",
		"provider", providerName, "daily_cost", ps.daily, "requests", ps.requestsToday)
	ps.daily = 0
	ps.requestsToday = 0
	ps.dailyAlert = alertNone

	if now.Year() != last.Year() || now.Month() != last.Month() {
		ps.monthly = 0
		ps.monthlyAlert = alertNone
	}
	ps.lastReset = now
}

// thresholdAlertsLocked returns the alerts newly crossed by the current
// spend, at most one per period, highest level wins.
func (a *Accountant) thresholdAlertsLocked(providerName string, ps *providerSpend) []Alert {
	var out []Alert
	if alert, level := a.periodAlert(providerName, "daily", ps.daily, a.limits.DailyLimit, ps.dailyAlert); level > ps.dailyAlert {
		ps.dailyAlert = level
		out = append(out, alert)
	}
	if alert, level := a.periodAlert(providerName, "monthly", ps.monthly, a.limits.MonthlyLimit, ps.monthlyAlert); level > ps.monthlyAlert {
		ps.monthlyAlert = level
		out = append(out, alert)
	}
	return out
}

// periodAlert evaluates one period's thresholds against spent. Returns
// the fired level, or the already-fired level when nothing new crossed.
func (a *Accountant) periodAlert(providerName, period string, spent, limit float64, fired int) (Alert, int) {
	if limit <= 0 {
		return Alert{}, fired
	}

	level := alertNone
	name := ""
	if t := a.limits.Alerts.CriticalThreshold; t > 0 && spent >= t*limit {
		level, name = alertCritical, "critical"
	} else if t := a.limits.Alerts.WarningThreshold; t > 0 && spent >= t*limit {
		level, name = alertWarning, "warning"
	}
	if level <= fired {
		return Alert{}, fired
	}
	return Alert{Provider: providerName, Period: period, Level: name, Spent: spent, Limit: limit}, level
}

// logAlert is the default alert sink.
func (a *Accountant) logAlert(alert Alert) {
	log := a.log.Warn
	if alert.Level == "critical" {
		log = a.log.Error
	}
	log("Budget threshold crossed",
		"provider", alert.Provider,
		"period", alert.Period,
		"level", alert.Level,
		"spent", alert.Spent,
		"limit", alert.Limit)
}

func (a *Accountant) entryLocked(providerName string, ps *providerSpend) LedgerEntry {
	return LedgerEntry{
		Provider:      providerName,
		DailyCost:     ps.daily,
		MonthlyCost:   ps.monthly,
		TotalCost:     ps.total,
		RequestsToday: ps.requestsToday,
		LastReset:     ps.lastReset,
	}
}
