package audit

import (
	"context"
	"sync"
	"time"

	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/events"
)

// progressEmitter throttles fan-out progress events. step is called once
// per completed provider call and emits at most one event per interval;
// flush always emits, so the final snapshot is never lost.
type progressEmitter struct {
	sink       EventSink
	accountant *costs.Accountant
	auditID    string
	interval   time.Duration

	mu           sync.Mutex
	lastEmit     time.Time
	totalQueries int
	totalItems   int
	doneItems    int
}

func newProgressEmitter(sink EventSink, accountant *costs.Accountant, auditID string, interval time.Duration) *progressEmitter {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &progressEmitter{
		sink:       sink,
		accountant: accountant,
		auditID:    auditID,
		interval:   interval,
	}
}

// setTotals fixes the denominator for this run. totalItems counts the
// (query, provider) pairs still unanswered, so a resumed audit reports
// progress over the remaining work, not the original total.
func (p *progressEmitter) setTotals(totalQueries, totalItems int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalQueries = totalQueries
	p.totalItems = totalItems
	p.doneItems = 0
}

// step records one completed item and emits when the interval has passed.
func (p *progressEmitter) step(ctx context.Context, stage string, queriesCompleted int) {
	if p.sink == nil {
		return
	}
	p.mu.Lock()
	p.doneItems++
	if time.Since(p.lastEmit) < p.interval {
		p.mu.Unlock()
		return
	}
	p.lastEmit = time.Now()
	payload := p.payloadLocked(stage, queriesCompleted)
	p.mu.Unlock()

	p.publish(ctx, payload)
}

// flush emits unconditionally. Called at stage end.
func (p *progressEmitter) flush(ctx context.Context, stage string, queriesCompleted int) {
	if p.sink == nil {
		return
	}
	p.mu.Lock()
	p.lastEmit = time.Now()
	payload := p.payloadLocked(stage, queriesCompleted)
	p.mu.Unlock()

	p.publish(ctx, payload)
}

func (p *progressEmitter) payloadLocked(stage string, queriesCompleted int) events.ProgressPayload {
	percent := 100.0
	if p.totalItems > 0 {
		percent = float64(p.doneItems) / float64(p.totalItems) * 100
		if percent > 100 {
			percent = 100
		}
	}
	var cost float64
	if p.accountant != nil {
		cost = p.accountant.AuditSpend(p.auditID)
	}
	return events.ProgressPayload{
		Type:             events.EventTypeProgress,
		AuditID:          p.auditID,
		Stage:            stage,
		Progress:         percent,
		QueriesCompleted: queriesCompleted,
		TotalQueries:     p.totalQueries,
		CostSoFar:        cost,
		Timestamp:        time.Now().Format(time.RFC3339Nano),
	}
}

func (p *progressEmitter) publish(ctx context.Context, payload events.ProgressPayload) {
	// Transient events are best-effort; a failed publish never fails the audit.
	_ = p.sink.PublishProgress(ctx, p.auditID, payload)
}
