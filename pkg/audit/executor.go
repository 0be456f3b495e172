// Package audit implements the pipeline executor. It drives one claimed
// audit through its phases — query generation, provider fan-out,
// response analysis, layered aggregation, dashboard materialization and
// verification — writing every intermediate result to storage as it goes.
//
// The executor is restart-safe: it starts at the phase persisted on the
// audit row, and every write underneath it is idempotent, so re-running
// a phase after a crash or requeue never corrupts state.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/brandlens/brandlens/ent"
	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/aggregate"
	"github.com/brandlens/brandlens/pkg/analyzer"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/querygen"
	"github.com/brandlens/brandlens/pkg/queue"
	"github.com/brandlens/brandlens/pkg/storage"
)

// ErrNoQueries is returned by the generation phase when the generator
// produced an empty set. The audit fails; there is nothing to fan out.
var ErrNoQueries = errors.New("query generation produced no queries")

// errCancelRequested propagates a cancel flag observed at a batch
// boundary up to Execute.
var errCancelRequested = errors.New("cancellation requested")

// Searcher is the provider fan-out surface the executor needs.
// Implemented by gateway.Gateway.
type Searcher interface {
	BatchSearch(ctx context.Context, opts gateway.BatchOptions, items []gateway.BatchItem) ([]gateway.BatchResult, gateway.BatchSummary, error)
	Providers() []string
}

// EventSink receives the executor's progress and lifecycle events.
// Implemented by events.EventPublisher; nil disables streaming.
type EventSink interface {
	PublishProgress(ctx context.Context, auditID string, payload events.ProgressPayload) error
	PublishStageComplete(ctx context.Context, auditID string, payload events.StageCompletePayload) error
	PublishError(ctx context.Context, auditID string, payload events.ErrorPayload) error
}

// Executor runs the audit pipeline. One instance serves all workers; all
// per-audit state lives in the auditRun passed between phases.
type Executor struct {
	store      *storage.Store
	gen        querygen.Generator
	gw         Searcher
	accountant *costs.Accountant
	sink       EventSink
	summarizer aggregate.Summarizer
	cfg        config.AuditConfig
	warmPrior  bool
	phaseTimes *prometheus.HistogramVec
	log        *slog.Logger
}

// Options configures executor construction.
type Options struct {
	Store      *storage.Store
	Generator  querygen.Generator
	Gateway    Searcher
	Accountant *costs.Accountant
	Events     EventSink             // nil disables event publishing
	Summarizer aggregate.Summarizer  // nil uses the deterministic narrative
	Config     *config.AuditConfig   // nil uses defaults
	Registerer prometheus.Registerer // nil uses the default registry

	// WarmCacheFromPrior preloads the gateway response cache from the
	// company's last completed audit before fan-out.
	WarmCacheFromPrior bool
}

// NewExecutor builds a pipeline executor.
func NewExecutor(opts Options) (*Executor, error) {
	if opts.Store == nil {
		return nil, errors.New("executor requires a store")
	}
	if opts.Generator == nil {
		return nil, errors.New("executor requires a query generator")
	}
	if opts.Gateway == nil {
		return nil, errors.New("executor requires a gateway")
	}
	if opts.Accountant == nil {
		opts.Accountant = costs.NewAccountant(config.BudgetConfig{}, nil)
	}
	cfg := config.DefaultAuditConfig()
	if opts.Config != nil {
		cfg = opts.Config
	}
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	phaseTimes := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "brandlens",
		Subsystem: "audit",
		Name:      "phase_duration_seconds",
		Help:      "Pipeline phase wall time.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"phase"})
	if err := reg.Register(phaseTimes); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("failed to register phase metrics: %w", err)
		}
		phaseTimes = already.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &Executor{
		store:      opts.Store,
		gen:        opts.Generator,
		gw:         opts.Gateway,
		accountant: opts.Accountant,
		sink:       opts.Events,
		summarizer: opts.Summarizer,
		cfg:        *cfg,
		warmPrior:  opts.WarmCacheFromPrior,
		phaseTimes: phaseTimes,
		log:        slog.With("component", "executor"),
	}, nil
}

var _ queue.AuditExecutor = (*Executor)(nil)

// auditRun is the per-audit state threaded through the phases.
type auditRun struct {
	audit    *ent.Audit
	profile  models.CompanyProfile
	analyzer *analyzer.Analyzer
	progress *progressEmitter
}

// phaseStep couples a persisted phase value with its implementation.
type phaseStep struct {
	phase entaudit.Phase
	stage string
	run   func(ctx context.Context, run *auditRun) error
}

func (e *Executor) steps() []phaseStep {
	return []phaseStep{
		{entaudit.PhaseQueryGen, events.StageQueryGen, e.runQueryGen},
		{entaudit.PhaseFanOut, events.StageFanOut, e.runFanOut},
		{entaudit.PhaseAnalyze, events.StageAnalyze, e.runAnalyze},
		{entaudit.PhaseAggregateL1, events.StageAggregateL1, e.runAggregateL1},
		{entaudit.PhaseAggregateL2, events.StageAggregateL2, e.runAggregateL2},
		{entaudit.PhaseAggregateL3, events.StageAggregateL3, e.runAggregateL3},
		{entaudit.PhaseDashboard, events.StageDashboard, e.runDashboard},
	}
}

// Execute drives the audit from its persisted phase to a terminal state.
// The worker writes the returned result; the executor itself only writes
// phase advances and pipeline data.
func (e *Executor) Execute(ctx context.Context, a *ent.Audit) *queue.ExecutionResult {
	log := e.log.With("audit_id", a.ID, "company", a.CompanyName)
	defer e.accountant.ReleaseAudit(a.ID)

	run := &auditRun{
		audit:    a,
		profile:  storage.ProfileOf(a),
		progress: newProgressEmitter(e.sink, e.accountant, a.ID, e.cfg.ProgressInterval),
	}
	run.analyzer = analyzer.New(run.profile)

	steps := e.steps()
	start := 0
	for i, s := range steps {
		if s.phase == a.Phase {
			start = i
			break
		}
	}
	if a.Phase == entaudit.PhaseVerify {
		start = len(steps)
	}
	if start > 0 || a.Phase != entaudit.PhaseQueryGen {
		log.Info("Resuming audit mid-pipeline", "phase", a.Phase)
	}

	for i := start; i < len(steps); i++ {
		step := steps[i]

		if res := e.interrupted(ctx, a.ID); res != nil {
			return res
		}
		if err := e.store.SetPhase(ctx, a.ID, step.phase); err != nil {
			return e.failed(ctx, a.ID, step.stage, fmt.Errorf("failed to enter phase %s: %w", step.stage, err))
		}

		log.Info("Phase started", "phase", step.stage)
		phaseStart := time.Now()

		phaseCtx, cancel := context.WithTimeout(ctx, e.cfg.PhaseTimeout)
		err := step.run(phaseCtx, run)
		cancel()

		elapsed := time.Since(phaseStart)
		e.phaseTimes.WithLabelValues(step.stage).Observe(elapsed.Seconds())

		if err != nil {
			if errors.Is(err, errCancelRequested) || errors.Is(err, context.Canceled) {
				log.Info("Audit cancelled", "phase", step.stage)
				return &queue.ExecutionResult{Status: entaudit.StatusCancelled}
			}
			return e.failed(ctx, a.ID, step.stage, err)
		}

		e.publishStageComplete(ctx, a.ID, step.stage, run)
		log.Info("Phase complete", "phase", step.stage, "elapsed", elapsed)
	}

	return e.runVerify(ctx, run)
}

// interrupted checks the execution context and the cancel flag. A nil
// return means keep going.
func (e *Executor) interrupted(ctx context.Context, auditID string) *queue.ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &queue.ExecutionResult{
			Status: entaudit.StatusFailed,
			Error:  fmt.Errorf("audit deadline exceeded"),
		}
	case errors.Is(ctx.Err(), context.Canceled):
		return &queue.ExecutionResult{Status: entaudit.StatusCancelled, Error: context.Canceled}
	}

	flagged, err := e.store.CancelRequested(ctx, auditID)
	if err != nil {
		e.log.Warn("Failed to read cancel flag", "audit_id", auditID, "error", err)
		return nil
	}
	if flagged {
		return &queue.ExecutionResult{Status: entaudit.StatusCancelled}
	}
	return nil
}

// failed publishes the failure and builds the terminal result.
func (e *Executor) failed(ctx context.Context, auditID, stage string, err error) *queue.ExecutionResult {
	e.log.Error("Phase failed", "audit_id", auditID, "phase", stage, "error", err)
	e.publishError(ctx, auditID, stage, err)
	return &queue.ExecutionResult{
		Status: entaudit.StatusFailed,
		Error:  fmt.Errorf("%s: %w", stage, err),
	}
}

// runVerify closes out the audit: checks that analysis produced what it
// should have, then maps the report onto the terminal status.
func (e *Executor) runVerify(ctx context.Context, run *auditRun) *queue.ExecutionResult {
	auditID := run.audit.ID

	if err := e.store.SetPhase(ctx, auditID, entaudit.PhaseVerify); err != nil {
		return e.failed(ctx, auditID, events.StageVerify, fmt.Errorf("failed to enter phase verify: %w", err))
	}

	report, err := e.store.VerifyPhase(ctx, auditID)
	if err != nil {
		return e.failed(ctx, auditID, events.StageVerify, err)
	}

	if report.Status == storage.VerifyFailed {
		err := fmt.Errorf("VerificationFailed: %s", missingSummary(report.Missing))
		return e.failed(ctx, auditID, events.StageVerify, err)
	}

	result := &queue.ExecutionResult{Status: entaudit.StatusCompleted}
	if report.Status == storage.VerifyPartial {
		result.VerifyWarning = missingSummary(report.Missing)
		e.log.Warn("Verification partial, completing with warning",
			"audit_id", auditID, "missing", len(report.Missing))
	}

	if snapshot, err := e.store.GetDashboard(ctx, auditID); err == nil {
		result.OverallScore = snapshot.OverallScore
		result.TotalCost = snapshot.TotalCost
	} else {
		e.log.Warn("Dashboard snapshot missing at verify", "audit_id", auditID, "error", err)
	}

	e.publishStageComplete(ctx, auditID, events.StageVerify, run)
	return result
}

// missingSummary renders a verify report's missing list, capped so the
// warning column stays readable.
func missingSummary(missing []string) string {
	const maxListed = 10
	if len(missing) <= maxListed {
		return strings.Join(missing, ", ")
	}
	return fmt.Sprintf("%s and %d more",
		strings.Join(missing[:maxListed], ", "), len(missing)-maxListed)
}

// publishStageComplete emits a persistent stage event. Best-effort.
func (e *Executor) publishStageComplete(ctx context.Context, auditID, stage string, run *auditRun) {
	if e.sink == nil {
		return
	}
	err := e.sink.PublishStageComplete(ctx, auditID, events.StageCompletePayload{
		Type:      events.EventTypeStageComplete,
		AuditID:   auditID,
		Stage:     stage,
		Status:    "completed",
		CostSoFar: e.accountant.AuditSpend(auditID),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.log.Warn("Failed to publish stage event",
			"audit_id", auditID, "stage", stage, "error", err)
	}
}

// publishError emits a persistent error event. Best-effort.
func (e *Executor) publishError(ctx context.Context, auditID, stage string, cause error) {
	if e.sink == nil {
		return
	}
	payload := events.ErrorPayload{
		Type:        events.EventTypeAuditError,
		AuditID:     auditID,
		Stage:       stage,
		Message:     cause.Error(),
		Recoverable: false,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}
	if err := e.sink.PublishError(ctx, auditID, payload); err != nil {
		e.log.Warn("Failed to publish error event",
			"audit_id", auditID, "stage", stage, "error", err)
	}
}
