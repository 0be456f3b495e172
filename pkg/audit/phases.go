package audit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/pkg/aggregate"
	"github.com/brandlens/brandlens/pkg/analyzer"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/querygen"
	"github.com/brandlens/brandlens/pkg/storage"
)

// ── query_gen ──

func (e *Executor) runQueryGen(ctx context.Context, run *auditRun) error {
	queries, err := e.gen.Generate(ctx, querygen.Request{
		Profile:            run.profile,
		QueriesPerCategory: e.cfg.QueriesPerCategory,
	})
	if err != nil {
		return fmt.Errorf("query generation failed: %w", err)
	}
	if len(queries) == 0 {
		return ErrNoQueries
	}

	rows, err := e.store.StoreQueries(ctx, run.audit.ID, queries)
	if err != nil {
		return err
	}
	run.audit.TotalQueries = len(rows)

	e.log.Info("Queries generated", "audit_id", run.audit.ID, "count", len(rows))
	return nil
}

// ── fan_out ──

// fanOutBatch is one category slice of the query set. Batch numbers are
// per category and match the insight natural key.
type fanOutBatch struct {
	category models.Category
	number   int
	id       string
	queries  []*ent.AuditQuery
}

// buildBatches splits each category's queries into up to perCategory
// contiguous batches, in canonical category order.
func buildBatches(queries []*ent.AuditQuery, perCategory int) []fanOutBatch {
	if perCategory < 1 {
		perCategory = 1
	}

	byCategory := make(map[models.Category][]*ent.AuditQuery)
	for _, q := range queries {
		cat := models.Category(q.Category)
		byCategory[cat] = append(byCategory[cat], q)
	}

	var out []fanOutBatch
	for _, cat := range models.Categories() {
		qs := byCategory[cat]
		if len(qs) == 0 {
			continue
		}
		n := perCategory
		if n > len(qs) {
			n = len(qs)
		}
		size := (len(qs) + n - 1) / n
		number := 1
		for start := 0; start < len(qs); start += size {
			end := start + size
			if end > len(qs) {
				end = len(qs)
			}
			out = append(out, fanOutBatch{
				category: cat,
				number:   number,
				id:       fmt.Sprintf("%s-b%d", cat, number),
				queries:  qs[start:end],
			})
			number++
		}
	}
	return out
}

func (e *Executor) runFanOut(ctx context.Context, run *auditRun) error {
	auditID := run.audit.ID

	queries, err := e.store.LoadQueries(ctx, auditID)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return ErrNoQueries
	}

	providers := run.audit.ProviderPriority
	if len(providers) == 0 {
		providers = e.gw.Providers()
	}
	if len(providers) == 0 {
		return errors.New("no providers available for fan-out")
	}

	concurrency := run.audit.Concurrency
	if concurrency <= 0 {
		concurrency = e.cfg.DefaultConcurrency
	}
	if e.cfg.MaxConcurrency > 0 && concurrency > e.cfg.MaxConcurrency {
		concurrency = e.cfg.MaxConcurrency
	}

	e.warmFromPriorAudit(ctx, run)

	// Responses persisted before a requeue are skipped, not re-bought.
	answered := make(map[string]map[string]bool, len(providers))
	for _, p := range providers {
		have, err := e.store.AnsweredQueryIDs(ctx, auditID, p)
		if err != nil {
			return err
		}
		answered[p] = have
	}

	batches := buildBatches(queries, e.cfg.BatchesPerCategory)

	totalItems := 0
	for _, b := range batches {
		for _, q := range b.queries {
			for _, p := range providers {
				if !answered[p][q.ID] {
					totalItems++
				}
			}
		}
	}
	run.progress.setTotals(run.audit.TotalQueries, totalItems)

	counted := run.audit.QueriesCompleted
	processed := 0

	for _, b := range batches {
		if err := e.batchBoundary(ctx, auditID); err != nil {
			return err
		}

		if err := e.dispatchBatch(ctx, run, b, providers, concurrency, answered, processed); err != nil {
			return err
		}

		processed += len(b.queries)
		if processed > counted {
			if err := e.store.AddQueriesCompleted(ctx, auditID, processed-counted); err != nil {
				e.log.Warn("Failed to update completion counter",
					"audit_id", auditID, "error", err)
			} else {
				counted = processed
			}
		}
	}

	run.progress.flush(ctx, events.StageFanOut, counted)
	return nil
}

// cacheWarmer is the optional preload surface; gateway.Gateway has it,
// test doubles usually do not.
type cacheWarmer interface {
	WarmCache(ctx context.Context, entries []gateway.WarmEntry) int
}

// warmFromPriorAudit seeds the response cache with the company's last
// completed audit so repeat audits hit cache instead of re-buying
// unchanged answers. Best-effort: any failure just means cold cache.
func (e *Executor) warmFromPriorAudit(ctx context.Context, run *auditRun) {
	if !e.warmPrior {
		return
	}
	gw, ok := e.gw.(cacheWarmer)
	if !ok {
		return
	}

	rows, err := e.store.PriorAuditResponses(ctx, run.profile.Domain, run.audit.ID)
	if err != nil {
		e.log.Warn("Failed to load prior responses for cache warmup",
			"audit_id", run.audit.ID, "error", err)
		return
	}

	entries := make([]gateway.WarmEntry, 0, len(rows))
	for _, row := range rows {
		if row.QueryText == "" {
			continue // pre-warmup rows lack the prompt the cache key needs
		}
		resp := storage.ResponseOf(row)
		entries = append(entries, gateway.WarmEntry{
			Provider: row.Provider,
			Request:  provider.Request{Prompt: row.QueryText},
			Response: &resp,
		})
	}
	if len(entries) == 0 {
		return
	}

	n := gw.WarmCache(ctx, entries)
	e.log.Info("Cache warmed from prior audit",
		"audit_id", run.audit.ID, "company_domain", run.profile.Domain, "entries", n)
}

// dispatchBatch fans one batch out to every provider and persists each
// provider's responses as they land. Per-item failures are recorded and
// skipped; only a whole-batch abort propagates.
func (e *Executor) dispatchBatch(ctx context.Context, run *auditRun, b fanOutBatch, providers []string, concurrency int, answered map[string]map[string]bool, queriesDone int) error {
	auditID := run.audit.ID

	for _, providerName := range providers {
		items := make([]gateway.BatchItem, 0, len(b.queries))
		queryOf := make(map[string]*ent.AuditQuery, len(b.queries))
		positionOf := make(map[string]int, len(b.queries))

		for pos, q := range b.queries {
			if answered[providerName][q.ID] {
				continue
			}
			items = append(items, gateway.BatchItem{
				ID:      q.ID,
				Request: provider.Request{Prompt: q.Text},
			})
			queryOf[q.ID] = q
			positionOf[q.ID] = pos
		}
		if len(items) == 0 {
			continue
		}

		opts := gateway.BatchOptions{
			SearchOptions: gateway.SearchOptions{
				AuditID:   auditID,
				Providers: []string{providerName},
			},
			Concurrency:          concurrency,
			StopOnBudgetExceeded: true,
			OnProgress: func(gateway.BatchProgress) {
				run.progress.step(ctx, events.StageFanOut, queriesDone)
			},
		}

		results, summary, err := e.gw.BatchSearch(ctx, opts, items)
		if err != nil {
			return fmt.Errorf("fan-out batch %s aborted: %w", b.id, err)
		}

		records := make([]storage.ResponseRecord, 0, len(results))
		var firstErr error
		for _, r := range results {
			if r.Err != nil {
				if firstErr == nil {
					firstErr = r.Err
				}
				e.log.Warn("Provider call failed",
					"audit_id", auditID,
					"provider", providerName,
					"query_id", r.ID,
					"code", provider.CodeOf(r.Err),
					"error", r.Err)
				continue
			}
			q := queryOf[r.ID]
			records = append(records, storage.ResponseRecord{
				QueryID:       q.ID,
				QueryText:     q.Text,
				BatchID:       b.id,
				BatchNumber:   b.number,
				BatchPosition: positionOf[r.ID],
				Response:      *r.Response,
			})
			answered[providerName][q.ID] = true
		}

		if len(records) > 0 {
			if err := e.store.StoreResponses(ctx, auditID, records); err != nil {
				return err
			}
		}

		if summary.Failed > 0 {
			e.publishProviderFailures(ctx, auditID, providerName, b.id, summary, firstErr)
		}
	}
	return nil
}

// publishProviderFailures emits one error event per failing
// (provider, batch) instead of one per call.
func (e *Executor) publishProviderFailures(ctx context.Context, auditID, providerName, batchID string, summary gateway.BatchSummary, cause error) {
	if e.sink == nil || cause == nil {
		return
	}
	payload := events.ErrorPayload{
		Type:    events.EventTypeAuditError,
		AuditID: auditID,
		Stage:   events.StageFanOut,
		Code:    string(provider.CodeOf(cause)),
		Message: fmt.Sprintf("provider %s failed %d/%d calls in batch %s: %v",
			providerName, summary.Failed, summary.Total, batchID, cause),
		Recoverable: provider.Recoverable(cause),
		RetryAfterS: int(provider.RetryAfterOf(cause).Seconds()),
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}
	if err := e.sink.PublishError(ctx, auditID, payload); err != nil {
		e.log.Warn("Failed to publish provider failure event",
			"audit_id", auditID, "provider", providerName, "error", err)
	}
}

// batchBoundary is the safe suspension point: cancellation and deadlines
// take effect here, never mid-batch.
func (e *Executor) batchBoundary(ctx context.Context, auditID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	flagged, err := e.store.CancelRequested(ctx, auditID)
	if err != nil {
		e.log.Warn("Failed to read cancel flag", "audit_id", auditID, "error", err)
		return nil
	}
	if flagged {
		return errCancelRequested
	}
	return nil
}

// ── analyze ──

type batchKey struct {
	category models.Category
	number   int
}

func (e *Executor) runAnalyze(ctx context.Context, run *auditRun) error {
	auditID := run.audit.ID

	categoryOf, textOf, err := e.loadQueryIndex(ctx, auditID)
	if err != nil {
		return err
	}

	responses, err := e.store.LoadResponses(ctx, auditID)
	if err != nil {
		return err
	}

	groups := make(map[batchKey][]*ent.ProviderResponse)
	for _, row := range responses {
		cat, ok := categoryOf[row.QueryID]
		if !ok {
			e.log.Warn("Response references unknown query, skipping",
				"audit_id", auditID, "response_id", row.ID, "query_id", row.QueryID)
			continue
		}
		k := batchKey{category: cat, number: row.BatchNumber}
		groups[k] = append(groups[k], row)
	}

	keys := make([]batchKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].number < keys[j].number
	})

	for _, k := range keys {
		if err := e.batchBoundary(ctx, auditID); err != nil {
			return err
		}

		rows := groups[k]
		records := make([]storage.MetricsRecord, 0, len(rows))
		scored := make([]analyzer.ScoredResponse, 0, len(rows))

		for _, row := range rows {
			queryText := row.QueryText
			if queryText == "" {
				queryText = textOf[row.QueryID]
			}
			m := run.analyzer.Analyze(analyzer.Input{
				ResponseText:  row.Text,
				QueryText:     queryText,
				Category:      k.category,
				BatchID:       row.BatchID,
				BatchNumber:   row.BatchNumber,
				BatchPosition: row.BatchPosition,
			})
			records = append(records, storage.MetricsRecord{ResponseID: row.ID, Metrics: m})
			scored = append(scored, analyzer.ScoredResponse{ResponseID: row.ID, Metrics: m})
		}

		result, err := e.store.StoreResponseMetrics(ctx, auditID, records)
		if err != nil {
			return err
		}
		if result.ErrorCount > 0 {
			e.log.Warn("Some metrics rows failed to store",
				"audit_id", auditID,
				"category", k.category,
				"batch", k.number,
				"stored", result.SuccessCount,
				"failed", result.ErrorCount)
		}

		// Insight cells are written only after the whole batch is scored.
		set := run.analyzer.ExtractBatchInsights(k.category, k.number, scored)
		if err := e.store.StoreBatchInsights(ctx, auditID, set); err != nil {
			return err
		}
	}
	return nil
}

// loadQueryIndex maps query IDs to their category and text.
func (e *Executor) loadQueryIndex(ctx context.Context, auditID string) (map[string]models.Category, map[string]string, error) {
	queries, err := e.store.LoadQueries(ctx, auditID)
	if err != nil {
		return nil, nil, err
	}
	categoryOf := make(map[string]models.Category, len(queries))
	textOf := make(map[string]string, len(queries))
	for _, q := range queries {
		categoryOf[q.ID] = models.Category(q.Category)
		textOf[q.ID] = q.Text
	}
	return categoryOf, textOf, nil
}

// ── aggregate_l1 / l2 / l3 ──

func (e *Executor) runAggregateL1(ctx context.Context, run *auditRun) error {
	auditID := run.audit.ID

	categoryOf, _, err := e.loadQueryIndex(ctx, auditID)
	if err != nil {
		return err
	}
	responses, err := e.store.LoadResponses(ctx, auditID)
	if err != nil {
		return err
	}
	insights, err := e.store.LoadBatchInsights(ctx, auditID)
	if err != nil {
		return err
	}

	byCategory := make(map[models.Category]*aggregate.CategoryInput)
	ensure := func(cat models.Category) *aggregate.CategoryInput {
		in, ok := byCategory[cat]
		if !ok {
			in = &aggregate.CategoryInput{Category: cat}
			byCategory[cat] = in
		}
		return in
	}

	for _, row := range responses {
		if row.MetricsExtractedAt == nil {
			continue // never analyzed, nothing to aggregate
		}
		cat, ok := categoryOf[row.QueryID]
		if !ok {
			continue
		}
		in := ensure(cat)
		in.Responses = append(in.Responses, storage.MetricsOf(row))
	}
	for _, set := range insights {
		in := ensure(set.Category)
		in.Insights = append(in.Insights, set)
	}

	inputs := make([]aggregate.CategoryInput, 0, len(byCategory))
	for _, cat := range models.Categories() {
		if in, ok := byCategory[cat]; ok {
			inputs = append(inputs, *in)
		}
	}

	aggregates := aggregate.BuildL1(inputs)
	return e.store.StoreCategoryAggregates(ctx, auditID, aggregates)
}

func (e *Executor) runAggregateL2(ctx context.Context, run *auditRun) error {
	auditID := run.audit.ID

	aggregates, err := e.store.LoadCategoryAggregates(ctx, auditID)
	if err != nil {
		return err
	}
	insights, err := e.store.LoadBatchInsights(ctx, auditID)
	if err != nil {
		return err
	}

	priorities := aggregate.BuildPriorities(aggregates, insights)
	return e.store.StorePriorities(ctx, auditID, priorities)
}

func (e *Executor) runAggregateL3(ctx context.Context, run *auditRun) error {
	auditID := run.audit.ID

	aggregates, err := e.store.LoadCategoryAggregates(ctx, auditID)
	if err != nil {
		return err
	}
	priorities, err := e.store.LoadPriorities(ctx, auditID)
	if err != nil {
		return err
	}

	var opts []aggregate.SummaryOption
	if e.summarizer != nil {
		opts = append(opts, aggregate.WithSummarizer(e.summarizer))
	}
	if len(e.cfg.CategoryWeights) > 0 {
		weights := make(aggregate.Weights, len(e.cfg.CategoryWeights))
		for cat, w := range e.cfg.CategoryWeights {
			weights[models.Category(cat)] = w
		}
		opts = append(opts, aggregate.WithWeights(weights))
	}
	summary := aggregate.BuildSummary(ctx, run.profile.Name, aggregates, priorities, opts...)
	return e.store.StoreSummary(ctx, auditID, summary)
}

// ── dashboard ──

func (e *Executor) runDashboard(ctx context.Context, run *auditRun) error {
	snapshot, err := e.store.MaterializeDashboard(ctx, run.audit.ID)
	if err != nil {
		return err
	}
	e.log.Info("Dashboard materialized",
		"audit_id", run.audit.ID,
		"overall_score", snapshot.OverallScore,
		"total_cost", snapshot.TotalCost)
	return nil
}
