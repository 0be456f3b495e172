package gateway

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brandlens/brandlens/pkg/provider"
)

// BatchItem is one unit of a fan-out: a caller-chosen ID plus the
// request to issue.
type BatchItem struct {
	ID      string
	Request provider.Request
}

// BatchResult pairs an item with its outcome. Exactly one of Response
// and Err is set.
type BatchResult struct {
	ID       string
	Response *provider.Response
	Err      error
}

// BatchProgress is a point-in-time fan-out snapshot delivered to the
// OnProgress callback.
type BatchProgress struct {
	Completed int
	Failed    int
	Total     int
	TotalCost float64
}

// BatchSummary totals one fan-out.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Cached    int
	TotalCost float64
	Elapsed   time.Duration
}

// BatchOptions configures BatchSearch.
type BatchOptions struct {
	SearchOptions

	// Concurrency bounds parallel Search calls. Values < 1 run serially.
	Concurrency int

	// StopOnBudgetExceeded cancels outstanding items once any item fails
	// with COST_LIMIT_EXCEEDED.
	StopOnBudgetExceeded bool

	// OnProgress is invoked once per completed item, never concurrently.
	// May be nil.
	OnProgress func(BatchProgress)
}

// BatchSearch fans items out through Search with bounded concurrency.
// Results are returned in input order; per-item failures are recorded in
// the result, not returned as an error. The returned error is non-nil
// only when the whole batch was aborted by ctx.
func (g *Gateway) BatchSearch(ctx context.Context, opts BatchOptions, items []BatchItem) ([]BatchResult, BatchSummary, error) {
	start := time.Now()
	results := make([]BatchResult, len(items))

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	progress := BatchProgress{Total: len(items)}

	group, groupCtx := errgroup.WithContext(batchCtx)
	group.SetLimit(concurrency)

	for i, item := range items {
		group.Go(func() error {
			resp, err := g.Search(groupCtx, opts.SearchOptions, item.Request)
			results[i] = BatchResult{ID: item.ID, Response: resp, Err: err}

			mu.Lock()
			progress.Completed++
			if err != nil {
				progress.Failed++
			} else {
				progress.TotalCost = provider.RoundCost(progress.TotalCost + resp.Cost)
			}
			snapshot := progress
			onProgress := opts.OnProgress
			if onProgress != nil {
				onProgress(snapshot)
			}
			mu.Unlock()

			if err != nil && opts.StopOnBudgetExceeded &&
				provider.CodeOf(err) == provider.CodeBudgetExceeded {
				g.log.Warn("Budget exceeded, cancelling remaining batch items",
					"completed", snapshot.Completed, "total", snapshot.Total)
				cancel()
			}
			return nil
		})
	}
	_ = group.Wait()

	summary := BatchSummary{Total: len(items), Elapsed: time.Since(start)}
	for i := range results {
		// Items never started because the batch was cancelled carry a
		// synthetic cancellation result.
		if results[i].Response == nil && results[i].Err == nil {
			results[i] = BatchResult{
				ID:  items[i].ID,
				Err: provider.NewError(provider.CodeCancelled, "", "batch cancelled"),
			}
		}
		if results[i].Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.TotalCost = provider.RoundCost(summary.TotalCost + results[i].Response.Cost)
		if results[i].Response.Cached {
			summary.Cached++
		}
	}

	if err := ctx.Err(); err != nil {
		return results, summary, mapCtxErr(ctx, "")
	}
	return results, summary, nil
}
