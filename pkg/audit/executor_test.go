package audit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/ent"
	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/config"
	"github.com/brandlens/brandlens/pkg/events"
	"github.com/brandlens/brandlens/pkg/gateway"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/querygen"
	"github.com/brandlens/brandlens/pkg/storage"
	testdb "github.com/brandlens/brandlens/test/database"
)

// mockSearcher answers every item with a canned response mentioning the
// brand, or fails whole providers on request.
type mockSearcher struct {
	providers     []string
	failProviders map[string]error

	mu    sync.Mutex
	calls int
}

func newMockSearcher(providers ...string) *mockSearcher {
	return &mockSearcher{providers: providers, failProviders: map[string]error{}}
}

func (m *mockSearcher) Providers() []string { return m.providers }

func (m *mockSearcher) BatchSearch(ctx context.Context, opts gateway.BatchOptions, items []gateway.BatchItem) ([]gateway.BatchResult, gateway.BatchSummary, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	providerName := ""
	if len(opts.Providers) > 0 {
		providerName = opts.Providers[0]
	}

	results := make([]gateway.BatchResult, 0, len(items))
	summary := gateway.BatchSummary{Total: len(items)}
	for _, item := range items {
		if failErr, ok := m.failProviders[providerName]; ok {
			results = append(results, gateway.BatchResult{ID: item.ID, Err: failErr})
			summary.Failed++
		} else {
			results = append(results, gateway.BatchResult{
				ID: item.ID,
				Response: &provider.Response{
					Provider:  providerName,
					Model:     "mock-1",
					Text:      "Acme CRM is a solid choice for startups, often recommended over Salesforce.",
					TokensIn:  40,
					TokensOut: 120,
					Cost:      0.004,
				},
			})
			summary.Succeeded++
			summary.TotalCost += 0.004
		}
		if opts.OnProgress != nil {
			opts.OnProgress(gateway.BatchProgress{
				Completed: summary.Succeeded,
				Failed:    summary.Failed,
				Total:     summary.Total,
				TotalCost: summary.TotalCost,
			})
		}
	}
	return results, summary, nil
}

func (m *mockSearcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockSink collects published events.
type mockSink struct {
	mu       sync.Mutex
	progress []events.ProgressPayload
	stages   []events.StageCompletePayload
	errors   []events.ErrorPayload
}

func (m *mockSink) PublishProgress(_ context.Context, _ string, p events.ProgressPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, p)
	return nil
}

func (m *mockSink) PublishStageComplete(_ context.Context, _ string, p events.StageCompletePayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stages = append(m.stages, p)
	return nil
}

func (m *mockSink) PublishError(_ context.Context, _ string, p events.ErrorPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, p)
	return nil
}

func (m *mockSink) stageNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.stages))
	for _, s := range m.stages {
		names = append(names, s.Stage)
	}
	return names
}

// failingGenerator fails the test if the pipeline reaches query
// generation at all.
type failingGenerator struct{ t *testing.T }

func (g failingGenerator) Generate(context.Context, querygen.Request) ([]models.GeneratedQuery, error) {
	g.t.Error("query generator called unexpectedly")
	return nil, nil
}

// emptyGenerator produces no queries.
type emptyGenerator struct{}

func (emptyGenerator) Generate(context.Context, querygen.Request) ([]models.GeneratedQuery, error) {
	return nil, nil
}

func execTestConfig() *config.AuditConfig {
	return &config.AuditConfig{
		QueriesPerCategory: 2,
		BatchesPerCategory: 2,
		DefaultConcurrency: 2,
		MaxConcurrency:     4,
		ProgressInterval:   time.Millisecond,
		PhaseTimeout:       time.Minute,
	}
}

func newTestExecutor(t *testing.T, store *storage.Store, gen querygen.Generator, gw Searcher, sink EventSink) *Executor {
	t.Helper()
	exec, err := NewExecutor(Options{
		Store:      store,
		Generator:  gen,
		Gateway:    gw,
		Events:     sink,
		Config:     execTestConfig(),
		Registerer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return exec
}

func execTestProfile() models.CompanyProfile {
	return models.CompanyProfile{
		Name:        "Acme CRM",
		Domain:      "acme.io",
		Industry:    "crm software",
		Competitors: []string{"Salesforce", "HubSpot"},
	}
}

// createRunningAudit inserts an audit and moves it to running, the state
// audits are in when the worker hands them to the executor.
func createRunningAudit(t *testing.T, store *storage.Store, client *ent.Client, priority ...string) *ent.Audit {
	t.Helper()
	ctx := context.Background()

	created, err := store.CreateAudit(ctx, storage.CreateAuditParams{
		Profile:          execTestProfile(),
		ProviderPriority: priority,
	})
	require.NoError(t, err)

	a, err := client.Audit.UpdateOneID(created.ID).
		SetStatus(entaudit.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	return a
}

func seedQueries(t *testing.T, store *storage.Store, auditID string) []*ent.AuditQuery {
	t.Helper()
	rows, err := store.StoreQueries(context.Background(), auditID, []models.GeneratedQuery{
		{Query: "best crm for startups", Category: models.CategorySolutionSeeking, Priority: models.PriorityHigh, Difficulty: 4},
		{Query: "acme crm vs salesforce", Category: models.CategoryComparison, Priority: models.PriorityHigh, Difficulty: 6},
	})
	require.NoError(t, err)
	return rows
}

func TestExecutorCompletesFullPipeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	searcher := newMockSearcher("openai", "anthropic")
	sink := &mockSink{}
	exec := newTestExecutor(t, store, querygen.NewBuiltinGenerator(), searcher, sink)

	a := createRunningAudit(t, store, client.Client)
	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusCompleted, result.Status)
	assert.NoError(t, result.Error)
	assert.Empty(t, result.VerifyWarning)
	assert.Greater(t, result.OverallScore, 0.0)
	assert.Greater(t, result.TotalCost, 0.0)

	queries, err := store.LoadQueries(ctx, a.ID)
	require.NoError(t, err)
	require.NotEmpty(t, queries)

	// One response per (query, provider), all analyzed.
	responses, err := store.LoadResponses(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, responses, len(queries)*2)
	for _, r := range responses {
		assert.NotNil(t, r.MetricsExtractedAt, "response %s not analyzed", r.ID)
		assert.True(t, r.BrandMentioned)
	}

	snapshot, err := store.GetDashboard(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, len(responses), snapshot.TotalResponses)

	loaded, err := store.GetAudit(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entaudit.PhaseVerify, loaded.Phase)

	stages := sink.stageNames()
	assert.Contains(t, stages, events.StageQueryGen)
	assert.Contains(t, stages, events.StageFanOut)
	assert.Contains(t, stages, events.StageDashboard)
	assert.Contains(t, stages, events.StageVerify)
	assert.NotEmpty(t, sink.progress)
}

func TestExecutorFailsWhenNoQueriesGenerated(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)

	searcher := newMockSearcher("openai")
	exec := newTestExecutor(t, store, emptyGenerator{}, searcher, nil)

	a := createRunningAudit(t, store, client.Client)
	result := exec.Execute(context.Background(), a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Error, ErrNoQueries)
	assert.Zero(t, searcher.callCount())
}

func TestExecutorCancelFlagStopsPipeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	searcher := newMockSearcher("openai")
	exec := newTestExecutor(t, store, failingGenerator{t}, searcher, nil)

	a := createRunningAudit(t, store, client.Client)
	require.NoError(t, store.RequestCancel(ctx, a.ID))

	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusCancelled, result.Status)
	assert.Zero(t, searcher.callCount())
}

func TestExecutorResumesFromAnalyze(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createRunningAudit(t, store, client.Client)
	queries := seedQueries(t, store, a.ID)

	// Responses already fetched before the restart.
	records := make([]storage.ResponseRecord, 0, len(queries))
	for i, q := range queries {
		records = append(records, storage.ResponseRecord{
			QueryID:       q.ID,
			QueryText:     q.Text,
			BatchID:       fmt.Sprintf("%s-b1", q.Category),
			BatchNumber:   1,
			BatchPosition: i,
			Response: provider.Response{
				Provider: "openai",
				Model:    "mock-1",
				Text:     "Acme CRM leads the pack, ahead of Salesforce.",
				Cost:     0.004,
			},
		})
	}
	require.NoError(t, store.StoreResponses(ctx, a.ID, records))
	require.NoError(t, store.SetPhase(ctx, a.ID, entaudit.PhaseAnalyze))

	a, err := store.GetAudit(ctx, a.ID)
	require.NoError(t, err)

	// Generation and fan-out must not rerun on resume.
	searcher := newMockSearcher("openai")
	exec := newTestExecutor(t, store, failingGenerator{t}, searcher, nil)

	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusCompleted, result.Status)
	assert.Zero(t, searcher.callCount())

	analyzed, err := client.ProviderResponse.Query().
		Where(
			providerresponse.AuditID(a.ID),
			providerresponse.MetricsExtractedAtNotNil(),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(records), analyzed)

	aggregates, err := store.LoadCategoryAggregates(ctx, a.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, aggregates)
}

func TestExecutorVerifyPartialCompletesWithWarning(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createRunningAudit(t, store, client.Client)
	queries := seedQueries(t, store, a.ID)

	var responseIDs []string
	for i := 0; i < 3; i++ {
		q := queries[i%len(queries)]
		rec := storage.ResponseRecord{
			QueryID:       q.ID,
			QueryText:     q.Text,
			BatchNumber:   1,
			BatchPosition: i,
			Response: provider.Response{
				Provider: fmt.Sprintf("provider-%d", i),
				Model:    "mock-1",
				Text:     "Acme CRM works well.",
			},
		}
		require.NoError(t, store.StoreResponses(ctx, a.ID, []storage.ResponseRecord{rec}))
	}
	rows, err := store.LoadResponses(ctx, a.ID)
	require.NoError(t, err)
	for _, r := range rows {
		responseIDs = append(responseIDs, r.ID)
	}
	require.Len(t, responseIDs, 3)

	// Metrics on two of three rows, no insight cells at all: partial.
	metricsResult, err := store.StoreResponseMetrics(ctx, a.ID, []storage.MetricsRecord{
		{ResponseID: responseIDs[0], Metrics: models.ResponseMetrics{BrandMentioned: true, MentionCount: 1}},
		{ResponseID: responseIDs[1], Metrics: models.ResponseMetrics{BrandMentioned: true, MentionCount: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, metricsResult.SuccessCount)

	require.NoError(t, store.SetPhase(ctx, a.ID, entaudit.PhaseVerify))
	a, err = store.GetAudit(ctx, a.ID)
	require.NoError(t, err)

	exec := newTestExecutor(t, store, failingGenerator{t}, newMockSearcher("openai"), nil)
	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusCompleted, result.Status)
	assert.NotEmpty(t, result.VerifyWarning)
	assert.Contains(t, result.VerifyWarning, "insight")
}

func TestExecutorVerifyFailsWithoutResponses(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	a := createRunningAudit(t, store, client.Client)
	seedQueries(t, store, a.ID)
	require.NoError(t, store.SetPhase(ctx, a.ID, entaudit.PhaseVerify))

	a, err := store.GetAudit(ctx, a.ID)
	require.NoError(t, err)

	exec := newTestExecutor(t, store, failingGenerator{t}, newMockSearcher("openai"), nil)
	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusFailed, result.Status)
	assert.ErrorContains(t, result.Error, "VerificationFailed")
}

func TestExecutorContinuesPastProviderFailures(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	ctx := context.Background()

	searcher := newMockSearcher("openai", "anthropic")
	searcher.failProviders["anthropic"] = provider.NewError(provider.CodeRateLimited, "anthropic", "slow down")
	sink := &mockSink{}
	exec := newTestExecutor(t, store, querygen.NewBuiltinGenerator(), searcher, sink)

	a := createRunningAudit(t, store, client.Client, "openai", "anthropic")
	result := exec.Execute(ctx, a)

	require.NotNil(t, result)
	assert.Equal(t, entaudit.StatusCompleted, result.Status)

	// Only the healthy provider's responses were stored.
	queries, err := store.LoadQueries(ctx, a.ID)
	require.NoError(t, err)
	responses, err := store.LoadResponses(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, responses, len(queries))
	for _, r := range responses {
		assert.Equal(t, "openai", r.Provider)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.NotEmpty(t, sink.errors)
	assert.Equal(t, string(provider.CodeRateLimited), sink.errors[0].Code)
	assert.True(t, sink.errors[0].Recoverable)
}

func TestBuildBatches(t *testing.T) {
	t.Run("splits a category into numbered contiguous batches", func(t *testing.T) {
		queries := make([]*ent.AuditQuery, 8)
		for i := range queries {
			queries[i] = &ent.AuditQuery{ID: fmt.Sprintf("q%d", i)}
			queries[i].Category = "comparison"
		}
		batches := buildBatches(queries, 4)
		require.Len(t, batches, 4)
		for i, b := range batches {
			assert.Equal(t, models.CategoryComparison, b.category)
			assert.Equal(t, i+1, b.number)
			assert.Equal(t, fmt.Sprintf("comparison-b%d", i+1), b.id)
			assert.Len(t, b.queries, 2)
		}
	})

	t.Run("never produces more batches than queries", func(t *testing.T) {
		queries := []*ent.AuditQuery{{ID: "q0"}, {ID: "q1"}}
		queries[0].Category = "evaluation"
		queries[1].Category = "evaluation"
		batches := buildBatches(queries, 4)
		require.Len(t, batches, 2)
		assert.Len(t, batches[0].queries, 1)
		assert.Len(t, batches[1].queries, 1)
	})

	t.Run("orders categories canonically", func(t *testing.T) {
		queries := []*ent.AuditQuery{{ID: "q0"}, {ID: "q1"}}
		queries[0].Category = "post_purchase"
		queries[1].Category = "problem_unaware"
		batches := buildBatches(queries, 1)
		require.Len(t, batches, 2)
		assert.Equal(t, models.CategoryProblemUnaware, batches[0].category)
		assert.Equal(t, models.CategoryPostPurchase, batches[1].category)
	})
}
