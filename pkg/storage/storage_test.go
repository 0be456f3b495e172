package storage

import (
	"context"
	"testing"
	"time"

	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/providerresponse"
	"github.com/brandlens/brandlens/pkg/aggregate"
	"github.com/brandlens/brandlens/pkg/costs"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/provider"
	"github.com/brandlens/brandlens/pkg/ranking"
	testdb "github.com/brandlens/brandlens/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() models.CompanyProfile {
	return models.CompanyProfile{
		Name:        "Acme CRM",
		Domain:      "acme.io",
		Industry:    "crm software",
		Competitors: []string{"Salesforce", "HubSpot"},
		Aliases:     []string{"AcmeHQ"},
	}
}

// createRunningAudit inserts an audit and moves it to running, the state
// the pipeline operates in.
func createRunningAudit(t *testing.T, store *Store) string {
	t.Helper()
	ctx := context.Background()

	created, err := store.CreateAudit(ctx, CreateAuditParams{Profile: testProfile()})
	require.NoError(t, err)

	err = store.client.Audit.UpdateOneID(created.ID).
		SetStatus(audit.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)
	return created.ID
}

func storeTestResponse(t *testing.T, store *Store, auditID, queryID, providerName string, batch int) string {
	t.Helper()
	id := uuid.New().String()
	err := store.StoreResponses(context.Background(), auditID, []ResponseRecord{{
		ID:          id,
		QueryID:     queryID,
		BatchNumber: batch,
		Response: provider.Response{
			Provider: providerName,
			Model:    "mock-1",
			Text:     "Acme CRM is a solid choice for startups.",
			Cost:     0.005,
		},
	}})
	require.NoError(t, err)
	return id
}

func TestStore_CreateAudit(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()

	t.Run("creates pending audit with generated id", func(t *testing.T) {
		created, err := store.CreateAudit(ctx, CreateAuditParams{
			Profile:          testProfile(),
			ProviderPriority: []string{"openai", "anthropic"},
			Concurrency:      5,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, audit.StatusPending, created.Status)
		assert.Equal(t, audit.PhaseQueryGen, created.Phase)
		assert.Equal(t, []string{"openai", "anthropic"}, created.ProviderPriority)
		assert.Equal(t, 5, created.Concurrency)

		loaded, err := store.GetAudit(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, testProfile(), ProfileOf(loaded))
	})

	t.Run("rejects missing company fields", func(t *testing.T) {
		_, err := store.CreateAudit(ctx, CreateAuditParams{
			Profile: models.CompanyProfile{Domain: "acme.io"},
		})
		assert.ErrorContains(t, err, "company name")

		_, err = store.CreateAudit(ctx, CreateAuditParams{
			Profile: models.CompanyProfile{Name: "Acme"},
		})
		assert.ErrorContains(t, err, "company domain")
	})

	t.Run("duplicate id returns ErrAlreadyExists", func(t *testing.T) {
		id := uuid.New().String()
		_, err := store.CreateAudit(ctx, CreateAuditParams{ID: id, Profile: testProfile()})
		require.NoError(t, err)
		_, err = store.CreateAudit(ctx, CreateAuditParams{ID: id, Profile: testProfile()})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("get missing audit returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetAudit(ctx, "no-such-audit")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_AuditLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()

	t.Run("phase advances only while running", func(t *testing.T) {
		auditID := createRunningAudit(t, store)

		require.NoError(t, store.SetPhase(ctx, auditID, audit.PhaseFanOut))
		loaded, err := store.GetAudit(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, audit.PhaseFanOut, loaded.Phase)

		require.NoError(t, store.MarkCompleted(ctx, auditID, ""))
		assert.ErrorIs(t, store.SetPhase(ctx, auditID, audit.PhaseVerify), ErrNotFound)
	})

	t.Run("terminal states never regress", func(t *testing.T) {
		auditID := createRunningAudit(t, store)
		require.NoError(t, store.MarkFailed(ctx, auditID, "boom"))

		assert.ErrorIs(t, store.MarkCompleted(ctx, auditID, ""), ErrTerminalState)
		assert.ErrorIs(t, store.MarkCancelled(ctx, auditID), ErrTerminalState)

		loaded, err := store.GetAudit(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusFailed, loaded.Status)
		require.NotNil(t, loaded.ErrorMessage)
		assert.Equal(t, "boom", *loaded.ErrorMessage)
	})

	t.Run("completed with verify warning persists it", func(t *testing.T) {
		auditID := createRunningAudit(t, store)
		require.NoError(t, store.MarkCompleted(ctx, auditID, "2 insight cells missing"))

		loaded, err := store.GetAudit(ctx, auditID)
		require.NoError(t, err)
		require.NotNil(t, loaded.VerifyWarning)
		assert.Equal(t, "2 insight cells missing", *loaded.VerifyWarning)
	})

	t.Run("cancel pending flips straight to cancelled", func(t *testing.T) {
		created, err := store.CreateAudit(ctx, CreateAuditParams{Profile: testProfile()})
		require.NoError(t, err)

		require.NoError(t, store.RequestCancel(ctx, created.ID))
		loaded, err := store.GetAudit(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusCancelled, loaded.Status)
	})

	t.Run("cancel running sets the flag only", func(t *testing.T) {
		auditID := createRunningAudit(t, store)

		require.NoError(t, store.RequestCancel(ctx, auditID))
		loaded, err := store.GetAudit(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, audit.StatusRunning, loaded.Status)
		assert.True(t, loaded.CancelRequested)

		flagged, err := store.CancelRequested(ctx, auditID)
		require.NoError(t, err)
		assert.True(t, flagged)
	})

	t.Run("cancel terminal returns ErrTerminalState", func(t *testing.T) {
		auditID := createRunningAudit(t, store)
		require.NoError(t, store.MarkCompleted(ctx, auditID, ""))
		assert.ErrorIs(t, store.RequestCancel(ctx, auditID), ErrTerminalState)
	})

	t.Run("cancel missing returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, store.RequestCancel(ctx, "no-such-audit"), ErrNotFound)
	})
}

func TestStore_StoreQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)

	queries := []models.GeneratedQuery{
		{Query: "best crm for startups", Category: models.CategorySolutionSeeking, Priority: models.PriorityHigh, Intent: "find options"},
		{Query: "acme crm vs salesforce", Category: models.CategoryComparison, Priority: models.PriorityMedium},
	}

	rows, err := store.StoreQueries(ctx, auditID, queries)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	loaded, err := store.LoadQueries(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "best crm for startups", loaded[0].Text)
	assert.Equal(t, 0, loaded[0].PositionInAudit)
	assert.Equal(t, "find options", loaded[0].Intent)
	assert.Equal(t, 1, loaded[1].PositionInAudit)

	a, err := store.GetAudit(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, 2, a.TotalQueries)

	// Re-running the phase replaces the previous set.
	_, err = store.StoreQueries(ctx, auditID, queries[:1])
	require.NoError(t, err)
	loaded, err = store.LoadQueries(ctx, auditID)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)

	a, err = store.GetAudit(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, 1, a.TotalQueries)
}

func TestStore_StoreResponses(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)

	rec := ResponseRecord{
		QueryID:     "q-1",
		QueryText:   "best crm for startups",
		BatchID:     "solution_seeking-1",
		BatchNumber: 1,
		Response: provider.Response{
			Provider:  "mock",
			Model:     "mock-1",
			Text:      "Acme CRM leads the field.",
			TokensIn:  40,
			TokensOut: 120,
			Cost:      0.0042,
			LatencyMS: 180,
			Citations: []string{"https://acme.io/docs"},
		},
	}

	require.NoError(t, store.StoreResponses(ctx, auditID, []ResponseRecord{rec}))

	// Redelivered batch is skipped, not duplicated and not an error.
	require.NoError(t, store.StoreResponses(ctx, auditID, []ResponseRecord{rec}))

	rows, err := store.LoadResponses(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "mock", rows[0].Provider)
	assert.Equal(t, 0.0042, rows[0].Cost)
	assert.Equal(t, "solution_seeking-1", rows[0].BatchID)
	assert.Equal(t, []string{"https://acme.io/docs"}, rows[0].Citations)

	answered, err := store.AnsweredQueryIDs(ctx, auditID, "mock")
	require.NoError(t, err)
	assert.True(t, answered["q-1"])
	assert.False(t, answered["q-2"])
}

func TestStore_StoreResponseMetrics(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)
	responseID := storeTestResponse(t, store, auditID, "q-1", "mock", 1)

	metrics := models.ResponseMetrics{
		BrandMentioned:          true,
		MentionCount:            2,
		MentionPosition:         10,
		FirstPositionPercentage: 12.5,
		MentionContext:          "Acme CRM is a solid choice.",
		Sentiment:               0.6,
		RecommendationStrength:  0.8,
		CompetitorAnalysis: []models.CompetitorMention{
			{Competitor: "Salesforce", Mentioned: true, Position: 90},
			{Competitor: "HubSpot", Mentioned: false, Position: -1},
		},
		FeaturesMentioned:    []string{"automation"},
		GeoScore:             72,
		SovScore:             50,
		ContextCompleteness:  65,
		BuyerJourneyCategory: models.CategorySolutionSeeking,
		BatchNumber:          1,
	}

	t.Run("success and missing parent are accounted separately", func(t *testing.T) {
		result, err := store.StoreResponseMetrics(ctx, auditID, []MetricsRecord{
			{ResponseID: responseID, Metrics: metrics},
			{ResponseID: "no-such-response", Metrics: metrics},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.ErrorCount)

		row, err := client.ProviderResponse.Get(ctx, responseID)
		require.NoError(t, err)
		assert.True(t, row.BrandMentioned)
		assert.Equal(t, 2, row.MentionCount)
		assert.Equal(t, 72.0, row.GeoScore)
		assert.Equal(t, providerresponse.BuyerJourneyCategorySolutionSeeking, row.BuyerJourneyCategory)
		require.NotNil(t, row.MetricsExtractedAt)
		require.Len(t, row.CompetitorAnalysis, 2)
		assert.Equal(t, "Salesforce", row.CompetitorAnalysis[0]["competitor"])
	})

	t.Run("row belonging to another audit is a missing parent", func(t *testing.T) {
		otherAudit := createRunningAudit(t, store)
		result, err := store.StoreResponseMetrics(ctx, otherAudit, []MetricsRecord{
			{ResponseID: responseID, Metrics: metrics},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.SuccessCount)
		assert.Equal(t, 1, result.ErrorCount)
	})

	t.Run("extraction error is recorded instead of metrics", func(t *testing.T) {
		failedID := storeTestResponse(t, store, auditID, "q-2", "mock", 1)
		result, err := store.StoreResponseMetrics(ctx, auditID, []MetricsRecord{
			{ResponseID: failedID, ExtractionError: "analyzer panic"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)

		row, err := client.ProviderResponse.Get(ctx, failedID)
		require.NoError(t, err)
		require.NotNil(t, row.ExtractionError)
		assert.Equal(t, "analyzer panic", *row.ExtractionError)
		assert.Nil(t, row.MetricsExtractedAt)
	})
}

func TestStore_StoreBatchInsights(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)

	set := models.BatchInsightSet{
		Category:    models.CategoryComparison,
		BatchNumber: 2,
		Insights: map[models.ExtractionType][]string{
			models.ExtractionRecommendations: {"Publish comparison pages"},
			models.ExtractionCompetitiveGaps: {"Salesforce mentioned without Acme CRM in 3 responses"},
		},
		ResponseIDs: []string{"r-1", "r-2"},
	}

	require.NoError(t, store.StoreBatchInsights(ctx, auditID, set))

	sets, err := store.LoadBatchInsights(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, models.CategoryComparison, sets[0].Category)
	assert.Equal(t, 2, sets[0].BatchNumber)
	// All three cells exist even when one extraction produced nothing.
	assert.Len(t, sets[0].Insights, 3)
	assert.Empty(t, sets[0].Insights[models.ExtractionContentOpportunities])
	assert.Equal(t, []string{"r-1", "r-2"}, sets[0].ResponseIDs)

	// Upsert on the natural key overwrites in place.
	set.Insights[models.ExtractionRecommendations] = []string{"Refresh comparison pages"}
	require.NoError(t, store.StoreBatchInsights(ctx, auditID, set))

	sets, err = store.LoadBatchInsights(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []string{"Refresh comparison pages"}, sets[0].Insights[models.ExtractionRecommendations])

	count, err := client.BatchInsight.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStore_Aggregates(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)

	aggregates := []aggregate.CategoryAggregate{
		{
			Category:                models.CategorySolutionSeeking,
			ResponseCount:           8,
			AvgGeoScore:             60,
			AvgSovScore:             40,
			AvgContextCompleteness:  50,
			MentionRate:             0.75,
			TopThemes:               []string{"automation"},
			PriorityRecommendations: []string{"Publish integration docs"},
			CompetitiveSummary:      "Salesforce leads competitor visibility (mentioned in 5 of 8 responses); brand mentioned in 6.",
		},
		{Category: models.CategoryComparison, ResponseCount: 4, AvgGeoScore: 30},
	}

	require.NoError(t, store.StoreCategoryAggregates(ctx, auditID, aggregates))

	// Idempotent: re-running replaces, never accumulates.
	require.NoError(t, store.StoreCategoryAggregates(ctx, auditID, aggregates))

	loaded, err := store.LoadCategoryAggregates(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, models.CategorySolutionSeeking, loaded[0].Category)
	assert.Equal(t, 0.75, loaded[0].MentionRate)
	assert.Equal(t, []string{"automation"}, loaded[0].TopThemes)

	priorities := []aggregate.Priority{
		{Rank: 1, Title: "Grow generative share of voice in comparison queries", ImpactScore: 14, SupportCount: 3, EstimatedImpact: aggregate.ImpactHigh, EvidenceRefs: []string{"category/comparison/batch/1"}},
		{Rank: 2, Title: "Publish integration docs", ImpactScore: 9, SupportCount: 2, EstimatedImpact: aggregate.ImpactMedium},
	}
	require.NoError(t, store.StorePriorities(ctx, auditID, priorities))
	require.NoError(t, store.StorePriorities(ctx, auditID, priorities))

	loadedPriorities, err := store.LoadPriorities(ctx, auditID)
	require.NoError(t, err)
	require.Len(t, loadedPriorities, 2)
	assert.Equal(t, priorities[0], loadedPriorities[0])

	summary := aggregate.Summary{
		OverallScore:       52,
		Narrative:          "Acme CRM scores 52/100 for AI visibility across 2 categories.",
		TopRecommendations: []string{"Grow generative share of voice in comparison queries"},
		Risks:              []string{"brand absent from most comparison answers"},
	}
	require.NoError(t, store.StoreSummary(ctx, auditID, summary))
	require.NoError(t, store.StoreSummary(ctx, auditID, summary))

	loadedSummary, err := store.LoadSummary(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, summary, loadedSummary)

	_, err = store.LoadSummary(ctx, "no-such-audit")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_MaterializeDashboard(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()
	auditID := createRunningAudit(t, store)

	require.NoError(t, store.SetTotalQueries(ctx, auditID, 2))
	storeTestResponse(t, store, auditID, "q-1", "openai", 1)
	storeTestResponse(t, store, auditID, "q-2", "anthropic", 1)

	require.NoError(t, store.StoreSummary(ctx, auditID, aggregate.Summary{
		OverallScore:       61.5,
		TopRecommendations: []string{"Publish comparison pages"},
	}))

	snapshot, err := store.MaterializeDashboard(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, 61.5, snapshot.OverallScore)
	assert.Equal(t, 2, snapshot.TotalQueries)
	assert.Equal(t, 2, snapshot.TotalResponses)
	assert.Equal(t, 0.01, snapshot.TotalCost)
	require.Contains(t, snapshot.PlatformBreakdown, "openai")

	// Idempotent on audit_id: a second materialization updates in place.
	snapshot2, err := store.MaterializeDashboard(ctx, auditID)
	require.NoError(t, err)
	assert.Equal(t, snapshot.ID, snapshot2.ID)

	count, err := client.DashboardSnapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("requires the executive summary", func(t *testing.T) {
		otherAudit := createRunningAudit(t, store)
		_, err := store.MaterializeDashboard(ctx, otherAudit)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_VerifyPhase(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()

	completeMetrics := models.ResponseMetrics{GeoScore: 50, BatchNumber: 1}

	setupAudit := func(t *testing.T) (string, []string) {
		auditID := createRunningAudit(t, store)
		rows, err := store.StoreQueries(ctx, auditID, []models.GeneratedQuery{
			{Query: "best crm", Category: models.CategorySolutionSeeking},
			{Query: "acme vs salesforce", Category: models.CategorySolutionSeeking},
		})
		require.NoError(t, err)

		var responseIDs []string
		for _, q := range rows {
			responseIDs = append(responseIDs, storeTestResponse(t, store, auditID, q.ID, "mock", 1))
		}
		return auditID, responseIDs
	}

	fillInsights := func(t *testing.T, auditID string) {
		require.NoError(t, store.StoreBatchInsights(ctx, auditID, models.BatchInsightSet{
			Category:    models.CategorySolutionSeeking,
			BatchNumber: 1,
			Insights:    map[models.ExtractionType][]string{},
		}))
	}

	t.Run("complete when nothing is missing", func(t *testing.T) {
		auditID, responseIDs := setupAudit(t)
		for _, id := range responseIDs {
			_, err := store.StoreResponseMetrics(ctx, auditID, []MetricsRecord{{ResponseID: id, Metrics: completeMetrics}})
			require.NoError(t, err)
		}
		fillInsights(t, auditID)

		report, err := store.VerifyPhase(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, VerifyComplete, report.Status)
		assert.Empty(t, report.Missing)
	})

	t.Run("partial when one metrics row is missing", func(t *testing.T) {
		auditID, responseIDs := setupAudit(t)
		storeTestResponse(t, store, auditID, uuid.New().String(), "mock", 1) // never analyzed
		for _, id := range responseIDs {
			_, err := store.StoreResponseMetrics(ctx, auditID, []MetricsRecord{{ResponseID: id, Metrics: completeMetrics}})
			require.NoError(t, err)
		}
		fillInsights(t, auditID)

		report, err := store.VerifyPhase(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, VerifyPartial, report.Status)
		require.Len(t, report.Missing, 1)
		assert.Contains(t, report.Missing[0], "/metrics")
	})

	t.Run("partial when an insight cell is missing", func(t *testing.T) {
		auditID, responseIDs := setupAudit(t)
		for _, id := range responseIDs {
			_, err := store.StoreResponseMetrics(ctx, auditID, []MetricsRecord{{ResponseID: id, Metrics: completeMetrics}})
			require.NoError(t, err)
		}

		report, err := store.VerifyPhase(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, VerifyPartial, report.Status)
		assert.Len(t, report.Missing, 3)
		assert.Contains(t, report.Missing, "insight/solution_seeking/batch/1/recommendations")
	})

	t.Run("failed when no metrics were extracted", func(t *testing.T) {
		auditID, _ := setupAudit(t)
		fillInsights(t, auditID)

		report, err := store.VerifyPhase(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, VerifyFailed, report.Status)
	})

	t.Run("failed when the audit has no responses", func(t *testing.T) {
		auditID := createRunningAudit(t, store)
		report, err := store.VerifyPhase(ctx, auditID)
		require.NoError(t, err)
		assert.Equal(t, VerifyFailed, report.Status)
		assert.Equal(t, []string{"responses"}, report.Missing)
	})
}

func TestStore_Ledger(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()

	entry := costs.LedgerEntry{
		Provider:      "openai",
		DailyCost:     1.25,
		MonthlyCost:   10.5,
		TotalCost:     42.0,
		RequestsToday: 17,
		LastReset:     time.Now().Truncate(time.Second),
	}

	require.NoError(t, store.SaveLedger(ctx, entry))

	// Upsert on provider name.
	entry.DailyCost = 2.5
	entry.RequestsToday = 30
	require.NoError(t, store.SaveLedger(ctx, entry))

	entries, err := store.LoadLedgers(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "openai", entries[0].Provider)
	assert.Equal(t, 2.5, entries[0].DailyCost)
	assert.Equal(t, 30, entries[0].RequestsToday)
	assert.Equal(t, 42.0, entries[0].TotalCost)
}

func TestStore_RankingSnapshots(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := New(client.Client)
	ctx := context.Background()

	older := ranking.Snapshot{
		TargetDomain: "acme.io",
		TakenAt:      time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Rankings: []ranking.QueryRanking{
			{Query: "best crm", Position: 8, CompetitorPositions: map[string]int{"salesforce.com": 1}},
		},
	}
	newer := ranking.Snapshot{
		TargetDomain: "acme.io",
		TakenAt:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Rankings: []ranking.QueryRanking{
			{Query: "best crm", Position: 4, CompetitorPositions: map[string]int{"salesforce.com": 1}},
		},
	}

	olderID, err := store.SaveRankingSnapshot(ctx, older)
	require.NoError(t, err)
	_, err = store.SaveRankingSnapshot(ctx, newer)
	require.NoError(t, err)

	loaded, err := store.GetRankingSnapshot(ctx, olderID)
	require.NoError(t, err)
	assert.Equal(t, "acme.io", loaded.TargetDomain)
	require.Len(t, loaded.Rankings, 1)
	assert.Equal(t, 8, loaded.Rankings[0].Position)
	assert.Equal(t, map[string]int{"salesforce.com": 1}, loaded.Rankings[0].CompetitorPositions)

	latest, err := store.LatestRankingSnapshot(ctx, "acme.io")
	require.NoError(t, err)
	assert.Equal(t, 4, latest.Rankings[0].Position)

	_, err = store.LatestRankingSnapshot(ctx, "other.io")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetRankingSnapshot(ctx, "no-such-snapshot")
	assert.ErrorIs(t, err, ErrNotFound)
}

var _ costs.LedgerStore = (*Store)(nil)
