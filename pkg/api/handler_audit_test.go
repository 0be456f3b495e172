package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/database"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/storage"
	testdb "github.com/brandlens/brandlens/test/database"
)

func newTestServer(t *testing.T) (*Server, *database.Client, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	store := storage.New(client.Client)
	server := NewServer(Options{Store: store, DBClient: client})
	return server, client, store
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitAudit(t *testing.T) {
	server, _, store := newTestServer(t)
	router := server.Router()

	t.Run("creates pending audit", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/audits", SubmitAuditRequest{
			CompanyName:      "Acme CRM",
			CompanyDomain:    "acme.io",
			Industry:         "crm software",
			Competitors:      []string{"Salesforce"},
			ProviderPriority: []string{"openai"},
			Concurrency:      5,
		})
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp AuditResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, string(entaudit.StatusPending), resp.Status)
		assert.Equal(t, string(entaudit.PhaseQueryGen), resp.Phase)

		stored, err := store.GetAudit(context.Background(), resp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme CRM", stored.CompanyName)
		assert.Equal(t, []string{"openai"}, stored.ProviderPriority)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/audits", map[string]any{
			"company_domain": "acme.io",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects out-of-range concurrency", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/audits", map[string]any{
			"company_name":   "Acme CRM",
			"company_domain": "acme.io",
			"concurrency":    100,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAudit(t *testing.T) {
	server, _, store := newTestServer(t)
	router := server.Router()
	ctx := context.Background()

	t.Run("returns audit status", func(t *testing.T) {
		created, err := store.CreateAudit(ctx, storage.CreateAuditParams{
			Profile: models.CompanyProfile{Name: "Acme CRM", Domain: "acme.io"},
		})
		require.NoError(t, err)

		w := doRequest(router, http.MethodGet, "/api/v1/audits/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuditResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, string(entaudit.StatusPending), resp.Status)
		assert.Nil(t, resp.OverallScore)
	})

	t.Run("unknown audit returns 404", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/audits/no-such-audit", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCancelAudit(t *testing.T) {
	server, client, store := newTestServer(t)
	router := server.Router()
	ctx := context.Background()

	t.Run("pending audit cancels immediately", func(t *testing.T) {
		created, err := store.CreateAudit(ctx, storage.CreateAuditParams{
			Profile: models.CompanyProfile{Name: "Acme CRM", Domain: "acme.io"},
		})
		require.NoError(t, err)

		w := doRequest(router, http.MethodPost, "/api/v1/audits/"+created.ID+"/cancel", nil)
		require.Equal(t, http.StatusAccepted, w.Code)

		stored, err := store.GetAudit(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entaudit.StatusCancelled, stored.Status)
	})

	t.Run("terminal audit returns conflict", func(t *testing.T) {
		created, err := store.CreateAudit(ctx, storage.CreateAuditParams{
			Profile: models.CompanyProfile{Name: "Acme CRM", Domain: "acme.io"},
		})
		require.NoError(t, err)
		err = client.Client.Audit.UpdateOneID(created.ID).
			SetStatus(entaudit.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		w := doRequest(router, http.MethodPost, "/api/v1/audits/"+created.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown audit returns 404", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/audits/no-such-audit/cancel", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	w := doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	require.NotNil(t, resp.Database)
}

func TestSecurityHeaders(t *testing.T) {
	server, _, _ := newTestServer(t)
	router := server.Router()

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
