package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brandlens/brandlens/ent"
	entaudit "github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/ent/event"
	"github.com/brandlens/brandlens/pkg/api"
)

// SubmitAudit posts an audit over the real HTTP API and returns the
// accepted audit.
func (app *TestApp) SubmitAudit(t *testing.T, req api.SubmitAuditRequest) api.AuditResponse {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(app.BaseURL+"/api/v1/audits", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var out api.AuditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.ID)
	return out
}

// GetAudit fetches an audit's current state over HTTP.
func (app *TestApp) GetAudit(t *testing.T, auditID string) api.AuditResponse {
	t.Helper()

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/audits/%s", app.BaseURL, auditID))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.AuditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// CancelAudit requests cancellation over HTTP and returns the status code.
func (app *TestApp) CancelAudit(t *testing.T, auditID string) int {
	t.Helper()

	resp, err := http.Post(fmt.Sprintf("%s/api/v1/audits/%s/cancel", app.BaseURL, auditID), "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode
}

// WaitForStatus polls until the audit reaches the wanted terminal or
// intermediate status, failing the test on timeout.
func (app *TestApp) WaitForStatus(t *testing.T, auditID string, want entaudit.Status, timeout time.Duration) {
	t.Helper()

	require.Eventually(t, func() bool {
		a, err := app.Store.GetAudit(context.Background(), auditID)
		if err != nil {
			return false
		}
		return a.Status == want
	}, timeout, 50*time.Millisecond,
		"audit %s did not reach status %s", auditID, want)
}

// EventTypes returns the distinct event payload types persisted for an
// audit's channel, in insertion order.
func (app *TestApp) EventTypes(t *testing.T, auditID string) []string {
	t.Helper()

	rows, err := app.EntClient.Event.Query().
		Where(event.AuditID(auditID)).
		Order(ent.Asc(event.FieldID)).
		All(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	var types []string
	for _, row := range rows {
		typ, _ := row.Payload["type"].(string)
		if typ == "" || seen[typ] {
			continue
		}
		seen[typ] = true
		types = append(types, typ)
	}
	return types
}

// submitDefaultAudit posts the standard Acme CRM audit the scenarios use.
func (app *TestApp) submitDefaultAudit(t *testing.T) api.AuditResponse {
	t.Helper()
	return app.SubmitAudit(t, api.SubmitAuditRequest{
		CompanyName:   "Acme CRM",
		CompanyDomain: "acme.io",
		Industry:      "crm software",
		Competitors:   []string{"Salesforce", "HubSpot"},
	})
}
