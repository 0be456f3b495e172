package api

import (
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/pkg/database"
	"github.com/brandlens/brandlens/pkg/queue"
)

// AuditResponse is the public projection of an audit row.
type AuditResponse struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"company_name"`
	CompanyDomain    string     `json:"company_domain"`
	Status           string     `json:"status"`
	Phase            string     `json:"phase"`
	TotalQueries     int        `json:"total_queries"`
	QueriesCompleted int        `json:"queries_completed"`
	Progress         float64    `json:"progress"` // percent, [0, 100]
	VerifyWarning    string     `json:"verify_warning,omitempty"`
	ErrorMessage     string     `json:"error_message,omitempty"`
	OverallScore     *float64   `json:"overall_score,omitempty"`
	TotalCost        *float64   `json:"total_cost,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// auditResponseOf projects an audit row. Dashboard numbers are attached
// by the handler when the audit is complete.
func auditResponseOf(a *ent.Audit) AuditResponse {
	resp := AuditResponse{
		ID:               a.ID,
		CompanyName:      a.CompanyName,
		CompanyDomain:    a.CompanyDomain,
		Status:           string(a.Status),
		Phase:            string(a.Phase),
		TotalQueries:     a.TotalQueries,
		QueriesCompleted: a.QueriesCompleted,
		VerifyWarning:    derefString(a.VerifyWarning),
		ErrorMessage:     derefString(a.ErrorMessage),
		CreatedAt:        a.CreatedAt,
		StartedAt:        a.StartedAt,
		CompletedAt:      a.CompletedAt,
	}
	if a.TotalQueries > 0 {
		resp.Progress = float64(a.QueriesCompleted) / float64(a.TotalQueries) * 100
	}
	return resp
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CancelResponse is returned by POST /api/v1/audits/:id/cancel.
type CancelResponse struct {
	AuditID string `json:"audit_id"`
	Message string `json:"message"`
}

// HealthCheck is one named component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Checks     map[string]HealthCheck `json:"checks"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}
