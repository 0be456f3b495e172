package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandlens/brandlens/pkg/models"
	"github.com/brandlens/brandlens/pkg/storage"
)

// submitAudit handles POST /api/v1/audits. It only inserts the pending
// row; a worker claims and runs it.
func (s *Server) submitAudit(c *gin.Context) {
	var req SubmitAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.store.CreateAudit(c.Request.Context(), storage.CreateAuditParams{
		Profile: models.CompanyProfile{
			Name:              req.CompanyName,
			Domain:            req.CompanyDomain,
			Industry:          req.Industry,
			Competitors:       req.Competitors,
			Aliases:           req.BrandAliases,
			IncludeSubdomains: req.IncludeSubdomains,
		},
		ProviderPriority: req.ProviderPriority,
		Concurrency:      req.Concurrency,
	})
	if err != nil {
		status, msg := mapStorageError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	s.log.Info("Audit submitted",
		"audit_id", created.ID,
		"company", created.CompanyName,
		"domain", created.CompanyDomain)

	c.JSON(http.StatusAccepted, auditResponseOf(created))
}

// getAudit handles GET /api/v1/audits/:id.
func (s *Server) getAudit(c *gin.Context) {
	auditID := c.Param("id")

	a, err := s.store.GetAudit(c.Request.Context(), auditID)
	if err != nil {
		status, msg := mapStorageError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	resp := auditResponseOf(a)
	if snapshot, err := s.store.GetDashboard(c.Request.Context(), auditID); err == nil {
		resp.OverallScore = &snapshot.OverallScore
		resp.TotalCost = &snapshot.TotalCost
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.log.Warn("Failed to load dashboard snapshot", "audit_id", auditID, "error", err)
	}

	c.JSON(http.StatusOK, resp)
}

// cancelAudit handles POST /api/v1/audits/:id/cancel. Pending audits
// cancel immediately; running ones are flagged and also interrupted
// in-process when this pod owns them.
func (s *Server) cancelAudit(c *gin.Context) {
	auditID := c.Param("id")

	if err := s.store.RequestCancel(c.Request.Context(), auditID); err != nil {
		status, msg := mapStorageError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if s.workerPool != nil && s.workerPool.CancelAudit(auditID) {
		s.log.Info("Cancelled in-process audit", "audit_id", auditID)
	}

	c.JSON(http.StatusAccepted, CancelResponse{
		AuditID: auditID,
		Message: "cancellation requested",
	})
}
