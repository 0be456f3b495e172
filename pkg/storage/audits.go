package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/audit"
	"github.com/brandlens/brandlens/pkg/models"
	"github.com/google/uuid"
)

// CreateAuditParams describes a new audit submission.
type CreateAuditParams struct {
	ID               string // generated when empty
	Profile          models.CompanyProfile
	ProviderPriority []string // empty means gateway default
	Concurrency      int      // 0 means gateway default
}

// CreateAudit inserts a pending audit row for the queue to claim.
func (s *Store) CreateAudit(ctx context.Context, params CreateAuditParams) (*ent.Audit, error) {
	if params.Profile.Name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if params.Profile.Domain == "" {
		return nil, fmt.Errorf("company domain is required")
	}

	id := params.ID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.client.Audit.Create().
		SetID(id).
		SetCompanyName(params.Profile.Name).
		SetCompanyDomain(params.Profile.Domain).
		SetIncludeSubdomains(params.Profile.IncludeSubdomains).
		SetStatus(audit.StatusPending).
		SetPhase(audit.PhaseQueryGen)

	if params.Profile.Industry != "" {
		builder.SetIndustry(params.Profile.Industry)
	}
	if len(params.Profile.Competitors) > 0 {
		builder.SetCompetitors(params.Profile.Competitors)
	}
	if len(params.Profile.Aliases) > 0 {
		builder.SetBrandAliases(params.Profile.Aliases)
	}
	if len(params.ProviderPriority) > 0 {
		builder.SetProviderPriority(params.ProviderPriority)
	}
	if params.Concurrency > 0 {
		builder.SetConcurrency(params.Concurrency)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create audit: %w", err)
	}
	return created, nil
}

// GetAudit loads one audit row.
func (s *Store) GetAudit(ctx context.Context, auditID string) (*ent.Audit, error) {
	a, err := s.client.Audit.Get(ctx, auditID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load audit: %w", err)
	}
	return a, nil
}

// ProfileOf reconstructs the company profile persisted on the audit row.
func ProfileOf(a *ent.Audit) models.CompanyProfile {
	return models.CompanyProfile{
		Name:              a.CompanyName,
		Domain:            a.CompanyDomain,
		Industry:          a.Industry,
		Competitors:       a.Competitors,
		Aliases:           a.BrandAliases,
		IncludeSubdomains: a.IncludeSubdomains,
	}
}

// SetPhase advances the audit's pipeline phase. Only running audits move.
func (s *Store) SetPhase(ctx context.Context, auditID string, phase audit.Phase) error {
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusRunning)).
		SetPhase(phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set phase: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetTotalQueries records the query count after query generation.
func (s *Store) SetTotalQueries(ctx context.Context, auditID string, total int) error {
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID)).
		SetTotalQueries(total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set total queries: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddQueriesCompleted increments the completion counter by delta.
func (s *Store) AddQueriesCompleted(ctx context.Context, auditID string, delta int) error {
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID)).
		AddQueriesCompleted(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update completed queries: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RequestCancel flags a non-terminal audit for cancellation. The worker
// observes the flag at the next batch boundary. Pending audits are
// cancelled immediately.
func (s *Store) RequestCancel(ctx context.Context, auditID string) error {
	// Pending rows have no owner, so flip them straight to cancelled.
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusPending)).
		SetStatus(audit.StatusCancelled).
		SetCancelRequested(true).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending audit: %w", err)
	}
	if n == 1 {
		return nil
	}

	n, err = s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusRunning)).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request cancellation: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Audit.Query().Where(audit.ID(auditID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check audit: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrTerminalState
	}
	return nil
}

// CancelRequested reports whether cancellation was flagged for the audit.
func (s *Store) CancelRequested(ctx context.Context, auditID string) (bool, error) {
	flagged, err := s.client.Audit.Query().
		Where(audit.ID(auditID)).
		Select(audit.FieldCancelRequested).
		Bool(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancel flag: %w", err)
	}
	return flagged, nil
}

// MarkCompleted moves a running audit to completed. verifyWarning is
// persisted when verification returned partial.
func (s *Store) MarkCompleted(ctx context.Context, auditID string, verifyWarning string) error {
	update := s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusRunning)).
		SetStatus(audit.StatusCompleted).
		SetCompletedAt(time.Now())
	if verifyWarning != "" {
		update.SetVerifyWarning(verifyWarning)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark audit completed: %w", err)
	}
	if n == 0 {
		return ErrTerminalState
	}
	return nil
}

// MarkFailed moves a running audit to failed with an error message.
func (s *Store) MarkFailed(ctx context.Context, auditID, message string) error {
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusRunning)).
		SetStatus(audit.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark audit failed: %w", err)
	}
	if n == 0 {
		return ErrTerminalState
	}
	return nil
}

// MarkCancelled moves a running audit to cancelled.
func (s *Store) MarkCancelled(ctx context.Context, auditID string) error {
	n, err := s.client.Audit.Update().
		Where(audit.ID(auditID), audit.StatusEQ(audit.StatusRunning)).
		SetStatus(audit.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark audit cancelled: %w", err)
	}
	if n == 0 {
		return ErrTerminalState
	}
	return nil
}
