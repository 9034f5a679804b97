package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// listRecentLimit caps how many audits a listing returns.
const listRecentLimit = 10

// AuditService implements recording and retrieval of sales audits.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Create inserts a new immutable audit stamped with the current time.
// The payload is persisted exactly as received; only the type tag and
// summary are checked here, the per-archetype shape is the boundary's job.
func (s *AuditService) Create(ctx context.Context, input ports.CreateAuditInput) (*domain.Audit, error) {
	if !input.Type.Valid() || input.Summary == "" || len(input.Data) == 0 {
		return nil, domain.ErrInvalidAudit
	}

	audit := &domain.Audit{
		UserID:    input.UserID,
		Type:      input.Type,
		Data:      input.Data,
		Summary:   input.Summary,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, audit)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Str("type", string(input.Type)).Msg("failed to create audit")
		return nil, err
	}

	s.logger.Info().Str("audit_id", created.ID).Str("user_id", input.UserID).Str("type", string(input.Type)).Msg("audit recorded")
	return created, nil
}

// ListRecent returns the caller's newest audits, capped at listRecentLimit.
func (s *AuditService) ListRecent(ctx context.Context, userID string) ([]*domain.Audit, error) {
	audits, err := s.repo.ListRecent(ctx, userID, listRecentLimit)
	if err != nil {
		return nil, err
	}
	if audits == nil {
		audits = []*domain.Audit{}
	}
	return audits, nil
}

// GetByID retrieves one audit scoped to the calling user. Cross-user lookups
// report not-found, never a distinct forbidden.
func (s *AuditService) GetByID(ctx context.Context, userID, auditID string) (*domain.Audit, error) {
	return s.repo.FindByID(ctx, userID, auditID)
}
