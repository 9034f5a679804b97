package ports

import (
	"context"
	"encoding/json"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// CreateAuditInput carries all data needed to record a new audit.
// Data is the archetype payload exactly as the client sent it, derived
// figures included; the service persists it verbatim.
type CreateAuditInput struct {
	UserID  string
	Type    domain.AuditType
	Data    json.RawMessage
	Summary string
}

// AuditService defines use-case operations for audits.
type AuditService interface {
	Create(ctx context.Context, input CreateAuditInput) (*domain.Audit, error)
	// ListRecent returns the caller's most recent audits, capped, newest
	// first. An empty slice is not an error.
	ListRecent(ctx context.Context, userID string) ([]*domain.Audit, error)
	GetByID(ctx context.Context, userID, auditID string) (*domain.Audit, error)
}
