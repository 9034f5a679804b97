package ports

import (
	"context"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// AuditRepository defines persistence operations for audits.
// All queries are scoped to the owning user; there is no unscoped access.
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.Audit) (*domain.Audit, error)
	// ListRecent returns at most limit audits for userID, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Audit, error)
	// FindByID returns domain.ErrAuditNotFound when no audit with that id is
	// owned by userID, whether the id never existed or belongs to another user.
	FindByID(ctx context.Context, userID, auditID string) (*domain.Audit, error)
}
