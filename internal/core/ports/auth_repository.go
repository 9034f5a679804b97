package ports

import (
	"context"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// AuthRepository defines persistence operations for portal users.
type AuthRepository interface {
	// FindByNameTeam returns the first user matching (name, team) by equality.
	// Returns domain.ErrUserNotFound when no row matches.
	FindByNameTeam(ctx context.Context, name, team string) (*domain.User, error)
	// FindByID resolves a user id to a live row.
	// Returns domain.ErrUserNotFound when the row no longer exists.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
