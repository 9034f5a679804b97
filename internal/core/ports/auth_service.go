package ports

import (
	"context"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	User  *domain.User
	Token string
	// Created is true when this login registered the user row.
	Created bool
}

// AuthService defines identity resolution and token verification.
//
// Login is a find-or-create on the (name, team) pair with no credential
// check; frictionless access is the product requirement for this internal
// tool. The interface boundary exists so a real credential check could be
// substituted without touching callers.
type AuthService interface {
	Login(ctx context.Context, name, team string) (*LoginResult, error)
	// Verify validates a bearer token and resolves its subject to a live
	// user row. Any failure (bad signature, expired, unknown subject) is an
	// authentication failure; callers must not distinguish the causes.
	Verify(ctx context.Context, token string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, team string) (*domain.User, error)
}
