package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// AuthService implements login, token verification and profile management.
//
// Login deliberately performs no credential check: presenting a (name, team)
// pair is sufficient to assume that identity. See ports.AuthService.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// agentClaims are the identity claims embedded in every issued token.
// Subject carries the user id.
type agentClaims struct {
	Name string `json:"name"`
	Team string `json:"team"`
	jwt.RegisteredClaims
}

// Login finds the first user matching (name, team) or creates one, then
// issues a signed token for it.
func (s *AuthService) Login(ctx context.Context, name, team string) (*ports.LoginResult, error) {
	if name == "" || team == "" {
		return nil, domain.ErrInvalidLogin
	}

	created := false
	user, err := s.repo.FindByNameTeam(ctx, name, team)
	switch {
	case err == nil:
		// existing agent
	case errors.Is(err, domain.ErrUserNotFound):
		created = true
		now := time.Now().UTC()
		user, err = s.repo.Create(ctx, &domain.User{
			Name:      name,
			Team:      team,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			s.logger.Error().Err(err).Str("name", name).Str("team", team).Msg("failed to create user on login")
			return nil, err
		}
		s.logger.Info().Str("user_id", user.ID).Str("team", team).Msg("new agent registered on first login")
	default:
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("team", user.Team).Msg("login")
	return &ports.LoginResult{User: user, Token: token, Created: created}, nil
}

// Verify validates the token signature and expiry, then resolves the subject
// to a live user row. All failure modes collapse into ErrUserNotFound so the
// boundary reports a uniform authentication error.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	claims := &agentClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile overwrites the agent's name and team.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, team string) (*domain.User, error) {
	if name == "" || team == "" {
		return nil, domain.ErrInvalidLogin
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Team = team
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update profile")
		return nil, err
	}
	return updated, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := agentClaims{
		Name: user.Name,
		Team: user.Team,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
