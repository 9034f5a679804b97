package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// UserRepository implements ports.AuthRepository on PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByNameTeam(ctx context.Context, name, team string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Where("name = ? AND team = ?", name, team).
		Order("created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by name/team: %w", err)
	}
	return userToDomain(&m), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return userToDomain(&m), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := userModel{
		Name:      user.Name,
		Team:      user.Team,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return userToDomain(&m), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := userModel{
		ID:        user.ID,
		Name:      user.Name,
		Team:      user.Team,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":       m.Name,
			"team":       m.Team,
			"email":      m.Email,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, m.ID)
}

func userToDomain(m *userModel) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Team:      m.Team,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
