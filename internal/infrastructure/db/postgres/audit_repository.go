package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository on PostgreSQL.
// Audits are insert-only; no update or delete statement exists here.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, audit *domain.Audit) (*domain.Audit, error) {
	m := auditModel{
		UserID:    audit.UserID,
		Type:      string(audit.Type),
		Data:      datatypes.JSON(audit.Data),
		Summary:   audit.Summary,
		CreatedAt: audit.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert audit: %w", err)
	}
	return auditToDomain(&m), nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Audit, error) {
	var models []auditModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}

	audits := make([]*domain.Audit, 0, len(models))
	for i := range models {
		audits = append(audits, auditToDomain(&models[i]))
	}
	return audits, nil
}

func (r *AuditRepository) FindByID(ctx context.Context, userID, auditID string) (*domain.Audit, error) {
	var m auditModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", auditID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuditNotFound
		}
		return nil, fmt.Errorf("find audit: %w", err)
	}
	return auditToDomain(&m), nil
}

func auditToDomain(m *auditModel) *domain.Audit {
	return &domain.Audit{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      domain.AuditType(m.Type),
		Data:      json.RawMessage(m.Data),
		Summary:   m.Summary,
		CreatedAt: m.CreatedAt,
	}
}
