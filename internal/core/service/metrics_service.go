package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// MetricsService implements the weekly scorecard.
type MetricsService struct {
	repo   ports.MetricsRepository
	logger zerolog.Logger
}

func NewMetricsService(repo ports.MetricsRepository, logger zerolog.Logger) *MetricsService {
	return &MetricsService{repo: repo, logger: logger}
}

// GetWeekly returns the user's record, creating an all-zero one on first
// access.
func (s *MetricsService) GetWeekly(ctx context.Context, userID string) (*domain.WeeklyMetrics, error) {
	return s.ensure(ctx, userID)
}

// UpdateOne overwrites exactly the named counter with an absolute value and
// returns the full updated record. Validation happens before any storage
// access so a rejected request mutates nothing.
func (s *MetricsService) UpdateOne(ctx context.Context, userID string, key domain.MetricKey, value int) (*domain.WeeklyMetrics, error) {
	if !key.Valid() {
		return nil, domain.ErrInvalidMetricKey
	}
	if value < 0 {
		return nil, domain.ErrNegativeMetricValue
	}

	if _, err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateCounter(ctx, userID, key, value)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("metric_key", string(key)).Msg("failed to update metric")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("metric_key", string(key)).Int("value", value).Msg("metric updated")
	return updated, nil
}

// ensure fetches the user's record, creating it with zeroed counters when
// absent.
func (s *MetricsService) ensure(ctx context.Context, userID string) (*domain.WeeklyMetrics, error) {
	metrics, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return metrics, nil
	}
	if !errors.Is(err, domain.ErrMetricsNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.WeeklyMetrics{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create weekly metrics")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("weekly metrics initialized")
	return created, nil
}
