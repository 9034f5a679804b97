package ports

import (
	"context"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// MetricsService defines use-case operations for the weekly scorecard.
type MetricsService interface {
	// GetWeekly returns the user's record, lazily creating an all-zero one
	// on first access. Idempotent afterwards.
	GetWeekly(ctx context.Context, userID string) (*domain.WeeklyMetrics, error)
	// UpdateOne overwrites a single named counter with an absolute value.
	// The other five counters are left untouched.
	UpdateOne(ctx context.Context, userID string, key domain.MetricKey, value int) (*domain.WeeklyMetrics, error)
}
