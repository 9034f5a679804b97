package ports

import (
	"context"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// MetricsRepository defines persistence operations for weekly metrics.
type MetricsRepository interface {
	// FindByUser returns domain.ErrMetricsNotFound when the user has no
	// record yet.
	FindByUser(ctx context.Context, userID string) (*domain.WeeklyMetrics, error)
	Create(ctx context.Context, metrics *domain.WeeklyMetrics) (*domain.WeeklyMetrics, error)
	// UpdateCounter overwrites exactly the named counter on the user's
	// record and returns the full updated record.
	UpdateCounter(ctx context.Context, userID string, key domain.MetricKey, value int) (*domain.WeeklyMetrics, error)
}
