package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// metricColumns maps API metric keys to their storage columns. Updates go
// through this map so an unknown key can never reach SQL.
var metricColumns = map[domain.MetricKey]string{
	domain.MetricDealerAudits:       "dealer_audits",
	domain.MetricHOASurveys:         "hoa_surveys",
	domain.MetricIndustrialMeetings: "industrial_meetings",
	domain.MetricDealerConversions:  "dealer_conversions",
	domain.MetricNewRefillStations:  "new_refill_stations",
	domain.MetricBulkContracts:      "bulk_contracts",
}

// MetricsRepository implements ports.MetricsRepository on PostgreSQL.
type MetricsRepository struct {
	db *gorm.DB
}

func NewMetricsRepository(db *gorm.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

func (r *MetricsRepository) FindByUser(ctx context.Context, userID string) (*domain.WeeklyMetrics, error) {
	var m weeklyMetricsModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMetricsNotFound
		}
		return nil, fmt.Errorf("find weekly metrics: %w", err)
	}
	return metricsToDomain(&m), nil
}

func (r *MetricsRepository) Create(ctx context.Context, metrics *domain.WeeklyMetrics) (*domain.WeeklyMetrics, error) {
	m := weeklyMetricsModel{
		UserID:             metrics.UserID,
		DealerAudits:       metrics.DealerAudits,
		HoaSurveys:         metrics.HOASurveys,
		IndustrialMeetings: metrics.IndustrialMeetings,
		DealerConversions:  metrics.DealerConversions,
		NewRefillStations:  metrics.NewRefillStations,
		BulkContracts:      metrics.BulkContracts,
		CreatedAt:          metrics.CreatedAt,
		UpdatedAt:          metrics.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert weekly metrics: %w", err)
	}
	return metricsToDomain(&m), nil
}

// UpdateCounter overwrites a single column on the user's row. The write is
// last-writer-wins; there is no version stamp guarding concurrent sessions.
func (r *MetricsRepository) UpdateCounter(ctx context.Context, userID string, key domain.MetricKey, value int) (*domain.WeeklyMetrics, error) {
	column, ok := metricColumns[key]
	if !ok {
		return nil, domain.ErrInvalidMetricKey
	}

	result := r.db.WithContext(ctx).Model(&weeklyMetricsModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			column:       value,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update weekly metrics: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrMetricsNotFound
	}

	return r.FindByUser(ctx, userID)
}

func metricsToDomain(m *weeklyMetricsModel) *domain.WeeklyMetrics {
	return &domain.WeeklyMetrics{
		ID:                 m.ID,
		UserID:             m.UserID,
		DealerAudits:       m.DealerAudits,
		HOASurveys:         m.HoaSurveys,
		IndustrialMeetings: m.IndustrialMeetings,
		DealerConversions:  m.DealerConversions,
		NewRefillStations:  m.NewRefillStations,
		BulkContracts:      m.BulkContracts,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
