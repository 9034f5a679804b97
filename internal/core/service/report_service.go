package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// ReportService assembles the business-review report from stored values.
// Derived figures come straight out of the audit payloads; nothing is
// recomputed here.
type ReportService struct {
	audits  ports.AuditRepository
	metrics ports.MetricsRepository
	logger  zerolog.Logger
}

func NewReportService(audits ports.AuditRepository, metrics ports.MetricsRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{audits: audits, metrics: metrics, logger: logger}
}

// reportFigures are the payload fields the report surfaces. The payload is
// schema-free; absent fields decode to zero and render as such, matching the
// dashboard's `|| 0` fallbacks.
type reportFigures struct {
	NetProfit         float64 `json:"netProfit"`
	Risk              float64 `json:"risk"`
	Units             float64 `json:"units"`
	DeliveriesPerUnit float64 `json:"deliveriesPerUnit"`
}

// BusinessReview aggregates the caller's weekly counters and recent audits.
// The report is read-only: a user with no metrics record gets zeros without
// one being created.
func (s *ReportService) BusinessReview(ctx context.Context, userID string) (*ports.BusinessReview, error) {
	metrics, err := s.metrics.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrMetricsNotFound) {
			return nil, err
		}
		metrics = &domain.WeeklyMetrics{UserID: userID}
	}

	audits, err := s.audits.ListRecent(ctx, userID, listRecentLimit)
	if err != nil {
		return nil, err
	}

	pipeline := make([]ports.PipelineEntry, 0, len(audits))
	for _, audit := range audits {
		pipeline = append(pipeline, ports.PipelineEntry{
			AuditID:   audit.ID,
			Type:      audit.Type,
			Summary:   audit.Summary,
			Highlight: highlight(audit),
			CreatedAt: audit.CreatedAt,
		})
	}

	return &ports.BusinessReview{
		TotalActivity:    metrics.TotalActivity(),
		TotalConversions: metrics.TotalConversions(),
		Metrics:          metrics,
		Pipeline:         pipeline,
	}, nil
}

// highlight renders the stored derived figure for one pipeline entry.
func highlight(audit *domain.Audit) string {
	var figures reportFigures
	// A payload that does not decode still shows up in the pipeline, just
	// with zeroed figures.
	_ = json.Unmarshal(audit.Data, &figures)

	switch audit.Type {
	case domain.AuditTypeDealer:
		return fmt.Sprintf("Proj. Profit: ₱%.0f", figures.NetProfit)
	case domain.AuditTypeHOA:
		// delivery exposure, not currency
		return fmt.Sprintf("Risk: %.0f entries", figures.Units*figures.DeliveriesPerUnit)
	case domain.AuditTypeIndustrial:
		return fmt.Sprintf("Risk: ₱%.0f", figures.Risk)
	default:
		return "N/A"
	}
}
