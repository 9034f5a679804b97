package ports

import (
	"context"
	"time"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// PipelineEntry is one recent audit as shown in the business review, with
// the stored derived figure rendered as a display highlight.
type PipelineEntry struct {
	AuditID   string
	Type      domain.AuditType
	Summary   string
	Highlight string
	CreatedAt time.Time
}

// BusinessReview aggregates a user's weekly counters and recent audits.
// It is assembled read-only from stored values; no figure is recomputed.
type BusinessReview struct {
	TotalActivity    int
	TotalConversions int
	Metrics          *domain.WeeklyMetrics
	Pipeline         []PipelineEntry
}

// ReportService builds the business-review report for a user.
type ReportService interface {
	BusinessReview(ctx context.Context, userID string) (*BusinessReview, error)
}
