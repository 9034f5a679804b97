package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/core/ports"
)

// ReportHandler serves the generated business-review report.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type pipelineEntryResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Summary   string    `json:"summary"`
	Highlight string    `json:"highlight"`
	CreatedAt time.Time `json:"createdAt"`
}

type businessReviewResponse struct {
	TotalActivity    int                     `json:"totalActivity"`
	TotalConversions int                     `json:"totalConversions"`
	Metrics          any                     `json:"metrics"`
	Pipeline         []pipelineEntryResponse `json:"pipeline"`
}

// BusinessReview assembles the weekly totals and recent-audit pipeline.
//
// @Summary      Get the business-review report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]any
// @Router       /reports/business-review [get]
func (h *ReportHandler) BusinessReview(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	review, err := h.service.BusinessReview(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	pipeline := make([]pipelineEntryResponse, 0, len(review.Pipeline))
	for _, entry := range review.Pipeline {
		pipeline = append(pipeline, pipelineEntryResponse{
			ID:        entry.AuditID,
			Type:      string(entry.Type),
			Summary:   entry.Summary,
			Highlight: entry.Highlight,
			CreatedAt: entry.CreatedAt,
		})
	}

	return respond(c, http.StatusOK, businessReviewResponse{
		TotalActivity:    review.TotalActivity,
		TotalConversions: review.TotalConversions,
		Metrics:          review.Metrics,
		Pipeline:         pipeline,
	}, "")
}
