package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimetrics "github.com/aquapure/sales-portal/internal/api/metrics"
	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// MetricsHandler handles HTTP requests for the weekly scorecard.
type MetricsHandler struct {
	service ports.MetricsService
}

func NewMetricsHandler(service ports.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

type updateMetricRequest struct {
	MetricKey string `json:"metricKey" validate:"required,oneof=dealerAudits hoaSurveys industrialMeetings dealerConversions newRefillStations bulkContracts"`
	Value     *int   `json:"value"     validate:"required,gte=0"`
}

// GetWeekly returns the caller's six-counter record, creating it on first
// access.
//
// @Summary      Get the weekly scorecard
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]any
// @Router       /metrics/weekly [get]
func (h *MetricsHandler) GetWeekly(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	weekly, err := h.service.GetWeekly(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, weekly, "")
}

// UpdateMetric overwrites a single counter with an absolute value.
//
// @Summary      Update one weekly counter
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateMetricRequest  true  "Counter name and absolute value"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /metrics/weekly [put]
func (h *MetricsHandler) UpdateMetric(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateMetricRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	weekly, err := h.service.UpdateOne(c.Request().Context(), user.ID, domain.MetricKey(req.MetricKey), *req.Value)
	if err != nil {
		return err
	}

	apimetrics.MetricUpdatesTotal.WithLabelValues(req.MetricKey).Inc()
	return respond(c, http.StatusOK, weekly, "Metric updated successfully")
}
