package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/api/metrics"
	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

// AuditHandler handles HTTP requests for sales audits.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Create records a new audit.
//
// @Summary      Record a sales audit
// @Tags         audits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAuditRequest  true  "Audit payload"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /audits [post]
func (h *AuditHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createAuditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateAuditPayload(c, domain.AuditType(req.Type), req.Data); err != nil {
		return err
	}

	audit, err := h.service.Create(c.Request().Context(), ports.CreateAuditInput{
		UserID:  user.ID,
		Type:    domain.AuditType(req.Type),
		Data:    req.Data,
		Summary: req.Summary,
	})
	if err != nil {
		return err
	}

	metrics.AuditsCreatedTotal.WithLabelValues(req.Type).Inc()
	return respond(c, http.StatusCreated, audit, "Audit saved successfully")
}

// List returns the caller's most recent audits, newest first.
//
// @Summary      List recent audits
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]any
// @Router       /audits [get]
func (h *AuditHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	audits, err := h.service.ListRecent(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, audits, "")
}

// Get returns a single audit owned by the caller.
//
// @Summary      Get an audit by id
// @Tags         audits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Audit id"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /audits/{id} [get]
func (h *AuditHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	audit, err := h.service.GetByID(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, audit, "")
}

// validateAuditPayload decodes the raw payload into the shape for its
// archetype and validates the required fields. The raw payload itself is
// what gets stored; this only gates malformed submissions.
func validateAuditPayload(c echo.Context, auditType domain.AuditType, data json.RawMessage) error {
	var payload any
	switch auditType {
	case domain.AuditTypeDealer:
		payload = &dealerAuditPayload{}
	case domain.AuditTypeHOA:
		payload = &hoaAuditPayload{}
	case domain.AuditTypeIndustrial:
		payload = &industrialAuditPayload{}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "type must be one of: Dealer HOA Industrial")
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "data must be a JSON object")
	}
	if err := c.Validate(payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
