package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aquapure/sales-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {message, statusCode, error?}.
type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent JSON envelope above.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{
			Message:    msg,
			StatusCode: code,
			Error:      http.StatusText(code),
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.) and the 400/401
	// errors raised directly by handlers and middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAuditNotFound):
		return http.StatusNotFound, "audit not found"
	case errors.Is(err, domain.ErrUserNotFound):
		// a token whose subject no longer resolves is an auth failure,
		// indistinguishable from any other invalid token
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, domain.ErrInvalidLogin),
		errors.Is(err, domain.ErrInvalidAudit),
		errors.Is(err, domain.ErrInvalidMetricKey),
		errors.Is(err, domain.ErrNegativeMetricValue):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
