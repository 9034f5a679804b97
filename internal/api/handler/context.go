package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/api/middleware"
	"github.com/aquapure/sales-portal/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. A missing
// user means the middleware did not run on this route; treat it as an
// authentication failure rather than panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return user, nil
}
