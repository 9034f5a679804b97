package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/core/ports"
)

// UserContextKey is where the resolved user is stored on the Echo context.
// Handlers read it back through the same constant.
const UserContextKey = "user"

// Auth validates the bearer token and resolves it to a live user row before
// the request reaches any handler. Every failure mode (missing header, bad
// scheme, malformed or expired token, subject row gone) produces the same
// 401 so nothing about token state leaks.
func Auth(verifier ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
