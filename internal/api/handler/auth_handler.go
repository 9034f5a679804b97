package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aquapure/sales-portal/internal/api/metrics"
	"github.com/aquapure/sales-portal/internal/core/domain"
	"github.com/aquapure/sales-portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Name string `json:"name" validate:"required"`
	Team string `json:"team" validate:"required"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login resolves a (name, team) pair to an agent and issues a token.
//
// @Summary      Log in with a name and team
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Agent identity"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Name, req.Team)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(boolLabel(result.Created)).Inc()

	return respond(c, http.StatusOK, loginResponse{User: result.User, Token: result.Token}, "Login successful")
}

// Profile returns the calling agent's profile.
//
// @Summary      Get the current profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  map[string]any
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, profile, "")
}

// UpdateProfile overwrites the calling agent's name and team.
//
// @Summary      Update the current profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      loginRequest  true  "New name and team"
// @Success      200   {object}  apiResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.authService.UpdateProfile(c.Request().Context(), user.ID, req.Name, req.Team)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, profile, "Profile updated successfully")
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy and nothing is invalidated server-side.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  logoutResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "Logout successful"})
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
