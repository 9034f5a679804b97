package handler

import "github.com/labstack/echo/v4"

// apiResponse is the canonical success envelope: {data, success, message?}.
type apiResponse struct {
	Data    any    `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// respond writes a success envelope with the given status.
func respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, apiResponse{Data: data, Success: true, Message: message})
}
