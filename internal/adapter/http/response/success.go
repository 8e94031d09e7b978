// Package response provides standardized HTTP response builders for the booking configuration API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SessionState writes a 200 OK response with the workflow state.
func SessionState(c echo.Context, state interface{}) error {
	return c.JSON(http.StatusOK, state)
}

// SessionCreated writes a 201 Created response with the new session state.
func SessionCreated(c echo.Context, state interface{}) error {
	return c.JSON(http.StatusCreated, state)
}
