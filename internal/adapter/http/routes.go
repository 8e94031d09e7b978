// Package http provides the HTTP handler layer for the booking
// configuration API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all booking configuration API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *BookingHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Sessions group
	sessions := api.Group("/sessions")
	sessions.POST("", h.StartSession)
	sessions.GET("/:sessionId", h.GetState)
	sessions.DELETE("/:sessionId", h.Abandon)

	sessions.POST("/:sessionId/passengers/count", h.AdjustPassengerCount)
	sessions.PUT("/:sessionId/passengers/:index", h.SetPassengerRecord)
	sessions.PUT("/:sessionId/contact", h.SetContact)

	sessions.GET("/:sessionId/seats", h.GetSeatMap)
	sessions.POST("/:sessionId/seats/toggle", h.ToggleSeat)
	sessions.GET("/:sessionId/meals", h.GetMeals)
	sessions.POST("/:sessionId/meals", h.AdjustMeal)
	sessions.GET("/:sessionId/baggage", h.GetBaggageOptions)
	sessions.PUT("/:sessionId/baggage/:index", h.SetBaggage)

	sessions.GET("/:sessionId/pricing", h.GetPricing)
	sessions.GET("/:sessionId/stages", h.GetStages)
	sessions.POST("/:sessionId/submit", h.Submit)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *BookingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	sessions := api.Group("/sessions")
	sessions.POST("", h.StartSession)
	sessions.GET("/:sessionId", h.GetState)
	sessions.DELETE("/:sessionId", h.Abandon)

	sessions.POST("/:sessionId/passengers/count", h.AdjustPassengerCount)
	sessions.PUT("/:sessionId/passengers/:index", h.SetPassengerRecord)
	sessions.PUT("/:sessionId/contact", h.SetContact)

	sessions.GET("/:sessionId/seats", h.GetSeatMap)
	sessions.POST("/:sessionId/seats/toggle", h.ToggleSeat)
	sessions.GET("/:sessionId/meals", h.GetMeals)
	sessions.POST("/:sessionId/meals", h.AdjustMeal)
	sessions.GET("/:sessionId/baggage", h.GetBaggageOptions)
	sessions.PUT("/:sessionId/baggage/:index", h.SetBaggage)

	sessions.GET("/:sessionId/pricing", h.GetPricing)
	sessions.GET("/:sessionId/stages", h.GetStages)
	sessions.POST("/:sessionId/submit", h.Submit)
}
