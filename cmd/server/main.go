// Package main is the entry point for the booking configuration service.
//
//	@title						Booking Configuration API
//	@version					1.0.0
//	@description				A booking configuration service that walks a selected flight through passenger details, seat, meal, and baggage selection, and submits the finished booking.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/booking-configuration-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/booking-configuration-service/docs"

	// Application layers
	"github.com/flight-booking/booking-configuration-service/internal/adapter/bookingapi"
	bookinghttp "github.com/flight-booking/booking-configuration-service/internal/adapter/http"
	"github.com/flight-booking/booking-configuration-service/internal/adapter/http/middleware"
	"github.com/flight-booking/booking-configuration-service/internal/config"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/logger"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/session"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/booking-configuration-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger configures the service logger based on config.
func setupLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format

	log := logger.New(logCfg)
	logger.SetGlobal(log)
	return log
}

// setupRoutes wires the application layers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	// Session-backed workflow state
	sessions := session.NewMemoryStore(cfg.Session.TTL, timeutil.NewRealClock())

	// Booking-creation client
	creator := bookingapi.NewClient(bookingapi.Config{
		BaseURL:     cfg.BookingAPI.BaseURL,
		Timeout:     cfg.BookingAPI.Timeout,
		MaxAttempts: cfg.BookingAPI.MaxAttempts,
	}, log)

	// Workflow use case and handler
	workflow := usecase.NewBookingWorkflowUseCase(sessions, creator, nil)
	handler := bookinghttp.NewBookingHandler(workflow)

	bookinghttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
