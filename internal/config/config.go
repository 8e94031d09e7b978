// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	BookingAPI BookingAPIConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port.
	Port int `env:"SERVER_PORT" envDefault:"8080"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SessionConfig holds booking session settings.
type SessionConfig struct {
	// TTL is the idle lifetime of a booking session. Each confirmed stage
	// write slides the window forward.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// BookingAPIConfig holds settings for the downstream booking-creation API.
type BookingAPIConfig struct {
	// BaseURL is the base URL of the booking-creation service.
	BaseURL string `env:"BOOKING_API_URL" envDefault:"http://localhost:9090"`

	// Timeout is the per-request timeout for booking-creation calls.
	Timeout time.Duration `env:"BOOKING_API_TIMEOUT" envDefault:"5s"`

	// MaxAttempts is the maximum number of submission attempts, including
	// the first. Only transport-level failures are retried.
	MaxAttempts int `env:"BOOKING_API_MAX_ATTEMPTS" envDefault:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log output format (json, console).
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// Env is the application environment (development, staging, production).
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load loads configuration from environment variables.
// It first attempts to load a .env file (ignored if not present),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this in main() where configuration errors are fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// validate checks that configuration values are valid.
func (c *Config) validate() error {
	// Validate server port
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	// Validate timeouts are positive
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive, got %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive, got %v", c.Server.WriteTimeout)
	}

	// Validate session TTL
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %v", c.Session.TTL)
	}

	// Validate booking API settings
	if c.BookingAPI.BaseURL == "" {
		return fmt.Errorf("BOOKING_API_URL must not be empty")
	}
	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("BOOKING_API_TIMEOUT must be positive, got %v", c.BookingAPI.Timeout)
	}
	if c.BookingAPI.MaxAttempts < 1 {
		return fmt.Errorf("BOOKING_API_MAX_ATTEMPTS must be at least 1, got %d", c.BookingAPI.MaxAttempts)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of [debug, info, warn, error], got %q", c.Logging.Level)
	}

	// Validate log format
	validLogFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of [json, console], got %q", c.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Env] {
		return fmt.Errorf("APP_ENV must be one of [development, staging, production], got %q", c.App.Env)
	}

	return nil
}

// IsDevelopment returns true if the app is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
