// Package bookingapi provides the HTTP client for the downstream
// booking-creation service. It implements domain.BookingCreator with
// bounded retries on transport-level failures only.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/logger"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/retry"
)

// createPath is the booking-creation endpoint, relative to the base URL.
const createPath = "/api/v1/bookings"

// Config holds the client configuration options.
type Config struct {
	// BaseURL is the base URL of the booking-creation service.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int
}

// Client is the booking-creation API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	log        *logger.Logger
}

// NewClient creates a booking-creation client. A nil log falls back to a
// no-op logger.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	retryCfg := retry.SubmissionConfig.
		WithMaxAttempts(cfg.MaxAttempts).
		WithRetryIf(isRetryable)

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryCfg:   retryCfg,
		log:        log,
	}
}

// createResponse is the wire shape of the booking-creation response.
type createResponse struct {
	Success          bool   `json:"success"`
	BookingReference string `json:"bookingReference"`
	Message          string `json:"message"`
}

// Create implements domain.BookingCreator. Transport failures and 5xx
// responses are retried with backoff; 4xx rejections are returned to the
// caller immediately.
func (c *Client) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewSubmissionError(fmt.Errorf("failed to encode booking request: %w", err))
	}

	result, err := retry.DoWithResult(ctx, func() (*domain.BookingResult, error) {
		return c.post(ctx, body)
	}, c.retryCfg)
	if err != nil {
		c.log.Error().Err(err).Msg("booking creation failed")
		return nil, err
	}

	c.log.Info().
		Bool("success", result.Success).
		Str("booking_reference", result.BookingReference).
		Msg("booking creation completed")
	return result, nil
}

// post performs a single booking-creation attempt.
func (c *Client) post(ctx context.Context, body []byte) (*domain.BookingResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewSubmissionError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Network-level failure: worth retrying.
		return nil, domain.NewRetryableSubmissionError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewRetryableSubmissionError(fmt.Errorf("failed to read response: %w", err))
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, domain.NewRetryableSubmissionError(fmt.Errorf("booking API returned status %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		return nil, domain.NewSubmissionError(fmt.Errorf("booking API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))))
	}

	var wire createResponse
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, domain.NewSubmissionError(fmt.Errorf("failed to decode response: %w", err))
	}

	return &domain.BookingResult{
		Success:          wire.Success,
		BookingReference: wire.BookingReference,
		Message:          wire.Message,
	}, nil
}

// isRetryable reports whether a submission error may be retried.
func isRetryable(err error) bool {
	var subErr *domain.SubmissionError
	if errors.As(err, &subErr) {
		return subErr.Retryable
	}
	return false
}

// Ensure Client implements BookingCreator at compile time.
var _ domain.BookingCreator = (*Client)(nil)
