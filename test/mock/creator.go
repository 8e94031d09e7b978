// Package mock provides test doubles for the booking configuration system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
)

// Creator is a configurable mock implementation of domain.BookingCreator.
// It supports configurable delays, errors, and results for testing
// submission scenarios including timeouts and rejections.
type Creator struct {
	result    *domain.BookingResult
	err       error
	delay     time.Duration
	callCount int
	lastReq   *domain.BookingRequest
	mu        sync.Mutex
}

// NewCreator creates a new mock creator that accepts every booking.
// The creator is configured using the builder pattern methods.
func NewCreator() *Creator {
	return &Creator{
		result: &domain.BookingResult{
			Success:          true,
			BookingReference: "BK-TEST-001",
		},
	}
}

// WithResult configures the creator to return the given result.
func (c *Creator) WithResult(result *domain.BookingResult) *Creator {
	c.result = result
	return c
}

// WithRejection configures the creator to reject bookings with the message.
func (c *Creator) WithRejection(message string) *Creator {
	c.result = &domain.BookingResult{Success: false, Message: message}
	return c
}

// WithError configures the creator to return the given error.
func (c *Creator) WithError(err error) *Creator {
	c.err = err
	return c
}

// WithDelay configures the creator to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (c *Creator) WithDelay(d time.Duration) *Creator {
	c.delay = d
	return c
}

// Create implements domain.BookingCreator.Create.
// It respects context cancellation, applies the configured delay,
// and returns the configured result or error.
func (c *Creator) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	c.mu.Lock()
	c.callCount++
	c.lastReq = req
	c.mu.Unlock()

	// Apply delay if configured
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.err != nil {
		return nil, c.err
	}

	return c.result, nil
}

// CallCount returns the number of times Create was called.
func (c *Creator) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// LastRequest returns the most recent booking request, or nil.
// This is useful for asserting on the submitted payload.
func (c *Creator) LastRequest() *domain.BookingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastReq
}

// Reset clears the call count and recorded request.
func (c *Creator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callCount = 0
	c.lastReq = nil
}

// Ensure Creator implements domain.BookingCreator at compile time.
var _ domain.BookingCreator = (*Creator)(nil)
