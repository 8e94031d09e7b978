// Package http provides the HTTP handler layer for the booking
// configuration API. It handles request parsing, validation, response
// formatting, and error mapping.
package http

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flight-booking/booking-configuration-service/internal/adapter/http/response"
	"github.com/flight-booking/booking-configuration-service/internal/domain"
	"github.com/flight-booking/booking-configuration-service/internal/usecase"
)

// BookingHandler handles HTTP requests for the booking workflow endpoints.
type BookingHandler struct {
	useCase usecase.BookingWorkflowUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingWorkflowUseCase) *BookingHandler {
	return &BookingHandler{
		useCase: uc,
	}
}

// StartSession handles POST /api/v1/sessions
//
// @Summary Start a booking session
// @Description Opens a booking session for a selected flight and seeds the passenger counts
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Flight snapshot and search criteria"
// @Success 201 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/sessions [post]
func (h *BookingHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.Start(c.Request().Context(), ToDomainFlight(&req.Flight), ToDomainCriteria(&req.Criteria))
	if err != nil {
		if errors.Is(err, domain.ErrFlightRequired) {
			return response.BadRequest(c, err.Error())
		}
		return h.handleError(c, err)
	}

	return response.SessionCreated(c, ToStateDTO(st))
}

// GetState handles GET /api/v1/sessions/:sessionId
//
// @Summary Get workflow state
// @Description Returns the full workflow state with derived stages, gates, and pricing
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} StateDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId} [get]
func (h *BookingHandler) GetState(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// AdjustPassengerCount handles POST /api/v1/sessions/:sessionId/passengers/count
//
// @Summary Adjust a passenger count
// @Description Steps a passenger type count up or down; boundary steps are silently inert
// @Tags passengers
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body AdjustCountRequest true "Type and stepper direction"
// @Success 200 {object} CountChangeDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/passengers/count [post]
func (h *BookingHandler) AdjustPassengerCount(c echo.Context) error {
	var req AdjustCountRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, dropped, err := h.useCase.AdjustPassengerCount(c.Request().Context(), c.Param("sessionId"), req.PassengerType(), req.Delta())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SessionState(c, &CountChangeDTO{
		StateDTO:       *ToStateDTO(st),
		DroppedRecords: dropped,
	})
}

// SetPassengerRecord handles PUT /api/v1/sessions/:sessionId/passengers/:index
//
// @Summary Save a passenger record
// @Description Stores the identity details for one passenger slot
// @Tags passengers
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param index path int true "Passenger slot index"
// @Param request body PassengerRecordRequest true "Passenger identity details"
// @Success 200 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/passengers/{index} [put]
func (h *BookingHandler) SetPassengerRecord(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "passenger index must be a number")
	}

	var req PassengerRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.SetPassengerRecord(c.Request().Context(), c.Param("sessionId"), index, req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// SetContact handles PUT /api/v1/sessions/:sessionId/contact
//
// @Summary Save the contact record
// @Description Stores the booking's point of contact; partial saves are allowed
// @Tags contact
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body ContactRequest true "Contact details"
// @Success 200 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/contact [put]
func (h *BookingHandler) SetContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.SetContact(c.Request().Context(), c.Param("sessionId"), req.ToDomain())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// GetSeatMap handles GET /api/v1/sessions/:sessionId/seats
//
// @Summary Get the seat map
// @Description Returns the cabin seat map with occupancy and the session's selection
// @Tags seats
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SeatMapDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/seats [get]
func (h *BookingHandler) GetSeatMap(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToSeatMapDTO(st))
}

// ToggleSeat handles POST /api/v1/sessions/:sessionId/seats/toggle
//
// @Summary Toggle a seat
// @Description Flips a seat's selection; occupied seats and over-capacity selections are silently refused
// @Tags seats
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body ToggleSeatRequest true "Seat identifier"
// @Success 200 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Unknown seat"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/seats/toggle [post]
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	var req ToggleSeatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.ToggleSeat(c.Request().Context(), c.Param("sessionId"), req.SeatID)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// GetMeals handles GET /api/v1/sessions/:sessionId/meals
//
// @Summary Get the meal catalog
// @Description Returns the menu with the session's selected quantities
// @Tags meals
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} MealCatalogDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/meals [get]
func (h *BookingHandler) GetMeals(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToMealCatalogDTO(st))
}

// AdjustMeal handles POST /api/v1/sessions/:sessionId/meals
//
// @Summary Adjust a meal quantity
// @Description Steps a menu item quantity up or down; catalog caps are silently enforced
// @Tags meals
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body AdjustMealRequest true "Item and stepper direction"
// @Success 200 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Unknown item"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/meals [post]
func (h *BookingHandler) AdjustMeal(c echo.Context) error {
	var req AdjustMealRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.AdjustMeal(c.Request().Context(), c.Param("sessionId"), req.ItemID, req.Delta())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// GetBaggageOptions handles GET /api/v1/sessions/:sessionId/baggage
//
// @Summary Get the baggage options
// @Description Returns the tier table with the session's per-passenger assignments
// @Tags baggage
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} BaggageOptionsDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/baggage [get]
func (h *BookingHandler) GetBaggageOptions(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToBaggageOptionsDTO(st))
}

// SetBaggage handles PUT /api/v1/sessions/:sessionId/baggage/:index
//
// @Summary Assign a baggage tier
// @Description Assigns a baggage allowance tier to one passenger slot
// @Tags baggage
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param index path int true "Passenger slot index"
// @Param request body SetBaggageRequest true "Baggage tier"
// @Success 200 {object} StateDTO
// @Failure 400 {object} response.ErrorDetail "Unknown tier or index"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/baggage/{index} [put]
func (h *BookingHandler) SetBaggage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "passenger index must be a number")
	}

	var req SetBaggageRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	st, err := h.useCase.SetBaggage(c.Request().Context(), c.Param("sessionId"), index, domain.BaggageOptionID(req.OptionID))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToStateDTO(st))
}

// GetPricing handles GET /api/v1/sessions/:sessionId/pricing
//
// @Summary Get the pricing breakdown
// @Description Returns the itemized cost of the configured booking
// @Tags pricing
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} PricingDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/pricing [get]
func (h *BookingHandler) GetPricing(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	pricing := toPricingDTO(st.Pricing, st.Flight.Price.Currency)
	return response.SessionState(c, &pricing)
}

// GetStages handles GET /api/v1/sessions/:sessionId/stages
//
// @Summary Get the stage statuses and gates
// @Description Returns the derived per-stage completion statuses and both gate results
// @Tags stages
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} StagesDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId}/stages [get]
func (h *BookingHandler) GetStages(c echo.Context) error {
	st, err := h.useCase.State(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	stages := toStagesDTO(st)
	return response.SessionState(c, &stages)
}

// Submit handles POST /api/v1/sessions/:sessionId/submit
//
// @Summary Submit the booking
// @Description Builds the final booking payload and hands it to the booking-creation API
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SubmitResponseDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "A gate is closed"
// @Failure 502 {object} response.ErrorDetail "Submission failed; state preserved"
// @Router /api/v1/sessions/{sessionId}/submit [post]
func (h *BookingHandler) Submit(c echo.Context) error {
	result, err := h.useCase.Submit(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SessionState(c, ToSubmitResponseDTO(result))
}

// Abandon handles DELETE /api/v1/sessions/:sessionId
//
// @Summary Abandon the session
// @Description Discards the session and all its workflow state
// @Tags sessions
// @Param sessionId path string true "Session ID"
// @Success 204 "Session discarded"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{sessionId} [delete]
func (h *BookingHandler) Abandon(c echo.Context) error {
	if err := h.useCase.Abandon(c.Request().Context(), c.Param("sessionId")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BookingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BookingHandler) handleError(c echo.Context, err error) error {
	if domain.IsSessionNotFound(err) || errors.Is(err, domain.ErrSessionExpired) {
		return response.SessionNotFound(c)
	}

	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	var gateErr *domain.GateClosedError
	if errors.As(err, &gateErr) {
		return response.GateClosed(c, gateErr.Reason)
	}

	if domain.IsSubmissionFailed(err) {
		return response.SubmissionFailed(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *BookingHandler) Health(c echo.Context) error {
	return response.Health(c)
}
