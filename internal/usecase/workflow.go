// Package usecase contains the booking workflow orchestration logic.
// It drives the configuration stages over the session store and hands the
// finished payload to the booking-creation adapter.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/session"
)

// WorkflowState is the full view of one booking session: the stored stage
// data plus the derived stage statuses, gates, and pricing. Derived fields
// are recomputed on every read, so they can never drift from the stored
// selections.
type WorkflowState struct {
	// SessionID identifies the booking session
	SessionID string `json:"sessionId"`

	// Flight is the read-only flight context the workflow was started with
	Flight domain.Flight `json:"flight"`

	// Counts is the per-type passenger count breakdown
	Counts domain.PassengerCounts `json:"counts"`

	// Slots is the ordered passenger slot list expanded from the counts
	Slots []domain.PassengerSlot `json:"slots"`

	// Contact is the booking's point of contact, possibly partial
	Contact domain.ContactRecord `json:"contact"`

	// Seats is the sorted list of selected seat IDs
	Seats []string `json:"seats"`

	// Meals maps menu item IDs to selected quantities
	Meals map[string]int `json:"meals"`

	// Baggage is the per-passenger baggage tier assignment
	Baggage []domain.BaggageOptionID `json:"baggage"`

	// Stages is the derived per-stage completion status
	Stages domain.StageStatuses `json:"stages"`

	// GateA is the passenger-details to options gate result
	GateA domain.GateResult `json:"gateA"`

	// GateB is the options to payment gate result
	GateB domain.GateResult `json:"gateB"`

	// Pricing is the derived itemized cost breakdown
	Pricing domain.PricingBreakdown `json:"pricing"`
}

// derive recomputes the stage statuses, gates, and pricing from the stored
// stage data.
func (st *WorkflowState) derive() {
	seats := domain.NewSeatSelectionFrom(st.Seats)
	meals := domain.NewMealSelectionFrom(st.Meals)
	baggage := domain.NewBaggageSelectionFrom(st.Baggage)
	total := st.Counts.Total()

	st.Stages = domain.StageStatuses{
		domain.StagePassengers: domain.PassengerStageStatus(st.Slots),
		domain.StageContact:    domain.ContactStageStatus(st.Contact),
		domain.StageSeats:      domain.SeatStageStatus(seats, total),
		domain.StageMeals:      domain.MealStageStatus(meals),
		domain.StageBaggage:    domain.BaggageStageStatus(),
	}
	st.GateA = domain.EvaluateGateA(st.Stages)
	st.GateB = domain.EvaluateGateB(st.Stages)
	st.Pricing = domain.ComputePricing(st.Flight.Price.Amount, total, meals, baggage)
}

// BookingWorkflowUseCase defines the operations of the booking
// configuration workflow. Every mutation returns the refreshed state;
// silent no-ops (boundary increments, refused toggles) return the state
// unchanged rather than erroring.
type BookingWorkflowUseCase interface {
	// Start opens a new booking session for the given flight. The search
	// criteria seed the initial passenger counts.
	Start(ctx context.Context, flight domain.Flight, criteria domain.SearchCriteria) (*WorkflowState, error)

	// State returns the current workflow state for the session.
	State(ctx context.Context, sessionID string) (*WorkflowState, error)

	// AdjustPassengerCount applies delta single-step changes to the count
	// for the given type, stopping silently at the limits. It additionally
	// returns the number of entered records dropped by a shrink.
	AdjustPassengerCount(ctx context.Context, sessionID string, t domain.PassengerType, delta int) (*WorkflowState, int, error)

	// SetPassengerRecord stores the identity record for the slot at index.
	SetPassengerRecord(ctx context.Context, sessionID string, index int, record domain.PassengerRecord) (*WorkflowState, error)

	// SetContact stores the contact record. Partial records are stored
	// as-is; completeness is derived, not enforced at write time.
	SetContact(ctx context.Context, sessionID string, contact domain.ContactRecord) (*WorkflowState, error)

	// ToggleSeat flips the selection state of a seat.
	ToggleSeat(ctx context.Context, sessionID, seatID string) (*WorkflowState, error)

	// AdjustMeal changes the quantity of a menu item by delta.
	AdjustMeal(ctx context.Context, sessionID, itemID string, delta int) (*WorkflowState, error)

	// SetBaggage assigns a baggage tier to the passenger at index.
	SetBaggage(ctx context.Context, sessionID string, index int, tier domain.BaggageOptionID) (*WorkflowState, error)

	// Submit evaluates both gates, builds the booking payload, and hands
	// it to the booking creator. The session is cleared only on success;
	// any failure leaves the full state in place for a retry.
	Submit(ctx context.Context, sessionID string) (*domain.BookingResult, error)

	// Abandon discards the session and all its state.
	Abandon(ctx context.Context, sessionID string) error
}

// bookingWorkflowUseCase implements BookingWorkflowUseCase over the
// session store and the booking-creation adapter.
type bookingWorkflowUseCase struct {
	state        stateStore
	creator      domain.BookingCreator
	newSessionID func() string
}

// Config contains configuration options for the use case.
type Config struct {
	// NewSessionID overrides session ID generation, for tests.
	NewSessionID func() string
}

// NewBookingWorkflowUseCase creates a new BookingWorkflowUseCase backed by
// the given session store and booking creator. If config is nil, session
// IDs are random UUIDs.
func NewBookingWorkflowUseCase(sessions session.Store, creator domain.BookingCreator, config *Config) BookingWorkflowUseCase {
	newID := uuid.NewString
	if config != nil && config.NewSessionID != nil {
		newID = config.NewSessionID
	}

	return &bookingWorkflowUseCase{
		state:        stateStore{sessions: sessions},
		creator:      creator,
		newSessionID: newID,
	}
}

// Start implements BookingWorkflowUseCase.Start.
func (uc *bookingWorkflowUseCase) Start(ctx context.Context, flight domain.Flight, criteria domain.SearchCriteria) (*WorkflowState, error) {
	if flight.IsZero() {
		return nil, domain.ErrFlightRequired
	}

	sessionID := uc.newSessionID()
	uc.state.sessions.Create(sessionID)

	counts := criteria.InitialCounts()
	if err := uc.state.save(sessionID, keyFlight, flightState{Flight: flight}); err != nil {
		return nil, err
	}
	if err := uc.state.save(sessionID, keyPassengers, passengerState{
		Counts: counts,
		Slots:  domain.RegenerateSlots(counts, nil),
	}); err != nil {
		return nil, err
	}
	if err := uc.state.save(sessionID, keyBaggage, domain.NewBaggageSelection(counts.Total()).Assignments()); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// State implements BookingWorkflowUseCase.State.
func (uc *bookingWorkflowUseCase) State(ctx context.Context, sessionID string) (*WorkflowState, error) {
	return uc.state.loadState(sessionID)
}

// AdjustPassengerCount implements BookingWorkflowUseCase.AdjustPassengerCount.
func (uc *bookingWorkflowUseCase) AdjustPassengerCount(ctx context.Context, sessionID string, t domain.PassengerType, delta int) (*WorkflowState, int, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, 0, err
	}

	counts := st.Counts
	changed := false
	for i := 0; i < abs(delta); i++ {
		var ok bool
		if delta > 0 {
			ok = counts.Increment(t)
		} else {
			ok = counts.Decrement(t)
		}
		if !ok {
			break
		}
		changed = true
	}

	if !changed {
		// Boundary no-op: the state is returned untouched.
		return st, 0, nil
	}

	// Shrinks drop trailing records; count how many entered records go.
	dropped := 0
	for i := counts.Total(); i < len(st.Slots); i++ {
		if st.Slots[i].Record != nil {
			dropped++
		}
	}

	slots := domain.RegenerateSlots(counts, st.Slots)
	if err := uc.state.save(sessionID, keyPassengers, passengerState{Counts: counts, Slots: slots}); err != nil {
		return nil, 0, err
	}

	// Baggage follows the passenger count; assignments are preserved by
	// position. Seats are left untouched: an over-capacity selection
	// simply keeps the seats gate closed until the user deselects.
	baggage := domain.NewBaggageSelectionFrom(st.Baggage)
	baggage.Resize(counts.Total())
	if err := uc.state.save(sessionID, keyBaggage, baggage.Assignments()); err != nil {
		return nil, 0, err
	}

	refreshed, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, 0, err
	}
	return refreshed, dropped, nil
}

// SetPassengerRecord implements BookingWorkflowUseCase.SetPassengerRecord.
func (uc *bookingWorkflowUseCase) SetPassengerRecord(ctx context.Context, sessionID string, index int, record domain.PassengerRecord) (*WorkflowState, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(st.Slots) {
		return nil, domain.WrapInvalidRequest("passenger index %d out of range", index)
	}
	if !record.IsValid() {
		return nil, domain.WrapInvalidRequest("passenger record is not valid")
	}

	st.Slots[index].Record = &record
	if err := uc.state.save(sessionID, keyPassengers, passengerState{Counts: st.Counts, Slots: st.Slots}); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// SetContact implements BookingWorkflowUseCase.SetContact.
func (uc *bookingWorkflowUseCase) SetContact(ctx context.Context, sessionID string, contact domain.ContactRecord) (*WorkflowState, error) {
	if !uc.state.sessions.Exists(sessionID) {
		return nil, domain.ErrSessionNotFound
	}

	if err := uc.state.save(sessionID, keyContact, contact); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// ToggleSeat implements BookingWorkflowUseCase.ToggleSeat.
func (uc *bookingWorkflowUseCase) ToggleSeat(ctx context.Context, sessionID, seatID string) (*WorkflowState, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, err
	}

	if !domain.IsKnownSeat(seatID) {
		return nil, domain.WrapInvalidRequest("seat %q does not exist", seatID)
	}

	seats := domain.NewSeatSelectionFrom(st.Seats)
	if !seats.Toggle(seatID, st.Counts.Total()) {
		// Occupied seat or capacity reached: silently refused.
		return st, nil
	}

	if err := uc.state.save(sessionID, keySeats, seats.IDs()); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// AdjustMeal implements BookingWorkflowUseCase.AdjustMeal.
func (uc *bookingWorkflowUseCase) AdjustMeal(ctx context.Context, sessionID, itemID string, delta int) (*WorkflowState, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := domain.LookupMealItem(itemID); !ok {
		return nil, domain.WrapInvalidRequest("meal item %q does not exist", itemID)
	}

	meals := domain.NewMealSelectionFrom(st.Meals)
	if !meals.Adjust(itemID, delta, st.Counts.Total()) {
		// Catalog cap reached or zero-floor clamp: silently refused.
		return st, nil
	}

	if err := uc.state.save(sessionID, keyMeals, meals.Quantities()); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// SetBaggage implements BookingWorkflowUseCase.SetBaggage.
func (uc *bookingWorkflowUseCase) SetBaggage(ctx context.Context, sessionID string, index int, tier domain.BaggageOptionID) (*WorkflowState, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := domain.LookupBaggageOption(tier); !ok {
		return nil, domain.WrapInvalidRequest("baggage option %q does not exist", tier)
	}

	baggage := domain.NewBaggageSelectionFrom(st.Baggage)
	if !baggage.Set(index, tier) {
		return nil, domain.WrapInvalidRequest("passenger index %d out of range", index)
	}

	if err := uc.state.save(sessionID, keyBaggage, baggage.Assignments()); err != nil {
		return nil, err
	}

	return uc.state.loadState(sessionID)
}

// Submit implements BookingWorkflowUseCase.Submit.
func (uc *bookingWorkflowUseCase) Submit(ctx context.Context, sessionID string) (*domain.BookingResult, error) {
	st, err := uc.state.loadState(sessionID)
	if err != nil {
		return nil, err
	}

	// Both gates must be open; Gate A's reason wins when both are closed.
	if !st.GateA.Open {
		return nil, domain.NewGateClosedError(st.GateA.Reason)
	}
	if !st.GateB.Open {
		return nil, domain.NewGateClosedError(st.GateB.Reason)
	}

	result, err := uc.creator.Create(ctx, BuildBookingRequest(st))
	if err != nil {
		// Transport failure: the session survives for a retry.
		return nil, err
	}
	if !result.Success {
		// Rejected by the API: the session likewise survives.
		return result, nil
	}

	uc.state.sessions.Delete(sessionID)
	return result, nil
}

// Abandon implements BookingWorkflowUseCase.Abandon.
func (uc *bookingWorkflowUseCase) Abandon(ctx context.Context, sessionID string) error {
	if !uc.state.sessions.Exists(sessionID) {
		return domain.ErrSessionNotFound
	}
	uc.state.sessions.Delete(sessionID)
	return nil
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Ensure bookingWorkflowUseCase implements BookingWorkflowUseCase at compile time.
var _ BookingWorkflowUseCase = (*bookingWorkflowUseCase)(nil)
