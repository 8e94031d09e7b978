package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/session"
)

// Session blob keys. One key per workflow stage, mirroring the write-on-
// confirm, read-on-entry persistence model.
const (
	keyFlight     = "booking:flight"
	keyPassengers = "booking:passengers"
	keyContact    = "booking:contact"
	keySeats      = "booking:seats"
	keyMeals      = "booking:meals"
	keyBaggage    = "booking:baggage"
)

// flightState is the persisted flight context blob.
type flightState struct {
	Flight domain.Flight `json:"flight"`
}

// passengerState is the persisted passengers blob: the per-type counts and
// the ordered slot list they expand into.
type passengerState struct {
	Counts domain.PassengerCounts `json:"counts"`
	Slots  []domain.PassengerSlot `json:"slots"`
}

// stateStore reads and writes typed workflow blobs on top of the raw
// session store.
type stateStore struct {
	sessions session.Store
}

// load unmarshals the blob stored under the key into v. It returns false
// when no blob exists, which callers treat as the stage's zero state.
func (s stateStore) load(sessionID, key string, v interface{}) (bool, error) {
	blob, ok := s.sessions.Get(sessionID, key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return false, fmt.Errorf("failed to decode session blob %s: %w", key, err)
	}
	return true, nil
}

// save marshals v and stores it under the key. A refused write means the
// session vanished between the existence check and the write.
func (s stateStore) save(sessionID, key string, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode session blob %s: %w", key, err)
	}
	if !s.sessions.Set(sessionID, key, blob) {
		return domain.ErrSessionNotFound
	}
	return nil
}

// loadState assembles the full workflow state for a session. Derived
// fields (stage statuses, gates, pricing) are recomputed from the stored
// stage blobs on every read; they are never persisted.
func (s stateStore) loadState(sessionID string) (*WorkflowState, error) {
	if !s.sessions.Exists(sessionID) {
		return nil, domain.ErrSessionNotFound
	}

	st := &WorkflowState{SessionID: sessionID}

	var fs flightState
	if _, err := s.load(sessionID, keyFlight, &fs); err != nil {
		return nil, err
	}
	st.Flight = fs.Flight

	var ps passengerState
	found, err := s.load(sessionID, keyPassengers, &ps)
	if err != nil {
		return nil, err
	}
	if found {
		st.Counts = ps.Counts
		st.Slots = ps.Slots
	} else {
		st.Counts = domain.DefaultPassengerCounts()
		st.Slots = domain.RegenerateSlots(st.Counts, nil)
	}

	if _, err := s.load(sessionID, keyContact, &st.Contact); err != nil {
		return nil, err
	}
	if _, err := s.load(sessionID, keySeats, &st.Seats); err != nil {
		return nil, err
	}
	if _, err := s.load(sessionID, keyMeals, &st.Meals); err != nil {
		return nil, err
	}

	var baggage []domain.BaggageOptionID
	found, err = s.load(sessionID, keyBaggage, &baggage)
	if err != nil {
		return nil, err
	}
	if found {
		st.Baggage = baggage
	} else {
		st.Baggage = domain.NewBaggageSelection(st.Counts.Total()).Assignments()
	}

	st.derive()
	return st, nil
}
