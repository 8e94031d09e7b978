// Package domain contains the core business entities and rules for the booking
// configuration workflow. These entities are transport-agnostic and form the
// foundation upon which all other components are built.
package domain

import "regexp"

// Passenger count limits.
const (
	// MinAdults is the minimum number of adult passengers in a booking.
	MinAdults = 1

	// MaxPassengers is the maximum total number of passengers in a booking.
	MaxPassengers = 9
)

// PassengerType classifies a passenger slot.
type PassengerType string

// Passenger types, in the order slots are laid out.
const (
	PassengerAdult  PassengerType = "Adult"
	PassengerChild  PassengerType = "Child"
	PassengerInfant PassengerType = "Infant"
)

// Tag returns the lowercase type tag used in the booking payload.
func (t PassengerType) Tag() string {
	switch t {
	case PassengerAdult:
		return "adult"
	case PassengerChild:
		return "child"
	case PassengerInfant:
		return "infant"
	default:
		return ""
	}
}

// PassengerCounts tracks the number of passengers per type.
// Counts are mutated only through Increment and Decrement, which silently
// ignore calls that would violate the limits: buttons at the boundary simply
// become inert, they do not error.
type PassengerCounts struct {
	// Adults is the number of adult passengers (always >= 1)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children"`

	// Infants is the number of infant passengers
	Infants int `json:"infants"`
}

// DefaultPassengerCounts returns the fallback counts for a new workflow:
// one adult, no children, no infants.
func DefaultPassengerCounts() PassengerCounts {
	return PassengerCounts{Adults: 1}
}

// Total returns the total number of passengers across all types.
func (c PassengerCounts) Total() int {
	return c.Adults + c.Children + c.Infants
}

// Increment increases the count for the given type by one.
// It returns false without mutating if the total is already at MaxPassengers
// or the type is unknown.
func (c *PassengerCounts) Increment(t PassengerType) bool {
	if c.Total() >= MaxPassengers {
		return false
	}

	switch t {
	case PassengerAdult:
		c.Adults++
	case PassengerChild:
		c.Children++
	case PassengerInfant:
		c.Infants++
	default:
		return false
	}
	return true
}

// Decrement decreases the count for the given type by one.
// Adults cannot go below MinAdults; children and infants cannot go below
// zero. Calls at the boundary return false without mutating.
func (c *PassengerCounts) Decrement(t PassengerType) bool {
	switch t {
	case PassengerAdult:
		if c.Adults <= MinAdults {
			return false
		}
		c.Adults--
	case PassengerChild:
		if c.Children <= 0 {
			return false
		}
		c.Children--
	case PassengerInfant:
		if c.Infants <= 0 {
			return false
		}
		c.Infants--
	default:
		return false
	}
	return true
}

// Valid reports whether the counts satisfy the booking limits.
func (c PassengerCounts) Valid() bool {
	return c.Adults >= MinAdults && c.Children >= 0 && c.Infants >= 0 &&
		c.Total() <= MaxPassengers
}

// Title is a passenger honorific.
type Title string

// Accepted passenger titles.
const (
	TitleMr   Title = "Mr"
	TitleMrs  Title = "Mrs"
	TitleMs   Title = "Ms"
	TitleMiss Title = "Miss"
	TitleDr   Title = "Dr"
)

// IsValid checks if the title is one of the accepted values.
func (t Title) IsValid() bool {
	switch t {
	case TitleMr, TitleMrs, TitleMs, TitleMiss, TitleDr:
		return true
	default:
		return false
	}
}

// passengerNamePattern matches names as they appear on a passport:
// English letters, spaces, and hyphens only.
var passengerNamePattern = regexp.MustCompile(`^[A-Za-z\s-]+$`)

// PassengerRecord holds the identity details for a single passenger.
// Records are entered through the per-passenger form; they are never
// auto-populated.
type PassengerRecord struct {
	// Title is the passenger's honorific (Mr, Mrs, Ms, Miss, Dr)
	Title Title `json:"title"`

	// FirstName is the passenger's given name as printed on their passport
	FirstName string `json:"firstName"`

	// LastName is the passenger's family name as printed on their passport
	LastName string `json:"lastName"`
}

// IsValid reports whether the record satisfies the passport-name rules:
// a recognised title and non-empty names containing only English letters,
// spaces, and hyphens.
func (r PassengerRecord) IsValid() bool {
	if !r.Title.IsValid() {
		return false
	}
	if r.FirstName == "" || !passengerNamePattern.MatchString(r.FirstName) {
		return false
	}
	if r.LastName == "" || !passengerNamePattern.MatchString(r.LastName) {
		return false
	}
	return true
}

// PassengerSlot is one position in the ordered passenger list.
type PassengerSlot struct {
	// Type classifies the passenger occupying this slot
	Type PassengerType `json:"type"`

	// Record holds the entered identity details, or nil if not yet entered
	Record *PassengerRecord `json:"record"`
}

// IsComplete reports whether the slot has a valid record.
func (s PassengerSlot) IsComplete() bool {
	return s.Record != nil && s.Record.IsValid()
}

// RegenerateSlots builds the slot list for the given counts, preserving
// records from the previous slots by positional index. Adults occupy the
// first slots, then children, then infants, in that fixed order. If the
// list shrinks, trailing records are dropped; if it grows, new slots start
// empty.
func RegenerateSlots(counts PassengerCounts, previous []PassengerSlot) []PassengerSlot {
	total := counts.Total()
	slots := make([]PassengerSlot, 0, total)

	for i := 0; i < counts.Adults; i++ {
		slots = append(slots, PassengerSlot{Type: PassengerAdult})
	}
	for i := 0; i < counts.Children; i++ {
		slots = append(slots, PassengerSlot{Type: PassengerChild})
	}
	for i := 0; i < counts.Infants; i++ {
		slots = append(slots, PassengerSlot{Type: PassengerInfant})
	}

	// Positional preservation: slot i keeps whatever record slot i held
	// before, regardless of type.
	for i := range slots {
		if i < len(previous) {
			slots[i].Record = previous[i].Record
		}
	}

	return slots
}

// AllSlotsComplete reports whether every slot holds a valid record.
func AllSlotsComplete(slots []PassengerSlot) bool {
	for _, s := range slots {
		if !s.IsComplete() {
			return false
		}
	}
	return true
}
