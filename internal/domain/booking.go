package domain

import "context"

// BookingRequest is the payload handed to the booking-creation API once the
// workflow completes. It is assembled exactly once, at submission time, and
// is immutable after that.
type BookingRequest struct {
	// Flight is the snapshot of the booked flight
	Flight Flight `json:"flight"`

	// Passengers is the per-type count breakdown
	Passengers PassengerCounts `json:"passengers"`

	// PassengerDetails lists the entered records with lowercase type tags
	PassengerDetails []BookingPassenger `json:"passengerDetails"`

	// Contact is the booking's point of contact
	Contact BookingContact `json:"contact"`

	// Seats is the list of selected seat IDs
	Seats []string `json:"seats"`

	// Meals maps menu item IDs to selected quantities
	Meals map[string]int `json:"meals"`

	// Baggage lists the per-passenger baggage tier IDs
	Baggage []string `json:"baggage"`

	// Pricing is the itemized total shown to the user at submission
	Pricing PricingBreakdown `json:"pricing"`
}

// BookingPassenger is one passenger entry in the booking payload.
type BookingPassenger struct {
	// Type is the lowercase passenger type tag (adult, child, infant)
	Type string `json:"type"`

	// Title is the passenger's honorific
	Title string `json:"title"`

	// FirstName is the passenger's given name
	FirstName string `json:"firstName"`

	// LastName is the passenger's family name
	LastName string `json:"lastName"`
}

// BookingContact is the contact entry in the booking payload. The field
// names follow the booking API's contract, not the workflow's internal
// naming.
type BookingContact struct {
	// ContactPerson is the full name of the contact
	ContactPerson string `json:"contactPerson"`

	// Country is the contact's country
	Country string `json:"country"`

	// Phone is the contact phone number
	Phone string `json:"phone"`

	// Email is the contact email address
	Email string `json:"email"`
}

// BookingResult is the booking-creation API's response.
type BookingResult struct {
	// Success reports whether the booking was created
	Success bool `json:"success"`

	// BookingReference is the created booking's reference code
	BookingReference string `json:"bookingReference,omitempty"`

	// Message carries a human-readable note, typically on failure
	Message string `json:"message,omitempty"`
}

// BookingCreator is the downstream collaborator that accepts the final
// booking payload. Implementations live in the adapter layer; the workflow
// only depends on this interface.
type BookingCreator interface {
	// Create submits the booking request. A non-nil error means the call
	// itself failed (transport, timeout); a result with Success=false
	// means the API rejected the booking.
	Create(ctx context.Context, req *BookingRequest) (*BookingResult, error)
}
