// Package http provides swagger type definitions for API documentation.
// These types mirror response DTOs but are defined here to help swag generate proper documentation.
package http

// SwaggerStateResponse represents the workflow state response for swagger documentation.
// @Description Full booking workflow state with derived stages and pricing
type SwaggerStateResponse struct {
	// SessionID identifies the booking session
	SessionID string `json:"sessionId" example:"2a7c9f7e-54d1-4f11-a1b8-3e1c0b6f9d42"`

	// Flight is the snapshot of the flight being booked
	Flight SwaggerFlight `json:"flight"`

	// Passengers is the ordered passenger list with per-type counts
	Passengers SwaggerPassengers `json:"passengers"`

	// Contact is the booking's point of contact
	Contact SwaggerContact `json:"contact"`

	// Seats is the list of selected seat identifiers
	Seats []string `json:"seats" example:"12A,12B"`

	// Meals maps menu item identifiers to selected quantities
	Meals map[string]int `json:"meals"`

	// Baggage is the per-passenger baggage tier assignment
	Baggage []string `json:"baggage" example:"standard,extra"`

	// Stages contains the derived stage statuses and gate outcomes
	Stages SwaggerStages `json:"stages"`

	// Pricing is the itemized cost breakdown
	Pricing SwaggerPricing `json:"pricing"`
}

// SwaggerFlight represents the flight snapshot in responses.
// @Description Flight snapshot carried through the booking session
type SwaggerFlight struct {
	// ID is a unique identifier for this flight result
	ID string `json:"id" example:"garuda-ga123-cgk-dps-20251215"`

	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flightNumber" example:"GA-123"`

	// Airline contains information about the operating airline
	Airline SwaggerAirlineInfo `json:"airline"`

	// Departure contains departure airport and time information
	Departure SwaggerFlightPoint `json:"departure"`

	// Arrival contains arrival airport and time information
	Arrival SwaggerFlightPoint `json:"arrival"`

	// Price contains the fare for one adult passenger
	Price SwaggerPriceInfo `json:"price"`

	// Class is the travel class
	Class string `json:"class" example:"economy"`
}

// SwaggerAirlineInfo contains information about an airline.
// @Description Airline information
type SwaggerAirlineInfo struct {
	// Code is the IATA airline code
	Code string `json:"code" example:"GA"`

	// Name is the full airline name
	Name string `json:"name" example:"Garuda Indonesia"`
}

// SwaggerFlightPoint represents a point in a flight journey.
// @Description Departure or arrival point information
type SwaggerFlightPoint struct {
	// AirportCode is the IATA airport code
	AirportCode string `json:"airportCode" example:"CGK"`

	// DateTime is the scheduled departure or arrival time in RFC 3339
	DateTime string `json:"dateTime" example:"2025-12-15T08:00:00Z"`

	// LocalTime is the schedule formatted in the airport's timezone
	LocalTime string `json:"localTime,omitempty" example:"2025-12-15 15:00:00"`

	// Timezone is the IANA timezone identifier
	Timezone string `json:"timezone,omitempty" example:"Asia/Jakarta"`
}

// SwaggerPriceInfo contains pricing information.
// @Description Price information
type SwaggerPriceInfo struct {
	// Amount is the price value
	Amount float64 `json:"amount" example:"1250000"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"IDR"`
}

// SwaggerPassengers is the passengers block of the state.
// @Description Passenger counts and the ordered slot list
type SwaggerPassengers struct {
	// Counts is the per-type passenger count breakdown
	Counts SwaggerCounts `json:"counts"`

	// Total is the total passenger count across all types
	Total int `json:"total" example:"3"`

	// Slots is the ordered passenger list, adults first, then children, then infants
	Slots []SwaggerSlot `json:"slots"`
}

// SwaggerCounts is the per-type passenger count breakdown.
// @Description Passenger counts per type
type SwaggerCounts struct {
	// Adults is the number of adult passengers (at least one)
	Adults int `json:"adults" example:"2"`

	// Children is the number of child passengers
	Children int `json:"children" example:"1"`

	// Infants is the number of infant passengers
	Infants int `json:"infants" example:"0"`
}

// SwaggerSlot is one position in the ordered passenger list.
// @Description One passenger slot with its entered record, if any
type SwaggerSlot struct {
	// Index is the slot's position in the passenger list
	Index int `json:"index" example:"0"`

	// Type is the passenger type of this slot
	Type string `json:"type" example:"adult"`

	// Record is the entered identity record, absent until saved
	Record *SwaggerRecord `json:"record,omitempty"`

	// Complete reports whether the slot's record has been fully entered
	Complete bool `json:"complete" example:"true"`
}

// SwaggerRecord is an entered passenger identity record.
// @Description Passenger identity details
type SwaggerRecord struct {
	// Title is the passenger's honorific
	Title string `json:"title" example:"Mr"`

	// FirstName is the passenger's given name
	FirstName string `json:"firstName" example:"Budi"`

	// LastName is the passenger's family name
	LastName string `json:"lastName" example:"Santoso"`
}

// SwaggerContact is the contact block of the state.
// @Description Booking contact details
type SwaggerContact struct {
	// ContactPerson is the full name of the contact
	ContactPerson string `json:"contactPerson" example:"Budi Santoso"`

	// Country is the contact's country
	Country string `json:"country" example:"Indonesia"`

	// PhoneNumber is the contact phone number
	PhoneNumber string `json:"phoneNumber" example:"081234567890"`

	// Email is the contact email address
	Email string `json:"email" example:"budi@example.com"`

	// Complete reports whether every contact field has been entered
	Complete bool `json:"complete" example:"true"`
}

// SwaggerStages is the derived stage and gate block of the state.
// @Description Per-stage completion statuses and gate outcomes
type SwaggerStages struct {
	// Statuses maps stage names to their derived completion status
	Statuses map[string]string `json:"statuses"`

	// OptionsGate guards entry to the seats, meals, and baggage screens
	OptionsGate SwaggerGate `json:"optionsGate"`

	// PaymentGate guards submission of the booking
	PaymentGate SwaggerGate `json:"paymentGate"`
}

// SwaggerGate is the outcome of one gate evaluation.
// @Description Gate evaluation outcome
type SwaggerGate struct {
	// Open reports whether the gate allows passage
	Open bool `json:"open" example:"false"`

	// Reason names the unmet requirement when the gate is closed
	Reason string `json:"reason,omitempty" example:"complete passenger details"`
}

// SwaggerPricing is the itemized cost breakdown.
// @Description Itemized cost of the configured booking
type SwaggerPricing struct {
	// FlightCost is the fare multiplied by the seat-occupying passenger count
	FlightCost float64 `json:"flightCost" example:"2500000"`

	// MealsCost is the total cost of selected meals
	MealsCost float64 `json:"mealsCost" example:"150000"`

	// BaggageCost is the total cost of assigned baggage tiers
	BaggageCost float64 `json:"baggageCost" example:"200000"`

	// Subtotal is the sum of flight, meals, and baggage costs
	Subtotal float64 `json:"subtotal" example:"2850000"`

	// TaxesAndFees is the tax applied to the subtotal
	TaxesAndFees float64 `json:"taxesAndFees" example:"427500"`

	// TotalCost is the subtotal plus taxes and fees
	TotalCost float64 `json:"totalCost" example:"3277500"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency,omitempty" example:"IDR"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
