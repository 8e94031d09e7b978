// Package http provides the HTTP handler layer for the booking
// configuration API. It handles request parsing, validation, and response
// formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
)

// namePattern matches names as printed on a passport: English letters,
// spaces, and hyphens only.
var namePattern = regexp.MustCompile(`^[A-Za-z\s-]+$`)

// emailPattern matches standard email addresses.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Valid stepper actions.
const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// Valid passenger types accepted in requests.
var validPassengerTypes = map[string]domain.PassengerType{
	"adult":  domain.PassengerAdult,
	"child":  domain.PassengerChild,
	"infant": domain.PassengerInfant,
}

// Valid passenger titles accepted in requests.
var validTitles = map[string]bool{
	"Mr":   true,
	"Mrs":  true,
	"Ms":   true,
	"Miss": true,
	"Dr":   true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// StartSessionRequest is the request body for starting a booking session.
type StartSessionRequest struct {
	// Flight is the snapshot of the flight selected on the search screen
	Flight FlightRequest `json:"flight"`

	// Criteria carries the passenger counts from the search screen
	Criteria CriteriaRequest `json:"criteria"`
}

// FlightRequest is the flight snapshot in the start request.
type FlightRequest struct {
	ID           string             `json:"id"`
	FlightNumber string             `json:"flightNumber"`
	Airline      AirlineRequest     `json:"airline"`
	Departure    FlightPointRequest `json:"departure"`
	Arrival      FlightPointRequest `json:"arrival"`
	Price        PriceRequest       `json:"price"`
	Class        string             `json:"class"`
}

// AirlineRequest is the airline block in the flight snapshot.
type AirlineRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FlightPointRequest is a departure or arrival block in the flight snapshot.
type FlightPointRequest struct {
	AirportCode string    `json:"airportCode"`
	DateTime    time.Time `json:"dateTime"`
	Timezone    string    `json:"timezone,omitempty"`
}

// PriceRequest is the fare block in the flight snapshot.
type PriceRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CriteriaRequest carries the passenger counts from the search screen.
type CriteriaRequest struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Validate validates the start request and returns any validation errors.
func (r *StartSessionRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Flight.ID == "" && r.Flight.FlightNumber == "" {
		errs.Add("flight", "flight is required")
	}
	if r.Flight.Price.Amount < 0 {
		errs.Add("flight.price.amount", "fare must not be negative")
	}
	if r.Criteria.Adults < 0 || r.Criteria.Children < 0 || r.Criteria.Infants < 0 {
		errs.Add("criteria", "passenger counts must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// AdjustCountRequest is the request body for the passenger count steppers.
type AdjustCountRequest struct {
	// Type is the passenger type to adjust: adult, child, or infant
	Type string `json:"type"`

	// Action is the stepper direction: increment or decrement
	Action string `json:"action"`
}

// Validate validates the count adjustment request.
func (r *AdjustCountRequest) Validate() error {
	errs := &ValidationErrors{}

	if _, ok := validPassengerTypes[strings.ToLower(r.Type)]; !ok {
		errs.Add("type", "type must be one of: adult, child, infant")
	}
	if r.Action != ActionIncrement && r.Action != ActionDecrement {
		errs.Add("action", "action must be one of: increment, decrement")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// PassengerType returns the domain passenger type for the request.
func (r *AdjustCountRequest) PassengerType() domain.PassengerType {
	return validPassengerTypes[strings.ToLower(r.Type)]
}

// Delta returns the signed step for the requested action.
func (r *AdjustCountRequest) Delta() int {
	if r.Action == ActionDecrement {
		return -1
	}
	return 1
}

// PassengerRecordRequest is the request body for a per-passenger form.
type PassengerRecordRequest struct {
	// Title is the passenger's honorific (Mr, Mrs, Ms, Miss, Dr)
	Title string `json:"title"`

	// FirstName is the passenger's given name as printed on their passport
	FirstName string `json:"firstName"`

	// LastName is the passenger's family name as printed on their passport
	LastName string `json:"lastName"`
}

// Validate validates the passenger record request.
func (r *PassengerRecordRequest) Validate() error {
	errs := &ValidationErrors{}

	if !validTitles[r.Title] {
		errs.Add("title", "title must be one of: Mr, Mrs, Ms, Miss, Dr")
	}

	validateName(errs, "firstName", r.FirstName)
	validateName(errs, "lastName", r.LastName)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateName checks a passport-name field.
func validateName(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, fmt.Sprintf("%s is required", field))
		return
	}
	if !namePattern.MatchString(value) {
		errs.Add(field, "must contain only letters, spaces, and hyphens")
	}
}

// ToDomain converts the request to a domain passenger record.
func (r *PassengerRecordRequest) ToDomain() domain.PassengerRecord {
	return domain.PassengerRecord{
		Title:     domain.Title(r.Title),
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// ContactRequest is the request body for the contact form. Fields may be
// saved incrementally; only format errors are rejected, missing fields
// simply leave the stage unsatisfied.
type ContactRequest struct {
	// ContactPerson is the full name of the person to reach about the booking
	ContactPerson string `json:"contactPerson"`

	// Country is the contact's country
	Country string `json:"country"`

	// PhoneNumber is the contact phone number
	PhoneNumber string `json:"phoneNumber"`

	// Email is the contact email address
	Email string `json:"email"`
}

// Validate validates the contact request. The phone digit count rule
// follows the contact's country, defaulting to 10 digits for countries
// outside the lookup table.
func (r *ContactRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.ContactPerson != "" && !namePattern.MatchString(r.ContactPerson) {
		errs.Add("contactPerson", "must contain only letters, spaces, and hyphens")
	}

	if r.PhoneNumber != "" {
		required := domain.RequiredPhoneDigits(r.Country)
		if domain.CountDigits(r.PhoneNumber) != required {
			errs.Add("phoneNumber", fmt.Sprintf("must have %d digits", required))
		}
	}

	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		errs.Add("email", "must be a valid email address")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomain converts the request to a domain contact record.
func (r *ContactRequest) ToDomain() domain.ContactRecord {
	return domain.ContactRecord{
		ContactPerson: r.ContactPerson,
		Country:       r.Country,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
	}
}

// ToggleSeatRequest is the request body for the seat toggle.
type ToggleSeatRequest struct {
	// SeatID is the seat identifier, row number followed by letter (e.g. "14C")
	SeatID string `json:"seatId"`
}

// Validate validates the seat toggle request.
func (r *ToggleSeatRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.SeatID == "" {
		errs.Add("seatId", "seatId is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// AdjustMealRequest is the request body for the meal quantity steppers.
type AdjustMealRequest struct {
	// ItemID is the menu item identifier
	ItemID string `json:"itemId"`

	// Action is the stepper direction: increment or decrement
	Action string `json:"action"`
}

// Validate validates the meal adjustment request.
func (r *AdjustMealRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.ItemID == "" {
		errs.Add("itemId", "itemId is required")
	}
	if r.Action != ActionIncrement && r.Action != ActionDecrement {
		errs.Add("action", "action must be one of: increment, decrement")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Delta returns the signed step for the requested action.
func (r *AdjustMealRequest) Delta() int {
	if r.Action == ActionDecrement {
		return -1
	}
	return 1
}

// SetBaggageRequest is the request body for a per-passenger baggage pick.
type SetBaggageRequest struct {
	// OptionID is the baggage tier identifier: standard, extra, or premium
	OptionID string `json:"optionId"`
}

// Validate validates the baggage request.
func (r *SetBaggageRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.OptionID == "" {
		errs.Add("optionId", "optionId is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToDomainFlight converts the start request's flight snapshot to a domain
// flight.
func ToDomainFlight(req *FlightRequest) domain.Flight {
	return domain.Flight{
		ID:           req.ID,
		FlightNumber: req.FlightNumber,
		Airline: domain.AirlineInfo{
			Code: req.Airline.Code,
			Name: req.Airline.Name,
		},
		Departure: domain.FlightPoint{
			AirportCode: req.Departure.AirportCode,
			DateTime:    req.Departure.DateTime,
			Timezone:    req.Departure.Timezone,
		},
		Arrival: domain.FlightPoint{
			AirportCode: req.Arrival.AirportCode,
			DateTime:    req.Arrival.DateTime,
			Timezone:    req.Arrival.Timezone,
		},
		Price: domain.PriceInfo{
			Amount:   req.Price.Amount,
			Currency: req.Price.Currency,
		},
		Class: req.Class,
	}
}

// ToDomainCriteria converts the start request's criteria block to domain
// search criteria.
func ToDomainCriteria(req *CriteriaRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Adults:   req.Adults,
		Children: req.Children,
		Infants:  req.Infants,
	}
}
