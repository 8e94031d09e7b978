package domain

import "time"

// Flight is the snapshot of the selected flight, supplied by the upstream
// search screen when the workflow starts. The workflow treats it as
// read-only context: fare, schedule, and carrier fields.
type Flight struct {
	// ID is a unique identifier for the flight offering
	ID string `json:"id"`

	// FlightNumber is the airline's flight number (e.g., "GA-123")
	FlightNumber string `json:"flightNumber"`

	// Airline contains information about the operating airline
	Airline AirlineInfo `json:"airline"`

	// Departure contains departure airport and time information
	Departure FlightPoint `json:"departure"`

	// Arrival contains arrival airport and time information
	Arrival FlightPoint `json:"arrival"`

	// Price is the per-passenger fare
	Price PriceInfo `json:"price"`

	// Class is the travel class (economy, business, first)
	Class string `json:"class"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "GA")
	Code string `json:"code"`

	// Name is the full airline name
	Name string `json:"name"`
}

// FlightPoint represents a point in a flight journey (departure or arrival).
type FlightPoint struct {
	// AirportCode is the IATA airport code (e.g., "CGK")
	AirportCode string `json:"airportCode"`

	// DateTime is the scheduled departure or arrival time
	DateTime time.Time `json:"dateTime"`

	// Timezone is the IANA timezone identifier (e.g., "Asia/Jakarta")
	Timezone string `json:"timezone,omitempty"`
}

// PriceInfo contains pricing information for a flight.
type PriceInfo struct {
	// Amount is the per-passenger fare value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// IsZero reports whether the snapshot is empty. A workflow cannot start
// without a flight in context.
func (f Flight) IsZero() bool {
	return f.ID == "" && f.FlightNumber == ""
}

// SearchCriteria carries the passenger counts chosen on the upstream search
// screen. It seeds the workflow's initial counts.
type SearchCriteria struct {
	// Adults is the number of adult passengers from the search
	Adults int `json:"adults"`

	// Children is the number of child passengers from the search
	Children int `json:"children"`

	// Infants is the number of infant passengers from the search
	Infants int `json:"infants"`
}

// InitialCounts derives the workflow's starting passenger counts from the
// search criteria, falling back to one adult when the criteria are unusable.
func (s SearchCriteria) InitialCounts() PassengerCounts {
	counts := PassengerCounts{
		Adults:   s.Adults,
		Children: s.Children,
		Infants:  s.Infants,
	}
	if !counts.Valid() {
		return DefaultPassengerCounts()
	}
	return counts
}
