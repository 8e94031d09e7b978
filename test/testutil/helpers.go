// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// SampleFlight returns a fully populated flight snapshot for testing.
func SampleFlight() domain.Flight {
	return domain.Flight{
		ID:           "garuda-ga123-cgk-dps",
		FlightNumber: "GA-123",
		Airline: domain.AirlineInfo{
			Code: "GA",
			Name: "Garuda Indonesia",
		},
		Departure: domain.FlightPoint{
			AirportCode: "CGK",
			DateTime:    time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
			Timezone:    "Asia/Jakarta",
		},
		Arrival: domain.FlightPoint{
			AirportCode: "DPS",
			DateTime:    time.Date(2026, 9, 15, 10, 50, 0, 0, time.UTC),
			Timezone:    "Asia/Makassar",
		},
		Price: domain.PriceInfo{Amount: 1250000, Currency: "IDR"},
		Class: "economy",
	}
}

// SampleRecord returns a valid passenger record for testing.
func SampleRecord(first, last string) domain.PassengerRecord {
	return domain.PassengerRecord{
		Title:     domain.TitleMr,
		FirstName: first,
		LastName:  last,
	}
}

// SampleContact returns a complete contact record for testing.
func SampleContact() domain.ContactRecord {
	return domain.ContactRecord{
		ContactPerson: "Budi Santoso",
		Country:       "US",
		PhoneNumber:   "2125551234",
		Email:         "budi@example.com",
	}
}
