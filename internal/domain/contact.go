package domain

import "regexp"

// emailPattern matches standard email addresses.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// defaultPhoneDigits is the required phone digit count when the contact's
// country is unset or not in the lookup table.
const defaultPhoneDigits = 10

// phoneDigitsByCountry maps a country to the digit count its phone numbers
// must have.
var phoneDigitsByCountry = map[string]int{
	"United States":  10,
	"Canada":         10,
	"United Kingdom": 11,
	"Australia":      9,
	"Germany":        11,
	"France":         9,
	"India":          10,
	"Indonesia":      11,
	"Japan":          10,
	"Singapore":      8,
}

// ContactRecord holds the booking's single point of contact.
// There is one contact per booking, not one per passenger.
type ContactRecord struct {
	// ContactPerson is the full name of the person to reach about the booking
	ContactPerson string `json:"contactPerson"`

	// Country is the contact's country, used to determine the expected
	// phone number length
	Country string `json:"country"`

	// PhoneNumber is the contact phone number
	PhoneNumber string `json:"phoneNumber"`

	// Email is the contact email address
	Email string `json:"email"`
}

// RequiredPhoneDigits returns the phone digit count required for the given
// country, or the default when the country is unknown.
func RequiredPhoneDigits(country string) int {
	if n, ok := phoneDigitsByCountry[country]; ok {
		return n
	}
	return defaultPhoneDigits
}

// CountDigits counts the decimal digits in a string, ignoring separators.
// It is the single rule for phone digit counting; the HTTP layer reuses it
// so its validation cannot drift from IsComplete.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// IsComplete reports whether the contact record is fully valid: all fields
// present, the email well-formed, and the phone number carrying exactly the
// digit count required for the contact's country. There are no partial
// states; completeness is strictly boolean.
func (c ContactRecord) IsComplete() bool {
	if c.ContactPerson == "" || c.Country == "" || c.PhoneNumber == "" {
		return false
	}
	if CountDigits(c.PhoneNumber) != RequiredPhoneDigits(c.Country) {
		return false
	}
	return emailPattern.MatchString(c.Email)
}
