package usecase

import (
	"github.com/flight-booking/booking-configuration-service/internal/domain"
)

// BuildBookingRequest assembles the final booking payload from the
// workflow state. It is a pure function invoked exactly once per
// submission attempt; the payload mirrors the booking API's contract, not
// the workflow's internal shapes.
func BuildBookingRequest(st *WorkflowState) *domain.BookingRequest {
	details := make([]domain.BookingPassenger, 0, len(st.Slots))
	for _, slot := range st.Slots {
		// Gate A guarantees every slot holds a valid record by the time
		// the payload is built.
		if slot.Record == nil {
			continue
		}
		details = append(details, domain.BookingPassenger{
			Type:      slot.Type.Tag(),
			Title:     string(slot.Record.Title),
			FirstName: slot.Record.FirstName,
			LastName:  slot.Record.LastName,
		})
	}

	baggage := make([]string, 0, len(st.Baggage))
	for _, tier := range st.Baggage {
		baggage = append(baggage, string(tier))
	}

	seats := make([]string, len(st.Seats))
	copy(seats, st.Seats)

	meals := make(map[string]int, len(st.Meals))
	for id, qty := range st.Meals {
		meals[id] = qty
	}

	return &domain.BookingRequest{
		Flight:           st.Flight,
		Passengers:       st.Counts,
		PassengerDetails: details,
		Contact: domain.BookingContact{
			ContactPerson: st.Contact.ContactPerson,
			Country:       st.Contact.Country,
			Phone:         st.Contact.PhoneNumber,
			Email:         st.Contact.Email,
		},
		Seats:   seats,
		Meals:   meals,
		Baggage: baggage,
		Pricing: st.Pricing,
	}
}
