// Package http provides the HTTP handler layer for the booking configuration API.
package http

import (
	"time"

	"github.com/flight-booking/booking-configuration-service/internal/domain"
	"github.com/flight-booking/booking-configuration-service/internal/infrastructure/timeutil"
	"github.com/flight-booking/booking-configuration-service/internal/usecase"
)

// ToStateDTO converts a workflow state to its response representation.
func ToStateDTO(st *usecase.WorkflowState) *StateDTO {
	if st == nil {
		return nil
	}

	seats := st.Seats
	if seats == nil {
		seats = []string{}
	}
	meals := st.Meals
	if meals == nil {
		meals = map[string]int{}
	}

	baggage := make([]string, 0, len(st.Baggage))
	for _, tier := range st.Baggage {
		baggage = append(baggage, string(tier))
	}

	return &StateDTO{
		SessionID:  st.SessionID,
		Flight:     ToFlightDTO(st.Flight),
		Passengers: toPassengersDTO(st),
		Contact:    toContactDTO(st.Contact),
		Seats:      seats,
		Meals:      meals,
		Baggage:    baggage,
		Stages:     toStagesDTO(st),
		Pricing:    toPricingDTO(st.Pricing, st.Flight.Price.Currency),
	}
}

// ToFlightDTO converts a domain flight to its response representation.
func ToFlightDTO(flight domain.Flight) FlightDTO {
	return FlightDTO{
		ID:           flight.ID,
		FlightNumber: flight.FlightNumber,
		Airline: AirlineDTO{
			Code: flight.Airline.Code,
			Name: flight.Airline.Name,
		},
		Departure: toFlightPointDTO(flight.Departure),
		Arrival:   toFlightPointDTO(flight.Arrival),
		Price: PriceDTO{
			Amount:   flight.Price.Amount,
			Currency: flight.Price.Currency,
		},
		Class: flight.Class,
	}
}

// toFlightPointDTO formats a flight point, rendering the schedule in the
// airport's local timezone when one is known.
func toFlightPointDTO(p domain.FlightPoint) FlightPointDTO {
	dto := FlightPointDTO{
		AirportCode: p.AirportCode,
		DateTime:    p.DateTime.Format(time.RFC3339),
		Timezone:    p.Timezone,
	}

	if p.Timezone != "" {
		if local, err := timeutil.InTimezone(p.DateTime, p.Timezone); err == nil {
			dto.LocalTime = timeutil.FormatDateTime(local)
		}
	}

	return dto
}

// toPassengersDTO builds the passengers block.
func toPassengersDTO(st *usecase.WorkflowState) PassengersDTO {
	slots := make([]SlotDTO, len(st.Slots))
	for i, slot := range st.Slots {
		dto := SlotDTO{
			Index:    i,
			Type:     slot.Type.Tag(),
			Complete: slot.IsComplete(),
		}
		if slot.Record != nil {
			dto.Record = &RecordDTO{
				Title:     string(slot.Record.Title),
				FirstName: slot.Record.FirstName,
				LastName:  slot.Record.LastName,
			}
		}
		slots[i] = dto
	}

	return PassengersDTO{
		Counts: CountsDTO{
			Adults:   st.Counts.Adults,
			Children: st.Counts.Children,
			Infants:  st.Counts.Infants,
		},
		Total: st.Counts.Total(),
		Slots: slots,
	}
}

// toContactDTO builds the contact block.
func toContactDTO(contact domain.ContactRecord) ContactDTO {
	return ContactDTO{
		ContactPerson: contact.ContactPerson,
		Country:       contact.Country,
		PhoneNumber:   contact.PhoneNumber,
		Email:         contact.Email,
		Complete:      contact.IsComplete(),
	}
}

// toStagesDTO builds the derived stage and gate block.
func toStagesDTO(st *usecase.WorkflowState) StagesDTO {
	statuses := make(map[string]string, len(st.Stages))
	for stage, status := range st.Stages {
		statuses[string(stage)] = string(status)
	}

	return StagesDTO{
		Statuses: statuses,
		GateA:    GateDTO{Open: st.GateA.Open, Reason: st.GateA.Reason},
		GateB:    GateDTO{Open: st.GateB.Open, Reason: st.GateB.Reason},
	}
}

// toPricingDTO builds the pricing block.
func toPricingDTO(p domain.PricingBreakdown, currency string) PricingDTO {
	return PricingDTO{
		FlightCost:   p.FlightCost,
		MealsCost:    p.MealsCost,
		BaggageCost:  p.BaggageCost,
		Subtotal:     p.Subtotal,
		TaxesAndFees: p.TaxesAndFees,
		TotalCost:    p.TotalCost,
		Currency:     currency,
	}
}

// ToSeatMapDTO builds the seat map response for a session's state.
func ToSeatMapDTO(st *usecase.WorkflowState) *SeatMapDTO {
	selection := domain.NewSeatSelectionFrom(st.Seats)

	seats := make([]SeatDTO, 0, domain.SeatRows*6)
	for _, seat := range domain.SeatMap() {
		seats = append(seats, SeatDTO{
			ID:       seat.ID,
			Row:      seat.Row,
			Letter:   seat.Letter,
			Premium:  seat.Premium,
			Occupied: seat.Occupied,
			Selected: selection.Contains(seat.ID),
		})
	}

	selected := st.Seats
	if selected == nil {
		selected = []string{}
	}

	return &SeatMapDTO{
		Rows:     domain.SeatRows,
		Seats:    seats,
		Selected: selected,
		Capacity: st.Counts.Total(),
	}
}

// ToMealCatalogDTO builds the meals response for a session's state.
func ToMealCatalogDTO(st *usecase.WorkflowState) *MealCatalogDTO {
	selections := st.Meals
	if selections == nil {
		selections = map[string]int{}
	}

	items := make([]MealItemDTO, 0, 11)
	for _, item := range domain.MealCatalog() {
		items = append(items, MealItemDTO{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Beverage: item.Beverage,
			Quantity: selections[item.ID],
		})
	}

	return &MealCatalogDTO{
		Items:      items,
		Selections: selections,
		Capacity:   st.Counts.Total(),
	}
}

// ToBaggageOptionsDTO builds the baggage response for a session's state.
func ToBaggageOptionsDTO(st *usecase.WorkflowState) *BaggageOptionsDTO {
	options := make([]BaggageOptionDTO, 0, 3)
	for _, opt := range domain.BaggageOptions() {
		options = append(options, BaggageOptionDTO{
			ID:        string(opt.ID),
			Name:      opt.Name,
			CheckedKg: opt.CheckedKg,
			Price:     opt.Price,
		})
	}

	assignments := make([]string, 0, len(st.Baggage))
	for _, tier := range st.Baggage {
		assignments = append(assignments, string(tier))
	}

	return &BaggageOptionsDTO{
		Options:     options,
		Assignments: assignments,
	}
}

// ToSubmitResponseDTO converts a booking result to its response
// representation.
func ToSubmitResponseDTO(result *domain.BookingResult) *SubmitResponseDTO {
	return &SubmitResponseDTO{
		Success:          result.Success,
		BookingReference: result.BookingReference,
		Message:          result.Message,
	}
}
