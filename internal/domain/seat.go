package domain

import (
	"fmt"
	"sort"
)

// Seat map dimensions for the configured cabin.
const (
	// SeatRows is the number of rows in the cabin.
	SeatRows = 30

	// PremiumRowLimit is the last row tagged as premium. Rows 1 through
	// PremiumRowLimit are cosmetic premium seats at the same price.
	PremiumRowLimit = 5
)

// seatLetters are the seat positions within a row.
var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// occupiedSeats is the fixed set of seats that are pre-marked occupied and
// can never be selected.
var occupiedSeats = map[string]bool{
	"1A": true, "2C": true, "3D": true, "4F": true, "5B": true,
	"7A": true, "7B": true, "9E": true, "11C": true, "12F": true,
	"14B": true, "15A": true, "15F": true, "18D": true, "20C": true,
	"21A": true, "23E": true, "25B": true, "27D": true, "28F": true,
}

// Seat describes a single seat in the cabin map.
type Seat struct {
	// ID is the seat identifier, row number followed by letter (e.g. "14C")
	ID string `json:"id"`

	// Row is the row number, starting at 1
	Row int `json:"row"`

	// Letter is the position within the row (A-F)
	Letter string `json:"letter"`

	// Premium marks rows 1-5; same price, cosmetic tag only
	Premium bool `json:"premium"`

	// Occupied marks seats that are unavailable for selection
	Occupied bool `json:"occupied"`
}

// SeatMap returns the full cabin seat map.
func SeatMap() []Seat {
	seats := make([]Seat, 0, SeatRows*len(seatLetters))
	for row := 1; row <= SeatRows; row++ {
		for _, letter := range seatLetters {
			id := fmt.Sprintf("%d%s", row, letter)
			seats = append(seats, Seat{
				ID:       id,
				Row:      row,
				Letter:   letter,
				Premium:  row <= PremiumRowLimit,
				Occupied: occupiedSeats[id],
			})
		}
	}
	return seats
}

// IsSeatOccupied reports whether the seat is in the fixed occupied set.
func IsSeatOccupied(seatID string) bool {
	return occupiedSeats[seatID]
}

// IsKnownSeat reports whether the seat ID exists in the cabin map. Only
// the canonical spelling counts: "1A" is a seat, "01A" is not, so every
// physical seat has exactly one ID for occupancy and capacity checks.
func IsKnownSeat(seatID string) bool {
	var row int
	var letter string
	if _, err := fmt.Sscanf(seatID, "%d%s", &row, &letter); err != nil {
		return false
	}
	if fmt.Sprintf("%d%s", row, letter) != seatID {
		return false
	}
	if row < 1 || row > SeatRows {
		return false
	}
	for _, l := range seatLetters {
		if l == letter {
			return true
		}
	}
	return false
}

// SeatSelection is the set of seats chosen for the booking. The selection
// must reach exactly the total passenger count before the seats stage is
// complete.
type SeatSelection struct {
	seats map[string]bool
}

// NewSeatSelection creates an empty seat selection.
func NewSeatSelection() *SeatSelection {
	return &SeatSelection{seats: make(map[string]bool)}
}

// NewSeatSelectionFrom creates a seat selection containing the given seats.
func NewSeatSelectionFrom(seatIDs []string) *SeatSelection {
	s := NewSeatSelection()
	for _, id := range seatIDs {
		s.seats[id] = true
	}
	return s
}

// Toggle flips the selection state of a seat.
//
// Occupied and unknown seats are refused. Deselecting is always allowed.
// Selecting is allowed only while the selection holds fewer seats than
// capacity; at capacity the call is silently refused rather than evicting
// an older selection. The return value reports whether anything changed.
func (s *SeatSelection) Toggle(seatID string, capacity int) bool {
	if !IsKnownSeat(seatID) || IsSeatOccupied(seatID) {
		return false
	}

	if s.seats[seatID] {
		delete(s.seats, seatID)
		return true
	}

	if len(s.seats) >= capacity {
		return false
	}
	s.seats[seatID] = true
	return true
}

// Contains reports whether the seat is currently selected.
func (s *SeatSelection) Contains(seatID string) bool {
	return s.seats[seatID]
}

// Count returns the number of selected seats.
func (s *SeatSelection) Count() int {
	return len(s.seats)
}

// IsComplete reports whether the selection holds exactly one seat per
// passenger.
func (s *SeatSelection) IsComplete(totalPassengers int) bool {
	return len(s.seats) == totalPassengers
}

// IDs returns the selected seat IDs in a stable sorted order.
func (s *SeatSelection) IDs() []string {
	ids := make([]string, 0, len(s.seats))
	for id := range s.seats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
