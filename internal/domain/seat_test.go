package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatMap(t *testing.T) {
	seats := SeatMap()
	require.Len(t, seats, SeatRows*6)

	byID := make(map[string]Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	assert.True(t, byID["1A"].Premium, "row 1 is premium")
	assert.True(t, byID["5F"].Premium, "row 5 is premium")
	assert.False(t, byID["6A"].Premium, "row 6 is not premium")

	assert.True(t, byID["7A"].Occupied)
	assert.False(t, byID["12A"].Occupied)
}

func TestSeatSelection_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		initial   []string
		seatID    string
		capacity  int
		wantMoved bool
		wantCount int
	}{
		{
			name:      "select free seat under capacity",
			seatID:    "12A",
			capacity:  2,
			wantMoved: true,
			wantCount: 1,
		},
		{
			name:      "toggle selected seat off",
			initial:   []string{"12A"},
			seatID:    "12A",
			capacity:  2,
			wantMoved: true,
			wantCount: 0,
		},
		{
			name:      "occupied seat refused",
			seatID:    "7A",
			capacity:  2,
			wantMoved: false,
			wantCount: 0,
		},
		{
			name:      "unknown seat refused",
			seatID:    "99Z",
			capacity:  2,
			wantMoved: false,
			wantCount: 0,
		},
		{
			name:      "select at capacity refused",
			initial:   []string{"12A", "12B"},
			seatID:    "12C",
			capacity:  2,
			wantMoved: false,
			wantCount: 2,
		},
		{
			name:      "deselect at capacity allowed",
			initial:   []string{"12A", "12B"},
			seatID:    "12B",
			capacity:  2,
			wantMoved: true,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSeatSelectionFrom(tt.initial)
			moved := sel.Toggle(tt.seatID, tt.capacity)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantCount, sel.Count())
		})
	}
}

// The selection count never exceeds capacity under any toggle sequence, and
// toggling the same seat twice returns to the starting state.
func TestSeatSelection_CapacityInvariant(t *testing.T) {
	sel := NewSeatSelection()
	capacity := 3

	ids := []string{"10A", "10B", "10C", "10D", "10E", "10F", "11A", "11B"}
	for _, id := range ids {
		sel.Toggle(id, capacity)
		assert.LessOrEqual(t, sel.Count(), capacity)
	}
	assert.Equal(t, capacity, sel.Count())

	// Double toggle is a round trip, not a no-op then error.
	before := sel.Contains("10A")
	sel.Toggle("10A", capacity)
	sel.Toggle("10A", capacity)
	assert.Equal(t, before, sel.Contains("10A"))
	assert.Equal(t, capacity, sel.Count())
}

func TestSeatSelection_IsComplete(t *testing.T) {
	sel := NewSeatSelectionFrom([]string{"12A"})
	assert.False(t, sel.IsComplete(2))

	sel.Toggle("12B", 2)
	assert.True(t, sel.IsComplete(2))
}

func TestSeatSelection_IDsSorted(t *testing.T) {
	sel := NewSeatSelectionFrom([]string{"12C", "12A", "12B"})
	assert.Equal(t, []string{"12A", "12B", "12C"}, sel.IDs())
}

func TestIsKnownSeat(t *testing.T) {
	assert.True(t, IsKnownSeat("1A"))
	assert.True(t, IsKnownSeat("30F"))
	assert.False(t, IsKnownSeat("31A"))
	assert.False(t, IsKnownSeat("0A"))
	assert.False(t, IsKnownSeat("12G"))
	assert.False(t, IsKnownSeat("A12"))
	assert.False(t, IsKnownSeat(""))
}

// Only the canonical spelling names a seat: a zero-padded row must not
// slip past the occupied set or count as a second copy of the same seat.
func TestIsKnownSeat_RejectsNonCanonicalSpellings(t *testing.T) {
	assert.False(t, IsKnownSeat("01A"))
	assert.False(t, IsKnownSeat("012A"))
	assert.False(t, IsKnownSeat("+1A"))
	assert.False(t, IsKnownSeat("1a"))

	sel := NewSeatSelection()
	assert.False(t, sel.Toggle("01A", 1), "padded spelling of an occupied seat is refused")
	assert.Equal(t, 0, sel.Count())

	require.True(t, sel.Toggle("12A", 2))
	assert.False(t, sel.Toggle("012A", 2), "padded duplicate cannot consume a second slot")
	assert.Equal(t, []string{"12A"}, sel.IDs())
}
