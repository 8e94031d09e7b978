package domain

// BaggageOptionID identifies a baggage allowance tier.
type BaggageOptionID string

// Baggage allowance tiers.
const (
	BaggageStandard BaggageOptionID = "standard"
	BaggageExtra    BaggageOptionID = "extra"
	BaggagePremium  BaggageOptionID = "premium"
)

// BaggageOption describes a baggage allowance tier.
type BaggageOption struct {
	// ID is the tier identifier
	ID BaggageOptionID `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// CheckedKg is the included checked baggage allowance in kilograms
	CheckedKg int `json:"checkedKg"`

	// Price is the tier price in whole currency units
	Price float64 `json:"price"`
}

// baggageOptions is the fixed tier table.
var baggageOptions = map[BaggageOptionID]BaggageOption{
	BaggageStandard: {ID: BaggageStandard, Name: "Standard", CheckedKg: 20, Price: 0},
	BaggageExtra:    {ID: BaggageExtra, Name: "Extra", CheckedKg: 30, Price: 50},
	BaggagePremium:  {ID: BaggagePremium, Name: "Premium", CheckedKg: 40, Price: 120},
}

// BaggageOptions returns the available tiers in ascending price order.
func BaggageOptions() []BaggageOption {
	return []BaggageOption{
		baggageOptions[BaggageStandard],
		baggageOptions[BaggageExtra],
		baggageOptions[BaggagePremium],
	}
}

// LookupBaggageOption returns the tier for the given ID.
func LookupBaggageOption(id BaggageOptionID) (BaggageOption, bool) {
	opt, ok := baggageOptions[id]
	return opt, ok
}

// BaggageSelection holds one baggage tier per passenger slot. Every slot
// starts at the standard tier, so the baggage stage is always complete by
// construction.
type BaggageSelection struct {
	assignments []BaggageOptionID
}

// NewBaggageSelection creates a selection with every slot at the standard
// tier.
func NewBaggageSelection(totalPassengers int) *BaggageSelection {
	assignments := make([]BaggageOptionID, totalPassengers)
	for i := range assignments {
		assignments[i] = BaggageStandard
	}
	return &BaggageSelection{assignments: assignments}
}

// NewBaggageSelectionFrom creates a selection from existing assignments,
// normalising unknown tiers to standard.
func NewBaggageSelectionFrom(assignments []BaggageOptionID) *BaggageSelection {
	out := make([]BaggageOptionID, len(assignments))
	for i, id := range assignments {
		if _, ok := baggageOptions[id]; ok {
			out[i] = id
		} else {
			out[i] = BaggageStandard
		}
	}
	return &BaggageSelection{assignments: out}
}

// Resize adjusts the selection to the given passenger count, preserving
// assignments by position. New slots start at the standard tier.
func (s *BaggageSelection) Resize(totalPassengers int) {
	if totalPassengers == len(s.assignments) {
		return
	}
	next := make([]BaggageOptionID, totalPassengers)
	for i := range next {
		if i < len(s.assignments) {
			next[i] = s.assignments[i]
		} else {
			next[i] = BaggageStandard
		}
	}
	s.assignments = next
}

// Set assigns a tier to the passenger at the given index. The overwrite is
// unconditional; every slot always holds a valid tier. Out-of-range indexes
// and unknown tiers are refused.
func (s *BaggageSelection) Set(index int, id BaggageOptionID) bool {
	if index < 0 || index >= len(s.assignments) {
		return false
	}
	if _, ok := baggageOptions[id]; !ok {
		return false
	}
	s.assignments[index] = id
	return true
}

// Get returns the tier assigned to the passenger at the given index.
func (s *BaggageSelection) Get(index int) BaggageOptionID {
	if index < 0 || index >= len(s.assignments) {
		return BaggageStandard
	}
	return s.assignments[index]
}

// Assignments returns a copy of the per-passenger assignments.
func (s *BaggageSelection) Assignments() []BaggageOptionID {
	out := make([]BaggageOptionID, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Cost returns the total price of the assigned tiers.
func (s *BaggageSelection) Cost() float64 {
	var cost float64
	for _, id := range s.assignments {
		cost += baggageOptions[id].Price
	}
	return cost
}
