package http

// StateDTO is the full workflow state returned by most endpoints. Every
// mutation endpoint responds with the refreshed state so the client never
// has to guess what a silent no-op left behind.
type StateDTO struct {
	SessionID  string         `json:"sessionId"`
	Flight     FlightDTO      `json:"flight"`
	Passengers PassengersDTO  `json:"passengers"`
	Contact    ContactDTO     `json:"contact"`
	Seats      []string       `json:"seats"`
	Meals      map[string]int `json:"meals"`
	Baggage    []string       `json:"baggage"`
	Stages     StagesDTO      `json:"stages"`
	Pricing    PricingDTO     `json:"pricing"`
}

// CountChangeDTO is the response to a passenger count adjustment. It adds
// the number of entered records dropped by a shrink, so the client can
// warn the user.
type CountChangeDTO struct {
	StateDTO
	DroppedRecords int `json:"droppedRecords"`
}

// FlightDTO is the flight context in responses.
type FlightDTO struct {
	ID           string         `json:"id"`
	FlightNumber string         `json:"flightNumber"`
	Airline      AirlineDTO     `json:"airline"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
	Price        PriceDTO       `json:"price"`
	Class        string         `json:"class"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FlightPointDTO represents a departure or arrival point. LocalTime is the
// schedule formatted in the airport's timezone for display.
type FlightPointDTO struct {
	AirportCode string `json:"airportCode"`
	DateTime    string `json:"dateTime"`
	LocalTime   string `json:"localTime,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PassengersDTO is the passengers block of the state.
type PassengersDTO struct {
	Counts CountsDTO `json:"counts"`
	Total  int       `json:"total"`
	Slots  []SlotDTO `json:"slots"`
}

// CountsDTO is the per-type passenger count breakdown.
type CountsDTO struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SlotDTO is one position in the ordered passenger list.
type SlotDTO struct {
	Index    int        `json:"index"`
	Type     string     `json:"type"`
	Record   *RecordDTO `json:"record,omitempty"`
	Complete bool       `json:"complete"`
}

// RecordDTO is an entered passenger identity record.
type RecordDTO struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ContactDTO is the contact block of the state.
type ContactDTO struct {
	ContactPerson string `json:"contactPerson"`
	Country       string `json:"country"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Complete      bool   `json:"complete"`
}

// StagesDTO is the derived stage and gate block of the state.
type StagesDTO struct {
	Statuses map[string]string `json:"statuses"`
	GateA    GateDTO           `json:"optionsGate"`
	GateB    GateDTO           `json:"paymentGate"`
}

// GateDTO is the outcome of one gate evaluation.
type GateDTO struct {
	Open   bool   `json:"open"`
	Reason string `json:"reason,omitempty"`
}

// PricingDTO is the itemized cost breakdown.
type PricingDTO struct {
	FlightCost   float64 `json:"flightCost"`
	MealsCost    float64 `json:"mealsCost"`
	BaggageCost  float64 `json:"baggageCost"`
	Subtotal     float64 `json:"subtotal"`
	TaxesAndFees float64 `json:"taxesAndFees"`
	TotalCost    float64 `json:"totalCost"`
	Currency     string  `json:"currency,omitempty"`
}

// SeatMapDTO is the response for the seat map endpoint.
type SeatMapDTO struct {
	Rows     int       `json:"rows"`
	Seats    []SeatDTO `json:"seats"`
	Selected []string  `json:"selected"`
	Capacity int       `json:"capacity"`
}

// SeatDTO is one seat in the cabin map.
type SeatDTO struct {
	ID       string `json:"id"`
	Row      int    `json:"row"`
	Letter   string `json:"letter"`
	Premium  bool   `json:"premium"`
	Occupied bool   `json:"occupied"`
	Selected bool   `json:"selected"`
}

// MealCatalogDTO is the response for the meals endpoint.
type MealCatalogDTO struct {
	Items      []MealItemDTO  `json:"items"`
	Selections map[string]int `json:"selections"`
	Capacity   int            `json:"capacity"`
}

// MealItemDTO is one menu item with its current selection.
type MealItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Beverage bool    `json:"beverage"`
	Quantity int     `json:"quantity"`
}

// BaggageOptionsDTO is the response for the baggage endpoint.
type BaggageOptionsDTO struct {
	Options     []BaggageOptionDTO `json:"options"`
	Assignments []string           `json:"assignments"`
}

// BaggageOptionDTO is one baggage allowance tier.
type BaggageOptionDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CheckedKg int     `json:"checkedKg"`
	Price     float64 `json:"price"`
}

// SubmitResponseDTO is the response for a successful submission.
type SubmitResponseDTO struct {
	Success          bool   `json:"success"`
	BookingReference string `json:"bookingReference,omitempty"`
	Message          string `json:"message,omitempty"`
}
