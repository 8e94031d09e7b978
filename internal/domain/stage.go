package domain

// StageStatus describes the completion state of one workflow stage.
// Modelling this as an explicit enum keeps the gate logic a table lookup
// instead of scattered booleans.
type StageStatus string

// Stage statuses.
const (
	// StageNotStarted means the stage has not been touched.
	StageNotStarted StageStatus = "not_started"

	// StageOptionalSatisfied means an optional stage is in a valid state,
	// possibly with zero selections.
	StageOptionalSatisfied StageStatus = "optional_satisfied"

	// StageRequiredSatisfied means a required stage has met its rule.
	StageRequiredSatisfied StageStatus = "required_satisfied"

	// StageRequiredUnsatisfied means a required stage has been touched but
	// does not yet meet its rule.
	StageRequiredUnsatisfied StageStatus = "required_unsatisfied"
)

// Passes reports whether a gate accepts a stage in this status.
// Optional stages pass even when untouched.
func (s StageStatus) Passes() bool {
	switch s {
	case StageOptionalSatisfied, StageRequiredSatisfied:
		return true
	default:
		return false
	}
}

// StageName identifies a workflow stage.
type StageName string

// Workflow stages, in flow order.
const (
	StagePassengers StageName = "passengers"
	StageContact    StageName = "contact"
	StageSeats      StageName = "seats"
	StageMeals      StageName = "meals"
	StageBaggage    StageName = "baggage"
)

// Gate refusal reasons. The two Gate A reasons are mutually exclusive;
// when both stages fail, the passenger-details reason takes priority.
const (
	ReasonPassengerDetails = "complete passenger details"
	ReasonContactDetails   = "complete contact details"
	ReasonSeatSelection    = "select a seat for every passenger"
)

// StageStatuses is the per-stage status map for a workflow.
type StageStatuses map[StageName]StageStatus

// GateResult is the outcome of evaluating a gate.
type GateResult struct {
	// Open reports whether the workflow may advance past the gate
	Open bool `json:"open"`

	// Reason is the human-readable refusal reason when the gate is closed
	Reason string `json:"reason,omitempty"`
}

// PassengerStageStatus derives the passengers stage status from the slots.
func PassengerStageStatus(slots []PassengerSlot) StageStatus {
	if AllSlotsComplete(slots) {
		return StageRequiredSatisfied
	}
	for _, s := range slots {
		if s.Record != nil {
			return StageRequiredUnsatisfied
		}
	}
	return StageNotStarted
}

// ContactStageStatus derives the contact stage status from the record.
func ContactStageStatus(contact ContactRecord) StageStatus {
	if contact.IsComplete() {
		return StageRequiredSatisfied
	}
	if contact == (ContactRecord{}) {
		return StageNotStarted
	}
	return StageRequiredUnsatisfied
}

// SeatStageStatus derives the seats stage status from the selection.
func SeatStageStatus(seats *SeatSelection, totalPassengers int) StageStatus {
	if seats.IsComplete(totalPassengers) {
		return StageRequiredSatisfied
	}
	if seats.Count() == 0 {
		return StageNotStarted
	}
	return StageRequiredUnsatisfied
}

// MealStageStatus derives the meals stage status. Meals are an optional
// enhancement: zero selections is a valid complete state.
func MealStageStatus(meals *MealSelection) StageStatus {
	if meals.MainCourseTotal() == 0 && meals.BeverageTotal() == 0 {
		return StageNotStarted
	}
	return StageOptionalSatisfied
}

// BaggageStageStatus derives the baggage stage status. Every slot always
// holds a valid default tier, so the stage is satisfied by construction.
func BaggageStageStatus() StageStatus {
	return StageOptionalSatisfied
}

// EvaluateGateA evaluates the passenger-details to options gate: every
// passenger slot must hold a valid record and the contact record must be
// complete. The refusal reasons are mutually exclusive, with the
// passenger-details reason taking priority when both fail.
func EvaluateGateA(statuses StageStatuses) GateResult {
	if !statuses[StagePassengers].Passes() {
		return GateResult{Reason: ReasonPassengerDetails}
	}
	if !statuses[StageContact].Passes() {
		return GateResult{Reason: ReasonContactDetails}
	}
	return GateResult{Open: true}
}

// EvaluateGateB evaluates the options to payment gate. Meals and baggage
// are satisfied by construction, so in practice only the seat-count
// equality gates; that is intentional.
func EvaluateGateB(statuses StageStatuses) GateResult {
	for _, stage := range []StageName{StageSeats, StageMeals, StageBaggage} {
		st, ok := statuses[stage]
		if !ok {
			st = StageNotStarted
		}
		if stage == StageMeals || stage == StageBaggage {
			// Optional stages pass even untouched.
			if st == StageNotStarted {
				continue
			}
		}
		if !st.Passes() {
			return GateResult{Reason: ReasonSeatSelection}
		}
	}
	return GateResult{Open: true}
}
