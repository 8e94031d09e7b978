package domain

import "math"

// taxRate is the taxes-and-fees rate applied to the subtotal.
const taxRate = 0.15

// PricingBreakdown is the itemized cost of the configured booking.
// All lines are exact except TaxesAndFees, which is rounded to the nearest
// whole currency unit. The UI and the final payload must agree bit-for-bit,
// so the rounding lives here and nowhere else.
type PricingBreakdown struct {
	// FlightCost is the base fare multiplied by the passenger count
	FlightCost float64 `json:"flightCost"`

	// MealsCost is the sum of selected meal and beverage prices
	MealsCost float64 `json:"mealsCost"`

	// BaggageCost is the sum of the per-passenger baggage tier prices
	BaggageCost float64 `json:"baggageCost"`

	// Subtotal is the sum of the three cost lines
	Subtotal float64 `json:"subtotal"`

	// TaxesAndFees is the subtotal times the tax rate, rounded to the
	// nearest whole unit
	TaxesAndFees float64 `json:"taxesAndFees"`

	// TotalCost is the subtotal plus taxes and fees
	TotalCost float64 `json:"totalCost"`
}

// ComputePricing derives the itemized total from the flight fare, the
// passenger count, and the option selections. It is a pure function: the
// same inputs always produce the same breakdown, including the tax
// rounding.
func ComputePricing(fare float64, totalPassengers int, meals *MealSelection, baggage *BaggageSelection) PricingBreakdown {
	flightCost := fare * float64(totalPassengers)

	var mealsCost float64
	if meals != nil {
		mealsCost = meals.Cost()
	}

	var baggageCost float64
	if baggage != nil {
		baggageCost = baggage.Cost()
	}

	subtotal := flightCost + mealsCost + baggageCost
	taxes := math.Round(subtotal * taxRate)

	return PricingBreakdown{
		FlightCost:   flightCost,
		MealsCost:    mealsCost,
		BaggageCost:  baggageCost,
		Subtotal:     subtotal,
		TaxesAndFees: taxes,
		TotalCost:    subtotal + taxes,
	}
}
