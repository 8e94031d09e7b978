package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name       string
		fare       float64
		passengers int
		meals      map[string]int
		baggage    []BaggageOptionID
		want       PricingBreakdown
	}{
		{
			name:       "three passengers no extras",
			fare:       200,
			passengers: 3,
			baggage:    []BaggageOptionID{BaggageStandard, BaggageStandard, BaggageStandard},
			want: PricingBreakdown{
				FlightCost:   600,
				MealsCost:    0,
				BaggageCost:  0,
				Subtotal:     600,
				TaxesAndFees: 90,
				TotalCost:    690,
			},
		},
		{
			name:       "single adult with beef coffee and extra baggage",
			fare:       100,
			passengers: 1,
			meals:      map[string]int{"beef": 1, "coffee": 1},
			baggage:    []BaggageOptionID{BaggageExtra},
			want: PricingBreakdown{
				FlightCost:   100,
				MealsCost:    23,
				BaggageCost:  50,
				Subtotal:     173,
				TaxesAndFees: 26, // round(25.95)
				TotalCost:    199,
			},
		},
		{
			name:       "tax rounds down below midpoint",
			fare:       40,
			passengers: 1,
			want: PricingBreakdown{
				FlightCost:   40,
				Subtotal:     40,
				TaxesAndFees: 6,
				TotalCost:    46,
			},
		},
		{
			name:       "premium baggage",
			fare:       250,
			passengers: 2,
			baggage:    []BaggageOptionID{BaggagePremium, BaggagePremium},
			want: PricingBreakdown{
				FlightCost:   500,
				BaggageCost:  240,
				Subtotal:     740,
				TaxesAndFees: 111,
				TotalCost:    851,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meals *MealSelection
			if tt.meals != nil {
				meals = NewMealSelectionFrom(tt.meals)
			}
			var baggage *BaggageSelection
			if tt.baggage != nil {
				baggage = NewBaggageSelectionFrom(tt.baggage)
			}

			got := ComputePricing(tt.fare, tt.passengers, meals, baggage)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Same inputs always produce the same breakdown, including the tax rounding.
func TestComputePricing_Deterministic(t *testing.T) {
	meals := NewMealSelectionFrom(map[string]int{"fish": 2, "juice": 1})
	baggage := NewBaggageSelectionFrom([]BaggageOptionID{BaggageExtra, BaggageStandard})

	first := ComputePricing(123.45, 2, meals, baggage)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputePricing(123.45, 2, meals, baggage))
	}

	assert.Equal(t, first.Subtotal, first.FlightCost+first.MealsCost+first.BaggageCost)
	assert.Equal(t, first.TotalCost, first.Subtotal+first.TaxesAndFees)
}

func TestComputePricing_NilSelections(t *testing.T) {
	got := ComputePricing(100, 2, nil, nil)
	assert.Equal(t, float64(200), got.FlightCost)
	assert.Equal(t, float64(0), got.MealsCost)
	assert.Equal(t, float64(0), got.BaggageCost)
	assert.Equal(t, float64(30), got.TaxesAndFees)
	assert.Equal(t, float64(230), got.TotalCost)
}
