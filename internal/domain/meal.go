package domain

import "sort"

// MealItem is one entry in the in-flight menu.
type MealItem struct {
	// ID is the menu item identifier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Price is the unit price in whole currency units
	Price float64 `json:"price"`

	// Beverage distinguishes the beverage catalog from the main courses.
	// The two catalogs are capped independently.
	Beverage bool `json:"beverage"`
}

// mealCatalog is the fixed menu. Main courses and beverages are two
// disjoint catalogs; each has its own quantity cap.
var mealCatalog = map[string]MealItem{
	"chicken": {ID: "chicken", Name: "Grilled Chicken", Price: 15},
	"beef":    {ID: "beef", Name: "Beef Tenderloin", Price: 20},
	"fish":    {ID: "fish", Name: "Baked Fish", Price: 18},
	"pasta":   {ID: "pasta", Name: "Pasta Primavera", Price: 12},
	"salad":   {ID: "salad", Name: "Garden Salad", Price: 10},
	"vegan":   {ID: "vegan", Name: "Vegan Platter", Price: 14},
	"coffee":  {ID: "coffee", Name: "Coffee", Price: 3, Beverage: true},
	"tea":     {ID: "tea", Name: "Tea", Price: 2, Beverage: true},
	"juice":   {ID: "juice", Name: "Fruit Juice", Price: 5, Beverage: true},
	"soda":    {ID: "soda", Name: "Soda", Price: 3, Beverage: true},
	"water":   {ID: "water", Name: "Mineral Water", Price: 0, Beverage: true},
}

// MealCatalog returns the full menu in a stable order, main courses first.
func MealCatalog() []MealItem {
	items := make([]MealItem, 0, len(mealCatalog))
	for _, item := range mealCatalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Beverage != items[j].Beverage {
			return !items[i].Beverage
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// LookupMealItem returns the menu item for the given ID.
func LookupMealItem(itemID string) (MealItem, bool) {
	item, ok := mealCatalog[itemID]
	return item, ok
}

// MealSelection maps menu item IDs to chosen quantities. Quantities that
// reach zero are removed, keeping the map sparse. The meals stage has no
// required minimum: an empty selection is a valid complete state.
type MealSelection struct {
	quantities map[string]int
}

// NewMealSelection creates an empty meal selection.
func NewMealSelection() *MealSelection {
	return &MealSelection{quantities: make(map[string]int)}
}

// NewMealSelectionFrom creates a meal selection from existing quantities.
// Non-positive quantities and unknown items are dropped.
func NewMealSelectionFrom(quantities map[string]int) *MealSelection {
	s := NewMealSelection()
	for id, qty := range quantities {
		if qty > 0 {
			if _, ok := mealCatalog[id]; ok {
				s.quantities[id] = qty
			}
		}
	}
	return s
}

// Adjust changes the quantity of a menu item by delta.
//
// The new quantity is clamped at zero; reaching zero removes the key.
// Increments are refused when the item's catalog (main courses or
// beverages, tracked independently) is already at capacity. The return
// value reports whether anything changed.
func (s *MealSelection) Adjust(itemID string, delta int, capacity int) bool {
	item, ok := mealCatalog[itemID]
	if !ok || delta == 0 {
		return false
	}

	current := s.quantities[itemID]

	if delta > 0 {
		if s.catalogTotal(item.Beverage)+delta > capacity {
			return false
		}
		s.quantities[itemID] = current + delta
		return true
	}

	next := current + delta
	if next < 0 {
		next = 0
	}
	if next == current {
		return false
	}
	if next == 0 {
		delete(s.quantities, itemID)
	} else {
		s.quantities[itemID] = next
	}
	return true
}

// catalogTotal sums the quantities in one catalog.
func (s *MealSelection) catalogTotal(beverage bool) int {
	total := 0
	for id, qty := range s.quantities {
		if mealCatalog[id].Beverage == beverage {
			total += qty
		}
	}
	return total
}

// MainCourseTotal returns the total main-course quantity.
func (s *MealSelection) MainCourseTotal() int {
	return s.catalogTotal(false)
}

// BeverageTotal returns the total beverage quantity.
func (s *MealSelection) BeverageTotal() int {
	return s.catalogTotal(true)
}

// Quantity returns the selected quantity for an item.
func (s *MealSelection) Quantity(itemID string) int {
	return s.quantities[itemID]
}

// Quantities returns a copy of the sparse quantity map.
func (s *MealSelection) Quantities() map[string]int {
	out := make(map[string]int, len(s.quantities))
	for id, qty := range s.quantities {
		out[id] = qty
	}
	return out
}

// Cost returns the total price of the selection.
func (s *MealSelection) Cost() float64 {
	var cost float64
	for id, qty := range s.quantities {
		cost += mealCatalog[id].Price * float64(qty)
	}
	return cost
}
