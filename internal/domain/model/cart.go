package model

// Quote is the pricing engine's result for a single pizza instance,
// before any quantity scaling.
//
// @Description Unit price and calorie quote for one pizza
// @Example {"unit_price": 397, "unit_calories": 630, "vegan": false}
type Quote struct {
	// UnitPrice is rounded to 2 decimal places.
	UnitPrice float64 `json:"unit_price" example:"397"`
	// UnitCalories is rounded to the nearest integer.
	UnitCalories int `json:"unit_calories" example:"630"`
	// Vegan is derived from the selected toppings.
	Vegan bool `json:"vegan"`
}

// CartLine is one entry in the cart ledger. TotalPrice and TotalCalories
// are line aggregates (already multiplied by Quantity), never unit values,
// and must only change through the ledger's add/update operations.
type CartLine struct {
	// ID is unique per line, minted from the pizza id and creation time.
	ID           string  `json:"id" bson:"id"`
	Pizza        Pizza   `json:"pizza" bson:"pizza"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	TotalPrice   float64 `json:"total_price" bson:"total_price"`
	TotalCalories int    `json:"total_calories" bson:"total_calories"`
}

// CartSnapshot is the externally visible cart state: the ordered lines
// plus totals recomputed as plain sums over them.
//
// @Description Cart contents with derived totals
type CartSnapshot struct {
	Lines        []CartLine `json:"lines" bson:"lines"`
	CartTotal    float64    `json:"cart_total" bson:"cart_total"`
	CartCalories int        `json:"cart_calories" bson:"cart_calories"`
}

// Recompute refreshes the derived totals from the current lines.
func (s *CartSnapshot) Recompute() {
	s.CartTotal = 0
	s.CartCalories = 0
	for _, line := range s.Lines {
		s.CartTotal += line.TotalPrice
		s.CartCalories += line.TotalCalories
	}
}
