package model

import (
	"fmt"
	"sort"
	"strings"
)

// CustomIDPrefix marks user-built pizzas. Pizzas whose id carries this
// prefix are subject to the customization price surcharge.
const CustomIDPrefix = "custom-"

// ToppingSelection pairs a topping with its gram quantity. The customizer
// keeps quantities in [10,70] in steps of 10; the pricing engine itself
// trusts its input.
type ToppingSelection struct {
	ToppingID     string `json:"topping_id" bson:"topping_id" binding:"required" example:"mushrooms"`
	QuantityGrams int    `json:"quantity_grams" bson:"quantity_grams" binding:"required,gt=0" example:"20"`
}

// Pizza is a fully specified pizza configuration, either a catalog preset
// or a customizer-built one, ready for pricing.
//
// @Description Pizza configuration referencing catalog entries by id
type Pizza struct {
	ID          string             `json:"id" bson:"id" example:"veggie-delight"`
	Name        string             `json:"name" bson:"name" example:"Veggie Delight"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	BasePrice   float64            `json:"base_price" bson:"base_price" example:"250"`
	BaseCalories int               `json:"base_calories" bson:"base_calories" example:"180"`
	Toppings    []ToppingSelection `json:"toppings" bson:"toppings"`
	CrustID     string             `json:"crust_id" bson:"crust_id" example:"wheat"`
	SauceID     string             `json:"sauce_id" bson:"sauce_id" example:"tomato"`
	SizeID      string             `json:"size_id" bson:"size_id" example:"medium"`
	// Vegan is derived: true iff every selected topping is vegan
	// (vacuously true with no toppings).
	Vegan    bool `json:"vegan" bson:"vegan"`
	Featured bool `json:"featured,omitempty" bson:"featured,omitempty"`
}

// IsCustom reports whether the pizza is user-built and therefore subject
// to the customization surcharge.
func (p Pizza) IsCustom() bool {
	return strings.HasPrefix(p.ID, CustomIDPrefix)
}

// CanonicalKey returns a deterministic identity for cart merging: pizza
// id, crust, sauce, size, and the topping selections sorted by topping id.
// Two additions merge into one cart line iff their keys are equal, so the
// key must not depend on topping insertion order.
func (p Pizza) CanonicalKey() string {
	selections := make([]ToppingSelection, len(p.Toppings))
	copy(selections, p.Toppings)
	sort.Slice(selections, func(i, j int) bool {
		return selections[i].ToppingID < selections[j].ToppingID
	})

	var b strings.Builder
	b.WriteString(p.ID)
	b.WriteByte('|')
	b.WriteString(p.CrustID)
	b.WriteByte('|')
	b.WriteString(p.SauceID)
	b.WriteByte('|')
	b.WriteString(p.SizeID)
	for _, sel := range selections {
		fmt.Fprintf(&b, "|%s:%d", sel.ToppingID, sel.QuantityGrams)
	}
	return b.String()
}
