// Package model defines the core domain entities for the pizza service.
package model

import "fmt"

// Size represents a pizza size option. Both multipliers apply to the
// pizza's base values, not to crust, sauce, or topping contributions.
//
// @Description Pizza size with price and calorie multipliers
// @Example {"id": "medium", "name": "Medium", "price_multiplier": 1, "calorie_multiplier": 1}
type Size struct {
	ID string `json:"id" bson:"id" example:"medium"`
	// Name is the customer-facing label.
	Name string `json:"name" bson:"name" example:"Medium"`
	// PriceMultiplier scales the pizza's base price.
	PriceMultiplier float64 `json:"price_multiplier" bson:"price_multiplier" example:"1"`
	// CalorieMultiplier scales the pizza's base calories.
	CalorieMultiplier float64 `json:"calorie_multiplier" bson:"calorie_multiplier" example:"1"`
}

// Crust represents a crust option with a flat price and calorie addition.
type Crust struct {
	ID          string  `json:"id" bson:"id" example:"wheat"`
	Name        string  `json:"name" bson:"name" example:"Whole Wheat"`
	Price       float64 `json:"price" bson:"price" example:"40"`
	Calories    int     `json:"calories" bson:"calories" example:"150"`
	Description string  `json:"description" bson:"description"`
}

// Sauce represents a sauce option with a flat price and calorie addition.
type Sauce struct {
	ID       string  `json:"id" bson:"id" example:"tomato"`
	Name     string  `json:"name" bson:"name" example:"Fresh Tomato"`
	Price    float64 `json:"price" bson:"price" example:"20"`
	Calories int     `json:"calories" bson:"calories" example:"30"`
}

// Topping represents a topping option. Price is per gram; the calorie
// figure is per 10-gram unit.
type Topping struct {
	ID           string  `json:"id" bson:"id" example:"mushrooms"`
	Name         string  `json:"name" bson:"name" example:"Mushrooms"`
	PricePerGram float64 `json:"price_per_gram" bson:"price_per_gram" example:"0.6"`
	// CaloriesPer10g is the calorie content of a 10-gram portion.
	CaloriesPer10g int  `json:"calories_per_10g" bson:"calories_per_10g" example:"20"`
	Vegan          bool `json:"vegan" bson:"vegan" example:"true"`
}

// Catalog holds the static reference data every pizza configuration
// resolves against. It is loaded once at startup and never mutated.
type Catalog struct {
	Sizes    []Size
	Crusts   []Crust
	Sauces   []Sauce
	Toppings []Topping
	Presets  []Pizza

	sizeByID    map[string]Size
	crustByID   map[string]Crust
	sauceByID   map[string]Sauce
	toppingByID map[string]Topping
}

// NewCatalog builds a catalog with id lookup indexes.
func NewCatalog(sizes []Size, crusts []Crust, sauces []Sauce, toppings []Topping, presets []Pizza) *Catalog {
	c := &Catalog{
		Sizes:       sizes,
		Crusts:      crusts,
		Sauces:      sauces,
		Toppings:    toppings,
		Presets:     presets,
		sizeByID:    make(map[string]Size, len(sizes)),
		crustByID:   make(map[string]Crust, len(crusts)),
		sauceByID:   make(map[string]Sauce, len(sauces)),
		toppingByID: make(map[string]Topping, len(toppings)),
	}
	for _, s := range sizes {
		c.sizeByID[s.ID] = s
	}
	for _, cr := range crusts {
		c.crustByID[cr.ID] = cr
	}
	for _, s := range sauces {
		c.sauceByID[s.ID] = s
	}
	for _, t := range toppings {
		c.toppingByID[t.ID] = t
	}
	return c
}

// ConfigResolutionError reports a pizza configuration referencing a
// catalog id that does not exist. Serving a wrong price is worse than
// failing loudly, so callers must treat this as fatal to the operation.
type ConfigResolutionError struct {
	Kind string // "size", "crust", "sauce", or "topping"
	ID   string
}

// Error implements the error interface.
func (e *ConfigResolutionError) Error() string {
	return fmt.Sprintf("unknown %s id %q in pizza configuration", e.Kind, e.ID)
}

// SizeByID resolves a size id.
func (c *Catalog) SizeByID(id string) (Size, error) {
	s, ok := c.sizeByID[id]
	if !ok {
		return Size{}, &ConfigResolutionError{Kind: "size", ID: id}
	}
	return s, nil
}

// CrustByID resolves a crust id.
func (c *Catalog) CrustByID(id string) (Crust, error) {
	cr, ok := c.crustByID[id]
	if !ok {
		return Crust{}, &ConfigResolutionError{Kind: "crust", ID: id}
	}
	return cr, nil
}

// SauceByID resolves a sauce id.
func (c *Catalog) SauceByID(id string) (Sauce, error) {
	s, ok := c.sauceByID[id]
	if !ok {
		return Sauce{}, &ConfigResolutionError{Kind: "sauce", ID: id}
	}
	return s, nil
}

// ToppingByID resolves a topping id.
func (c *Catalog) ToppingByID(id string) (Topping, error) {
	t, ok := c.toppingByID[id]
	if !ok {
		return Topping{}, &ConfigResolutionError{Kind: "topping", ID: id}
	}
	return t, nil
}
