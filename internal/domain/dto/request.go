// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"regexp"
	"strings"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// QuoteRequest asks for the unit price and calories of a pizza
// configuration. Powers the customizer's live summary.
//
// @Description Request to price a pizza configuration
type QuoteRequest struct {
	Pizza model.Pizza `json:"pizza" binding:"required"`
} // @name QuoteRequest

// Validate performs custom validation on the quote request.
func (r *QuoteRequest) Validate() error {
	return validatePizza(&r.Pizza)
}

// AddCartItemRequest adds a pizza to the session cart.
//
// @Description Request to add a pizza to the cart
type AddCartItemRequest struct {
	Pizza model.Pizza `json:"pizza" binding:"required"`
	// Quantity must be a positive integer.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"1" minimum:"1"`
} // @name AddCartItemRequest

// ErrInvalidQuantity is returned when quantity is not a positive integer.
var ErrInvalidQuantity = &ValidationError{
	Field:   "quantity",
	Message: "must be a positive integer",
}

// Validate performs custom validation on the add request.
func (r *AddCartItemRequest) Validate() error {
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return validatePizza(&r.Pizza)
}

// UpdateCartItemRequest changes the quantity of an existing cart line.
// A non-positive quantity removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateCartItemRequest

// FilterMenuRequest filters the preset menu. Omitted predicates are
// unconstrained.
//
// @Description Menu filter criteria
// @Example {"vegan": true, "max_calories": 600}
type FilterMenuRequest struct {
	Vegan       *bool `json:"vegan,omitempty" example:"true"`
	MaxCalories *int  `json:"max_calories,omitempty" example:"600"`
} // @name FilterMenuRequest

// CheckoutRequest places an order from the current cart.
//
// @Description Checkout with delivery details and payment method
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required" example:"Asha Rao"`
	Email   string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone   string `json:"phone" binding:"required" example:"9876543210"`
	Address string `json:"address" binding:"required" example:"12 MG Road"`
	City    string `json:"city" binding:"required" example:"Bengaluru"`
	Pincode string `json:"pincode" binding:"required" example:"560001"`
	// PaymentMethod is "cod" or "online".
	PaymentMethod string `json:"payment_method" binding:"required" example:"cod"`
} // @name CheckoutRequest

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	emailPattern   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Validate performs custom validation on the checkout request.
func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		return &ValidationError{Field: "email", Message: "email is invalid"}
	}
	if !phonePattern.MatchString(strings.TrimSpace(r.Phone)) {
		return &ValidationError{Field: "phone", Message: "phone number must be 10 digits"}
	}
	if strings.TrimSpace(r.Address) == "" {
		return &ValidationError{Field: "address", Message: "address is required"}
	}
	if strings.TrimSpace(r.City) == "" {
		return &ValidationError{Field: "city", Message: "city is required"}
	}
	if !pincodePattern.MatchString(strings.TrimSpace(r.Pincode)) {
		return &ValidationError{Field: "pincode", Message: "pincode must be 6 digits"}
	}
	if r.PaymentMethod != model.PaymentMethodCOD && r.PaymentMethod != model.PaymentMethodOnline {
		return &ValidationError{Field: "payment_method", Message: `must be "cod" or "online"`}
	}
	return nil
}

// DeliveryDetails converts the request to the domain delivery record.
func (r *CheckoutRequest) DeliveryDetails() model.DeliveryDetails {
	return model.DeliveryDetails{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
		City:    strings.TrimSpace(r.City),
		Pincode: strings.TrimSpace(r.Pincode),
	}
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"processing"`
} // @name UpdateOrderStatusRequest

// Validate performs custom validation on the status update request.
func (r *UpdateOrderStatusRequest) Validate() error {
	if !model.ValidOrderStatus(r.Status) {
		return &ValidationError{Field: "status", Message: "unknown order status"}
	}
	return nil
}

// validatePizza checks the structural fields the engine itself does not
// validate. Catalog membership of referenced ids is the engine's concern.
func validatePizza(p *model.Pizza) error {
	if p.ID == "" {
		return &ValidationError{Field: "pizza.id", Message: "id is required"}
	}
	if p.SizeID == "" || p.CrustID == "" || p.SauceID == "" {
		return &ValidationError{Field: "pizza", Message: "size_id, crust_id, and sauce_id are required"}
	}
	for _, sel := range p.Toppings {
		if sel.ToppingID == "" {
			return &ValidationError{Field: "pizza.toppings", Message: "topping_id is required"}
		}
		if sel.QuantityGrams <= 0 {
			return &ValidationError{Field: "pizza.toppings", Message: "quantity_grams must be positive"}
		}
	}
	return nil
}

// StartDraftRequest begins a customizer draft, optionally seeded from a
// preset. An empty preset id starts from defaults.
type StartDraftRequest struct {
	PresetID string `json:"preset_id,omitempty" example:"veggie-delight"`
} // @name StartDraftRequest

// SetComponentRequest replaces the draft's size, crust, or sauce.
type SetComponentRequest struct {
	ID string `json:"id" binding:"required" example:"large"`
} // @name SetComponentRequest

// SetToppingGramsRequest sets the gram quantity for a selected topping.
// Values outside [10, 70] are clamped, not rejected.
type SetToppingGramsRequest struct {
	Grams int `json:"grams" binding:"required" example:"30"`
} // @name SetToppingGramsRequest

// SetDraftQuantityRequest sets the customizer's quantity selector.
type SetDraftQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0" example:"2"`
} // @name SetDraftQuantityRequest
