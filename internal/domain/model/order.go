package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values, in the order an order normally moves through them.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment method values accepted at checkout.
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// DeliveryDetails holds the customer-supplied delivery information
// captured at checkout.
type DeliveryDetails struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// OrderItem is a cart line snapshotted into an order. The pizza name and
// per-line totals are denormalized so the admin dashboard does not depend
// on the catalog of the day the order was placed.
type OrderItem struct {
	PizzaID   string  `json:"pizza_id" bson:"pizza_id"`
	PizzaName string  `json:"pizza_name" bson:"pizza_name"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
	Calories  int     `json:"calories" bson:"calories"`
}

// Order is a placed order as stored and served to the admin dashboard.
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderID       string             `json:"order_id" bson:"order_id"`
	SessionID     string             `json:"session_id" bson:"session_id"`
	Status        string             `json:"status" bson:"status"`
	Delivery      DeliveryDetails    `json:"delivery" bson:"delivery"`
	Items         []OrderItem        `json:"items" bson:"items"`
	TotalAmount   float64            `json:"total_amount" bson:"total_amount"`
	TotalCalories int                `json:"total_calories" bson:"total_calories"`
	PaymentMethod string             `json:"payment_method" bson:"payment_method"`
	// PaymentIntentID is set when an online payment intent was created.
	PaymentIntentID string    `json:"payment_intent_id,omitempty" bson:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
