package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// ErrPaymentNotConfigured is returned when online payment is requested
// but no payment provider is configured.
var ErrPaymentNotConfigured = errors.New("payment provider not configured")

// PaymentIntent is the subset of the provider's intent the storefront
// needs: the id is stored on the order, the client secret goes back to
// the browser to complete the payment.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentService defines the interface for online payment operations.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount float64, orderID string) (*PaymentIntent, error)
}

// stripeIntentAPI is the slice of the Stripe client used here, kept as
// an interface so tests can stub it.
type stripeIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripePaymentService implements PaymentService against Stripe.
// Amounts are rupees; Stripe wants paise, so everything is multiplied
// by 100 on the way out.
type StripePaymentService struct {
	intents  stripeIntentAPI
	currency string
}

// NewStripePaymentService creates a payment service with the given API key.
func NewStripePaymentService(apiKey, currency string) (*StripePaymentService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrPaymentNotConfigured
	}
	if currency == "" {
		currency = string(stripe.CurrencyINR)
	}
	sc := client.New(apiKey, nil)
	return &StripePaymentService{
		intents:  sc.PaymentIntents,
		currency: strings.ToLower(currency),
	}, nil
}

// NewStripePaymentServiceWithAPI creates a payment service with an
// injected intent API, used by tests.
func NewStripePaymentServiceWithAPI(api stripeIntentAPI, currency string) *StripePaymentService {
	return &StripePaymentService{intents: api, currency: strings.ToLower(currency)}
}

// CreateIntent creates a payment intent for the given rupee amount.
func (s *StripePaymentService) CreateIntent(ctx context.Context, amount float64, orderID string) (*PaymentIntent, error) {
	minorUnits := int64(math.Round(amount * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			"order_id": orderID,
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(orderID)

	intent, err := s.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
