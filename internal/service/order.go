package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/repository"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidStatus is returned for an unknown order status value.
var ErrInvalidStatus = errors.New("invalid order status")

// CheckoutResult is what the storefront gets back after placing an order.
// ClientSecret is only set for online payments.
type CheckoutResult struct {
	Order        *model.Order `json:"order"`
	ClientSecret string       `json:"client_secret,omitempty"`
}

// OrderService defines the interface for checkout and order management.
type OrderService interface {
	Checkout(ctx context.Context, sessionID string, delivery model.DeliveryDetails, paymentMethod string) (*CheckoutResult, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, opts repository.OrderQueryOptions) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
}

// OrderServiceImpl implements OrderService. Checkout snapshots the cart
// into an immutable order, optionally opens a payment intent, and then
// clears the cart. Order history is never recomputed from the catalog.
type OrderServiceImpl struct {
	carts   CartService
	orders  repository.OrdersRepositoryInterface
	payment PaymentService
}

// NewOrderService creates a new order service. A nil payment service
// restricts checkout to cash on delivery; a nil repository falls back
// to in-memory order storage.
func NewOrderService(carts CartService, orders repository.OrdersRepositoryInterface, payment PaymentService) *OrderServiceImpl {
	if orders == nil {
		orders = newMemoryOrderStore()
	}
	return &OrderServiceImpl{
		carts:   carts,
		orders:  orders,
		payment: payment,
	}
}

// Checkout places an order from the session's current cart.
func (s *OrderServiceImpl) Checkout(ctx context.Context, sessionID string, delivery model.DeliveryDetails, paymentMethod string) (*CheckoutResult, error) {
	snap, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		items = append(items, model.OrderItem{
			PizzaID:   line.Pizza.ID,
			PizzaName: line.Pizza.Name,
			Quantity:  line.Quantity,
			Price:     line.TotalPrice,
			Calories:  line.TotalCalories,
		})
	}

	now := time.Now()
	order := &model.Order{
		OrderID:       newOrderID(),
		SessionID:     sessionID,
		Status:        model.OrderStatusPending,
		Delivery:      delivery,
		Items:         items,
		TotalAmount:   snap.CartTotal,
		TotalCalories: snap.CartCalories,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result := &CheckoutResult{}
	if paymentMethod == model.PaymentMethodOnline {
		if s.payment == nil {
			return nil, ErrPaymentNotConfigured
		}
		intent, err := s.payment.CreateIntent(ctx, order.TotalAmount, order.OrderID)
		if err != nil {
			return nil, fmt.Errorf("checkout payment: %w", err)
		}
		order.PaymentIntentID = intent.ID
		result.ClientSecret = intent.ClientSecret
	}

	stored, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	result.Order = stored

	// The order is already placed; a cart that fails to clear only
	// costs the customer a manual clear.
	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Warn().
			Err(err).
			Str("order_id", stored.OrderID).
			Str("session_id", sessionID).
			Msg("Failed to clear cart after checkout")
	}

	return result, nil
}

// GetOrder returns a single order by its public id.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns orders newest-first plus the total matching count.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, opts repository.OrderQueryOptions) ([]model.Order, int64, error) {
	orders, err := s.orders.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.orders.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// UpdateStatus transitions an order to a new status.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// newOrderID mints a short public order id.
func newOrderID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + id[:10]
}

// memoryOrderStore keeps orders in process memory. Used when MongoDB
// is disabled; order history does not survive a restart.
type memoryOrderStore struct {
	mu     sync.RWMutex
	orders []model.Order
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{}
}

func (m *memoryOrderStore) Insert(_ context.Context, order *model.Order) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *order
	m.orders = append(m.orders, stored)
	return &stored, nil
}

func (m *memoryOrderStore) GetByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (m *memoryOrderStore) List(_ context.Context, opts repository.OrderQueryOptions) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := m.filter(opts)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	offset := int(opts.Offset)
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (m *memoryOrderStore) Count(_ context.Context, opts repository.OrderQueryOptions) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.filter(opts))), nil
}

func (m *memoryOrderStore) UpdateStatus(_ context.Context, orderID, status string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			m.orders[i].Status = status
			m.orders[i].UpdatedAt = time.Now()
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (m *memoryOrderStore) filter(opts repository.OrderQueryOptions) []model.Order {
	matched := make([]model.Order, 0, len(m.orders))
	search := strings.ToLower(opts.Search)
	for _, order := range m.orders {
		if opts.Status != "" && order.Status != opts.Status {
			continue
		}
		if opts.SessionID != "" && order.SessionID != opts.SessionID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(order.OrderID), search) &&
			!strings.Contains(strings.ToLower(order.Delivery.Name), search) &&
			!strings.Contains(strings.ToLower(order.Delivery.Email), search) {
			continue
		}
		matched = append(matched, order)
	}
	return matched
}
