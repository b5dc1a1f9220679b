package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/repository"
)

// ErrLineNotFound is returned when a cart line id does not exist.
var ErrLineNotFound = errors.New("cart line not found")

// CartService defines the interface for cart ledger operations.
// All mutations return the resulting snapshot with totals already
// recomputed, so callers never derive totals themselves.
type CartService interface {
	Get(ctx context.Context, sessionID string) (model.CartSnapshot, error)
	Add(ctx context.Context, sessionID string, pizza model.Pizza, quantity int) (model.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (model.CartSnapshot, error)
	Remove(ctx context.Context, sessionID, lineID string) (model.CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) (model.CartSnapshot, error)
}

// CartOption configures a CartServiceImpl.
type CartOption func(*CartServiceImpl)

// WithCartClock overrides the time source used to mint line ids.
func WithCartClock(now func() time.Time) CartOption {
	return func(s *CartServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// CartServiceImpl implements CartService on top of the pricing engine and
// a per-session persistence layer. Two lines merge when their pizzas have
// the same canonical configuration key; everything else stays separate.
type CartServiceImpl struct {
	pricing PricingEngine
	repo    repository.CartsRepositoryInterface
	now     func() time.Time
}

// NewCartService creates a new cart service. A nil repository falls back
// to an in-memory store, which is enough for a single instance.
func NewCartService(pricing PricingEngine, repo repository.CartsRepositoryInterface, opts ...CartOption) *CartServiceImpl {
	if repo == nil {
		repo = newMemoryCartStore()
	}
	s := &CartServiceImpl{
		pricing: pricing,
		repo:    repo,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current cart snapshot for a session.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (model.CartSnapshot, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return model.CartSnapshot{}, err
	}
	return snapshot(lines), nil
}

// Add puts quantity units of a pizza into the cart. If an existing line
// holds a structurally identical pizza the quantities merge into that
// line; otherwise a new line is appended.
func (s *CartServiceImpl) Add(ctx context.Context, sessionID string, pizza model.Pizza, quantity int) (model.CartSnapshot, error) {
	if quantity <= 0 {
		return model.CartSnapshot{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	quote, err := s.pricing.Quote(pizza)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	key := pizza.CanonicalKey()
	merged := false
	for i := range lines {
		if lines[i].Pizza.CanonicalKey() == key {
			// Accumulate the new totals onto the existing line.
			lines[i].Quantity += quantity
			lines[i].TotalPrice = round2(lines[i].TotalPrice + quote.UnitPrice*float64(quantity))
			lines[i].TotalCalories += quote.UnitCalories * quantity
			merged = true
			break
		}
	}

	if !merged {
		lines = append(lines, model.CartLine{
			ID:            fmt.Sprintf("%s-%d", pizza.ID, s.now().UnixMilli()),
			Pizza:         pizza,
			Quantity:      quantity,
			TotalPrice:    round2(quote.UnitPrice * float64(quantity)),
			TotalCalories: quote.UnitCalories * quantity,
		})
	}

	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		return model.CartSnapshot{}, err
	}
	return snapshot(lines), nil
}

// UpdateQuantity sets a line to an absolute quantity, recomputing its
// totals from a fresh quote. Zero or negative removes the line.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (model.CartSnapshot, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	idx := -1
	for i := range lines {
		if lines[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx == -1 {
		if quantity <= 0 {
			// Equivalent to removing an absent line, which is a no-op.
			return snapshot(lines), nil
		}
		return model.CartSnapshot{}, ErrLineNotFound
	}

	if quantity <= 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	} else {
		quote, err := s.pricing.Quote(lines[idx].Pizza)
		if err != nil {
			return model.CartSnapshot{}, err
		}
		lines[idx].Quantity = quantity
		lines[idx].TotalPrice = round2(quote.UnitPrice * float64(quantity))
		lines[idx].TotalCalories = quote.UnitCalories * quantity
	}

	if err := s.repo.Save(ctx, sessionID, lines); err != nil {
		return model.CartSnapshot{}, err
	}
	return snapshot(lines), nil
}

// Remove deletes a line. Removing an id that is not present is a no-op,
// not an error.
func (s *CartServiceImpl) Remove(ctx context.Context, sessionID, lineID string) (model.CartSnapshot, error) {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	for i := range lines {
		if lines[i].ID == lineID {
			lines = append(lines[:i], lines[i+1:]...)
			if err := s.repo.Save(ctx, sessionID, lines); err != nil {
				return model.CartSnapshot{}, err
			}
			break
		}
	}
	return snapshot(lines), nil
}

// Clear empties the cart for a session.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) (model.CartSnapshot, error) {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return model.CartSnapshot{}, err
	}
	return snapshot(nil), nil
}

// snapshot builds the externally visible cart state from the given lines.
func snapshot(lines []model.CartLine) model.CartSnapshot {
	if lines == nil {
		lines = []model.CartLine{}
	}
	snap := model.CartSnapshot{Lines: lines}
	snap.Recompute()
	return snap
}

// memoryCartStore is an in-memory CartsRepositoryInterface used when no
// database is configured.
type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]model.CartLine
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string][]model.CartLine)}
}

func (m *memoryCartStore) Load(_ context.Context, sessionID string) ([]model.CartLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.carts[sessionID]
	lines := make([]model.CartLine, len(stored))
	copy(lines, stored)
	return lines, nil
}

func (m *memoryCartStore) Save(_ context.Context, sessionID string, lines []model.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]model.CartLine, len(lines))
	copy(stored, lines)
	m.carts[sessionID] = stored
	return nil
}

func (m *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}
