package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

// Gram bounds for a single topping, enforced when quantities are set.
const (
	MinToppingGrams     = 10
	MaxToppingGrams     = 70
	DefaultToppingGrams = 20
)

// Custom pizza defaults used when a draft starts from scratch rather
// than from a preset.
const (
	customBasePrice    = 250
	customBaseCalories = 250
)

// ErrNoDraft is returned when a session has no customizer draft yet.
var ErrNoDraft = errors.New("no active customizer draft")

// ErrPresetNotFound is returned when a draft references an unknown preset.
var ErrPresetNotFound = errors.New("preset not found")

// DraftView is the externally visible customizer state: the pizza the
// draft currently describes, its live quote, and the quantity selector.
type DraftView struct {
	Pizza    model.Pizza `json:"pizza"`
	Quote    model.Quote `json:"quote"`
	Quantity int         `json:"quantity"`
}

// CustomizerService defines the interface for the build-your-own flow.
// Every transition returns the refreshed view so callers always see the
// pizza, price, and calories the draft currently describes.
type CustomizerService interface {
	Start(ctx context.Context, sessionID, presetID string) (DraftView, error)
	Current(ctx context.Context, sessionID string) (DraftView, error)
	SetSize(ctx context.Context, sessionID, sizeID string) (DraftView, error)
	SetCrust(ctx context.Context, sessionID, crustID string) (DraftView, error)
	SetSauce(ctx context.Context, sessionID, sauceID string) (DraftView, error)
	ToggleTopping(ctx context.Context, sessionID, toppingID string) (DraftView, error)
	SetToppingQuantity(ctx context.Context, sessionID, toppingID string, grams int) (DraftView, error)
	SetQuantity(ctx context.Context, sessionID string, quantity int) (DraftView, error)
	Commit(ctx context.Context, sessionID string) (model.CartSnapshot, DraftView, error)
}

// draft is the pending configuration for one session.
type draft struct {
	name         string
	description  string
	image        string
	basePrice    float64
	baseCalories int
	sizeID       string
	crustID      string
	sauceID      string
	selected     map[string]bool
	grams        map[string]int
	quantity     int
}

// CustomizerServiceImpl implements CustomizerService with in-memory
// per-session drafts. Drafts are transient; only committed pizzas reach
// the cart ledger.
type CustomizerServiceImpl struct {
	catalog *model.Catalog
	pricing PricingEngine
	carts   CartService

	mu     sync.RWMutex
	drafts map[string]*draft

	now func() time.Time
}

// CustomizerOption configures a CustomizerServiceImpl.
type CustomizerOption func(*CustomizerServiceImpl)

// WithCustomizerClock overrides the time source used to mint custom
// pizza ids.
func WithCustomizerClock(now func() time.Time) CustomizerOption {
	return func(s *CustomizerServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCustomizerService creates a new customizer service.
func NewCustomizerService(catalog *model.Catalog, pricing PricingEngine, carts CartService, opts ...CustomizerOption) *CustomizerServiceImpl {
	s := &CustomizerServiceImpl{
		catalog: catalog,
		pricing: pricing,
		carts:   carts,
		drafts:  make(map[string]*draft),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a draft for a session. An empty presetID seeds from
// defaults (first size, crust, and sauce, no toppings); otherwise the
// draft copies the preset's configuration for editing.
func (s *CustomizerServiceImpl) Start(ctx context.Context, sessionID, presetID string) (DraftView, error) {
	d := &draft{
		selected: make(map[string]bool),
		grams:    make(map[string]int),
		quantity: 1,
	}

	if presetID == "" {
		d.name = "Custom Pizza"
		d.basePrice = customBasePrice
		d.baseCalories = customBaseCalories
		d.sizeID = s.catalog.Sizes[0].ID
		d.crustID = s.catalog.Crusts[0].ID
		d.sauceID = s.catalog.Sauces[0].ID
	} else {
		var preset model.Pizza
		found := false
		for _, p := range s.catalog.Presets {
			if p.ID == presetID {
				preset = p
				found = true
				break
			}
		}
		if !found {
			return DraftView{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
		}
		d.name = preset.Name
		d.description = preset.Description
		d.image = preset.Image
		d.basePrice = preset.BasePrice
		d.baseCalories = preset.BaseCalories
		d.sizeID = preset.SizeID
		d.crustID = preset.CrustID
		d.sauceID = preset.SauceID
		for _, sel := range preset.Toppings {
			d.selected[sel.ToppingID] = true
			d.grams[sel.ToppingID] = sel.QuantityGrams
		}
	}

	s.mu.Lock()
	s.drafts[sessionID] = d
	s.mu.Unlock()

	return s.view(d)
}

// Current returns the session's draft without modifying it.
func (s *CustomizerServiceImpl) Current(ctx context.Context, sessionID string) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	return s.view(d)
}

// SetSize replaces the draft's size.
func (s *CustomizerServiceImpl) SetSize(ctx context.Context, sessionID, sizeID string) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if _, err := s.catalog.SizeByID(sizeID); err != nil {
		return DraftView{}, err
	}
	s.mu.Lock()
	d.sizeID = sizeID
	s.mu.Unlock()
	return s.view(d)
}

// SetCrust replaces the draft's crust.
func (s *CustomizerServiceImpl) SetCrust(ctx context.Context, sessionID, crustID string) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if _, err := s.catalog.CrustByID(crustID); err != nil {
		return DraftView{}, err
	}
	s.mu.Lock()
	d.crustID = crustID
	s.mu.Unlock()
	return s.view(d)
}

// SetSauce replaces the draft's sauce.
func (s *CustomizerServiceImpl) SetSauce(ctx context.Context, sessionID, sauceID string) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if _, err := s.catalog.SauceByID(sauceID); err != nil {
		return DraftView{}, err
	}
	s.mu.Lock()
	d.sauceID = sauceID
	s.mu.Unlock()
	return s.view(d)
}

// ToggleTopping flips a topping in or out of the draft. First selection
// seeds the default gram quantity; deselecting keeps the stored grams so
// re-selecting restores them.
func (s *CustomizerServiceImpl) ToggleTopping(ctx context.Context, sessionID, toppingID string) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if _, err := s.catalog.ToppingByID(toppingID); err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	if d.selected[toppingID] {
		delete(d.selected, toppingID)
	} else {
		d.selected[toppingID] = true
		if _, ok := d.grams[toppingID]; !ok {
			d.grams[toppingID] = DefaultToppingGrams
		}
	}
	s.mu.Unlock()
	return s.view(d)
}

// SetToppingQuantity stores a gram quantity for a topping, clamped to
// the allowed range.
func (s *CustomizerServiceImpl) SetToppingQuantity(ctx context.Context, sessionID, toppingID string, grams int) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if _, err := s.catalog.ToppingByID(toppingID); err != nil {
		return DraftView{}, err
	}

	if grams < MinToppingGrams {
		grams = MinToppingGrams
	}
	if grams > MaxToppingGrams {
		grams = MaxToppingGrams
	}

	s.mu.Lock()
	d.grams[toppingID] = grams
	s.mu.Unlock()
	return s.view(d)
}

// SetQuantity sets the draft's quantity selector.
func (s *CustomizerServiceImpl) SetQuantity(ctx context.Context, sessionID string, quantity int) (DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return DraftView{}, err
	}
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	d.quantity = quantity
	s.mu.Unlock()
	return s.view(d)
}

// Commit mints the custom pizza, hands it to the cart ledger, and resets
// the quantity selector to 1. The configuration itself is preserved so
// the customer can keep adding variants.
func (s *CustomizerServiceImpl) Commit(ctx context.Context, sessionID string) (model.CartSnapshot, DraftView, error) {
	d, err := s.get(sessionID)
	if err != nil {
		return model.CartSnapshot{}, DraftView{}, err
	}

	s.mu.RLock()
	pizza := s.buildPizza(d)
	quantity := d.quantity
	s.mu.RUnlock()

	pizza.ID = fmt.Sprintf("%s%d", model.CustomIDPrefix, s.now().UnixMilli())

	snap, err := s.carts.Add(ctx, sessionID, pizza, quantity)
	if err != nil {
		return model.CartSnapshot{}, DraftView{}, err
	}

	s.mu.Lock()
	d.quantity = 1
	s.mu.Unlock()

	view, err := s.view(d)
	if err != nil {
		return model.CartSnapshot{}, DraftView{}, err
	}
	return snap, view, nil
}

// get returns the session's draft or ErrNoDraft.
func (s *CustomizerServiceImpl) get(sessionID string) (*draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrNoDraft
	}
	return d, nil
}

// buildPizza derives the pizza the draft currently describes. Callers
// must hold at least a read lock.
func (s *CustomizerServiceImpl) buildPizza(d *draft) model.Pizza {
	ids := make([]string, 0, len(d.selected))
	for id := range d.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	toppings := make([]model.ToppingSelection, 0, len(ids))
	vegan := true
	for _, id := range ids {
		toppings = append(toppings, model.ToppingSelection{
			ToppingID:     id,
			QuantityGrams: d.grams[id],
		})
		if t, err := s.catalog.ToppingByID(id); err == nil && !t.Vegan {
			vegan = false
		}
	}

	return model.Pizza{
		Name:         d.name,
		Description:  d.description,
		Image:        d.image,
		BasePrice:    d.basePrice,
		BaseCalories: d.baseCalories,
		Toppings:     toppings,
		CrustID:      d.crustID,
		SauceID:      d.sauceID,
		SizeID:       d.sizeID,
		Vegan:        vegan,
	}
}

// view builds the external draft view with a live quote. The quote uses
// a custom-prefixed id so the surcharge is reflected in what the
// customer sees before committing.
func (s *CustomizerServiceImpl) view(d *draft) (DraftView, error) {
	s.mu.RLock()
	pizza := s.buildPizza(d)
	quantity := d.quantity
	s.mu.RUnlock()

	priced := pizza
	priced.ID = model.CustomIDPrefix + "draft"
	quote, err := s.pricing.Quote(priced)
	if err != nil {
		return DraftView{}, err
	}

	return DraftView{Pizza: pizza, Quote: quote, Quantity: quantity}, nil
}
