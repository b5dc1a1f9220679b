package service

import (
	"math"
	"time"

	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/service/cache"
)

// DefaultCustomSurchargeRate is the extra fraction charged on custom-built
// pizzas. Applied once, after toppings, to price only.
const DefaultCustomSurchargeRate = 0.2

// PricingEngine defines the interface for price and nutrition quoting.
type PricingEngine interface {
	UnitPrice(p model.Pizza) (float64, error)
	UnitCalories(p model.Pizza) (int, error)
	Quote(p model.Pizza) (model.Quote, error)
	// InvalidateCache clears the quote cache (useful when the catalog changes).
	InvalidateCache()
}

// Option configures a PricingService.
type Option func(*PricingService)

// PricingService implements PricingEngine against an immutable catalog.
// Every component referenced by a pizza must resolve in the catalog; an
// unknown id is a hard error, never silently defaulted.
type PricingService struct {
	catalog       *model.Catalog
	surchargeRate float64
	cache         cache.Cache
}

// NewPricingService creates a new PricingService with the given options.
func NewPricingService(catalog *model.Catalog, opts ...Option) *PricingService {
	s := &PricingService{
		catalog:       catalog,
		surchargeRate: DefaultCustomSurchargeRate,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSurchargeRate sets a custom surcharge rate for custom-built pizzas.
func WithSurchargeRate(rate float64) Option {
	return func(s *PricingService) {
		if rate >= 0 {
			s.surchargeRate = rate
		}
	}
}

// WithQuoteCache enables quote caching with the specified capacity and TTL.
func WithQuoteCache(capacity int, ttl time.Duration) Option {
	return func(s *PricingService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PricingService) {
		s.cache = c
	}
}

// UnitPrice computes the price of a single pizza in rupees, rounded to
// two decimals. Custom pizzas carry the surcharge; presets never do.
func (s *PricingService) UnitPrice(p model.Pizza) (float64, error) {
	size, err := s.catalog.SizeByID(p.SizeID)
	if err != nil {
		return 0, err
	}
	crust, err := s.catalog.CrustByID(p.CrustID)
	if err != nil {
		return 0, err
	}
	sauce, err := s.catalog.SauceByID(p.SauceID)
	if err != nil {
		return 0, err
	}

	price := p.BasePrice*size.PriceMultiplier + crust.Price + sauce.Price
	for _, sel := range p.Toppings {
		topping, err := s.catalog.ToppingByID(sel.ToppingID)
		if err != nil {
			return 0, err
		}
		price += topping.PricePerGram * float64(sel.QuantityGrams)
	}

	if p.IsCustom() {
		price *= 1 + s.surchargeRate
	}
	return round2(price), nil
}

// UnitCalories computes the calories of a single pizza, rounded to the
// nearest whole calorie. The custom surcharge never applies to calories.
func (s *PricingService) UnitCalories(p model.Pizza) (int, error) {
	size, err := s.catalog.SizeByID(p.SizeID)
	if err != nil {
		return 0, err
	}
	crust, err := s.catalog.CrustByID(p.CrustID)
	if err != nil {
		return 0, err
	}
	sauce, err := s.catalog.SauceByID(p.SauceID)
	if err != nil {
		return 0, err
	}

	calories := float64(p.BaseCalories)*size.CalorieMultiplier + float64(crust.Calories) + float64(sauce.Calories)
	for _, sel := range p.Toppings {
		topping, err := s.catalog.ToppingByID(sel.ToppingID)
		if err != nil {
			return 0, err
		}
		calories += float64(topping.CaloriesPer10g) * float64(sel.QuantityGrams) / 10
	}
	return int(math.Round(calories)), nil
}

// Quote computes price, calories, and vegan status for a single pizza.
// Results are cached by the pizza's canonical configuration key.
func (s *PricingService) Quote(p model.Pizza) (model.Quote, error) {
	var key string
	if s.cache != nil {
		key = p.CanonicalKey()
		if q, ok := s.cache.Get(key); ok {
			return q, nil
		}
	}

	price, err := s.UnitPrice(p)
	if err != nil {
		return model.Quote{}, err
	}
	calories, err := s.UnitCalories(p)
	if err != nil {
		return model.Quote{}, err
	}
	vegan, err := s.isVegan(p)
	if err != nil {
		return model.Quote{}, err
	}

	q := model.Quote{UnitPrice: price, UnitCalories: calories, Vegan: vegan}
	if s.cache != nil {
		s.cache.Set(key, q)
	}
	return q, nil
}

// isVegan reports whether every selected topping is vegan.
func (s *PricingService) isVegan(p model.Pizza) (bool, error) {
	for _, sel := range p.Toppings {
		topping, err := s.catalog.ToppingByID(sel.ToppingID)
		if err != nil {
			return false, err
		}
		if !topping.Vegan {
			return false, nil
		}
	}
	return true, nil
}

// InvalidateCache clears the quote cache.
func (s *PricingService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
