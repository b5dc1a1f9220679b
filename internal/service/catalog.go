package service

import "github.com/guttosm/pizza-service/internal/domain/model"

// CatalogProvider defines the interface for menu and catalog lookups.
type CatalogProvider interface {
	Catalog() *model.Catalog
	Menu() []model.Pizza
	Featured() []model.Pizza
	PresetByID(id string) (model.Pizza, bool)
	Filter(vegan *bool, maxCalories *int) ([]model.Pizza, error)
}

// CatalogService serves the immutable catalog loaded at startup.
type CatalogService struct {
	catalog *model.Catalog
	pricing PricingEngine
}

// NewCatalogService creates a CatalogService backed by the given catalog.
// The pricing engine is used to compute calories for menu filtering.
func NewCatalogService(catalog *model.Catalog, pricing PricingEngine) *CatalogService {
	return &CatalogService{catalog: catalog, pricing: pricing}
}

// Catalog returns the full component catalog.
func (s *CatalogService) Catalog() *model.Catalog {
	return s.catalog
}

// Menu returns all preset pizzas.
func (s *CatalogService) Menu() []model.Pizza {
	out := make([]model.Pizza, len(s.catalog.Presets))
	copy(out, s.catalog.Presets)
	return out
}

// Featured returns the presets flagged for the storefront banner.
func (s *CatalogService) Featured() []model.Pizza {
	out := make([]model.Pizza, 0, len(s.catalog.Presets))
	for _, p := range s.catalog.Presets {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PresetByID returns the preset pizza with the given id.
func (s *CatalogService) PresetByID(id string) (model.Pizza, bool) {
	for _, p := range s.catalog.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return model.Pizza{}, false
}

// Filter returns presets matching the given criteria. A nil criterion
// means "any". Calorie limits compare against the computed per-unit
// calories of the preset's current configuration.
func (s *CatalogService) Filter(vegan *bool, maxCalories *int) ([]model.Pizza, error) {
	out := make([]model.Pizza, 0, len(s.catalog.Presets))
	for _, p := range s.catalog.Presets {
		if vegan != nil && p.Vegan != *vegan {
			continue
		}
		if maxCalories != nil {
			calories, err := s.pricing.UnitCalories(p)
			if err != nil {
				return nil, err
			}
			if calories > *maxCalories {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}
