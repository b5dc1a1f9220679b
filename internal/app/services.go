// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pizza-service/config"
	"github.com/guttosm/pizza-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog service.CatalogProvider
	Pricing service.PricingEngine
}

// InitializeServices initializes the catalog and pricing engine.
func InitializeServices(cfg config.Config) *ServiceComponents {
	catalog := service.DefaultCatalog()

	var opts []service.Option
	if cfg.Pricing.CustomSurchargeRate > 0 {
		opts = append(opts, service.WithSurchargeRate(cfg.Pricing.CustomSurchargeRate))
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithQuoteCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	pricing := service.NewPricingService(catalog, opts...)

	return &ServiceComponents{
		Catalog: service.NewCatalogService(catalog, pricing),
		Pricing: pricing,
	}
}
