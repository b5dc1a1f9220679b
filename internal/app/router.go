// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pizza-service/config"
	"github.com/guttosm/pizza-service/internal/http"
	"github.com/guttosm/pizza-service/internal/repository"
	"github.com/guttosm/pizza-service/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var cartsRepo repository.CartsRepositoryInterface
	var ordersRepo repository.OrdersRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		cartsRepo = dbComponents.CartsRepo
		ordersRepo = dbComponents.OrdersRepo
		loggingService = dbComponents.LoggingService
	}

	// Cart ledger falls back to in-memory storage when MongoDB is disabled.
	cartService := service.NewCartService(services.Pricing, cartsRepo)
	customizerService := service.NewCustomizerService(services.Catalog.Catalog(), services.Pricing, cartService)

	var paymentService service.PaymentService
	if cfg.Payment.StripeAPIKey != "" {
		stripeService, err := service.NewStripePaymentService(cfg.Payment.StripeAPIKey, cfg.Payment.Currency)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Stripe - online payments disabled")
		} else {
			paymentService = stripeService
		}
	}

	orderService := service.NewOrderService(cartService, ordersRepo, paymentService)

	handler := http.NewHandler(services.Catalog, services.Pricing, cartService, customizerService, orderService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
		if dbComponents.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.RoleRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	// Initialize permission service
	var permissionService service.PermissionService
	if dbComponents != nil && dbComponents.PermissionRepo != nil {
		permissionService = service.NewPermissionService(dbComponents.PermissionRepo)
	}

	// Initialize role service
	var roleService service.RoleService
	if dbComponents != nil && dbComponents.RoleRepo != nil {
		roleService = service.NewRoleService(dbComponents.RoleRepo)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		OrderService:      orderService,
		AuthService:       authService,
		RoleService:       roleService,
		PermissionService: permissionService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
