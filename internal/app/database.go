// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/pizza-service/config"
	"github.com/guttosm/pizza-service/internal/circuitbreaker"
	"github.com/guttosm/pizza-service/internal/repository"
	"github.com/guttosm/pizza-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CartsRepo            repository.CartsRepositoryInterface
	OrdersRepo           repository.OrdersRepositoryInterface
	LoggingService       service.LoggingService
	CartsCircuitBreaker  *circuitbreaker.CircuitBreaker
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
	UserRepo             repository.UserRepositoryInterface
	RoleRepo             repository.RoleRepositoryInterface
	PermissionRepo       repository.PermissionRepositoryInterface
	TokenRepo            repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cartsRepo := repository.NewCartsRepository(db)
	cartsRepoWithCB := repository.NewCartsRepositoryWithCircuitBreaker(cartsRepo, cartsCB)

	ordersRepo := repository.NewOrdersRepository(db)
	ordersRepoWithCB := repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	roleRepo := repository.NewRoleRepository(db.Database)
	permissionRepo := repository.NewPermissionRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Initialize default roles and permissions
	if err := initializeDefaultRolesAndPermissions(roleRepo, permissionRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default roles and permissions")
	}

	return &DatabaseComponents{
		CartsRepo:            cartsRepoWithCB,
		OrdersRepo:           ordersRepoWithCB,
		LoggingService:       loggingService,
		CartsCircuitBreaker:  cartsCB,
		OrdersCircuitBreaker: ordersCB,
		LogsCircuitBreaker:   logsCB,
		UserRepo:             userRepo,
		RoleRepo:             roleRepo,
		PermissionRepo:       permissionRepo,
		TokenRepo:            tokenRepo,
	}
}
