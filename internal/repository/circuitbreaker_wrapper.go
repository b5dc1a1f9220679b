// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/pizza-service/internal/circuitbreaker"
	"github.com/guttosm/pizza-service/internal/domain/model"
)

// CartsRepositoryWithCircuitBreaker wraps CartsRepository with circuit breaker protection.
type CartsRepositoryWithCircuitBreaker struct {
	repo           *CartsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartsRepositoryWithCircuitBreaker(repo *CartsRepository, cb *circuitbreaker.CircuitBreaker) *CartsRepositoryWithCircuitBreaker {
	return &CartsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Load returns the persisted cart lines with circuit breaker protection.
// If circuit is open, returns an empty cart so the storefront stays usable.
func (r *CartsRepositoryWithCircuitBreaker) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	var result []model.CartLine
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Load(ctx, sessionID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Save upserts the cart lines with circuit breaker protection.
// If circuit is open, silently fails (the in-memory cart is authoritative).
func (r *CartsRepositoryWithCircuitBreaker) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, sessionID, lines)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Delete removes the cart document with circuit breaker protection.
func (r *CartsRepositoryWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, sessionID)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit breaker protection.
// Order writes are never silently dropped: checkout must fail loudly when
// the database is unavailable.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a new order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Insert(ctx, order)
		return cbErr
	})
	return result, err
}

// GetByOrderID returns an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByOrderID(ctx, orderID)
		return cbErr
	})
	return result, err
}

// List returns orders with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the order count with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Count(ctx context.Context, opts OrderQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// UpdateStatus transitions an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateStatus(ctx, orderID, status)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
