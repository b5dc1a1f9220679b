// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

// CartsRepositoryInterface defines the interface for cart repository operations.
type CartsRepositoryInterface interface {
	Load(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []model.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

// OrdersRepositoryInterface defines the interface for order repository operations.
type OrdersRepositoryInterface interface {
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error)
	Count(ctx context.Context, opts OrderQueryOptions) (int64, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
