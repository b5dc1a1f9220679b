package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

// OrderQueryOptions filters and paginates order listings.
type OrderQueryOptions struct {
	// Status filters by order status when non-empty.
	Status string
	// Search matches customer name, email, or order id (case-insensitive).
	Search string
	// SessionID restricts results to one storefront session.
	SessionID string
	Limit     int64
	Offset    int64
}

// OrdersRepository provides methods for order persistence.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Insert stores a new order and returns it with the generated document id.
func (r *OrdersRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	var stored model.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByOrderID returns the order with the given public order id, or nil
// when no such order exists.
func (r *OrdersRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest-first, filtered by the given options.
func (r *OrdersRepository) List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	if opts.Search != "" {
		pattern := bson.M{"$regex": opts.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"order_id": pattern},
			{"delivery.name": pattern},
			{"delivery.email": pattern},
		}
	}

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Offset > 0 {
		findOpts.SetSkip(opts.Offset)
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the number of orders matching the given options.
func (r *OrdersRepository) Count(ctx context.Context, opts OrderQueryOptions) (int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	return r.collection.CountDocuments(ctx, filter)
}

// UpdateStatus transitions an order to a new status and returns the
// updated document, or nil when the order does not exist.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, orderID, status string) (*model.Order, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	var order model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"order_id": orderID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
