// Package repository provides data access for carts and orders.
package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

// CartDocument represents a persisted cart, one document per session.
type CartDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Lines     []model.CartLine   `bson:"lines" json:"lines"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CartsRepository provides methods for cart persistence.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{
		collection: db.Carts,
	}
}

// Load returns the persisted cart lines for a session. A missing document
// yields an empty cart. A document that no longer decodes also yields an
// empty cart: a corrupt cart must never take the storefront down.
func (r *CartsRepository) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	res := r.collection.FindOne(ctx, bson.M{"session_id": sessionID})

	raw, err := res.Raw()
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc CartDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Msg("Discarding undecodable cart document, starting a fresh cart")
		return nil, nil
	}
	return doc.Lines, nil
}

// Save upserts the cart lines for a session.
func (r *CartsRepository) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	update := bson.M{
		"$set": bson.M{
			"session_id": sessionID,
			"lines":      lines,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"session_id": sessionID},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes the cart document for a session. Deleting an absent
// cart is not an error.
func (r *CartsRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
