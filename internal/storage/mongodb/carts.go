package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bistroboss/bistro-be/internal/models"
)

// ListCartItems returns the cart items belonging to the given email.
func (s *Store) ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	out := []models.CartItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return out, nil
}

// InsertCartItem stores a new cart item and returns its id.
func (s *Store) InsertCartItem(ctx context.Context, item models.CartItem) (string, error) {
	res, err := s.carts.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	return insertedHex(res), nil
}

// DeleteCartItem removes a single cart item by id.
func (s *Store) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.carts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteCartItems bulk-deletes the cart items referenced by a recorded
// payment. Not atomic with the payment insert.
func (s *Store) DeleteCartItems(ctx context.Context, ids []string) (int64, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return 0, err
	}
	res, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete cart items: %w", err)
	}
	return res.DeletedCount, nil
}
