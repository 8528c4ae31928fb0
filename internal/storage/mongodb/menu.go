package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bistroboss/bistro-be/internal/models"
)

// ListMenuItems returns every menu item.
func (s *Store) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	out := []models.MenuItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return out, nil
}

// InsertMenuItem stores a new menu item and returns its id.
func (s *Store) InsertMenuItem(ctx context.Context, item models.MenuItem) (string, error) {
	res, err := s.menu.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return insertedHex(res), nil
}

// DeleteMenuItem removes a menu item by id and reports how many documents
// were deleted (zero when the id matched nothing).
func (s *Store) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.menu.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return res.DeletedCount, nil
}

// CountMenuItems returns the estimated number of menu documents.
func (s *Store) CountMenuItems(ctx context.Context) (int64, error) {
	n, err := s.menu.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	return n, nil
}

// ListReviews returns every review document.
func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	cur, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := []models.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return out, nil
}
