package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bistroboss/bistro-be/internal/models"
)

// InsertPayment stores a payment record and returns its id.
func (s *Store) InsertPayment(ctx context.Context, payment models.Payment) (string, error) {
	res, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedHex(res), nil
}

// ListPayments returns every payment record.
func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	cur, err := s.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	out := []models.Payment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return out, nil
}

// CountPayments returns the estimated number of payment documents.
func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	n, err := s.payments.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

// CategoryStats groups recorded payments by menu category, joining each
// purchased menu item id against the menu collection. Payments store menu
// item ids as hex strings, so they are converted before the $lookup.
func (s *Store) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"menuItemIds": bson.M{"$map": bson.M{
				"input": "$menuItems",
				"as":    "id",
				"in":    bson.M{"$toObjectId": "$$id"},
			}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "menu",
			"localField":   "menuItemIds",
			"foreignField": "_id",
			"as":           "menuItemsData",
		}}},
		{{Key: "$unwind", Value: "$menuItemsData"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$menuItemsData.category",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$menuItemsData.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"category": "$_id",
			"count":    1,
			"total":    bson.M{"$round": bson.A{"$total", 2}},
			"_id":      0,
		}}},
	}

	cur, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	out := []models.CategoryStat{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}
	return out, nil
}
