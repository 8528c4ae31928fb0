package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Payment records a completed processor charge. CartItems holds the hex ids
// of cart documents purged after the charge; MenuItems holds the hex ids of
// the purchased menu items and feeds the per-category order stats.
type Payment struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string        `bson:"email" json:"email"`
	Price         float64       `bson:"price" json:"price"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	Date          string        `bson:"date" json:"date"`
	CartItems     []string      `bson:"cartItems" json:"cartItems"`
	MenuItems     []string      `bson:"menuItems" json:"menuItems"`
	Status        string        `bson:"status" json:"status"`
}

// CategoryStat is one row of the per-category order aggregation.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Total    float64 `bson:"total" json:"total"`
}
