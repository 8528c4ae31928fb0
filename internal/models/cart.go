package models

import "go.mongodb.org/mongo-driver/v2/bson"

// CartItem is a menu item a user has queued for checkout.
type CartItem struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string        `bson:"menuItemId" json:"menuItemId"`
	Email      string        `bson:"email" json:"email"`
	Name       string        `bson:"name" json:"name"`
	Image      string        `bson:"image" json:"image"`
	Price      float64       `bson:"price" json:"price"`
}
