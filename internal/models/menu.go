package models

import "go.mongodb.org/mongo-driver/v2/bson"

// MenuItem is a purchasable dish on the menu.
type MenuItem struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string        `bson:"name" json:"name"`
	Recipe   string        `bson:"recipe" json:"recipe"`
	Image    string        `bson:"image" json:"image"`
	Category string        `bson:"category" json:"category"`
	Price    float64       `bson:"price" json:"price"`
}

// Review is a customer testimonial shown on the public site.
type Review struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string        `bson:"name" json:"name"`
	Details string        `bson:"details" json:"details"`
	Rating  float64       `bson:"rating" json:"rating"`
}
