package models

import "go.mongodb.org/mongo-driver/v2/bson"

// User is the store-resident identity record. Role is always read from here,
// never from a session token.
type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
	Role  string        `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the record carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
