package models

// Roles a user record can carry. Users created through the public signup
// endpoint get no explicit role and are treated as regular.
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)
