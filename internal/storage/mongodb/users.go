package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// CreateUser inserts a new user document and returns its id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (string, error) {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", storage.ErrAlreadyExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return insertedHex(res), nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// ListUsers returns every user document.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

// PromoteUserToAdmin sets role=admin on the user with the given id.
func (s *Store) PromoteUserToAdmin(ctx context.Context, id string) (int64, int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, 0, err
	}
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, 0, fmt.Errorf("promote user: %w", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// CountUsers returns the estimated number of user documents.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.users.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
