package storage

import (
	"context"
	"errors"

	"github.com/bistroboss/bistro-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrInvalidID indicates a path identifier that is not a valid store object id.
var ErrInvalidID = errors.New("invalid object id")

// Store is the full document-store surface the server wires handlers onto.
type Store interface {
	UserStore
	MenuStore
	ReviewStore
	CartStore
	PaymentStore
}

// UserStore captures persistence operations on user records.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	PromoteUserToAdmin(ctx context.Context, id string) (matched, modified int64, err error)
	CountUsers(ctx context.Context) (int64, error)
}

// MenuStore captures persistence operations on menu items.
type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, item models.MenuItem) (string, error)
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
}

// ReviewStore lists customer reviews.
type ReviewStore interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
}

// CartStore captures persistence operations on cart items.
type CartStore interface {
	ListCartItems(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, item models.CartItem) (string, error)
	DeleteCartItem(ctx context.Context, id string) (int64, error)
	DeleteCartItems(ctx context.Context, ids []string) (int64, error)
}

// PaymentStore captures persistence and reporting over payment records.
type PaymentStore interface {
	InsertPayment(ctx context.Context, payment models.Payment) (string, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CountPayments(ctx context.Context) (int64, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
}
