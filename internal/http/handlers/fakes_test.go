package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/processor"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// memStore is an in-memory storage.Store used by the handler tests.
type memStore struct {
	mu          sync.Mutex
	users       map[string]models.User // keyed by email
	menu        map[string]models.MenuItem
	reviews     []models.Review
	carts       map[string]models.CartItem
	payments    []models.Payment
	stats       []models.CategoryStat
	userInserts int
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users: map[string]models.User{},
		menu:  map[string]models.MenuItem{},
		carts: map[string]models.CartItem{},
	}
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return "", storage.ErrAlreadyExists
	}
	user.ID = bson.NewObjectID()
	m.users[user.Email] = user
	m.userInserts++
	return user.ID.Hex(), nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *memStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) PromoteUserToAdmin(_ context.Context, id string) (int64, int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, u := range m.users {
		if u.ID == oid {
			modified := int64(0)
			if u.Role != models.RoleAdmin {
				u.Role = models.RoleAdmin
				m.users[email] = u
				modified = 1
			}
			return 1, modified, nil
		}
	}
	return 0, 0, nil
}

func (m *memStore) CountUsers(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memStore) ListMenuItems(_ context.Context) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.MenuItem{}
	for _, item := range m.menu {
		out = append(out, item)
	}
	return out, nil
}

func (m *memStore) InsertMenuItem(_ context.Context, item models.MenuItem) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = bson.NewObjectID()
	m.menu[item.ID.Hex()] = item
	return item.ID.Hex(), nil
}

func (m *memStore) DeleteMenuItem(_ context.Context, id string) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.menu[id]; !ok {
		return 0, nil
	}
	delete(m.menu, id)
	return 1, nil
}

func (m *memStore) CountMenuItems(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.menu)), nil
}

func (m *memStore) ListReviews(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Review{}, m.reviews...), nil
}

func (m *memStore) ListCartItems(_ context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CartItem{}
	for _, item := range m.carts {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memStore) InsertCartItem(_ context.Context, item models.CartItem) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = bson.NewObjectID()
	m.carts[item.ID.Hex()] = item
	return item.ID.Hex(), nil
}

func (m *memStore) DeleteCartItem(_ context.Context, id string) (int64, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return 0, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[id]; !ok {
		return 0, nil
	}
	delete(m.carts, id)
	return 1, nil
}

func (m *memStore) DeleteCartItems(_ context.Context, ids []string) (int64, error) {
	for _, id := range ids {
		if _, err := bson.ObjectIDFromHex(id); err != nil {
			return 0, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := m.carts[id]; ok {
			delete(m.carts, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memStore) InsertPayment(_ context.Context, payment models.Payment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = bson.NewObjectID()
	m.payments = append(m.payments, payment)
	return payment.ID.Hex(), nil
}

func (m *memStore) ListPayments(_ context.Context) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Payment{}, m.payments...), nil
}

func (m *memStore) CountPayments(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.payments)), nil
}

func (m *memStore) CategoryStats(_ context.Context) ([]models.CategoryStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CategoryStat{}, m.stats...), nil
}

// fakeIntents records intent requests and returns a canned client secret.
type fakeIntents struct {
	calls    int
	amount   int64
	currency string
	err      error
}

var _ processor.IntentCreator = (*fakeIntents)(nil)

func (f *fakeIntents) CreateIntent(_ context.Context, amount int64, currency string) (processor.Intent, error) {
	f.calls++
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return processor.Intent{}, f.err
	}
	return processor.Intent{ClientSecret: "pi_test_secret"}, nil
}

// testEnv bundles everything a handler test needs.
type testEnv struct {
	store   *memStore
	tokens  *auth.TokenManager
	guard   *auth.Guard
	intents *fakeIntents
	log     zerolog.Logger
}

func newTestEnv() *testEnv {
	store := newMemStore()
	tokens := auth.NewTokenManager("test-secret", "bistro-backend", time.Hour)
	return &testEnv{
		store:   store,
		tokens:  tokens,
		guard:   auth.NewGuard(tokens, store, zerolog.Nop()),
		intents: &fakeIntents{},
		log:     zerolog.Nop(),
	}
}

// seedUser inserts a user record directly into the fake store.
func (e *testEnv) seedUser(email, role string) models.User {
	user := models.User{ID: bson.NewObjectID(), Email: email, Role: role}
	e.store.users[email] = user
	return user
}
