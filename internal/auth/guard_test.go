package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistroboss/bistro-be/internal/models"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// fakeUserStore is the minimal store the guard needs: lookups by email,
// counted so tests can prove when the store was not consulted.
type fakeUserStore struct {
	users   map[string]models.User
	lookups int
	err     error
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	f.lookups++
	if f.err != nil {
		return models.User{}, f.err
	}
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) CreateUser(context.Context, models.User) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeUserStore) ListUsers(context.Context) ([]models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserStore) PromoteUserToAdmin(context.Context, string) (int64, int64, error) {
	return 0, 0, errors.New("not implemented")
}

func (f *fakeUserStore) CountUsers(context.Context) (int64, error) {
	return 0, errors.New("not implemented")
}

func newTestGuard(users map[string]models.User) (*Guard, *TokenManager, *fakeUserStore) {
	tm := NewTokenManager("test-secret", "bistro-backend", time.Hour)
	store := &fakeUserStore{users: users}
	return NewGuard(tm, store, zerolog.Nop()), tm, store
}

func authedRequest(t *testing.T, tm *TokenManager, email string) *http.Request {
	t.Helper()
	token, err := tm.Issue(email, "")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticateMissingHeader(t *testing.T) {
	guard, _, _ := newTestGuard(nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	_, denial := guard.Authenticate(req)

	require.NotNil(t, denial)
	assert.Equal(t, http.StatusUnauthorized, denial.Status)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	guard, _, _ := newTestGuard(nil)

	for _, header := range []string{"Bearer", "Basic abc", "sometoken"} {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", header)
		_, denial := guard.Authenticate(req)
		require.NotNil(t, denial, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, denial.Status)
	}
}

func TestAuthenticateBadToken(t *testing.T) {
	guard, _, _ := newTestGuard(nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	_, denial := guard.Authenticate(req)

	require.NotNil(t, denial)
	assert.Equal(t, http.StatusUnauthorized, denial.Status)
}

func TestAuthenticateSuccess(t *testing.T) {
	guard, tm, _ := newTestGuard(nil)

	authed, denial := guard.Authenticate(authedRequest(t, tm, "alice@example.com"))
	require.Nil(t, denial)
	assert.Equal(t, "alice@example.com", authed.Email())
}

func TestRequireRoleMismatch(t *testing.T) {
	guard, tm, _ := newTestGuard(map[string]models.User{
		"alice@example.com": {Email: "alice@example.com", Role: models.RoleRegular},
	})

	authed, denial := guard.Authenticate(authedRequest(t, tm, "alice@example.com"))
	require.Nil(t, denial)

	denial = guard.RequireRole(context.Background(), authed, models.RoleAdmin)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
}

func TestRequireRoleUnknownUser(t *testing.T) {
	guard, tm, _ := newTestGuard(nil)

	authed, denial := guard.Authenticate(authedRequest(t, tm, "ghost@example.com"))
	require.Nil(t, denial)

	denial = guard.RequireRole(context.Background(), authed, models.RoleAdmin)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
}

func TestRequireRoleChecksStoreEveryTime(t *testing.T) {
	guard, tm, store := newTestGuard(map[string]models.User{
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
	})

	authed, denial := guard.Authenticate(authedRequest(t, tm, "admin@example.com"))
	require.Nil(t, denial)

	require.Nil(t, guard.RequireRole(context.Background(), authed, models.RoleAdmin))
	assert.Equal(t, 1, store.lookups)

	// The role is demoted after token issuance; the still-valid token must
	// not grant admin access.
	store.users["admin@example.com"] = models.User{Email: "admin@example.com", Role: models.RoleRegular}
	denial = guard.RequireRole(context.Background(), authed, models.RoleAdmin)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
	assert.Equal(t, 2, store.lookups)
}

func TestRequireRoleStoreFailure(t *testing.T) {
	guard, tm, store := newTestGuard(nil)
	store.err = errors.New("connection reset")

	authed, denial := guard.Authenticate(authedRequest(t, tm, "alice@example.com"))
	require.Nil(t, denial)

	denial = guard.RequireRole(context.Background(), authed, models.RoleAdmin)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusInternalServerError, denial.Status)
}

func TestAdminStatusMismatchSkipsStore(t *testing.T) {
	guard, tm, store := newTestGuard(map[string]models.User{
		"bob@example.com": {Email: "bob@example.com", Role: models.RoleAdmin},
	})

	authed, denial := guard.Authenticate(authedRequest(t, tm, "alice@example.com"))
	require.Nil(t, denial)

	admin, err := guard.AdminStatus(context.Background(), authed, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
	assert.Equal(t, 0, store.lookups)
}

func TestAdminStatusSelf(t *testing.T) {
	guard, tm, _ := newTestGuard(map[string]models.User{
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
		"alice@example.com": {Email: "alice@example.com", Role: models.RoleRegular},
	})

	authed, denial := guard.Authenticate(authedRequest(t, tm, "admin@example.com"))
	require.Nil(t, denial)
	admin, err := guard.AdminStatus(context.Background(), authed, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin)

	authed, denial = guard.Authenticate(authedRequest(t, tm, "alice@example.com"))
	require.Nil(t, denial)
	admin, err = guard.AdminStatus(context.Background(), authed, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestAdminStatusUnknownSelf(t *testing.T) {
	guard, tm, _ := newTestGuard(nil)

	authed, denial := guard.Authenticate(authedRequest(t, tm, "ghost@example.com"))
	require.Nil(t, denial)

	admin, err := guard.AdminStatus(context.Background(), authed, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, admin)
}
