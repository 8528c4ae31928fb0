package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/storage"
)

// Denial is a per-request access decision rejecting continuation. A nil
// *Denial means the gate allows the request through.
type Denial struct {
	Status  int
	Message string
}

// Authenticated witnesses that a request carried a valid session token.
// The claims are unexported and only Authenticate constructs the value, so a
// role check cannot be sequenced before authentication.
type Authenticated struct {
	claims Claims
}

// Email returns the authenticated principal's email.
func (a Authenticated) Email() string { return a.claims.Email }

// Claims returns the full decoded token payload.
func (a Authenticated) Claims() Claims { return a.claims }

// Guard gates requests on token validity and store-resident roles.
type Guard struct {
	tokens *TokenManager
	users  storage.UserStore
	log    zerolog.Logger
}

// NewGuard wires the guard to its token manager and user store.
func NewGuard(tokens *TokenManager, users storage.UserStore, log zerolog.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, log: log}
}

// Authenticate extracts and verifies the bearer token. On failure it returns
// a 401 denial and the zero Authenticated value, which callers must not use.
func (g *Guard) Authenticate(r *http.Request) (Authenticated, *Denial) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Authenticated{}, &Denial{Status: http.StatusUnauthorized, Message: "Invalid Token"}
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Authenticated{}, &Denial{Status: http.StatusUnauthorized, Message: "Invalid Token"}
	}
	claims, err := g.tokens.Verify(parts[1])
	if err != nil {
		return Authenticated{}, &Denial{Status: http.StatusUnauthorized, Message: "Invalid Token"}
	}
	return Authenticated{claims: claims}, nil
}

// RequireRole checks that the authenticated email maps to a store-resident
// user holding the required role. The lookup happens on every call: roles can
// change after token issuance and tokens are not revocable, so the token's
// own contents are never trusted for authorization.
func (g *Guard) RequireRole(ctx context.Context, authed Authenticated, role string) *Denial {
	user, err := g.users.FindUserByEmail(ctx, authed.Email())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &Denial{Status: http.StatusForbidden, Message: "Forbidden message"}
		}
		g.log.Error().Err(err).Str("email", authed.Email()).Msg("role lookup failed")
		return &Denial{Status: http.StatusInternalServerError, Message: "failed to verify role"}
	}
	if user.Role != role {
		return &Denial{Status: http.StatusForbidden, Message: "Forbidden message"}
	}
	return nil
}

// AdminStatus answers a self-only admin-status query. A mismatch between the
// queried and authenticated email reports non-admin without touching the
// store; this is a status probe, not a mutation gate.
func (g *Guard) AdminStatus(ctx context.Context, authed Authenticated, email string) (bool, error) {
	if email != authed.Email() {
		return false, nil
	}
	user, err := g.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}
