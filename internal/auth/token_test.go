package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "bistro-backend", time.Hour)

	token, err := tm.Issue("alice@example.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "bistro-backend", claims.Issuer)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "bistro-backend", -time.Minute)

	token, err := tm.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "bistro-backend", time.Hour)
	verifier := NewTokenManager("secret-b", "bistro-backend", time.Hour)

	token, err := issuer.Issue("alice@example.com", "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "bistro-backend", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsMissingEmail(t *testing.T) {
	tm := NewTokenManager("test-secret", "bistro-backend", time.Hour)

	token, err := tm.Issue("", "")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
