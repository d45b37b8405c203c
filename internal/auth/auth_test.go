package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	assert.NoError(t, CheckPassword(hash, "password1"))
	assert.ErrorIs(t, CheckPassword(hash, "password2"), ErrPasswordMismatch)
	assert.ErrorIs(t, CheckPassword("", "password1"), ErrPasswordMismatch)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", time.Hour)
	tok, err := m.Generate("user-123", "Alice")
	require.NoError(t, err)

	claims, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", time.Hour)
	tok, err := m.Generate("u1", "Bob")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(61 * time.Minute) }
	_, err = m.Validate(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", time.Hour).Generate("u2", "Carol")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", strings.Repeat("a", 40)} {
		_, err := m.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
