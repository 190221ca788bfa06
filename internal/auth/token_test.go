package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManager_Parse_Rejects(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		_, err := tm.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := NewTokenManager("other-secret", time.Hour)
		token, _, err := other.Generate("user-123")
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		t.Parallel()
		claims := &Claims{UserID: "user-123"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = tm.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		t.Parallel()
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = tm.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", time.Hour)

	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 0)

	_, expiresAt, err := tm.Generate("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)
}
