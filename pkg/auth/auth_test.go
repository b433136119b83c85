package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	t.Run("Should round-trip subject, email and user type", func(t *testing.T) {
		token, exp, err := svc.Issue("507f1f77bcf86cd799439011", "a@x.com", "company")
		require.NoError(t, err)
		assert.Equal(t, fixed.Add(time.Hour), exp)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", claims.Subject)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Equal(t, "company", claims.UserType)
	})

	t.Run("Should report expiry", func(t *testing.T) {
		token, _, err := svc.Issue("id", "", "user")
		require.NoError(t, err)

		later := NewTokenService("test-secret", time.Hour)
		later.now = func() time.Time { return fixed.Add(2 * time.Hour) }
		_, err = later.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Should reject another secret", func(t *testing.T) {
		token, _, err := svc.Issue("id", "", "user")
		require.NoError(t, err)

		other := NewTokenService("other-secret", time.Hour)
		other.now = svc.now
		_, err = other.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Should reject the none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserType: "user",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "id",
				ExpiresAt: jwt.NewNumericDate(fixed.Add(time.Hour)),
			},
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Should refuse to issue without a secret", func(t *testing.T) {
		_, _, err := NewTokenService("", time.Hour).Issue("id", "", "user")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, h.Verify(hash, "secret1"))
	assert.False(t, h.Verify(hash, "wrong"))
	assert.False(t, h.Verify("", "secret1"))
}
