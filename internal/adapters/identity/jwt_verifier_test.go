package identity_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims accessTokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() accessTokenClaims {
	return accessTokenClaims{
		Email: "buyer@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "6f0e7a52-1c1e-4b7e-9a3a-0c4f5e1d2b3a",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "authenticated")
	require.NoError(t, err)

	identity, err := verifier.Authenticate(context.Background(), signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))

	require.NoError(t, err)
	assert.Equal(t, "6f0e7a52-1c1e-4b7e-9a3a-0c4f5e1d2b3a", identity.UserID)
	assert.Equal(t, "buyer@example.com", identity.Email)
	assert.Equal(t, "authenticated", identity.Role)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "authenticated")
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"service_role"}

	noSubject := validClaims()
	noSubject.Subject = ""

	anon := validClaims()
	anon.Role = "anon"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims())},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "no expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "wrong audience", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAudience)},
		{name: "no subject", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject)},
		{name: "anon key", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), anon)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Authenticate(context.Background(), tt.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestJWTVerifier_NoAudienceCheck(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	claims := validClaims()
	claims.Audience = nil

	_, err = verifier.Authenticate(context.Background(), signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	assert.NoError(t, err)
}

func TestNewJWTVerifier_EmptyKey(t *testing.T) {
	_, err := NewJWTVerifier("", "authenticated")
	assert.Error(t, err)
}
