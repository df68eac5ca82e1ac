package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/domain"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(sub string) Claims {
	return Claims{
		Email: "a@b.co",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestJWTVerifierAccepts(t *testing.T) {
	id := uuid.New()
	v := NewJWTVerifier(testSecret, "authenticated")

	p, err := v.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(id.String())))
	require.NoError(t, err)
	assert.Equal(t, id, p.UserID)
	assert.Equal(t, "a@b.co", p.Email)
}

func TestJWTVerifierRejects(t *testing.T) {
	id := uuid.New().String()
	expired := validClaims(id)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noExp := validClaims(id)
	noExp.ExpiresAt = nil
	wrongAud := validClaims(id)
	wrongAud.Audience = jwt.ClaimStrings{"anon"}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims(id))},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(id))},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"missing exp", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{"wrong audience", sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAud)},
		{"subject not uuid", sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("service"))},
	}
	v := NewJWTVerifier(testSecret, "authenticated")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestNewSelectsMode(t *testing.T) {
	assert.IsType(t, &JWTVerifier{}, New(configs.Auth{Mode: "JWT", JWTSecret: "x"}, nil))
	assert.IsType(t, &RemoteVerifier{}, New(configs.Auth{Mode: "Remote", URL: "http://x", AnonKey: "k"}, nil))
}
