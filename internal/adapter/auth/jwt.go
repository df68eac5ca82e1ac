package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
)

// Claims are the access token claims issued by the auth provider.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 access tokens locally with the project secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns a verifier for tokens signed with secret. When
// audience is non-empty the aud claim must contain it.
func NewJWTVerifier(secret, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

// Verify parses and validates token and returns its subject.
func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.Principal, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: subject is not a user id", domain.ErrUnauthorized)
	}
	return domain.Principal{UserID: id, Email: claims.Email}, nil
}
