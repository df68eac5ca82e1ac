package configs

import "strings"

// Auth modes.
const (
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"
)

// Auth configures bearer token verification against the hosted auth
// provider. In "jwt" mode tokens are verified locally with JWTSecret. In
// "remote" mode every token is resolved by calling the provider at URL with
// AnonKey as the project api key.
type Auth struct {
	Mode      string `env:"MODE" envDefault:"jwt"`
	JWTSecret string `env:"JWT_SECRET"`
	// Audience is matched against the aud claim when non-empty.
	Audience string `env:"AUDIENCE" envDefault:"authenticated"`
	URL      string `env:"URL"`
	AnonKey  string `env:"ANON_KEY"`
}

// NormalizedMode returns Mode lowercased; unknown modes fall back to jwt.
func (c Auth) NormalizedMode() string {
	if strings.EqualFold(c.Mode, AuthModeRemote) {
		return AuthModeRemote
	}
	return AuthModeJWT
}
