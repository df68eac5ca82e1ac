// Package auth verifies bearer tokens issued by the hosted auth provider.
package auth

import (
	"net/http"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/port"
)

// New returns the verifier selected by cfg.Mode.
func New(cfg configs.Auth, client *http.Client) port.TokenVerifier {
	if cfg.NormalizedMode() == configs.AuthModeRemote {
		return NewRemoteVerifier(cfg.URL, cfg.AnonKey, client)
	}
	return NewJWTVerifier(cfg.JWTSecret, cfg.Audience)
}
