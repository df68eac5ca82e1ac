package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
)

// RemoteVerifier resolves tokens by asking the hosted auth provider for the
// user that owns them.
type RemoteVerifier struct {
	userURL string
	anonKey string
	client  *http.Client
}

// NewRemoteVerifier returns a verifier calling {baseURL}/auth/v1/user.
func NewRemoteVerifier(baseURL, anonKey string, client *http.Client) *RemoteVerifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &RemoteVerifier{
		userURL: strings.TrimRight(baseURL, "/") + "/auth/v1/user",
		anonKey: anonKey,
		client:  client,
	}
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify returns the principal owning token. Provider rejections map to
// domain.ErrUnauthorized; transport failures are returned as is.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userURL, nil)
	if err != nil {
		return domain.Principal{}, err
	}
	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("auth provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.Principal{}, fmt.Errorf("%w: token rejected by provider", domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Principal{}, fmt.Errorf("auth provider returned %d: %s", resp.StatusCode, body)
	}

	var u remoteUser
	if err = json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return domain.Principal{}, fmt.Errorf("decode auth user: %w", err)
	}
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: provider returned invalid user id", domain.ErrUnauthorized)
	}
	return domain.Principal{UserID: id, Email: u.Email}, nil
}
