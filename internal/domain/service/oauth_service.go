package service

import (
	"context"
	"time"
)

// OAuthToken is the token endpoint response normalized to an absolute expiry.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string // Empty when the provider did not issue or rotate one.
	TokenType    string
	Scope        string
	ExpiresAt    time.Time
}

// OAuthProvider talks to the Google OAuth2 endpoints on behalf of the sync engine.
type OAuthProvider interface {
	// AuthCodeURL returns the consent URL requesting offline access.
	AuthCodeURL(state string) string

	// Exchange trades a one-time authorization code for a token pair.
	// redirectURI overrides the configured redirect when non-empty.
	Exchange(ctx context.Context, code, redirectURI string) (*OAuthToken, error)

	// Refresh performs a refresh_token grant. Failures are *errors.TokenEndpointError.
	Refresh(ctx context.Context, refreshToken string) (*OAuthToken, error)
}
