// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the OAuth credential pair held for one user's Google account.
// There is at most one per user; it is replaced in place on every refresh.
type AuthToken struct {
	UserID       uuid.UUID // Owner key.
	AccessToken  string    // Short-lived bearer credential.
	RefreshToken string    // Long-lived credential, empty until offline access is granted.
	TokenType    string    // Usually "Bearer".
	Scope        string    // Space separated scopes granted at consent time.
	ExpiresAt    time.Time // Absolute expiry of AccessToken.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsRefresh reports whether the access token must be refreshed before use,
// i.e. now + margin has reached ExpiresAt.
func (t *AuthToken) NeedsRefresh(now time.Time, margin time.Duration) bool {
	if t.AccessToken == "" {
		return true
	}

	return !now.Add(margin).Before(t.ExpiresAt)
}

// HasRefreshToken reports whether the token can be refreshed without re-consent.
func (t *AuthToken) HasRefreshToken() bool {
	return t.RefreshToken != ""
}

// ApplyRefresh stores a refreshed access token. The refresh token is replaced
// only when the provider issued a new one.
func (t *AuthToken) ApplyRefresh(accessToken, refreshToken string, expiresAt, now time.Time) {
	t.AccessToken = accessToken
	t.ExpiresAt = expiresAt
	if refreshToken != "" {
		t.RefreshToken = refreshToken
	}
	t.UpdatedAt = now
}
