// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TokenStore hands out usable Google access tokens.
type TokenStore interface {
	// GetValidAccessToken returns a token valid for at least the refresh margin.
	// It reports false when the user has no token or the refresh failed.
	GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, bool)

	// GetValidAccessTokenOrThrow is GetValidAccessToken failing with ErrNoValidToken.
	GetValidAccessTokenOrThrow(ctx context.Context, userID uuid.UUID) (string, error)

	// ExchangeAuthorizationCode completes the consent flow and stores the token pair.
	ExchangeAuthorizationCode(ctx context.Context, userID uuid.UUID, code, redirectURI string) error
}

// TokenRefresher rotates access tokens through the refresh_token grant.
type TokenRefresher interface {
	// Refresh always calls the token endpoint.
	Refresh(ctx context.Context, userID uuid.UUID) (string, error)

	// RefreshIfCurrent refreshes only while observed is still the stored access
	// token. When another caller already rotated it, the stored token is returned.
	RefreshIfCurrent(ctx context.Context, userID uuid.UUID, observed string) (string, error)
}

// ConnectUsecase drives the OAuth consent round trip.
type ConnectUsecase interface {
	// ConnectURL returns the consent URL for the user.
	ConnectURL(ctx context.Context, userID uuid.UUID) (string, error)

	// CompleteConnect validates state and stores the tokens granted for code.
	CompleteConnect(ctx context.Context, code, state string) (uuid.UUID, error)
}
