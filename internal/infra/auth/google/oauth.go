// Package google implements the Google OAuth2 client used to obtain offline
// access to a user's Gmail and Calendar data.
package google

import (
	"context"
	"log/slog"
	"time"

	"gsync/config"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/service"
	"gsync/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// OAuthService wraps an oauth2.Config for the Google endpoints.
type OAuthService struct {
	config *oauth2.Config
	logger *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthProvider {
	oc := cfg.GoogleOAuth
	if oc == nil {
		oc = &config.GoogleOAuthConfig{}
	}

	endpoint := googleoauth.Endpoint
	if oc.AuthURL != "" {
		endpoint.AuthURL = oc.AuthURL
	}
	if oc.TokenURL != "" {
		endpoint.TokenURL = oc.TokenURL
	}
	// Client credentials travel in the form body, as the token endpoint contract expects.
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     oc.ClientID,
			ClientSecret: oc.ClientSecret,
			RedirectURL:  oc.RedirectURI,
			Scopes:       oc.Scopes,
			Endpoint:     endpoint,
		},
		logger: logger,
	}
}

// AuthCodeURL returns the consent URL. Offline access with forced consent makes
// Google issue a refresh token even when the user granted access before.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token pair.
func (s *OAuthService) Exchange(ctx context.Context, code, redirectURI string) (*service.OAuthToken, error) {
	if s.config.ClientID == "" || s.config.ClientSecret == "" {
		return nil, domainerrors.ErrOAuthExchange.WrapMessage("oauth client credentials are not configured")
	}

	conf := *s.config
	if redirectURI != "" {
		conf.RedirectURL = redirectURI
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		endpointErr := toTokenEndpointError(err)
		s.logger.WarnContext(ctx, "Authorization code exchange rejected",
			slog.Int("status", endpointErr.Status),
			slog.String("code", endpointErr.Code),
		)

		return nil, domainerrors.ErrOAuthExchange.WrapMessage(endpointErr.Error())
	}

	return toOAuthToken(tok), nil
}

// Refresh performs a refresh_token grant. It makes exactly one request.
func (s *OAuthService) Refresh(ctx context.Context, refreshToken string) (*service.OAuthToken, error) {
	if s.config.ClientID == "" || s.config.ClientSecret == "" {
		return nil, &domainerrors.TokenEndpointError{Err: errors.New("oauth client credentials are not configured")}
	}

	tok, err := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, toTokenEndpointError(err)
	}

	return toOAuthToken(tok), nil
}

func toOAuthToken(tok *oauth2.Token) *service.OAuthToken {
	out := &service.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
		ExpiresAt:    tok.Expiry.UTC(),
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		out.Scope = scope
	}
	if tok.Expiry.IsZero() && tok.ExpiresIn > 0 {
		out.ExpiresAt = time.Now().UTC().Add(time.Duration(tok.ExpiresIn) * time.Second)
	}

	return out
}

func toTokenEndpointError(err error) *domainerrors.TokenEndpointError {
	if retrieveErr, ok := errors.AsType[*oauth2.RetrieveError](err); ok {
		endpointErr := &domainerrors.TokenEndpointError{
			Code:        retrieveErr.ErrorCode,
			Description: retrieveErr.ErrorDescription,
			Err:         err,
		}
		if retrieveErr.Response != nil {
			endpointErr.Status = retrieveErr.Response.StatusCode
		}

		return endpointErr
	}

	return &domainerrors.TokenEndpointError{Err: err}
}
