package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gsync/config"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(tokenURL string) *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_client_secret",
			RedirectURI:  "http://localhost:8080/oauth/google/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/gmail.readonly"},
			TokenURL:     tokenURL,
		},
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := NewOAuthService(newTestConfig(""), newDiscardLogger())

	raw := svc.AuthCodeURL("state-123")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "test_client_id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/oauth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "code", q.Get("response_type"))
}

func TestOAuthService_Exchange(t *testing.T) {
	var form url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","expires_in":3599,"token_type":"Bearer","scope":"gmail.readonly"}`))
	}))
	defer ts.Close()

	svc := NewOAuthService(newTestConfig(ts.URL), newDiscardLogger())
	before := time.Now()

	tok, err := svc.Exchange(context.Background(), "the-code", "http://app/cb")
	require.NoError(t, err)

	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "the-code", form.Get("code"))
	assert.Equal(t, "http://app/cb", form.Get("redirect_uri"))
	assert.Equal(t, "test_client_id", form.Get("client_id"))
	assert.Equal(t, "test_client_secret", form.Get("client_secret"))

	assert.Equal(t, "a1", tok.AccessToken)
	assert.Equal(t, "r1", tok.RefreshToken)
	assert.Equal(t, "gmail.readonly", tok.Scope)
	assert.WithinDuration(t, before.Add(3599*time.Second), tok.ExpiresAt, 5*time.Second)
}

func TestOAuthService_ExchangeRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad Request"}`))
	}))
	defer ts.Close()

	svc := NewOAuthService(newTestConfig(ts.URL), newDiscardLogger())

	_, err := svc.Exchange(context.Background(), "used-code", "")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchange)
}

func TestOAuthService_ExchangeWithoutCredentials(t *testing.T) {
	cfg := newTestConfig("http://127.0.0.1:1")
	cfg.GoogleOAuth.ClientSecret = ""

	_, err := NewOAuthService(cfg, newDiscardLogger()).Exchange(context.Background(), "code", "")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchange)
}

func TestOAuthService_Refresh(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "r1", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"a2","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer ts.Close()

	tok, err := NewOAuthService(newTestConfig(ts.URL), newDiscardLogger()).Refresh(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, "a2", tok.AccessToken)
	assert.False(t, tok.ExpiresAt.IsZero())
}

func TestOAuthService_RefreshRejected(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
	}))
	defer ts.Close()

	_, err := NewOAuthService(newTestConfig(ts.URL), newDiscardLogger()).Refresh(context.Background(), "r1")

	endpointErr, ok := errors.AsType[*domainerrors.TokenEndpointError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, endpointErr.Status)
	assert.Equal(t, "invalid_grant", endpointErr.Code)
	assert.Equal(t, 1, requests, "refresh is never retried")
}

func TestOAuthService_RefreshUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	tokenURL := ts.URL
	ts.Close()

	_, err := NewOAuthService(newTestConfig(tokenURL), newDiscardLogger()).Refresh(context.Background(), "r1")

	endpointErr, ok := errors.AsType[*domainerrors.TokenEndpointError](err)
	require.True(t, ok)
	assert.Zero(t, endpointErr.Status)
}
