package errors

import (
	"net/http"
	"testing"

	"gsync/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrOAuthExchange.WrapMessage("oauth client credentials are not configured")

	assert.True(t, errors.Is(err, ErrOAuthExchange))

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "OAUTH_EXCHANGE_FAILED", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrSyncAlreadyRunning.WithDetails("email")

	assert.Equal(t, "email", err.Details())
	assert.Equal(t, ErrSyncAlreadyRunning.ErrorCode(), err.ErrorCode())
	assert.Empty(t, ErrSyncAlreadyRunning.Details())
}

func TestTokenEndpointError(t *testing.T) {
	tests := []struct {
		name string
		err  *TokenEndpointError
		want string
	}{
		{name: "transport", err: &TokenEndpointError{Err: errors.New("dial tcp: timeout")}, want: "token endpoint unreachable: dial tcp: timeout"},
		{name: "with oauth code", err: &TokenEndpointError{Status: 400, Code: "invalid_grant"}, want: "token endpoint returned 400 (invalid_grant)"},
		{name: "status only", err: &TokenEndpointError{Status: 503}, want: "token endpoint returned 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, http.StatusBadGateway, tt.err.HTTPCode())
		})
	}
}

func TestHTTPError_AsAppError(t *testing.T) {
	var err error = errors.Wrap(&HTTPError{Status: 404, URL: "https://example.test/x"}, "list messages")

	httpErr, ok := errors.AsType[*HTTPError](err)
	assert.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, "UPSTREAM_HTTP_ERROR", appErr.ErrorCode())
}
