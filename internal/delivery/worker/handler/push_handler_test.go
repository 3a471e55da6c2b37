package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gsync/config"
	"gsync/internal/domain/constants"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	mockUsecase "gsync/internal/mocks/usecase"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	syncUC := mockUsecase.NewMockSyncUsecase(t)
	cfg := &config.Config{
		Sync:   &config.SyncConfig{RequestTimeout: time.Minute},
		PubSub: &config.PubSubConfig{Provider: provider},
	}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		SyncUC: syncUC,
	}), syncUC
}

func pushBody(t *testing.T, event *service.SyncRequestedEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/sync-requested-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()

	return rec, h.HandlePush(e.NewContext(req, rec))
}

func TestPushHandler_HandlePush(t *testing.T) {
	userID := uuid.New()
	event := &service.SyncRequestedEvent{
		RequestID: "evt-req",
		UserID:    userID.String(),
		SyncType:  "email",
		Source:    constants.SyncSourceScheduler,
	}

	t.Run("runs the requested sync", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		syncUC.EXPECT().
			Run(mock.Anything, usecase.SyncRequest{UserID: userID, SyncType: entity.SyncTypeEmail, RequestID: "attr-req"}).
			RunAndReturn(func(ctx context.Context, _ usecase.SyncRequest) (*usecase.SyncResult, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return &usecase.SyncResult{OK: true, RunID: uuid.New()}, nil
			})

		rec, err := doPush(h, pushBody(t, event, map[string]string{"request_id": "attr-req"}), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to the event request id", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		syncUC.EXPECT().
			Run(mock.Anything, mock.MatchedBy(func(req usecase.SyncRequest) bool { return req.RequestID == "evt-req" })).
			Return(&usecase.SyncResult{OK: false}, nil)

		rec, err := doPush(h, pushBody(t, event, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		syncUC.EXPECT().Run(mock.Anything, mock.Anything).
			Return(nil, errors.Retryable(errors.New("connection refused")))

		rec, err := doPush(h, pushBody(t, event, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("concurrent run asks for redelivery", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		syncUC.EXPECT().Run(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrSyncAlreadyRunning.WrapMessage("email"))

		rec, err := doPush(h, pushBody(t, event, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		syncUC.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoValidToken)

		rec, err := doPush(h, pushBody(t, event, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid event is dropped", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
		bad := &service.SyncRequestedEvent{UserID: "not-a-uuid", SyncType: "email"}

		rec, err := doPush(h, pushBody(t, bad, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		unknownType := &service.SyncRequestedEvent{UserID: userID.String(), SyncType: "drive"}
		rec, err = doPush(h, pushBody(t, unknownType, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		rec, err := doPush(h, `{"message":{"data":"%%%"}}`, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	userID := uuid.New()
	event := &service.SyncRequestedEvent{UserID: userID.String(), SyncType: "calendar"}

	t.Run("only enforced for google outside develop", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)
		assert.False(t, h.verifyPushAuth)

		h, _ = newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvProduction)
		assert.False(t, h.verifyPushAuth)

		h, _ = newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		assert.True(t, h.verifyPushAuth)
	})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)

		rec, err := doPush(h, pushBody(t, event, nil), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validates audience and issuer", func(t *testing.T) {
		h, syncUC := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		syncUC.EXPECT().Run(mock.Anything, mock.Anything).Return(&usecase.SyncResult{OK: true}, nil)

		rec, err := doPush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec, err := doPush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer signed"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
