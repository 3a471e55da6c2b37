package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gsync/config"
	"gsync/internal/delivery/api/validator"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/errors"
	mockUsecase "gsync/internal/mocks/usecase"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSyncHandler(t *testing.T) (*SyncHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	syncUC := mockUsecase.NewMockSyncUsecase(t)
	cfg := &config.Config{Sync: &config.SyncConfig{RequestTimeout: time.Minute}}

	return NewSyncHandler(SyncHandlerParams{SyncUC: syncUC, Config: cfg, Logger: discardLogger()}), syncUC
}

// newCallerContext builds an echo context for an authenticated caller.
func newCallerContext(method, target, body string, callerID uuid.UUID, roles ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if callerID != uuid.Nil {
		if roles == nil {
			roles = []string{entity.RoleUser.String()}
		}
		deliverycontext.SetCaller(c, callerID, roles)
	}

	return c, rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestSyncHandler_TriggerSync(t *testing.T) {
	userID := uuid.New()
	runID := uuid.New()

	t.Run("runs the caller's own sync", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		body := `{"userId":"` + userID.String() + `","syncType":"email"}`
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)
		deliverycontext.SetRequestID(c, "req-1")

		syncUC.EXPECT().
			Run(mock.Anything, usecase.SyncRequest{UserID: userID, SyncType: entity.SyncTypeEmail, RequestID: "req-1"}).
			RunAndReturn(func(ctx context.Context, _ usecase.SyncRequest) (*usecase.SyncResult, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return &usecase.SyncResult{
					OK:       true,
					RunID:    runID,
					Upserted: 12,
					Matched:  4,
					Periods:  []usecase.PeriodResult{{Key: "2025-W10", Status: entity.PeriodStatusComplete, Upserted: 12}},
				}, nil
			})

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		got := decodeData[TriggerSyncResponse](t, rec)
		assert.True(t, got.OK)
		assert.Equal(t, runID, got.RunID)
		assert.Equal(t, 12, got.Upserted)
		assert.Equal(t, 4, got.Matched)
		require.Len(t, got.Periods, 1)
		assert.Equal(t, "2025-W10", got.Periods[0].Key)
	})

	t.Run("partial failure still answers 200 with ok false", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		body := `{"userId":"` + userID.String() + `","syncType":"calendar","periodHint":"primary:2025-03"}`
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)

		syncUC.EXPECT().
			Run(mock.Anything, mock.MatchedBy(func(req usecase.SyncRequest) bool {
				return req.SyncType == entity.SyncTypeCalendar && req.PeriodHint == "primary:2025-03"
			})).
			Return(&usecase.SyncResult{OK: false, RunID: runID}, nil)

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeData[TriggerSyncResponse](t, rec).OK)
	})

	t.Run("rejects syncing another user", func(t *testing.T) {
		h, _ := newTestSyncHandler(t)
		body := `{"userId":"` + uuid.NewString() + `","syncType":"email"}`
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("scheduler may sync any user", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		target := uuid.New()
		body := `{"userId":"` + target.String() + `","syncType":"email"}`
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID, entity.RoleScheduler.String())

		syncUC.EXPECT().
			Run(mock.Anything, mock.MatchedBy(func(req usecase.SyncRequest) bool { return req.UserID == target })).
			Return(&usecase.SyncResult{OK: true, RunID: runID}, nil)

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects unknown sync type", func(t *testing.T) {
		h, _ := newTestSyncHandler(t)
		body := `{"userId":"` + userID.String() + `","syncType":"contacts"}`
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", `{}`, uuid.Nil)

		require.NoError(t, h.TriggerSync(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	errCases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"already running", domainerrors.ErrSyncAlreadyRunning, http.StatusConflict, "SYNC_ALREADY_RUNNING"},
		{"no valid token", domainerrors.ErrNoValidToken.WrapMessage("token store"), http.StatusPreconditionFailed, "NO_VALID_TOKEN"},
		{"bad hint", domainerrors.ErrInvalidPeriodHint, http.StatusBadRequest, "INVALID_PERIOD_HINT"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			h, syncUC := newTestSyncHandler(t)
			body := `{"userId":"` + userID.String() + `","syncType":"email"}`
			c, rec := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)

			syncUC.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, tc.err)

			require.NoError(t, h.TriggerSync(c))
			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantErr, decodeErrorCode(t, rec))
		})
	}

	t.Run("unclassified errors go to the error handler", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		body := `{"userId":"` + userID.String() + `","syncType":"email"}`
		c, _ := newCallerContext(http.MethodPost, "/api/v1/sync", body, userID)

		syncUC.EXPECT().Run(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		assert.Error(t, h.TriggerSync(c))
	})
}

func TestSyncHandler_Schedule(t *testing.T) {
	callerID := uuid.New()

	t.Run("reports published count", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync/schedule", "", callerID, entity.RoleScheduler.String())
		deliverycontext.SetRequestID(c, "req-1")

		syncUC.EXPECT().Schedule(mock.Anything, "req-1").Return(4, nil)

		require.NoError(t, h.Schedule(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 4, decodeData[ScheduleResponse](t, rec).Published)
	})

	t.Run("partial fan-out is accepted", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodPost, "/api/v1/sync/schedule", "", callerID, entity.RoleScheduler.String())

		syncUC.EXPECT().Schedule(mock.Anything, mock.Anything).Return(3, errors.New("publish failed"))

		require.NoError(t, h.Schedule(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 3, decodeData[ScheduleResponse](t, rec).Published)
	})

	t.Run("nothing published is an error", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		c, _ := newCallerContext(http.MethodPost, "/api/v1/sync/schedule", "", callerID, entity.RoleScheduler.String())

		syncUC.EXPECT().Schedule(mock.Anything, mock.Anything).Return(0, errors.New("list users"))

		assert.Error(t, h.Schedule(c))
	})
}

func TestSyncHandler_GetStatus(t *testing.T) {
	userID := uuid.New()
	runID := uuid.New()
	startedAt := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	t.Run("returns head and periods", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodGet, "/api/v1/sync/status?syncType=calendar", "", userID)

		syncUC.EXPECT().Status(mock.Anything, userID, entity.SyncTypeCalendar).Return(&usecase.SyncStatus{
			Head: &entity.SyncHead{
				UserID:    userID,
				SyncType:  entity.SyncTypeCalendar,
				Status:    entity.PeriodStatusRunning,
				RunID:     runID,
				StartedAt: &startedAt,
			},
			Periods: []*entity.SyncPeriod{{
				PeriodKey:  "primary:2025-03",
				CalendarID: "primary",
				RangeStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				Status:     entity.PeriodStatusComplete,
				Upserted:   7,
			}},
		}, nil)

		require.NoError(t, h.GetStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		got := decodeData[SyncStatusResponse](t, rec)
		assert.Equal(t, entity.PeriodStatusRunning, got.Status)
		require.NotNil(t, got.RunID)
		assert.Equal(t, runID, *got.RunID)
		require.Len(t, got.Periods, 1)
		assert.Equal(t, "primary", got.Periods[0].CalendarID)
		assert.Equal(t, 7, got.Periods[0].Upserted)
	})

	t.Run("idle head omits run id", func(t *testing.T) {
		h, syncUC := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodGet, "/api/v1/sync/status?syncType=email", "", userID)

		syncUC.EXPECT().Status(mock.Anything, userID, entity.SyncTypeEmail).Return(&usecase.SyncStatus{
			Head: &entity.SyncHead{UserID: userID, SyncType: entity.SyncTypeEmail, Status: entity.PeriodStatusIdle},
		}, nil)

		require.NoError(t, h.GetStatus(c))
		got := decodeData[SyncStatusResponse](t, rec)
		assert.Nil(t, got.RunID)
		assert.Empty(t, got.Periods)
	})

	t.Run("rejects unknown sync type", func(t *testing.T) {
		h, _ := newTestSyncHandler(t)
		c, rec := newCallerContext(http.MethodGet, "/api/v1/sync/status?syncType=drive", "", userID)

		require.NoError(t, h.GetStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
