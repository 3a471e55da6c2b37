// Package handler contains the HTTP handlers of the API.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gsync/config"
	"gsync/internal/delivery/api/middleware"
	"gsync/internal/delivery/api/response"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/entity"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Config *config.Config
	Logger *slog.Logger
}

// SyncHandler serves the trigger, scheduler and status endpoints.
type SyncHandler struct {
	syncUC         usecase.SyncUsecase
	requestTimeout time.Duration
	logger         *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC:         params.SyncUC,
		requestTimeout: params.Config.Sync.RequestTimeout,
		logger:         params.Logger,
	}
}

// TriggerSyncRequest is the body of POST /api/v1/sync.
type TriggerSyncRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	SyncType   string `json:"syncType" validate:"required,synctype"`
	PeriodHint string `json:"periodHint,omitempty" validate:"omitempty,max=128"`
}

// TriggerSyncResponse reports a finished run. OK is false when any period failed.
type TriggerSyncResponse struct {
	OK       bool                   `json:"ok"`
	RunID    uuid.UUID              `json:"runId"`
	Matched  int                    `json:"matched"`
	Upserted int                    `json:"upserted"`
	Periods  []usecase.PeriodResult `json:"periods"`
}

// ScheduleResponse reports a scheduler fan-out.
type ScheduleResponse struct {
	Published int `json:"published"`
}

// SyncStatusResponse is the head row with its periods.
type SyncStatusResponse struct {
	SyncType     entity.SyncType      `json:"syncType"`
	Status       entity.PeriodStatus  `json:"status"`
	ErrorMessage string               `json:"errorMessage,omitempty"`
	RunID        *uuid.UUID           `json:"runId,omitempty"`
	StartedAt    *time.Time           `json:"startedAt,omitempty"`
	CompletedAt  *time.Time           `json:"completedAt,omitempty"`
	Periods      []PeriodStatusOutput `json:"periods"`
}

// PeriodStatusOutput is one period checkpoint.
type PeriodStatusOutput struct {
	Key          string              `json:"key"`
	CalendarID   string              `json:"calendarId,omitempty"`
	RangeStart   time.Time           `json:"rangeStart"`
	RangeEnd     time.Time           `json:"rangeEnd"`
	Status       entity.PeriodStatus `json:"status"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
	Upserted     int                 `json:"upserted"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// TriggerSync runs one sync synchronously. Callers may only sync themselves
// unless they hold the scheduler role.
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req TriggerSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID := uuid.MustParse(req.UserID)
	if userID != callerID && !middleware.HasRole(c, entity.RoleScheduler) {
		return response.Forbidden(c, "FORBIDDEN", "Cannot trigger a sync for another user")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.requestTimeout)
	defer cancel()

	result, err := h.syncUC.Run(ctx, usecase.SyncRequest{
		UserID:     userID,
		SyncType:   entity.SyncType(req.SyncType),
		PeriodHint: req.PeriodHint,
		RequestID:  deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TriggerSyncResponse{
		OK:       result.OK,
		RunID:    result.RunID,
		Matched:  result.Matched,
		Upserted: result.Upserted,
		Periods:  result.Periods,
	})
}

// Schedule publishes a sync request per connected user and sync type.
func (h *SyncHandler) Schedule(c echo.Context) error {
	ctx := c.Request().Context()

	published, err := h.syncUC.Schedule(ctx, deliverycontext.GetRequestID(c))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Scheduler fan-out incomplete",
			slog.Int("published", published),
			slog.Any("error", err),
		)
		if published == 0 {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusAccepted, ScheduleResponse{Published: published})
}

// GetStatus returns the caller's head and period checkpoints for one sync type.
func (h *SyncHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	syncType := entity.SyncType(c.QueryParam("syncType"))
	if !syncType.IsValid() {
		return response.BadRequest(c, "INVALID_SYNC_TYPE", "Sync type must be email or calendar")
	}

	status, err := h.syncUC.Status(c.Request().Context(), userID, syncType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSyncStatusResponse(status))
}

func toSyncStatusResponse(status *usecase.SyncStatus) SyncStatusResponse {
	head := status.Head
	out := SyncStatusResponse{
		SyncType:     head.SyncType,
		Status:       head.Status,
		ErrorMessage: head.ErrorMessage,
		StartedAt:    head.StartedAt,
		CompletedAt:  head.CompletedAt,
		Periods:      make([]PeriodStatusOutput, 0, len(status.Periods)),
	}
	if head.RunID != uuid.Nil {
		runID := head.RunID
		out.RunID = &runID
	}

	for _, period := range status.Periods {
		out.Periods = append(out.Periods, PeriodStatusOutput{
			Key:          period.PeriodKey,
			CalendarID:   period.CalendarID,
			RangeStart:   period.RangeStart,
			RangeEnd:     period.RangeEnd,
			Status:       period.Status,
			ErrorMessage: period.ErrorMessage,
			Upserted:     period.Upserted,
			UpdatedAt:    period.UpdatedAt,
		})
	}

	return out
}
