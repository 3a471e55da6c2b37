// Package handler contains the Pub/Sub push handlers of the sync worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gsync/config"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/constants"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed ID token against an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs the syncs requested over Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	runTimeout     time.Duration
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		runTimeout:     params.Config.Sync.RequestTimeout,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; any other outcome is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SyncRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse sync event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("user_id", event.UserID),
		slog.String("sync_type", event.SyncType),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	req, err := toSyncRequest(&event, requestID)
	if err != nil {
		// Malformed events never succeed; acknowledge so they are not redelivered.
		reqLogger.Error("[Worker] Dropping invalid sync event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing sync event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("source", event.Source),
	)

	runCtx, cancel := context.WithTimeout(ctx, h.runTimeout)
	defer cancel()

	result, err := h.syncUC.Run(runCtx, req)
	if err != nil {
		retry := shouldRedeliver(err)
		reqLogger.Error("[Worker] Sync failed",
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync finished",
		slog.String("run_id", result.RunID.String()),
		slog.Bool("ok", result.OK),
		slog.Int("upserted", result.Upserted),
		slog.Int("matched", result.Matched),
	)

	return c.NoContent(http.StatusOK)
}

// shouldRedeliver reports whether a failed run is worth another delivery.
func shouldRedeliver(err error) bool {
	return errors.IsRetryable(err) || errors.Is(err, domainerrors.ErrSyncAlreadyRunning)
}

func toSyncRequest(event *service.SyncRequestedEvent, requestID string) (usecase.SyncRequest, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return usecase.SyncRequest{}, errors.Wrap(err, "parse user id")
	}

	syncType := entity.SyncType(event.SyncType)
	if !syncType.IsValid() {
		return usecase.SyncRequest{}, domainerrors.ErrInvalidSyncType.WrapMessage(event.SyncType)
	}

	return usecase.SyncRequest{
		UserID:     userID,
		SyncType:   syncType,
		PeriodHint: event.PeriodHint,
		RequestID:  requestID,
	}, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SyncRequestedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from the X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
