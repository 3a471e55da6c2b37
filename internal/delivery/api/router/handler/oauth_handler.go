package handler

import (
	"log/slog"
	"net/http"

	"gsync/internal/delivery/api/middleware"
	"gsync/internal/delivery/api/response"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	ConnectUC usecase.ConnectUsecase
	Logger    *slog.Logger
}

// OAuthHandler drives the Google account connection flow.
type OAuthHandler struct {
	connectUC usecase.ConnectUsecase
	logger    *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		connectUC: params.ConnectUC,
		logger:    params.Logger,
	}
}

// ConnectURLResponse carries the Google consent URL.
type ConnectURLResponse struct {
	URL string `json:"url"`
}

// CallbackRequest is the query of the OAuth redirect.
type CallbackRequest struct {
	Code  string `query:"code"`
	State string `query:"state" validate:"required"`
	Error string `query:"error"`
}

// ConnectedResponse confirms a stored token pair.
type ConnectedResponse struct {
	Connected bool      `json:"connected"`
	UserID    uuid.UUID `json:"userId"`
}

// Connect returns the consent URL for the authenticated caller.
func (h *OAuthHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	url, err := h.connectUC.ConnectURL(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectURLResponse{URL: url})
}

// Callback exchanges the authorization code Google redirected back with.
func (h *OAuthHandler) Callback(c echo.Context) error {
	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback parameters")
	}

	// Consent denied or aborted on Google's side
	if req.Error != "" {
		return response.BadRequest(c, "CONSENT_DENIED", "Google consent was not granted: "+req.Error)
	}
	if req.Code == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Authorization code is missing")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	userID, err := h.connectUC.CompleteConnect(ctx, req.Code, req.State)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Google account connected",
		slog.String("user_id", userID.String()),
	)

	return response.Success(c, http.StatusOK, ConnectedResponse{Connected: true, UserID: userID})
}
