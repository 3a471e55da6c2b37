// Package context carries request-scoped values between the delivery and usecase layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID and KeyRoles hold the authenticated caller.
	KeyUserID ContextKey = "user_id"
	KeyRoles  ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating one when absent.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCaller stores the authenticated user on echo.Context and tags the
// request-scoped logger with the user id.
func SetCaller(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}
