// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gsync/internal/delivery/api/middleware"
	"gsync/internal/delivery/api/router/handler"
	"gsync/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SyncHandler    *handler.SyncHandler
	OAuthHandler   *handler.OAuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler    *handler.SyncHandler
	oauthHandler   *handler.OAuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:    params.SyncHandler,
		oauthHandler:   params.OAuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Google account connection. The callback is authenticated by its signed state.
	oauthGroup := e.Group("/oauth/google")
	{
		oauthGroup.GET("/connect", r.oauthHandler.Connect, r.authMiddleware.Authenticate)
		oauthGroup.GET("/callback", r.oauthHandler.Callback)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	syncGroup := apiV1.Group("/sync")
	{
		syncGroup.POST("", r.syncHandler.TriggerSync)
		syncGroup.GET("/status", r.syncHandler.GetStatus)
		syncGroup.POST("/schedule", r.syncHandler.Schedule, r.authMiddleware.RequireRole(entity.RoleScheduler))
	}
}
