// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"townhub/internal/delivery/http/middleware"
	"townhub/internal/delivery/http/router/handler"
	"townhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler     *handler.BusinessHandler
	ReviewHandler       *handler.ReviewHandler
	PostHandler         *handler.PostHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler     *handler.BusinessHandler
	reviewHandler       *handler.ReviewHandler
	postHandler         *handler.PostHandler
	notificationHandler *handler.NotificationHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler:     params.BusinessHandler,
		reviewHandler:       params.ReviewHandler,
		postHandler:         params.PostHandler,
		notificationHandler: params.NotificationHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory routes
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.GET("/:id", r.businessHandler.GetDetail)
		businessGroup.GET("/:id/qrcode", r.businessHandler.ShareQR)
	}

	// Directory routes that require authentication
	businessGroup.POST("", r.businessHandler.Create, r.authMiddleware.Authenticate)
	businessGroup.POST("/:id/reviews", r.reviewHandler.Submit, r.authMiddleware.Authenticate)

	// Community posts: reading is public, posting requires a session
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
	}

	// Notification feed of the signed-in user
	e.GET("/notifications", r.notificationHandler.List, r.authMiddleware.Authenticate)

	// Profile and device token registry
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
		profileGroup.POST("/fcm-tokens", r.profileHandler.RegisterToken)
		profileGroup.DELETE("/fcm-tokens/:token", r.profileHandler.UnregisterToken)
	}

	// Moderation routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.DELETE("/businesses/:id", r.businessHandler.AdminDelete)
	}
}
