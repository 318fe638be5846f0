// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"algoarena/config"
	"algoarena/internal/delivery/http/middleware"
	"algoarena/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	ProfileHandler *handler.ProfileHandler
	HomeHandler    *handler.HomeHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	profileHandler *handler.ProfileHandler
	homeHandler    *handler.HomeHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		profileHandler: params.ProfileHandler,
		homeHandler:    params.HomeHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
// Authenticate and Authorize wrap every route; the policy table decides what is public.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)
	e.Use(r.authMiddleware.Authorize)

	// Landing and status
	e.GET("/", r.homeHandler.Home)
	e.GET("/public", r.homeHandler.Public)
	e.GET("/health", handler.HealthCheck)
	e.GET("/api/health", handler.HealthCheck)
	e.GET("/api/users", r.homeHandler.Users)

	// Provider login flow
	e.GET("/oauth2/authorization/:provider", r.oauthHandler.StartLogin)
	e.GET("/login/oauth2/code/:provider", r.oauthHandler.Callback)

	// Credential endpoints
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/generate-token", r.authHandler.GenerateToken)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/validate", r.authHandler.Validate)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Frontend helpers
	frontendGroup := e.Group("/api/frontend")
	{
		frontendGroup.GET("/auth/:provider", r.oauthHandler.LoginURL)
		frontendGroup.POST("/auth/logout", r.oauthHandler.Logout)
		frontendGroup.GET("/user", r.oauthHandler.CurrentUser)
	}

	// Routes that require an authenticated principal
	protectedGroup := e.Group("/api/protected")
	{
		protectedGroup.GET("/profile", r.profileHandler.GetProfile)
		protectedGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		protectedGroup.GET("/dashboard", r.profileHandler.Dashboard)
		protectedGroup.GET("/admin/users", r.profileHandler.ListUsers)
		protectedGroup.DELETE("/admin/users/:id", r.profileHandler.DeleteUser)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		e.POST("/api/auth/generate-token-test", r.authHandler.GenerateTokenTest)
	}
}
