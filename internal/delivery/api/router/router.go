// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"postboard/config"
	"postboard/internal/delivery/api/middleware"
	"postboard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PostHandler     *handler.PostHandler
	ReactionHandler *handler.ReactionHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	postHandler     *handler.PostHandler
	reactionHandler *handler.ReactionHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		postHandler:     params.PostHandler,
		reactionHandler: params.ReactionHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	loginLimiter := middleware.NewLoginRateLimiter(r.config)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("", r.authHandler.Info)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, loginLimiter)
		authGroup.POST("/login-form", r.authHandler.LoginForm, loginLimiter)
		authGroup.GET("/refresh", r.authHandler.Refresh, r.authMiddleware.Authenticate)
	}

	// Every post route requires a bearer token.
	postsGroup := e.Group("/posts")
	postsGroup.Use(r.authMiddleware.Authenticate)
	{
		postsGroup.GET("", r.postHandler.List)
		postsGroup.POST("", r.postHandler.Create)
		postsGroup.GET("/info", r.postHandler.Info)
		postsGroup.GET("/mine", r.postHandler.Mine)
		postsGroup.PUT("/:id", r.postHandler.Edit)
		postsGroup.DELETE("/:id", r.postHandler.Delete)
		postsGroup.POST("/:id/like", r.reactionHandler.Like)
		postsGroup.POST("/:id/dislike", r.reactionHandler.Dislike)
	}
}
