// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/believemanasseh/luciddreams/internal/delivery/http/middleware"
	"github.com/believemanasseh/luciddreams/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")
	{
		v1.POST("/register", r.accountHandler.Register)
		v1.POST("/login", r.accountHandler.Login)
	}

	// Post routes require a valid auth token
	posts := v1.Group("/posts")
	posts.Use(r.authMiddleware.Authenticate)
	{
		posts.POST("/create", r.postHandler.Create)
		posts.GET("", r.postHandler.List)
		posts.DELETE("/:post_id", r.postHandler.Delete)
	}
}
