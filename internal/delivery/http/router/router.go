// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marks/internal/delivery/http/middleware"
	"marks/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BookmarkHandler *handler.BookmarkHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	bookmarkHandler *handler.BookmarkHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		bookmarkHandler: params.BookmarkHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("/edit", r.userHandler.EditUser)
	}

	// Bookmark routes that require authentication
	bookmarkGroup := e.Group("/bookmark")
	bookmarkGroup.Use(r.authMiddleware.Authenticate)
	{
		bookmarkGroup.POST("", r.bookmarkHandler.Create)
		bookmarkGroup.GET("", r.bookmarkHandler.List)
		bookmarkGroup.GET("/:id", r.bookmarkHandler.FindOne)
		bookmarkGroup.PATCH("/:id", r.bookmarkHandler.Update)
		bookmarkGroup.DELETE("/:id", r.bookmarkHandler.Remove)
		bookmarkGroup.GET("/:id/qr", r.bookmarkHandler.ShareQR)
	}
}
