// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	postHandler     *handler.PostHandler
	commentHandler  *handler.CommentHandler
	categoryHandler *handler.CategoryHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		postHandler:         params.PostHandler,
		commentHandler:      params.CommentHandler,
		categoryHandler:     params.CategoryHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/", handler.HealthCheck)
	e.GET("/health", handler.HealthCheck)

	// Credential routes. Only login and forgot-password sit behind the limiter.
	e.POST("/users", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit)
	e.POST("/refresh", r.authHandler.Refresh)
	e.POST("/forgot-password", r.authHandler.ForgotPassword, r.rateLimitMiddleware.Limit)
	e.POST("/reset-password", r.authHandler.ResetPassword)

	// Public reads
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/categories/:slug/posts", r.postHandler.ListByCategory)
	e.GET("/posts", r.postHandler.List)
	e.GET("/posts/:id", r.postHandler.Get)
	e.GET("/posts/:id/comments", r.commentHandler.ListByPost)

	authenticate := r.authMiddleware.Authenticate

	profileGroup := e.Group("/profile", authenticate)
	{
		profileGroup.GET("", r.userHandler.GetProfile)
		profileGroup.PATCH("", r.userHandler.UpdateProfile)
		profileGroup.DELETE("", r.userHandler.DeleteProfile)
		profileGroup.PUT("/password", r.userHandler.ChangePassword)
	}

	// Ownership is checked by the usecases once the target is loaded
	e.POST("/posts", r.postHandler.Create, authenticate)
	e.PATCH("/posts/:id", r.postHandler.Update, authenticate)
	e.DELETE("/posts/:id", r.postHandler.Delete, authenticate)
	e.POST("/posts/:id/comments", r.commentHandler.Create, authenticate)
	e.PATCH("/comments/:id", r.commentHandler.Update, authenticate)
	e.DELETE("/comments/:id", r.commentHandler.Delete, authenticate)

	// Admin routes: first check the token, then the role
	requireAdmin := r.authMiddleware.RequireAdmin
	e.GET("/users", r.userHandler.ListUsers, authenticate, requireAdmin)
	e.DELETE("/users/:id", r.userHandler.DeleteUser, authenticate, requireAdmin)
	e.POST("/categories", r.categoryHandler.Create, authenticate, requireAdmin)
}
