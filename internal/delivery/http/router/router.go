// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"prepai/internal/delivery/http/middleware"
	"prepai/internal/delivery/http/router/handler"
	"prepai/internal/domain/entity"
	"prepai/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContentHandler *handler.ContentHandler
	AdminHandler   *handler.AdminHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", p.HealthHandler.Live)
	e.GET("/health/ready", p.HealthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(p.Metrics.Handler()))

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.SignUp, p.RateLimit.Limit)
		authGroup.POST("/callback/credentials", p.AuthHandler.CredentialsCallback, p.RateLimit.Limit)
		authGroup.GET("/signin/google", p.AuthHandler.GoogleSignIn)
		authGroup.GET("/callback/google", p.AuthHandler.GoogleCallback)
		authGroup.GET("/session", p.AuthHandler.Session)
		authGroup.POST("/signout", p.AuthHandler.SignOut)
	}

	// Practice content requires a signed-in user.
	contentGroup := api.Group("", p.AuthMiddleware.Authenticate)
	{
		contentGroup.GET("/problems", p.ContentHandler.ListProblems)
		contentGroup.GET("/problems/:id", p.ContentHandler.GetProblem)
		contentGroup.GET("/questions", p.ContentHandler.ListQuestions)
	}

	adminGroup := api.Group("/admin", p.AuthMiddleware.Authenticate, p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/seed", p.AdminHandler.Seed)
	}
}
