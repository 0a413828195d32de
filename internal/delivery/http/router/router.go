// Package router contains routing setup for the HTTP delivery.
package router

import (
	"vestira/internal/delivery/http/middleware"
	"vestira/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ReelHandler    *handler.ReelHandler
	OrderHandler   *handler.OrderHandler
	UserHandler    *handler.UserHandler
	PartnerHandler *handler.PartnerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	reelHandler    *handler.ReelHandler
	orderHandler   *handler.OrderHandler
	userHandler    *handler.UserHandler
	partnerHandler *handler.PartnerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		reelHandler:    params.ReelHandler,
		orderHandler:   params.OrderHandler,
		userHandler:    params.UserHandler,
		partnerHandler: params.PartnerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Identity and session routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/user/register", r.authHandler.RegisterUser)
		authGroup.POST("/user/login", r.authHandler.LoginUser)
		authGroup.GET("/user/logout", r.authHandler.Logout)
		authGroup.POST("/partner/register", r.authHandler.RegisterPartner)
		authGroup.POST("/partner/login", r.authHandler.LoginPartner)
		authGroup.GET("/partner/logout", r.authHandler.Logout)
	}

	// Reel catalog routes. The feed is public but personalizes for
	// signed-in viewers; social and partner routes require a session.
	reelGroup := api.Group("/reels")
	{
		reelGroup.GET("", r.reelHandler.Feed, r.authMiddleware.OptionalAuthenticate)
		reelGroup.GET("/partner", r.reelHandler.ListMine,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
		reelGroup.POST("/upload", r.reelHandler.Upload,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
		reelGroup.PUT("/:id", r.reelHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
		reelGroup.DELETE("/:id", r.reelHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
		reelGroup.POST("/:id/like", r.reelHandler.ToggleLike, r.authMiddleware.Authenticate)
		reelGroup.POST("/:id/save", r.reelHandler.ToggleSave, r.authMiddleware.Authenticate)
		reelGroup.POST("/:id/comment", r.reelHandler.AddComment, r.authMiddleware.Authenticate)
	}

	// Order ledger routes
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Place,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
		orderGroup.GET("", r.orderHandler.ListMine,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
		orderGroup.GET("/partner", r.orderHandler.ListForPartner,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus,
			r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
	}

	// Profile routes
	userGroup := api.Group("/user",
		r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
	{
		userGroup.GET("/profile", r.userHandler.Profile)
	}

	partnerGroup := api.Group("/partner",
		r.authMiddleware.Authenticate, r.authMiddleware.RequirePartner)
	{
		partnerGroup.GET("/profile", r.partnerHandler.Profile)
		partnerGroup.PUT("/profile", r.partnerHandler.UpdateProfile)
		partnerGroup.GET("/analytics", r.partnerHandler.Analytics)
	}
}
