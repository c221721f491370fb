// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shuttle/internal/delivery/http/middleware"
	"shuttle/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PageHandler    *handler.PageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	pageHandler    *handler.PageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		pageHandler:    params.PageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application. The route
// shapes are flat on purpose; the storefront posts to them directly.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.pageHandler.Root)
	e.GET("/login", r.pageHandler.LoginPage)
	e.GET("/signup", r.pageHandler.SignupPage)

	// Pages behind the session gate
	e.GET("/index", r.pageHandler.Index, r.authMiddleware.RequireLogin)
	e.GET("/badminton-products", r.pageHandler.Products, r.authMiddleware.RequireLogin)

	// Account operations
	e.POST("/signup", r.accountHandler.Signup)
	e.POST("/login", r.accountHandler.Login)
	e.GET("/user/:userID", r.accountHandler.GetUser)

	// Cart and wishlist operations
	e.POST("/add-to-cart", r.accountHandler.AddToCart)
	e.POST("/add-to-wishlist", r.accountHandler.AddToWishlist)
	e.POST("/remove-from-cart", r.accountHandler.RemoveFromCart)
	e.POST("/remove-from-wishlist", r.accountHandler.RemoveFromWishlist)
	e.POST("/update-profile", r.accountHandler.UpdateProfile)
}
