package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// RegisterRoutes registers the user routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	// Public routes
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	// Authenticated routes
	api := e.Group("/api/v1/users")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	api.GET("/me", h.Me)

	// Service-to-service routes consumed by the payment service
	internal := e.Group("/internal/users")
	internal.Use(middleware.ValidateAPIKey(cfg.APIKey.PaymentService))
	internal.GET("/by-email", h.ResolveByEmail)
}
