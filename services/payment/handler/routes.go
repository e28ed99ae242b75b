package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// RegisterRoutes registers the payment routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	api := e.Group("/api/v1/payments")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	api.POST("/transfer", h.Transfer)
	api.GET("", h.ListPayments)
	api.GET("/status/:referenceID", h.GetStatus)
	api.GET("/:id", h.GetPayment)
	api.POST("/:id/cancel", h.Cancel)
}
