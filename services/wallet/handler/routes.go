package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// RegisterRoutes registers the wallet routes
func (h *WalletHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	// End-user routes
	api := e.Group("/api/v1/wallets")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	api.GET("/me", h.GetMyWallet)
	api.GET("/me/balance", h.GetMyBalance)
	api.GET("/me/transactions", h.GetMyTransactions)

	// Service-to-service routes consumed by the payment service
	internal := e.Group("/internal/wallets")
	internal.Use(middleware.ValidateAPIKey(cfg.APIKey.PaymentService))
	internal.GET("/:userID/balance", h.GetBalance)
	internal.POST("/:userID/credit", h.Credit)
	internal.POST("/:userID/debit", h.Debit)
	internal.POST("/:userID/deactivate", h.Deactivate)
}
