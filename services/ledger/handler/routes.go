package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// RegisterRoutes registers the ledger routes
func (h *LedgerHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	// End-user routes
	api := e.Group("/api/v1/ledger")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	api.GET("/transactions", h.ListMyTransactions)
	api.GET("/transactions/:id", h.GetTransaction)
	api.GET("/transactions/payment/:paymentID", h.GetByPayment)
	api.GET("/transactions/:id/audit-trail", h.GetAuditTrail)
	api.GET("/summary", h.GetMySummary)

	// Service-to-service routes consumed by the payment service
	internal := e.Group("/internal/ledger")
	internal.Use(middleware.ValidateAPIKey(cfg.APIKey.PaymentService))
	internal.POST("/record-transaction", h.RecordTransaction)
	internal.PUT("/transactions/:id/status", h.UpdateStatus)
}
