package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/internal/utils"
	"github.com/pocketpay/pocketpay/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// RecordTransaction is the internal endpoint the payment service calls
// after a transfer completes.
func (h *LedgerHandler) RecordTransaction(c echo.Context) error {
	var req models.RecordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.ledgerUC.RecordTransaction(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded successfully", tx)
}

// UpdateStatus is the internal endpoint for ledger status transitions
func (h *LedgerHandler) UpdateStatus(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.ledgerUC.UpdateStatus(c.Request().Context(), transactionID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction status updated successfully", tx)
}

// GetTransaction returns a single ledger transaction
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.ledgerUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// GetByPayment returns the ledger transaction recorded for a payment
func (h *LedgerHandler) GetByPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	tx, err := h.ledgerUC.GetByPaymentID(c.Request().Context(), paymentID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// GetAuditTrail returns a transaction's audit entries oldest first
func (h *LedgerHandler) GetAuditTrail(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	entries, err := h.ledgerUC.GetAuditTrail(c.Request().Context(), transactionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Audit trail retrieved successfully", entries)
}

// ListMyTransactions returns the authenticated user's ledger history
func (h *LedgerHandler) ListMyTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactions, err := h.ledgerUC.ListUserTransactions(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// GetMySummary returns the authenticated user's financial summary
func (h *LedgerHandler) GetMySummary(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	summary, err := h.ledgerUC.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}
