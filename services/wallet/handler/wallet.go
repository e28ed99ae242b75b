package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/internal/utils"
	"github.com/pocketpay/pocketpay/services/wallet"
	"github.com/shopspring/decimal"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// GetMyWallet returns the authenticated user's wallet
func (h *WalletHandler) GetMyWallet(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	w, err := h.walletUC.GetOrCreateWallet(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved successfully", w)
}

// GetMyBalance returns the authenticated user's balance
func (h *WalletHandler) GetMyBalance(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, currency, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.BalanceResponse{
		Success:  true,
		Balance:  balance,
		Currency: currency,
	})
}

// GetMyTransactions returns the authenticated user's journal, newest first
func (h *WalletHandler) GetMyTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactions, err := h.walletUC.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// GetBalance is the internal balance read consumed by the payment service
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	balance, currency, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.BalanceResponse{
		Success:  true,
		Balance:  balance,
		Currency: currency,
	})
}

// Credit is the internal credit endpoint consumed by the payment service
func (h *WalletHandler) Credit(c echo.Context) error {
	return h.mutate(c, h.walletUC.Credit)
}

// Debit is the internal debit endpoint consumed by the payment service
func (h *WalletHandler) Debit(c echo.Context) error {
	return h.mutate(c, h.walletUC.Debit)
}

// Deactivate soft-deletes a wallet
func (h *WalletHandler) Deactivate(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	w, err := h.walletUC.DeactivateWallet(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet deactivated successfully", w)
}

func (h *WalletHandler) mutate(c echo.Context,
	op func(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error)) error {

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.WalletOperationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	w, err := op(c.Request().Context(), userID, req.Amount, req.Description)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.WalletOperationResponse{
		Success: true,
		Wallet:  w,
	})
}
