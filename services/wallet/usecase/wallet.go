package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/wallet"
	"github.com/shopspring/decimal"
)

// WalletUC implements the wallet.WalletUC interface
type WalletUC struct {
	cfg  *models.Config
	repo wallet.WalletRepo
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(cfg *models.Config, repo wallet.WalletRepo) *WalletUC {
	return &WalletUC{
		cfg:  cfg,
		repo: repo,
	}
}

// GetOrCreateWallet returns the user's active wallet, creating one with
// zero balance on first use.
func (uc *WalletUC) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.repo.GetOrCreate(ctx, userID, "USD")
}

// GetBalance returns the current balance, lazily creating the wallet if
// absent. Reads go through the balance cache; mutations invalidate it.
func (uc *WalletUC) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, string, error) {
	if balance, ok := uc.repo.GetCachedBalance(ctx, userID); ok {
		return balance, "USD", nil
	}

	w, err := uc.repo.GetOrCreate(ctx, userID, "USD")
	if err != nil {
		return decimal.Zero, "", err
	}

	uc.repo.SetCachedBalance(ctx, userID, w.Balance)
	return w.Balance, w.Currency, nil
}

// Credit adds amount to the user's balance and journals the mutation
func (uc *WalletUC) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.Validation("Credit amount must be greater than zero")
	}

	w, err := uc.repo.Credit(ctx, userID, amount, description)
	if err != nil {
		return nil, err
	}

	logger.Info("Wallet credited",
		logger.String("user_id", userID.String()),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("balance", w.Balance.StringFixed(2)))

	return w, nil
}

// Debit subtracts amount from the user's balance and journals the
// mutation. The repository re-validates the balance under the row lock.
func (uc *WalletUC) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.Validation("Debit amount must be greater than zero")
	}

	w, err := uc.repo.Debit(ctx, userID, amount, description)
	if err != nil {
		return nil, err
	}

	logger.Info("Wallet debited",
		logger.String("user_id", userID.String()),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("balance", w.Balance.StringFixed(2)))

	return w, nil
}

// ListTransactions returns the user's journal entries, newest first
func (uc *WalletUC) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.WalletTransaction, error) {
	w, err := uc.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListTransactions(ctx, w.ID)
}

// DeactivateWallet soft-deletes the user's active wallet
func (uc *WalletUC) DeactivateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return uc.repo.Deactivate(ctx, userID)
}
