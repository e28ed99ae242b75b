package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pocketpay/pocketpay/services/wallet WalletUC

// WalletUC represents the wallet usecase interface
type WalletUC interface {
	// GetOrCreateWallet returns the user's active wallet, lazily creating
	// one with zero balance if none exists.
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)

	// GetBalance returns the current balance, lazily creating the wallet
	// if absent.
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, string, error)

	// Credit adds amount to the user's balance and journals the mutation
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error)

	// Debit subtracts amount from the user's balance and journals the
	// mutation; rejected when the balance is insufficient.
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error)

	// ListTransactions returns the user's journal entries, newest first
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.WalletTransaction, error)

	// DeactivateWallet soft-deletes the user's active wallet
	DeactivateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
}
