package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pocketpay/pocketpay/services/wallet WalletRepo

// WalletRepo defines the wallet persistence interface. Credit and Debit
// run the full check-and-mutate sequence plus the journal append inside
// one local transaction, holding a row lock on the wallet for its
// duration.
type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error)
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID) ([]models.WalletTransaction, error)
	Deactivate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)

	// Balance cache (best effort; a cache miss or error falls back to the
	// database)
	GetCachedBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, bool)
	SetCachedBalance(ctx context.Context, userID uuid.UUID, balance decimal.Decimal)
	InvalidateBalance(ctx context.Context, userID uuid.UUID)
}
