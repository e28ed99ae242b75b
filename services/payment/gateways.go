package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pocketpay/pocketpay/services/payment PaymentGW

// PaymentGW defines the remote collaborator surface the orchestrator
// depends on. All calls are synchronous HTTP with a client-side timeout;
// a timeout counts as a failed step. None of them are retried.
type PaymentGW interface {
	// User service
	ResolveRecipient(ctx context.Context, email string) (*models.UserLookupResponse, error)

	// Wallet service
	GetWalletBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	DebitWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) error
	CreditWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) error

	// Ledger service
	RecordTransaction(ctx context.Context, req *models.RecordTransactionRequest) error
}
