package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pocketpay/pocketpay/services/ledger LedgerUC

// LedgerUC represents the ledger usecase interface
type LedgerUC interface {
	// RecordTransaction records a confirmed transfer reported by the
	// payment service and appends a TRANSACTION_CREATED audit entry.
	RecordTransaction(ctx context.Context, req *models.RecordTransactionRequest) (*models.LedgerTransaction, error)

	// UpdateStatus transitions a ledger record and appends a
	// STATUS_UPDATED audit entry carrying the old and new status.
	UpdateStatus(ctx context.Context, transactionID uuid.UUID, req *models.UpdateStatusRequest) (*models.LedgerTransaction, error)

	// Reads
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.LedgerTransaction, error)
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.LedgerTransaction, error)
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.LedgerTransaction, error)
	GetAuditTrail(ctx context.Context, transactionID uuid.UUID) ([]models.AuditLog, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error)
}
