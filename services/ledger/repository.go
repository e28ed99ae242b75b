package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pocketpay/pocketpay/services/ledger LedgerRepo

// LedgerRepo defines the ledger persistence interface. Transactions are
// the record of fact; audit log entries are append-only and never
// rewritten.
type LedgerRepo interface {
	CreateTransaction(ctx context.Context, tx *models.LedgerTransaction) error
	UpdateTransactionStatus(ctx context.Context, tx *models.LedgerTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerTransaction, error)
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.LedgerTransaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LedgerTransaction, error)

	AppendAudit(ctx context.Context, entry *models.AuditLog) error
	GetAuditTrail(ctx context.Context, transactionID uuid.UUID) ([]models.AuditLog, error)

	Summarize(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error)
}
