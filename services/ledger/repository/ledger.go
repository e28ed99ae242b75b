package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements the ledger repository interface
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepo creates a new ledger repository
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new ledger transaction
func (r *LedgerRepo) CreateTransaction(ctx context.Context, tx *models.LedgerTransaction) error {
	query := `
		INSERT INTO transactions (
			id, payment_id, sender_user_id, receiver_user_id, amount,
			currency, transaction_type, status, description, created_at, updated_at
		) VALUES (
			:id, :payment_id, :sender_user_id, :receiver_user_id, :amount,
			:currency, :transaction_type, :status, :description, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return apperrors.Internal("failed to create transaction", err)
	}
	return nil
}

// UpdateTransactionStatus persists a status transition
func (r *LedgerRepo) UpdateTransactionStatus(ctx context.Context, tx *models.LedgerTransaction) error {
	query := `
		UPDATE transactions
		SET status = :status, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return apperrors.Internal("failed to update transaction status", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to update transaction status", err)
	}
	if rows == 0 {
		return apperrors.NotFound("transaction not found")
	}
	return nil
}

// GetByID retrieves a ledger transaction by id
func (r *LedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerTransaction, error) {
	var tx models.LedgerTransaction
	query := `SELECT * FROM transactions WHERE id = $1`

	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction not found")
		}
		return nil, apperrors.Internal("failed to get transaction", err)
	}
	return &tx, nil
}

// GetByPaymentID retrieves the ledger transaction recorded for a payment
func (r *LedgerRepo) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.LedgerTransaction, error) {
	var tx models.LedgerTransaction
	query := `SELECT * FROM transactions WHERE payment_id = $1`

	err := r.db.GetContext(ctx, &tx, query, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction not found")
		}
		return nil, apperrors.Internal("failed to get transaction", err)
	}
	return &tx, nil
}

// ListByUser returns ledger transactions where the user is sender or
// receiver, newest first.
func (r *LedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LedgerTransaction, error) {
	transactions := []models.LedgerTransaction{}
	query := `
		SELECT * FROM transactions
		WHERE sender_user_id = $1 OR receiver_user_id = $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &transactions, query, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list transactions", err)
	}
	return transactions, nil
}

// AppendAudit appends one audit log entry
func (r *LedgerRepo) AppendAudit(ctx context.Context, entry *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (
			id, transaction_id, action, old_values, new_values, user_id, created_at
		) VALUES (
			:id, :transaction_id, :action, :old_values, :new_values, :user_id, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return apperrors.Internal("failed to append audit log", err)
	}
	return nil
}

// GetAuditTrail returns a transaction's audit entries oldest first, so
// the trail reads as the history it is.
func (r *LedgerRepo) GetAuditTrail(ctx context.Context, transactionID uuid.UUID) ([]models.AuditLog, error) {
	entries := []models.AuditLog{}
	query := `
		SELECT * FROM audit_logs
		WHERE transaction_id = $1
		ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, transactionID)
	if err != nil {
		return nil, apperrors.Internal("failed to get audit trail", err)
	}
	return entries, nil
}

// Summarize aggregates the user's COMPLETED transactions. Pending,
// failed and reversed records do not count toward the totals.
func (r *LedgerRepo) Summarize(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error) {
	var row struct {
		TotalSent     decimal.Decimal `db:"total_sent"`
		TotalReceived decimal.Decimal `db:"total_received"`
		Count         int64           `db:"transaction_count"`
	}
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE sender_user_id = $1), 0) AS total_sent,
			COALESCE(SUM(amount) FILTER (WHERE receiver_user_id = $1), 0) AS total_received,
			COUNT(*) AS transaction_count
		FROM transactions
		WHERE (sender_user_id = $1 OR receiver_user_id = $1)
		  AND status = $2`

	err := r.db.GetContext(ctx, &row, query, userID, models.LedgerStatusCompleted)
	if err != nil {
		return nil, apperrors.Internal("failed to summarize transactions", err)
	}
	return &models.FinancialSummary{
		TotalSent:        row.TotalSent,
		TotalReceived:    row.TotalReceived,
		TransactionCount: row.Count,
	}, nil
}
