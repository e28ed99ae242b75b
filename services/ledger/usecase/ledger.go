package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/ledger"
)

// Audit trail actions
const (
	auditActionCreated       = "TRANSACTION_CREATED"
	auditActionStatusUpdated = "STATUS_UPDATED"
)

// LedgerUC implements the ledger usecase interface
type LedgerUC struct {
	cfg  *models.Config
	repo ledger.LedgerRepo
}

// NewLedgerUC creates a new ledger usecase
func NewLedgerUC(cfg *models.Config, repo ledger.LedgerRepo) *LedgerUC {
	return &LedgerUC{
		cfg:  cfg,
		repo: repo,
	}
}

// RecordTransaction records a confirmed transfer. Type and status arrive
// as strings from the wire and are validated against the closed sets
// before anything is written.
func (uc *LedgerUC) RecordTransaction(ctx context.Context, req *models.RecordTransactionRequest) (*models.LedgerTransaction, error) {
	txType, err := models.ParseLedgerTransactionType(req.Type)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	status, err := models.ParseLedgerTransactionStatus(req.Status)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if req.PaymentID == uuid.Nil {
		return nil, apperrors.Validation("Payment ID is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validation("Amount must be greater than zero")
	}

	now := time.Now().UTC()
	tx := &models.LedgerTransaction{
		ID:          uuid.New(),
		PaymentID:   req.PaymentID,
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Type:        txType,
		Status:      status,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit(ctx, &models.AuditLog{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		Action:        auditActionCreated,
		NewValues:     snapshotJSON(tx),
		CreatedAt:     now,
	})

	logger.Info("transaction recorded",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("payment_id", tx.PaymentID.String()),
		logger.String("amount", tx.Amount.StringFixed(2)))
	return tx, nil
}

// UpdateStatus transitions a ledger record to a new status
func (uc *LedgerUC) UpdateStatus(ctx context.Context, transactionID uuid.UUID, req *models.UpdateStatusRequest) (*models.LedgerTransaction, error) {
	status, err := models.ParseLedgerTransactionStatus(req.Status)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	tx, err := uc.repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	oldStatus := tx.Status
	if oldStatus == status {
		return tx, nil
	}

	now := time.Now().UTC()
	tx.Status = status
	tx.UpdatedAt = now
	if err := uc.repo.UpdateTransactionStatus(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit(ctx, &models.AuditLog{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		Action:        auditActionStatusUpdated,
		OldValues:     statusJSON(oldStatus),
		NewValues:     statusJSON(status),
		ActorID:       req.ActorID,
		CreatedAt:     now,
	})

	logger.Info("transaction status updated",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("old_status", string(oldStatus)),
		logger.String("new_status", string(status)))
	return tx, nil
}

// GetTransaction retrieves a ledger transaction by id
func (uc *LedgerUC) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.LedgerTransaction, error) {
	return uc.repo.GetByID(ctx, transactionID)
}

// GetByPaymentID retrieves the ledger transaction recorded for a payment
func (uc *LedgerUC) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.LedgerTransaction, error) {
	return uc.repo.GetByPaymentID(ctx, paymentID)
}

// ListUserTransactions returns the user's ledger history, newest first
func (uc *LedgerUC) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.LedgerTransaction, error) {
	return uc.repo.ListByUser(ctx, userID)
}

// GetAuditTrail returns a transaction's audit entries oldest first
func (uc *LedgerUC) GetAuditTrail(ctx context.Context, transactionID uuid.UUID) ([]models.AuditLog, error) {
	if _, err := uc.repo.GetByID(ctx, transactionID); err != nil {
		return nil, err
	}
	return uc.repo.GetAuditTrail(ctx, transactionID)
}

// GetSummary aggregates the user's COMPLETED transactions
func (uc *LedgerUC) GetSummary(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error) {
	return uc.repo.Summarize(ctx, userID)
}

// audit appends a trail entry. The transaction write already succeeded,
// so a failed audit write is logged and swallowed rather than failing
// the operation.
func (uc *LedgerUC) audit(ctx context.Context, entry *models.AuditLog) {
	if err := uc.repo.AppendAudit(ctx, entry); err != nil {
		logger.Warn("failed to append audit log",
			logger.String("transaction_id", entry.TransactionID.String()),
			logger.String("action", entry.Action),
			logger.Err(err))
	}
}

func snapshotJSON(v interface{}) *string {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func statusJSON(status models.LedgerTransactionStatus) *string {
	s := fmt.Sprintf(`{"status":%q}`, status)
	return &s
}
