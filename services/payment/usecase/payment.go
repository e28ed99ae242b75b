package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/payment"
)

const defaultCurrency = "USD"

// PaymentUC implements the payment usecase interface. It owns the
// transfer state machine: every transition is persisted before the next
// remote call so the payment row always reflects the last completed step.
type PaymentUC struct {
	cfg  *models.Config
	repo payment.PaymentRepo
	gw   payment.PaymentGW
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, gw payment.PaymentGW) *PaymentUC {
	return &PaymentUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// ProcessPayment drives one transfer end to end:
//
//	PENDING    recipient resolution and balance check
//	PROCESSING wallet debit then credit
//	COMPLETED  both legs applied, ledger notified
//	FAILED     any step failed; a failed credit triggers one
//	           best-effort compensating credit back to the sender
func (uc *PaymentUC) ProcessPayment(ctx context.Context, senderID uuid.UUID, req *models.TransferRequest) (*models.Payment, error) {
	email := strings.ToLower(strings.TrimSpace(req.ToEmail))
	if email == "" {
		return nil, apperrors.Validation("Recipient email is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.Validation("Amount must be greater than zero")
	}

	now := time.Now().UTC()
	p := &models.Payment{
		ID:             uuid.New(),
		SenderID:       senderID,
		RecipientEmail: email,
		Amount:         req.Amount,
		Currency:       defaultCurrency,
		Status:         models.PaymentStatusPending,
		Description:    req.Description,
		ReferenceID:    newReferenceID(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("payment initiated",
		logger.String("payment_id", p.ID.String()),
		logger.String("reference_id", p.ReferenceID),
		logger.String("sender_id", senderID.String()),
		logger.String("amount", p.Amount.StringFixed(2)))

	// Resolve the recipient. The payment row exists from this point on,
	// so every failure below leaves a FAILED row with a reason.
	lookup, err := uc.gw.ResolveRecipient(ctx, email)
	if err != nil {
		uc.markFailed(ctx, p, apperrors.MessageOf(err))
		return p, err
	}
	if !lookup.Found {
		reason := "Recipient not found: " + email
		uc.markFailed(ctx, p, reason)
		return p, apperrors.New(apperrors.CodeRecipientNotFound, reason)
	}
	if lookup.ID == senderID {
		reason := "Cannot transfer to yourself"
		uc.markFailed(ctx, p, reason)
		return p, apperrors.New(apperrors.CodeSelfTransfer, reason)
	}
	p.RecipientID = lookup.ID

	// Optimistic balance check. The wallet service re-checks under its
	// row lock at debit time, so a concurrent spend still fails safely.
	balance, err := uc.gw.GetWalletBalance(ctx, senderID)
	if err != nil {
		uc.markFailed(ctx, p, apperrors.MessageOf(err))
		return p, err
	}
	if balance.LessThan(p.Amount) {
		reason := fmt.Sprintf("Insufficient balance. Available: %s", balance.StringFixed(2))
		uc.markFailed(ctx, p, reason)
		return p, apperrors.New(apperrors.CodeInsufficientBalance, reason)
	}

	p.Status = models.PaymentStatusProcessing
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return p, err
	}

	// First leg: debit the sender
	debitDesc := fmt.Sprintf("Transfer to %s - %s", p.RecipientEmail, p.ReferenceID)
	if err := uc.gw.DebitWallet(ctx, senderID, p.Amount, debitDesc); err != nil {
		uc.markFailed(ctx, p, apperrors.MessageOf(err))
		return p, err
	}

	// Second leg: credit the recipient; on failure, return the debited
	// funds with a single compensating credit.
	creditDesc := fmt.Sprintf("Transfer received - %s", p.ReferenceID)
	if err := uc.gw.CreditWallet(ctx, p.RecipientID, p.Amount, creditDesc); err != nil {
		uc.compensate(ctx, p, err)
		reason := "Failed to credit recipient's wallet"
		uc.markFailed(ctx, p, reason)
		return p, apperrors.Wrap(apperrors.CodePaymentFailed, reason, err)
	}

	processedAt := time.Now().UTC()
	p.Status = models.PaymentStatusCompleted
	p.ProcessedAt = &processedAt
	p.UpdatedAt = processedAt
	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		// Both wallet legs are applied; the transfer itself succeeded.
		logger.Error("failed to persist completed payment",
			logger.String("payment_id", p.ID.String()),
			logger.Err(err))
	}

	uc.recordInLedger(ctx, p)

	logger.Info("payment completed",
		logger.String("payment_id", p.ID.String()),
		logger.String("reference_id", p.ReferenceID))
	return p, nil
}

// CancelPayment cancels a payment that has not started processing.
// Only the sender may cancel, and only from PENDING.
func (uc *PaymentUC) CancelPayment(ctx context.Context, paymentID, requesterID uuid.UUID) (*models.Payment, error) {
	p, err := uc.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.SenderID != requesterID {
		return nil, apperrors.New(apperrors.CodeNotOwner, "Only the sender can cancel a payment")
	}
	if p.Status != models.PaymentStatusPending {
		return nil, apperrors.New(apperrors.CodeInvalidState,
			fmt.Sprintf("Cannot cancel payment in status %s", p.Status))
	}

	now := time.Now().UTC()
	p.Status = models.PaymentStatusCancelled
	p.ProcessedAt = &now
	p.UpdatedAt = now
	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("payment cancelled",
		logger.String("payment_id", p.ID.String()),
		logger.String("reference_id", p.ReferenceID))
	return p, nil
}

// GetPayment retrieves a payment by id. Only the sender or the recipient
// may read it.
func (uc *PaymentUC) GetPayment(ctx context.Context, paymentID, requesterID uuid.UUID) (*models.Payment, error) {
	p, err := uc.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.SenderID != requesterID && p.RecipientID != requesterID {
		return nil, apperrors.New(apperrors.CodeNotOwner, "You do not have access to this payment")
	}
	return p, nil
}

// GetStatus returns the status projection for a reference id
func (uc *PaymentUC) GetStatus(ctx context.Context, referenceID string) (*models.PaymentStatusView, error) {
	p, err := uc.repo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	return &models.PaymentStatusView{
		ID:            p.ID,
		ReferenceID:   p.ReferenceID,
		Status:        p.Status,
		FailureReason: p.FailureReason,
		ProcessedAt:   p.ProcessedAt,
	}, nil
}

// ListUserPayments returns payments the user sent or received
func (uc *PaymentUC) ListUserPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	return uc.repo.ListByUser(ctx, userID)
}

// ListSentPayments returns payments the user sent
func (uc *PaymentUC) ListSentPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	return uc.repo.ListBySender(ctx, userID)
}

// ListReceivedPayments returns payments the user received
func (uc *PaymentUC) ListReceivedPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	return uc.repo.ListByRecipient(ctx, userID)
}

// compensate returns debited funds to the sender after a failed credit.
// The reversal is attempted exactly once; if it also fails the money is
// stranded in the sender's debit and flagged for manual follow-up.
func (uc *PaymentUC) compensate(ctx context.Context, p *models.Payment, creditErr error) {
	logger.Warn("credit leg failed, reversing debit",
		logger.String("payment_id", p.ID.String()),
		logger.String("reference_id", p.ReferenceID),
		logger.Err(creditErr))

	desc := fmt.Sprintf("Reversal for failed transfer - %s", p.ReferenceID)
	if err := uc.gw.CreditWallet(ctx, p.SenderID, p.Amount, desc); err != nil {
		logger.Error("compensating credit failed",
			logger.String("payment_id", p.ID.String()),
			logger.String("reference_id", p.ReferenceID),
			logger.String("sender_id", p.SenderID.String()),
			logger.String("amount", p.Amount.StringFixed(2)),
			logger.Bool("reversal_failed", true),
			logger.Err(err))
		return
	}

	logger.Info("compensating credit applied",
		logger.String("payment_id", p.ID.String()),
		logger.String("reference_id", p.ReferenceID))
}

// markFailed moves the payment to FAILED with a reason. Persistence
// errors here are logged, not returned: the caller already holds the
// more important orchestration error.
func (uc *PaymentUC) markFailed(ctx context.Context, p *models.Payment, reason string) {
	now := time.Now().UTC()
	p.Status = models.PaymentStatusFailed
	p.FailureReason = &reason
	if p.ProcessedAt == nil {
		p.ProcessedAt = &now
	}
	p.UpdatedAt = now

	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		logger.Error("failed to persist failed payment",
			logger.String("payment_id", p.ID.String()),
			logger.Err(err))
	}
}

// recordInLedger notifies the ledger service of a completed transfer.
// The ledger is a downstream record of fact, so failures never affect
// the payment outcome.
func (uc *PaymentUC) recordInLedger(ctx context.Context, p *models.Payment) {
	req := &models.RecordTransactionRequest{
		PaymentID:   p.ID,
		SenderID:    p.SenderID,
		RecipientID: p.RecipientID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Type:        string(models.LedgerTransactionTransfer),
		Status:      string(models.LedgerStatusCompleted),
		Description: p.Description,
	}
	if err := uc.gw.RecordTransaction(ctx, req); err != nil {
		logger.Warn("failed to record transaction in ledger",
			logger.String("payment_id", p.ID.String()),
			logger.String("reference_id", p.ReferenceID),
			logger.Err(err))
	}
}

// newReferenceID builds the human-facing payment reference, e.g.
// PAY-1724800000000-9F3A2B1C.
func newReferenceID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PAY-%d-%s", time.Now().UnixMilli(), suffix)
}
