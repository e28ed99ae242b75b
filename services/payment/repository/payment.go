package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePayment inserts a new payment row
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, sender_user_id, recipient_user_id, recipient_email, amount,
			currency, status, description, reference_id, failure_reason,
			created_at, updated_at, processed_at
		) VALUES (
			:id, :sender_user_id, :recipient_user_id, :recipient_email, :amount,
			:currency, :status, :description, :reference_id, :failure_reason,
			:created_at, :updated_at, :processed_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return apperrors.Internal("failed to create payment", err)
	}
	return nil
}

// UpdatePayment persists the payment's current state. It is called after
// every status transition so the row always reflects the last completed
// orchestration step.
func (r *PaymentRepo) UpdatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		UPDATE payments
		SET recipient_user_id = :recipient_user_id,
		    status = :status,
		    failure_reason = :failure_reason,
		    processed_at = :processed_at,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return apperrors.Internal("failed to update payment", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to update payment", err)
	}
	if rows == 0 {
		return apperrors.NotFound("payment not found")
	}
	return nil
}

// GetByID retrieves a payment by its id
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	query := `SELECT * FROM payments WHERE id = $1`

	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment not found")
		}
		return nil, apperrors.Internal("failed to get payment", err)
	}
	return &p, nil
}

// GetByReferenceID retrieves a payment by its human-facing reference id
func (r *PaymentRepo) GetByReferenceID(ctx context.Context, referenceID string) (*models.Payment, error) {
	var p models.Payment
	query := `SELECT * FROM payments WHERE reference_id = $1`

	err := r.db.GetContext(ctx, &p, query, referenceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment not found")
		}
		return nil, apperrors.Internal("failed to get payment", err)
	}
	return &p, nil
}

// ListByUser returns payments where the user is sender or recipient,
// newest first.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE sender_user_id = $1 OR recipient_user_id = $1
		ORDER BY created_at DESC`

	return r.listPayments(ctx, query, userID)
}

// ListBySender returns payments sent by the user, newest first
func (r *PaymentRepo) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE sender_user_id = $1
		ORDER BY created_at DESC`

	return r.listPayments(ctx, query, senderID)
}

// ListByRecipient returns payments received by the user, newest first
func (r *PaymentRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE recipient_user_id = $1
		ORDER BY created_at DESC`

	return r.listPayments(ctx, query, recipientID)
}

func (r *PaymentRepo) listPayments(ctx context.Context, query string, userID uuid.UUID) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, query, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to list payments", err)
	}
	return payments, nil
}
