package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTransactionType is the closed set of record-of-fact types
type LedgerTransactionType string

const (
	LedgerTransactionTransfer   LedgerTransactionType = "TRANSFER"
	LedgerTransactionDeposit    LedgerTransactionType = "DEPOSIT"
	LedgerTransactionWithdrawal LedgerTransactionType = "WITHDRAWAL"
)

// LedgerTransactionStatus is the closed set of ledger record states
type LedgerTransactionStatus string

const (
	LedgerStatusPending   LedgerTransactionStatus = "PENDING"
	LedgerStatusCompleted LedgerTransactionStatus = "COMPLETED"
	LedgerStatusFailed    LedgerTransactionStatus = "FAILED"
	LedgerStatusReversed  LedgerTransactionStatus = "REVERSED"
)

// ParseLedgerTransactionType validates a wire value against the closed set
func ParseLedgerTransactionType(s string) (LedgerTransactionType, error) {
	switch LedgerTransactionType(s) {
	case LedgerTransactionTransfer, LedgerTransactionDeposit, LedgerTransactionWithdrawal:
		return LedgerTransactionType(s), nil
	}
	return "", fmt.Errorf("unknown ledger transaction type: %q", s)
}

// ParseLedgerTransactionStatus validates a wire value against the closed set
func ParseLedgerTransactionStatus(s string) (LedgerTransactionStatus, error) {
	switch LedgerTransactionStatus(s) {
	case LedgerStatusPending, LedgerStatusCompleted, LedgerStatusFailed, LedgerStatusReversed:
		return LedgerTransactionStatus(s), nil
	}
	return "", fmt.Errorf("unknown ledger transaction status: %q", s)
}

// LedgerTransaction is the independently owned record of a confirmed
// transfer, written only after the payment service reports success.
type LedgerTransaction struct {
	ID          uuid.UUID               `json:"id" db:"id"`
	PaymentID   uuid.UUID               `json:"payment_id" db:"payment_id"`
	SenderID    uuid.UUID               `json:"sender_user_id" db:"sender_user_id"`
	RecipientID uuid.UUID               `json:"receiver_user_id" db:"receiver_user_id"`
	Amount      decimal.Decimal         `json:"amount" db:"amount"`
	Currency    string                  `json:"currency" db:"currency"`
	Type        LedgerTransactionType   `json:"transaction_type" db:"transaction_type"`
	Status      LedgerTransactionStatus `json:"status" db:"status"`
	Description string                  `json:"description" db:"description"`
	CreatedAt   time.Time               `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at" db:"updated_at"`
}

// AuditLog is an append-only trail entry attached to a ledger transaction.
// Entries are ordered by creation time and never rewritten.
type AuditLog struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"`
	Action        string     `json:"action" db:"action"`
	OldValues     *string    `json:"old_values,omitempty" db:"old_values"`
	NewValues     *string    `json:"new_values,omitempty" db:"new_values"`
	ActorID       *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// RecordTransactionRequest is the service-to-service payload the payment
// service sends after a transfer completes. Type and status cross the wire
// as strings and are validated against the closed sets at the boundary.
type RecordTransactionRequest struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	SenderID    uuid.UUID       `json:"sender_user_id"`
	RecipientID uuid.UUID       `json:"receiver_user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"transaction_type"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
}

// UpdateStatusRequest is the payload for a ledger status transition
type UpdateStatusRequest struct {
	Status  string     `json:"status"`
	ActorID *uuid.UUID `json:"user_id,omitempty"`
}

// FinancialSummary aggregates COMPLETED ledger records for one user
type FinancialSummary struct {
	TotalSent        decimal.Decimal `json:"total_sent"`
	TotalReceived    decimal.Decimal `json:"total_received"`
	TransactionCount int64           `json:"transaction_count"`
}
