package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the closed set of orchestration states.
//
//	PENDING -> PROCESSING -> COMPLETED | FAILED
//	PENDING -> CANCELLED
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// ParsePaymentStatus validates a wire value against the closed set
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusCancelled:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status: %q", s)
}

// IsTerminal reports whether no further transition is allowed
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusCancelled
}

// Payment represents one transfer attempt owned by the payment service.
// Its status reflects orchestration progress, not the wallet ledger state.
type Payment struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	SenderID       uuid.UUID       `json:"sender_user_id" db:"sender_user_id"`
	RecipientID    uuid.UUID       `json:"recipient_user_id" db:"recipient_user_id"`
	RecipientEmail string          `json:"recipient_email" db:"recipient_email"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Currency       string          `json:"currency" db:"currency"`
	Status         PaymentStatus   `json:"status" db:"status"`
	Description    string          `json:"description" db:"description"`
	ReferenceID    string          `json:"reference_id" db:"reference_id"`
	FailureReason  *string         `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
}

// TransferRequest is the payload for initiating a transfer
type TransferRequest struct {
	ToEmail     string          `json:"to_email"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// PaymentStatusView is the read-only status projection keyed by reference id
type PaymentStatusView struct {
	ID            uuid.UUID     `json:"id"`
	ReferenceID   string        `json:"reference_id"`
	Status        PaymentStatus `json:"status"`
	FailureReason *string       `json:"failure_reason,omitempty"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
}
