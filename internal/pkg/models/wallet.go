package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionType is the closed set of journal entry types
type WalletTransactionType string

const (
	WalletTransactionCredit WalletTransactionType = "CREDIT"
	WalletTransactionDebit  WalletTransactionType = "DEBIT"
)

// ParseWalletTransactionType validates a wire value against the closed set
func ParseWalletTransactionType(s string) (WalletTransactionType, error) {
	switch WalletTransactionType(s) {
	case WalletTransactionCredit, WalletTransactionDebit:
		return WalletTransactionType(s), nil
	}
	return "", fmt.Errorf("unknown wallet transaction type: %q", s)
}

// Wallet represents a user's balance. Exactly one active wallet exists
// per user; balance never goes below zero.
type Wallet struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	Currency  string          `json:"currency" db:"currency"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// WalletTransaction is an immutable journal entry recording one balance
// mutation with its before/after snapshots.
type WalletTransaction struct {
	ID            uuid.UUID             `json:"id" db:"id"`
	WalletID      uuid.UUID             `json:"wallet_id" db:"wallet_id"`
	Type          WalletTransactionType `json:"transaction_type" db:"transaction_type"`
	Amount        decimal.Decimal       `json:"amount" db:"amount"`
	BalanceBefore decimal.Decimal       `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal       `json:"balance_after" db:"balance_after"`
	Description   string                `json:"description" db:"description"`
	CreatedAt     time.Time             `json:"created_at" db:"created_at"`
}

// WalletOperationRequest is the internal credit/debit payload sent by the
// payment service to the wallet service.
type WalletOperationRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// BalanceResponse is the internal balance-read contract
type BalanceResponse struct {
	Success  bool            `json:"success"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// WalletOperationResponse is returned by the internal credit/debit endpoints
type WalletOperationResponse struct {
	Success bool    `json:"success"`
	Wallet  *Wallet `json:"wallet,omitempty"`
	Error   string  `json:"error,omitempty"`
}
