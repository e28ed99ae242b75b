package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/database"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletRepo handles wallet persistence. Balance mutations are serialized
// per wallet row with SELECT ... FOR UPDATE so concurrent transfers never
// observe a stale balance.
type WalletRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *WalletRepo {
	return &WalletRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetOrCreate returns the user's active wallet, creating one with zero
// balance if none exists. Creation is race-safe: the partial unique index
// on (user_id) WHERE is_active makes the insert a no-op for the loser,
// which then reads the winner's row.
func (r *WalletRepo) GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*models.Wallet, error) {
	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Balance:   decimal.Zero,
		Currency:  currency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO wallets (id, user_id, balance, currency, is_active, created_at, updated_at)
		VALUES (:id, :user_id, :balance, :currency, :is_active, :created_at, :updated_at)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, wallet); err != nil {
		return nil, fmt.Errorf("failed to insert wallet: %w", err)
	}

	return r.GetActiveByUserID(ctx, userID)
}

// GetActiveByUserID retrieves the user's active wallet
func (r *WalletRepo) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, balance, currency, is_active, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND is_active = true
	`

	var wallet models.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("Wallet not found for user: %s", userID))
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &wallet, nil
}

// Credit adds amount to the user's balance inside one local transaction,
// creating the wallet lazily if absent. The journal append shares the
// transaction: if it fails, the balance update is rolled back with it.
func (r *WalletRepo) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	wallet, err := r.lockWallet(ctx, tx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			wallet, err = r.createLocked(ctx, tx, userID)
		}
		if err != nil {
			return nil, err
		}
	}

	balanceBefore := wallet.Balance
	wallet.Balance = balanceBefore.Add(amount)
	wallet.UpdatedAt = time.Now().UTC()

	if err := r.updateBalance(ctx, tx, wallet); err != nil {
		return nil, err
	}
	if err := r.appendJournal(ctx, tx, wallet.ID, models.WalletTransactionCredit, amount, balanceBefore, wallet.Balance, description); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.InvalidateBalance(ctx, userID)
	return wallet, nil
}

// Debit subtracts amount from the user's balance inside one local
// transaction. The balance check runs under the row lock so concurrent
// debits cannot drive the balance below zero. Unlike Credit, a missing
// wallet is an error: a debit cannot invent funds for a wallet that was
// never credited.
func (r *WalletRepo) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Wallet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	wallet, err := r.lockWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if wallet.Balance.LessThan(amount) {
		return nil, apperrors.New(apperrors.CodeInsufficientBalance,
			fmt.Sprintf("Insufficient balance. Available: %s", wallet.Balance.StringFixed(2)))
	}

	balanceBefore := wallet.Balance
	wallet.Balance = balanceBefore.Sub(amount)
	wallet.UpdatedAt = time.Now().UTC()

	if err := r.updateBalance(ctx, tx, wallet); err != nil {
		return nil, err
	}
	if err := r.appendJournal(ctx, tx, wallet.ID, models.WalletTransactionDebit, amount, balanceBefore, wallet.Balance, description); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.InvalidateBalance(ctx, userID)
	return wallet, nil
}

// ListTransactions returns the journal for a wallet, newest first
func (r *WalletRepo) ListTransactions(ctx context.Context, walletID uuid.UUID) ([]models.WalletTransaction, error) {
	query := `
		SELECT id, wallet_id, transaction_type, amount, balance_before, balance_after, description, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
	`

	transactions := []models.WalletTransaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, walletID); err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}

	return transactions, nil
}

// Deactivate soft-deletes the user's active wallet. The row and its
// journal entries are retained for reconciliation.
func (r *WalletRepo) Deactivate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		UPDATE wallets
		SET is_active = false, updated_at = $2
		WHERE user_id = $1 AND is_active = true
		RETURNING id, user_id, balance, currency, is_active, created_at, updated_at
	`

	var wallet models.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("Wallet not found for user: %s", userID))
		}
		return nil, fmt.Errorf("failed to deactivate wallet: %w", err)
	}

	r.InvalidateBalance(ctx, userID)
	return &wallet, nil
}

// lockWallet reads the user's active wallet with a row lock held until
// the surrounding transaction ends.
func (r *WalletRepo) lockWallet(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT id, user_id, balance, currency, is_active, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND is_active = true
		FOR UPDATE
	`

	var wallet models.Wallet
	err := tx.GetContext(ctx, &wallet, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("Wallet not found for user: %s", userID))
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}

	return &wallet, nil
}

// createLocked inserts a zero-balance wallet inside tx and re-reads it
// under lock. A concurrent creator wins silently via the unique index.
func (r *WalletRepo) createLocked(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Wallet, error) {
	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Balance:   decimal.Zero,
		Currency:  "USD",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO wallets (id, user_id, balance, currency, is_active, created_at, updated_at)
		VALUES (:id, :user_id, :balance, :currency, :is_active, :created_at, :updated_at)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.NamedExecContext(ctx, query, wallet); err != nil {
		return nil, fmt.Errorf("failed to insert wallet: %w", err)
	}

	return r.lockWallet(ctx, tx, userID)
}

func (r *WalletRepo) updateBalance(ctx context.Context, tx *sqlx.Tx, wallet *models.Wallet) error {
	query := `
		UPDATE wallets
		SET balance = :balance, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := tx.NamedExecContext(ctx, query, wallet); err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}
	return nil
}

func (r *WalletRepo) appendJournal(ctx context.Context, tx *sqlx.Tx, walletID uuid.UUID,
	txType models.WalletTransactionType, amount, balanceBefore, balanceAfter decimal.Decimal,
	description string) error {

	entry := &models.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      walletID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}

	query := `
		INSERT INTO wallet_transactions (
			id, wallet_id, transaction_type, amount, balance_before, balance_after, description, created_at
		) VALUES (
			:id, :wallet_id, :transaction_type, :amount, :balance_before, :balance_after, :description, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to append wallet transaction: %w", err)
	}
	return nil
}
