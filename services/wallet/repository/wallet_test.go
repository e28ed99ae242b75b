package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWalletRepoTest(t *testing.T) (*WalletRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// nil Redis client: the cache layer degrades to a permanent miss
	repo := NewWalletRepo(&models.Config{}, sqlxDB, nil)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func walletRows(walletID, userID uuid.UUID, balance string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "user_id", "balance", "currency", "is_active", "created_at", "updated_at"}).
		AddRow(walletID, userID, balance, "USD", true, now, now)
}

func TestGetOrCreate_ExistingWallet(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	walletID := uuid.New()

	// The insert is a no-op for an existing wallet
	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id").
		WithArgs(userID).
		WillReturnRows(walletRows(walletID, userID, "42.50"))

	wallet, err := repo.GetOrCreate(context.Background(), userID, "USD")

	assert.NoError(t, err)
	assert.Equal(t, walletID, wallet.ID)
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("42.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_Success(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	walletID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(walletID, userID, "100.00"))
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	wallet, err := repo.Debit(context.Background(), userID, decimal.NewFromInt(30), "transfer out")

	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(70)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_InsufficientBalance(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	walletID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(walletID, userID, "10.00"))
	mock.ExpectRollback()

	_, err := repo.Debit(context.Background(), userID, decimal.NewFromInt(100), "transfer out")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientBalance, apperrors.CodeOf(err))
	assert.Equal(t, "Insufficient balance. Available: 10.00", apperrors.MessageOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_WalletNotFound(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Debit(context.Background(), userID, decimal.NewFromInt(10), "transfer out")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredit_CreatesWalletLazily(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	walletID := uuid.New()

	mock.ExpectBegin()
	// First lock attempt finds nothing
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	// Race-safe insert, then re-read under lock
	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(walletID, userID, "0.00"))
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	wallet, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(50), "initial deposit")

	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(50)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredit_JournalFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	walletID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(walletID, userID, "20.00"))
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(5), "top up")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_NewestFirst(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	walletID := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "wallet_id", "transaction_type", "amount", "balance_before", "balance_after", "description", "created_at"}).
		AddRow(uuid.New(), walletID, "DEBIT", "30.00", "100.00", "70.00", "transfer out", now).
		AddRow(uuid.New(), walletID, "CREDIT", "100.00", "0.00", "100.00", "initial deposit", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM wallet_transactions WHERE wallet_id (.+) ORDER BY created_at DESC").
		WithArgs(walletID).
		WillReturnRows(rows)

	transactions, err := repo.ListTransactions(context.Background(), walletID)

	assert.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, models.WalletTransactionDebit, transactions[0].Type)
	assert.Equal(t, models.WalletTransactionCredit, transactions[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate_NotFound(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery("UPDATE wallets").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Deactivate(context.Background(), userID)

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
