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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaymentRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPaymentRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func paymentRows(p *models.Payment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sender_user_id", "recipient_user_id", "recipient_email", "amount",
		"currency", "status", "description", "reference_id", "failure_reason",
		"created_at", "updated_at", "processed_at",
	}).AddRow(
		p.ID, p.SenderID, p.RecipientID, p.RecipientEmail, "50.00",
		p.Currency, p.Status, p.Description, p.ReferenceID, p.FailureReason,
		p.CreatedAt, p.UpdatedAt, p.ProcessedAt,
	)
}

func TestCreatePayment(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	p := &models.Payment{
		ID:             uuid.New(),
		SenderID:       uuid.New(),
		RecipientEmail: "bob@example.com",
		Currency:       "USD",
		Status:         models.PaymentStatusPending,
		ReferenceID:    "PAY-1-ABCD1234",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePayment(context.Background(), p)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePayment_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE payments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePayment(context.Background(), &models.Payment{ID: uuid.New()})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestGetByReferenceID_Found(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	p := &models.Payment{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Currency:    "USD",
		Status:      models.PaymentStatusCompleted,
		ReferenceID: "PAY-1-ABCD1234",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE reference_id").
		WithArgs("PAY-1-ABCD1234").
		WillReturnRows(paymentRows(p))

	got, err := repo.GetByReferenceID(context.Background(), "PAY-1-ABCD1234")

	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, models.PaymentStatusCompleted, got.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	paymentID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE id").
		WithArgs(paymentID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), paymentID)

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestListByUser_MatchesEitherSide(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now().UTC()
	p := &models.Payment{
		ID:          uuid.New(),
		SenderID:    userID,
		RecipientID: uuid.New(),
		Currency:    "USD",
		Status:      models.PaymentStatusCompleted,
		ReferenceID: "PAY-2-BCDE2345",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE sender_user_id (.+) OR recipient_user_id").
		WithArgs(userID).
		WillReturnRows(paymentRows(p))

	payments, err := repo.ListByUser(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, p.ID, payments[0].ID)
}
