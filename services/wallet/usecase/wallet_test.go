package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/wallet/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetBalance_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().GetCachedBalance(gomock.Any(), userID).
		Return(decimal.NewFromInt(75), true)

	balance, currency, err := uc.GetBalance(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "USD", currency)
}

func TestGetBalance_CacheMissReadsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	wallet := &models.Wallet{
		ID:       uuid.New(),
		UserID:   userID,
		Balance:  decimal.NewFromInt(120),
		Currency: "USD",
		IsActive: true,
	}

	mockRepo.EXPECT().GetCachedBalance(gomock.Any(), userID).
		Return(decimal.Zero, false)
	mockRepo.EXPECT().GetOrCreate(gomock.Any(), userID, "USD").
		Return(wallet, nil)
	mockRepo.EXPECT().SetCachedBalance(gomock.Any(), userID, wallet.Balance)

	balance, currency, err := uc.GetBalance(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "USD", currency)
}

func TestCredit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	amount := decimal.NewFromInt(30)
	mockRepo.EXPECT().Credit(gomock.Any(), userID, amount, "top up").
		Return(&models.Wallet{UserID: userID, Balance: decimal.NewFromInt(30)}, nil)

	w, err := uc.Credit(context.Background(), userID, amount, "top up")

	assert.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(30)))
}

func TestCredit_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	_, err := uc.Credit(context.Background(), uuid.New(), decimal.NewFromInt(-5), "")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestDebit_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	_, err := uc.Debit(context.Background(), uuid.New(), decimal.Zero, "")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestDebit_PropagatesInsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	amount := decimal.NewFromInt(100)
	mockRepo.EXPECT().Debit(gomock.Any(), userID, amount, "transfer").
		Return(nil, apperrors.New(apperrors.CodeInsufficientBalance, "Insufficient balance. Available: 10.00"))

	_, err := uc.Debit(context.Background(), userID, amount, "transfer")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientBalance, apperrors.CodeOf(err))
	assert.Equal(t, "Insufficient balance. Available: 10.00", apperrors.MessageOf(err))
}

func TestListTransactions_ResolvesWalletFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	walletID := uuid.New()
	journal := []models.WalletTransaction{
		{ID: uuid.New(), WalletID: walletID, Type: models.WalletTransactionCredit},
	}

	mockRepo.EXPECT().GetActiveByUserID(gomock.Any(), userID).
		Return(&models.Wallet{ID: walletID, UserID: userID}, nil)
	mockRepo.EXPECT().ListTransactions(gomock.Any(), walletID).
		Return(journal, nil)

	got, err := uc.ListTransactions(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, journal, got)
}

func TestListTransactions_WalletNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWalletRepo(ctrl)
	uc := NewWalletUC(&models.Config{}, mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().GetActiveByUserID(gomock.Any(), userID).
		Return(nil, apperrors.NotFound("wallet not found"))

	_, err := uc.ListTransactions(context.Background(), userID)

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
