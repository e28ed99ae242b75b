package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/payment/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestUC(t *testing.T) (*PaymentUC, *mocks.MockPaymentRepo, *mocks.MockPaymentGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(&models.Config{}, repo, gw)
	return uc, repo, gw, ctrl
}

// statusRecorder captures the sequence of statuses the usecase persists.
func statusRecorder(repo *mocks.MockPaymentRepo, statuses *[]models.PaymentStatus) {
	repo.EXPECT().
		UpdatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Payment) error {
			*statuses = append(*statuses, p.Status)
			return nil
		}).
		AnyTimes()
}

func TestProcessPayment_Success(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	amount := decimal.NewFromInt(50)

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), "bob@example.com").
		Return(&models.UserLookupResponse{Found: true, ID: recipientID, Email: "bob@example.com"}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(100), nil)
	gw.EXPECT().DebitWallet(gomock.Any(), senderID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().CreditWallet(gomock.Any(), recipientID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.RecordTransactionRequest) error {
			assert.Equal(t, "TRANSFER", req.Type)
			assert.Equal(t, "COMPLETED", req.Status)
			assert.Equal(t, senderID, req.SenderID)
			assert.Equal(t, recipientID, req.RecipientID)
			return nil
		})

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "Bob@Example.com",
		Amount:  amount,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
	assert.Equal(t, recipientID, p.RecipientID)
	assert.NotNil(t, p.ProcessedAt)
	assert.True(t, strings.HasPrefix(p.ReferenceID, "PAY-"))
	assert.Equal(t, []models.PaymentStatus{
		models.PaymentStatusProcessing,
		models.PaymentStatusCompleted,
	}, statuses)
}

func TestProcessPayment_InvalidAmount(t *testing.T) {
	uc, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.ProcessPayment(context.Background(), uuid.New(), &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  decimal.Zero,
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestProcessPayment_MissingEmail(t *testing.T) {
	uc, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.ProcessPayment(context.Background(), uuid.New(), &models.TransferRequest{
		Amount: decimal.NewFromInt(10),
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestProcessPayment_RecipientNotFound(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), "ghost@example.com").
		Return(&models.UserLookupResponse{Found: false}, nil)

	p, err := uc.ProcessPayment(context.Background(), uuid.New(), &models.TransferRequest{
		ToEmail: "ghost@example.com",
		Amount:  decimal.NewFromInt(10),
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeRecipientNotFound, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
	assert.Contains(t, *p.FailureReason, "ghost@example.com")
	assert.Equal(t, []models.PaymentStatus{models.PaymentStatusFailed}, statuses)
}

func TestProcessPayment_SelfTransfer(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), "me@example.com").
		Return(&models.UserLookupResponse{Found: true, ID: senderID, Email: "me@example.com"}, nil)

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "me@example.com",
		Amount:  decimal.NewFromInt(10),
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeSelfTransfer, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
}

func TestProcessPayment_InsufficientBalance(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), "bob@example.com").
		Return(&models.UserLookupResponse{Found: true, ID: recipientID}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(10), nil)

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  decimal.NewFromInt(100),
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientBalance, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
	assert.Equal(t, "Insufficient balance. Available: 10.00", *p.FailureReason)
	// No wallet was touched: the only persisted transition is the failure
	assert.Equal(t, []models.PaymentStatus{models.PaymentStatusFailed}, statuses)
}

func TestProcessPayment_DebitFails(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	amount := decimal.NewFromInt(50)

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), gomock.Any()).
		Return(&models.UserLookupResponse{Found: true, ID: recipientID}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(100), nil)
	// The balance moved between the optimistic check and the debit
	gw.EXPECT().DebitWallet(gomock.Any(), senderID, amount, gomock.Any()).
		Return(apperrors.New(apperrors.CodeInsufficientBalance, "Insufficient balance. Available: 20.00"))

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  amount,
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeInsufficientBalance, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
	assert.Equal(t, []models.PaymentStatus{
		models.PaymentStatusProcessing,
		models.PaymentStatusFailed,
	}, statuses)
}

func TestProcessPayment_CreditFailsTriggersReversal(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	amount := decimal.NewFromInt(50)

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), gomock.Any()).
		Return(&models.UserLookupResponse{Found: true, ID: recipientID}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(100), nil)
	gw.EXPECT().DebitWallet(gomock.Any(), senderID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().CreditWallet(gomock.Any(), recipientID, amount, gomock.Any()).
		Return(apperrors.RemoteCall("wallet service unreachable", nil))
	// Exactly one compensating credit back to the sender
	gw.EXPECT().CreditWallet(gomock.Any(), senderID, amount, gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID uuid.UUID, amt decimal.Decimal, description string) error {
			assert.Contains(t, description, "Reversal for failed transfer")
			return nil
		}).
		Times(1)

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  amount,
	})

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodePaymentFailed, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
	assert.Equal(t, "Failed to credit recipient's wallet", *p.FailureReason)
}

func TestProcessPayment_ReversalFailureDoesNotRetry(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	amount := decimal.NewFromInt(50)

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), gomock.Any()).
		Return(&models.UserLookupResponse{Found: true, ID: recipientID}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(100), nil)
	gw.EXPECT().DebitWallet(gomock.Any(), senderID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().CreditWallet(gomock.Any(), recipientID, amount, gomock.Any()).
		Return(apperrors.RemoteCall("wallet service unreachable", nil))
	gw.EXPECT().CreditWallet(gomock.Any(), senderID, amount, gomock.Any()).
		Return(apperrors.RemoteCall("wallet service unreachable", nil)).
		Times(1)

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  amount,
	})

	assert.Error(t, err)
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
}

func TestProcessPayment_LedgerFailureDoesNotFailPayment(t *testing.T) {
	uc, repo, gw, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	amount := decimal.NewFromInt(25)

	var statuses []models.PaymentStatus
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
	statusRecorder(repo, &statuses)

	gw.EXPECT().ResolveRecipient(gomock.Any(), gomock.Any()).
		Return(&models.UserLookupResponse{Found: true, ID: recipientID}, nil)
	gw.EXPECT().GetWalletBalance(gomock.Any(), senderID).
		Return(decimal.NewFromInt(100), nil)
	gw.EXPECT().DebitWallet(gomock.Any(), senderID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().CreditWallet(gomock.Any(), recipientID, amount, gomock.Any()).Return(nil)
	gw.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).
		Return(apperrors.RemoteCall("ledger service unreachable", nil))

	p, err := uc.ProcessPayment(context.Background(), senderID, &models.TransferRequest{
		ToEmail: "bob@example.com",
		Amount:  amount,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
}

func TestCancelPayment_Success(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	paymentID := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), paymentID).
		Return(&models.Payment{
			ID:       paymentID,
			SenderID: senderID,
			Status:   models.PaymentStatusPending,
		}, nil)
	repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Payment) error {
			assert.Equal(t, models.PaymentStatusCancelled, p.Status)
			assert.NotNil(t, p.ProcessedAt)
			return nil
		})

	p, err := uc.CancelPayment(context.Background(), paymentID, senderID)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, p.Status)
}

func TestCancelPayment_NotOwner(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	paymentID := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), paymentID).
		Return(&models.Payment{
			ID:       paymentID,
			SenderID: uuid.New(),
			Status:   models.PaymentStatusPending,
		}, nil)

	_, err := uc.CancelPayment(context.Background(), paymentID, uuid.New())

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotOwner, apperrors.CodeOf(err))
}

func TestCancelPayment_InvalidState(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	paymentID := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), paymentID).
		Return(&models.Payment{
			ID:       paymentID,
			SenderID: senderID,
			Status:   models.PaymentStatusCompleted,
		}, nil)

	_, err := uc.CancelPayment(context.Background(), paymentID, senderID)

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidState, apperrors.CodeOf(err))
}

func TestGetStatus_ProjectsPaymentFields(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	paymentID := uuid.New()
	reason := "Insufficient balance. Available: 5.00"

	repo.EXPECT().GetByReferenceID(gomock.Any(), "PAY-123-ABCD1234").
		Return(&models.Payment{
			ID:            paymentID,
			ReferenceID:   "PAY-123-ABCD1234",
			Status:        models.PaymentStatusFailed,
			FailureReason: &reason,
		}, nil)

	view, err := uc.GetStatus(context.Background(), "PAY-123-ABCD1234")

	assert.NoError(t, err)
	assert.Equal(t, paymentID, view.ID)
	assert.Equal(t, models.PaymentStatusFailed, view.Status)
	assert.Equal(t, &reason, view.FailureReason)
}

func TestGetStatus_UnknownReference(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByReferenceID(gomock.Any(), "PAY-0-FFFFFFFF").
		Return(nil, apperrors.NotFound("payment not found"))

	_, err := uc.GetStatus(context.Background(), "PAY-0-FFFFFFFF")

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestGetPayment_VisibleToSenderAndRecipient(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	recipientID := uuid.New()
	p := &models.Payment{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.PaymentStatusCompleted,
	}
	repo.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil).Times(2)

	got, err := uc.GetPayment(context.Background(), p.ID, senderID)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	got, err = uc.GetPayment(context.Background(), p.ID, recipientID)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestGetPayment_HiddenFromOtherUsers(t *testing.T) {
	uc, repo, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	p := &models.Payment{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Status:      models.PaymentStatusCompleted,
	}
	repo.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)

	_, err := uc.GetPayment(context.Background(), p.ID, uuid.New())

	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotOwner, apperrors.CodeOf(err))
}
