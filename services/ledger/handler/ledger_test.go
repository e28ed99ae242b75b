package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/ledger/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordTransaction_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	h := NewLedgerHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.RecordTransactionRequest) (*models.LedgerTransaction, error) {
			assert.Equal(t, "TRANSFER", req.Type)
			return &models.LedgerTransaction{
				ID:     uuid.New(),
				Type:   models.LedgerTransactionTransfer,
				Status: models.LedgerStatusCompleted,
			}, nil
		})

	body := `{"payment_id":"` + uuid.NewString() + `","sender_user_id":"` + uuid.NewString() +
		`","receiver_user_id":"` + uuid.NewString() + `","amount":"50","currency":"USD","transaction_type":"TRANSFER","status":"COMPLETED"}`
	req := httptest.NewRequest(http.MethodPost, "/internal/ledger/record-transaction", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.RecordTransaction(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecordTransaction_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	h := NewLedgerHandler(mockUC)
	e := echo.New()

	mockUC.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation(`unknown ledger transaction type: "GIFT"`))

	body := `{"transaction_type":"GIFT","status":"COMPLETED"}`
	req := httptest.NewRequest(http.MethodPost, "/internal/ledger/record-transaction", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.RecordTransaction(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAuditTrail_UnknownTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	h := NewLedgerHandler(mockUC)
	e := echo.New()

	transactionID := uuid.New()
	mockUC.EXPECT().GetAuditTrail(gomock.Any(), transactionID).
		Return(nil, apperrors.NotFound("transaction not found"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/ledger/transactions/:id/audit-trail")
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	err := h.GetAuditTrail(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMySummary_ReturnsTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUC(ctrl)
	h := NewLedgerHandler(mockUC)
	e := echo.New()

	userID := uuid.New()
	mockUC.EXPECT().GetSummary(gomock.Any(), userID).
		Return(&models.FinancialSummary{
			TotalSent:        decimal.NewFromInt(150),
			TotalReceived:    decimal.NewFromInt(80),
			TransactionCount: 5,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	err := h.GetMySummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_sent")
}
