package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/payment/mocks"
	"github.com/stretchr/testify/assert"
)

func newTransferContext(e *echo.Echo, body string, senderID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/transfer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", senderID)
	return c, rec
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	senderID := uuid.New()
	payment := &models.Payment{
		ID:          uuid.New(),
		SenderID:    senderID,
		Status:      models.PaymentStatusCompleted,
		ReferenceID: "PAY-1724800000000-9F3A2B1C",
	}

	mockUC.EXPECT().ProcessPayment(gomock.Any(), senderID, gomock.Any()).
		Return(payment, nil)

	c, rec := newTransferContext(e, `{"to_email":"bob@example.com","amount":"50","description":"lunch"}`, senderID)
	err := h.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	senderID := uuid.New()
	mockUC.EXPECT().ProcessPayment(gomock.Any(), senderID, gomock.Any()).
		Return(nil, apperrors.New(apperrors.CodeInsufficientBalance, "Insufficient balance. Available: 10.00"))

	c, rec := newTransferContext(e, `{"to_email":"bob@example.com","amount":"100"}`, senderID)
	err := h.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "INSUFFICIENT_BALANCE", resp["code"])
	assert.Equal(t, "Insufficient balance. Available: 10.00", resp["error"])
}

func TestTransfer_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/transfer", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Transfer(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancel_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	requesterID := uuid.New()
	paymentID := uuid.New()

	mockUC.EXPECT().CancelPayment(gomock.Any(), paymentID, requesterID).
		Return(nil, apperrors.New(apperrors.CodeNotOwner, "Only the sender can cancel a payment"))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", requesterID)
	c.SetPath("/api/v1/payments/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues(paymentID.String())

	err := h.Cancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCancel_InvalidPaymentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.SetPath("/api/v1/payments/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Cancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStatus_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	view := &models.PaymentStatusView{
		ID:          uuid.New(),
		ReferenceID: "PAY-1-ABCD1234",
		Status:      models.PaymentStatusCompleted,
	}
	mockUC.EXPECT().GetStatus(gomock.Any(), "PAY-1-ABCD1234").Return(view, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/status/:referenceID")
	c.SetParamNames("referenceID")
	c.SetParamValues("PAY-1-ABCD1234")

	err := h.GetStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETED")
}

func TestListPayments_DirectionFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	userID := uuid.New()
	mockUC.EXPECT().ListSentPayments(gomock.Any(), userID).
		Return([]models.Payment{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?direction=sent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	err := h.ListPayments(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPayments_UnknownDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/?direction=sideways", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New())

	err := h.ListPayments(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPayment_OtherUsersPaymentIsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	requesterID := uuid.New()
	paymentID := uuid.New()
	mockUC.EXPECT().GetPayment(gomock.Any(), paymentID, requesterID).
		Return(nil, apperrors.New(apperrors.CodeNotOwner, "You do not have access to this payment"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", requesterID)
	c.SetPath("/api/v1/payments/:id")
	c.SetParamNames("id")
	c.SetParamValues(paymentID.String())

	err := h.GetPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetPayment_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.GetPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
