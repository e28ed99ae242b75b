package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/internal/utils"
	"github.com/pocketpay/pocketpay/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Transfer initiates a transfer from the authenticated user to the
// recipient identified by email.
func (h *PaymentHandler) Transfer(c echo.Context) error {
	senderID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	p, err := h.paymentUC.ProcessPayment(c.Request().Context(), senderID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transfer completed successfully", p)
}

// Cancel cancels a pending payment owned by the authenticated user
func (h *PaymentHandler) Cancel(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	p, err := h.paymentUC.CancelPayment(c.Request().Context(), paymentID, requesterID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment cancelled successfully", p)
}

// GetPayment returns a single payment by id. Payments are visible only
// to their sender and recipient.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	requesterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	p, err := h.paymentUC.GetPayment(c.Request().Context(), paymentID, requesterID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", p)
}

// GetStatus returns the status projection for a reference id
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	view, err := h.paymentUC.GetStatus(c.Request().Context(), c.Param("referenceID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved successfully", view)
}

// ListPayments returns the authenticated user's payment history, newest
// first. The optional direction query parameter narrows it to payments
// sent or received.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ctx := c.Request().Context()
	var (
		payments []models.Payment
		err      error
	)
	switch c.QueryParam("direction") {
	case "":
		payments, err = h.paymentUC.ListUserPayments(ctx, userID)
	case "sent":
		payments, err = h.paymentUC.ListSentPayments(ctx, userID)
	case "received":
		payments, err = h.paymentUC.ListReceivedPayments(ctx, userID)
	default:
		return utils.BadRequestResponse(c, "Invalid direction, expected sent or received")
	}
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}
