package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pocketpay/pocketpay/services/payment PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// ProcessPayment drives one transfer through resolve -> debit ->
	// credit -> finalize, with a best-effort compensating credit when the
	// second leg fails. The returned payment reflects the terminal state.
	ProcessPayment(ctx context.Context, senderID uuid.UUID, req *models.TransferRequest) (*models.Payment, error)

	// CancelPayment cancels a PENDING payment; only the sender may cancel
	CancelPayment(ctx context.Context, paymentID, requesterID uuid.UUID) (*models.Payment, error)

	// GetPayment retrieves a payment by id for its sender or recipient
	GetPayment(ctx context.Context, paymentID, requesterID uuid.UUID) (*models.Payment, error)

	// GetStatus is the read-only status projection keyed by reference id
	GetStatus(ctx context.Context, referenceID string) (*models.PaymentStatusView, error)

	// Payment history reads
	ListUserPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
	ListSentPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
	ListReceivedPayments(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
}
