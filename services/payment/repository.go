package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pocketpay/pocketpay/services/payment PaymentRepo

// PaymentRepo defines the payment persistence interface. Every state
// transition is persisted before the next remote call begins, so after a
// crash the payment row reflects the last completed step.
type PaymentRepo interface {
	CreatePayment(ctx context.Context, p *models.Payment) error
	UpdatePayment(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*models.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Payment, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Payment, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.Payment, error)
}
