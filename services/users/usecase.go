package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pocketpay/pocketpay/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// Register creates a new account with a bcrypt-hashed password
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues a JWT
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// ResolveEmail is the internal lookup consumed by the payment
	// service. An unknown email reports Found=false, not an error.
	ResolveEmail(ctx context.Context, email string) (*models.UserLookupResponse, error)
}
