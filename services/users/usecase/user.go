package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/jwt"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/pocketpay/pocketpay/services/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// UserUC implements the user usecase interface
type UserUC struct {
	cfg  *models.Config
	repo users.UserRepo
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg *models.Config, repo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates a new account. Emails are normalized to lower case so
// lookups and uniqueness are case-insensitive.
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Validation("A valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.Validation("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))
	return user, nil
}

// Login verifies credentials and issues a JWT. A missing user and a
// wrong password produce the same answer.
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.Validation("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Validation("Invalid email or password")
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, apperrors.Internal("failed to generate token", err)
	}

	logger.Info("user logged in",
		logger.String("user_id", user.ID.String()))
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Email:     user.Email,
	}, nil
}

// GetUser retrieves a user by id
func (uc *UserUC) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetByID(ctx, userID)
}

// ResolveEmail resolves an email to a user id for the payment service
func (uc *UserUC) ResolveEmail(ctx context.Context, email string) (*models.UserLookupResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.Validation("Email is required")
	}

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return &models.UserLookupResponse{Found: false}, nil
		}
		return nil, err
	}

	return &models.UserLookupResponse{
		Found: true,
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
