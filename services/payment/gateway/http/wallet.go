package http

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// GetWalletBalance reads a user's balance from the wallet service
func (g *PaymentGW) GetWalletBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("/internal/wallets/%s/balance", userID)

	resp, err := g.walletClient.Get(ctx, endpoint)
	if err != nil {
		return decimal.Zero, apperrors.RemoteCall("wallet service unreachable", err)
	}

	var balance models.BalanceResponse
	if err := parseResponse(resp, "wallet service", &balance); err != nil {
		return decimal.Zero, err
	}
	return balance.Balance, nil
}

// DebitWallet debits a user's wallet. An insufficient balance comes back
// as a typed error carrying the wallet service's message.
func (g *PaymentGW) DebitWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) error {
	return g.mutateWallet(ctx, userID, "debit", amount, description)
}

// CreditWallet credits a user's wallet
func (g *PaymentGW) CreditWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) error {
	return g.mutateWallet(ctx, userID, "credit", amount, description)
}

func (g *PaymentGW) mutateWallet(ctx context.Context, userID uuid.UUID, op string, amount decimal.Decimal, description string) error {
	endpoint := fmt.Sprintf("/internal/wallets/%s/%s", userID, op)
	req := models.WalletOperationRequest{
		Amount:      amount,
		Description: description,
	}

	resp, err := g.walletClient.Post(ctx, endpoint, req)
	if err != nil {
		return apperrors.RemoteCall("wallet service unreachable", err)
	}

	var result models.WalletOperationResponse
	return parseResponse(resp, "wallet service", &result)
}
