// Package http implements the payment service's outbound HTTP gateways
// to the users, wallet and ledger services. Calls authenticate with the
// payment service's API key; collaborator error envelopes are mapped back
// into typed errors so the orchestrator can react to the machine code.
package http

import (
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	pkghttp "github.com/pocketpay/pocketpay/internal/pkg/http"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// PaymentGW implements the payment gateway interface over HTTP
type PaymentGW struct {
	userClient   *pkghttp.APIKeyClient
	walletClient *pkghttp.APIKeyClient
	ledgerClient *pkghttp.APIKeyClient
}

// NewPaymentGW creates gateways to all payment collaborators
func NewPaymentGW(cfg *models.Config) *PaymentGW {
	return &PaymentGW{
		userClient:   pkghttp.NewAPIKeyClient(cfg.APIKey.PaymentService, "users-service", cfg.Services.UserServiceURL),
		walletClient: pkghttp.NewAPIKeyClient(cfg.APIKey.PaymentService, "wallet-service", cfg.Services.WalletServiceURL),
		ledgerClient: pkghttp.NewAPIKeyClient(cfg.APIKey.PaymentService, "ledger-service", cfg.Services.LedgerServiceURL),
	}
}

// parseResponse decodes a collaborator response. Error envelopes that
// carry a machine code are surfaced as typed errors so callers can tell
// a business rejection from a transport failure.
func parseResponse(resp *nethttp.Response, service string, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.RemoteCall(fmt.Sprintf("failed to read %s response", service), err)
	}

	// A collaborator reports failure either by status code or by an
	// explicit success=false in an otherwise-2xx body; both are hard
	// step failures.
	var envelope struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	decodeErr := json.Unmarshal(body, &envelope)
	failed := resp.StatusCode >= 400 ||
		(decodeErr == nil && envelope.Success != nil && !*envelope.Success)

	if failed {
		if decodeErr == nil && envelope.Code != "" {
			return apperrors.New(envelope.Code, envelope.Error)
		}
		return apperrors.RemoteCall(
			fmt.Sprintf("%s returned status %d", service, resp.StatusCode),
			fmt.Errorf("response body: %s", body))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return apperrors.RemoteCall(fmt.Sprintf("failed to parse %s response", service), err)
		}
	}
	return nil
}
