package http

import (
	"context"

	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// RecordTransaction asks the ledger service to record a confirmed
// transfer. The caller treats failures as non-fatal: the payment outcome
// is already settled by the time this runs.
func (g *PaymentGW) RecordTransaction(ctx context.Context, req *models.RecordTransactionRequest) error {
	resp, err := g.ledgerClient.Post(ctx, "/internal/ledger/record-transaction", req)
	if err != nil {
		return apperrors.RemoteCall("ledger service unreachable", err)
	}

	return parseResponse(resp, "ledger service", nil)
}
