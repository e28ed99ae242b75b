package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pocketpay/pocketpay/internal/pkg/apperrors"
	"github.com/pocketpay/pocketpay/internal/pkg/models"
)

// ResolveRecipient looks up a user by email in the users service. An
// unknown email is not an error at this layer: the response reports
// Found=false and the orchestrator decides what to do with it.
func (g *PaymentGW) ResolveRecipient(ctx context.Context, email string) (*models.UserLookupResponse, error) {
	endpoint := fmt.Sprintf("/internal/users/by-email?email=%s", url.QueryEscape(email))

	resp, err := g.userClient.Get(ctx, endpoint)
	if err != nil {
		return nil, apperrors.RemoteCall("users service unreachable", err)
	}

	var lookup models.UserLookupResponse
	if err := parseResponse(resp, "users service", &lookup); err != nil {
		return nil, err
	}
	return &lookup, nil
}
