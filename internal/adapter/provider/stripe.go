package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	stripe "github.com/stripe/stripe-go/v72"
	stripeclient "github.com/stripe/stripe-go/v72/client"
)

// paymentIntentCreator is the slice of the Stripe SDK the adapter calls.
// Satisfied by client.API.PaymentIntents; tests substitute a stub.
type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeProvider charges through Stripe PaymentIntents. Card declines map to
// terminal results; API and transport errors stay retryable.
type StripeProvider struct {
	intents paymentIntentCreator
}

// NewStripeProvider creates a Stripe charge client from the secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	api := stripeclient.New(secretKey, nil)
	return &StripeProvider{intents: api.PaymentIntents}
}

// Charge creates and confirms a PaymentIntent for the deposit amount.
func (p *StripeProvider) Charge(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		Confirm:       stripe.Bool(true),
		PaymentMethod: stripe.String(req.Method),
	}
	params.Context = ctx
	params.AddMetadata("account_id", req.AccountID.String())

	intent, err := p.intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			reason := string(stripeErr.DeclineCode)
			if reason == "" {
				reason = stripeErr.Msg
			}
			return &ports.ChargeResult{Status: domain.PaymentStatusFailed, Reason: reason}, nil
		}
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		return &ports.ChargeResult{Status: domain.PaymentStatusApproved}, nil
	}
	return &ports.ChargeResult{
		Status: domain.PaymentStatusFailed,
		Reason: fmt.Sprintf("payment intent status %s", intent.Status),
	}, nil
}
