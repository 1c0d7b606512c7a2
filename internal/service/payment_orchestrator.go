package service

import (
	"context"
	"time"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// FailoverOrchestrator implements ports.PaymentOrchestrator.
//
// It walks the router's provider sequence in order. Each provider gets
// 1 + len(retryDelays) attempts with the configured wait between them; later
// providers are only consulted after an earlier provider's retry budget is
// fully exhausted. The first approved attempt wins and no further providers
// are tried. An explicit decline from a provider is terminal and ends the
// whole deposit with PAYMENT_REJECTED.
type FailoverOrchestrator struct {
	router      ports.PaymentRouter
	providers   ports.ProviderRegistry
	notifier    ports.Notifier
	retryDelays []time.Duration
	log         zerolog.Logger
}

// NewFailoverOrchestrator creates a new FailoverOrchestrator.
func NewFailoverOrchestrator(
	router ports.PaymentRouter,
	providers ports.ProviderRegistry,
	notifier ports.Notifier,
	retryDelays []time.Duration,
	log zerolog.Logger,
) *FailoverOrchestrator {
	return &FailoverOrchestrator{
		router:      router,
		providers:   providers,
		notifier:    notifier,
		retryDelays: retryDelays,
		log:         log,
	}
}

// Authorize obtains an approved payment attempt or fails with
// PAYMENT_REJECTED / ALL_PAYMENT_PROVIDERS_FAILED.
func (o *FailoverOrchestrator) Authorize(ctx context.Context, req ports.AuthorizeRequest) (*domain.PaymentAttempt, error) {
	sequence := o.router.ProviderSequence(req.Country, req.Amount)
	attemptsPerProvider := 1 + len(o.retryDelays)

	for _, providerName := range sequence {
		client, ok := o.providers.Client(providerName)
		if !ok {
			o.log.Warn().
				Str("provider", providerName).
				Str("country", req.Country).
				Msg("provider in routing sequence has no configured client, skipping")
			continue
		}

		for attempt := 1; attempt <= attemptsPerProvider; attempt++ {
			started := time.Now()
			result, err := client.Charge(ctx, ports.ChargeRequest{
				AccountID: req.AccountID,
				Amount:    req.Amount,
				Currency:  req.Currency,
				Method:    req.Method,
			})
			latency := time.Since(started)

			paymentAttempt := domain.PaymentAttempt{
				Provider:  providerName,
				Status:    domain.PaymentStatusFailed,
				LatencyMs: latency.Milliseconds(),
				Amount:    req.Amount,
				Country:   req.Country,
			}
			if err == nil && result.Status == domain.PaymentStatusApproved {
				paymentAttempt.Status = domain.PaymentStatusApproved
			}
			o.reportAttempt(ctx, req, paymentAttempt, attempt)

			switch {
			case err != nil:
				// Transport-level fault: transient, retry within budget.
				o.log.Warn().Err(err).
					Str("provider", providerName).
					Int("attempt", attempt).
					Int64("amount", req.Amount).
					Msg("payment attempt failed")

			case result.Status == domain.PaymentStatusApproved:
				o.log.Info().
					Str("provider", providerName).
					Int("attempt", attempt).
					Int64("amount", req.Amount).
					Int64("latency_ms", paymentAttempt.LatencyMs).
					Msg("payment approved")
				return &paymentAttempt, nil

			default:
				// Explicit decline: terminal, no retry, no failover.
				o.log.Info().
					Str("provider", providerName).
					Str("reason", result.Reason).
					Msg("payment declined by provider")
				return nil, apperror.ErrPaymentRejected(result.Reason)
			}

			if attempt < attemptsPerProvider {
				if err := o.wait(ctx, o.retryDelays[attempt-1]); err != nil {
					return nil, apperror.InternalError(err)
				}
			}
		}
	}

	return nil, apperror.ErrAllProvidersFailed()
}

// reportAttempt publishes one attempt to analytics, fire-and-forget.
func (o *FailoverOrchestrator) reportAttempt(ctx context.Context, req ports.AuthorizeRequest, attempt domain.PaymentAttempt, num int) {
	event := domain.PaymentAttemptEvent{
		AccountID:  req.AccountID,
		Attempt:    attempt,
		AttemptNum: num,
		OccurredAt: time.Now().UTC(),
	}
	if err := o.notifier.Publish(ctx, domain.TopicPaymentAttempt, event); err != nil {
		o.log.Warn().Err(err).Str("provider", attempt.Provider).Msg("failed to publish payment attempt analytics")
	}
}

// wait sleeps for the retry delay, honoring context cancellation.
func (o *FailoverOrchestrator) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
