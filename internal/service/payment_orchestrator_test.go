package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/internal/core/ports/mocks"
	"casino-wallet-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorTestDeps struct {
	orch      *FailoverOrchestrator
	router    *mocks.MockPaymentRouter
	registry  *mocks.MockProviderRegistry
	notifier  *mocks.MockNotifier
	providers map[string]*mocks.MockProviderClient
	ctrl      *gomock.Controller
}

func setupOrchestrator(t *testing.T, retryDelays []time.Duration, providerNames ...string) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		router:    mocks.NewMockPaymentRouter(ctrl),
		registry:  mocks.NewMockProviderRegistry(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		providers: make(map[string]*mocks.MockProviderClient),
		ctrl:      ctrl,
	}
	for _, name := range providerNames {
		client := mocks.NewMockProviderClient(ctrl)
		d.providers[name] = client
		d.registry.EXPECT().Client(name).Return(client, true).AnyTimes()
	}
	// Analytics publishes are fire-and-forget.
	d.notifier.EXPECT().Publish(gomock.Any(), domain.TopicPaymentAttempt, gomock.Any()).Return(nil).AnyTimes()
	d.orch = NewFailoverOrchestrator(d.router, d.registry, d.notifier, retryDelays, zerolog.Nop())
	return d
}

func approved() (*ports.ChargeResult, error) {
	return &ports.ChargeResult{Status: domain.PaymentStatusApproved}, nil
}

func transientFailure() (*ports.ChargeResult, error) {
	return nil, errors.New("connection reset")
}

func TestFailoverOrchestrator_FirstProviderApproves(t *testing.T) {
	d := setupOrchestrator(t, nil, "Adyen")
	defer d.ctrl.Finish()

	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 10000, Currency: "EUR", Country: "MT"}
	d.router.EXPECT().ProviderSequence("MT", int64(10000)).Return([]string{"Adyen"})
	d.providers["Adyen"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(approved())

	attempt, err := d.orch.Authorize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Adyen", attempt.Provider)
	assert.True(t, attempt.Approved())
	assert.Equal(t, int64(10000), attempt.Amount)
	assert.Equal(t, "MT", attempt.Country)
}

func TestFailoverOrchestrator_FailsOverAfterRetryBudget(t *testing.T) {
	// 2 retry delays => 3 attempts per provider.
	delays := []time.Duration{time.Millisecond, time.Millisecond}
	d := setupOrchestrator(t, delays, "Trustly", "Adyen", "Stripe")
	defer d.ctrl.Finish()

	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 10000, Currency: "GBP", Country: "UK"}
	d.router.EXPECT().ProviderSequence("UK", int64(10000)).Return([]string{"Trustly", "Adyen", "Stripe"})

	// Trustly and Adyen exhaust their full budget, Stripe succeeds first try.
	d.providers["Trustly"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(transientFailure()).Times(3)
	d.providers["Adyen"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(transientFailure()).Times(3)
	d.providers["Stripe"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(approved())

	attempt, err := d.orch.Authorize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Stripe", attempt.Provider)
}

func TestFailoverOrchestrator_AllProvidersExhausted(t *testing.T) {
	delays := []time.Duration{time.Millisecond}
	d := setupOrchestrator(t, delays, "Adyen", "Stripe")
	defer d.ctrl.Finish()

	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 5000, Currency: "EUR", Country: "DE"}
	d.router.EXPECT().ProviderSequence("DE", int64(5000)).Return([]string{"Adyen", "Stripe"})
	d.providers["Adyen"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(transientFailure()).Times(2)
	d.providers["Stripe"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(transientFailure()).Times(2)

	attempt, err := d.orch.Authorize(context.Background(), req)
	assert.Nil(t, attempt)
	require.Error(t, err)
	assertAppError(t, err, "ALL_PAYMENT_PROVIDERS_FAILED")
}

func TestFailoverOrchestrator_ExplicitDeclineIsTerminal(t *testing.T) {
	delays := []time.Duration{time.Millisecond}
	d := setupOrchestrator(t, delays, "Adyen", "Stripe")
	defer d.ctrl.Finish()

	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 5000, Currency: "EUR", Country: "DE"}
	d.router.EXPECT().ProviderSequence("DE", int64(5000)).Return([]string{"Adyen", "Stripe"})
	// A decline ends the deposit: no retry, no failover to Stripe.
	d.providers["Adyen"].EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&ports.ChargeResult{Status: domain.PaymentStatusFailed, Reason: "card blocked"}, nil)

	attempt, err := d.orch.Authorize(context.Background(), req)
	assert.Nil(t, attempt)
	require.Error(t, err)
	assertAppError(t, err, "PAYMENT_REJECTED")
	assert.Contains(t, err.Error(), "card blocked")
}

func TestFailoverOrchestrator_SkipsUnknownProvider(t *testing.T) {
	d := setupOrchestrator(t, nil, "Stripe")
	defer d.ctrl.Finish()
	d.registry.EXPECT().Client("Ghost").Return(nil, false)

	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 5000, Currency: "EUR", Country: "MT"}
	d.router.EXPECT().ProviderSequence("MT", int64(5000)).Return([]string{"Ghost", "Stripe"})
	d.providers["Stripe"].EXPECT().Charge(gomock.Any(), gomock.Any()).Return(approved())

	attempt, err := d.orch.Authorize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Stripe", attempt.Provider)
}

func TestFailoverOrchestrator_ContextCancelledDuringRetryWait(t *testing.T) {
	delays := []time.Duration{time.Minute}
	d := setupOrchestrator(t, delays, "Adyen")
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	req := ports.AuthorizeRequest{AccountID: uuid.New(), Amount: 5000, Currency: "EUR", Country: "MT"}
	d.router.EXPECT().ProviderSequence("MT", int64(5000)).Return([]string{"Adyen"})
	d.providers["Adyen"].EXPECT().Charge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ports.ChargeRequest) (*ports.ChargeResult, error) {
			cancel()
			return transientFailure()
		})

	attempt, err := d.orch.Authorize(ctx, req)
	assert.Nil(t, attempt)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// assertAppError asserts err carries the given application error code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	assert.Equal(t, code, apperror.Code(err))
}
