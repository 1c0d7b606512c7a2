package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casino-wallet-gateway/config"
	httpHandler "casino-wallet-gateway/internal/adapter/http/handler"
	"casino-wallet-gateway/internal/adapter/notify"
	redisStorage "casino-wallet-gateway/internal/adapter/storage/redis"
	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/internal/service"
	"casino-wallet-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full wallet stack over in-memory stores, miniredis and
// scripted payment providers. It exercises the real HTTP layer, wallet
// engine, orchestrator, risk monitor and dispatcher end-to-end.
type testApp struct {
	server     *httptest.Server
	accounts   *inMemoryAccountStore
	recorder   *recordingNotifier
	dispatcher *service.NotifyingDispatcher
	providers  map[string]*scriptedProvider
	redis      *miniredis.Miniredis
}

func paymentTestConfig() config.PaymentConfig {
	return config.PaymentConfig{
		RetryDelays:          []time.Duration{time.Millisecond},
		LargeAmountThreshold: 500000,
		OpenBankingProvider:  "Trustly",
		Routing: map[string][]string{
			"UK": {"Trustly", "Adyen", "Stripe"},
			"MT": {"Adyen", "Trustly", "Stripe"},
		},
		DefaultSequence: []string{"Adyen", "Stripe", "Trustly"},
	}
}

func riskTestConfig() config.RiskConfig {
	return config.RiskConfig{
		LossChasingDeposits: 5,
		LossChasingWindow:   24 * time.Hour,
		VelocityDebits:      10,
		VelocityWindow:      60 * time.Second,
		// Disabled: the suite runs at arbitrary wall-clock hours.
		LateNightStartHour:  0,
		LateNightEndHour:    0,
		AffordabilitySum:    100000,
		AffordabilityWindow: 30 * 24 * time.Hour,
	}
}

func newTestApp(t *testing.T, providers map[string]*scriptedProvider) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	accounts := newInMemoryAccountStore()
	dedupStore := newInMemoryDedupStore()
	dedupCache := redisStorage.NewDedupCache(rdb)

	recorder := newRecordingNotifier()
	log := logger.New("error", false)
	notifier := notify.NewMulti(log, recorder, redisStorage.NewPublisher(rdb))

	registry := staticRegistry{}
	for name, p := range providers {
		registry[name] = p
	}

	paymentCfg := paymentTestConfig()
	router := service.NewCountryRouter(paymentCfg)
	orchestrator := service.NewFailoverOrchestrator(router, registry, notifier, paymentCfg.RetryDelays, log)

	riskMonitor := service.NewHeuristicRiskMonitor(accounts, riskTestConfig(), log)
	dispatcher := service.NewNotifyingDispatcher(notifier, log)

	walletSvc := service.NewWalletService(
		accounts, dedupStore, dedupCache, orchestrator,
		riskMonitor, dispatcher, notifier, log,
	)

	ginRouter := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc: walletSvc,
		Logger:    log,
	})
	server := httptest.NewServer(ginRouter)
	t.Cleanup(server.Close)

	return &testApp{
		server:     server,
		accounts:   accounts,
		recorder:   recorder,
		dispatcher: dispatcher,
		providers:  providers,
		redis:      mr,
	}
}

func (app *testApp) seedAccount(t *testing.T, real, bonus int64, country string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := app.accounts.Create(context.Background(), &domain.Account{
		ID:           id,
		RealBalance:  real,
		BonusBalance: bonus,
		Currency:     "EUR",
		Country:      country,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}

type operationEnvelope struct {
	Data      domain.OperationResult `json:"data"`
	ErrorCode string                 `json:"error_code"`
}

func (app *testApp) post(t *testing.T, path string, payload any) (int, operationEnvelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(app.server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope operationEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func approvedOutcome() chargeOutcome {
	return chargeOutcome{result: &ports.ChargeResult{Status: domain.PaymentStatusApproved}}
}

func transportFailure() chargeOutcome {
	return chargeOutcome{err: errors.New("connection reset")}
}

func TestDeposit_FailoverAcrossProviders(t *testing.T) {
	// UK routes [Trustly, Adyen, Stripe]. Trustly and Adyen fail every
	// attempt; Stripe approves first try.
	providers := map[string]*scriptedProvider{
		"Trustly": {outcomes: []chargeOutcome{transportFailure()}},
		"Adyen":   {outcomes: []chargeOutcome{transportFailure()}},
		"Stripe":  {outcomes: []chargeOutcome{approvedOutcome()}},
	}
	app := newTestApp(t, providers)
	accountID := app.seedAccount(t, 10000, 0, "UK")

	status, envelope := app.post(t, "/integration/v1/wallet/deposit", map[string]any{
		"user_id": accountID, "amount": 10000, "method": "card",
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Stripe", envelope.Data.Provider)
	assert.Equal(t, int64(20000), envelope.Data.Balance)

	// Two attempts each against the failed providers, one against Stripe.
	assert.Equal(t, 2, providers["Trustly"].callCount())
	assert.Equal(t, 2, providers["Adyen"].callCount())
	assert.Equal(t, 1, providers["Stripe"].callCount())
	assert.Len(t, app.recorder.byTopic(domain.TopicPaymentAttempt), 5)

	statuses := app.recorder.byTopic(domain.TopicPaymentStatus)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].(domain.PaymentStatusEvent).Success)
}

func TestDeposit_LargeAmountPromotesOpenBanking(t *testing.T) {
	// MT routes [Adyen, Trustly, Stripe]; above the threshold Trustly is
	// promoted to the front and must be called first.
	providers := map[string]*scriptedProvider{
		"Trustly": {outcomes: []chargeOutcome{approvedOutcome()}},
		"Adyen":   {outcomes: []chargeOutcome{approvedOutcome()}},
		"Stripe":  {outcomes: []chargeOutcome{approvedOutcome()}},
	}
	app := newTestApp(t, providers)
	accountID := app.seedAccount(t, 0, 0, "MT")

	status, envelope := app.post(t, "/integration/v1/wallet/deposit", map[string]any{
		"user_id": accountID, "amount": 600000, "method": "bank",
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Trustly", envelope.Data.Provider)
	assert.Equal(t, 1, providers["Trustly"].callCount())
	assert.Equal(t, 0, providers["Adyen"].callCount())
}

func TestDeposit_AllProvidersFailed(t *testing.T) {
	providers := map[string]*scriptedProvider{
		"Trustly": {outcomes: []chargeOutcome{transportFailure()}},
		"Adyen":   {outcomes: []chargeOutcome{transportFailure()}},
		"Stripe":  {outcomes: []chargeOutcome{transportFailure()}},
	}
	app := newTestApp(t, providers)
	accountID := app.seedAccount(t, 10000, 0, "UK")

	status, envelope := app.post(t, "/integration/v1/wallet/deposit", map[string]any{
		"user_id": accountID, "amount": 10000, "method": "card",
	})

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "ALL_PAYMENT_PROVIDERS_FAILED", envelope.ErrorCode)

	account, err := app.accounts.GetByID(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), account.RealBalance, "no balance mutation on payment failure")

	statuses := app.recorder.byTopic(domain.TopicPaymentStatus)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].(domain.PaymentStatusEvent).Success)
}

func TestDebit_VelocitySpikeTriggersInterventions(t *testing.T) {
	app := newTestApp(t, nil)
	accountID := app.seedAccount(t, 100000, 0, "UK")

	for i := 0; i < 12; i++ {
		status, _ := app.post(t, "/integration/v1/wallet/debit", map[string]any{
			"user_id": accountID, "amount": 100,
			"transaction_id": uuid.NewString(), "game_id": "slots-7",
		})
		require.Equal(t, http.StatusOK, status)
	}
	app.dispatcher.Flush()

	flags := app.recorder.byTopic(domain.TopicRiskFlag)
	require.NotEmpty(t, flags, "velocity spike must reach the CRM")
	last := flags[len(flags)-1].(domain.RiskFlagEvent)
	assert.Equal(t, domain.RiskLevelMedium, last.RiskLevel)
	assert.Contains(t, last.Reasons, domain.ReasonVelocitySpike)

	// Operator alert fires for any verdict; a MEDIUM verdict without the
	// affordability reason does not interrupt the player.
	assert.NotEmpty(t, app.recorder.byTopic(domain.TopicOpsAlert))
	assert.Empty(t, app.recorder.byTopic(domain.TopicUIAlert))
}

func TestDeposit_LossChasingTriggersUIAlert(t *testing.T) {
	providers := map[string]*scriptedProvider{
		"Trustly": {outcomes: []chargeOutcome{approvedOutcome()}},
		"Adyen":   {outcomes: []chargeOutcome{approvedOutcome()}},
		"Stripe":  {outcomes: []chargeOutcome{approvedOutcome()}},
	}
	app := newTestApp(t, providers)
	accountID := app.seedAccount(t, 0, 0, "UK")

	// Five small deposits inside the loss-chasing window, summing far below
	// the affordability threshold.
	for i := 0; i < 5; i++ {
		status, _ := app.post(t, "/integration/v1/wallet/deposit", map[string]any{
			"user_id": accountID, "amount": 100, "method": "card",
		})
		require.Equal(t, http.StatusOK, status)
	}
	app.dispatcher.Flush()

	flags := app.recorder.byTopic(domain.TopicRiskFlag)
	require.NotEmpty(t, flags)
	last := flags[len(flags)-1].(domain.RiskFlagEvent)
	assert.Equal(t, domain.RiskLevelHigh, last.RiskLevel)
	assert.Contains(t, last.Reasons, domain.ReasonLossChasing)

	alerts := app.recorder.byTopic(domain.TopicUIAlert)
	require.NotEmpty(t, alerts, "HIGH verdict must interrupt the player")
	assert.Equal(t, domain.AlertRealityCheck, alerts[0].(domain.UIAlertEvent).AlertType)
}

func TestDeposit_AffordabilityThresholdFiresAffordabilityCheck(t *testing.T) {
	providers := map[string]*scriptedProvider{
		"Trustly": {outcomes: []chargeOutcome{approvedOutcome()}},
		"Adyen":   {outcomes: []chargeOutcome{approvedOutcome()}},
		"Stripe":  {outcomes: []chargeOutcome{approvedOutcome()}},
	}
	app := newTestApp(t, providers)
	accountID := app.seedAccount(t, 0, 0, "UK")

	// One deposit at the affordability threshold.
	status, _ := app.post(t, "/integration/v1/wallet/deposit", map[string]any{
		"user_id": accountID, "amount": 100000, "method": "bank",
	})
	require.Equal(t, http.StatusOK, status)
	app.dispatcher.Flush()

	alerts := app.recorder.byTopic(domain.TopicUIAlert)
	require.NotEmpty(t, alerts)
	assert.Equal(t, domain.AlertAffordabilityCheck, alerts[0].(domain.UIAlertEvent).AlertType)
}

func TestDebit_DuplicateTransactionNotDoubleCharged(t *testing.T) {
	app := newTestApp(t, nil)
	accountID := app.seedAccount(t, 50000, 0, "UK")
	txID := uuid.NewString()

	payload := map[string]any{
		"user_id": accountID, "amount": 1000, "transaction_id": txID,
	}
	status, first := app.post(t, "/integration/v1/wallet/debit", payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(49000), first.Data.Balance)

	status, replay := app.post(t, "/integration/v1/wallet/debit", payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(49000), replay.Data.Balance, "replay returns the original snapshot")

	account, err := app.accounts.GetByID(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(49000), account.RealBalance, "balance debited exactly once")
}

func TestDebit_BonusFirstOverHTTP(t *testing.T) {
	app := newTestApp(t, nil)
	accountID := app.seedAccount(t, 10000, 5000, "UK")

	status, envelope := app.post(t, "/integration/v1/wallet/debit", map[string]any{
		"user_id": accountID, "amount": 7000, "transaction_id": uuid.NewString(),
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(8000), envelope.Data.Balance)
	assert.Equal(t, int64(0), envelope.Data.BonusBalance)
}

func TestBonusCredit_SkipsRiskEvaluation(t *testing.T) {
	app := newTestApp(t, nil)
	accountID := app.seedAccount(t, 100000, 0, "UK")

	// Build up a debit history that would trip the velocity heuristic.
	for i := 0; i < 11; i++ {
		status, _ := app.post(t, "/integration/v1/wallet/debit", map[string]any{
			"user_id": accountID, "amount": 100, "transaction_id": uuid.NewString(),
		})
		require.Equal(t, http.StatusOK, status)
	}
	app.dispatcher.Flush()
	flagsBefore := len(app.recorder.byTopic(domain.TopicRiskFlag))
	require.NotZero(t, flagsBefore)

	status, envelope := app.post(t, "/integration/v1/wallet/bonus", map[string]any{
		"user_id": accountID, "amount": 2000, "bonus_code": "RELOAD25",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2000), envelope.Data.BonusBalance)

	app.dispatcher.Flush()
	assert.Equal(t, flagsBefore, len(app.recorder.byTopic(domain.TopicRiskFlag)),
		"bonus credits do not run risk evaluation")
}
