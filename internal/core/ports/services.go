package ports

import (
	"context"

	"casino-wallet-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// Notifier publishes domain events to downstream systems (CRM, message bus,
// Slack relay, websocket fan-out). Publishes are best-effort: the caller logs
// failures and never lets them disturb a committed wallet operation.
type Notifier interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// ChargeRequest is one attempt against a single payment provider.
type ChargeRequest struct {
	AccountID uuid.UUID
	Amount    int64 // minor units
	Currency  string
	Method    string // payment method hint from the player (card, bank, ...)
}

// ChargeResult is the provider's answer to a single charge attempt.
// A transport-level failure is returned as an error instead and treated as
// transient; a Failed status with a reason is a terminal decline.
type ChargeResult struct {
	Status domain.PaymentStatus
	Reason string // decline reason, empty on approval
}

// ProviderClient performs a single call to one external payment processor.
type ProviderClient interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ProviderRegistry resolves provider names from the routing sequence to
// configured clients. Injected at construction; no module-level state.
type ProviderRegistry interface {
	Client(name string) (ProviderClient, bool)
}

// PaymentRouter maps (country, amount) to an ordered provider candidate list.
// Pure and deterministic: no I/O, no side effects.
type PaymentRouter interface {
	ProviderSequence(country string, amount int64) []string
}

// AuthorizeRequest asks the orchestrator for an approved payment.
type AuthorizeRequest struct {
	AccountID uuid.UUID
	Amount    int64 // minor units
	Currency  string
	Country   string
	Method    string
}

// PaymentOrchestrator drives router + provider clients through the bounded
// retry/failover protocol until one attempt is approved or all are exhausted.
type PaymentOrchestrator interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (*domain.PaymentAttempt, error)
}

// RiskMonitor evaluates an account's recent activity. A nil verdict means no
// heuristic fired. Evaluation never fails: a heuristic whose history read
// errors degrades to false.
type RiskMonitor interface {
	Evaluate(ctx context.Context, accountID uuid.UUID) *domain.RiskVerdict
}

// InterventionDispatcher converts a risk verdict into CRM, UI and operator
// notifications. Pure fan-out, all best-effort.
type InterventionDispatcher interface {
	Handle(ctx context.Context, accountID uuid.UUID, verdict *domain.RiskVerdict)
}

// --- Exposed interface (what external callers invoke on the core) ---

// DebitRequest is a wager drawn from the player's wallet.
type DebitRequest struct {
	UserID        uuid.UUID
	Amount        int64 // minor units
	TransactionID string
	GameID        string
	OperatorID    string
	CorrelationID string
}

// CreditRequest is a game win paid into the player's real balance.
type CreditRequest struct {
	UserID        uuid.UUID
	Amount        int64
	TransactionID string
	GameID        string
	OperatorID    string
	CorrelationID string
}

// DepositRequest funds the real balance through an external provider.
type DepositRequest struct {
	UserID        uuid.UUID
	Amount        int64
	Method        string
	OperatorID    string
	CorrelationID string
}

// BonusCreditRequest grants promotional funds to the bonus balance.
type BonusCreditRequest struct {
	UserID        uuid.UUID
	Amount        int64
	BonusCode     string
	OperatorID    string
	CorrelationID string
}

// WalletService is the core wallet transaction engine: the only component
// permitted to mutate account balances.
type WalletService interface {
	Debit(ctx context.Context, req DebitRequest) (*domain.OperationResult, error)
	Credit(ctx context.Context, req CreditRequest) (*domain.OperationResult, error)
	Deposit(ctx context.Context, req DepositRequest) (*domain.OperationResult, error)
	CreditBonus(ctx context.Context, req BonusCreditRequest) (*domain.OperationResult, error)
}
