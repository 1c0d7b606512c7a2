package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification topics. Downstream consumers (CRM, message bus, Slack relay,
// websocket fan-out) subscribe by topic; every publish is fire-and-forget
// from the wallet engine's point of view.
const (
	TopicBalanceChanged = "wallet.balance_changed"
	TopicPaymentStatus  = "payment.status"
	TopicPaymentAttempt = "payment.attempt"
	TopicRiskFlag       = "crm.risk_flag"
	TopicUIAlert        = "ui.alert"
	TopicOpsAlert       = "ops.alert"
)

// UI alert types shown to the player.
const (
	AlertAffordabilityCheck = "AFFORDABILITY_CHECK"
	AlertRealityCheck       = "REALITY_CHECK"
)

// BalanceChangedEvent broadcasts a committed balance mutation.
type BalanceChangedEvent struct {
	AccountID     uuid.UUID     `json:"account_id"`
	TransactionID string        `json:"transaction_id"`
	Kind          OperationKind `json:"kind"`
	Balance       int64         `json:"balance"`
	BonusBalance  int64         `json:"bonus_balance"`
	Currency      string        `json:"currency"`
	OperatorID    string        `json:"operator_id,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// PaymentStatusEvent reports the terminal outcome of a deposit.
type PaymentStatusEvent struct {
	AccountID  uuid.UUID `json:"account_id"`
	Success    bool      `json:"success"`
	Amount     int64     `json:"amount"`
	Provider   string    `json:"provider,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentAttemptEvent is the analytics record of one provider call.
type PaymentAttemptEvent struct {
	AccountID  uuid.UUID      `json:"account_id"`
	Attempt    PaymentAttempt `json:"attempt"`
	AttemptNum int            `json:"attempt_num"` // 1-based, per provider
	OccurredAt time.Time      `json:"occurred_at"`
}

// RiskFlagEvent is pushed to the CRM after a verdict.
type RiskFlagEvent struct {
	AccountID   uuid.UUID    `json:"account_id"`
	RiskLevel   RiskLevel    `json:"risk_level"`
	Reasons     []RiskReason `json:"reasons"`
	TriggeredAt time.Time    `json:"triggered_at"`
}

// UIAlertEvent triggers a protective prompt on the player's session channel.
type UIAlertEvent struct {
	AccountID  uuid.UUID `json:"account_id"`
	AlertType  string    `json:"alert_type"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OpsAlertEvent gives human operators visibility into flagged accounts.
type OpsAlertEvent struct {
	AccountID  uuid.UUID    `json:"account_id"`
	RiskLevel  RiskLevel    `json:"risk_level"`
	Reasons    []RiskReason `json:"reasons"`
	Text       string       `json:"text"`
	OccurredAt time.Time    `json:"occurred_at"`
}
