package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Player-facing intervention messages.
const (
	affordabilityMessage = "You have reached your deposit threshold for this period. Please review your budget before depositing again."
	realityCheckMessage  = "You have been playing intensively. Take a moment to review your recent activity."
)

// NotifyingDispatcher implements ports.InterventionDispatcher as a pure
// fan-out over the verdict: CRM flag always, a UI alert for HIGH or
// affordability verdicts, and an operator alert in parallel. Every delivery
// is best-effort; failures are logged and never propagated.
type NotifyingDispatcher struct {
	notifier ports.Notifier
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewNotifyingDispatcher creates a new NotifyingDispatcher.
func NewNotifyingDispatcher(notifier ports.Notifier, log zerolog.Logger) *NotifyingDispatcher {
	return &NotifyingDispatcher{notifier: notifier, log: log}
}

// Handle fires the interventions for a verdict. A nil verdict is a no-op.
func (d *NotifyingDispatcher) Handle(ctx context.Context, accountID uuid.UUID, verdict *domain.RiskVerdict) {
	if verdict == nil {
		return
	}

	// 1. CRM flag, always.
	crmEvent := domain.RiskFlagEvent{
		AccountID:   accountID,
		RiskLevel:   verdict.Level,
		Reasons:     verdict.Reasons,
		TriggeredAt: verdict.TriggeredAt,
	}
	if err := d.notifier.Publish(ctx, domain.TopicRiskFlag, crmEvent); err != nil {
		d.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to push risk flag to CRM")
	}

	// 2. UI alert when the verdict warrants interrupting the player.
	if verdict.Level == domain.RiskLevelHigh || verdict.HasReason(domain.ReasonAffordability) {
		alertType := domain.AlertRealityCheck
		message := realityCheckMessage
		if verdict.HasReason(domain.ReasonAffordability) {
			alertType = domain.AlertAffordabilityCheck
			message = affordabilityMessage
		}
		uiEvent := domain.UIAlertEvent{
			AccountID:  accountID,
			AlertType:  alertType,
			Message:    message,
			OccurredAt: time.Now().UTC(),
		}
		if err := d.notifier.Publish(ctx, domain.TopicUIAlert, uiEvent); err != nil {
			d.log.Warn().Err(err).Str("account_id", accountID.String()).Str("alert_type", alertType).Msg("failed to publish UI alert")
		}
	}

	// 3. Operator visibility, in parallel. Delivery failure is swallowed.
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		opsEvent := domain.OpsAlertEvent{
			AccountID:  accountID,
			RiskLevel:  verdict.Level,
			Reasons:    verdict.Reasons,
			Text:       fmt.Sprintf("Account %s flagged %s: %v", accountID, verdict.Level, verdict.Reasons),
			OccurredAt: time.Now().UTC(),
		}
		if err := d.notifier.Publish(context.WithoutCancel(ctx), domain.TopicOpsAlert, opsEvent); err != nil {
			d.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to deliver operator alert")
		}
	}()
}

// Flush waits for in-flight operator alerts, used on shutdown and in tests.
func (d *NotifyingDispatcher) Flush() {
	d.wg.Wait()
}
