package service

import (
	"context"
	"time"

	"casino-wallet-gateway/config"
	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeuristicRiskMonitor implements ports.RiskMonitor with four independent
// heuristics over the account's ledger history. Evaluation is synchronous
// and never blocks a wallet operation: a heuristic whose history read fails
// degrades to false.
type HeuristicRiskMonitor struct {
	store ports.AccountStore
	cfg   config.RiskConfig
	now   func() time.Time
	log   zerolog.Logger
}

// NewHeuristicRiskMonitor creates a new HeuristicRiskMonitor.
func NewHeuristicRiskMonitor(store ports.AccountStore, cfg config.RiskConfig, log zerolog.Logger) *HeuristicRiskMonitor {
	return &HeuristicRiskMonitor{
		store: store,
		cfg:   cfg,
		now:   time.Now,
		log:   log,
	}
}

// WithClock overrides the wall clock, for tests.
func (m *HeuristicRiskMonitor) WithClock(now func() time.Time) *HeuristicRiskMonitor {
	m.now = now
	return m
}

// Evaluate classifies the account's recent activity. Returns nil when no
// heuristic fires. Level is HIGH when loss chasing or the affordability
// threshold triggered, MEDIUM otherwise.
func (m *HeuristicRiskMonitor) Evaluate(ctx context.Context, accountID uuid.UUID) *domain.RiskVerdict {
	now := m.now()

	var reasons []domain.RiskReason
	if m.isLossChasing(ctx, accountID, now) {
		reasons = append(reasons, domain.ReasonLossChasing)
	}
	if m.isVelocitySpike(ctx, accountID, now) {
		reasons = append(reasons, domain.ReasonVelocitySpike)
	}
	if m.isLateNight(now) {
		reasons = append(reasons, domain.ReasonLateNight)
	}
	if m.isAffordabilityReached(ctx, accountID, now) {
		reasons = append(reasons, domain.ReasonAffordability)
	}

	if len(reasons) == 0 {
		return nil
	}

	verdict := &domain.RiskVerdict{
		Level:       domain.RiskLevelMedium,
		Reasons:     reasons,
		TriggeredAt: now.UTC(),
	}
	if verdict.HasReason(domain.ReasonLossChasing) || verdict.HasReason(domain.ReasonAffordability) {
		verdict.Level = domain.RiskLevelHigh
	}

	m.log.Info().
		Str("account_id", accountID.String()).
		Str("risk_level", string(verdict.Level)).
		Interface("reasons", verdict.Reasons).
		Msg("risk verdict")

	return verdict
}

// isLossChasing: too many deposits in the trailing window.
func (m *HeuristicRiskMonitor) isLossChasing(ctx context.Context, accountID uuid.UUID, now time.Time) bool {
	entries, err := m.store.QueryHistory(ctx, accountID, ports.HistoryFilter{
		Kinds: []domain.OperationKind{domain.OperationDeposit},
		Since: now.Add(-m.cfg.LossChasingWindow),
	})
	if err != nil {
		m.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("loss chasing history read failed, heuristic degraded")
		return false
	}
	return len(entries) >= m.cfg.LossChasingDeposits
}

// isVelocitySpike: too many debits in the trailing window.
func (m *HeuristicRiskMonitor) isVelocitySpike(ctx context.Context, accountID uuid.UUID, now time.Time) bool {
	entries, err := m.store.QueryHistory(ctx, accountID, ports.HistoryFilter{
		Kinds: []domain.OperationKind{domain.OperationDebit},
		Since: now.Add(-m.cfg.VelocityWindow),
	})
	if err != nil {
		m.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("velocity history read failed, heuristic degraded")
		return false
	}
	return len(entries) >= m.cfg.VelocityDebits
}

// isLateNight: stateless check that the current local hour falls in
// [start, end).
func (m *HeuristicRiskMonitor) isLateNight(now time.Time) bool {
	hour := now.Hour()
	return hour >= m.cfg.LateNightStartHour && hour < m.cfg.LateNightEndHour
}

// isAffordabilityReached: deposits in the trailing window sum to at least
// the affordability threshold.
func (m *HeuristicRiskMonitor) isAffordabilityReached(ctx context.Context, accountID uuid.UUID, now time.Time) bool {
	entries, err := m.store.QueryHistory(ctx, accountID, ports.HistoryFilter{
		Kinds: []domain.OperationKind{domain.OperationDeposit},
		Since: now.Add(-m.cfg.AffordabilityWindow),
	})
	if err != nil {
		m.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("affordability history read failed, heuristic degraded")
		return false
	}
	var sum int64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum >= m.cfg.AffordabilitySum
}
