package domain

import "time"

// RiskLevel classifies how urgently intervention is warranted.
type RiskLevel string

const (
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// RiskReason names one triggered heuristic.
type RiskReason string

const (
	ReasonLossChasing   RiskReason = "LOSS_CHASING"
	ReasonVelocitySpike RiskReason = "VELOCITY_SPIKE"
	ReasonLateNight     RiskReason = "LATE_NIGHT_SESSION"
	ReasonAffordability RiskReason = "AFFORDABILITY_THRESHOLD"
)

// RiskVerdict is the result of evaluating an account's recent activity.
// Computed fresh after every wallet mutation, never persisted.
type RiskVerdict struct {
	Level       RiskLevel    `json:"risk_level"`
	Reasons     []RiskReason `json:"reasons"`
	TriggeredAt time.Time    `json:"triggered_at"`
}

// HasReason reports whether the verdict includes the given heuristic.
func (v *RiskVerdict) HasReason(r RiskReason) bool {
	for _, reason := range v.Reasons {
		if reason == r {
			return true
		}
	}
	return false
}
