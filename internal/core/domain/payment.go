package domain

// PaymentStatus is the outcome of one provider call.
type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusFailed   PaymentStatus = "FAILED"
)

// PaymentAttempt is the ephemeral record of a single provider call. It is
// reported to analytics and discarded; it is never ledger truth.
type PaymentAttempt struct {
	Provider  string        `json:"provider"`
	Status    PaymentStatus `json:"status"`
	LatencyMs int64         `json:"latency_ms"`
	Amount    int64         `json:"amount"` // minor units
	Country   string        `json:"country"`
}

// Approved reports whether the attempt was accepted by the provider.
func (p *PaymentAttempt) Approved() bool {
	return p.Status == PaymentStatusApproved
}
