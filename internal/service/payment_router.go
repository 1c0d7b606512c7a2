package service

import "casino-wallet-gateway/config"

// CountryRouter implements ports.PaymentRouter from a static routing table.
// Pure and deterministic: same (country, amount) always yields the same
// sequence. Amounts are in minor units.
type CountryRouter struct {
	routing             map[string][]string
	defaultSequence     []string
	largeAmountLimit    int64
	openBankingProvider string
}

// NewCountryRouter creates a router from payment configuration.
func NewCountryRouter(cfg config.PaymentConfig) *CountryRouter {
	return &CountryRouter{
		routing:             cfg.Routing,
		defaultSequence:     cfg.DefaultSequence,
		largeAmountLimit:    cfg.LargeAmountThreshold,
		openBankingProvider: cfg.OpenBankingProvider,
	}
}

// ProviderSequence returns the ordered provider candidates for a deposit.
// Unlisted countries fall back to the default sequence. Amounts above the
// large-amount threshold promote the open-banking provider to the front,
// preserving the relative order of the rest and dropping duplicates.
func (r *CountryRouter) ProviderSequence(country string, amount int64) []string {
	base, ok := r.routing[country]
	if !ok {
		base = r.defaultSequence
	}

	if amount <= r.largeAmountLimit {
		out := make([]string, len(base))
		copy(out, base)
		return out
	}

	out := make([]string, 0, len(base)+1)
	out = append(out, r.openBankingProvider)
	for _, p := range base {
		if p != r.openBankingProvider {
			out = append(out, p)
		}
	}
	return out
}
