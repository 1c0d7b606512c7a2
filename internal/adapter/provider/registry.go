package provider

import (
	"casino-wallet-gateway/config"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// stripeProviderName is the routing-table name reserved for the Stripe SDK
// adapter; every other name resolves to a generic HTTP endpoint.
const stripeProviderName = "Stripe"

// Registry implements ports.ProviderRegistry: an immutable name-to-client
// table assembled at startup. No module-level state.
type Registry struct {
	clients map[string]ports.ProviderClient
}

// NewRegistry creates a registry over an explicit client table.
func NewRegistry(clients map[string]ports.ProviderClient) *Registry {
	return &Registry{clients: clients}
}

// Client resolves a provider by its routing name.
func (r *Registry) Client(name string) (ports.ProviderClient, bool) {
	c, ok := r.clients[name]
	return c, ok
}

// NewRegistryFromConfig assembles the registry from configuration: one HTTP
// adapter per configured endpoint, plus the Stripe SDK adapter when a secret
// key is present.
func NewRegistryFromConfig(cfg config.PaymentConfig, httpClient HTTPClient, log zerolog.Logger) *Registry {
	clients := make(map[string]ports.ProviderClient, len(cfg.Providers)+1)
	for name, endpoint := range cfg.Providers {
		clients[name] = NewHTTPProvider(name, endpoint.URL, endpoint.APIKey, httpClient)
		log.Info().Str("provider", name).Str("url", endpoint.URL).Msg("payment provider registered")
	}
	if cfg.StripeSecretKey != "" {
		clients[stripeProviderName] = NewStripeProvider(cfg.StripeSecretKey)
		log.Info().Str("provider", stripeProviderName).Msg("payment provider registered")
	}
	return &Registry{clients: clients}
}
