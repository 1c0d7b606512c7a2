package notify

import (
	"context"

	"casino-wallet-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Multi fans one publish out to several sinks. A sink that declines the topic
// is skipped; a sink that fails is logged and does not block the others. The
// first error is returned so callers can record it.
type Multi struct {
	sinks []ports.Notifier
	log   zerolog.Logger
}

// NewMulti creates a fan-out notifier over the given sinks.
func NewMulti(log zerolog.Logger, sinks ...ports.Notifier) *Multi {
	return &Multi{sinks: sinks, log: log}
}

// Publish delivers the event to every sink in order.
func (m *Multi) Publish(ctx context.Context, topic string, payload any) error {
	var firstErr error
	for _, sink := range m.sinks {
		if err := sink.Publish(ctx, topic, payload); err != nil {
			m.log.Warn().Err(err).Str("topic", topic).Msg("notification sink failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
