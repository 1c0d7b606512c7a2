package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Publisher implements ports.Notifier over Redis pub/sub. Events carry their
// topic as the channel name and a JSON-encoded payload, so downstream
// consumers (game UI, CRM bridge, ops tooling) subscribe by topic pattern.
type Publisher struct {
	client *goredis.Client
}

// NewPublisher creates a Redis pub/sub event publisher.
func NewPublisher(client *goredis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish encodes the payload as JSON and publishes it on the topic channel.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	if err := p.client.Publish(ctx, topic, body).Err(); err != nil {
		return fmt.Errorf("publish event on %s: %w", topic, err)
	}
	return nil
}
