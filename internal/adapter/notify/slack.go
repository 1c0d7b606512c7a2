package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"casino-wallet-gateway/internal/core/domain"
)

// HTTPClient is the subset of *http.Client the sinks need. Tests substitute a
// recording implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SlackSink relays operator alerts to a Slack incoming webhook. It only
// handles the ops alert topic and ignores everything else.
type SlackSink struct {
	webhookURL string
	client     HTTPClient
}

// NewSlackSink creates a Slack webhook sink.
func NewSlackSink(webhookURL string, client HTTPClient) *SlackSink {
	return &SlackSink{webhookURL: webhookURL, client: client}
}

// Publish posts the alert text to the webhook. Non-ops topics are a no-op.
func (s *SlackSink) Publish(ctx context.Context, topic string, payload any) error {
	if topic != domain.TopicOpsAlert {
		return nil
	}
	alert, ok := payload.(domain.OpsAlertEvent)
	if !ok {
		return fmt.Errorf("unexpected ops alert payload type %T", payload)
	}

	body, err := json.Marshal(map[string]string{"text": alert.Text})
	if err != nil {
		return fmt.Errorf("marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}
	return nil
}
