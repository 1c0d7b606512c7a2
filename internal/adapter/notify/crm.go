package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"casino-wallet-gateway/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// tokenRenewalMargin renews the service token before it actually expires so
// an in-flight request never carries a token about to lapse.
const tokenRenewalMargin = 30 * time.Second

// CRMSink pushes risk flags and payment outcomes to the CRM over HTTP,
// authenticated with a short-lived HS256 service token. Other topics are
// ignored.
type CRMSink struct {
	baseURL     string
	tokenSecret []byte
	tokenTTL    time.Duration
	client      HTTPClient
	now         func() time.Time

	mu          sync.Mutex
	cachedToken string
	tokenExpiry time.Time
}

// NewCRMSink creates a CRM notification sink.
func NewCRMSink(baseURL string, tokenSecret string, tokenTTL time.Duration, client HTTPClient) *CRMSink {
	return &CRMSink{
		baseURL:     baseURL,
		tokenSecret: []byte(tokenSecret),
		tokenTTL:    tokenTTL,
		client:      client,
		now:         time.Now,
	}
}

// Publish delivers CRM-bound events. Non-CRM topics are a no-op.
func (s *CRMSink) Publish(ctx context.Context, topic string, payload any) error {
	var path string
	switch topic {
	case domain.TopicRiskFlag:
		path = "/api/v1/risk-flags"
	case domain.TopicPaymentStatus:
		path = "/api/v1/payment-events"
	default:
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal crm event: %w", err)
	}

	token, err := s.serviceToken()
	if err != nil {
		return fmt.Errorf("issue crm service token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build crm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post crm event: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("crm returned %d for %s", resp.StatusCode, path)
	}
	return nil
}

// serviceToken returns a signed HS256 token, reusing the cached one until it
// nears expiry.
func (s *CRMSink) serviceToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cachedToken != "" && now.Before(s.tokenExpiry.Add(-tokenRenewalMargin)) {
		return s.cachedToken, nil
	}

	expiry := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    "casino-wallet-gateway",
		Subject:   "wallet-engine",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.tokenSecret)
	if err != nil {
		return "", err
	}

	s.cachedToken = token
	s.tokenExpiry = expiry
	return token, nil
}
