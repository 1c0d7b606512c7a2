package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"
)

// HTTPClient is the subset of *http.Client the adapters need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPProvider calls an external payment processor over its HTTP charge API.
// A transport or 5xx failure is returned as an error (transient, retryable);
// an explicit DECLINED answer is a terminal ChargeResult.
type HTTPProvider struct {
	name   string
	url    string
	apiKey string
	client HTTPClient
}

// NewHTTPProvider creates a charge client for one configured processor.
func NewHTTPProvider(name, url, apiKey string, client HTTPClient) *HTTPProvider {
	return &HTTPProvider{name: name, url: url, apiKey: apiKey, client: client}
}

type chargeRequestBody struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method,omitempty"`
}

type chargeResponseBody struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Charge performs a single charge attempt.
func (p *HTTPProvider) Charge(ctx context.Context, req ports.ChargeRequest) (*ports.ChargeResult, error) {
	body, err := json.Marshal(chargeRequestBody{
		AccountID: req.AccountID.String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s charge call: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%s returned %d", p.name, resp.StatusCode)
	}

	var answer chargeResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("decode %s charge response: %w", p.name, err)
	}

	if answer.Status == string(domain.PaymentStatusApproved) {
		return &ports.ChargeResult{Status: domain.PaymentStatusApproved}, nil
	}
	reason := answer.Reason
	if reason == "" {
		reason = fmt.Sprintf("declined by %s", p.name)
	}
	return &ports.ChargeResult{Status: domain.PaymentStatusFailed, Reason: reason}, nil
}
