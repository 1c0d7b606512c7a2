package integration

import (
	"context"
	"fmt"
	"sync"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/google/uuid"
)

// inMemoryAccountStore is a thread-safe AccountStore with the same
// version-conditioned update semantics as the PostgreSQL implementation.
type inMemoryAccountStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
	entries  []domain.LedgerEntry
}

func newInMemoryAccountStore() *inMemoryAccountStore {
	return &inMemoryAccountStore{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (s *inMemoryAccountStore) Create(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.accounts[a.ID] = &cp
	return nil
}

func (s *inMemoryAccountStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *inMemoryAccountStore) UpdateBalances(_ context.Context, id uuid.UUID, expectedVersion, realBalance, bonusBalance int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s not found", id)
	}
	if a.Version != expectedVersion {
		return nil, ports.ErrStaleAccount
	}
	a.RealBalance = realBalance
	a.BonusBalance = bonusBalance
	a.Version++
	cp := *a
	return &cp, nil
}

func (s *inMemoryAccountStore) AppendEntry(_ context.Context, e *domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *inMemoryAccountStore) QueryHistory(_ context.Context, accountID uuid.UUID, filter ports.HistoryFilter) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.AccountID != accountID {
			continue
		}
		if len(filter.Kinds) > 0 && !containsKind(filter.Kinds, e.Kind) {
			continue
		}
		if !filter.Since.IsZero() && e.CreatedAt.Before(filter.Since) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func containsKind(kinds []domain.OperationKind, k domain.OperationKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// inMemoryDedupStore is a first-writer-wins DedupStore.
type inMemoryDedupStore struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

func newInMemoryDedupStore() *inMemoryDedupStore {
	return &inMemoryDedupStore{snapshots: make(map[string][]byte)}
}

func (s *inMemoryDedupStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots[key]
	if !ok {
		return nil, nil
	}
	return snapshot, nil
}

func (s *inMemoryDedupStore) Put(_ context.Context, key string, _ uuid.UUID, _ string, snapshot []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.snapshots[key]; exists {
		return false, nil
	}
	s.snapshots[key] = snapshot
	return true, nil
}

// recordingNotifier captures every published event, by topic.
type recordingNotifier struct {
	mu     sync.Mutex
	events map[string][]any
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(map[string][]any)}
}

func (n *recordingNotifier) Publish(_ context.Context, topic string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events[topic] = append(n.events[topic], payload)
	return nil
}

func (n *recordingNotifier) byTopic(topic string) []any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]any(nil), n.events[topic]...)
}

// chargeOutcome scripts one answer from a provider.
type chargeOutcome struct {
	result *ports.ChargeResult
	err    error
}

// scriptedProvider replays a fixed sequence of charge outcomes; the last
// outcome repeats once the script is exhausted.
type scriptedProvider struct {
	mu       sync.Mutex
	outcomes []chargeOutcome
	calls    int
}

func (p *scriptedProvider) Charge(context.Context, ports.ChargeRequest) (*ports.ChargeResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.calls
	if idx >= len(p.outcomes) {
		idx = len(p.outcomes) - 1
	}
	p.calls++
	o := p.outcomes[idx]
	return o.result, o.err
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// staticRegistry is a fixed name-to-client table.
type staticRegistry map[string]ports.ProviderClient

func (r staticRegistry) Client(name string) (ports.ProviderClient, bool) {
	c, ok := r[name]
	return c, ok
}
