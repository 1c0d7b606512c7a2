package ports

import (
	"context"
	"errors"
	"time"

	"casino-wallet-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ErrStaleAccount is returned by UpdateBalances when the expected version no
// longer matches, i.e. another writer got there first.
var ErrStaleAccount = errors.New("account version is stale")

// HistoryFilter narrows a ledger history query.
type HistoryFilter struct {
	Kinds []domain.OperationKind // empty = all kinds
	Since time.Time              // zero = unbounded
}

// AccountStore defines persistence operations for player accounts and their
// ledger history. Read methods return (nil, nil) when the record is missing.
type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// UpdateBalances writes new balances conditioned on the version read
	// earlier. Returns ErrStaleAccount on a lost race.
	UpdateBalances(ctx context.Context, id uuid.UUID, expectedVersion, realBalance, bonusBalance int64) (*domain.Account, error)
	AppendEntry(ctx context.Context, entry *domain.LedgerEntry) error
	QueryHistory(ctx context.Context, accountID uuid.UUID, filter HistoryFilter) ([]domain.LedgerEntry, error)
}

// DedupStore is the durable first-writer-wins transaction deduplication table.
type DedupStore interface {
	// Get returns the stored result snapshot for key, or nil if unseen.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the snapshot unless the key exists. Returns false when an
	// earlier writer already claimed the key.
	Put(ctx context.Context, key string, accountID uuid.UUID, transactionID string, snapshot []byte) (bool, error)
}

// DedupCache is the fast-path deduplication check in front of DedupStore.
type DedupCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil if absent
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
