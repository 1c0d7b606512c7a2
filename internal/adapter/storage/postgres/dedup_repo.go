package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DedupRepo implements ports.DedupStore on the wallet_dedup table. The
// primary key on dedup_key makes Put first-writer-wins without locking.
type DedupRepo struct {
	pool Pool
}

// NewDedupRepo creates a new DedupRepo.
func NewDedupRepo(pool Pool) *DedupRepo {
	return &DedupRepo{pool: pool}
}

// Get fetches the stored result snapshot for key, or nil if the key is unseen.
func (r *DedupRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT snapshot FROM wallet_dedup WHERE dedup_key = $1`

	var snapshot []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&snapshot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dedup record: %w", err)
	}
	return snapshot, nil
}

// Put stores the snapshot unless the key already exists. Returns false when
// an earlier writer claimed the key first.
func (r *DedupRepo) Put(ctx context.Context, key string, accountID uuid.UUID, transactionID string, snapshot []byte) (bool, error) {
	query := `INSERT INTO wallet_dedup (dedup_key, account_id, transaction_id, snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (dedup_key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, key, accountID, transactionID, snapshot, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert dedup record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
