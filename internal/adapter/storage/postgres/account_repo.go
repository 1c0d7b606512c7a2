package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountStore.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, real_balance, bonus_balance, currency, country, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.RealBalance, a.BonusBalance, a.Currency,
		a.Country, a.Version, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, real_balance, bonus_balance, currency, country, version, created_at, updated_at
		FROM accounts WHERE id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.RealBalance, &a.BonusBalance, &a.Currency,
		&a.Country, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

// UpdateBalances writes new balances conditioned on the version the caller
// read. Returns ports.ErrStaleAccount when another writer raced ahead.
func (r *AccountRepo) UpdateBalances(ctx context.Context, id uuid.UUID, expectedVersion, realBalance, bonusBalance int64) (*domain.Account, error) {
	query := `UPDATE accounts
		SET real_balance = $1, bonus_balance = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4
		RETURNING id, real_balance, bonus_balance, currency, country, version, created_at, updated_at`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, realBalance, bonusBalance, id, expectedVersion).Scan(
		&a.ID, &a.RealBalance, &a.BonusBalance, &a.Currency,
		&a.Country, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrStaleAccount
		}
		return nil, fmt.Errorf("update account balances: %w", err)
	}
	return a, nil
}

// AppendEntry inserts one ledger entry.
func (r *AccountRepo) AppendEntry(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, account_id, kind, amount, transaction_id, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.AccountID, e.Kind, e.Amount, e.TransactionID, e.Provider, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// QueryHistory fetches ledger entries for an account, newest first.
func (r *AccountRepo) QueryHistory(ctx context.Context, accountID uuid.UUID, filter ports.HistoryFilter) ([]domain.LedgerEntry, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("account_id = $%d", argIdx))
	args = append(args, accountID)
	argIdx++

	if len(filter.Kinds) > 0 {
		kinds := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			kinds = append(kinds, fmt.Sprintf("$%d", argIdx))
			args = append(args, k)
			argIdx++
		}
		conditions = append(conditions, fmt.Sprintf("kind IN (%s)", strings.Join(kinds, ", ")))
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, filter.Since)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT id, account_id, kind, amount, transaction_id, provider, created_at
		FROM ledger_entries WHERE %s ORDER BY created_at DESC`, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger history: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e := domain.LedgerEntry{}
		err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.TransactionID, &e.Provider, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}
