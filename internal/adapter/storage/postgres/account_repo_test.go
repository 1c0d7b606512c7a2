package postgres

import (
	"context"
	"testing"
	"time"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount() *domain.Account {
	return &domain.Account{
		ID:           uuid.New(),
		RealBalance:  50000,
		BonusBalance: 5000,
		Currency:     "EUR",
		Country:      "MT",
		Version:      1,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func accountColumns() []string {
	return []string{"id", "real_balance", "bonus_balance", "currency", "country", "version", "created_at", "updated_at"}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns()).AddRow(
		a.ID, a.RealBalance, a.BonusBalance, a.Currency,
		a.Country, a.Version, a.CreatedAt, a.UpdatedAt,
	)
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.ID, a.RealBalance, a.BonusBalance, a.Currency,
			a.Country, a.Version, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	result, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, int64(50000), result.RealBalance)
	assert.Equal(t, int64(5000), result.BonusBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdateBalances(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()
	updated := *a
	updated.RealBalance = 49000
	updated.BonusBalance = 0
	updated.Version = 2

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(49000), int64(0), a.ID, int64(1)).
		WillReturnRows(accountRow(&updated))

	result, err := repo.UpdateBalances(context.Background(), a.ID, 1, 49000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(49000), result.RealBalance)
	assert.Equal(t, int64(0), result.BonusBalance)
	assert.Equal(t, int64(2), result.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdateBalances_StaleVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(49000), int64(0), id, int64(1)).
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	result, err := repo.UpdateBalances(context.Background(), id, 1, 49000, 0)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ports.ErrStaleAccount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_AppendEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	entry := &domain.LedgerEntry{
		ID:            uuid.New(),
		AccountID:     uuid.New(),
		Kind:          domain.OperationDebit,
		Amount:        1000,
		TransactionID: "tx-1",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO ledger_entries").
		WithArgs(entry.ID, entry.AccountID, entry.Kind, entry.Amount,
			entry.TransactionID, entry.Provider, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.AppendEntry(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_QueryHistory_WithFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	accountID := uuid.New()
	since := time.Now().UTC().Add(-24 * time.Hour)

	rows := pgxmock.NewRows([]string{"id", "account_id", "kind", "amount", "transaction_id", "provider", "created_at"}).
		AddRow(uuid.New(), accountID, domain.OperationDeposit, int64(10000), "DEP-1", "Adyen", time.Now().UTC()).
		AddRow(uuid.New(), accountID, domain.OperationDeposit, int64(20000), "DEP-2", "Stripe", time.Now().UTC())

	mock.ExpectQuery("SELECT .+ FROM ledger_entries WHERE account_id .+ kind IN .+ created_at").
		WithArgs(accountID, domain.OperationDeposit, since).
		WillReturnRows(rows)

	entries, err := repo.QueryHistory(context.Background(), accountID, ports.HistoryFilter{
		Kinds: []domain.OperationKind{domain.OperationDeposit},
		Since: since,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Adyen", entries[0].Provider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_QueryHistory_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM ledger_entries WHERE account_id").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "kind", "amount", "transaction_id", "provider", "created_at"}))

	entries, err := repo.QueryHistory(context.Background(), accountID, ports.HistoryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
