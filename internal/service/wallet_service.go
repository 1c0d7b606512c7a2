package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"casino-wallet-gateway/internal/core/domain"
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const dedupTTL = 24 * time.Hour

// WalletServiceImpl implements ports.WalletService: the wallet transaction
// engine and the only component permitted to mutate account balances.
//
// Every operation follows the same fixed order: validate, mutate, persist,
// broadcast, risk-evaluate, intervene. Balance truth is the source of record:
// once the balance write commits, no downstream broadcast or risk failure
// unwinds it. Mutations for one account are serialized through a per-account
// lock so concurrent requests cannot lose updates.
type WalletServiceImpl struct {
	accounts      ports.AccountStore
	dedupRepo     ports.DedupStore
	dedupCache    ports.DedupCache
	orchestrator  ports.PaymentOrchestrator
	risk          ports.RiskMonitor
	interventions ports.InterventionDispatcher
	notifier      ports.Notifier
	locks         *accountLocks
	log           zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	accounts ports.AccountStore,
	dedupRepo ports.DedupStore,
	dedupCache ports.DedupCache,
	orchestrator ports.PaymentOrchestrator,
	risk ports.RiskMonitor,
	interventions ports.InterventionDispatcher,
	notifier ports.Notifier,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		accounts:      accounts,
		dedupRepo:     dedupRepo,
		dedupCache:    dedupCache,
		orchestrator:  orchestrator,
		risk:          risk,
		interventions: interventions,
		notifier:      notifier,
		locks:         newAccountLocks(),
		log:           log,
	}
}

// Debit draws a wager from the player's wallet, bonus funds first.
func (s *WalletServiceImpl) Debit(ctx context.Context, req ports.DebitRequest) (*domain.OperationResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	release := s.locks.Acquire(req.UserID)
	defer release()

	// Checked under the account lock so a concurrent duplicate cannot slip
	// past before the first writer records its result.
	dedupKey := domain.BuildDedupKey(req.UserID, req.TransactionID)
	if cached := s.checkDedup(ctx, dedupKey); cached != nil {
		return cached, nil
	}

	account, err := s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrUserNotFound()
	}
	if account.TotalBalance() < req.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	bonusWager, realWager := account.SplitWager(req.Amount)
	updated, err := s.accounts.UpdateBalances(ctx, account.ID, account.Version,
		account.RealBalance-realWager, account.BonusBalance-bonusWager)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("debit balance write: %w", err))
	}

	result := &domain.OperationResult{
		TransactionID: req.TransactionID,
		Balance:       updated.RealBalance,
		BonusBalance:  updated.BonusBalance,
		Currency:      updated.Currency,
	}
	s.recordDedup(ctx, dedupKey, req.UserID, req.TransactionID, result)

	s.log.Info().
		Str("tx_id", req.TransactionID).
		Str("account_id", req.UserID.String()).
		Str("game_id", req.GameID).
		Int64("amount", req.Amount).
		Int64("bonus_wager", bonusWager).
		Int64("real_wager", realWager).
		Msg("debit committed")

	s.afterCommit(ctx, updated, domain.OperationDebit, req.Amount, req.TransactionID, req.OperatorID, "")
	return result, nil
}

// Credit pays a game win into the real balance. Wins never touch bonus funds.
func (s *WalletServiceImpl) Credit(ctx context.Context, req ports.CreditRequest) (*domain.OperationResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	release := s.locks.Acquire(req.UserID)
	defer release()

	dedupKey := domain.BuildDedupKey(req.UserID, req.TransactionID)
	if cached := s.checkDedup(ctx, dedupKey); cached != nil {
		return cached, nil
	}

	account, err := s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrUserNotFound()
	}

	updated, err := s.accounts.UpdateBalances(ctx, account.ID, account.Version,
		account.RealBalance+req.Amount, account.BonusBalance)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("credit balance write: %w", err))
	}

	result := &domain.OperationResult{
		TransactionID: req.TransactionID,
		Balance:       updated.RealBalance,
		BonusBalance:  updated.BonusBalance,
		Currency:      updated.Currency,
	}
	s.recordDedup(ctx, dedupKey, req.UserID, req.TransactionID, result)

	s.log.Info().
		Str("tx_id", req.TransactionID).
		Str("account_id", req.UserID.String()).
		Str("game_id", req.GameID).
		Int64("amount", req.Amount).
		Msg("credit committed")

	s.afterCommit(ctx, updated, domain.OperationCredit, req.Amount, req.TransactionID, req.OperatorID, "")
	return result, nil
}

// Deposit funds the real balance through the payment orchestrator. No balance
// mutation happens unless a provider approves the payment.
func (s *WalletServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*domain.OperationResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrUserNotFound()
	}

	attempt, err := s.orchestrator.Authorize(ctx, ports.AuthorizeRequest{
		AccountID: account.ID,
		Amount:    req.Amount,
		Currency:  account.Currency,
		Country:   account.Country,
		Method:    req.Method,
	})
	if err != nil {
		s.publishPaymentStatus(ctx, account.ID, false, req.Amount, "", err.Error())
		return nil, err
	}

	release := s.locks.Acquire(req.UserID)
	defer release()

	// Re-read under the lock: the pre-authorization read may be stale.
	account, err = s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrUserNotFound()
	}

	updated, err := s.accounts.UpdateBalances(ctx, account.ID, account.Version,
		account.RealBalance+req.Amount, account.BonusBalance)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("deposit balance write: %w", err))
	}

	txID := fmt.Sprintf("DEP-%s-%d", account.ID.String()[:8], time.Now().UnixMilli())
	result := &domain.OperationResult{
		TransactionID: txID,
		Balance:       updated.RealBalance,
		BonusBalance:  updated.BonusBalance,
		Currency:      updated.Currency,
		Provider:      attempt.Provider,
	}

	s.log.Info().
		Str("tx_id", txID).
		Str("account_id", req.UserID.String()).
		Str("provider", attempt.Provider).
		Int64("amount", req.Amount).
		Msg("deposit committed")

	s.publishPaymentStatus(ctx, account.ID, true, req.Amount, attempt.Provider, "")
	s.afterCommit(ctx, updated, domain.OperationDeposit, req.Amount, txID, req.OperatorID, attempt.Provider)
	return result, nil
}

// CreditBonus grants promotional funds to the bonus balance. Broadcasts the
// balance change but runs no risk evaluation, matching the asymmetry in the
// product contract.
func (s *WalletServiceImpl) CreditBonus(ctx context.Context, req ports.BonusCreditRequest) (*domain.OperationResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	release := s.locks.Acquire(req.UserID)
	defer release()

	txID := fmt.Sprintf("BON-%s", req.BonusCode)
	dedupKey := domain.BuildDedupKey(req.UserID, txID)
	if cached := s.checkDedup(ctx, dedupKey); cached != nil {
		return cached, nil
	}

	account, err := s.accounts.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrUserNotFound()
	}

	updated, err := s.accounts.UpdateBalances(ctx, account.ID, account.Version,
		account.RealBalance, account.BonusBalance+req.Amount)
	if err != nil {
		return nil, apperror.ErrStorageError(fmt.Errorf("bonus balance write: %w", err))
	}

	result := &domain.OperationResult{
		TransactionID: txID,
		Balance:       updated.RealBalance,
		BonusBalance:  updated.BonusBalance,
		Currency:      updated.Currency,
	}
	s.recordDedup(ctx, dedupKey, req.UserID, txID, result)

	s.log.Info().
		Str("tx_id", txID).
		Str("account_id", req.UserID.String()).
		Str("bonus_code", req.BonusCode).
		Int64("amount", req.Amount).
		Msg("bonus credit committed")

	s.appendLedger(ctx, updated.ID, domain.OperationBonusCredit, req.Amount, txID, "")
	s.broadcastBalance(ctx, updated, domain.OperationBonusCredit, txID, req.OperatorID)
	return result, nil
}

// afterCommit runs the post-persist side effect chain shared by debit,
// credit and deposit: append history, broadcast the balance, evaluate risk
// and intervene. None of these can fail the committed operation.
func (s *WalletServiceImpl) afterCommit(ctx context.Context, account *domain.Account, kind domain.OperationKind, amount int64, txID, operatorID, provider string) {
	s.appendLedger(ctx, account.ID, kind, amount, txID, provider)
	s.broadcastBalance(ctx, account, kind, txID, operatorID)

	if verdict := s.risk.Evaluate(ctx, account.ID); verdict != nil {
		s.interventions.Handle(ctx, account.ID, verdict)
	}
}

func (s *WalletServiceImpl) appendLedger(ctx context.Context, accountID uuid.UUID, kind domain.OperationKind, amount int64, txID, provider string) {
	entry := &domain.LedgerEntry{
		ID:            uuid.New(),
		AccountID:     accountID,
		Kind:          kind,
		Amount:        amount,
		TransactionID: txID,
		Provider:      provider,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.accounts.AppendEntry(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID.String()).Str("tx_id", txID).Msg("failed to append ledger entry")
	}
}

func (s *WalletServiceImpl) broadcastBalance(ctx context.Context, account *domain.Account, kind domain.OperationKind, txID, operatorID string) {
	event := domain.BalanceChangedEvent{
		AccountID:     account.ID,
		TransactionID: txID,
		Kind:          kind,
		Balance:       account.RealBalance,
		BonusBalance:  account.BonusBalance,
		Currency:      account.Currency,
		OperatorID:    operatorID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.notifier.Publish(ctx, domain.TopicBalanceChanged, event); err != nil {
		s.log.Warn().Err(err).Str("account_id", account.ID.String()).Msg("failed to broadcast balance change")
	}
}

func (s *WalletServiceImpl) publishPaymentStatus(ctx context.Context, accountID uuid.UUID, success bool, amount int64, provider, reason string) {
	event := domain.PaymentStatusEvent{
		AccountID:  accountID,
		Success:    success,
		Amount:     amount,
		Provider:   provider,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.notifier.Publish(ctx, domain.TopicPaymentStatus, event); err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to publish payment status")
	}
}

// checkDedup returns a previously stored result for the key, or nil. Cache
// first, then the durable table; a cache failure falls through to the table.
func (s *WalletServiceImpl) checkDedup(ctx context.Context, key string) *domain.OperationResult {
	cached, err := s.dedupCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("dedup cache check failed, falling through to store")
	}
	if cached == nil {
		cached, err = s.dedupRepo.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dedup store check failed")
			return nil
		}
	}
	if cached == nil {
		return nil
	}

	result := &domain.OperationResult{}
	if err := json.Unmarshal(cached, result); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt dedup snapshot, ignoring")
		return nil
	}
	s.log.Info().Str("key", key).Msg("duplicate transaction replayed from dedup record")
	return result
}

// recordDedup stores the result snapshot, first-writer-wins. Recording is
// best-effort: the balance is already committed.
func (s *WalletServiceImpl) recordDedup(ctx context.Context, key string, accountID uuid.UUID, txID string, result *domain.OperationResult) {
	snapshot, err := json.Marshal(result)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal dedup snapshot")
		return
	}
	if _, err := s.dedupRepo.Put(ctx, key, accountID, txID, snapshot); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to persist dedup record")
	}
	if err := s.dedupCache.Set(ctx, key, snapshot, dedupTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache dedup record")
	}
}
