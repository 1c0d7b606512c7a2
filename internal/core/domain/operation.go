package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OperationKind identifies the kind of wallet mutation.
type OperationKind string

const (
	OperationDebit       OperationKind = "DEBIT"
	OperationCredit      OperationKind = "CREDIT"
	OperationDeposit     OperationKind = "DEPOSIT"
	OperationBonusCredit OperationKind = "BONUS_CREDIT"
)

// LedgerEntry is one historical wallet mutation, appended after every
// committed operation. The risk monitor's heuristics query these.
type LedgerEntry struct {
	ID            uuid.UUID     `json:"id"`
	AccountID     uuid.UUID     `json:"account_id"`
	Kind          OperationKind `json:"kind"`
	Amount        int64         `json:"amount"` // minor units
	TransactionID string        `json:"transaction_id"`
	Provider      string        `json:"provider,omitempty"` // deposits only
	CreatedAt     time.Time     `json:"created_at"`
}

// OperationResult is the balance snapshot returned to the caller after a
// successful wallet operation.
type OperationResult struct {
	TransactionID string `json:"transaction_id"`
	Balance       int64  `json:"balance"`
	BonusBalance  int64  `json:"bonus_balance"`
	Currency      string `json:"currency"`
	Provider      string `json:"provider,omitempty"` // deposits only
}

// BuildDedupKey builds the first-writer-wins deduplication key for a
// caller-supplied transaction id.
func BuildDedupKey(accountID uuid.UUID, transactionID string) string {
	return fmt.Sprintf("%s:%s", accountID, transactionID)
}
