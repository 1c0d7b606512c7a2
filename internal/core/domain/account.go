package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a player's wallet: real money plus promotional bonus
// funds. All amounts are in minor currency units (cents).
//
// Invariant: RealBalance >= 0 and BonusBalance >= 0 after every committed
// operation. Balances are mutated exclusively through the wallet engine.
type Account struct {
	ID           uuid.UUID `json:"id"`
	RealBalance  int64     `json:"real_balance"`
	BonusBalance int64     `json:"bonus_balance"`
	Currency     string    `json:"currency"` // ISO 4217
	Country      string    `json:"country"`  // ISO 3166-1 alpha-2, drives payment routing
	Version      int64     `json:"-"`        // optimistic concurrency token
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TotalBalance returns the combined spendable funds.
func (a *Account) TotalBalance() int64 {
	return a.RealBalance + a.BonusBalance
}

// SplitWager applies the bonus-first wagering policy to a debit of amount.
// Bonus funds are consumed before real funds.
func (a *Account) SplitWager(amount int64) (bonusWager, realWager int64) {
	bonusWager = amount
	if a.BonusBalance < amount {
		bonusWager = a.BonusBalance
	}
	return bonusWager, amount - bonusWager
}
