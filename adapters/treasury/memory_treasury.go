package treasury

import (
	"context"
	"sync"

	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/ports"
	"github.com/shopspring/decimal"
)

// MemoryTreasury is an in-memory implementation of the Treasury interface,
// keeping one balance per account
type MemoryTreasury struct {
	balances map[string]decimal.Decimal
	mu       sync.RWMutex
}

// NewMemoryTreasury creates a new in-memory treasury
func NewMemoryTreasury() *MemoryTreasury {
	return &MemoryTreasury{
		balances: make(map[string]decimal.Decimal),
	}
}

// Fund credits an account directly, outside of escrow flows. Used to seed
// bidder balances.
func (t *MemoryTreasury) Fund(account string, amount decimal.Decimal) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.balances[account] = t.balances[account].Add(amount)
}

// Withdraw debits an account, moving the amount into escrow custody
func (t *MemoryTreasury) Withdraw(ctx context.Context, account string, amount decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	balance := t.balances[account]
	if balance.Cmp(amount) < 0 {
		return core.ErrInsufficientFunds
	}
	t.balances[account] = balance.Sub(amount)

	return nil
}

// Deposit credits an account from escrow custody
func (t *MemoryTreasury) Deposit(ctx context.Context, account string, amount decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.balances[account] = t.balances[account].Add(amount)

	return nil
}

// Balance returns the current balance of an account
func (t *MemoryTreasury) Balance(account string) decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.balances[account]
}

var _ ports.Treasury = (*MemoryTreasury)(nil)
