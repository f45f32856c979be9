package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Treasury moves funds between bidder accounts and the auction escrow.
// Both operations are fallible; the service runs them inside a saga with
// compensations so a failed transfer never leaves the escrow holding zero
// or two bidders' funds.
type Treasury interface {
	// Withdraw debits an account, moving the amount into escrow custody
	Withdraw(ctx context.Context, account string, amount decimal.Decimal) error

	// Deposit credits an account from escrow custody (refund or payout)
	Deposit(ctx context.Context, account string, amount decimal.Decimal) error
}
