package core

import "github.com/shopspring/decimal"

// MinBidIncrement is the minimum amount by which a new bid must exceed the
// current balance: one whole unit of the settlement currency in micro
// denomination.
var MinBidIncrement = decimal.NewFromInt(1_000_000)

// Ledger holds the escrowed funds of one auction: the current highest bid
// and the identity that deposited it. At most one bidder's funds are held
// at any time.
type Ledger struct {
	Balance decimal.Decimal `json:"balance"`
	Bidder  string          `json:"bidder,omitempty"`
}

// NewLedger creates an empty ledger
func NewLedger() Ledger {
	return Ledger{Balance: decimal.Zero}
}

// HasBidder reports whether the ledger currently holds a bidder's funds
func (l *Ledger) HasBidder() bool {
	return l.Bidder != ""
}

// CheckBid validates a prospective bid against the current balance without
// mutating the ledger. The fallible fund transfers run between this check
// and Accept.
func (l *Ledger) CheckBid(amount decimal.Decimal, bidder string) error {
	if amount.Sign() <= 0 {
		return ErrInvalidBidAmount
	}
	if l.HasBidder() && bidder == l.Bidder {
		return ErrInvalidBidder
	}
	if amount.Cmp(l.Balance.Add(MinBidIncrement)) < 0 {
		return ErrBidTooLow
	}
	return nil
}

// Accept records a bid that already passed CheckBid and whose funds are in
// custody. It returns the displaced bidder and the amount owed to them, or
// an empty bidder if this is the first bid.
func (l *Ledger) Accept(amount decimal.Decimal, bidder string) (prevBidder string, prevAmount decimal.Decimal) {
	prevBidder = l.Bidder
	prevAmount = l.Balance

	l.Balance = amount
	l.Bidder = bidder

	return prevBidder, prevAmount
}

// Drain performs the one-shot terminal withdrawal: it returns the full
// balance together with its owner and leaves the ledger empty. The caller's
// settled flag guards against a second drain; the ledger itself keeps no
// lifecycle state.
func (l *Ledger) Drain() (decimal.Decimal, string) {
	amount := l.Balance
	bidder := l.Bidder

	l.Balance = decimal.Zero
	l.Bidder = ""

	return amount, bidder
}
