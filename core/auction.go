package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxDuration is the longest bidding window an auction may be created with
const MaxDuration = 48 * time.Hour

// Asset is the non-fungible item under custody of one auction
type Asset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref"`
}

// Auction is the state machine for one auctioned item. It owns one escrow
// ledger and, until settlement, one asset. All methods are pure state
// transitions; fund and asset transfers are orchestrated by the service
// around them.
type Auction struct {
	ID        string    `json:"id"`
	Creator   string    `json:"creator"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Asset     *Asset    `json:"asset,omitempty"` // nil once extracted at settlement
	Ledger    Ledger    `json:"ledger"`
	Settled   bool      `json:"settled"`
}

// Settlement describes the terminal disposition of an auction's asset and
// funds, computed before any external transfer is attempted.
type Settlement struct {
	Asset    Asset
	Winner   string
	Proceeds decimal.Decimal
	Burned   bool
}

// ValidateDuration checks that a bidding window is positive and within
// MaxDuration
func ValidateDuration(duration time.Duration) error {
	if duration <= 0 {
		return ErrDurationTooShort
	}
	if duration > MaxDuration {
		return ErrDurationTooLong
	}
	return nil
}

// NewAuction creates an auction opening at now and closing after duration
func NewAuction(id, creator string, asset Asset, now time.Time, duration time.Duration) (*Auction, error) {
	if err := ValidateDuration(duration); err != nil {
		return nil, err
	}

	return &Auction{
		ID:        id,
		Creator:   creator,
		StartTime: now,
		EndTime:   now.Add(duration),
		Asset:     &asset,
		Ledger:    NewLedger(),
	}, nil
}

// CheckBid validates a prospective bid against the auction lifecycle and the
// ledger without mutating either.
func (a *Auction) CheckBid(bidder string, amount decimal.Decimal, now time.Time) error {
	if a.Settled {
		return ErrAuctionSettled
	}
	if now.Before(a.StartTime) || !now.Before(a.EndTime) {
		return ErrAuctionEnded
	}
	return a.Ledger.CheckBid(amount, bidder)
}

// AcceptBid records a bid that passed CheckBid and whose funds are already
// in custody, returning the displaced bidder and the refund owed to them.
func (a *Auction) AcceptBid(bidder string, amount decimal.Decimal) (prevBidder string, prevAmount decimal.Decimal) {
	return a.Ledger.Accept(amount, bidder)
}

// CheckEnd validates a settlement request without mutating the auction
func (a *Auction) CheckEnd(caller string, now time.Time) error {
	if caller != a.Creator {
		return ErrNotAuthorized
	}
	if now.Before(a.EndTime) {
		return ErrAuctionNotEnded
	}
	if a.Settled {
		return ErrAuctionSettled
	}
	return nil
}

// SettlementPlan computes the terminal disposition without applying it: a
// zero balance means the asset is burned, otherwise the asset goes to the
// highest bidder and the balance to the creator. A funded ledger with no
// bidder is unreachable under the ledger invariant but checked anyway.
func (a *Auction) SettlementPlan() (Settlement, error) {
	if a.Asset == nil {
		return Settlement{}, ErrAuctionSettled
	}

	if a.Ledger.Balance.Sign() == 0 {
		return Settlement{Asset: *a.Asset, Proceeds: decimal.Zero, Burned: true}, nil
	}

	if !a.Ledger.HasBidder() {
		return Settlement{}, ErrNoWinner
	}

	return Settlement{
		Asset:    *a.Asset,
		Winner:   a.Ledger.Bidder,
		Proceeds: a.Ledger.Balance,
	}, nil
}

// Settle applies the terminal transition: the settled flag flips, the asset
// slot empties and the ledger drains. Irreversible; the settled guard in
// CheckEnd makes any retry fail cleanly.
func (a *Auction) Settle() {
	a.Settled = true
	a.Asset = nil
	a.Ledger.Drain()
}

// HighestBid returns the current ledger balance
func (a *Auction) HighestBid() decimal.Decimal {
	return a.Ledger.Balance
}

// HighestBidder returns the identity owning the current balance, if any
func (a *Auction) HighestBidder() (string, bool) {
	return a.Ledger.Bidder, a.Ledger.HasBidder()
}

// IsOpen reports whether the auction currently accepts bids
func (a *Auction) IsOpen(now time.Time) bool {
	return !a.Settled && !now.Before(a.StartTime) && now.Before(a.EndTime)
}

// HasEnded reports whether the auction is settled or past its window
func (a *Auction) HasEnded(now time.Time) bool {
	return a.Settled || !now.Before(a.EndTime)
}

// Clone returns an independent copy used for copy-mutate-commit updates
func (a *Auction) Clone() *Auction {
	c := *a
	if a.Asset != nil {
		asset := *a.Asset
		c.Asset = &asset
	}
	return &c
}
