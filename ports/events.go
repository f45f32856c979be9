package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// AuctionCreated is emitted once per auction at creation
type AuctionCreated struct {
	AuctionID string `json:"auction_id"`
	AssetID   string `json:"asset_id"`
	Creator   string `json:"creator"`
	StartTime int64  `json:"start_time_ms"`
	EndTime   int64  `json:"end_time_ms"`
}

// BidPlaced is emitted for every accepted bid. It carries the displaced
// bidder and amount so observers can reconstruct the full bid history from
// the event stream alone; the auction itself retains only the current high
// bid.
type BidPlaced struct {
	AuctionID      string          `json:"auction_id"`
	Bidder         string          `json:"bidder"`
	Amount         decimal.Decimal `json:"amount"`
	PreviousBidder string          `json:"previous_bidder,omitempty"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
}

// AuctionEnded is emitted when a funded auction settles
type AuctionEnded struct {
	AuctionID  string          `json:"auction_id"`
	Winner     string          `json:"winner"`
	WinningBid decimal.Decimal `json:"winning_bid"`
	AssetID    string          `json:"asset_id"`
}

// AuctionSettled is emitted when an unfunded auction settles and its asset
// is destroyed
type AuctionSettled struct {
	AuctionID   string `json:"auction_id"`
	AssetBurned bool   `json:"asset_burned"`
}

// EventPublisher publishes auction lifecycle events to observers. Delivery
// is fire-and-forget: the engine logs publish failures but never fails an
// operation on them.
type EventPublisher interface {
	PublishAuctionCreated(ctx context.Context, event AuctionCreated) error
	PublishBidPlaced(ctx context.Context, event BidPlaced) error
	PublishAuctionEnded(ctx context.Context, event AuctionEnded) error
	PublishAuctionSettled(ctx context.Context, event AuctionSettled) error
}
