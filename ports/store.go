package ports

import (
	"context"

	"github.com/layer-3/gavel/core"
)

// AuctionStore persists auction snapshots. The host environment guarantees
// each Save commits atomically; settled auctions remain readable for
// historical queries.
type AuctionStore interface {
	// Save commits the auction state, overwriting any previous snapshot
	Save(ctx context.Context, auction *core.Auction) error

	// Find returns the stored snapshot for the given auction id
	Find(ctx context.Context, id string) (*core.Auction, error)
}
