package ports

import (
	"context"

	"github.com/layer-3/gavel/core"
)

// AssetRegistry issues, transfers and destroys the assets under auction
// custody. Implementations own the asset metadata; the engine only keeps
// the handle returned by Mint.
type AssetRegistry interface {
	// Mint issues a new asset owned by the given custodian
	Mint(ctx context.Context, custodian, name, description, imageRef string) (core.Asset, error)

	// Transfer moves asset ownership to the given identity
	Transfer(ctx context.Context, assetID, to string) error

	// Burn destroys the asset permanently
	Burn(ctx context.Context, assetID string) error
}
