package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/ports"
)

type record struct {
	asset core.Asset
	owner string
}

// MemoryRegistry is an in-memory implementation of the AssetRegistry
// interface
type MemoryRegistry struct {
	assets map[string]*record
	mu     sync.RWMutex
}

// NewMemoryRegistry creates a new in-memory asset registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		assets: make(map[string]*record),
	}
}

// Mint issues a new asset owned by the given custodian
func (r *MemoryRegistry) Mint(ctx context.Context, custodian, name, description, imageRef string) (core.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset := core.Asset{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		ImageRef:    imageRef,
	}
	r.assets[asset.ID] = &record{asset: asset, owner: custodian}

	return asset, nil
}

// Transfer moves asset ownership to the given identity
func (r *MemoryRegistry) Transfer(ctx context.Context, assetID, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.assets[assetID]
	if !ok {
		return core.ErrAssetNotFound
	}
	rec.owner = to

	return nil
}

// Burn destroys the asset permanently
func (r *MemoryRegistry) Burn(ctx context.Context, assetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[assetID]; !ok {
		return core.ErrAssetNotFound
	}
	delete(r.assets, assetID)

	return nil
}

// Owner returns the current owner of an asset. Useful for tests and
// inspection; not part of the AssetRegistry interface.
func (r *MemoryRegistry) Owner(assetID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.assets[assetID]
	if !ok {
		return "", false
	}
	return rec.owner, true
}

var _ ports.AssetRegistry = (*MemoryRegistry)(nil)
