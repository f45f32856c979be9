package store

import (
	"context"
	"sync"

	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/ports"
)

// MemoryStore is an in-memory implementation of the AuctionStore interface
type MemoryStore struct {
	auctions map[string]*core.Auction
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]*core.Auction),
	}
}

// Save commits the auction state, overwriting any previous snapshot
func (s *MemoryStore) Save(ctx context.Context, auction *core.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auctions[auction.ID] = auction.Clone()

	return nil
}

// Find returns the stored snapshot for the given auction id
func (s *MemoryStore) Find(ctx context.Context, id string) (*core.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[id]
	if !ok {
		return nil, core.ErrAuctionNotFound
	}

	return auction.Clone(), nil
}

var _ ports.AuctionStore = (*MemoryStore)(nil)
