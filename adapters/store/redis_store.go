package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of the AuctionStore interface.
// Snapshots are stored as JSON without expiry so settled auctions stay
// available for historical queries.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis store
func NewRedisStore(client *redis.Client) ports.AuctionStore {
	return &RedisStore{
		client: client,
		prefix: "gavel:auction:",
	}
}

// Save commits the auction state, overwriting any previous snapshot
func (s *RedisStore) Save(ctx context.Context, auction *core.Auction) error {
	payload, err := json.Marshal(auction)
	if err != nil {
		return fmt.Errorf("failed to marshal auction: %w", err)
	}

	key := s.prefix + auction.ID
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	return nil
}

// Find returns the stored snapshot for the given auction id
func (s *RedisStore) Find(ctx context.Context, id string) (*core.Auction, error) {
	key := s.prefix + id

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, core.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("%w: %v", core.ErrStoreOperationFailed, err)
	}

	var auction core.Auction
	if err := json.Unmarshal(payload, &auction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auction: %w", err)
	}

	return &auction, nil
}

var _ ports.AuctionStore = (*RedisStore)(nil)
