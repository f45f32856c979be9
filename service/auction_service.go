package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/google/uuid"
	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/ports"
	"github.com/shopspring/decimal"
)

// AuctionService drives the auction lifecycle. Every mutating operation on
// one auction runs under that auction's mutex and either fully commits or
// fully fails: external transfers execute as a saga whose compensations run
// in reverse on any step failure, and the in-memory state is only swapped
// after the store commit succeeds.
type AuctionService struct {
	registry   ports.AssetRegistry
	authorizer ports.Authorizer
	clock      ports.Clock
	treasury   ports.Treasury
	store      ports.AuctionStore
	events     ports.EventPublisher
	logger     watermill.LoggerAdapter

	auctions map[string]*auctionEntry
	mu       sync.RWMutex
}

// auctionEntry serializes all mutations of one auction instance
type auctionEntry struct {
	auction *core.Auction
	mu      sync.Mutex
}

// CreateParams describes a new auction and the metadata of the asset minted
// for it
type CreateParams struct {
	Caller         string
	AuthorityToken string
	Duration       time.Duration
	AssetName      string
	AssetDesc      string
	AssetImageRef  string
}

// Status is the read-only view of an auction evaluated at the current time
type Status struct {
	AuctionID     string          `json:"auction_id"`
	Creator       string          `json:"creator"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	Settled       bool            `json:"settled"`
	HighestBid    decimal.Decimal `json:"highest_bid"`
	HighestBidder string          `json:"highest_bidder,omitempty"`
	IsOpen        bool            `json:"is_open"`
	HasEnded      bool            `json:"has_ended"`
	Asset         *core.Asset     `json:"asset,omitempty"`
}

// NewAuctionService creates a new auction service
func NewAuctionService(
	registry ports.AssetRegistry,
	authorizer ports.Authorizer,
	clock ports.Clock,
	treasury ports.Treasury,
	store ports.AuctionStore,
	events ports.EventPublisher,
	logger watermill.LoggerAdapter,
) *AuctionService {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &AuctionService{
		registry:   registry,
		authorizer: authorizer,
		clock:      clock,
		treasury:   treasury,
		store:      store,
		events:     events,
		logger:     logger,
		auctions:   make(map[string]*auctionEntry),
	}
}

// Create mints one asset and opens an auction over it. The caller must hold
// a valid authority token.
func (s *AuctionService) Create(ctx context.Context, params CreateParams) (*core.Auction, error) {
	authorized, err := s.authorizer.IsAuthorized(ctx, params.Caller, params.AuthorityToken)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, core.ErrNotAuthorized
	}

	if err := core.ValidateDuration(params.Duration); err != nil {
		return nil, err
	}

	id := uuid.New().String()

	// The auction itself is the asset custodian until settlement
	asset, err := s.registry.Mint(ctx, id, params.AssetName, params.AssetDesc, params.AssetImageRef)
	if err != nil {
		return nil, err
	}

	auction, err := core.NewAuction(id, params.Caller, asset, s.clock.Now(), params.Duration)
	if err != nil {
		return nil, errors.Join(err, s.registry.Burn(ctx, asset.ID))
	}

	if err := s.store.Save(ctx, auction); err != nil {
		return nil, errors.Join(err, s.registry.Burn(ctx, asset.ID))
	}

	s.mu.Lock()
	s.auctions[id] = &auctionEntry{auction: auction}
	s.mu.Unlock()

	s.publishCreated(ctx, auction)

	return auction.Clone(), nil
}

// PlaceBid deposits a new highest bid, refunding the displaced bidder in
// the same transaction. Transfer order: the new bidder's funds enter
// custody first, then the previous bidder is refunded, then the state
// commits; a failure at any step unwinds the earlier transfers.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, bidder string, amount decimal.Decimal) error {
	entry, err := s.entry(ctx, auctionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	auction := entry.auction
	now := s.clock.Now()

	if err := auction.CheckBid(bidder, amount, now); err != nil {
		return err
	}

	prevBidder := auction.Ledger.Bidder
	prevAmount := auction.Ledger.Balance

	if err := s.treasury.Withdraw(ctx, bidder, amount); err != nil {
		return err
	}

	if prevBidder != "" {
		if err := s.treasury.Deposit(ctx, prevBidder, prevAmount); err != nil {
			// Refund failed: hand the new bidder's funds back and abort
			return errors.Join(err, s.treasury.Deposit(ctx, bidder, amount))
		}
	}

	next := auction.Clone()
	next.AcceptBid(bidder, amount)

	if err := s.store.Save(ctx, next); err != nil {
		// Unwind both transfers before surfacing the commit failure
		compErr := s.treasury.Deposit(ctx, bidder, amount)
		if prevBidder != "" {
			compErr = errors.Join(compErr, s.treasury.Withdraw(ctx, prevBidder, prevAmount))
		}
		return errors.Join(err, compErr)
	}

	entry.auction = next

	s.publishBidPlaced(ctx, next, bidder, amount, prevBidder, prevAmount)

	return nil
}

// End settles the auction: creator-only, time-gated, once. A funded auction
// sends the asset to the highest bidder and the proceeds to the creator; an
// unfunded one destroys the asset. The settled guard makes a retry after
// success fail with ErrAuctionSettled.
func (s *AuctionService) End(ctx context.Context, auctionID, caller string) error {
	entry, err := s.entry(ctx, auctionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	auction := entry.auction
	now := s.clock.Now()

	if err := auction.CheckEnd(caller, now); err != nil {
		return err
	}

	plan, err := auction.SettlementPlan()
	if err != nil {
		return err
	}

	if plan.Burned {
		if err := s.registry.Burn(ctx, plan.Asset.ID); err != nil {
			return err
		}
	} else {
		if err := s.registry.Transfer(ctx, plan.Asset.ID, plan.Winner); err != nil {
			return err
		}
		if err := s.treasury.Deposit(ctx, auction.Creator, plan.Proceeds); err != nil {
			// Payout failed: return the asset to custody and abort
			return errors.Join(err, s.registry.Transfer(ctx, plan.Asset.ID, auction.ID))
		}
	}

	next := auction.Clone()
	next.Settle()

	if err := s.store.Save(ctx, next); err != nil {
		if plan.Burned {
			// The asset is already gone; the commit failure can only be surfaced
			return err
		}
		compErr := errors.Join(
			s.registry.Transfer(ctx, plan.Asset.ID, auction.ID),
			s.treasury.Withdraw(ctx, auction.Creator, plan.Proceeds),
		)
		return errors.Join(err, compErr)
	}

	entry.auction = next

	if plan.Burned {
		s.publishSettled(ctx, auctionID)
	} else {
		s.publishEnded(ctx, auctionID, plan)
	}

	return nil
}

// GetAuction returns a read-only copy of the auction state. Settled
// auctions evicted from memory are served from the store.
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (*core.Auction, error) {
	entry, err := s.entry(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.auction.Clone(), nil
}

// GetStatus returns the auction view evaluated against the current time
func (s *AuctionService) GetStatus(ctx context.Context, auctionID string) (Status, error) {
	auction, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return Status{}, err
	}

	now := s.clock.Now()
	bidder, _ := auction.HighestBidder()

	return Status{
		AuctionID:     auction.ID,
		Creator:       auction.Creator,
		StartTime:     auction.StartTime,
		EndTime:       auction.EndTime,
		Settled:       auction.Settled,
		HighestBid:    auction.HighestBid(),
		HighestBidder: bidder,
		IsOpen:        auction.IsOpen(now),
		HasEnded:      auction.HasEnded(now),
		Asset:         auction.Asset,
	}, nil
}

// entry returns the serialization entry for an auction, restoring it from
// the store when not resident in memory
func (s *AuctionService) entry(ctx context.Context, auctionID string) (*auctionEntry, error) {
	s.mu.RLock()
	entry, ok := s.auctions[auctionID]
	s.mu.RUnlock()
	if ok {
		return entry, nil
	}

	auction, err := s.store.Find(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.auctions[auctionID]; ok {
		return existing, nil
	}
	entry = &auctionEntry{auction: auction}
	s.auctions[auctionID] = entry

	return entry, nil
}

func (s *AuctionService) publishCreated(ctx context.Context, auction *core.Auction) {
	event := ports.AuctionCreated{
		AuctionID: auction.ID,
		AssetID:   auction.Asset.ID,
		Creator:   auction.Creator,
		StartTime: auction.StartTime.UnixMilli(),
		EndTime:   auction.EndTime.UnixMilli(),
	}
	if err := s.events.PublishAuctionCreated(ctx, event); err != nil {
		s.logger.Error("failed to publish auction created event", err, watermill.LogFields{"auction_id": auction.ID})
	}
}

func (s *AuctionService) publishBidPlaced(ctx context.Context, auction *core.Auction, bidder string, amount decimal.Decimal, prevBidder string, prevAmount decimal.Decimal) {
	event := ports.BidPlaced{
		AuctionID:      auction.ID,
		Bidder:         bidder,
		Amount:         amount,
		PreviousBidder: prevBidder,
		PreviousAmount: prevAmount,
	}
	if err := s.events.PublishBidPlaced(ctx, event); err != nil {
		s.logger.Error("failed to publish bid placed event", err, watermill.LogFields{"auction_id": auction.ID})
	}
}

func (s *AuctionService) publishEnded(ctx context.Context, auctionID string, plan core.Settlement) {
	event := ports.AuctionEnded{
		AuctionID:  auctionID,
		Winner:     plan.Winner,
		WinningBid: plan.Proceeds,
		AssetID:    plan.Asset.ID,
	}
	if err := s.events.PublishAuctionEnded(ctx, event); err != nil {
		s.logger.Error("failed to publish auction ended event", err, watermill.LogFields{"auction_id": auctionID})
	}
}

func (s *AuctionService) publishSettled(ctx context.Context, auctionID string) {
	event := ports.AuctionSettled{
		AuctionID:   auctionID,
		AssetBurned: true,
	}
	if err := s.events.PublishAuctionSettled(ctx, event); err != nil {
		s.logger.Error("failed to publish auction settled event", err, watermill.LogFields{"auction_id": auctionID})
	}
}
