package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/layer-3/gavel/ports"
)

// Topics for the auction lifecycle event stream
const (
	TopicAuctionCreated = "auction.created"
	TopicBidPlaced      = "auction.bid_placed"
	TopicAuctionEnded   = "auction.ended"
	TopicAuctionSettled = "auction.settled"
)

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishAuctionCreated publishes an auction-created event
func (p *WatermillPublisher) PublishAuctionCreated(ctx context.Context, event ports.AuctionCreated) error {
	return p.publish(TopicAuctionCreated, event)
}

// PublishBidPlaced publishes a bid-placed event
func (p *WatermillPublisher) PublishBidPlaced(ctx context.Context, event ports.BidPlaced) error {
	return p.publish(TopicBidPlaced, event)
}

// PublishAuctionEnded publishes an auction-ended event
func (p *WatermillPublisher) PublishAuctionEnded(ctx context.Context, event ports.AuctionEnded) error {
	return p.publish(TopicAuctionEnded, event)
}

// PublishAuctionSettled publishes an auction-settled event
func (p *WatermillPublisher) PublishAuctionSettled(ctx context.Context, event ports.AuctionSettled) error {
	return p.publish(TopicAuctionSettled, event)
}

func (p *WatermillPublisher) publish(topic string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
