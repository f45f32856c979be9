package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/layer-3/gavel/adapters/authorizer"
	"github.com/layer-3/gavel/adapters/clock"
	"github.com/layer-3/gavel/adapters/events"
	"github.com/layer-3/gavel/adapters/registry"
	"github.com/layer-3/gavel/adapters/store"
	"github.com/layer-3/gavel/adapters/treasury"
	"github.com/layer-3/gavel/service"
	"github.com/layer-3/gavel/transport/http"
	"github.com/redis/go-redis/v9"
)

func main() {
	signKey := loadSignKey()

	// Get Redis URL from environment
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	redisClient := redis.NewClient(opts)

	// Initialize Watermill Redis publisher
	logger := watermill.NewStdLogger(false, false)
	publisher, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{
			Client: redisClient,
		},
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create Redis publisher: %v", err)
	}

	jwtAuthorizer := authorizer.NewJWTAuthorizer(signKey)

	// Bootstrap an authority token for the configured administrator
	if admin := os.Getenv("AUTHORITY_ADDRESS"); admin != "" {
		token, err := jwtAuthorizer.IssueToken(admin, 0)
		if err != nil {
			log.Fatalf("Failed to issue authority token: %v", err)
		}
		log.Printf("Authority token for %s: %s", admin, token)
	}

	auctionService := service.NewAuctionService(
		registry.NewMemoryRegistry(),
		jwtAuthorizer,
		clock.NewSystemClock(),
		treasury.NewMemoryTreasury(),
		store.NewRedisStore(redisClient),
		events.NewWatermillPublisher(publisher),
		logger,
	)

	// Setup Gin router
	router := http.SetupRouter(auctionService)

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":9000"
	}

	// Start server
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadSignKey loads the ES256 signing key from the PEM file named by
// AUTHORITY_KEY_FILE, or generates an ephemeral P-256 key
func loadSignKey() *ecdsa.PrivateKey {
	if keyFile := os.Getenv("AUTHORITY_KEY_FILE"); keyFile != "" {
		raw, err := os.ReadFile(keyFile)
		if err != nil {
			log.Fatalf("Failed to read AUTHORITY_KEY_FILE: %v", err)
		}
		block, _ := pem.Decode(raw)
		if block == nil {
			log.Fatalf("AUTHORITY_KEY_FILE does not contain a PEM block")
		}
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			log.Fatalf("Failed to parse EC private key: %v", err)
		}
		return key
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	return key
}
