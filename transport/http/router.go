package http

import (
	"github.com/gin-gonic/gin"
	"github.com/layer-3/gavel/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(auctionService *service.AuctionService) *gin.Engine {
	router := gin.Default()

	// Create handlers
	handlers := NewAuctionHandlers(auctionService)

	// Auction routes
	auctions := router.Group("/auctions")
	{
		auctions.POST("", AuthorityMiddleware(), handlers.Create)
		auctions.POST("/:id/bids", handlers.PlaceBid)
		auctions.POST("/:id/end", handlers.End)
		auctions.GET("/:id", handlers.Get)
		auctions.GET("/:id/status", handlers.Status)
	}

	return router
}
