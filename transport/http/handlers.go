package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/layer-3/gavel/core"
	"github.com/layer-3/gavel/service"
	"github.com/shopspring/decimal"
)

// AuctionHandlers contains HTTP handlers for auction endpoints
type AuctionHandlers struct {
	auctionService *service.AuctionService
}

// NewAuctionHandlers creates new auction handlers
func NewAuctionHandlers(auctionService *service.AuctionService) *AuctionHandlers {
	return &AuctionHandlers{
		auctionService: auctionService,
	}
}

// Create handles auction creation
func (h *AuctionHandlers) Create(c *gin.Context) {
	var req struct {
		Creator       string `json:"creator" binding:"required"`
		DurationMs    int64  `json:"duration_ms" binding:"required"`
		AssetName     string `json:"asset_name" binding:"required"`
		AssetDesc     string `json:"asset_description"`
		AssetImageRef string `json:"asset_image_ref"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !common.IsHexAddress(req.Creator) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator address"})
		return
	}

	token := c.GetString(authorityTokenKey)

	auction, err := h.auctionService.Create(c.Request.Context(), service.CreateParams{
		Caller:         req.Creator,
		AuthorityToken: token,
		Duration:       time.Duration(req.DurationMs) * time.Millisecond,
		AssetName:      req.AssetName,
		AssetDesc:      req.AssetDesc,
		AssetImageRef:  req.AssetImageRef,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMsg := "Failed to create auction"

		switch {
		case errors.Is(err, core.ErrNotAuthorized):
			statusCode = http.StatusUnauthorized
			errorMsg = "Not authorized to create auctions"
		case errors.Is(err, core.ErrDurationTooShort):
			statusCode = http.StatusBadRequest
			errorMsg = "Auction duration too short"
		case errors.Is(err, core.ErrDurationTooLong):
			statusCode = http.StatusBadRequest
			errorMsg = "Auction duration too long"
		}

		c.JSON(statusCode, gin.H{"error": errorMsg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"auction_id":    auction.ID,
		"asset_id":      auction.Asset.ID,
		"creator":       auction.Creator,
		"start_time_ms": auction.StartTime.UnixMilli(),
		"end_time_ms":   auction.EndTime.UnixMilli(),
	})
}

// PlaceBid handles a bid on an open auction
func (h *AuctionHandlers) PlaceBid(c *gin.Context) {
	var req struct {
		Bidder string `json:"bidder" binding:"required"`
		Amount string `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !common.IsHexAddress(req.Bidder) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bidder address"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bid amount"})
		return
	}

	err = h.auctionService.PlaceBid(c.Request.Context(), c.Param("id"), req.Bidder, amount)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMsg := "Failed to place bid"

		switch {
		case errors.Is(err, core.ErrAuctionNotFound):
			statusCode = http.StatusNotFound
			errorMsg = "Auction not found"
		case errors.Is(err, core.ErrAuctionSettled):
			statusCode = http.StatusConflict
			errorMsg = "Auction already settled"
		case errors.Is(err, core.ErrAuctionEnded):
			statusCode = http.StatusConflict
			errorMsg = "Auction has ended"
		case errors.Is(err, core.ErrInvalidBidAmount):
			statusCode = http.StatusBadRequest
			errorMsg = "Invalid bid amount"
		case errors.Is(err, core.ErrBidTooLow):
			statusCode = http.StatusBadRequest
			errorMsg = "Bid too low"
		case errors.Is(err, core.ErrInvalidBidder):
			statusCode = http.StatusBadRequest
			errorMsg = "Highest bidder cannot outbid themselves"
		case errors.Is(err, core.ErrInsufficientFunds):
			statusCode = http.StatusPaymentRequired
			errorMsg = "Insufficient funds"
		}

		c.JSON(statusCode, gin.H{"error": errorMsg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bid accepted"})
}

// End handles auction settlement
func (h *AuctionHandlers) End(c *gin.Context) {
	var req struct {
		Caller string `json:"caller" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !common.IsHexAddress(req.Caller) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caller address"})
		return
	}

	err := h.auctionService.End(c.Request.Context(), c.Param("id"), req.Caller)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMsg := "Failed to end auction"

		switch {
		case errors.Is(err, core.ErrAuctionNotFound):
			statusCode = http.StatusNotFound
			errorMsg = "Auction not found"
		case errors.Is(err, core.ErrNotAuthorized):
			statusCode = http.StatusForbidden
			errorMsg = "Only the creator may end the auction"
		case errors.Is(err, core.ErrAuctionNotEnded):
			statusCode = http.StatusConflict
			errorMsg = "Auction has not ended yet"
		case errors.Is(err, core.ErrAuctionSettled):
			statusCode = http.StatusConflict
			errorMsg = "Auction already settled"
		}

		c.JSON(statusCode, gin.H{"error": errorMsg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Auction settled"})
}

// Get returns the auction snapshot
func (h *AuctionHandlers) Get(c *gin.Context) {
	auction, err := h.auctionService.GetAuction(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, core.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load auction"})
		return
	}

	c.JSON(http.StatusOK, auction)
}

// Status returns the auction view evaluated at the current time
func (h *AuctionHandlers) Status(c *gin.Context) {
	status, err := h.auctionService.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, core.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load auction"})
		return
	}

	c.JSON(http.StatusOK, status)
}
