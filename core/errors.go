package core

import "errors"

var (
	// ErrNotAuthorized is returned when the caller may not perform the operation
	ErrNotAuthorized = errors.New("caller is not authorized")

	// ErrDurationTooShort is returned when an auction duration is not positive
	ErrDurationTooShort = errors.New("auction duration too short")

	// ErrDurationTooLong is returned when an auction duration exceeds MaxDuration
	ErrDurationTooLong = errors.New("auction duration too long")

	// ErrAuctionSettled is returned when the auction has already been settled
	ErrAuctionSettled = errors.New("auction already settled")

	// ErrAuctionEnded is returned when a bid arrives outside the bidding window
	ErrAuctionEnded = errors.New("auction has ended")

	// ErrAuctionNotEnded is returned when settlement is requested before the window closes
	ErrAuctionNotEnded = errors.New("auction has not ended yet")

	// ErrInvalidBidAmount is returned when a bid amount is not positive
	ErrInvalidBidAmount = errors.New("invalid bid amount")

	// ErrBidTooLow is returned when a bid does not clear the current balance plus the minimum increment
	ErrBidTooLow = errors.New("bid too low")

	// ErrInvalidBidder is returned when the current highest bidder tries to outbid themselves
	ErrInvalidBidder = errors.New("invalid bidder")

	// ErrNoWinner is returned when settlement finds funds but no bidder to award the asset to
	ErrNoWinner = errors.New("no winner for a funded auction")

	// ErrAuctionNotFound is returned when no auction exists for the given id
	ErrAuctionNotFound = errors.New("auction not found")

	// ErrInsufficientFunds is returned when an account cannot cover a withdrawal
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAssetNotFound is returned when the registry has no asset for the given handle
	ErrAssetNotFound = errors.New("asset not found")

	// ErrStoreOperationFailed is returned when the auction store rejects a commit
	ErrStoreOperationFailed = errors.New("store operation failed")
)
