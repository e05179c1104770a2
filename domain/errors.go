package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrUnauthorized     = errors.New("Unauthorized")
)

// AuctionError is a failure kind of the auction state machine. Callers tell
// kinds apart with errors.Is, wrapping keeps the kind.
type AuctionError struct {
	Code string
	Msg  string
}

func (e *AuctionError) Error() string {
	return e.Code + " " + e.Msg
}

var (
	ErrNotAdmin             = &AuctionError{"ERR:NA", "caller is not admin"}
	ErrNotHolder            = &AuctionError{"ERR:NH", "caller holds no asset of a qualifying collection"}
	ErrBidTooLow            = &AuctionError{"ERR:NE", "bid amount too low"}
	ErrNotHighestBidder     = &AuctionError{"ERR:HB", "caller is not the highest bidder"}
	ErrAlreadySettled       = &AuctionError{"ERR:AS", "listing already settled"}
	ErrListingNotExpired    = &AuctionError{"ERR:NX", "listing not expired yet"}
	ErrListingExpired       = &AuctionError{"ERR:EX", "listing expired"}
	ErrAssetTransferDenied  = &AuctionError{"ERR:AT", "asset transfer denied"}
	ErrEscrowTransferFailed = &AuctionError{"ERR:ET", "escrow transfer failed"}
	ErrListingNotFound      = &AuctionError{"ERR:LN", "listing not found"}
)

// AsAuctionError returns the auction error kind carried by err, if any.
func AsAuctionError(err error) (*AuctionError, bool) {
	var ae *AuctionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
