package driverbid

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFreightBidID   = errors.New("invalid freight bid id")
	ErrInvalidDriverBidID    = errors.New("invalid driver bid id")
	ErrInvalidAmount         = errors.New("invalid amount")

	ErrFreightBidNotFound = errors.New("freight bid not found")
	ErrDriverBidNotFound  = errors.New("driver bid not found")
	ErrBidClosed          = errors.New("freight bid is closed")
	ErrBidAssigned        = errors.New("driver bid is assigned")
	ErrNotOwner           = errors.New("driver bid belongs to another driver")
)
