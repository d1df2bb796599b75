package freightbid

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFreightBidID   = errors.New("invalid freight bid id")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrUnknownReference      = errors.New("unknown reference")

	ErrFreightBidNotFound = errors.New("freight bid not found")
	ErrBidClosed          = errors.New("freight bid is closed")
	ErrNotOwner           = errors.New("freight bid belongs to another customer")
)
