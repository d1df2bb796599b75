package matching

import "errors"

var (
	ErrInvalidFreightBidID = errors.New("invalid freight bid id")
	ErrInvalidDriverBidID  = errors.New("invalid driver bid id")

	ErrFreightBidNotFound = errors.New("freight bid not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDriverBidNotFound  = errors.New("driver bid not found")
	ErrBidMismatch        = errors.New("driver bid does not belong to freight bid")
	ErrAlreadyAssigned    = errors.New("freight bid already assigned")
	ErrBidClosed          = errors.New("freight bid is closed")
	ErrNotOwner           = errors.New("freight bid belongs to another customer")
)
