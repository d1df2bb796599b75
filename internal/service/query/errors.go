package query

import "errors"

var (
	ErrInvalidFreightBidID = errors.New("invalid freight bid id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")

	ErrFreightBidNotFound = errors.New("freight bid not found")
)
