package entities

import "time"

type DriverBid struct {
	ID           string
	FreightBidID string
	DriverID     string
	TruckID      string
	AmountCents  int64
	Message      string
	CreatedAt    time.Time
}

type DriverBidModify struct {
	ID           *string
	FreightBidID *string
	DriverID     *string
	TruckID      *string
	AmountCents  *int64
	Message      *string
}
