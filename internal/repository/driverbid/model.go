package driverbid

import "time"

type DriverBidDB struct {
	ID           string
	FreightBidID string
	DriverID     string
	TruckID      string
	AmountCents  int64
	Message      string
	CreatedAt    time.Time
}

type DriverBidModifyDB struct {
	ID           *string
	FreightBidID *string
	DriverID     *string
	TruckID      *string
	AmountCents  *int64
	Message      *string
}
