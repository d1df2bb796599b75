package assignment

import "time"

type AssignmentDB struct {
	FreightBidID string
	DriverBidID  string
	AssignedAt   time.Time
}
