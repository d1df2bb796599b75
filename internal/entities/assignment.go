package entities

import "time"

// Assignment связывает ровно одну ставку водителя с заявкой на перевозку.
// Запись создается не более одного раза на FreightBid.
type Assignment struct {
	FreightBidID string
	DriverBidID  string
	AssignedAt   time.Time
}

// FindDriversStatus - производный снимок активности ставок, нигде не хранится.
type FindDriversStatus struct {
	DriversFound      bool
	TotalDriversFound int64
	RequestTime       time.Time
	StatusMessage     string
}

// FreightBidDetails - проекция для чтения: заявка вместе с упорядоченными
// ставками водителей и id выигравшей ставки, если назначение состоялось.
type FreightBidDetails struct {
	FreightBid    FreightBid
	DriverBids    []DriverBid
	AssignedBidID *string
	AssignedAt    *time.Time
}
