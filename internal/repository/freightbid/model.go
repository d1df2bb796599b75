package freightbid

import "time"

type FreightBidDB struct {
	ID              string
	CustomerID      string
	PickupAddress   string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	TruckTypeID     string
	CategoryID      string
	BedTypeID       string
	UseTagIDs       []string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type FreightBidModifyDB struct {
	ID              *string
	CustomerID      *string
	PickupAddress   *string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryAddress *string
	DeliveryLat     *float64
	DeliveryLng     *float64
	TruckTypeID     *string
	CategoryID      *string
	BedTypeID       *string
	UseTagIDs       *[]string
	Status          *string
}
