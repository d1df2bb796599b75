// Package dto содержит модели запросов и ответов HTTP API.
package dto

import "time"

type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type FreightBidCreate struct {
	Pickup      Location `json:"pickup"`
	Delivery    Location `json:"delivery"`
	TruckTypeID string   `json:"truck_type_id"`
	CategoryID  string   `json:"category_id,omitempty"`
	BedTypeID   string   `json:"bed_type_id,omitempty"`
	UseTagIDs   []string `json:"use_tag_ids,omitempty"`
}

type FreightBidUpdate struct {
	Pickup      *Location `json:"pickup,omitempty"`
	Delivery    *Location `json:"delivery,omitempty"`
	TruckTypeID *string   `json:"truck_type_id,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty"`
	BedTypeID   *string   `json:"bed_type_id,omitempty"`
	UseTagIDs   *[]string `json:"use_tag_ids,omitempty"`
}

type FreightBid struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Pickup      Location  `json:"pickup"`
	Delivery    Location  `json:"delivery"`
	TruckTypeID string    `json:"truck_type_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	BedTypeID   string    `json:"bed_type_id,omitempty"`
	UseTagIDs   []string  `json:"use_tag_ids,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DriverBidCreate struct {
	TruckID     string `json:"truck_id"`
	AmountCents int64  `json:"amount_cents"`
	Message     string `json:"message,omitempty"`
}

type DriverBid struct {
	ID           string    `json:"id"`
	FreightBidID string    `json:"freight_bid_id"`
	DriverID     string    `json:"driver_id"`
	TruckID      string    `json:"truck_id"`
	AmountCents  int64     `json:"amount_cents"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssignRequest struct {
	DriverBidID string `json:"driver_bid_id"`
}

type Assignment struct {
	FreightBidID string    `json:"freight_bid_id"`
	DriverBidID  string    `json:"driver_bid_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type FindDriversStatus struct {
	DriversFound      bool      `json:"drivers_found"`
	TotalDriversFound int64     `json:"total_drivers_found"`
	RequestTime       time.Time `json:"request_time"`
	StatusMessage     string    `json:"status_message"`
}

type FreightBidDetails struct {
	FreightBid    FreightBid  `json:"freight_bid"`
	DriverBids    []DriverBid `json:"driver_bids"`
	AssignedBidID *string     `json:"assigned_bid_id,omitempty"`
	AssignedAt    *time.Time  `json:"assigned_at,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
