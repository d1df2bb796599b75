package entities

import "time"

type Location struct {
	Address string
	Lat     *float64
	Lng     *float64
}

type FreightBid struct {
	ID          string
	CustomerID  string
	Pickup      Location
	Delivery    Location
	TruckTypeID string
	CategoryID  string
	BedTypeID   string
	UseTagIDs   []string
	Status      FreightStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type FreightStatusType string

const (
	FreightOpen      FreightStatusType = "open"
	FreightAssigned  FreightStatusType = "assigned"
	FreightCancelled FreightStatusType = "cancelled"
	FreightCompleted FreightStatusType = "completed"
)

func (s FreightStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы.
func (s FreightStatusType) IsTerminal() bool {
	return s == FreightCancelled || s == FreightCompleted
}

type FreightBidModify struct {
	ID          *string
	CustomerID  *string
	Pickup      *Location
	Delivery    *Location
	TruckTypeID *string
	CategoryID  *string
	BedTypeID   *string
	UseTagIDs   *[]string
	Status      *FreightStatusType
}
