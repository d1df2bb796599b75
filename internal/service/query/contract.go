//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=query_test
package query

import (
	"context"

	"freightbid/internal/entities"
)

type FreightBidRepository interface {
	GetByID(ctx context.Context, id string) (*entities.FreightBid, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]entities.FreightBid, error)
}

type DriverBidRepository interface {
	GetByFreightBidID(ctx context.Context, freightBidID string) ([]entities.DriverBid, error)
}

type AssignmentRepository interface {
	GetByFreightBidID(ctx context.Context, freightBidID string) (*entities.Assignment, error)
}

type TxManager interface {
	DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
}
