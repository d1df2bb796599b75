//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driverbid_test
package driverbid

import (
	"context"

	"freightbid/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverBidModify entities.DriverBidModify) (*entities.DriverBid, error)
	GetByID(ctx context.Context, id string) (*entities.DriverBid, error)
	GetByFreightBidID(ctx context.Context, freightBidID string) ([]entities.DriverBid, error)
	GetFreightBidStatus(ctx context.Context, freightBidID string) (entities.FreightStatusType, error)
	Delete(ctx context.Context, id string) error
}

type StatusCache interface {
	InvalidateFindDriversStatus(ctx context.Context, freightBidID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
