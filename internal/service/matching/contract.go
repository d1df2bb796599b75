//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"
	"time"

	"freightbid/internal/entities"
)

type FreightBidRepository interface {
	GetByID(ctx context.Context, id string) (*entities.FreightBid, error)
	UpdateStatusWhereCurrent(ctx context.Context, id string, to entities.FreightStatusType, from ...entities.FreightStatusType) (int64, error)
}

type DriverBidRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DriverBid, error)
	CountByFreightBidID(ctx context.Context, freightBidID string) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, freightBidID, driverBidID string) (*entities.Assignment, error)
	GetByFreightBidID(ctx context.Context, freightBidID string) (*entities.Assignment, error)
}

type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
