//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freightbid_test
package freightbid

import (
	"context"
	"time"

	"freightbid/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, freightBidModify entities.FreightBidModify) (*entities.FreightBid, error)
	GetByID(ctx context.Context, id string) (*entities.FreightBid, error)
	Update(ctx context.Context, freightBidModify entities.FreightBidModify) (*entities.FreightBid, error)
	UpdateStatusWhereCurrent(ctx context.Context, id string, to entities.FreightStatusType, from ...entities.FreightStatusType) (int64, error)
	Delete(ctx context.Context, id string) error
	CancelOpenCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CatalogGateway interface {
	ReferenceExists(ctx context.Context, kind entities.ReferenceKind, id string) (bool, error)
}

type StatusCache interface {
	InvalidateFindDriversStatus(ctx context.Context, freightBidID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
