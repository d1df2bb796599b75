//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freightevents_test
package freightevents

import (
	"context"

	"freightbid/internal/entities"
)

type FreightBidService interface {
	CancelFreightBid(ctx context.Context, id string, customerID string) (*entities.FreightBid, error)
	CompleteFreightBid(ctx context.Context, id string) (*entities.FreightBid, error)
}

type (
	ExecuteFn      func(ctx context.Context, freightBidID string) error
	HandlerFactory interface {
		GetHandler(status entities.FreightStatusType) (ExecuteFn, error)
	}
)
