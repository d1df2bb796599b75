//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_bid_cancel_post_test
package freight_bid_cancel_post

import (
	"context"

	"freightbid/internal/entities"
	"freightbid/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelFreightBid(ctx context.Context, id string, customerID string) (*entities.FreightBid, error)
}
