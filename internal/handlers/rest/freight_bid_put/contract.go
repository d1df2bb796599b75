//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_bid_put_test
package freight_bid_put

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
	UpdateFreightBid(ctx context.Context, freightBidModify entities.FreightBidModify, customerID string) (*entities.FreightBid, error)
}
