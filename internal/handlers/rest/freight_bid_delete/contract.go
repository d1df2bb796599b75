//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_bid_delete_test
package freight_bid_delete

import (
	"context"

	"freightbid/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteFreightBid(ctx context.Context, id string, customerID string) error
}
