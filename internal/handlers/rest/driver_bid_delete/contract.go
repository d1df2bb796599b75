//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_bid_delete_test
package driver_bid_delete

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
	DeleteDriverBid(ctx context.Context, id string, driverID string) error
}
