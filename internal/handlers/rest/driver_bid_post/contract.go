//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_bid_post_test
package driver_bid_post

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
	CreateDriverBid(ctx context.Context, driverBidModify entities.DriverBidModify) (*entities.DriverBid, error)
}
