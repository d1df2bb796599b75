//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_bids_get_test
package driver_bids_get

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
	ListDriverBids(ctx context.Context, freightBidID string) ([]entities.DriverBid, error)
}
