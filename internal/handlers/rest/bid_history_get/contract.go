//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_history_get_test
package bid_history_get

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
	GetBidHistory(ctx context.Context, customerID string) ([]entities.FreightBid, error)
}
