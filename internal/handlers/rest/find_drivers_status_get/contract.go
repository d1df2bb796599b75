//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=find_drivers_status_get_test
package find_drivers_status_get

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
	GetFindDriversStatus(ctx context.Context, freightBidID string) (*entities.FindDriversStatus, error)
}
