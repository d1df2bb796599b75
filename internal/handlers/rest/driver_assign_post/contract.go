//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_assign_post_test
package driver_assign_post

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
	AssignDriver(ctx context.Context, freightBidID, driverBidID, customerID string) (*entities.Assignment, error)
}
