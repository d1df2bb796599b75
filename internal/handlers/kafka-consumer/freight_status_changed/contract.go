//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=freight_status_changed_test
package freight_status_changed

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
	ProcessFreightStatusChange(ctx context.Context, freightBidID string, status entities.FreightStatusType) error
}
