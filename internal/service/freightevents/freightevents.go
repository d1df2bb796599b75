package freightevents

import (
	"context"
	"errors"
	"fmt"

	"freightbid/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessFreightStatusChange(ctx context.Context, freightBidID string, status entities.FreightStatusType) error {
	if freightBidID == "" || status == "" {
		return fmt.Errorf("freight bid id and status are required")
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, freightBidID); err != nil {
		return err
	}

	return nil
}
