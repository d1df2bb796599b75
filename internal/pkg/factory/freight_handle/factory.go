package freight_handle

import (
	"context"
	"fmt"

	"freightbid/internal/entities"
	"freightbid/internal/service/freightevents"
)

type StatusHandlerFactory struct {
	freightBidService freightevents.FreightBidService
}

func NewStatusHandlerFactory(freightBidService freightevents.FreightBidService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		freightBidService: freightBidService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.FreightStatusType) (freightevents.ExecuteFn, error) {
	switch status {
	case entities.FreightCancelled:
		return f.cancelledHandler, nil
	case entities.FreightCompleted:
		return f.completedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", freightevents.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, freightBidID string) error {
	// Внутренний вызов, проверка владельца не нужна.
	_, err := f.freightBidService.CancelFreightBid(ctx, freightBidID, "")
	if err != nil {
		return fmt.Errorf("cancel freight bid %s: %w", freightBidID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, freightBidID string) error {
	_, err := f.freightBidService.CompleteFreightBid(ctx, freightBidID)
	if err != nil {
		return fmt.Errorf("complete freight bid %s: %w", freightBidID, err)
	}
	return nil
}
