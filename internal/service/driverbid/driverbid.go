package driverbid

import (
	"context"
	"fmt"

	"freightbid/internal/entities"
)

type DriverBid struct {
	repository  Repository
	statusCache StatusCache
	txManager   TxManager
}

func New(repository Repository, statusCache StatusCache, txManager TxManager) *DriverBid {
	return &DriverBid{
		repository:  repository,
		statusCache: statusCache,
		txManager:   txManager,
	}
}

func (s *DriverBid) CreateDriverBid(ctx context.Context, driverBidModify entities.DriverBidModify) (*entities.DriverBid, error) {
	if driverBidModify.FreightBidID == nil ||
		driverBidModify.DriverID == nil ||
		driverBidModify.TruckID == nil ||
		driverBidModify.AmountCents == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidBidID(*driverBidModify.FreightBidID) {
		return nil, ErrInvalidFreightBidID
	}
	if !isValidDriverID(*driverBidModify.DriverID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidTruckID(*driverBidModify.TruckID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidAmount(*driverBidModify.AmountCents) {
		return nil, ErrInvalidAmount
	}

	var driverBid *entities.DriverBid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Проверка статуса и вставка идут в одной транзакции, иначе между
		// ними заявка может успеть закрыться.
		status, err := s.repository.GetFreightBidStatus(ctx, *driverBidModify.FreightBidID)
		if err != nil {
			return fmt.Errorf("get freight bid status: %w", err)
		}

		if status != entities.FreightOpen {
			return ErrBidClosed
		}

		driverBid, err = s.repository.Create(ctx, driverBidModify)
		if err != nil {
			return fmt.Errorf("create driver bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Снимок поиска водителей устарел, ошибка инвалидации не критична.
	_ = s.statusCache.InvalidateFindDriversStatus(ctx, driverBid.FreightBidID)

	return driverBid, nil
}

func (s *DriverBid) ListDriverBids(ctx context.Context, freightBidID string) ([]entities.DriverBid, error) {
	if !isValidBidID(freightBidID) {
		return nil, ErrInvalidFreightBidID
	}

	_, err := s.repository.GetFreightBidStatus(ctx, freightBidID)
	if err != nil {
		return nil, fmt.Errorf("get freight bid status: %w", err)
	}

	driverBids, err := s.repository.GetByFreightBidID(ctx, freightBidID)
	if err != nil {
		return nil, fmt.Errorf("list driver bids: %w", err)
	}

	return driverBids, nil
}

// DeleteDriverBid снимает ставку. Непустой driverID сверяется с автором
// ставки, пустой означает внутренний вызов без проверки прав.
func (s *DriverBid) DeleteDriverBid(ctx context.Context, id string, driverID string) error {
	if !isValidBidID(id) {
		return ErrInvalidDriverBidID
	}

	var freightBidID string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverBid, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get driver bid: %w", err)
		}

		if driverID != "" && driverBid.DriverID != driverID {
			return ErrNotOwner
		}

		freightBidID = driverBid.FreightBidID

		err = s.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete driver bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.statusCache.InvalidateFindDriversStatus(ctx, freightBidID)

	return nil
}
