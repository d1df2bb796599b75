package freightbid

import (
	"context"
	"fmt"
	"time"

	"freightbid/internal/entities"
)

type FreightBid struct {
	repository  Repository
	catalog     CatalogGateway
	statusCache StatusCache
	txManager   TxManager
}

func New(repository Repository, catalog CatalogGateway, statusCache StatusCache, txManager TxManager) *FreightBid {
	return &FreightBid{
		repository:  repository,
		catalog:     catalog,
		statusCache: statusCache,
		txManager:   txManager,
	}
}

func (s *FreightBid) CreateFreightBid(ctx context.Context, freightBidModify entities.FreightBidModify) (*entities.FreightBid, error) {
	if freightBidModify.CustomerID == nil ||
		freightBidModify.Pickup == nil ||
		freightBidModify.Delivery == nil ||
		freightBidModify.TruckTypeID == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidCustomerID(*freightBidModify.CustomerID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidLocation(freightBidModify.Pickup) {
		return nil, fmt.Errorf("pickup: %w", ErrInvalidLocation)
	}
	if !isValidLocation(freightBidModify.Delivery) {
		return nil, fmt.Errorf("delivery: %w", ErrInvalidLocation)
	}
	if !isValidReferenceID(*freightBidModify.TruckTypeID) {
		return nil, fmt.Errorf("truck type: %w", ErrMissingRequiredFields)
	}

	err := s.checkReferences(ctx, &freightBidModify)
	if err != nil {
		return nil, err
	}

	// Статус при создании всегда open, клиентский статус игнорируется.
	openStatus := entities.FreightOpen
	freightBidModify.Status = &openStatus

	freightBid, err := s.repository.Create(ctx, freightBidModify)
	if err != nil {
		return nil, fmt.Errorf("create freight bid: %w", err)
	}

	return freightBid, nil
}

func (s *FreightBid) GetFreightBid(ctx context.Context, id string) (*entities.FreightBid, error) {
	if !isValidFreightBidID(id) {
		return nil, ErrInvalidFreightBidID
	}

	freightBid, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get freight bid: %w", err)
	}

	return freightBid, nil
}

// UpdateFreightBid меняет поля заявки. Непустой customerID сверяется с
// владельцем, пустой означает внутренний вызов без проверки прав.
func (s *FreightBid) UpdateFreightBid(ctx context.Context, freightBidModify entities.FreightBidModify, customerID string) (*entities.FreightBid, error) {
	if freightBidModify.ID == nil || !isValidFreightBidID(*freightBidModify.ID) {
		return nil, ErrInvalidFreightBidID
	}

	if freightBidModify.Pickup == nil &&
		freightBidModify.Delivery == nil &&
		freightBidModify.TruckTypeID == nil &&
		freightBidModify.CategoryID == nil &&
		freightBidModify.BedTypeID == nil &&
		freightBidModify.UseTagIDs == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if freightBidModify.Pickup != nil && !isValidLocation(freightBidModify.Pickup) {
		return nil, fmt.Errorf("pickup: %w", ErrInvalidLocation)
	}
	if freightBidModify.Delivery != nil && !isValidLocation(freightBidModify.Delivery) {
		return nil, fmt.Errorf("delivery: %w", ErrInvalidLocation)
	}
	if freightBidModify.TruckTypeID != nil && !isValidReferenceID(*freightBidModify.TruckTypeID) {
		return nil, fmt.Errorf("truck type: %w", ErrMissingRequiredFields)
	}

	err := s.checkReferences(ctx, &freightBidModify)
	if err != nil {
		return nil, err
	}

	var freightBid *entities.FreightBid
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *freightBidModify.ID)
		if err != nil {
			return fmt.Errorf("get freight bid: %w", err)
		}

		if customerID != "" && current.CustomerID != customerID {
			return ErrNotOwner
		}

		// После назначения или завершения заявка не редактируется.
		if current.Status == entities.FreightAssigned || current.Status == entities.FreightCompleted {
			return ErrBidClosed
		}

		freightBid, err = s.repository.Update(ctx, freightBidModify)
		if err != nil {
			return fmt.Errorf("update freight bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return freightBid, nil
}

func (s *FreightBid) DeleteFreightBid(ctx context.Context, id string, customerID string) error {
	if !isValidFreightBidID(id) {
		return ErrInvalidFreightBidID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get freight bid: %w", err)
		}

		if customerID != "" && current.CustomerID != customerID {
			return ErrNotOwner
		}

		err = s.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete freight bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Снимок поиска водителей устарел, ошибка инвалидации не критична.
	_ = s.statusCache.InvalidateFindDriversStatus(ctx, id)

	return nil
}

func (s *FreightBid) CancelFreightBid(ctx context.Context, id string, customerID string) (*entities.FreightBid, error) {
	if !isValidFreightBidID(id) {
		return nil, ErrInvalidFreightBidID
	}

	var freightBid *entities.FreightBid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("cancel freight bid: %w", err)
		}

		if customerID != "" && current.CustomerID != customerID {
			return ErrNotOwner
		}

		rowsAffected, err := s.repository.UpdateStatusWhereCurrent(
			ctx,
			id,
			entities.FreightCancelled,
			entities.FreightOpen,
			entities.FreightAssigned,
		)
		if err != nil {
			return fmt.Errorf("cancel freight bid: %w", err)
		}

		if rowsAffected == 0 {
			// Заявка есть, но уже в терминальном статусе.
			return ErrBidClosed
		}

		freightBid, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("cancel freight bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Снимок поиска водителей устарел, ошибка инвалидации не критична.
	_ = s.statusCache.InvalidateFindDriversStatus(ctx, id)

	return freightBid, nil
}

func (s *FreightBid) CompleteFreightBid(ctx context.Context, id string) (*entities.FreightBid, error) {
	if !isValidFreightBidID(id) {
		return nil, ErrInvalidFreightBidID
	}

	var freightBid *entities.FreightBid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rowsAffected, err := s.repository.UpdateStatusWhereCurrent(
			ctx,
			id,
			entities.FreightCompleted,
			entities.FreightAssigned,
		)
		if err != nil {
			return fmt.Errorf("complete freight bid: %w", err)
		}

		if rowsAffected == 0 {
			_, err := s.repository.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("complete freight bid: %w", err)
			}
			// Завершить можно только назначенную заявку.
			return ErrBidClosed
		}

		freightBid, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("complete freight bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.statusCache.InvalidateFindDriversStatus(ctx, id)

	return freightBid, nil
}

// ExpireOpenBids закрывает открытые заявки, созданные раньше чем maxAge назад.
func (s *FreightBid) ExpireOpenBids(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	rowsAffected, err := s.repository.CancelOpenCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expire open bids: %w", err)
	}

	return rowsAffected, nil
}

func (s *FreightBid) checkReferences(ctx context.Context, freightBidModify *entities.FreightBidModify) error {
	type refCheck struct {
		kind entities.ReferenceKind
		id   string
	}

	checks := make([]refCheck, 0, 4)
	if freightBidModify.TruckTypeID != nil {
		checks = append(checks, refCheck{kind: entities.RefTruckType, id: *freightBidModify.TruckTypeID})
	}
	if freightBidModify.CategoryID != nil && *freightBidModify.CategoryID != "" {
		checks = append(checks, refCheck{kind: entities.RefTruckCategory, id: *freightBidModify.CategoryID})
	}
	if freightBidModify.BedTypeID != nil && *freightBidModify.BedTypeID != "" {
		checks = append(checks, refCheck{kind: entities.RefBedType, id: *freightBidModify.BedTypeID})
	}
	if freightBidModify.UseTagIDs != nil {
		for _, tagID := range *freightBidModify.UseTagIDs {
			checks = append(checks, refCheck{kind: entities.RefUseTag, id: tagID})
		}
	}

	for _, check := range checks {
		exists, err := s.catalog.ReferenceExists(ctx, check.kind, check.id)
		if err != nil {
			return fmt.Errorf("check reference %s %s: %w", check.kind, check.id, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s %s", ErrUnknownReference, check.kind, check.id)
		}
	}

	return nil
}
