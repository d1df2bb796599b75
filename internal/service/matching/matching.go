package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freightbid/internal/entities"
	driverbidservice "freightbid/internal/service/driverbid"
	freightbidservice "freightbid/internal/service/freightbid"
)

const (
	statusMessageFound     = "drivers found"
	statusMessageSearching = "searching for drivers"
)

type Matching struct {
	freightBids FreightBidRepository
	driverBids  DriverBidRepository
	assignments AssignmentRepository
	cache       CacheStore
	statusTTL   time.Duration
	txManager   TxManager
}

func New(
	freightBids FreightBidRepository,
	driverBids DriverBidRepository,
	assignments AssignmentRepository,
	cache CacheStore,
	statusTTL time.Duration,
	txManager TxManager,
) *Matching {
	return &Matching{
		freightBids: freightBids,
		driverBids:  driverBids,
		assignments: assignments,
		cache:       cache,
		statusTTL:   statusTTL,
		txManager:   txManager,
	}
}

// AssignDriver закрепляет выигравшую ставку за заявкой. Условный переход
// статуса плюс уникальный индекс по freight_bid_id гарантируют, что из
// конкурирующих вызовов победит ровно один. Непустой customerID сверяется
// с владельцем заявки.
func (s *Matching) AssignDriver(ctx context.Context, freightBidID, driverBidID, customerID string) (*entities.Assignment, error) {
	if !isValidBidID(freightBidID) {
		return nil, ErrInvalidFreightBidID
	}
	if !isValidBidID(driverBidID) {
		return nil, ErrInvalidDriverBidID
	}

	var assignment *entities.Assignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverBid, err := s.driverBids.GetByID(ctx, driverBidID)
		if err != nil {
			if errors.Is(err, driverbidservice.ErrDriverBidNotFound) {
				return ErrDriverBidNotFound
			}
			return fmt.Errorf("get driver bid: %w", err)
		}

		if driverBid.FreightBidID != freightBidID {
			return ErrBidMismatch
		}

		freightBid, err := s.freightBids.GetByID(ctx, freightBidID)
		if err != nil {
			if errors.Is(err, freightbidservice.ErrFreightBidNotFound) {
				return ErrFreightBidNotFound
			}
			return fmt.Errorf("get freight bid: %w", err)
		}

		if customerID != "" && freightBid.CustomerID != customerID {
			return ErrNotOwner
		}

		switch freightBid.Status {
		case entities.FreightAssigned:
			return ErrAlreadyAssigned
		case entities.FreightCancelled, entities.FreightCompleted:
			return ErrBidClosed
		}

		rowsAffected, err := s.freightBids.UpdateStatusWhereCurrent(
			ctx,
			freightBidID,
			entities.FreightAssigned,
			entities.FreightOpen,
		)
		if err != nil {
			return fmt.Errorf("mark freight bid assigned: %w", err)
		}
		if rowsAffected == 0 {
			// Между чтением и переходом статус успел поменяться.
			current, err := s.freightBids.GetByID(ctx, freightBidID)
			if err != nil {
				return fmt.Errorf("get freight bid: %w", err)
			}
			switch current.Status {
			case entities.FreightCancelled, entities.FreightCompleted:
				return ErrBidClosed
			}
			return ErrAlreadyAssigned
		}

		assignment, err = s.assignments.Create(ctx, freightBidID, driverBidID)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.InvalidateFindDriversStatus(ctx, freightBidID)

	return assignment, nil
}

// GetFindDriversStatus строит снимок активности ставок. Снимок нигде не
// хранится, только кешируется, поэтому повторные чтения в пределах TTL
// возвращают одинаковый результат.
func (s *Matching) GetFindDriversStatus(ctx context.Context, freightBidID string) (*entities.FindDriversStatus, error) {
	if !isValidBidID(freightBidID) {
		return nil, ErrInvalidFreightBidID
	}

	cacheKey := findDriversStatusKey(freightBidID)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var model findDriversStatusModel
		if err := json.Unmarshal(cached, &model); err == nil {
			return model.toDomain(), nil
		}
	}

	_, err := s.freightBids.GetByID(ctx, freightBidID)
	if err != nil {
		if errors.Is(err, freightbidservice.ErrFreightBidNotFound) {
			return nil, ErrFreightBidNotFound
		}
		return nil, fmt.Errorf("get freight bid: %w", err)
	}

	count, err := s.driverBids.CountByFreightBidID(ctx, freightBidID)
	if err != nil {
		return nil, fmt.Errorf("count driver bids: %w", err)
	}

	status := &entities.FindDriversStatus{
		DriversFound:      count > 0,
		TotalDriversFound: count,
		RequestTime:       time.Now().UTC(),
		StatusMessage:     statusMessageSearching,
	}
	if status.DriversFound {
		status.StatusMessage = statusMessageFound
	}

	if body, err := json.Marshal(fromDomainStatus(status)); err == nil {
		// Кеш не критичен, без него просто каждый раз свежий снимок.
		_ = s.cache.Set(ctx, cacheKey, body, s.statusTTL)
	}

	return status, nil
}

func (s *Matching) InvalidateFindDriversStatus(ctx context.Context, freightBidID string) error {
	return s.cache.Delete(ctx, findDriversStatusKey(freightBidID))
}

func findDriversStatusKey(freightBidID string) string {
	return "matching:find-drivers-status:" + freightBidID
}

type findDriversStatusModel struct {
	DriversFound      bool      `json:"drivers_found"`
	TotalDriversFound int64     `json:"total_drivers_found"`
	RequestTime       time.Time `json:"request_time"`
	StatusMessage     string    `json:"status_message"`
}

func fromDomainStatus(status *entities.FindDriversStatus) *findDriversStatusModel {
	return &findDriversStatusModel{
		DriversFound:      status.DriversFound,
		TotalDriversFound: status.TotalDriversFound,
		RequestTime:       status.RequestTime,
		StatusMessage:     status.StatusMessage,
	}
}

func (m *findDriversStatusModel) toDomain() *entities.FindDriversStatus {
	return &entities.FindDriversStatus{
		DriversFound:      m.DriversFound,
		TotalDriversFound: m.TotalDriversFound,
		RequestTime:       m.RequestTime,
		StatusMessage:     m.StatusMessage,
	}
}
