package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freightbid/internal/entities"
	freightbidservice "freightbid/internal/service/freightbid"
	matchingservice "freightbid/internal/service/matching"
	"github.com/google/uuid"
)

type Query struct {
	freightBids FreightBidRepository
	driverBids  DriverBidRepository
	assignments AssignmentRepository
	txManager   TxManager
}

func New(
	freightBids FreightBidRepository,
	driverBids DriverBidRepository,
	assignments AssignmentRepository,
	txManager TxManager,
) *Query {
	return &Query{
		freightBids: freightBids,
		driverBids:  driverBids,
		assignments: assignments,
		txManager:   txManager,
	}
}

// GetFreightBidDetails собирает заявку, ее ставки и назначение одним
// согласованным снимком, иначе список ставок может разъехаться с назначением.
func (s *Query) GetFreightBidDetails(ctx context.Context, id string) (*entities.FreightBidDetails, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidFreightBidID
	}

	var details *entities.FreightBidDetails
	err := s.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		freightBid, err := s.freightBids.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, freightbidservice.ErrFreightBidNotFound) {
				return ErrFreightBidNotFound
			}
			return fmt.Errorf("get freight bid: %w", err)
		}

		driverBids, err := s.driverBids.GetByFreightBidID(ctx, id)
		if err != nil {
			return fmt.Errorf("list driver bids: %w", err)
		}

		details = &entities.FreightBidDetails{
			FreightBid: *freightBid,
			DriverBids: driverBids,
		}

		assignment, err := s.assignments.GetByFreightBidID(ctx, id)
		if err != nil {
			if errors.Is(err, matchingservice.ErrAssignmentNotFound) {
				// Заявка без назначения это нормальное состояние.
				return nil
			}
			return fmt.Errorf("get assignment: %w", err)
		}

		details.AssignedBidID = &assignment.DriverBidID
		details.AssignedAt = &assignment.AssignedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}

func (s *Query) GetBidHistory(ctx context.Context, customerID string) ([]entities.FreightBid, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidCustomerID
	}

	freightBids, err := s.freightBids.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get bid history: %w", err)
	}

	return freightBids, nil
}
