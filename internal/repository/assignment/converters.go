package assignment

import (
	"freightbid/internal/entities"
)

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}

	return &entities.Assignment{
		FreightBidID: a.FreightBidID,
		DriverBidID:  a.DriverBidID,
		AssignedAt:   a.AssignedAt,
	}
}
