package driverbid

import (
	"freightbid/internal/entities"
)

func ToDomain(d *DriverBidDB) *entities.DriverBid {
	if d == nil {
		return nil
	}

	return &entities.DriverBid{
		ID:           d.ID,
		FreightBidID: d.FreightBidID,
		DriverID:     d.DriverID,
		TruckID:      d.TruckID,
		AmountCents:  d.AmountCents,
		Message:      d.Message,
		CreatedAt:    d.CreatedAt,
	}
}

func FromDomainModify(driverBidModify *entities.DriverBidModify) *DriverBidModifyDB {
	if driverBidModify == nil {
		return nil
	}
	driverBidDB := &DriverBidModifyDB{}

	if driverBidModify.ID != nil {
		driverBidDB.ID = driverBidModify.ID
	}
	if driverBidModify.FreightBidID != nil {
		driverBidDB.FreightBidID = driverBidModify.FreightBidID
	}
	if driverBidModify.DriverID != nil {
		driverBidDB.DriverID = driverBidModify.DriverID
	}
	if driverBidModify.TruckID != nil {
		driverBidDB.TruckID = driverBidModify.TruckID
	}
	if driverBidModify.AmountCents != nil {
		driverBidDB.AmountCents = driverBidModify.AmountCents
	}
	if driverBidModify.Message != nil {
		driverBidDB.Message = driverBidModify.Message
	}

	return driverBidDB
}

func ToDomainList(driverBidsDB []DriverBidDB) []entities.DriverBid {
	if len(driverBidsDB) == 0 {
		return []entities.DriverBid{}
	}

	result := make([]entities.DriverBid, len(driverBidsDB))
	for i, driverBidDB := range driverBidsDB {
		result[i] = *ToDomain(&driverBidDB)
	}
	return result
}
