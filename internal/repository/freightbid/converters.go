package freightbid

import (
	"freightbid/internal/entities"
)

func ToDomain(f *FreightBidDB) *entities.FreightBid {
	if f == nil {
		return nil
	}

	return &entities.FreightBid{
		ID:         f.ID,
		CustomerID: f.CustomerID,
		Pickup: entities.Location{
			Address: f.PickupAddress,
			Lat:     f.PickupLat,
			Lng:     f.PickupLng,
		},
		Delivery: entities.Location{
			Address: f.DeliveryAddress,
			Lat:     f.DeliveryLat,
			Lng:     f.DeliveryLng,
		},
		TruckTypeID: f.TruckTypeID,
		CategoryID:  f.CategoryID,
		BedTypeID:   f.BedTypeID,
		UseTagIDs:   f.UseTagIDs,
		Status:      entities.FreightStatusType(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromDomainModify(freightBidModify *entities.FreightBidModify) *FreightBidModifyDB {
	if freightBidModify == nil {
		return nil
	}
	freightBidDB := &FreightBidModifyDB{}

	if freightBidModify.ID != nil {
		freightBidDB.ID = freightBidModify.ID
	}
	if freightBidModify.CustomerID != nil {
		freightBidDB.CustomerID = freightBidModify.CustomerID
	}
	if freightBidModify.Pickup != nil {
		freightBidDB.PickupAddress = &freightBidModify.Pickup.Address
		freightBidDB.PickupLat = freightBidModify.Pickup.Lat
		freightBidDB.PickupLng = freightBidModify.Pickup.Lng
	}
	if freightBidModify.Delivery != nil {
		freightBidDB.DeliveryAddress = &freightBidModify.Delivery.Address
		freightBidDB.DeliveryLat = freightBidModify.Delivery.Lat
		freightBidDB.DeliveryLng = freightBidModify.Delivery.Lng
	}
	if freightBidModify.TruckTypeID != nil {
		freightBidDB.TruckTypeID = freightBidModify.TruckTypeID
	}
	if freightBidModify.CategoryID != nil {
		freightBidDB.CategoryID = freightBidModify.CategoryID
	}
	if freightBidModify.BedTypeID != nil {
		freightBidDB.BedTypeID = freightBidModify.BedTypeID
	}
	if freightBidModify.UseTagIDs != nil {
		freightBidDB.UseTagIDs = freightBidModify.UseTagIDs
	}
	if freightBidModify.Status != nil {
		statusType := freightBidModify.Status.String()
		freightBidDB.Status = &statusType
	}

	return freightBidDB
}

func ToDomainList(freightBidsDB []FreightBidDB) []entities.FreightBid {
	if len(freightBidsDB) == 0 {
		return []entities.FreightBid{}
	}

	result := make([]entities.FreightBid, len(freightBidsDB))
	for i, freightBidDB := range freightBidsDB {
		result[i] = *ToDomain(&freightBidDB)
	}
	return result
}
