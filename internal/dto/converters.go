package dto

import (
	"freightbid/internal/entities"
)

func FromFreightBid(freightBid *entities.FreightBid) FreightBid {
	return FreightBid{
		ID:         freightBid.ID,
		CustomerID: freightBid.CustomerID,
		Pickup: Location{
			Address: freightBid.Pickup.Address,
			Lat:     freightBid.Pickup.Lat,
			Lng:     freightBid.Pickup.Lng,
		},
		Delivery: Location{
			Address: freightBid.Delivery.Address,
			Lat:     freightBid.Delivery.Lat,
			Lng:     freightBid.Delivery.Lng,
		},
		TruckTypeID: freightBid.TruckTypeID,
		CategoryID:  freightBid.CategoryID,
		BedTypeID:   freightBid.BedTypeID,
		UseTagIDs:   freightBid.UseTagIDs,
		Status:      freightBid.Status.String(),
		CreatedAt:   freightBid.CreatedAt,
		UpdatedAt:   freightBid.UpdatedAt,
	}
}

func FromDriverBid(driverBid *entities.DriverBid) DriverBid {
	return DriverBid{
		ID:           driverBid.ID,
		FreightBidID: driverBid.FreightBidID,
		DriverID:     driverBid.DriverID,
		TruckID:      driverBid.TruckID,
		AmountCents:  driverBid.AmountCents,
		Message:      driverBid.Message,
		CreatedAt:    driverBid.CreatedAt,
	}
}

func FromDriverBidList(driverBids []entities.DriverBid) []DriverBid {
	result := make([]DriverBid, len(driverBids))
	for i := range driverBids {
		result[i] = FromDriverBid(&driverBids[i])
	}
	return result
}
