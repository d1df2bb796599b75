package freightbid

import (
	"strings"

	"freightbid/internal/entities"
	"github.com/google/uuid"
)

func isValidFreightBidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isValidCustomerID(customerID string) bool {
	return strings.TrimSpace(customerID) != ""
}

func isValidLocation(location *entities.Location) bool {
	if location == nil {
		return false
	}
	if strings.TrimSpace(location.Address) == "" {
		return false
	}
	if location.Lat != nil && (*location.Lat < -90 || *location.Lat > 90) {
		return false
	}
	if location.Lng != nil && (*location.Lng < -180 || *location.Lng > 180) {
		return false
	}
	return true
}

func isValidReferenceID(id string) bool {
	return strings.TrimSpace(id) != ""
}
