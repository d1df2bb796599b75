package driverbid

import (
	"strings"

	"github.com/google/uuid"
)

func isValidBidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isValidDriverID(driverID string) bool {
	return strings.TrimSpace(driverID) != ""
}

func isValidTruckID(truckID string) bool {
	return strings.TrimSpace(truckID) != ""
}

func isValidAmount(amountCents int64) bool {
	return amountCents > 0
}
