package matching

import (
	"github.com/google/uuid"
)

func isValidBidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
