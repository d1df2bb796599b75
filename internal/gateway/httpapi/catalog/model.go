package catalog

import (
	"freightbid/internal/entities"
)

type referenceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toDomain(kind entities.ReferenceKind, resp *referenceResponse) *entities.ReferenceItem {
	if resp == nil {
		return nil
	}

	return &entities.ReferenceItem{
		Kind: kind,
		ID:   resp.ID,
		Name: resp.Name,
	}
}
