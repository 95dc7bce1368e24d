package category

import (
	"time"

	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
)

// Category is the domain view of an expense category.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	HouseholdID string    `json:"household_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDataModel(record *categoryDatamodel.Category) *Category {
	return &Category{
		ID:          record.ID,
		Name:        record.Name,
		Icon:        record.Icon,
		Color:       record.Color,
		HouseholdID: record.HouseholdID,
		CreatedAt:   record.CreatedAt,
	}
}

func FromDataModelSlice(records []*categoryDatamodel.Category) []*Category {
	out := make([]*Category, len(records))
	for i, r := range records {
		out[i] = FromDataModel(r)
	}
	return out
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	return &categoryDatamodel.Category{
		ID:          c.ID,
		Name:        c.Name,
		Icon:        c.Icon,
		Color:       c.Color,
		HouseholdID: c.HouseholdID,
		CreatedAt:   c.CreatedAt,
	}
}
