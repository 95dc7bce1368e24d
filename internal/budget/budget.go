package budget

import (
	"time"

	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
)

// Budget is the service-facing view of a monthly category ceiling.
type Budget struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	HouseholdID string    `json:"household_id"`
	Month       time.Time `json:"month"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDataModel(b *budgetDatamodel.Budget) *Budget {
	return &Budget{
		ID:          b.ID,
		CategoryID:  b.CategoryID,
		HouseholdID: b.HouseholdID,
		Month:       b.Month,
		Amount:      b.Amount,
		CreatedAt:   b.CreatedAt,
	}
}

func FromDataModelSlice(budgets []*budgetDatamodel.Budget) []*Budget {
	result := make([]*Budget, len(budgets))
	for i, b := range budgets {
		result[i] = FromDataModel(b)
	}
	return result
}
