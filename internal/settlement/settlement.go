package settlement

import (
	"time"

	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
)

// Settlement is the service-facing view of a recorded cash transfer.
type Settlement struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	PaidBy      string    `json:"paid_by"`
	PaidTo      string    `json:"paid_to"`
	Date        time.Time `json:"date"`
	HouseholdID string    `json:"household_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDataModel(s *Settlement) *settlementDatamodel.Settlement {
	return &settlementDatamodel.Settlement{
		ID:          s.ID,
		Amount:      s.Amount,
		PaidBy:      s.PaidBy,
		PaidTo:      s.PaidTo,
		Date:        s.Date,
		HouseholdID: s.HouseholdID,
		CreatedAt:   s.CreatedAt,
	}
}

func FromDataModel(s *settlementDatamodel.Settlement) *Settlement {
	return &Settlement{
		ID:          s.ID,
		Amount:      s.Amount,
		PaidBy:      s.PaidBy,
		PaidTo:      s.PaidTo,
		Date:        s.Date,
		HouseholdID: s.HouseholdID,
		CreatedAt:   s.CreatedAt,
	}
}

func FromDataModelSlice(settlements []*settlementDatamodel.Settlement) []*Settlement {
	result := make([]*Settlement, len(settlements))
	for i, s := range settlements {
		result[i] = FromDataModel(s)
	}
	return result
}
