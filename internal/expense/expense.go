package expense

import (
	"time"

	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
)

// Expense is the service-facing view of a shared spending record.
type Expense struct {
	ID              string    `json:"id"`
	Amount          float64   `json:"amount"`
	Description     *string   `json:"description,omitempty"`
	CategoryID      string    `json:"category_id"`
	PaidBy          string    `json:"paid_by"`
	CreatedBy       string    `json:"created_by"`
	SplitType       string    `json:"split_type"`
	SplitPercentage int       `json:"split_percentage"`
	Date            time.Time `json:"date"`
	HouseholdID     string    `json:"household_id"`
	ReceiptURL      *string   `json:"receipt_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:              e.ID,
		Amount:          e.Amount,
		Description:     e.Description,
		CategoryID:      e.CategoryID,
		PaidBy:          e.PaidBy,
		CreatedBy:       e.CreatedBy,
		SplitType:       e.SplitType,
		SplitPercentage: e.SplitPercentage,
		Date:            e.Date,
		HouseholdID:     e.HouseholdID,
		ReceiptURL:      e.ReceiptURL,
		CreatedAt:       e.CreatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:              e.ID,
		Amount:          e.Amount,
		Description:     e.Description,
		CategoryID:      e.CategoryID,
		PaidBy:          e.PaidBy,
		CreatedBy:       e.CreatedBy,
		SplitType:       e.SplitType,
		SplitPercentage: e.SplitPercentage,
		Date:            e.Date,
		HouseholdID:     e.HouseholdID,
		ReceiptURL:      e.ReceiptURL,
		CreatedAt:       e.CreatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
