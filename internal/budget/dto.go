package budget

import (
	"time"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/core/common/validation"
)

// SetBudgetDTO upserts one (category, month) ceiling. A zero amount is
// allowed; it reads as "planned no spending".
type SetBudgetDTO struct {
	CategoryID string    `json:"category_id"`
	Month      time.Time `json:"month"`
	Amount     float64   `json:"amount"`
}

func (dto SetBudgetDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("category_id", dto.CategoryID).Required()
	v.Field("month", dto.Month).Required()
	v.Field("amount", dto.Amount).NonNegative(errors.ErrCodeInvalidAmount)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// CopyBudgetsDTO replicates every budget from one month into another.
type CopyBudgetsDTO struct {
	FromMonth time.Time `json:"from_month"`
	ToMonth   time.Time `json:"to_month"`
}

func (dto CopyBudgetsDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("from_month", dto.FromMonth).Required()
	v.Field("to_month", dto.ToMonth).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
