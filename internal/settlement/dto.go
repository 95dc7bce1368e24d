package settlement

import (
	"time"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/core/common/validation"
)

// CreateSettlementDTO is the request payload for recording a transfer.
type CreateSettlementDTO struct {
	Amount float64   `json:"amount"`
	PaidBy string    `json:"paid_by"`
	PaidTo string    `json:"paid_to"`
	Date   time.Time `json:"date"`
}

func (dto CreateSettlementDTO) Validate() error {
	if err := validation.ValidateAmount(dto.Amount); err != nil {
		return err
	}

	v := validation.NewValidator()
	v.Field("paid_by", dto.PaidBy).Required()
	v.Field("paid_to", dto.PaidTo).Required()
	v.Field("date", dto.Date).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var (
	ErrNothingToSettle   = errors.ErrNothingToSettle
	ErrHouseholdMismatch = errors.ErrHouseholdMismatch
)
