package expense

import (
	"time"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/core/common/validation"
)

// CreateExpenseDTO is the request payload for recording a new expense. The
// creator id is never part of the payload; it is stamped from the acting
// member at construction time and immutable afterwards.
type CreateExpenseDTO struct {
	Amount          float64   `json:"amount"`
	Description     *string   `json:"description,omitempty"`
	CategoryID      string    `json:"category_id"`
	PaidBy          string    `json:"paid_by"`
	SplitType       string    `json:"split_type"`
	SplitPercentage *int      `json:"split_percentage,omitempty"`
	Date            time.Time `json:"date"`
	ReceiptURL      *string   `json:"receipt_url,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	if err := validation.ValidateAmount(dto.Amount); err != nil {
		return err
	}

	v := validation.NewValidator()
	v.Field("category_id", dto.CategoryID).Required()
	v.Field("paid_by", dto.PaidBy).Required()
	v.Field("date", dto.Date).Required()
	if dto.Description != nil {
		v.Field("description", *dto.Description).MaxLength(500)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	pct := dto.splitPercentageOrDefault()
	if err := validation.ValidateSplit(dto.SplitType, pct); err != nil {
		return err
	}
	return nil
}

func (dto CreateExpenseDTO) splitPercentageOrDefault() int {
	if dto.SplitPercentage == nil {
		return 50
	}
	return *dto.SplitPercentage
}

// UpdateExpenseDTO is a full-field replacement keyed by id.
type UpdateExpenseDTO struct {
	Amount          float64   `json:"amount"`
	Description     *string   `json:"description,omitempty"`
	CategoryID      string    `json:"category_id"`
	PaidBy          string    `json:"paid_by"`
	SplitType       string    `json:"split_type"`
	SplitPercentage *int      `json:"split_percentage,omitempty"`
	Date            time.Time `json:"date"`
	ReceiptURL      *string   `json:"receipt_url,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() error {
	return CreateExpenseDTO{
		Amount:          dto.Amount,
		Description:     dto.Description,
		CategoryID:      dto.CategoryID,
		PaidBy:          dto.PaidBy,
		SplitType:       dto.SplitType,
		SplitPercentage: dto.SplitPercentage,
		Date:            dto.Date,
		ReceiptURL:      dto.ReceiptURL,
	}.Validate()
}

func (dto UpdateExpenseDTO) splitPercentageOrDefault() int {
	if dto.SplitPercentage == nil {
		return 50
	}
	return *dto.SplitPercentage
}

// Domain errors re-exported for callers that switch on them.
var (
	ErrExpenseNotFound   = errors.ErrExpenseNotFound
	ErrHouseholdMismatch = errors.ErrHouseholdMismatch
)
