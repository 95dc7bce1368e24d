package category

import (
	"github.com/casafin/household-ledger/internal/core/common/validation"
)

type CreateCategoryDTO struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (dto CreateCategoryDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("icon", dto.Icon).MaxLength(16)
	v.Field("color", dto.Color).MaxLength(16)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
