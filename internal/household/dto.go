package household

import (
	"github.com/casafin/household-ledger/internal/core/common/validation"
)

// CreateHouseholdDTO opens a household with its founding member. The
// response carries the invite code the partner needs to join.
type CreateHouseholdDTO struct {
	HouseholdName string  `json:"household_name"`
	MemberName    string  `json:"member_name"`
	Email         *string `json:"email,omitempty"`
}

func (dto CreateHouseholdDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("household_name", dto.HouseholdName).Required().MaxLength(100)
	v.Field("member_name", dto.MemberName).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// JoinHouseholdDTO links a new member into an existing household via the
// founder's invite code.
type JoinHouseholdDTO struct {
	InviteCode string  `json:"invite_code"`
	MemberName string  `json:"member_name"`
	Email      *string `json:"email,omitempty"`
}

func (dto JoinHouseholdDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("invite_code", dto.InviteCode).Required()
	v.Field("member_name", dto.MemberName).Required().MaxLength(100)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
