package household

import (
	"time"

	householdDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/household"
)

// Household is the domain view of a two-member household.
type Household struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is the domain view of a household member. InviteCode is only set
// while the member is still waiting for a partner to join.
type Member struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PartnerID   *string `json:"partner_id,omitempty"`
	HouseholdID *string `json:"household_id,omitempty"`
	InviteCode  *string `json:"invite_code,omitempty"`
}

func householdFromDataModel(record *householdDatamodel.Household) *Household {
	return &Household{
		ID:        record.ID,
		Name:      record.Name,
		CreatedAt: record.CreatedAt,
	}
}

func memberFromDataModel(record *householdDatamodel.Member) *Member {
	return &Member{
		ID:          record.ID,
		Name:        record.Name,
		Email:       record.Email,
		PartnerID:   record.PartnerID,
		HouseholdID: record.HouseholdID,
		InviteCode:  record.InviteCode,
	}
}

func membersFromDataModel(records []*householdDatamodel.Member) []*Member {
	out := make([]*Member, len(records))
	for i, r := range records {
		out[i] = memberFromDataModel(r)
	}
	return out
}
