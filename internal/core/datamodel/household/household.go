package household

import "time"

// Household groups exactly two linked members; every other record is
// partitioned by its id.
type Household struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Household) TableName() string {
	return "households"
}

// Member is a household member profile. Authentication lives outside this
// service; only the id and name matter to the ledger.
type Member struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       *string   `json:"email,omitempty" gorm:"column:email"`
	PartnerID   *string   `json:"partner_id,omitempty" gorm:"column:partner_id"`
	HouseholdID *string   `json:"household_id,omitempty" gorm:"column:household_id"`
	InviteCode  *string   `json:"invite_code,omitempty" gorm:"column:invite_code"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Member) TableName() string {
	return "members"
}
