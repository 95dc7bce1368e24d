package settlement

import "time"

// Settlement records a cash transfer between the two members to pay down the
// running balance. A self-settlement (payer == receiver) is tolerated as a
// no-op placeholder for households with a single linked member.
type Settlement struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Amount      float64   `json:"amount" gorm:"not null"`
	PaidBy      string    `json:"paid_by" gorm:"column:paid_by;not null"`
	PaidTo      string    `json:"paid_to" gorm:"column:paid_to;not null"`
	Date        time.Time `json:"date" gorm:"column:date;type:date"`
	HouseholdID string    `json:"household_id" gorm:"column:household_id;index;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Settlement) TableName() string {
	return "settlements"
}
