package expense

import "time"

// Split types. The share table is relative to the member who created the
// record, not the one who paid; see internal/ledger.
const (
	SplitFiftyFifty  = "50/50"
	SplitSoloMine    = "solo_mine"
	SplitSoloPartner = "solo_partner"
	SplitCustom      = "custom"
)

// DefaultSplitPercentage is applied when a custom percentage is omitted.
const DefaultSplitPercentage = 50

// Expense is a shared spending record. CreatedBy is stamped once at
// construction and never edited afterwards; edits are full-field replacements
// keyed by id.
type Expense struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Description     *string   `json:"description,omitempty" gorm:"column:description"`
	CategoryID      string    `json:"category_id" gorm:"column:category_id;index;not null"`
	PaidBy          string    `json:"paid_by" gorm:"column:paid_by;not null"`
	CreatedBy       string    `json:"created_by" gorm:"column:created_by;not null"`
	SplitType       string    `json:"split_type" gorm:"column:split_type;default:50/50"`
	SplitPercentage int       `json:"split_percentage" gorm:"column:split_percentage;default:50"`
	Date            time.Time `json:"date" gorm:"column:date;type:date;index"`
	HouseholdID     string    `json:"household_id" gorm:"column:household_id;index;not null"`
	ReceiptURL      *string   `json:"receipt_url,omitempty" gorm:"column:receipt_url"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
