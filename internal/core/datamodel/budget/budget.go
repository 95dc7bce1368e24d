package budget

import "time"

// Budget is a per-category spending ceiling for one calendar month. Month is
// normalized to the first day of the month; (category_id, household_id, month)
// is unique and budgets are upserted by that key.
type Budget struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CategoryID  string    `json:"category_id" gorm:"column:category_id;uniqueIndex:idx_budget_key;not null"`
	HouseholdID string    `json:"household_id" gorm:"column:household_id;uniqueIndex:idx_budget_key;not null"`
	Month       time.Time `json:"month" gorm:"column:month;type:date;uniqueIndex:idx_budget_key"`
	Amount      float64   `json:"amount" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

// NormalizeMonth truncates a date to the first day of its month.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
