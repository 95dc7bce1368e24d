package postgres

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/budget"
	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
)

// BudgetRepository implements the budget.Repository interface using GORM.
type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

// Upsert inserts or replaces the amount for the (category, household, month)
// key; the generated id of the incoming record is discarded on conflict.
func (r *BudgetRepository) Upsert(b *budgetDatamodel.Budget) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "category_id"},
			{Name: "household_id"},
			{Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(b).Error
}

func (r *BudgetRepository) GetByID(id string) (*budgetDatamodel.Budget, error) {
	var b budgetDatamodel.Budget
	err := r.db.Where("id = ?", id).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) GetByMonth(householdID string, month time.Time) ([]*budgetDatamodel.Budget, error) {
	var budgets []*budgetDatamodel.Budget
	err := r.db.Where("household_id = ? AND month = ?", householdID, month).
		Order("category_id ASC").
		Find(&budgets).Error
	return budgets, err
}

func (r *BudgetRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&budgetDatamodel.Budget{}).Error
}
