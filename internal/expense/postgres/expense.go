package postgres

import (
	"gorm.io/gorm"

	"github.com/casafin/household-ledger/internal/expense"

	errors "github.com/casafin/household-ledger/internal"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
)

// ExpenseRepository implements the expense.Repository interface using GORM.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expenseDatamodel.Expense) error {
	return r.db.Create(exp).Error
}

func (r *ExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	var exp expenseDatamodel.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExpenseNotFound
		}
		return nil, err
	}
	return &exp, nil
}

// GetByHousehold returns the full expense history of one household, newest
// first. The ledger engine consumes the whole snapshot, so there is no
// pagination here.
func (r *ExpenseRepository) GetByHousehold(householdID string) ([]*expenseDatamodel.Expense, error) {
	var expenses []*expenseDatamodel.Expense
	err := r.db.Where("household_id = ?", householdID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Update(exp *expenseDatamodel.Expense) error {
	return r.db.Save(exp).Error
}

func (r *ExpenseRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&expenseDatamodel.Expense{}).Error
}
