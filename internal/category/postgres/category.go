package postgres

import (
	"gorm.io/gorm"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/category"
	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
)

// CategoryRepository implements the category.Repository interface using GORM.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByHousehold(householdID string) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	err := r.db.Where("household_id = ?", householdID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(id string) (*categoryDatamodel.Category, error) {
	var cat categoryDatamodel.Category
	err := r.db.Where("id = ?", id).First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *categoryDatamodel.Category) error {
	return r.db.Create(cat).Error
}

func (r *CategoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&categoryDatamodel.Category{}).Error
}

// CountReferences sums the expense and budget rows still keyed to the
// category.
func (r *CategoryRepository) CountReferences(categoryID string) (int64, error) {
	var expenses int64
	if err := r.db.Model(&expenseDatamodel.Expense{}).
		Where("category_id = ?", categoryID).
		Count(&expenses).Error; err != nil {
		return 0, err
	}

	var budgets int64
	if err := r.db.Model(&budgetDatamodel.Budget{}).
		Where("category_id = ?", categoryID).
		Count(&budgets).Error; err != nil {
		return 0, err
	}

	return expenses + budgets, nil
}
