package postgres

import (
	"gorm.io/gorm"

	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
	"github.com/casafin/household-ledger/internal/settlement"
)

// SettlementRepository implements the settlement.Repository interface using GORM.
type SettlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) settlement.Repository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) Create(s *settlementDatamodel.Settlement) error {
	return r.db.Create(s).Error
}

func (r *SettlementRepository) GetByHousehold(householdID string) ([]*settlementDatamodel.Settlement, error) {
	var settlements []*settlementDatamodel.Settlement
	err := r.db.Where("household_id = ?", householdID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&settlements).Error
	return settlements, err
}
