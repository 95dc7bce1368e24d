package postgres

import (
	"gorm.io/gorm"

	errors "github.com/casafin/household-ledger/internal"
	householdDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/household"
	"github.com/casafin/household-ledger/internal/household"
)

// HouseholdRepository implements the household.Repository interface using GORM.
type HouseholdRepository struct {
	db *gorm.DB
}

func NewHouseholdRepository(db *gorm.DB) household.Repository {
	return &HouseholdRepository{db: db}
}

func (r *HouseholdRepository) CreateHousehold(h *householdDatamodel.Household) error {
	return r.db.Create(h).Error
}

func (r *HouseholdRepository) GetHousehold(id string) (*householdDatamodel.Household, error) {
	var h householdDatamodel.Household
	err := r.db.Where("id = ?", id).First(&h).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HouseholdRepository) CreateMember(m *householdDatamodel.Member) error {
	return r.db.Create(m).Error
}

func (r *HouseholdRepository) GetMemberByID(id string) (*householdDatamodel.Member, error) {
	var m householdDatamodel.Member
	err := r.db.Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *HouseholdRepository) GetMemberByInviteCode(code string) (*householdDatamodel.Member, error) {
	var m householdDatamodel.Member
	err := r.db.Where("invite_code = ?", code).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInviteCodeInvalid
		}
		return nil, err
	}
	return &m, nil
}

// UpdateMember saves the full row; Save is used over Updates so that the
// invite code can be cleared back to NULL.
func (r *HouseholdRepository) UpdateMember(m *householdDatamodel.Member) error {
	return r.db.Save(m).Error
}

func (r *HouseholdRepository) GetMembers(householdID string) ([]*householdDatamodel.Member, error) {
	var members []*householdDatamodel.Member
	err := r.db.Where("household_id = ?", householdID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}
