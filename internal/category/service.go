package category

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	errors "github.com/casafin/household-ledger/internal"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
)

// Repository defines the data access methods for categories.
type Repository interface {
	GetByHousehold(householdID string) ([]*categoryDatamodel.Category, error)
	GetByID(id string) (*categoryDatamodel.Category, error)
	Create(category *categoryDatamodel.Category) error
	Delete(id string) error
	// CountReferences reports how many expenses and budgets still point at
	// the category.
	CountReferences(categoryID string) (int64, error)
}

// Service handles category business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns the household's categories ordered by name.
func (s *Service) ListCategories(householdID string) ([]*Category, error) {
	records, err := s.repo.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err, "household_id", householdID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) CreateCategory(householdID string, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("category validation failed", "error", err, "household_id", householdID)
		return nil, err
	}

	record := &categoryDatamodel.Category{
		ID:          uuid.New().String(),
		Name:        dto.Name,
		Icon:        dto.Icon,
		Color:       dto.Color,
		HouseholdID: householdID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create category", "error", err, "household_id", householdID)
		return nil, err
	}

	s.logger.Info("category created", "category_id", record.ID, "name", record.Name)
	return FromDataModel(record), nil
}

// DeleteCategory removes a category when nothing references it anymore.
// Expenses and budgets keep category ids, so a referenced category must
// survive for historical rows to stay renderable.
func (s *Service) DeleteCategory(id, householdID string) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return errors.ErrCategoryNotFound
	}
	if record.HouseholdID != householdID {
		return errors.ErrHouseholdMismatch
	}

	refs, err := s.repo.CountReferences(id)
	if err != nil {
		s.logger.Error("failed to count category references", "error", err, "category_id", id)
		return err
	}
	if refs > 0 {
		return errors.ErrCategoryInUse
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted", "category_id", id, "household_id", householdID)
	return nil
}

// SeedDefaults creates the starter categories for a new household.
func (s *Service) SeedDefaults(householdID string) ([]*Category, error) {
	seeded := make([]*Category, 0, len(categoryDatamodel.Defaults))
	for _, d := range categoryDatamodel.Defaults {
		record := &categoryDatamodel.Category{
			ID:          uuid.New().String(),
			Name:        d.Name,
			Icon:        d.Icon,
			Color:       d.Color,
			HouseholdID: householdID,
			CreatedAt:   time.Now(),
		}
		if err := s.repo.Create(record); err != nil {
			s.logger.Error("failed to seed default category", "error", err, "name", d.Name)
			return nil, err
		}
		seeded = append(seeded, FromDataModel(record))
	}

	s.logger.Info("default categories seeded", "household_id", householdID, "count", len(seeded))
	return seeded, nil
}
