package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errors "github.com/casafin/household-ledger/internal"
	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
	"github.com/casafin/household-ledger/internal/core/events"
)

// Repository defines the data access methods for budgets.
type Repository interface {
	Upsert(budget *budgetDatamodel.Budget) error
	GetByID(id string) (*budgetDatamodel.Budget, error)
	GetByMonth(householdID string, month time.Time) ([]*budgetDatamodel.Budget, error)
	Delete(id string) error
}

// Service handles budget business logic.
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// SetBudget upserts the ceiling for one (category, month) key.
func (s *Service) SetBudget(householdID string, dto SetBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget validation failed", "error", err, "household_id", householdID)
		return nil, err
	}

	record := &budgetDatamodel.Budget{
		ID:          uuid.New().String(),
		CategoryID:  dto.CategoryID,
		HouseholdID: householdID,
		Month:       budgetDatamodel.NormalizeMonth(dto.Month),
		Amount:      dto.Amount,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Upsert(record); err != nil {
		s.logger.Error("failed to upsert budget", "error", err, "household_id", householdID)
		return nil, err
	}

	s.publish(events.NewBudgetUpsertedEvent(householdID, record.ID, record.Amount))

	s.logger.Info("budget set",
		"household_id", householdID,
		"category_id", dto.CategoryID,
		"month", record.Month.Format("2006-01"),
		"amount", dto.Amount)

	return FromDataModel(record), nil
}

// ListForMonth returns all budgets of one calendar month.
func (s *Service) ListForMonth(householdID string, month time.Time) ([]*Budget, error) {
	records, err := s.repo.GetByMonth(householdID, budgetDatamodel.NormalizeMonth(month))
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "household_id", householdID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// TotalForMonth sums the household's ceilings for one month.
func (s *Service) TotalForMonth(householdID string, month time.Time) (float64, error) {
	budgets, err := s.ListForMonth(householdID, month)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, b := range budgets {
		total += b.Amount
	}
	return total, nil
}

// DeleteBudget removes one ceiling.
func (s *Service) DeleteBudget(id, householdID string) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("budget not found for delete", "error", err, "budget_id", id)
		return errors.ErrBudgetNotFound
	}
	if record.HouseholdID != householdID {
		return errors.ErrHouseholdMismatch
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		return err
	}

	s.logger.Info("budget deleted", "budget_id", id, "household_id", householdID)
	return nil
}

// CopyBudgets replicates every ceiling from one month into another,
// overwriting ceilings that already exist there.
func (s *Service) CopyBudgets(householdID string, dto CopyBudgetsDTO) ([]*Budget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	source, err := s.ListForMonth(householdID, dto.FromMonth)
	if err != nil {
		return nil, err
	}

	copied := make([]*Budget, 0, len(source))
	for _, b := range source {
		created, err := s.SetBudget(householdID, SetBudgetDTO{
			CategoryID: b.CategoryID,
			Month:      dto.ToMonth,
			Amount:     b.Amount,
		})
		if err != nil {
			return nil, err
		}
		copied = append(copied, created)
	}

	s.logger.Info("budgets copied",
		"household_id", householdID,
		"from", budgetDatamodel.NormalizeMonth(dto.FromMonth).Format("2006-01"),
		"to", budgetDatamodel.NormalizeMonth(dto.ToMonth).Format("2006-01"),
		"count", len(copied))

	return copied, nil
}

func (s *Service) publish(event events.Event) {
	if s.bus == nil {
		return
	}
	// synchronous so cached balances are dropped before the write returns
	if err := s.bus.PublishSync(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish ledger event", "event_type", event.EventType(), "error", err)
	}
}
