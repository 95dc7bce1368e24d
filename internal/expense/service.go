package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	"github.com/casafin/household-ledger/internal/core/events"
)

// Repository defines the data access methods for expenses.
type Repository interface {
	Create(expense *expenseDatamodel.Expense) error
	GetByID(id string) (*expenseDatamodel.Expense, error)
	GetByHousehold(householdID string) ([]*expenseDatamodel.Expense, error)
	Update(expense *expenseDatamodel.Expense) error
	Delete(id string) error
}

// Service handles expense business logic.
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

// CreateExpense records a new expense for the household. This is the only
// place created_by is assigned.
func (s *Service) CreateExpense(memberID, householdID string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "member_id", memberID)
		return nil, err
	}

	record := &expenseDatamodel.Expense{
		ID:              uuid.New().String(),
		Amount:          dto.Amount,
		Description:     dto.Description,
		CategoryID:      dto.CategoryID,
		PaidBy:          dto.PaidBy,
		CreatedBy:       memberID,
		SplitType:       dto.SplitType,
		SplitPercentage: dto.splitPercentageOrDefault(),
		Date:            dto.Date,
		HouseholdID:     householdID,
		ReceiptURL:      dto.ReceiptURL,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create expense", "error", err, "member_id", memberID)
		return nil, err
	}

	s.publish(events.NewExpenseCreatedEvent(householdID, record.ID, record.Amount))

	s.logger.Info("expense created",
		"expense_id", record.ID,
		"household_id", householdID,
		"amount", record.Amount,
		"split_type", record.SplitType)

	return FromDataModel(record), nil
}

// GetExpense retrieves one expense scoped to the caller's household.
func (s *Service) GetExpense(id, householdID string) (*Expense, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, ErrExpenseNotFound
	}
	if record.HouseholdID != householdID {
		s.logger.Warn("expense belongs to another household", "expense_id", id, "household_id", householdID)
		return nil, ErrHouseholdMismatch
	}
	return FromDataModel(record), nil
}

// ListExpenses returns the household's expenses, newest first.
func (s *Service) ListExpenses(householdID string) ([]*Expense, error) {
	records, err := s.repo.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "household_id", householdID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// UpdateExpense replaces every field except id, created_by, household_id and
// created_at.
func (s *Service) UpdateExpense(id, householdID string, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("expense not found for update", "error", err, "expense_id", id)
		return nil, ErrExpenseNotFound
	}
	if record.HouseholdID != householdID {
		return nil, ErrHouseholdMismatch
	}

	record.Amount = dto.Amount
	record.Description = dto.Description
	record.CategoryID = dto.CategoryID
	record.PaidBy = dto.PaidBy
	record.SplitType = dto.SplitType
	record.SplitPercentage = dto.splitPercentageOrDefault()
	record.Date = dto.Date
	record.ReceiptURL = dto.ReceiptURL

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.publish(events.NewExpenseUpdatedEvent(householdID, record.ID, record.Amount))

	s.logger.Info("expense updated", "expense_id", id, "household_id", householdID)
	return FromDataModel(record), nil
}

// DeleteExpense removes the record entirely from future snapshots.
func (s *Service) DeleteExpense(id, householdID string) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("expense not found for delete", "error", err, "expense_id", id)
		return ErrExpenseNotFound
	}
	if record.HouseholdID != householdID {
		return ErrHouseholdMismatch
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.publish(events.NewExpenseDeletedEvent(householdID, id))

	s.logger.Info("expense deleted", "expense_id", id, "household_id", householdID)
	return nil
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
