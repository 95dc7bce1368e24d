package insights

import (
	"log/slog"
	"time"

	"github.com/casafin/household-ledger/internal"
	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	householdDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/household"
)

// ExpenseSource loads the household's full expense history; Analyze needs
// the previous month too, so no month filter is applied here.
type ExpenseSource interface {
	GetByHousehold(householdID string) ([]*expenseDatamodel.Expense, error)
}

type BudgetSource interface {
	GetByMonth(householdID string, month time.Time) ([]*budgetDatamodel.Budget, error)
}

type CategorySource interface {
	GetByHousehold(householdID string) ([]*categoryDatamodel.Category, error)
}

type MemberSource interface {
	GetMemberByID(id string) (*householdDatamodel.Member, error)
}

// Service assembles analysis snapshots and runs Analyze over them.
type Service struct {
	expenses   ExpenseSource
	budgets    BudgetSource
	categories CategorySource
	members    MemberSource
	currency   string
	logger     *slog.Logger
}

func NewService(expenses ExpenseSource, budgets BudgetSource, categories CategorySource, members MemberSource, currencyCode string, logger *slog.Logger) *Service {
	return &Service{
		expenses:   expenses,
		budgets:    budgets,
		categories: categories,
		members:    members,
		currency:   currencyCode,
		logger:     logger,
	}
}

// ForMonth analyzes the month containing the given date from the acting
// member's viewpoint. A zero reference falls back to the current time.
func (s *Service) ForMonth(member *internal.ActingMember, month, reference time.Time) ([]Insight, error) {
	expenses, err := s.expenses.GetByHousehold(member.HouseholdID)
	if err != nil {
		s.logger.Error("failed to load expenses for insights", "error", err, "household_id", member.HouseholdID)
		return nil, err
	}

	budgets, err := s.budgets.GetByMonth(member.HouseholdID, budgetDatamodel.NormalizeMonth(month))
	if err != nil {
		s.logger.Error("failed to load budgets for insights", "error", err, "household_id", member.HouseholdID)
		return nil, err
	}

	categories, err := s.categories.GetByHousehold(member.HouseholdID)
	if err != nil {
		s.logger.Error("failed to load categories for insights", "error", err, "household_id", member.HouseholdID)
		return nil, err
	}

	partnerName := "tu pareja"
	if member.PartnerID != "" && s.members != nil {
		if partner, err := s.members.GetMemberByID(member.PartnerID); err == nil {
			partnerName = partner.Name
		}
	}

	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	return Analyze(Input{
		Expenses:    expenses,
		Budgets:     budgets,
		Categories:  categories,
		Month:       month,
		Viewpoint:   member.ID,
		PartnerID:   member.PartnerID,
		PartnerName: partnerName,
		Currency:    s.currency,
		Reference:   reference,
	}), nil
}
