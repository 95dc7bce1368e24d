package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
	"github.com/casafin/household-ledger/internal/core/events"
)

// ExpenseSource loads the full expense snapshot of a household.
type ExpenseSource interface {
	GetByHousehold(householdID string) ([]*expenseDatamodel.Expense, error)
}

// SettlementSource loads the full settlement snapshot of a household.
type SettlementSource interface {
	GetByHousehold(householdID string) ([]*settlementDatamodel.Settlement, error)
}

type balanceKey struct {
	householdID string
	viewpointID string
}

// Service computes balances and monthly reports over the household's
// snapshots. Computed balances are cached per (household, viewpoint) and
// dropped whenever a ledger event for the household arrives on the bus.
type Service struct {
	expenses    ExpenseSource
	settlements SettlementSource
	logger      *slog.Logger

	mu    sync.RWMutex
	cache map[balanceKey]float64
}

func NewService(expenses ExpenseSource, settlements SettlementSource, bus *events.EventBus, logger *slog.Logger) *Service {
	s := &Service{
		expenses:    expenses,
		settlements: settlements,
		logger:      logger,
		cache:       make(map[balanceKey]float64),
	}

	if bus != nil {
		for _, eventType := range []string{
			events.EventTypeExpenseCreated,
			events.EventTypeExpenseUpdated,
			events.EventTypeExpenseDeleted,
			events.EventTypeSettlementRecorded,
		} {
			bus.Subscribe(eventType, s.onLedgerChanged)
		}
	}

	return s
}

func (s *Service) onLedgerChanged(_ context.Context, event events.Event) error {
	changed, ok := event.(*events.LedgerChangedEvent)
	if !ok {
		return nil
	}

	s.mu.Lock()
	for key := range s.cache {
		if key.householdID == changed.HouseholdID {
			delete(s.cache, key)
		}
	}
	s.mu.Unlock()

	s.logger.Debug("balance cache invalidated",
		"household_id", changed.HouseholdID,
		"event_type", event.EventType())
	return nil
}

// NetBalance returns the signed balance from the viewpoint member's side.
// Positive means the partner owes them.
func (s *Service) NetBalance(householdID, viewpointID string) (float64, error) {
	key := balanceKey{householdID, viewpointID}

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	expenses, err := s.expenses.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to load expenses for balance", "error", err, "household_id", householdID)
		return 0, err
	}
	settlements, err := s.settlements.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to load settlements for balance", "error", err, "household_id", householdID)
		return 0, err
	}

	balance := NetBalance(expenses, settlements, viewpointID)

	s.mu.Lock()
	s.cache[key] = balance
	s.mu.Unlock()

	return balance, nil
}

// MonthlyReport aggregates one calendar month of spending.
type MonthlyReport struct {
	Month      string             `json:"month"`
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	ByPayer    map[string]float64 `json:"by_payer"`
	Count      int                `json:"count"`
}

// Report aggregates the household's expenses for the month containing the
// given date. Settlements are transfers, not spending, so they stay out.
func (s *Service) Report(householdID string, month time.Time) (*MonthlyReport, error) {
	expenses, err := s.expenses.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to load expenses for report", "error", err, "household_id", householdID)
		return nil, err
	}

	monthly := FilterMonth(expenses, month)

	byPayer := make(map[string]float64, 2)
	for _, e := range monthly {
		byPayer[e.PaidBy] += e.Amount
	}

	return &MonthlyReport{
		Month:      time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Total:      Total(monthly),
		ByCategory: CategoryTotals(monthly),
		ByPayer:    byPayer,
		Count:      len(monthly),
	}, nil
}

// Snapshot returns the raw expense and settlement slices, used by callers
// that run their own analysis over the ledger.
func (s *Service) Snapshot(householdID string) ([]*expenseDatamodel.Expense, []*settlementDatamodel.Settlement, error) {
	expenses, err := s.expenses.GetByHousehold(householdID)
	if err != nil {
		return nil, nil, err
	}
	settlements, err := s.settlements.GetByHousehold(householdID)
	if err != nil {
		return nil, nil, err
	}
	return expenses, settlements, nil
}
