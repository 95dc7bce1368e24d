package settlement

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
	"github.com/casafin/household-ledger/internal/core/events"
)

// Repository defines the data access methods for settlements.
type Repository interface {
	Create(settlement *settlementDatamodel.Settlement) error
	GetByHousehold(householdID string) ([]*settlementDatamodel.Settlement, error)
}

// BalanceAPI reports the net balance from one member's viewpoint; implemented
// by the ledger service.
type BalanceAPI interface {
	NetBalance(householdID, viewpointID string) (float64, error)
}

// Service handles settlement business logic.
type Service struct {
	repo    Repository
	balance BalanceAPI
	bus     *events.EventBus
	logger  *slog.Logger
}

func NewService(repo Repository, balance BalanceAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		balance: balance,
		bus:     bus,
		logger:  logger,
	}
}

// CreateSettlement records a transfer between the two members. A degenerate
// self-settlement is accepted and later ignored by the balance computation.
func (s *Service) CreateSettlement(householdID string, dto CreateSettlementDTO) (*Settlement, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("settlement validation failed", "error", err, "household_id", householdID)
		return nil, err
	}

	record := &settlementDatamodel.Settlement{
		ID:          uuid.New().String(),
		Amount:      dto.Amount,
		PaidBy:      dto.PaidBy,
		PaidTo:      dto.PaidTo,
		Date:        dto.Date,
		HouseholdID: householdID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create settlement", "error", err, "household_id", householdID)
		return nil, err
	}

	s.publish(events.NewSettlementRecordedEvent(householdID, record.ID, record.Amount))

	s.logger.Info("settlement recorded",
		"settlement_id", record.ID,
		"household_id", householdID,
		"amount", record.Amount)

	return FromDataModel(record), nil
}

// ListSettlements returns the household's settlement history, newest first.
func (s *Service) ListSettlements(householdID string) ([]*Settlement, error) {
	records, err := s.repo.GetByHousehold(householdID)
	if err != nil {
		s.logger.Error("failed to list settlements", "error", err, "household_id", householdID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// SettleUp records the single transfer that brings the household balance to
// zero. The debtor pays the creditor the absolute balance; when the viewpoint
// member has no partner yet, both sides are the viewpoint and the record is a
// placeholder with no ledger effect.
func (s *Service) SettleUp(householdID, viewpointID, partnerID string, date time.Time) (*Settlement, error) {
	balance, err := s.balance.NetBalance(householdID, viewpointID)
	if err != nil {
		s.logger.Error("failed to compute balance for settle-up", "error", err, "household_id", householdID)
		return nil, err
	}

	if balance == 0 {
		return nil, ErrNothingToSettle
	}

	paidBy, paidTo := viewpointID, partnerID
	if balance > 0 {
		// partner owes the viewpoint
		paidBy, paidTo = partnerID, viewpointID
	}
	if partnerID == "" {
		paidBy, paidTo = viewpointID, viewpointID
	}

	return s.CreateSettlement(householdID, CreateSettlementDTO{
		Amount: math.Abs(balance),
		PaidBy: paidBy,
		PaidTo: paidTo,
		Date:   date,
	})
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
