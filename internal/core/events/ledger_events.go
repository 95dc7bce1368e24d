package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeExpenseCreated     = "expense.created"
	EventTypeExpenseUpdated     = "expense.updated"
	EventTypeExpenseDeleted     = "expense.deleted"
	EventTypeSettlementRecorded = "settlement.recorded"
	EventTypeBudgetUpserted     = "budget.upserted"
)

// LedgerChangedEvent is published whenever a record that feeds the balance
// computation changes. Subscribers use the household id to drop cached
// balances for that household.
type LedgerChangedEvent struct {
	BaseEvent
	HouseholdID string  `json:"household_id"`
	RecordID    string  `json:"record_id"`
	Amount      float64 `json:"amount"`
}

// Household makes the event HouseholdScoped so the bus can log it.
func (e *LedgerChangedEvent) Household() string {
	return e.HouseholdID
}

func newLedgerChangedEvent(eventType, householdID, recordID string, amount float64) *LedgerChangedEvent {
	return &LedgerChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"household_id": householdID,
				"record_id":    recordID,
				"amount":       amount,
			},
		},
		HouseholdID: householdID,
		RecordID:    recordID,
		Amount:      amount,
	}
}

func NewExpenseCreatedEvent(householdID, expenseID string, amount float64) *LedgerChangedEvent {
	return newLedgerChangedEvent(EventTypeExpenseCreated, householdID, expenseID, amount)
}

func NewExpenseUpdatedEvent(householdID, expenseID string, amount float64) *LedgerChangedEvent {
	return newLedgerChangedEvent(EventTypeExpenseUpdated, householdID, expenseID, amount)
}

func NewExpenseDeletedEvent(householdID, expenseID string) *LedgerChangedEvent {
	return newLedgerChangedEvent(EventTypeExpenseDeleted, householdID, expenseID, 0)
}

func NewSettlementRecordedEvent(householdID, settlementID string, amount float64) *LedgerChangedEvent {
	return newLedgerChangedEvent(EventTypeSettlementRecorded, householdID, settlementID, amount)
}

func NewBudgetUpsertedEvent(householdID, budgetID string, amount float64) *LedgerChangedEvent {
	return newLedgerChangedEvent(EventTypeBudgetUpserted, householdID, budgetID, amount)
}
