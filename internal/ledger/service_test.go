package ledger_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
	"github.com/casafin/household-ledger/internal/core/events"
	"github.com/casafin/household-ledger/internal/ledger"
)

type stubExpenseSource struct {
	expenses []*expenseDatamodel.Expense
	calls    int
}

func (s *stubExpenseSource) GetByHousehold(string) ([]*expenseDatamodel.Expense, error) {
	s.calls++
	return s.expenses, nil
}

type stubSettlementSource struct {
	settlements []*settlementDatamodel.Settlement
}

func (s *stubSettlementSource) GetByHousehold(string) ([]*settlementDatamodel.Settlement, error) {
	return s.settlements, nil
}

var _ = Describe("Ledger Service", func() {
	var (
		expenses    *stubExpenseSource
		settlements *stubSettlementSource
		bus         *events.EventBus
		service     *ledger.Service
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	monthExpense := func(id string, amount float64, paidBy string, day int) *expenseDatamodel.Expense {
		return &expenseDatamodel.Expense{
			ID:          id,
			Amount:      amount,
			CategoryID:  "cat-1",
			PaidBy:      paidBy,
			CreatedBy:   paidBy,
			SplitType:   expenseDatamodel.SplitFiftyFifty,
			Date:        time.Date(2026, time.June, day, 0, 0, 0, 0, time.UTC),
			HouseholdID: "house-1",
		}
	}

	BeforeEach(func() {
		expenses = &stubExpenseSource{}
		settlements = &stubSettlementSource{}
		bus = events.NewEventBus(testLogger)
		service = ledger.NewService(expenses, settlements, bus, testLogger)
	})

	Describe("NetBalance", func() {
		It("computes once and serves repeats from the cache", func() {
			expenses.expenses = []*expenseDatamodel.Expense{monthExpense("exp-1", 100, "member-a", 3)}

			balance, err := service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(50.0))

			_, err = service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses.calls).To(Equal(1))
		})

		It("drops the cache when a ledger event arrives", func() {
			expenses.expenses = []*expenseDatamodel.Expense{monthExpense("exp-1", 100, "member-a", 3)}

			balance, err := service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(50.0))

			expenses.expenses = append(expenses.expenses, monthExpense("exp-2", 40, "member-a", 4))
			err = bus.PublishSync(context.Background(), events.NewExpenseCreatedEvent("house-1", "exp-2", 40))
			Expect(err).NotTo(HaveOccurred())

			balance, err = service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(70.0))
			Expect(expenses.calls).To(Equal(2))
		})

		It("keeps other households cached", func() {
			expenses.expenses = []*expenseDatamodel.Expense{monthExpense("exp-1", 100, "member-a", 3)}

			_, err := service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())

			err = bus.PublishSync(context.Background(), events.NewExpenseCreatedEvent("house-2", "exp-x", 10))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses.calls).To(Equal(1))
		})

		It("folds settlements into the balance", func() {
			expenses.expenses = []*expenseDatamodel.Expense{monthExpense("exp-1", 100, "member-a", 3)}
			settlements.settlements = []*settlementDatamodel.Settlement{
				{ID: "set-1", Amount: 50, PaidBy: "member-b", PaidTo: "member-a", HouseholdID: "house-1"},
			}

			balance, err := service.NetBalance("house-1", "member-a")
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(0.0))
		})
	})

	Describe("Report", func() {
		It("aggregates only the requested month", func() {
			expenses.expenses = []*expenseDatamodel.Expense{
				monthExpense("exp-1", 100, "member-a", 3),
				monthExpense("exp-2", 60, "member-b", 20),
			}
			other := monthExpense("exp-3", 999, "member-a", 5)
			other.Date = time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)
			expenses.expenses = append(expenses.expenses, other)

			report, err := service.Report("house-1", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Month).To(Equal("2026-06"))
			Expect(report.Total).To(Equal(160.0))
			Expect(report.Count).To(Equal(2))
			Expect(report.ByCategory).To(HaveKeyWithValue("cat-1", 160.0))
			Expect(report.ByPayer).To(HaveKeyWithValue("member-a", 100.0))
			Expect(report.ByPayer).To(HaveKeyWithValue("member-b", 60.0))
		})
	})
})
