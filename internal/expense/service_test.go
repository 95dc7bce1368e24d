package expense_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/casafin/household-ledger/internal"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	"github.com/casafin/household-ledger/internal/expense"
)

func TestExpense(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Suite")
}

type mockExpenseRepository struct {
	expenses    map[string]*expenseDatamodel.Expense
	createError error
	getError    error
	updateError error
	deleteError error
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{expenses: make(map[string]*expenseDatamodel.Expense)}
}

func (m *mockExpenseRepository) Create(exp *expenseDatamodel.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	m.expenses[exp.ID] = exp
	return nil
}

func (m *mockExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	exp, ok := m.expenses[id]
	if !ok {
		return nil, errors.ErrExpenseNotFound
	}
	return exp, nil
}

func (m *mockExpenseRepository) GetByHousehold(householdID string) ([]*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	var out []*expenseDatamodel.Expense
	for _, exp := range m.expenses {
		if exp.HouseholdID == householdID {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (m *mockExpenseRepository) Update(exp *expenseDatamodel.Expense) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.expenses[exp.ID] = exp
	return nil
}

func (m *mockExpenseRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.expenses, id)
	return nil
}

var _ = Describe("Expense Service", func() {
	var (
		repo    *mockExpenseRepository
		service *expense.Service
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	validDTO := func() expense.CreateExpenseDTO {
		return expense.CreateExpenseDTO{
			Amount:     120.5,
			CategoryID: "cat-1",
			PaidBy:     "member-a",
			SplitType:  expenseDatamodel.SplitFiftyFifty,
			Date:       time.Date(2026, time.June, 4, 0, 0, 0, 0, time.UTC),
		}
	}

	BeforeEach(func() {
		repo = newMockExpenseRepository()
		service = expense.NewService(repo, nil, testLogger)
	})

	Describe("CreateExpense", func() {
		It("generates an id and stamps created_by from the acting member", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.CreatedBy).To(Equal("member-a"))
			Expect(created.HouseholdID).To(Equal("house-1"))
		})

		It("defaults the split percentage to 50 when absent", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.SplitPercentage).To(Equal(50))
		})

		It("keeps an explicit custom percentage", func() {
			dto := validDTO()
			pct := 30
			dto.SplitType = expenseDatamodel.SplitCustom
			dto.SplitPercentage = &pct

			created, err := service.CreateExpense("member-a", "house-1", dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.SplitPercentage).To(Equal(30))
		})

		It("rejects a non-positive amount", func() {
			dto := validDTO()
			dto.Amount = 0

			_, err := service.CreateExpense("member-a", "house-1", dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a custom percentage outside 0-100", func() {
			dto := validDTO()
			pct := 130
			dto.SplitType = expenseDatamodel.SplitCustom
			dto.SplitPercentage = &pct

			_, err := service.CreateExpense("member-a", "house-1", dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown split type at the boundary", func() {
			dto := validDTO()
			dto.SplitType = "thirds"

			_, err := service.CreateExpense("member-a", "house-1", dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetExpense", func() {
		It("refuses records from another household", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GetExpense(created.ID, "house-2")
			Expect(err).To(Equal(errors.ErrHouseholdMismatch))
		})

		It("returns not-found for unknown ids", func() {
			_, err := service.GetExpense("missing", "house-1")
			Expect(err).To(Equal(errors.ErrExpenseNotFound))
		})
	})

	Describe("UpdateExpense", func() {
		It("replaces fields but never created_by", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateExpense(created.ID, "house-1", expense.UpdateExpenseDTO{
				Amount:     200,
				CategoryID: "cat-2",
				PaidBy:     "member-b",
				SplitType:  expenseDatamodel.SplitSoloPartner,
				Date:       time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Amount).To(Equal(200.0))
			Expect(updated.PaidBy).To(Equal("member-b"))
			Expect(updated.CreatedBy).To(Equal("member-a"))
		})
	})

	Describe("DeleteExpense", func() {
		It("removes the record from the snapshot", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteExpense(created.ID, "house-1")).To(Succeed())

			list, err := service.ListExpenses("house-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("refuses to delete across households", func() {
			created, err := service.CreateExpense("member-a", "house-1", validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteExpense(created.ID, "house-2")).To(Equal(errors.ErrHouseholdMismatch))
		})
	})
})
