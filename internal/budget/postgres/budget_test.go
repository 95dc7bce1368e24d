package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/budget"
	budgetPostgres "github.com/casafin/household-ledger/internal/budget/postgres"
	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
)

func TestBudgetPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Budget Postgres Suite")
}

var _ = Describe("Budget Repository", func() {
	var (
		db   *gorm.DB
		repo budget.Repository
	)

	june := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	newBudget := func(id, categoryID string, amount float64) *budgetDatamodel.Budget {
		return &budgetDatamodel.Budget{
			ID:          id,
			CategoryID:  categoryID,
			HouseholdID: "house-1",
			Month:       june,
			Amount:      amount,
			CreatedAt:   time.Now(),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&budgetDatamodel.Budget{})).To(Succeed())
		repo = budgetPostgres.NewBudgetRepository(db)
	})

	It("inserts a fresh ceiling", func() {
		Expect(repo.Upsert(newBudget("bud-1", "cat-1", 500))).To(Succeed())

		list, err := repo.GetByMonth("house-1", june)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Amount).To(Equal(500.0))
	})

	It("replaces the amount on a key conflict instead of adding a row", func() {
		Expect(repo.Upsert(newBudget("bud-1", "cat-1", 500))).To(Succeed())
		Expect(repo.Upsert(newBudget("bud-2", "cat-1", 650))).To(Succeed())

		list, err := repo.GetByMonth("house-1", june)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].ID).To(Equal("bud-1"))
		Expect(list[0].Amount).To(Equal(650.0))
	})

	It("scopes month listings to the household", func() {
		Expect(repo.Upsert(newBudget("bud-1", "cat-1", 500))).To(Succeed())

		other := newBudget("bud-2", "cat-1", 300)
		other.HouseholdID = "house-2"
		Expect(repo.Upsert(other)).To(Succeed())

		list, err := repo.GetByMonth("house-1", june)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].HouseholdID).To(Equal("house-1"))
	})

	It("returns the domain not-found error for unknown ids", func() {
		_, err := repo.GetByID("nope")
		Expect(err).To(Equal(errors.ErrBudgetNotFound))
	})

	It("deletes by id", func() {
		Expect(repo.Upsert(newBudget("bud-1", "cat-1", 500))).To(Succeed())
		Expect(repo.Delete("bud-1")).To(Succeed())

		_, err := repo.GetByID("bud-1")
		Expect(err).To(Equal(errors.ErrBudgetNotFound))
	})
})
