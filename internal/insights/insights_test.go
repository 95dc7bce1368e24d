package insights_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	"github.com/casafin/household-ledger/internal/insights"
)

func TestInsights(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Insights Suite")
}

const (
	memberA = "member-a"
	memberB = "member-b"
)

// June 2026 has 30 days; June 1st is a Monday.
var (
	targetMonth = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	otherMonth  = time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)

	groceries = &categoryDatamodel.Category{ID: "cat-groceries", Name: "Mercado", Icon: "🛒", HouseholdID: "house-1"}
	dining    = &categoryDatamodel.Category{ID: "cat-dining", Name: "Restaurantes", Icon: "🍽️", HouseholdID: "house-1"}
)

func expenseOn(day int, month time.Time, amount float64, categoryID, paidBy string) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:          "exp",
		Amount:      amount,
		CategoryID:  categoryID,
		PaidBy:      paidBy,
		CreatedBy:   paidBy,
		SplitType:   expenseDatamodel.SplitFiftyFifty,
		Date:        time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC),
		HouseholdID: "house-1",
	}
}

func baseInput(expenses []*expenseDatamodel.Expense) insights.Input {
	return insights.Input{
		Expenses:    expenses,
		Categories:  []*categoryDatamodel.Category{groceries, dining},
		Month:       targetMonth,
		Viewpoint:   memberA,
		PartnerID:   memberB,
		PartnerName: "Cami",
		Currency:    "COP",
		// reference outside the target month keeps pacing insights out of
		// scenarios that are not about budgets
		Reference: otherMonth,
	}
}

func titles(list []insights.Insight) []string {
	out := make([]string, len(list))
	for i, ins := range list {
		out[i] = ins.Title
	}
	return out
}

var _ = Describe("Analyze", func() {
	Context("with no expenses in the month", func() {
		It("returns exactly one no-data insight", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(3, otherMonth, 100, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(result).To(HaveLen(1))
			Expect(result[0].Severity).To(Equal(insights.SeverityInfo))
			Expect(result[0].Title).To(Equal("Sin datos este mes"))
		})
	})

	Context("month-over-month comparison", func() {
		It("warns when spending rose more than 20%", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(10, targetMonth.AddDate(0, -1, 0), 100, groceries.ID, memberA),
				expenseOn(10, targetMonth, 150, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(result[0].Severity).To(Equal(insights.SeverityWarning))
			Expect(result[0].Title).To(Equal("Gastos +50% vs mes anterior"))
		})

		It("celebrates when spending dropped more than 10%", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(10, targetMonth.AddDate(0, -1, 0), 200, groceries.ID, memberA),
				expenseOn(10, targetMonth, 150, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(result[0].Severity).To(Equal(insights.SeveritySuccess))
			Expect(result[0].Title).To(Equal("Gastos -25% vs mes anterior"))
		})

		It("reports stable spending otherwise", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(10, targetMonth.AddDate(0, -1, 0), 100, groceries.ID, memberA),
				expenseOn(10, targetMonth, 105, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(result[0].Severity).To(Equal(insights.SeverityInfo))
			Expect(result[0].Title).To(Equal("Gastos estables"))
		})

		It("is skipped when there is no previous-month baseline", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(10, targetMonth, 100, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("mes anterior")))
			Expect(titles(result)).NotTo(ContainElement("Gastos estables"))
		})
	})

	Context("top category share", func() {
		It("warns when the top category exceeds 40% of the month", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(5, targetMonth, 450, groceries.ID, memberA),
				expenseOn(8, targetMonth, 550, dining.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(result[0].Severity).To(Equal(insights.SeverityWarning))
			Expect(result[0].Title).To(Equal("Restaurantes: 55% del total"))
		})

		It("stays informational below the threshold", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(5, targetMonth, 400, groceries.ID, memberA),
				expenseOn(8, targetMonth, 350, dining.ID, memberA),
				expenseOn(9, targetMonth, 320, "cat-unknown", memberA),
			})

			result := insights.Analyze(in)
			// unknown category cannot be named, so the ranking skips nothing
			// but the top entry resolves to groceries
			Expect(result[0].Severity).To(Equal(insights.SeverityInfo))
			Expect(result[0].Title).To(Equal("Mercado: 37% del total"))
		})
	})

	Context("fastest-rising category", func() {
		It("flags only the first category that rose more than 1.5x", func() {
			prev := targetMonth.AddDate(0, -1, 0)
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(10, prev, 100, groceries.ID, memberA),
				expenseOn(10, prev, 100, dining.ID, memberA),
				expenseOn(10, targetMonth, 300, groceries.ID, memberA),
				expenseOn(11, targetMonth, 250, dining.ID, memberA),
			})

			result := insights.Analyze(in)
			rising := titles(result)
			Expect(rising).To(ContainElement("Mercado subió 200%"))
			Expect(rising).NotTo(ContainElement(ContainSubstring("Restaurantes subió")))
		})
	})

	Context("payment imbalance", func() {
		It("tips when one member pays over 70% of the month", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(5, targetMonth, 800, groceries.ID, memberA),
				expenseOn(6, targetMonth, 200, dining.ID, memberB),
			})

			result := insights.Analyze(in)
			Expect(titles(result)).To(ContainElement("Desbalance en pagos: 80/20"))
		})

		It("names the partner when they over-contribute", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(5, targetMonth, 200, groceries.ID, memberA),
				expenseOn(6, targetMonth, 800, dining.ID, memberB),
			})

			result := insights.Analyze(in)
			var found *insights.Insight
			for i := range result {
				if result[i].Severity == insights.SeverityTip {
					found = &result[i]
					break
				}
			}
			Expect(found).NotTo(BeNil())
			Expect(found.Description).To(ContainSubstring("Cami"))
		})

		It("stays silent when only one member paid", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(5, targetMonth, 1000, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("Desbalance")))
		})
	})

	Context("budget pacing", func() {
		reference := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

		budgetFor := func(categoryID string, amount float64) *budgetDatamodel.Budget {
			return &budgetDatamodel.Budget{
				ID:          "budget-" + categoryID,
				CategoryID:  categoryID,
				HouseholdID: "house-1",
				Month:       budgetDatamodel.NormalizeMonth(targetMonth),
				Amount:      amount,
			}
		}

		It("projects linearly and warns about the excess", func() {
			// day 10 of a 30-day month with 300 spent: 30/day, projected 900
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 300, groceries.ID, memberA),
			})
			in.Reference = reference
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			ts := titles(result)
			Expect(ts).To(ContainElement("Proyección: $900"))

			var projection *insights.Insight
			for i := range result {
				if result[i].Title == "Proyección: $900" {
					projection = &result[i]
				}
			}
			Expect(projection.Severity).To(Equal(insights.SeverityWarning))
			Expect(projection.Description).To(ContainSubstring("por $300"))
			// ceil(300 / 20 remaining days) = 15 per day
			Expect(projection.Description).To(ContainSubstring("$15/día"))
		})

		It("reports remaining margin when the projection fits", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 100, groceries.ID, memberA),
			})
			in.Reference = reference
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			var projection *insights.Insight
			for i := range result {
				if result[i].Title == "Proyección: $300" {
					projection = &result[i]
				}
			}
			Expect(projection).NotTo(BeNil())
			Expect(projection.Severity).To(Equal(insights.SeveritySuccess))
			Expect(projection.Description).To(ContainSubstring("margen"))
		})

		It("warns when the whole budget is already exceeded", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 700, groceries.ID, memberA),
			})
			in.Reference = reference
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			Expect(titles(result)).To(ContainElement("Presupuesto excedido: 117%"))
		})

		It("warns when the pace runs ahead of the calendar", func() {
			// day 10/30 => expected ~33%; 50% used is past the 10-point slack
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 300, groceries.ID, memberA),
			})
			in.Reference = reference
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			Expect(titles(result)).To(ContainElement("Ritmo alto: 50% del presupuesto"))
		})

		It("emits a per-category overage warning", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 150, groceries.ID, memberA),
			})
			in.Reference = reference
			in.Budgets = []*budgetDatamodel.Budget{
				budgetFor(groceries.ID, 100),
				budgetFor(dining.ID, 500),
			}

			result := insights.Analyze(in)
			Expect(titles(result)).To(ContainElement("Mercado: excedido 50%"))
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("Restaurantes: excedido")))
		})

		It("falls back to a plain projection without budgets", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 300, groceries.ID, memberA),
			})
			in.Reference = reference

			result := insights.Analyze(in)
			var projection *insights.Insight
			for i := range result {
				if result[i].Title == "Proyección: $900" {
					projection = &result[i]
				}
			}
			Expect(projection).NotTo(BeNil())
			Expect(projection.Severity).To(Equal(insights.SeverityInfo))
		})

		It("skips pacing late in the month", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 300, groceries.ID, memberA),
			})
			in.Reference = time.Date(2026, time.June, 27, 0, 0, 0, 0, time.UTC)
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("Proyección")))
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("presupuesto")))
		})

		It("skips pacing for past months", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(2, targetMonth, 300, groceries.ID, memberA),
			})
			in.Reference = time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
			in.Budgets = []*budgetDatamodel.Budget{budgetFor(groceries.ID, 600)}

			result := insights.Analyze(in)
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("Proyección")))
		})
	})

	Context("weekend concentration", func() {
		It("tips when weekend spending passes half of the month", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				// June 6th 2026 is a Saturday, June 7th a Sunday
				expenseOn(6, targetMonth, 400, dining.ID, memberA),
				expenseOn(7, targetMonth, 300, dining.ID, memberA),
				expenseOn(9, targetMonth, 300, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(titles(result)).To(ContainElement("70% del gasto es los fines de semana"))
		})

		It("stays silent at or below half", func() {
			in := baseInput([]*expenseDatamodel.Expense{
				expenseOn(6, targetMonth, 500, dining.ID, memberA),
				expenseOn(9, targetMonth, 500, groceries.ID, memberA),
			})

			result := insights.Analyze(in)
			Expect(titles(result)).NotTo(ContainElement(ContainSubstring("fines de semana")))
		})
	})

	Context("transaction volume", func() {
		It("tips when the month has more than 50 entries", func() {
			var expenses []*expenseDatamodel.Expense
			for i := 0; i < 51; i++ {
				expenses = append(expenses, expenseOn(1+i%28, targetMonth, 10, groceries.ID, memberA))
			}

			result := insights.Analyze(baseInput(expenses))
			Expect(titles(result)).To(ContainElement("51 transacciones este mes"))
		})
	})

	It("keeps the user-facing order and is deterministic", func() {
		prev := targetMonth.AddDate(0, -1, 0)
		in := baseInput([]*expenseDatamodel.Expense{
			expenseOn(10, prev, 100, groceries.ID, memberA),
			expenseOn(10, targetMonth, 500, groceries.ID, memberA),
			expenseOn(11, targetMonth, 100, dining.ID, memberB),
		})

		first := insights.Analyze(in)
		second := insights.Analyze(in)
		Expect(second).To(Equal(first))

		ts := titles(first)
		Expect(ts[0]).To(ContainSubstring("vs mes anterior"))
		Expect(ts[1]).To(ContainSubstring("del total"))
	})
})
