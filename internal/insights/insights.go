// Package insights derives ordered, human-readable financial observations for
// one household month. Analyze is a pure function: the reference date ("today")
// is an explicit input so pacing and projection logic stays testable.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	budgetDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/budget"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	"github.com/casafin/household-ledger/internal/ledger"
	"github.com/casafin/household-ledger/pkg/currency"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityTip     Severity = "tip"
)

// Insight is one observation; the slice order returned by Analyze is the
// user-facing order.
type Insight struct {
	Severity    Severity `json:"severity"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Input is an immutable snapshot plus the analysis viewpoint.
type Input struct {
	Expenses    []*expenseDatamodel.Expense   // full history, unfiltered
	Budgets     []*budgetDatamodel.Budget     // budgets for the target month
	Categories  []*categoryDatamodel.Category // for names and icons
	Month       time.Time                     // any instant within the target month
	Viewpoint   string
	PartnerID   string
	PartnerName string
	Currency    string
	Reference   time.Time // "today"; never read from the system clock
}

const (
	spendingUpThreshold   = 20.0
	spendingDownThreshold = -10.0
	topCategoryThreshold  = 40.0
	risingCategoryFactor  = 1.5
	imbalanceThreshold    = 70.0
	pacingDayCutoff       = 25
	pacingSlackPct        = 10.0
	weekendThreshold      = 50.0
	volumeTipThreshold    = 50
)

type categoryTotal struct {
	id       string
	current  float64
	previous float64
	cat      *categoryDatamodel.Category
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func daysIn(t time.Time) int {
	_, end := monthBounds(t)
	return end.Day()
}

func inRange(d, start, end time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// Analyze returns the ordered insight sequence for the target month.
// It is deterministic for a fixed Input, including Reference.
func Analyze(in Input) []Insight {
	format := currency.NewFormatter(in.Currency)

	start, end := monthBounds(in.Month)
	prevStart, prevEnd := monthBounds(start.AddDate(0, -1, 0))

	var current, previous []*expenseDatamodel.Expense
	for _, e := range in.Expenses {
		switch {
		case inRange(e.Date, start, end):
			current = append(current, e)
		case inRange(e.Date, prevStart, prevEnd):
			previous = append(previous, e)
		}
	}

	if len(current) == 0 {
		return []Insight{{
			Severity:    SeverityInfo,
			Icon:        "📝",
			Title:       "Sin datos este mes",
			Description: "Agrega gastos para ver análisis y recomendaciones.",
		}}
	}

	var results []Insight
	totalCurrent := ledger.Total(current)
	totalPrev := ledger.Total(previous)

	results = append(results, monthOverMonth(totalCurrent, totalPrev, format)...)

	ranked := rankCategories(current, previous, in.Categories)
	results = append(results, topCategory(ranked, totalCurrent, format)...)
	results = append(results, fastestRising(ranked, format)...)
	results = append(results, paymentImbalance(current, in, format)...)
	results = append(results, budgetPacing(current, totalCurrent, in, format)...)
	results = append(results, weekendConcentration(current, totalCurrent, format)...)

	if len(current) > volumeTipThreshold {
		results = append(results, Insight{
			Severity:    SeverityTip,
			Icon:        "🔢",
			Title:       fmt.Sprintf("%d transacciones este mes", len(current)),
			Description: "Muchas compras pequeñas pueden sumar. Consideren hacer compras más consolidadas.",
		})
	}

	return results
}

func monthOverMonth(totalCurrent, totalPrev float64, format currency.Formatter) []Insight {
	if totalPrev <= 0 {
		// no baseline month, skip the comparison entirely
		return nil
	}

	pctChange := (totalCurrent - totalPrev) / totalPrev * 100
	shown := roundPct(pctChange)

	switch {
	case pctChange > spendingUpThreshold:
		return []Insight{{
			Severity: SeverityWarning,
			Icon:     "📈",
			Title:    fmt.Sprintf("Gastos +%d%% vs mes anterior", shown),
			Description: fmt.Sprintf("Gastaron %s vs %s el mes pasado. Revisen qué categorías aumentaron.",
				format(totalCurrent), format(totalPrev)),
		}}
	case pctChange < spendingDownThreshold:
		return []Insight{{
			Severity: SeveritySuccess,
			Icon:     "📉",
			Title:    fmt.Sprintf("Gastos %d%% vs mes anterior", shown),
			Description: fmt.Sprintf("¡Bien! Redujeron gastos de %s a %s.",
				format(totalPrev), format(totalCurrent)),
		}}
	default:
		sign := ""
		if shown > 0 {
			sign = "+"
		}
		return []Insight{{
			Severity: SeverityInfo,
			Icon:     "➡️",
			Title:    "Gastos estables",
			Description: fmt.Sprintf("Similar al mes pasado (%s%d%%). Total: %s.",
				sign, shown, format(totalCurrent)),
		}}
	}
}

func rankCategories(current, previous []*expenseDatamodel.Expense, categories []*categoryDatamodel.Category) []categoryTotal {
	byID := make(map[string]*categoryDatamodel.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[string]*categoryTotal)
	for _, e := range current {
		ct, ok := totals[e.CategoryID]
		if !ok {
			ct = &categoryTotal{id: e.CategoryID, cat: byID[e.CategoryID]}
			totals[e.CategoryID] = ct
		}
		ct.current += e.Amount
	}
	for _, e := range previous {
		ct, ok := totals[e.CategoryID]
		if !ok {
			ct = &categoryTotal{id: e.CategoryID, cat: byID[e.CategoryID]}
			totals[e.CategoryID] = ct
		}
		ct.previous += e.Amount
	}

	ranked := make([]categoryTotal, 0, len(totals))
	for _, ct := range totals {
		ranked = append(ranked, *ct)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].current != ranked[j].current {
			return ranked[i].current > ranked[j].current
		}
		return ranked[i].id < ranked[j].id
	})
	return ranked
}

func topCategory(ranked []categoryTotal, totalCurrent float64, format currency.Formatter) []Insight {
	if len(ranked) == 0 || totalCurrent <= 0 {
		return nil
	}
	top := ranked[0]
	if top.cat == nil {
		return nil
	}

	share := top.current / totalCurrent * 100
	shown := roundPct(share)

	severity := SeverityInfo
	description := fmt.Sprintf("Mayor gasto en %s: %s.", top.cat.Name, format(top.current))
	if share > topCategoryThreshold {
		severity = SeverityWarning
		description = fmt.Sprintf("%s representa casi la mitad de sus gastos (%s). Consideren formas de optimizar.",
			top.cat.Name, format(top.current))
	}

	return []Insight{{
		Severity:    severity,
		Icon:        top.cat.Icon,
		Title:       fmt.Sprintf("%s: %d%% del total", top.cat.Name, shown),
		Description: description,
	}}
}

func fastestRising(ranked []categoryTotal, format currency.Formatter) []Insight {
	for _, ct := range ranked {
		if ct.previous > 0 && ct.current > ct.previous*risingCategoryFactor && ct.cat != nil {
			rise := roundPct((ct.current - ct.previous) / ct.previous * 100)
			return []Insight{{
				Severity: SeverityWarning,
				Icon:     "🔺",
				Title:    fmt.Sprintf("%s subió %d%%", ct.cat.Name, rise),
				Description: fmt.Sprintf("De %s a %s. Revisen si fue gasto puntual o tendencia.",
					format(ct.previous), format(ct.current)),
			}}
		}
	}
	return nil
}

func paymentImbalance(current []*expenseDatamodel.Expense, in Input, format currency.Formatter) []Insight {
	myPaid := ledger.PaidTotal(current, in.Viewpoint)
	partnerPaid := ledger.PaidTotal(current, in.PartnerID)

	if myPaid <= 0 || partnerPaid <= 0 {
		return nil
	}

	ratio := myPaid / (myPaid + partnerPaid) * 100
	if ratio <= imbalanceThreshold && ratio >= 100-imbalanceThreshold {
		return nil
	}

	shown := roundPct(ratio)
	partnerName := in.PartnerName
	if partnerName == "" {
		partnerName = "Tu pareja"
	}

	description := fmt.Sprintf("%s ha pagado la mayoría (%s).", partnerName, format(partnerPaid))
	if ratio > imbalanceThreshold {
		description = fmt.Sprintf("Tú has pagado la mayoría (%s). Consideren equilibrar o saldar cuentas.",
			format(myPaid))
	}

	return []Insight{{
		Severity:    SeverityTip,
		Icon:        "⚖️",
		Title:       fmt.Sprintf("Desbalance en pagos: %d/%d", shown, 100-shown),
		Description: description,
	}}
}

func budgetPacing(current []*expenseDatamodel.Expense, totalCurrent float64, in Input, format currency.Formatter) []Insight {
	isCurrentMonth := in.Reference.Year() == in.Month.Year() && in.Reference.Month() == in.Month.Month()
	day := in.Reference.Day()
	daysInMonth := daysIn(in.Month)

	if !isCurrentMonth || day >= pacingDayCutoff {
		return nil
	}

	var totalBudget float64
	for _, b := range in.Budgets {
		totalBudget += b.Amount
	}

	avgPerDay := totalCurrent / float64(day)
	projected := avgPerDay * float64(daysInMonth)

	if totalBudget <= 0 {
		return []Insight{{
			Severity: SeverityInfo,
			Icon:     "🔮",
			Title:    fmt.Sprintf("Proyección: %s", format(projected)),
			Description: fmt.Sprintf("Al ritmo actual (%s/día), terminarían el mes con %s.",
				format(avgPerDay), format(projected)),
		}}
	}

	var results []Insight

	pctUsed := totalCurrent / totalBudget * 100
	expectedPct := float64(day) / float64(daysInMonth) * 100

	switch {
	case pctUsed > 100:
		results = append(results, Insight{
			Severity: SeverityWarning,
			Icon:     "🚨",
			Title:    fmt.Sprintf("Presupuesto excedido: %d%%", roundPct(pctUsed)),
			Description: fmt.Sprintf("Gastaron %s de %s presupuestado. Excedieron por %s.",
				format(totalCurrent), format(totalBudget), format(totalCurrent-totalBudget)),
		})
	case pctUsed > expectedPct+pacingSlackPct:
		results = append(results, Insight{
			Severity: SeverityWarning,
			Icon:     "⚠️",
			Title:    fmt.Sprintf("Ritmo alto: %d%% del presupuesto", roundPct(pctUsed)),
			Description: fmt.Sprintf("Al día %d deberían estar en ~%d%% pero van en %d%%. Moderen el gasto.",
				day, roundPct(expectedPct), roundPct(pctUsed)),
		})
	default:
		results = append(results, Insight{
			Severity: SeveritySuccess,
			Icon:     "💪",
			Title:    fmt.Sprintf("Buen ritmo: %d%% del presupuesto", roundPct(pctUsed)),
			Description: fmt.Sprintf("Van bien. Al día %d esperado ~%d%%, llevan %d%%.",
				day, roundPct(expectedPct), roundPct(pctUsed)),
		})
	}

	if projected > totalBudget {
		dailyReduction := math.Ceil((projected - totalBudget) / float64(daysInMonth-day))
		results = append(results, Insight{
			Severity: SeverityWarning,
			Icon:     "🔮",
			Title:    fmt.Sprintf("Proyección: %s", format(projected)),
			Description: fmt.Sprintf("Excederían el presupuesto de %s por %s. Reduzcan %s/día para ajustarse.",
				format(totalBudget), format(projected-totalBudget), format(dailyReduction)),
		})
	} else {
		results = append(results, Insight{
			Severity: SeveritySuccess,
			Icon:     "🔮",
			Title:    fmt.Sprintf("Proyección: %s", format(projected)),
			Description: fmt.Sprintf("Dentro del presupuesto de %s con %s de margen.",
				format(totalBudget), format(totalBudget-projected)),
		})
	}

	byID := make(map[string]*categoryDatamodel.Category, len(in.Categories))
	for _, c := range in.Categories {
		byID[c.ID] = c
	}
	actuals := ledger.CategoryTotals(current)
	for _, b := range in.Budgets {
		cat := byID[b.CategoryID]
		actual := actuals[b.CategoryID]
		if cat == nil || b.Amount <= 0 || actual <= b.Amount {
			continue
		}
		overage := roundPct((actual - b.Amount) / b.Amount * 100)
		results = append(results, Insight{
			Severity: SeverityWarning,
			Icon:     cat.Icon,
			Title:    fmt.Sprintf("%s: excedido %d%%", cat.Name, overage),
			Description: fmt.Sprintf("Presupuesto: %s, gastado: %s.",
				format(b.Amount), format(actual)),
		})
	}

	return results
}

func weekendConcentration(current []*expenseDatamodel.Expense, totalCurrent float64, format currency.Formatter) []Insight {
	if totalCurrent <= 0 {
		return nil
	}

	var weekendTotal float64
	for _, e := range current {
		if wd := e.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendTotal += e.Amount
		}
	}

	pct := weekendTotal / totalCurrent * 100
	if pct <= weekendThreshold {
		return nil
	}

	return []Insight{{
		Severity: SeverityTip,
		Icon:     "🗓️",
		Title:    fmt.Sprintf("%d%% del gasto es los fines de semana", roundPct(pct)),
		Description: fmt.Sprintf("Gastan %s en fines de semana. Planeen actividades más económicas.",
			format(weekendTotal)),
	}}
}
