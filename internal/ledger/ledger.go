// Package ledger computes balances for a two-member household from immutable
// expense and settlement snapshots. All functions here are pure: they never
// mutate their inputs and hold no state, so concurrent calls are safe.
package ledger

import (
	"time"

	expenseDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/expense"
	settlementDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/settlement"
)

// creatorShare returns the portion of the amount attributable to the member
// who created the record. The split table is creator-relative: solo_mine means
// the whole expense belongs to the creator, solo_partner to the other member,
// and a custom percentage is the creator's share. Unrecognized split types
// fall back to the 50/50 row rather than failing.
func creatorShare(e *expenseDatamodel.Expense) float64 {
	switch e.SplitType {
	case expenseDatamodel.SplitSoloMine:
		return e.Amount
	case expenseDatamodel.SplitSoloPartner:
		return 0
	case expenseDatamodel.SplitCustom:
		pct := e.SplitPercentage
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		return e.Amount * float64(pct) / 100
	default:
		return e.Amount / 2
	}
}

// ShareOf returns the signed amount the viewpoint member is owed (positive)
// or owes (negative) for a single expense. The member who paid is owed the
// other member's share; the member who did not pay owes their own share.
func ShareOf(e *expenseDatamodel.Expense, viewpointID string) float64 {
	share := creatorShare(e)

	viewpointShare := share
	if e.CreatedBy != viewpointID {
		viewpointShare = e.Amount - share
	}

	if e.PaidBy == viewpointID {
		return e.Amount - viewpointShare
	}
	return -viewpointShare
}

// NetBalance sums ShareOf over every expense and applies settlement
// adjustments: a settlement paid by the viewpoint raises their balance toward
// zero, one received lowers it. Positive means the partner net-owes the
// viewpoint. The sum is order independent.
func NetBalance(expenses []*expenseDatamodel.Expense, settlements []*settlementDatamodel.Settlement, viewpointID string) float64 {
	var balance float64

	for _, e := range expenses {
		balance += ShareOf(e, viewpointID)
	}

	for _, s := range settlements {
		if s.PaidBy == s.PaidTo {
			// self-settlement placeholder, no effect on the balance
			continue
		}
		switch viewpointID {
		case s.PaidBy:
			balance += s.Amount
		case s.PaidTo:
			balance -= s.Amount
		}
	}

	return balance
}

// PaidTotal sums the amounts physically paid by one member.
func PaidTotal(expenses []*expenseDatamodel.Expense, memberID string) float64 {
	var total float64
	for _, e := range expenses {
		if e.PaidBy == memberID {
			total += e.Amount
		}
	}
	return total
}

// CategoryTotals groups expense amounts by category id.
func CategoryTotals(expenses []*expenseDatamodel.Expense) map[string]float64 {
	totals := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		totals[e.CategoryID] += e.Amount
	}
	return totals
}

// FilterMonth keeps the expenses dated inside the calendar month containing
// the given date.
func FilterMonth(expenses []*expenseDatamodel.Expense, month time.Time) []*expenseDatamodel.Expense {
	var out []*expenseDatamodel.Expense
	for _, e := range expenses {
		if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
			out = append(out, e)
		}
	}
	return out
}

// Total sums all expense amounts in the snapshot.
func Total(expenses []*expenseDatamodel.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
