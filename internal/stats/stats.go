// Package stats derives read-only aggregations from the expense
// collection for dashboard views.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/spendwise/internal/model"
)

// Summary holds the headline spending figures.
type Summary struct {
	Total              decimal.Decimal
	ThisMonth          decimal.Decimal
	ThisYear           decimal.Decimal
	AverageTransaction decimal.Decimal
	Count              int
}

// CategoryTotal is a per-category spending sum.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// Summarize computes headline figures relative to the given date.
func Summarize(expenses []model.Expense, now model.Date) Summary {
	s := Summary{
		Total:              decimal.Zero,
		ThisMonth:          decimal.Zero,
		ThisYear:           decimal.Zero,
		AverageTransaction: decimal.Zero,
		Count:              len(expenses),
	}

	for _, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
		if e.Date.Year() == now.Year() {
			s.ThisYear = s.ThisYear.Add(e.Amount)
			if e.Date.Month() == now.Month() {
				s.ThisMonth = s.ThisMonth.Add(e.Amount)
			}
		}
	}

	if s.Count > 0 {
		s.AverageTransaction = s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
	}

	return s
}

// MonthlyTotals buckets spending into the twelve months of the given year.
// Expenses outside that year are ignored.
func MonthlyTotals(expenses []model.Expense, year int) [12]decimal.Decimal {
	var totals [12]decimal.Decimal
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, e := range expenses {
		if e.Date.Year() != year {
			continue
		}
		idx := int(e.Date.Month()) - 1
		totals[idx] = totals[idx].Add(e.Amount)
	}

	return totals
}

// CategoryTotals sums spending per category name, sorted by total
// descending. Orphaned category strings get their own bucket.
func CategoryTotals(expenses []model.Expense) []CategoryTotal {
	buckets := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		buckets[e.Category] = buckets[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(buckets))
	for name, total := range buckets {
		totals = append(totals, CategoryTotal{Name: name, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	return totals
}

// Recent returns up to n expenses sorted newest-first by date. Records
// sharing a date keep their collection order.
func Recent(expenses []model.Expense, n int) []model.Expense {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// MonthName returns the short display name for a one-based month index.
func MonthName(month int) string {
	return time.Month(month).String()[:3]
}
