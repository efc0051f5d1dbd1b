package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/spendwise/internal/model"
)

func expense(desc string, amount float64, category, date string) model.Expense {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Expense{
		ID:          "exp-" + desc,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Date:        d,
	}
}

func TestSummarize(t *testing.T) {
	expenses := []model.Expense{
		expense("a", 100.00, "Groceries", "2024-06-10"),
		expense("b", 50.00, "Dining", "2024-06-01"),
		expense("c", 25.00, "Dining", "2024-01-15"),
		expense("d", 10.00, "Utilities", "2023-12-31"),
	}

	s := Summarize(expenses, model.NewDate(2024, time.June, 15))

	assert.Equal(t, 4, s.Count)
	assert.True(t, decimal.NewFromFloat(185.00).Equal(s.Total), "total %s", s.Total)
	assert.True(t, decimal.NewFromFloat(150.00).Equal(s.ThisMonth), "month %s", s.ThisMonth)
	assert.True(t, decimal.NewFromFloat(175.00).Equal(s.ThisYear), "year %s", s.ThisYear)
	assert.True(t, decimal.NewFromFloat(46.25).Equal(s.AverageTransaction), "avg %s", s.AverageTransaction)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, model.Today())
	assert.Zero(t, s.Count)
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.AverageTransaction.IsZero())
}

func TestMonthlyTotals(t *testing.T) {
	expenses := []model.Expense{
		expense("a", 100.00, "Groceries", "2024-06-10"),
		expense("b", 50.00, "Dining", "2024-06-20"),
		expense("c", 25.00, "Dining", "2024-01-15"),
		expense("d", 10.00, "Utilities", "2023-06-01"), // different year, ignored
	}

	totals := MonthlyTotals(expenses, 2024)

	assert.True(t, decimal.NewFromFloat(25.00).Equal(totals[0]))
	assert.True(t, decimal.NewFromFloat(150.00).Equal(totals[5]))
	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 10, 11} {
		assert.True(t, totals[i].IsZero(), "month %d", i+1)
	}
}

func TestCategoryTotalsSortedDescending(t *testing.T) {
	expenses := []model.Expense{
		expense("a", 20.00, "Dining", "2024-06-10"),
		expense("b", 100.00, "Groceries", "2024-06-11"),
		expense("c", 30.00, "Dining", "2024-06-12"),
		expense("d", 5.00, "Gone Category", "2024-06-13"), // orphaned name
	}

	totals := CategoryTotals(expenses)

	assert.Len(t, totals, 3)
	assert.Equal(t, "Groceries", totals[0].Name)
	assert.Equal(t, "Dining", totals[1].Name)
	assert.Equal(t, "Gone Category", totals[2].Name)
	assert.True(t, decimal.NewFromFloat(50.00).Equal(totals[1].Total))
}

func TestRecent(t *testing.T) {
	expenses := []model.Expense{
		expense("old", 1.00, "Dining", "2024-01-01"),
		expense("new", 1.00, "Dining", "2024-06-01"),
		expense("mid", 1.00, "Dining", "2024-03-01"),
	}

	recent := Recent(expenses, 2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].Description)
	assert.Equal(t, "mid", recent[1].Description)

	// Zero limit returns everything.
	assert.Len(t, Recent(expenses, 0), 3)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Jan", MonthName(1))
	assert.Equal(t, "Dec", MonthName(12))
}
