package store

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/spendwise/internal/model"
)

// SeedDataset returns the built-in first-run dataset: ten categories and
// five sample expenses with dates relative to today. It is adopted only
// when persisted storage is empty or absent.
func SeedDataset(today model.Date) ([]model.Category, []model.Expense) {
	categories := []model.Category{
		{ID: "cat-1", Name: "Groceries", Icon: "ShoppingCart"},
		{ID: "cat-2", Name: "Dining", Icon: "Utensils"},
		{ID: "cat-3", Name: "Transportation", Icon: "Car"},
		{ID: "cat-4", Name: "Utilities", Icon: "Home"},
		{ID: "cat-5", Name: "Entertainment", Icon: "Film"},
		{ID: "cat-6", Name: "Work", Icon: "Briefcase"},
		{ID: "cat-7", Name: "Healthcare", Icon: "Heart"},
		{ID: "cat-8", Name: "Education", Icon: "Book"},
		{ID: "cat-9", Name: "Personal Care", Icon: "Sparkles"},
		{ID: "cat-10", Name: "Miscellaneous", Icon: "Plus"},
	}

	expenses := []model.Expense{
		{
			ID:          "exp-1",
			Description: "Monthly groceries",
			Amount:      decimal.NewFromFloat(150.75),
			Category:    "Groceries",
			Date:        today.AddDays(-2),
		},
		{
			ID:          "exp-2",
			Description: "Dinner with friends",
			Amount:      decimal.NewFromFloat(55.00),
			Category:    "Dining",
			Date:        today.AddDays(-5),
		},
		{
			ID:          "exp-3",
			Description: "Gasoline for car",
			Amount:      decimal.NewFromFloat(40.20),
			Category:    "Transportation",
			Date:        today.AddDays(-10),
		},
		{
			ID:          "exp-4",
			Description: "Electricity bill",
			Amount:      decimal.NewFromFloat(75.50),
			Category:    "Utilities",
			Date:        today.AddMonths(-1),
		},
		{
			ID:          "exp-5",
			Description: "Movie tickets",
			Amount:      decimal.NewFromFloat(25.00),
			Category:    "Entertainment",
			Date:        today.AddMonths(-1),
		},
	}

	return categories, expenses
}
