// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded transaction.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// Validate checks that the expense fields satisfy the data model rules.
// The category string is not checked against existing categories; orphaned
// references are tolerated.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidExpense)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidExpense)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidExpense)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	return nil
}
