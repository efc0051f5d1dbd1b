package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrInvalidCategory = errors.New("invalid category")
)

// Category represents a named grouping label with a display glyph.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Validate checks that the category fields satisfy the data model rules.
// Name uniqueness is not enforced; duplicate names are a known gap.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	return nil
}

// MatchCategory performs a case-insensitive exact match of name against the
// given categories and returns the first match. Used to resolve a suggested
// category label to an existing category.
func MatchCategory(name string, categories []Category) (Category, bool) {
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return Category{}, false
}
