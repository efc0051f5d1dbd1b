package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValidate(t *testing.T) {
	cat := Category{ID: "cat-1", Name: "Groceries", Icon: "ShoppingCart"}
	assert.NoError(t, cat.Validate())

	cat.Name = "   "
	assert.ErrorIs(t, cat.Validate(), ErrInvalidCategory)
}

func TestMatchCategory(t *testing.T) {
	categories := []Category{
		{ID: "cat-1", Name: "Dining", Icon: "Utensils"},
		{ID: "cat-2", Name: "Groceries", Icon: "ShoppingCart"},
	}

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantMatch bool
	}{
		{name: "exact match", input: "Dining", wantName: "Dining", wantMatch: true},
		{name: "case-insensitive match", input: "dining", wantName: "Dining", wantMatch: true},
		{name: "upper case match", input: "GROCERIES", wantName: "Groceries", wantMatch: true},
		{name: "no match", input: "Rent", wantMatch: false},
		{name: "no partial match", input: "Din", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := MatchCategory(tt.input, categories)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantName, cat.Name)
			}
		})
	}
}

func TestIconGlyphFallback(t *testing.T) {
	assert.Equal(t, "🛒", IconGlyph("ShoppingCart"))
	assert.Equal(t, "🍴", IconGlyph("Utensils"))

	// Unknown names fall back to the default glyph.
	assert.Equal(t, IconGlyph(DefaultIcon), IconGlyph("NoSuchIcon"))
	assert.Equal(t, IconGlyph(DefaultIcon), IconGlyph(""))

	assert.True(t, KnownIcon("Sparkles"))
	assert.False(t, KnownIcon("NoSuchIcon"))

	names := IconNames()
	assert.Len(t, names, 10)
	assert.True(t, sort.StringsAreSorted(names), "names must come back in stable order")
}
