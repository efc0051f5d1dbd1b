package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		ID:          "exp-1",
		Description: "Coffee",
		Amount:      decimal.NewFromFloat(4.50),
		Category:    "Dining",
		Date:        NewDate(2024, time.January, 5),
	}

	tests := []struct {
		modify  func(*Expense)
		name    string
		wantErr bool
	}{
		{
			name:    "valid expense",
			modify:  func(_ *Expense) {},
			wantErr: false,
		},
		{
			name:    "empty description",
			modify:  func(e *Expense) { e.Description = "  " },
			wantErr: true,
		},
		{
			name:    "zero amount",
			modify:  func(e *Expense) { e.Amount = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "negative amount",
			modify:  func(e *Expense) { e.Amount = decimal.NewFromFloat(-1.25) },
			wantErr: true,
		},
		{
			name:    "missing category",
			modify:  func(e *Expense) { e.Category = "" },
			wantErr: true,
		},
		{
			name:    "missing date",
			modify:  func(e *Expense) { e.Date = Date{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.modify(&e)
			err := e.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExpense)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpenseJSONRoundTrip(t *testing.T) {
	e := Expense{
		ID:          "exp-42",
		Description: `Dinner "out"`,
		Amount:      decimal.NewFromFloat(55.00),
		Category:    "Dining",
		Date:        NewDate(2024, time.March, 17),
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-03-17"`)

	var decoded Expense
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, e.ID, decoded.ID)
	assert.Equal(t, e.Description, decoded.Description)
	assert.True(t, e.Amount.Equal(decoded.Amount))
	assert.Equal(t, e.Category, decoded.Category)
	assert.True(t, e.Date.Equal(decoded.Date))
}

func TestDateParse(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, "2024-01-05", d.String())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	assert.Equal(t, "2024-02-28", d.AddDays(-2).String())
	assert.Equal(t, "2024-02-01", d.AddMonths(-1).String())
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, d.Before(d.AddDays(1)))
}
