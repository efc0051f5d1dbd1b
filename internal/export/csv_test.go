package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/spendwise/internal/model"
)

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{
			ID:          "exp-1",
			Description: "Grocery Store",
			Amount:      decimal.NewFromFloat(150.75),
			Category:    "Groceries",
			Date:        model.NewDate(2024, time.March, 17),
		},
		{
			ID:          "exp-2",
			Description: `Dinner at "Chez Nous"`,
			Amount:      decimal.NewFromFloat(55.00),
			Category:    "Dining",
			Date:        model.NewDate(2024, time.March, 14),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sampleExpenses()))

	want := "id,description,amount,category,date\n" +
		`"exp-1","Grocery Store","150.75","Groceries","2024-03-17"` + "\n" +
		`"exp-2","Dinner at ""Chez Nous""","55.00","Dining","2024-03-14"` + "\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteCSVEmptyCollection(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, "id,description,amount,category,date\n", sb.String())
}

func TestImportCSVRoundTrip(t *testing.T) {
	expenses := sampleExpenses()

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, expenses))

	got, err := ImportCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range expenses {
		assert.Equal(t, expenses[i].ID, got[i].ID)
		assert.Equal(t, expenses[i].Description, got[i].Description)
		assert.True(t, expenses[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, expenses[i].Category, got[i].Category)
		assert.True(t, expenses[i].Date.Equal(got[i].Date))
	}
}

func TestImportCSVRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"wrong header", "date,amount\n"},
		{"bad amount", "id,description,amount,category,date\n\"exp-1\",\"Lunch\",\"abc\",\"Dining\",\"2024-03-17\"\n"},
		{"bad date", "id,description,amount,category,date\n\"exp-1\",\"Lunch\",\"12.00\",\"Dining\",\"yesterday\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestSheetsConfigValidate(t *testing.T) {
	cfg := DefaultSheetsConfig()
	assert.Error(t, cfg.Validate(), "no auth configured")

	cfg.ServiceAccountPath = "/tmp/key.json"
	assert.NoError(t, cfg.Validate())

	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"
	cfg.RefreshToken = "token"
	assert.Error(t, cfg.Validate(), "both auth methods configured")

	cfg.ServiceAccountPath = ""
	cfg.BatchSize = 0
	assert.Error(t, cfg.Validate(), "batch size must be positive")
}
