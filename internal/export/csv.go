// Package export renders the expense collection to external formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/spendwise/internal/model"
)

// csvHeader is written bare; every data value below it is quoted.
const csvHeader = "id,description,amount,category,date"

// WriteCSV renders expenses in collection order. The header row is
// unquoted, every data value is wrapped in double quotes with embedded
// quotes doubled, matching the format ImportCSV reads back.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, e := range expenses {
		b.WriteByte('\n')
		fields := []string{
			e.ID,
			e.Description,
			e.Amount.StringFixed(2),
			e.Category,
			e.Date.String(),
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// ImportCSV parses a CSV document in the WriteCSV layout. The ID column
// is preserved when present and left empty otherwise; callers decide
// whether to mint new IDs.
func ImportCSV(r io.Reader) ([]model.Expense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV document")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if strings.Join(header, ",") != csvHeader {
		return nil, fmt.Errorf("unexpected CSV header: %q", strings.Join(header, ","))
	}

	var expenses []model.Expense
	line := 1
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		line++
		if readErr != nil {
			return nil, fmt.Errorf("failed to read CSV record at line %d: %w", line, readErr)
		}

		amount, amtErr := decimal.NewFromString(record[2])
		if amtErr != nil {
			return nil, fmt.Errorf("invalid amount %q at line %d: %w", record[2], line, amtErr)
		}

		date, dateErr := model.ParseDate(record[4])
		if dateErr != nil {
			return nil, fmt.Errorf("invalid date %q at line %d: %w", record[4], line, dateErr)
		}

		expenses = append(expenses, model.Expense{
			ID:          record[0],
			Description: record[1],
			Amount:      amount,
			Category:    record[3],
			Date:        date,
		})
	}

	return expenses, nil
}
