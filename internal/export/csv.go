package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeaders is the fixed column order for CSV output.
var csvHeaders = []string{"message", "amount", "currency", "merchant", "category", "description", "confidence"}

// CSVWriter writes parse records as CSV with a fixed header row.
type CSVWriter struct {
	writer *csv.Writer
}

// NewCSV creates a CSV writer over out.
func NewCSV(out io.Writer) *CSVWriter {
	return &CSVWriter{writer: csv.NewWriter(out)}
}

// Write writes the header followed by one row per record. Amounts are
// rendered with two decimals; an absent amount is an empty cell.
func (w *CSVWriter) Write(records []Record) error {
	if err := w.writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, record := range records {
		amount := ""
		if record.Expense.HasAmount() {
			amount = record.Expense.Amount.StringFixed(2)
		}
		row := []string{
			record.Message,
			amount,
			string(record.Expense.Currency),
			record.Expense.Merchant,
			string(record.Expense.Category),
			record.Expense.Description,
			strconv.FormatFloat(record.Expense.Confidence, 'f', 2, 64),
		}
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}
