// Package export writes parsed expense records as CSV or JSON.
package export

import (
	"fmt"
	"io"

	"github.com/pcrisan/spendscan/internal/common"
	"github.com/pcrisan/spendscan/internal/model"
)

// Record pairs an input message with its parse result for export.
type Record struct {
	Message string              `json:"message"`
	Expense model.ParsedExpense `json:"expense"`
}

// Writer writes a batch of parse records to an output.
type Writer interface {
	Write(records []Record) error
}

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ForFormat returns a writer for the named format.
func ForFormat(format string, out io.Writer) (Writer, error) {
	switch format {
	case FormatCSV:
		return NewCSV(out), nil
	case FormatJSON:
		return NewJSON(out), nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
}
