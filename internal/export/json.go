package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter writes parse records as an indented JSON array.
type JSONWriter struct {
	out io.Writer
}

// NewJSON creates a JSON writer over out.
func NewJSON(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// Write encodes the records as a JSON array. An empty batch produces an
// empty array, not null.
func (w *JSONWriter) Write(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}
