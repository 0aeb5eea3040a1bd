package portfolio

import "fmt"

// RowError describes one field-level problem found while mapping a data row.
// Row errors are accumulated as data alongside successfully mapped rows;
// they are never used as control flow and never abort a batch.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: field %q (%q): %s", e.Line, e.Field, e.Value, e.Message)
}

// Errf builds a RowError with a formatted message.
func Errf(line int, field, value, format string, args ...any) RowError {
	return RowError{Line: line, Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}
