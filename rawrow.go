package portfolio

import "strings"

// RawRow is one physical record after tokenization: the header names of its
// file bound to the row's field values by positional index, plus the 1-based
// line number in the original file. It is never mutated after creation.
type RawRow struct {
	Headers []string
	Fields  []string
	Line    int
}

// Get resolves a logical field by trying each alias in order against the
// row's headers. For each alias the resolution order is: exact match, then
// trimmed match, then case-insensitive trimmed match. Human-exported
// spreadsheets routinely carry trailing spaces or alternate casing in
// headers ("Symbol ", "symbol", "COST BASIS"), all naming the same field.
func (r RawRow) Get(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		for i, h := range r.Headers {
			if h == alias {
				return r.field(i), true
			}
		}
	}
	for _, alias := range aliases {
		want := strings.TrimSpace(alias)
		for i, h := range r.Headers {
			if strings.TrimSpace(h) == want {
				return r.field(i), true
			}
		}
	}
	for _, alias := range aliases {
		want := strings.ToLower(strings.TrimSpace(alias))
		for i, h := range r.Headers {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				return r.field(i), true
			}
		}
	}
	return "", false
}

// Field returns a logical field value, or "" when no alias resolves.
func (r RawRow) Field(aliases ...string) string {
	v, _ := r.Get(aliases...)
	return v
}

func (r RawRow) field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// IsBlank reports whether every field of the row is empty or whitespace.
func (r RawRow) IsBlank() bool {
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// NonEmpty counts the fields holding a non-whitespace value. Disclaimer and
// footer lines tokenize into a single long field, which this exposes.
func (r RawRow) NonEmpty() int {
	n := 0
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}
