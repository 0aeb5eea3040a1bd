package portfolio

import "strings"

// TokenizeOptions controls how raw file text is split into rows.
type TokenizeOptions struct {
	Delimiter byte // field delimiter, ',' when zero
	HeaderRow int  // zero-based physical line index of the header row; earlier lines (metadata preambles) are dropped
	DataStart int  // zero-based physical line index where data rows begin; 0 means HeaderRow+1
	MaxRows   int  // cap on emitted data rows, 0 for no cap (preview mode)
}

// Tokenize splits raw file text into RawRows. The line at HeaderRow is the
// header row; every non-blank line from DataStart on becomes a data row bound
// to those headers by position. Line numbers are 1-based physical positions
// in the original text, preserved for error reporting.
//
// Tokenize is a pure function and never fails: malformed quoting is tolerated
// (end of line closes an open quote) and downstream validation catches the
// resulting garbage values.
func Tokenize(text string, opts TokenizeOptions) []RawRow {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	dataStart := opts.DataStart
	if dataStart <= opts.HeaderRow {
		dataStart = opts.HeaderRow + 1
	}

	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	if opts.HeaderRow >= len(lines) {
		return nil
	}
	headers := splitLine(lines[opts.HeaderRow], delim)

	var rows []RawRow
	for i := dataStart; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		rows = append(rows, RawRow{Headers: headers, Fields: splitLine(lines[i], delim), Line: i + 1})
		if opts.MaxRows > 0 && len(rows) >= opts.MaxRows {
			break
		}
	}
	return rows
}

// splitLine parses one physical line with a two-state scanner. Outside
// quotes the delimiter ends a field and '"' opens quoted mode; inside
// quotes a doubled '""' is an escaped literal quote, any other '"' closes
// quoted mode, and the delimiter is literal text. An unterminated quote is
// implicitly closed at end of line.
func splitLine(line string, delim byte) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuotes && c == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case inQuotes:
			field.WriteByte(c)
		case c == '"':
			inQuotes = true
		case c == delim:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}
