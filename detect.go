package portfolio

import "strings"

// Format tags a recognized brokerage export layout.
type Format string

const (
	// FormatSchwabTransactions is the consolidated Schwab transaction export:
	// a title line, a blank line, then the header at line index 2.
	FormatSchwabTransactions Format = "schwab-transactions"
	// FormatFidelityTransactions is the Fidelity account-history export: a
	// rigid five-line metadata preamble, header at index 5, data at index 8.
	FormatFidelityTransactions Format = "fidelity-transactions"
	// FormatFidelityHoldings is the Fidelity point-in-time positions export,
	// header on the first line.
	FormatFidelityHoldings Format = "fidelity-holdings"
	// FormatTradeLog is the generic trade-log import, header on the first line.
	FormatTradeLog Format = "trade-log"
	// FormatUnknown is returned when no known layout matches.
	FormatUnknown Format = "unknown"
)

// DetectedFormat is the result of format detection for one file: the layout
// tag, the zero-based physical index of the header line, the zero-based
// index where data rows begin, and a confidence in [0,1]. Produced once per
// file and immutable thereafter.
type DetectedFormat struct {
	Format      Format
	HeaderIndex int
	DataIndex   int
	Confidence  float64
}

// TokenizeOptions returns the tokenizer options matching the detected layout.
func (d DetectedFormat) TokenizeOptions() TokenizeOptions {
	return TokenizeOptions{HeaderRow: d.HeaderIndex, DataStart: d.DataIndex}
}

// Header tokens checked by the detector. The Fidelity history preamble is
// vendor-fixed at five metadata lines, so its offsets are constants rather
// than the result of a generic header hunt, which risks false positives on
// metadata lines that happen to contain similar tokens.
var (
	schwabHeaderTokens   = []string{"Date", "Action", "Symbol"}
	fidelityExportMarker = "Export Created"
	holdingsHeaderTokens = []string{"Symbol", "Last Price", "Current Value"}
	tradeLogHeaderTokens = []string{"symbol", "quantity", "entry price"}
)

const (
	fidelityHeaderIndex = 5
	fidelityDataIndex   = 8
)

// Detect inspects the first few physical lines of raw file text and
// classifies it into one of the known layouts, or FormatUnknown with
// confidence 0. It never scans the whole file.
func Detect(text string) DetectedFormat {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	line := func(i int) string {
		if i < len(lines) {
			return lines[i]
		}
		return ""
	}

	if containsAll(line(2), schwabHeaderTokens) {
		return DetectedFormat{Format: FormatSchwabTransactions, HeaderIndex: 2, DataIndex: 3, Confidence: 0.95}
	}
	if strings.Contains(line(0), fidelityExportMarker) {
		return DetectedFormat{Format: FormatFidelityTransactions, HeaderIndex: fidelityHeaderIndex, DataIndex: fidelityDataIndex, Confidence: 0.95}
	}
	if containsAll(line(0), holdingsHeaderTokens) {
		return DetectedFormat{Format: FormatFidelityHoldings, HeaderIndex: 0, DataIndex: 1, Confidence: 0.95}
	}
	if folded := strings.Join(strings.Fields(strings.ToLower(line(0))), " "); containsAll(folded, tradeLogHeaderTokens) {
		return DetectedFormat{Format: FormatTradeLog, HeaderIndex: 0, DataIndex: 1, Confidence: 0.9}
	}
	// A Schwab export preceded by stray blank lines still carries its header
	// within the first five lines.
	for i := 0; i < 5 && i < len(lines); i++ {
		if containsAll(lines[i], schwabHeaderTokens) {
			return DetectedFormat{Format: FormatSchwabTransactions, HeaderIndex: i, DataIndex: i + 1, Confidence: 0.85}
		}
	}
	return DetectedFormat{Format: FormatUnknown}
}

func containsAll(line string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(line, tok) {
			return false
		}
	}
	return true
}
