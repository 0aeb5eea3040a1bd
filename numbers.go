package portfolio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// tickerPattern is the shape of a plain US equity ticker after extraction.
var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// leadingAlpha extracts the leading alphabetic run from a combined
// "Symbol/CUSIP" field, e.g. "AAPL / 037833100" -> "AAPL".
var leadingAlpha = regexp.MustCompile(`^[A-Za-z]+`)

// moneyMarketTickers are cash-sweep funds that appear as positions in
// holdings exports but represent cash, not securities.
var moneyMarketTickers = map[string]bool{
	"SPAXX": true,
	"FDRXX": true,
	"SPRXX": true,
	"FZFXX": true,
	"SWVXX": true,
}

// cleanNumber strips the decoration brokerage exports put around numbers:
// surrounding quotes and whitespace, currency symbols, thousands separators,
// and a trailing '%'. A value wrapped in parentheses is negative.
func cleanNumber(s string) (cleaned string, negative bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	return s, negative
}

// ParseNumber parses locale-formatted brokerage numeric text into an exact
// decimal. "--" and a bare "-" mean zero (the exports' empty-cell markers).
// An unparsable value is an error; the call site decides whether absence is
// an error (price, quantity) or benign (fee-like fields, see ParseOptional).
func ParseNumber(s string) (decimal.Decimal, error) {
	cleaned, negative := cleanNumber(s)
	if cleaned == "" || cleaned == "--" || cleaned == "-" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseOptional is ParseNumber for fee-like fields where absence and garbage
// are both benign and mean zero.
func ParseOptional(s string) decimal.Decimal {
	d, err := ParseNumber(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeTicker uppercases the leading alphabetic run of a raw symbol
// field and reports whether the result is a plausible 1-5 letter ticker.
func NormalizeTicker(raw string) (string, bool) {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	run := leadingAlpha.FindString(s)
	if run == "" {
		return "", false
	}
	ticker := strings.ToUpper(run)
	return ticker, tickerPattern.MatchString(ticker)
}

// IsMoneyMarket reports whether a normalized ticker names a money-market or
// cash-sweep fund. Beyond the known funds, 4-5 letter tickers ending in
// "XX" follow the mutual-fund naming convention.
func IsMoneyMarket(ticker string) bool {
	if moneyMarketTickers[ticker] {
		return true
	}
	return len(ticker) >= 4 && len(ticker) <= 5 && strings.HasSuffix(ticker, "XX")
}
