package fidelity

import (
	"testing"

	portfolio "github.com/DavaStrava/portfolio-import"
)

const positionsExport = `Symbol,Description,Quantity,Last Price,Current Value,Total Gain/Loss Dollar,Total Gain/Loss Percent,Average Cost Basis,Cost Basis Total
AAPL,APPLE INC,10,110.00,"$1,100.00",100.00,10.00%,100.00,"$1,000.00"
NVDA,NVIDIA CORP,8,130.00,"$1,040.00",40.00,4.00%,,"$1,000.00"
SPAXX**,FIDELITY GOVERNMENT MONEY MARKET,7860.00,1.00,"$7,860.00",,,,
Pending Activity,,,,"$100.00",,,,
"Date downloaded 07/31/2024. The data and information in this spreadsheet is provided to you for reference only."
`

func tokenizePositions(t *testing.T, text string) []portfolio.RawRow {
	t.Helper()
	detected := portfolio.Detect(text)
	if detected.Format != portfolio.FormatFidelityHoldings {
		t.Fatalf("Detect = %s, want %s", detected.Format, portfolio.FormatFidelityHoldings)
	}
	return portfolio.Tokenize(text, detected.TokenizeOptions())
}

func TestHoldingsMapper_MapAll(t *testing.T) {
	holdings, errs := HoldingsMapper{}.MapAll(tokenizePositions(t, positionsExport))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// The money-market sweep, pending activity, and footer rows are excluded.
	if len(holdings) != 2 {
		t.Fatalf("got %d holdings, want 2", len(holdings))
	}

	aapl := holdings[0]
	if aapl.Symbol != "AAPL" || !aapl.Quantity.Equal(portfolio.Q(10)) ||
		!aapl.Price.Equal(portfolio.USD(110)) || !aapl.MarketValue.Equal(portfolio.USD(1100)) {
		t.Errorf("AAPL = %+v", aapl)
	}
	if !aapl.CostBasis.Equal(portfolio.USD(100)) {
		t.Errorf("AAPL cost basis = %s, want $100.00", aapl.CostBasis)
	}

	// No average-cost column value: the total-cost column spread over the
	// position fills in, 1000 / 8 = 125.
	nvda := holdings[1]
	if !nvda.CostBasis.Equal(portfolio.USD(125)) {
		t.Errorf("NVDA cost basis = %s, want $125.00", nvda.CostBasis)
	}
}

func TestHoldingsMapper_ParseSnapshot(t *testing.T) {
	snap, errs := HoldingsMapper{}.ParseSnapshot(tokenizePositions(t, positionsExport))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(snap.Holdings) != 2 {
		t.Errorf("got %d holdings, want 2", len(snap.Holdings))
	}
	// Cash is the sweep fund plus pending activity.
	if !snap.CashBalance.Equal(portfolio.USD(7960)) {
		t.Errorf("cash balance = %s, want $7,960.00", snap.CashBalance)
	}
	// Total value sums every row, securities and cash alike.
	if !snap.TotalValue.Equal(portfolio.USD(10100)) {
		t.Errorf("total value = %s, want $10,100.00", snap.TotalValue)
	}
}

func TestHoldingsMapper_BadRow(t *testing.T) {
	text := `Symbol,Description,Quantity,Last Price,Current Value
AAPL,APPLE INC,ten,110.00,"$1,100.00"
`
	holdings, errs := HoldingsMapper{}.MapAll(tokenizePositions(t, text))
	if len(holdings) != 0 {
		t.Errorf("got holdings %v, want none", holdings)
	}
	if len(errs) == 0 || errs[0].Field != "Quantity" {
		t.Errorf("errs = %v, want an invalid quantity", errs)
	}
}
