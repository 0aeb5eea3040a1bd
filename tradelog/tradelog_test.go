package tradelog

import (
	"testing"

	portfolio "github.com/DavaStrava/portfolio-import"
)

const tradeLog = `Symbol,Side,Quantity,Entry Price,Entry Date,Exit Price,Exit Date,Fees,Notes
AAPL,LONG,10,100.00,07/01/2024,110.00,07/10/2024,1.00,swing
TSLA,SHORT,4,250.00,07/05/2024,240.00,07/12/2024,1.00,
NVDA,LONG,8,125.00,07/20/2024,,,,earnings play
`

func tokenizeLog(t *testing.T, text string) []portfolio.RawRow {
	t.Helper()
	detected := portfolio.Detect(text)
	if detected.Format != portfolio.FormatTradeLog {
		t.Fatalf("Detect = %s, want %s", detected.Format, portfolio.FormatTradeLog)
	}
	return portfolio.Tokenize(text, detected.TokenizeOptions())
}

func TestMapper_MapTrades(t *testing.T) {
	trades, errs := Mapper{}.MapTrades(tokenizeLog(t, tradeLog))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(trades) != 3 {
		t.Fatalf("got %d trades, want 3", len(trades))
	}

	long := trades[0]
	if long.Symbol != "AAPL" || long.Side != Long || long.Status != Closed {
		t.Errorf("long trade = %+v", long)
	}
	// (110 - 100) * 10 - 1 = 99
	if !long.RealizedPL.Equal(portfolio.USD(99)) {
		t.Errorf("long P&L = %s, want $99.00", long.RealizedPL)
	}

	short := trades[1]
	if short.Side != Short || short.Status != Closed {
		t.Errorf("short trade = %+v", short)
	}
	// Shorts profit when the exit is below the entry: (250 - 240) * 4 - 1 = 39.
	if !short.RealizedPL.Equal(portfolio.USD(39)) {
		t.Errorf("short P&L = %s, want $39.00", short.RealizedPL)
	}

	open := trades[2]
	if open.Status != Open || !open.RealizedPL.IsZero() {
		t.Errorf("open trade = %+v, want open with no realized P&L", open)
	}
	if !open.ExitPrice.IsZero() || !open.ExitDate.IsZero() {
		t.Errorf("open trade carries an exit leg: %+v", open)
	}
}

func TestMapper_MapAll(t *testing.T) {
	txs, errs := Mapper{}.MapAll(tokenizeLog(t, tradeLog))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}

	// Entry legs only: a long enters with a buy, a short with a sell.
	if txs[0].Kind != portfolio.Buy || !txs[0].Amount.Equal(portfolio.USD(1000)) {
		t.Errorf("long entry = %+v", txs[0])
	}
	if txs[1].Kind != portfolio.Sell || !txs[1].Amount.Equal(portfolio.USD(1000)) {
		t.Errorf("short entry = %+v", txs[1])
	}

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			t.Errorf("entry leg fails validation: %v", err)
		}
	}
}

func TestMapper_ExitPriceWithoutDate(t *testing.T) {
	text := `Symbol,Side,Quantity,Entry Price,Entry Date,Exit Price,Exit Date,Fees,Notes
AAPL,LONG,10,100.00,07/01/2024,110.00,,,
`
	trades, errs := Mapper{}.MapTrades(tokenizeLog(t, text))
	if len(trades) != 0 {
		t.Errorf("got trades %v, want none", trades)
	}
	if len(errs) == 0 || errs[0].Field != "Exit Date" {
		t.Errorf("errs = %v, want a missing exit date error", errs)
	}
}

func TestInferSide(t *testing.T) {
	testCases := []struct {
		raw  string
		side Side
		ok   bool
	}{
		{"LONG", Long, true},
		{"long", Long, true},
		{"Buy", Long, true},
		{"", Long, true},
		{"SHORT", Short, true},
		{"Short Sell", Short, true},
		{"sideways", "", false},
	}
	for _, tc := range testCases {
		side, ok := inferSide(tc.raw)
		if side != tc.side || ok != tc.ok {
			t.Errorf("inferSide(%q) = %s, %t, want %s, %t", tc.raw, side, ok, tc.side, tc.ok)
		}
	}
}
