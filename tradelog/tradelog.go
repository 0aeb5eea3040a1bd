// Package tradelog maps the generic trade-log import format: one row per
// trade with an entry leg and an optional exit leg, from which a status and
// a realized profit/loss are derived.
package tradelog

import (
	"strings"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/DavaStrava/portfolio-import/date"
)

var (
	symbolAliases     = []string{"Symbol", "Ticker"}
	sideAliases       = []string{"Side", "Direction", "Position"}
	quantityAliases   = []string{"Quantity", "Shares", "Qty"}
	entryPriceAliases = []string{"Entry Price", "EntryPrice"}
	entryDateAliases  = []string{"Entry Date", "EntryDate"}
	exitPriceAliases  = []string{"Exit Price", "ExitPrice"}
	exitDateAliases   = []string{"Exit Date", "ExitDate"}
	feesAliases       = []string{"Fees", "Commission"}
	notesAliases      = []string{"Notes", "Comment"}
)

// Side is the direction of a trade.
type Side string

const (
	Long  Side = "LONG"
	Short Side = "SHORT"
)

// Status reports whether a trade has been exited.
type Status string

const (
	Open   Status = "OPEN"
	Closed Status = "CLOSED"
)

// Trade is one row of the trade log. A trade is CLOSED if and only if both
// an exit price and an exit date are present; only closed trades carry a
// realized profit/loss.
type Trade struct {
	Symbol     string
	Side       Side
	Quantity   portfolio.Quantity
	EntryPrice portfolio.Money
	EntryDate  date.Date
	ExitPrice  portfolio.Money
	ExitDate   date.Date
	Fees       portfolio.Money
	Notes      string
	Status     Status
	RealizedPL portfolio.Money
}

// Mapper converts tokenized trade-log rows.
type Mapper struct{}

// ValidateRow maps one tokenized row to a Trade. A nil trade with no errors
// means the row was intentionally skipped (blank or footer text).
func (Mapper) ValidateRow(row portfolio.RawRow) (*Trade, []portfolio.RowError) {
	if row.IsBlank() || row.NonEmpty() == 1 {
		return nil, nil
	}

	var errs []portfolio.RowError

	rawSymbol := row.Field(symbolAliases...)
	symbol, valid := portfolio.NormalizeTicker(rawSymbol)
	if !valid {
		errs = append(errs, portfolio.Errf(row.Line, "Symbol", rawSymbol, "invalid ticker symbol"))
	}

	side, ok := inferSide(row.Field(sideAliases...))
	if !ok {
		errs = append(errs, portfolio.Errf(row.Line, "Side", row.Field(sideAliases...), "unrecognized side"))
	}

	qDec, err := portfolio.ParseNumber(row.Field(quantityAliases...))
	switch {
	case err != nil:
		errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(quantityAliases...), "invalid quantity"))
	case !qDec.IsPositive():
		errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(quantityAliases...), "quantity must be positive"))
	}
	quantity := portfolio.Q(qDec)

	entryDec, err := portfolio.ParseNumber(row.Field(entryPriceAliases...))
	switch {
	case err != nil:
		errs = append(errs, portfolio.Errf(row.Line, "Entry Price", row.Field(entryPriceAliases...), "invalid price"))
	case !entryDec.IsPositive():
		errs = append(errs, portfolio.Errf(row.Line, "Entry Price", row.Field(entryPriceAliases...), "entry price must be positive"))
	}
	entryPrice := portfolio.USD(entryDec)

	rawEntryDate := row.Field(entryDateAliases...)
	entryDate, err := date.Parse(rawEntryDate)
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Entry Date", rawEntryDate, "invalid date"))
	}

	fees := portfolio.USD(portfolio.ParseOptional(row.Field(feesAliases...)))

	trade := Trade{
		Symbol:     symbol,
		Side:       side,
		Quantity:   quantity,
		EntryPrice: entryPrice,
		EntryDate:  entryDate,
		Fees:       fees,
		Notes:      strings.TrimSpace(row.Field(notesAliases...)),
		Status:     Open,
	}

	// The exit leg is optional, but an exit price without an exit date
	// leaves the trade's holding period undefined.
	rawExitPrice := strings.TrimSpace(row.Field(exitPriceAliases...))
	if rawExitPrice != "" && rawExitPrice != "--" && rawExitPrice != "-" {
		exitDec, err := portfolio.ParseNumber(rawExitPrice)
		switch {
		case err != nil:
			errs = append(errs, portfolio.Errf(row.Line, "Exit Price", rawExitPrice, "invalid price"))
		case !exitDec.IsPositive():
			errs = append(errs, portfolio.Errf(row.Line, "Exit Price", rawExitPrice, "exit price must be positive"))
		}
		rawExitDate := strings.TrimSpace(row.Field(exitDateAliases...))
		if rawExitDate == "" {
			errs = append(errs, portfolio.Errf(row.Line, "Exit Date", rawExitDate, "exit date is required when an exit price is present"))
		} else if exitDate, err := date.Parse(rawExitDate); err != nil {
			errs = append(errs, portfolio.Errf(row.Line, "Exit Date", rawExitDate, "invalid date"))
		} else {
			trade.ExitDate = exitDate
		}
		trade.ExitPrice = portfolio.USD(exitDec)
		trade.Status = Closed
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if trade.Status == Closed {
		trade.RealizedPL = trade.realizedPL()
	}
	return &trade, nil
}

// realizedPL computes the trade's realized profit/loss net of fees.
func (t Trade) realizedPL() portfolio.Money {
	var gross portfolio.Money
	if t.Side == Short {
		gross = t.EntryPrice.Sub(t.ExitPrice).Mul(t.Quantity)
	} else {
		gross = t.ExitPrice.Sub(t.EntryPrice).Mul(t.Quantity)
	}
	return gross.Sub(t.Fees)
}

// Transaction converts the trade's entry leg to a normalized transaction: a
// buy for a long position, a sell for a short one.
func (t Trade) Transaction() portfolio.Transaction {
	kind := portfolio.Buy
	if t.Side == Short {
		kind = portfolio.Sell
	}
	return portfolio.Transaction{
		Symbol:   t.Symbol,
		Kind:     kind,
		Quantity: t.Quantity,
		Price:    t.EntryPrice,
		Amount:   t.EntryPrice.Mul(t.Quantity),
		Fees:     t.Fees,
		Date:     t.EntryDate,
		Notes:    t.Notes,
	}
}

// MapTrades maps every row to a Trade, collecting real validation errors.
func (m Mapper) MapTrades(rows []portfolio.RawRow) ([]Trade, []portfolio.RowError) {
	var trades []Trade
	var errs []portfolio.RowError
	for _, row := range rows {
		trade, rowErrs := m.ValidateRow(row)
		if trade != nil {
			trades = append(trades, *trade)
		}
		errs = append(errs, rowErrs...)
	}
	return trades, errs
}

// MapAll maps every row to the normalized transaction of its entry leg.
func (m Mapper) MapAll(rows []portfolio.RawRow) ([]portfolio.Transaction, []portfolio.RowError) {
	trades, errs := m.MapTrades(rows)
	var txs []portfolio.Transaction
	for _, t := range trades {
		txs = append(txs, t.Transaction())
	}
	return txs, errs
}

func inferSide(raw string) (Side, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "short"):
		return Short, true
	case s == "" || strings.Contains(s, "long") || strings.Contains(s, "buy"):
		return Long, true
	default:
		return "", false
	}
}
