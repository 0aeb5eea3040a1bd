package portfolio

import "github.com/shopspring/decimal"

// Holding is one position from a point-in-time holdings snapshot.
type Holding struct {
	Symbol      string
	Quantity    Quantity
	CostBasis   Money // cost basis per share
	Price       Money // current price per share
	MarketValue Money
	GainLoss    Money           // unrealized gain/loss amount
	GainLossPct decimal.Decimal // unrealized gain/loss percent
}

// MarshalJSON writes the holding in the export artifact's field order.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.Symbol)
	w.Append("quantity", h.Quantity)
	w.Append("costBasisPerShare", h.CostBasis)
	w.Append("currentPrice", h.Price)
	w.Append("marketValue", h.MarketValue)
	w.Append("gainLoss", h.GainLoss)
	w.Append("gainLossPercent", h.GainLossPct)
	return w.MarshalJSON()
}

// InitialHolding is a position inferred to have existed before the earliest
// transaction in the available history. It is derived by the reconciliation
// engine, never constructed directly by a caller.
type InitialHolding struct {
	Symbol    string
	Quantity  Quantity
	CostBasis Money // estimated cost basis per share; zero when unknown
}

// MarshalJSON writes the inferred holding in the export artifact's field order.
func (h InitialHolding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", h.Symbol)
	w.Append("quantity", h.Quantity)
	w.Append("estimatedCostBasis", h.CostBasis)
	return w.MarshalJSON()
}

// Snapshot is the reconciliation engine's view of the account "now": the
// mapped holdings plus the cash balance and total portfolio value derived
// from the same holdings export.
type Snapshot struct {
	Holdings    []Holding
	CashBalance Money
	TotalValue  Money
}
