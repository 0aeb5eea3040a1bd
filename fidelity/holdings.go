package fidelity

import (
	"strings"

	portfolio "github.com/DavaStrava/portfolio-import"
)

var (
	holdingSymbolAliases   = []string{"Symbol", "Symbol "}
	holdingQuantityAliases = []string{"Quantity", "Quantity "}
	lastPriceAliases       = []string{"Last Price", "Last Price "}
	currentValueAliases    = []string{"Current Value", "Current Value "}
	costBasisAliases       = []string{"Average Cost Basis", "Avg Cost Basis"}
	costBasisTotalAliases  = []string{"Cost Basis Total", "Cost Basis"}
	gainLossAliases        = []string{"Total Gain/Loss Dollar", "Total Gain/Loss"}
	gainLossPctAliases     = []string{"Total Gain/Loss Percent", "Total Gain/Loss %"}
	holdingDescAliases     = []string{"Description"}
)

// HoldingsMapper converts tokenized rows of the positions export.
type HoldingsMapper struct{}

// ValidateRow maps one positions row to a Holding. A nil holding with no
// errors is a skip: blank rows, footer disclaimers, pending-activity rows,
// and money-market funds (cash sweeps, not securities) are all excluded.
func (HoldingsMapper) ValidateRow(row portfolio.RawRow) (*portfolio.Holding, []portfolio.RowError) {
	if skipHolding(row) {
		return nil, nil
	}

	var errs []portfolio.RowError

	rawSymbol := row.Field(holdingSymbolAliases...)
	symbol, valid := portfolio.NormalizeTicker(rawSymbol)
	if !valid {
		errs = append(errs, portfolio.Errf(row.Line, "Symbol", rawSymbol, "invalid ticker symbol"))
	}

	qDec, err := portfolio.ParseNumber(row.Field(holdingQuantityAliases...))
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(holdingQuantityAliases...), "invalid quantity"))
	}
	pDec, err := portfolio.ParseNumber(row.Field(lastPriceAliases...))
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Last Price", row.Field(lastPriceAliases...), "invalid price"))
	}
	vDec, err := portfolio.ParseNumber(row.Field(currentValueAliases...))
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Current Value", row.Field(currentValueAliases...), "invalid value"))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	quantity := portfolio.Q(qDec)
	costBasis := portfolio.USD(portfolio.ParseOptional(row.Field(costBasisAliases...)))
	if costBasis.IsZero() && !quantity.IsZero() {
		// Fall back to the total-cost column spread over the position.
		if total := portfolio.ParseOptional(row.Field(costBasisTotalAliases...)); !total.IsZero() {
			costBasis = portfolio.USD(total).Div(quantity)
		}
	}

	h := portfolio.Holding{
		Symbol:      symbol,
		Quantity:    quantity,
		CostBasis:   costBasis,
		Price:       portfolio.USD(pDec),
		MarketValue: portfolio.USD(vDec),
		GainLoss:    portfolio.USD(portfolio.ParseOptional(row.Field(gainLossAliases...))),
		GainLossPct: portfolio.ParseOptional(row.Field(gainLossPctAliases...)),
	}
	return &h, nil
}

// MapAll maps every positions row, collecting holdings and real validation
// errors. Skipped rows contribute to neither list.
func (m HoldingsMapper) MapAll(rows []portfolio.RawRow) ([]portfolio.Holding, []portfolio.RowError) {
	var holdings []portfolio.Holding
	var errs []portfolio.RowError
	for _, row := range rows {
		h, rowErrs := m.ValidateRow(row)
		if h != nil {
			holdings = append(holdings, *h)
		}
		errs = append(errs, rowErrs...)
	}
	return holdings, errs
}

// ParseSnapshot maps a positions export into the reconciliation engine's
// snapshot. Money-market and pending-activity rows are excluded from the
// holdings list but their value is the account's cash balance; the total
// portfolio value sums every row's current value.
func (m HoldingsMapper) ParseSnapshot(rows []portfolio.RawRow) (portfolio.Snapshot, []portfolio.RowError) {
	holdings, errs := m.MapAll(rows)

	cash := portfolio.USD(0)
	total := portfolio.USD(0)
	for _, row := range rows {
		if row.IsBlank() || row.NonEmpty() == 1 {
			continue
		}
		value := portfolio.USD(portfolio.ParseOptional(row.Field(currentValueAliases...)))
		total = total.Add(value)
		if isCashRow(row) {
			cash = cash.Add(value)
		}
	}
	return portfolio.Snapshot{Holdings: holdings, CashBalance: cash, TotalValue: total}, errs
}

func isCashRow(row portfolio.RawRow) bool {
	rawSymbol := strings.TrimSpace(row.Field(holdingSymbolAliases...))
	if strings.EqualFold(rawSymbol, "Pending Activity") {
		return true
	}
	ticker, _ := portfolio.NormalizeTicker(rawSymbol)
	return portfolio.IsMoneyMarket(ticker)
}

// skipHolding reports the positions-export exclusion classes: blank rows,
// disclaimer footers, pending activity, and money-market funds.
func skipHolding(row portfolio.RawRow) bool {
	if row.IsBlank() || row.NonEmpty() == 1 {
		return true
	}
	return isCashRow(row)
}
