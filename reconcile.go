package portfolio

import (
	"log"
	"sort"

	"github.com/shopspring/decimal"
)

// positionEpsilon is the share tolerance below which a holding and its
// transaction history are considered matched. Brokerage exports round
// fractional reinvestment quantities to three decimals, so exact zero is
// too strict.
var positionEpsilon = decimal.NewFromFloat(0.01)

// MatchStatus classifies a holding against its transaction history.
type MatchStatus string

const (
	// Matched: the transaction history fully explains the current position.
	Matched MatchStatus = "matched"
	// NeedsInitial: shares must have existed before the history began.
	NeedsInitial MatchStatus = "needs-initial-position"
	// Discrepancy: the history implies more shares bought than currently
	// held. Logged but not otherwise resolved.
	Discrepancy MatchStatus = "discrepancy"
)

// CashFlow aggregates the transaction list's cash totals partitioned by kind.
type CashFlow struct {
	Deposits    Money
	Withdrawals Money
	Dividends   Money
	Buys        Money
	Sells       Money
}

// Net is deposits - withdrawals + dividends - buys + sells.
func (c CashFlow) Net() Money {
	return c.Deposits.Sub(c.Withdrawals).Add(c.Dividends).Sub(c.Buys).Add(c.Sells)
}

// Returns holds the aggregate return-on-investment figures.
type Returns struct {
	InitialValue Money           // value of inferred initial holdings plus implied initial cash
	Invested     Money           // initial value plus net external contributions
	Return       Money           // current total value minus invested
	ReturnPct    decimal.Decimal // Return / Invested, zero when Invested is zero
}

// Summary is the aggregate outcome of a reconciliation run.
type Summary struct {
	Matched            int
	NeedsInitial       int
	Discrepancies      int
	CashFlow           CashFlow
	ImpliedInitialCash Money
	Returns            Returns
}

// SymbolStatus records the per-symbol classification detail.
type SymbolStatus struct {
	Symbol          string
	Status          MatchStatus
	CurrentQuantity Quantity
	NetTransacted   Quantity
	InitialQuantity Quantity
}

// Report is the full result of reconciling a transaction history against a
// holdings snapshot.
type Report struct {
	InitialHoldings []InitialHolding
	Symbols         []SymbolStatus
	Summary         Summary
}

// Reconcile compares the full ordered transaction list against a holdings
// snapshot and infers, per symbol, the position that must have existed
// before the transaction history began, plus aggregate cash-flow and return
// figures.
//
// Reconcile is a pure function: running it twice on the same inputs yields
// identical results. It never fails on inconsistent data; anomalies are
// represented as classified output (discrepancy counts, zero-value
// fallbacks), mirroring the human-reviewed nature of reconciliation.
func Reconcile(txs []Transaction, snap Snapshot) *Report {
	report := &Report{}

	// Per-symbol net transacted shares and total buy cost. The buy cost
	// deliberately does not subtract sell proceeds: the later cost-basis
	// estimate is an upper bound, not an exact reconstruction.
	netShares := make(map[string]Quantity)
	buyCost := make(map[string]Money)
	for _, tx := range txs {
		if tx.Symbol == "" {
			continue
		}
		switch tx.Kind {
		case Buy:
			netShares[tx.Symbol] = netShares[tx.Symbol].Add(tx.Quantity)
			buyCost[tx.Symbol] = buyCost[tx.Symbol].Add(tx.Amount)
		case Sell:
			netShares[tx.Symbol] = netShares[tx.Symbol].Sub(tx.Quantity)
		}
	}

	seen := make(map[string]bool)
	for _, h := range snap.Holdings {
		seen[h.Symbol] = true
		net := netShares[h.Symbol]
		initial := h.Quantity.Sub(net)

		status := SymbolStatus{
			Symbol:          h.Symbol,
			CurrentQuantity: h.Quantity,
			NetTransacted:   net,
			InitialQuantity: initial,
		}
		switch {
		case initial.Decimal().Abs().LessThan(positionEpsilon):
			status.Status = Matched
			report.Summary.Matched++
		case initial.IsPositive():
			status.Status = NeedsInitial
			report.Summary.NeedsInitial++
			report.InitialHoldings = append(report.InitialHoldings, InitialHolding{
				Symbol:    h.Symbol,
				Quantity:  initial,
				CostBasis: estimateCostBasis(h, buyCost[h.Symbol], initial),
			})
		default:
			status.Status = Discrepancy
			report.Summary.Discrepancies++
			log.Printf("reconcile: %s history implies %s more shares bought than the %s currently held",
				h.Symbol, initial.Neg(), h.Quantity)
		}
		report.Symbols = append(report.Symbols, status)
	}

	// Symbols transacted but absent from the snapshot: a fully exited
	// position. A net-sold symbol implies a pre-history long position of
	// that size, with unknown cost basis.
	exited := make([]string, 0, len(netShares))
	for symbol := range netShares {
		if !seen[symbol] {
			exited = append(exited, symbol)
		}
	}
	sort.Strings(exited)
	for _, symbol := range exited {
		net := netShares[symbol]
		if net.Decimal().Abs().LessThan(positionEpsilon) {
			continue
		}
		initial := net.Neg()
		report.InitialHoldings = append(report.InitialHoldings, InitialHolding{
			Symbol:   symbol,
			Quantity: initial,
		})
		status := SymbolStatus{Symbol: symbol, NetTransacted: net, InitialQuantity: initial}
		if initial.IsPositive() {
			status.Status = NeedsInitial
			report.Summary.NeedsInitial++
		} else {
			status.Status = Discrepancy
			report.Summary.Discrepancies++
			log.Printf("reconcile: %s was net bought %s but does not appear in current holdings", symbol, net)
		}
		report.Symbols = append(report.Symbols, status)
	}

	// Cash-flow aggregation and implied initial cash.
	for _, tx := range txs {
		switch tx.Kind {
		case Deposit:
			report.Summary.CashFlow.Deposits = report.Summary.CashFlow.Deposits.Add(tx.Amount)
		case Withdraw:
			report.Summary.CashFlow.Withdrawals = report.Summary.CashFlow.Withdrawals.Add(tx.Amount)
		case Dividend:
			report.Summary.CashFlow.Dividends = report.Summary.CashFlow.Dividends.Add(tx.Amount)
		case Buy:
			report.Summary.CashFlow.Buys = report.Summary.CashFlow.Buys.Add(tx.Amount)
		case Sell:
			report.Summary.CashFlow.Sells = report.Summary.CashFlow.Sells.Add(tx.Amount)
		}
	}
	report.Summary.ImpliedInitialCash = snap.CashBalance.Sub(report.Summary.CashFlow.Net())

	// Return computation.
	initialValue := report.Summary.ImpliedInitialCash
	for _, ih := range report.InitialHoldings {
		initialValue = initialValue.Add(ih.CostBasis.Mul(ih.Quantity))
	}
	invested := initialValue.Add(report.Summary.CashFlow.Deposits).Sub(report.Summary.CashFlow.Withdrawals)
	totalReturn := snap.TotalValue.Sub(invested)
	report.Summary.Returns = Returns{
		InitialValue: initialValue,
		Invested:     invested,
		Return:       totalReturn,
	}
	if !invested.IsZero() {
		report.Summary.Returns.ReturnPct = totalReturn.Decimal().Div(invested.Decimal())
	}
	return report
}

// estimateCostBasis estimates the per-share cost of an inferred initial
// position: whatever part of the holding's total cost the recorded buys do
// not explain, spread over the inferred shares. Clamped at zero because a
// history with sells can over-count the recorded buy cost.
func estimateCostBasis(h Holding, totalBuyCost Money, initial Quantity) Money {
	residual := h.CostBasis.Mul(h.Quantity).Sub(totalBuyCost)
	if residual.IsNegative() {
		return USD(0)
	}
	return residual.Div(initial)
}
