// Package renderer produces markdown views of reconciliation results.
package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/DavaStrava/portfolio-import"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the outcome of a reconciliation run.
func ReportMarkdown(r *portfolio.Report, snap portfolio.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reconciliation Report")
	doc.PlainText(fmt.Sprintf("Holdings: %d, total value %s, cash %s",
		len(snap.Holdings), snap.TotalValue, snap.CashBalance))

	doc.H2("Positions")
	rows := make([][]string, 0, len(r.Symbols))
	for _, s := range r.Symbols {
		rows = append(rows, []string{
			s.Symbol,
			s.CurrentQuantity.String(),
			s.NetTransacted.String(),
			s.InitialQuantity.String(),
			string(s.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Held", "Net Transacted", "Inferred Initial", "Status"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d matched, %d need an initial position, %d discrepancies",
		r.Summary.Matched, r.Summary.NeedsInitial, r.Summary.Discrepancies))

	if len(r.InitialHoldings) > 0 {
		doc.H2("Inferred Initial Holdings")
		rows = rows[:0]
		for _, h := range r.InitialHoldings {
			rows = append(rows, []string{h.Symbol, h.Quantity.String(), h.CostBasis.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Symbol", "Quantity", "Est. Cost Basis"},
			Rows:   rows,
		})
	}

	doc.H2("Cash Flow")
	cf := r.Summary.CashFlow
	doc.Table(md.TableSet{
		Header: []string{"Deposits", "Withdrawals", "Dividends", "Buys", "Sells", "Net"},
		Rows: [][]string{{
			cf.Deposits.String(), cf.Withdrawals.String(), cf.Dividends.String(),
			cf.Buys.String(), cf.Sells.String(), cf.Net().String(),
		}},
	})
	doc.PlainText(fmt.Sprintf("Implied initial cash: %s", r.Summary.ImpliedInitialCash))

	doc.H2("Return")
	ret := r.Summary.Returns
	doc.Table(md.TableSet{
		Header: []string{"Initial Value", "Total Invested", "Total Return", "Return %"},
		Rows: [][]string{{
			ret.InitialValue.String(), ret.Invested.String(), ret.Return.String(),
			fmt.Sprintf("%s%%", ret.ReturnPct.Mul(hundred).StringFixed(2)),
		}},
	})

	return doc.String()
}
