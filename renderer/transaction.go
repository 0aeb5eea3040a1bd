package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/DavaStrava/portfolio-import"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Transactions renders a normalized transaction list as a markdown table.
func Transactions(txs []portfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions (%d)", len(txs)))
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		quantity, price := "", ""
		if tx.Kind.IsTrade() {
			quantity, price = tx.Quantity.String(), tx.Price.String()
		}
		rows = append(rows, []string{
			tx.Date.String(), string(tx.Kind), tx.Symbol,
			quantity, price, tx.Amount.String(), tx.Fees.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Kind", "Symbol", "Quantity", "Price", "Amount", "Fees"},
		Rows:   rows,
	})
	return doc.String()
}

// Errors renders the row-level validation errors of a mapping run.
func Errors(errs []portfolio.RowError) string {
	if len(errs) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Rejected rows (%d errors)", len(errs)))
	rows := make([][]string, 0, len(errs))
	for _, e := range errs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Line), e.Field, e.Value, e.Message,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Line", "Field", "Value", "Problem"},
		Rows:   rows,
	})
	return doc.String()
}
