// Package schwab maps the consolidated Schwab transaction export into the
// normalized transaction model.
//
// The export starts with a title line and a blank line; the header sits at
// physical line index 2:
//
//	"Date","Action","Symbol","Description","Quantity","Price","Commission","Fees","Amount"
//
// Commissions and fees are separate columns; the normalized fee is their sum.
package schwab

import (
	"strings"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/DavaStrava/portfolio-import/date"
)

// Accepted header spellings per logical field. Human re-exports vary the
// casing and spacing, so each field carries an ordered alias list.
var (
	dateAliases       = []string{"Date", "Trade Date"}
	actionAliases     = []string{"Action", "Transaction Type"}
	symbolAliases     = []string{"Symbol", "Symbol/CUSIP", "Symbol / CUSIP"}
	descAliases       = []string{"Description", "Security Description"}
	quantityAliases   = []string{"Quantity", "Shares"}
	priceAliases      = []string{"Price", "Price ($)"}
	commissionAliases = []string{"Commission", "Commissions", "Commissions & Fees"}
	feesAliases       = []string{"Fees", "Fees & Comm", "Fees ($)"}
	amountAliases     = []string{"Amount", "Amount ($)"}
)

// kindRules classify the free-text action field by ordered substring match:
// buy-like terms first, then sell-like, then dividend and transfer terms.
// "Reinvest Shares" must match before the dividend stage sees "Reinvest
// Dividend".
var kindRules = []struct {
	kind  portfolio.TxKind
	terms []string
}{
	{portfolio.Buy, []string{"buy", "bought", "reinvest shares"}},
	{portfolio.Sell, []string{"sell", "sold"}},
	{portfolio.Dividend, []string{"dividend", "cash div"}},
	{portfolio.Deposit, []string{"deposit", "wire received", "transfer in", "moneylink"}},
	{portfolio.Withdraw, []string{"withdraw", "wire sent", "transfer out", "check paid"}},
}

// Mapper converts tokenized Schwab transaction rows.
type Mapper struct{}

// ValidateRow maps one tokenized row to a normalized transaction. A nil
// transaction with no errors means the row was intentionally skipped
// (blank line, totals row, footer legal text).
func (Mapper) ValidateRow(row portfolio.RawRow) (*portfolio.Transaction, []portfolio.RowError) {
	if skip(row) {
		return nil, nil
	}

	var errs []portfolio.RowError

	action := strings.ToLower(strings.TrimSpace(row.Field(actionAliases...)))
	kind, ok := inferKind(action, row)
	if !ok {
		errs = append(errs, portfolio.Errf(row.Line, "Action", row.Field(actionAliases...), "unrecognized action"))
	}

	rawDate := row.Field(dateAliases...)
	day, err := date.Parse(rawDate)
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Date", rawDate, "invalid date"))
	}

	amountDec, err := portfolio.ParseNumber(row.Field(amountAliases...))
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Amount", row.Field(amountAliases...), "invalid amount"))
	}
	amount := portfolio.USD(amountDec).Abs()

	fees := portfolio.USD(portfolio.ParseOptional(row.Field(commissionAliases...)).
		Add(portfolio.ParseOptional(row.Field(feesAliases...))))

	var symbol string
	var quantity portfolio.Quantity
	var price portfolio.Money
	if kind.IsTrade() || kind == portfolio.Dividend {
		raw := row.Field(symbolAliases...)
		ticker, valid := portfolio.NormalizeTicker(raw)
		if !valid {
			errs = append(errs, portfolio.Errf(row.Line, "Symbol", raw, "invalid ticker symbol"))
		}
		symbol = ticker
	}
	if kind.IsTrade() {
		qDec, err := portfolio.ParseNumber(row.Field(quantityAliases...))
		switch {
		case err != nil:
			errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(quantityAliases...), "invalid quantity"))
		case !qDec.IsPositive():
			errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(quantityAliases...), "quantity must be positive on a %s", kind))
		}
		quantity = portfolio.Q(qDec.Abs())

		pDec, err := portfolio.ParseNumber(row.Field(priceAliases...))
		switch {
		case err != nil:
			errs = append(errs, portfolio.Errf(row.Line, "Price", row.Field(priceAliases...), "invalid price"))
		case !pDec.IsPositive():
			errs = append(errs, portfolio.Errf(row.Line, "Price", row.Field(priceAliases...), "price must be positive on a %s", kind))
		}
		price = portfolio.USD(pDec)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	tx := portfolio.Transaction{
		Symbol:   symbol,
		Kind:     kind,
		Quantity: quantity,
		Price:    price,
		Amount:   amount,
		Fees:     fees,
		Date:     day,
		Notes:    strings.TrimSpace(row.Field(descAliases...)),
	}
	return &tx, nil
}

// MapAll maps every row, collecting normalized transactions and real
// validation errors. Skipped rows contribute to neither list.
func (m Mapper) MapAll(rows []portfolio.RawRow) ([]portfolio.Transaction, []portfolio.RowError) {
	var txs []portfolio.Transaction
	var errs []portfolio.RowError
	for _, row := range rows {
		tx, rowErrs := m.ValidateRow(row)
		if tx != nil {
			txs = append(txs, *tx)
		}
		errs = append(errs, rowErrs...)
	}
	return txs, errs
}

// inferKind resolves the transaction kind from the action text. MoneyLink
// and journal transfers run both directions; the amount sign decides.
func inferKind(action string, row portfolio.RawRow) (portfolio.TxKind, bool) {
	for _, rule := range kindRules {
		for _, term := range rule.terms {
			if strings.Contains(action, term) {
				kind := rule.kind
				if kind == portfolio.Deposit {
					if amt := portfolio.ParseOptional(row.Field(amountAliases...)); amt.IsNegative() {
						kind = portfolio.Withdraw
					}
				}
				return kind, true
			}
		}
	}
	return "", false
}

// skip reports the row-exclusion classes that are not data-quality defects:
// blank rows, the "Transactions Total" summary line, and disclaimer or
// footer legal text, which tokenizes into a single long field. Exports vary
// on which column carries the totals marker, so both the date and the
// action columns are checked.
func skip(row portfolio.RawRow) bool {
	if row.IsBlank() {
		return true
	}
	for _, aliases := range [][]string{dateAliases, actionAliases} {
		if strings.Contains(strings.ToLower(row.Field(aliases...)), "total") {
			return true
		}
	}
	if row.NonEmpty() == 1 {
		return true
	}
	return false
}
