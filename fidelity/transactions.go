// Package fidelity maps Fidelity's account-history export and its
// point-in-time positions export into the normalized model.
//
// The history export carries a rigid, vendor-fixed preamble of exactly five
// metadata lines before the header; the detector encodes those offsets as
// constants. Action descriptions are long uppercase phrases ("YOU BOUGHT
// ...", "DIVIDEND RECEIVED ..."); descriptions the mapper does not
// recognize are assumed to be non-portfolio transfers and silently
// excluded, not reported as errors.
package fidelity

import (
	"strings"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/DavaStrava/portfolio-import/date"
)

var (
	runDateAliases  = []string{"Run Date", "Date"}
	actionAliases   = []string{"Action"}
	symbolAliases   = []string{"Symbol", "Symbol/CUSIP"}
	descAliases     = []string{"Security Description", "Description"}
	quantityAliases = []string{"Quantity"}
	priceAliases    = []string{"Price ($)", "Price"}
	feesAliases     = []string{"Fees ($)", "Fees"}
	amountAliases   = []string{"Amount ($)", "Amount"}
)

// kindRules classify the action phrase by ordered substring match, buy-like
// first.
var kindRules = []struct {
	kind  portfolio.TxKind
	terms []string
}{
	{portfolio.Buy, []string{"you bought", "reinvestment"}},
	{portfolio.Sell, []string{"you sold"}},
	{portfolio.Dividend, []string{"dividend received"}},
	{portfolio.Deposit, []string{"electronic funds transfer received", "deposit received", "check received"}},
	{portfolio.Withdraw, []string{"electronic funds transfer paid", "withdrawal", "check paid"}},
}

// TransactionMapper converts tokenized Fidelity history rows.
type TransactionMapper struct{}

// ValidateRow maps one tokenized row. A nil transaction with no errors is a
// skip: blank rows, footer text, and unrecognized actions (assumed to be
// internal transfers) are all intentionally excluded.
func (TransactionMapper) ValidateRow(row portfolio.RawRow) (*portfolio.Transaction, []portfolio.RowError) {
	if row.IsBlank() || row.NonEmpty() == 1 {
		return nil, nil
	}

	action := strings.ToLower(strings.TrimSpace(row.Field(actionAliases...)))
	kind, ok := inferKind(action)
	if !ok {
		// Unrecognized descriptions are non-portfolio transfers, not errors.
		return nil, nil
	}

	var errs []portfolio.RowError

	rawDate := row.Field(runDateAliases...)
	day, err := date.Parse(rawDate)
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Run Date", rawDate, "invalid date"))
	}

	amountDec, err := portfolio.ParseNumber(row.Field(amountAliases...))
	if err != nil {
		errs = append(errs, portfolio.Errf(row.Line, "Amount ($)", row.Field(amountAliases...), "invalid amount"))
	}
	amount := portfolio.USD(amountDec).Abs()

	fees := portfolio.USD(portfolio.ParseOptional(row.Field(feesAliases...)))

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
		case qDec.IsZero():
			errs = append(errs, portfolio.Errf(row.Line, "Quantity", row.Field(quantityAliases...), "quantity must be positive on a %s", kind))
		}
		// Fidelity reports sold quantities as negative.
		quantity = portfolio.Q(qDec.Abs())

		pDec, err := portfolio.ParseNumber(row.Field(priceAliases...))
		switch {
		case err != nil:
			errs = append(errs, portfolio.Errf(row.Line, "Price ($)", row.Field(priceAliases...), "invalid price"))
		case !pDec.IsPositive():
			errs = append(errs, portfolio.Errf(row.Line, "Price ($)", row.Field(priceAliases...), "price must be positive on a %s", kind))
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
		Notes:    strings.TrimSpace(row.Field(actionAliases...)),
	}
	return &tx, nil
}

// MapAll maps every row, collecting normalized transactions and real
// validation errors. Skipped rows contribute to neither list.
func (m TransactionMapper) MapAll(rows []portfolio.RawRow) ([]portfolio.Transaction, []portfolio.RowError) {
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

func inferKind(action string) (portfolio.TxKind, bool) {
	for _, rule := range kindRules {
		for _, term := range rule.terms {
			if strings.Contains(action, term) {
				return rule.kind, true
			}
		}
	}
	return "", false
}
