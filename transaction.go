package portfolio

import (
	"encoding/json"
	"fmt"

	"github.com/DavaStrava/portfolio-import/date"
)

// TxKind is a typed string identifying the kind of a financial event.
type TxKind string

// Transaction kinds in the normalized model.
const (
	Buy      TxKind = "BUY"
	Sell     TxKind = "SELL"
	Deposit  TxKind = "DEPOSIT"
	Withdraw TxKind = "WITHDRAW"
	Dividend TxKind = "DIVIDEND"
)

// IsTrade reports whether the kind moves shares, not just cash.
func (k TxKind) IsTrade() bool { return k == Buy || k == Sell }

// Transaction is the canonical representation of one financial event,
// produced by the per-format row mappers and consumed exactly once by the
// reconciliation engine. Instances are never mutated after creation.
//
// Quantity and Price are set if and only if Kind is Buy or Sell; Symbol is
// empty for pure cash flows (deposits and withdrawals). Amount is always
// set and always non-negative: the kind carries the cash direction.
type Transaction struct {
	Symbol   string
	Kind     TxKind
	Quantity Quantity
	Price    Money
	Amount   Money
	Fees     Money
	Date     date.Date
	Notes    string
}

// NewTrade creates a Buy or Sell transaction.
func NewTrade(kind TxKind, day date.Date, symbol string, quantity Quantity, price, amount, fees Money, notes string) Transaction {
	return Transaction{Symbol: symbol, Kind: kind, Quantity: quantity, Price: price, Amount: amount, Fees: fees, Date: day, Notes: notes}
}

// NewCashFlow creates a Deposit or Withdraw transaction.
func NewCashFlow(kind TxKind, day date.Date, amount Money, notes string) Transaction {
	return Transaction{Kind: kind, Amount: amount, Date: day, Notes: notes}
}

// NewDividend creates a Dividend transaction for a symbol.
func NewDividend(day date.Date, symbol string, amount Money, notes string) Transaction {
	return Transaction{Symbol: symbol, Kind: Dividend, Amount: amount, Date: day, Notes: notes}
}

// Validate checks the cross-field invariants of the normalized model.
func (t Transaction) Validate() error {
	switch t.Kind {
	case Buy, Sell, Deposit, Withdraw, Dividend:
	default:
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%s transaction has no date", t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%s amount must not be negative, got %s", t.Kind, t.Amount)
	}
	if t.Kind.IsTrade() {
		if !t.Quantity.IsPositive() {
			return fmt.Errorf("%s quantity must be positive, got %s", t.Kind, t.Quantity)
		}
		if !t.Price.IsPositive() {
			return fmt.Errorf("%s price must be positive, got %s", t.Kind, t.Price)
		}
		if t.Symbol == "" {
			return fmt.Errorf("%s transaction has no symbol", t.Kind)
		}
	} else {
		if !t.Quantity.IsZero() || !t.Price.IsZero() {
			return fmt.Errorf("%s transaction must not carry quantity or price", t.Kind)
		}
	}
	return nil
}

// MarshalJSON writes the transaction in the export artifact's field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("symbol", t.Symbol)
	w.Append("transactionType", t.Kind)
	if t.Kind.IsTrade() {
		w.Append("quantity", t.Quantity)
		w.Append("pricePerShare", t.Price)
	}
	w.Append("totalAmount", t.Amount)
	w.Append("transactionDate", t.Date)
	w.Append("fees", t.Fees)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the artifact/overlay shape of a transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Symbol   string    `json:"symbol"`
		Kind     TxKind    `json:"transactionType"`
		Quantity Quantity  `json:"quantity"`
		Price    Money     `json:"pricePerShare"`
		Amount   Money     `json:"totalAmount"`
		Date     date.Date `json:"transactionDate"`
		Fees     Money     `json:"fees"`
		Notes    string    `json:"notes"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		Symbol:   temp.Symbol,
		Kind:     temp.Kind,
		Quantity: temp.Quantity,
		Price:    temp.Price,
		Amount:   temp.Amount,
		Fees:     temp.Fees,
		Date:     temp.Date,
		Notes:    temp.Notes,
	}
	return nil
}

// Equal reports whether two transactions describe the same event.
func (t Transaction) Equal(o Transaction) bool {
	return t.Symbol == o.Symbol && t.Kind == o.Kind &&
		t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price) &&
		t.Amount.Equal(o.Amount) && t.Fees.Equal(o.Fees) &&
		t.Date == o.Date && t.Notes == o.Notes
}
