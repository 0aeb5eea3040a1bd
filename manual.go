package portfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// ImportManualTransactions reads the optional manual-transaction overlay:
// a JSON array of transactions in the artifact shape, merged into the
// transaction list before reconciliation. The dashboard exports the same
// array wrapped in a top-level object, so a bare array and
// {"transactions": [...]} are both accepted.
func ImportManualTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read manual transactions: %w", err)
	}

	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err == nil {
		return validateManual(txs)
	}

	// Not a bare array: locate the wrapped array.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse manual transactions: %w", err)
	}
	wrapped, err := jsonpath.Get("$.transactions", doc)
	if err != nil {
		return nil, fmt.Errorf("manual transactions: neither an array nor an object with a \"transactions\" array")
	}
	raw, err := json.Marshal(wrapped)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode wrapped manual transactions: %w", err)
	}
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("cannot parse wrapped manual transactions: %w", err)
	}
	return validateManual(txs)
}

func validateManual(txs []Transaction) ([]Transaction, error) {
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("manual transaction %d: %w", i, err)
		}
	}
	return txs, nil
}
