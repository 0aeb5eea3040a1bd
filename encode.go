package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Artifact is the single JSON document the reconciliation run exports. A
// database-backed import endpoint consumes it to seed portfolio state; this
// is the documented downstream contract, so the shape and field order are
// stable.
type Artifact struct {
	ExportID        uuid.UUID
	GeneratedAt     time.Time
	Transactions    []Transaction
	InitialHoldings []InitialHolding
	Holdings        []Holding
	TotalValue      Money
	CashBalance     Money
	Summary         Summary
}

// NewArtifact assembles the export artifact from a reconciliation run.
func NewArtifact(txs []Transaction, snap Snapshot, report *Report) *Artifact {
	return &Artifact{
		ExportID:        uuid.New(),
		GeneratedAt:     time.Now().UTC(),
		Transactions:    txs,
		InitialHoldings: report.InitialHoldings,
		Holdings:        snap.Holdings,
		TotalValue:      snap.TotalValue,
		CashBalance:     snap.CashBalance,
		Summary:         report.Summary,
	}
}

// MarshalJSON writes the artifact with a stable top-level field order.
func (a *Artifact) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("exportId", a.ExportID)
	w.Append("generatedAt", a.GeneratedAt.Format(time.RFC3339))
	w.Append("transactions", emptyAsList(a.Transactions))
	w.Append("initialHoldings", emptyAsList(a.InitialHoldings))
	w.Append("holdings", emptyAsList(a.Holdings))

	var s jsonObjectWriter
	sum := a.Summary
	s.Append("totalValue", a.TotalValue)
	s.Append("cashBalance", a.CashBalance)
	s.Append("netDeposits", sum.CashFlow.Deposits.Sub(sum.CashFlow.Withdrawals))
	s.Append("totalReturn", sum.Returns.Return)
	s.Append("totalReturnPercent", sum.Returns.ReturnPct)
	s.Append("matched", sum.Matched)
	s.Append("needsInitialPosition", sum.NeedsInitial)
	s.Append("discrepancies", sum.Discrepancies)
	summary, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	w.WriteString(`"summary":`)
	w.Write(summary)
	w.WriteString(",")

	return w.MarshalJSON()
}

// emptyAsList makes a nil slice marshal as [] rather than null.
func emptyAsList[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EncodeArtifact writes the artifact as indented JSON.
func EncodeArtifact(w io.Writer, a *Artifact) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal export artifact: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export artifact: %w", err)
	}
	return nil
}
