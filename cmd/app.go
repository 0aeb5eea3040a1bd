// Package cmd implements the CLI application to import and reconcile
// brokerage exports.
package cmd

import (
	"fmt"
	"os"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/DavaStrava/portfolio-import/fidelity"
	"github.com/DavaStrava/portfolio-import/schwab"
	"github.com/DavaStrava/portfolio-import/tradelog"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reconcileCmd{}, "pipeline")
	c.Register(&detectCmd{}, "pipeline")
	c.Register(&txCmd{}, "pipeline")

	c.Register(&topicCmd{}, "documentation")
}

// readFile reads a whole input file, the only input I/O boundary of a run.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input file %q: %w", path, err)
	}
	return string(data), nil
}

// mapTransactions runs the front of the pipeline on one file: detect the
// layout, tokenize, and dispatch to the matching row mapper. An unknown
// layout yields an empty result with no rows mapped, not an error.
// maxRows caps the number of data rows mapped, 0 for all (preview mode).
func mapTransactions(text string, maxRows int) ([]portfolio.Transaction, []portfolio.RowError, portfolio.DetectedFormat) {
	df := portfolio.Detect(text)
	opts := df.TokenizeOptions()
	opts.MaxRows = maxRows
	rows := portfolio.Tokenize(text, opts)
	switch df.Format {
	case portfolio.FormatSchwabTransactions:
		txs, errs := schwab.Mapper{}.MapAll(rows)
		return txs, errs, df
	case portfolio.FormatFidelityTransactions:
		txs, errs := fidelity.TransactionMapper{}.MapAll(rows)
		return txs, errs, df
	case portfolio.FormatTradeLog:
		txs, errs := tradelog.Mapper{}.MapAll(rows)
		return txs, errs, df
	case portfolio.FormatFidelityHoldings:
		// A holdings snapshot contains no transactions.
		return nil, nil, df
	default:
		return nil, nil, df
	}
}

// parseSnapshot runs the front of the pipeline on a holdings file.
func parseSnapshot(text string) (portfolio.Snapshot, []portfolio.RowError, portfolio.DetectedFormat) {
	df := portfolio.Detect(text)
	if df.Format != portfolio.FormatFidelityHoldings {
		return portfolio.Snapshot{}, nil, df
	}
	rows := portfolio.Tokenize(text, df.TokenizeOptions())
	snap, errs := fidelity.HoldingsMapper{}.ParseSnapshot(rows)
	return snap, errs, df
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
