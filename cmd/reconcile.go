package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/DavaStrava/portfolio-import/renderer"
	"github.com/google/subcommands"
)

const defaultOutput = "./portfolio-import-data.json"

type reconcileCmd struct {
	quiet bool
}

func (*reconcileCmd) Name() string { return "reconcile" }
func (*reconcileCmd) Synopsis() string {
	return "reconciles a transaction history against a holdings snapshot and writes the import artifact"
}
func (*reconcileCmd) Usage() string {
	return `pfi reconcile <transactions_file> <holdings_file> [output_file] [manual_transactions.json]

  Reads a brokerage transaction export and a holdings export, normalizes
  them, reconciles the history against the current positions, and writes a
  single JSON artifact (default ` + defaultOutput + `) for the
  database import endpoint.

  An optional fourth argument names a JSON file of manual transactions to
  merge into the history before reconciling. A malformed overlay is skipped
  with a warning.

Usage Examples:
$ pfi reconcile transactions.csv holdings.csv
$ pfi reconcile transactions.csv holdings.csv out.json manual.json
`
}

func (p *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.quiet, "q", false, "Do not render the reconciliation report to stdout.")
}

func (p *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: pfi reconcile <transactions_file> <holdings_file> [output_file] [manual_transactions.json]")
		return subcommands.ExitUsageError
	}
	txPath, holdingsPath := f.Arg(0), f.Arg(1)
	outPath := defaultOutput
	if f.NArg() >= 3 {
		outPath = f.Arg(2)
	}

	txText, err := readFile(txPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	holdingsText, err := readFile(holdingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, txErrs, txFormat := mapTransactions(txText, 0)
	fmt.Fprintf(os.Stderr, "Transactions file: %s (confidence %.2f), %d transactions, %d rejected rows\n",
		txFormat.Format, txFormat.Confidence, len(txs), len(txErrs))

	snap, holdErrs, holdFormat := parseSnapshot(holdingsText)
	fmt.Fprintf(os.Stderr, "Holdings file: %s (confidence %.2f), %d holdings, %d rejected rows\n",
		holdFormat.Format, holdFormat.Confidence, len(snap.Holdings), len(holdErrs))

	if f.NArg() >= 4 {
		manual, err := importManual(f.Arg(3))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping manual transactions: %v\n", err)
		} else {
			txs = append(txs, manual...)
			fmt.Fprintf(os.Stderr, "Merged %d manual transactions\n", len(manual))
		}
	}

	report := portfolio.Reconcile(txs, snap)
	artifact := portfolio.NewArtifact(txs, snap, report)

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", outPath, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := portfolio.EncodeArtifact(out, artifact); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", outPath, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)

	if !p.quiet {
		printMarkdown(renderer.ReportMarkdown(report, snap))
		if allErrs := append(txErrs, holdErrs...); len(allErrs) > 0 {
			printMarkdown(renderer.Errors(allErrs))
		}
	}
	return subcommands.ExitSuccess
}

func importManual(path string) ([]portfolio.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return portfolio.ImportManualTransactions(f)
}
