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

type txCmd struct {
	jsonOut bool
	maxRows int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "maps a transaction file and shows the normalized records" }
func (*txCmd) Usage() string {
	return `pfi tx [-json] [-n <rows>] <transactions_file>

  Detects the file layout, maps its rows into normalized transactions, and
  renders them as a table together with any rejected rows. With -json, the
  transactions are printed one JSON object per line instead.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.jsonOut, "json", false, "Print transactions as JSON lines instead of a table.")
	f.IntVar(&p.maxRows, "n", 0, "Map at most n data rows (0 for all).")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the transactions file to map.")
		return subcommands.ExitUsageError
	}
	text, err := readFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, errs, df := mapTransactions(text, p.maxRows)
	if df.Format == portfolio.FormatUnknown {
		fmt.Fprintln(os.Stderr, "Warning: unknown file layout, no rows mapped.")
	}

	if p.jsonOut {
		for _, tx := range txs {
			data, err := tx.MarshalJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Println(string(data))
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Transactions(txs))
	if len(errs) > 0 {
		printMarkdown(renderer.Errors(errs))
	}
	return subcommands.ExitSuccess
}
