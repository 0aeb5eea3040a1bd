package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/DavaStrava/portfolio-import"
	"github.com/google/subcommands"
)

type detectCmd struct{}

func (*detectCmd) Name() string     { return "detect" }
func (*detectCmd) Synopsis() string { return "shows which layout each file matches" }
func (*detectCmd) Usage() string {
	return `pfi detect <file>...

  Classifies each file into one of the known brokerage export layouts and
  prints the layout tag, the header and data offsets, and the confidence.
`
}

func (c *detectCmd) SetFlags(f *flag.FlagSet) {}

func (c *detectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one file to classify.")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		text, err := readFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		df := portfolio.Detect(text)
		fmt.Printf("%s: %s (header line %d, data line %d, confidence %.2f)\n",
			path, df.Format, df.HeaderIndex, df.DataIndex, df.Confidence)
	}
	return status
}
