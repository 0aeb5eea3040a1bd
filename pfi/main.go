package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/DavaStrava/portfolio-import/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op unless invoked by the completion machinery.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"reconcile": {Args: predict.Files("*")},
			"detect":    {Args: predict.Files("*")},
			"tx":        {Args: predict.Files("*"), Flags: map[string]complete.Predictor{"json": predict.Nothing, "n": predict.Something}},
			"topic":     {Args: predict.Set{"readme", "formats", "reconcile"}},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
