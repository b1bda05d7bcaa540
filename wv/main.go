package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mbareau/wallet/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI to the shell. When invoked by the shell
// completion hook it prints candidates and exits; otherwise it is a no-op.
func completion() {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"value":     {Flags: dateFlags},
			"dividends": {Flags: dateFlags},
			"check":     {Flags: map[string]complete.Predictor{"v": predict.Nothing}},
			"topic":     {Args: predict.Set{"readme", "portfolio-file", "policies", "providers", "*"}},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.jsonl"),
			"currency":       predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			"policy":         predict.Set{"partial-success", "fail-fast"},
			"snap":           predict.Set{"backward", "forward", "none"},
			"max-parallel":   predict.Nothing,
			"eodhd-api-key":  predict.Nothing,
		},
	}
	c.Complete(path.Base(os.Args[0]))
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
