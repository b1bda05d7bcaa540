package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbareau/wallet"
	"github.com/mbareau/wallet/renderer"
)

type dividendsCmd struct {
	date string
}

func (*dividendsCmd) Name() string { return "dividends" }
func (*dividendsCmd) Synopsis() string {
	return "report the dividend income collected by each holding since its acquisition"
}
func (*dividendsCmd) Usage() string {
	return `wv dividends [-d <date>]

  Sums, per holding and in total, the dividends detached between each
  holding's acquisition date and the given end date (exclusive).

Usage Examples:
# Dividends collected up to today.
$ wv dividends

`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "The end date of the dividend window (defaults to today).")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := wallet.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	opts, err := options()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	provider, err := newProvider()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, err := loadHoldings(ctx, provider, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pv, err := wallet.ValuePortfolio(ctx, holdings, provider, day, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDividends(renderer.NewDividends(pv, holdings, *currency)))
	return subcommands.ExitSuccess
}
