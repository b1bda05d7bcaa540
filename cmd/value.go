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

type valueCmd struct {
	date string
}

func (*valueCmd) Name() string { return "value" }
func (*valueCmd) Synopsis() string {
	return "value the portfolio at a date: initial value, current value, ROI and dividends"
}
func (*valueCmd) Usage() string {
	return `wv value [-d <date>]

  Resolves the portfolio file against the market data backend and prints the
  valuation report: per holding and in total, the initial value, the value at
  the given date, the return on investment and the dividend income collected
  since acquisition.

Usage Examples:
# Value the portfolio today.
$ wv value
# Value the portfolio at the end of last year.
$ wv value -d 2024-12-31

`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "The valuation date (defaults to today).")
}

func (c *valueCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderValuation(renderer.NewValuation(pv, *currency)))
	return subcommands.ExitSuccess
}
