package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbareau/wallet"
	"github.com/mbareau/wallet/eodhd"
)

type checkCmd struct {
	suggest bool
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validate every symbol of the portfolio file against the backend"
}
func (*checkCmd) Usage() string {
	return `wv check [-v]

  Resolves the whole portfolio file and reports, per record, whether the
  symbol is known to the market data backend. Exits with a failure status
  when any record does not resolve.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.suggest, "v", false, "For each unknown symbol, search the backend for candidates.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	raws, err := decodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, failures, err := wallet.LoadPortfolio(ctx, raws, provider, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, h := range holdings {
		fmt.Printf("ok      %s\n", h)
	}
	for _, fail := range failures {
		fmt.Printf("FAIL    %s\n", fail.Error())
		if c.suggest && errors.Is(fail, wallet.ErrInvalidTicker) {
			suggestSymbols(provider, fail.Raw.Symbol)
		}
	}
	if len(failures) > 0 {
		return subcommands.ExitFailure
	}
	fmt.Printf("%d holdings resolve.\n", len(holdings))
	return subcommands.ExitSuccess
}

// suggestSymbols prints candidate symbols for an unknown one, when the
// backend supports searching.
func suggestSymbols(p wallet.MarketDataProvider, symbol string) {
	client, ok := p.(*eodhd.Client)
	if !ok {
		return
	}
	results, err := client.Search(symbol)
	if err != nil || len(results) == 0 {
		return
	}
	fmt.Println("        did you mean:")
	for _, r := range results {
		fmt.Printf("        %s.%s  %s (%s, %s)\n", r.Code, r.Exchange, r.Name, r.Type, r.Currency)
	}
}
