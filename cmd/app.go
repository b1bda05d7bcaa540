// Package cmd implements the CLI application to value a portfolio.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbareau/wallet"
	"github.com/mbareau/wallet/eodhd"
)

// Commands is the list of subcommands a main package registers.
// A main package will call subcommands.Register on each, then Execute the user-selected one.
var Commands = []subcommands.Command{
	&valueCmd{},
	&dividendsCmd{},
	&checkCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio file (JSONL format, one holding per line)")
	currency      = flag.String("currency", "USD", "Reporting currency used to format amounts")
	policyFlag    = flag.String("policy", "partial-success", "Batch error policy: partial-success or fail-fast")
	maxParallel   = flag.Int("max-parallel", wallet.DefaultMaxParallel, "Maximum simultaneous market data calls")
	snapFlag      = flag.String("snap", "backward", "Price lookup on a closed day: backward, forward or none")
)

const eodhdAPIKey = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key used to fetch market data.\n If missing it will read the environment variable \""+eodhdAPIKey+"\". You can get one at https://eodhd.com/")

func apiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdAPIKey)
	}
	return *eodhdAPIFlag
}

// newProvider returns the production market data backend configured from flags.
func newProvider() (wallet.MarketDataProvider, error) {
	key := apiKey()
	if key == "" {
		return nil, fmt.Errorf("no EODHD API key: set -eodhd-api-key or the %s environment variable", eodhdAPIKey)
	}
	snap, err := wallet.ParseSnapPolicy(*snapFlag)
	if err != nil {
		return nil, err
	}
	return eodhd.New(key, eodhd.WithSnap(snap)), nil
}

// options returns the batch options configured from flags.
func options() (wallet.LoadOptions, error) {
	policy, err := wallet.ParsePolicy(*policyFlag)
	if err != nil {
		return wallet.LoadOptions{}, err
	}
	return wallet.LoadOptions{MaxParallel: *maxParallel, Policy: policy}, nil
}

// decodePortfolio reads the raw holdings from the app portfolio file.
func decodePortfolio() ([]wallet.RawHolding, error) {
	f, err := os.Open(*portfolioFile)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()

	raws, err := wallet.DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", *portfolioFile, err)
	}
	return raws, nil
}

// loadHoldings decodes the portfolio file and resolves it against the backend.
// Resolution failures under partial-success are reported on stderr, one line
// per offending record, and the valid holdings are returned.
func loadHoldings(ctx context.Context, p wallet.MarketDataProvider, opts wallet.LoadOptions) ([]wallet.Holding, error) {
	raws, err := decodePortfolio()
	if err != nil {
		return nil, err
	}
	holdings, failures, err := wallet.LoadPortfolio(ctx, raws, p, opts)
	if err != nil {
		return nil, err
	}
	for _, f := range failures {
		fmt.Fprintln(os.Stderr, "Warning:", f.Error())
	}
	return holdings, nil
}
