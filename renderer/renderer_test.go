package renderer

import (
	"context"
	"strings"
	"testing"

	"github.com/mbareau/wallet"
	"github.com/shopspring/decimal"
)

func fixture(t *testing.T) (*wallet.PortfolioValuation, []wallet.Holding) {
	t.Helper()
	p := wallet.NewMemProvider(wallet.SnapBackward)
	p.AddPrice("ACME", wallet.MustParseDate("2024-01-01"), decimal.NewFromInt(50))
	p.AddPrice("ACME", wallet.MustParseDate("2024-06-01"), decimal.NewFromInt(75))
	p.AddDividend("ACME", wallet.MustParseDate("2024-03-01"), decimal.NewFromInt(1))

	ctx := context.Background()
	raws := []wallet.RawHolding{{
		Symbol: "ACME", Quantity: 10,
		PricePaid: decimal.NewFromInt(50),
		Date:      wallet.MustParseDate("2024-01-01"),
	}}
	holdings, failures, err := wallet.LoadPortfolio(ctx, raws, p, wallet.LoadOptions{})
	if err != nil || len(failures) != 0 {
		t.Fatalf("LoadPortfolio() = %v, %v", failures, err)
	}
	pv, err := wallet.ValuePortfolio(ctx, holdings, p, wallet.MustParseDate("2024-06-01"), wallet.LoadOptions{})
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	return pv, holdings
}

func TestRenderValuation(t *testing.T) {
	pv, _ := fixture(t)
	md := RenderValuation(NewValuation(pv, "USD"))

	for _, want := range []string{
		"# Portfolio valuation on 2024-06-01 (USD)",
		"| ACME | 10 | $500.00 | $750.00 | +50.00% | $10.00 |",
		"| **Total** | | $500.00 | $750.00 | +50.00% | $10.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered report misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Failures") {
		t.Errorf("no failures expected, got:\n%s", md)
	}
}

func TestRenderValuationFailures(t *testing.T) {
	pv, _ := fixture(t)
	pv.Failures = append(pv.Failures, wallet.HoldingError{Ticker: "GONE", Err: wallet.ErrNoPriceData})
	md := RenderValuation(NewValuation(pv, "USD"))

	if !strings.Contains(md, "## Failures") || !strings.Contains(md, "**GONE**") {
		t.Errorf("rendered report misses the failures section:\n%s", md)
	}
}

func TestRenderDividends(t *testing.T) {
	pv, holdings := fixture(t)
	md := RenderDividends(NewDividends(pv, holdings, "USD"))

	for _, want := range []string{
		"# Dividend income up to 2024-06-01 (USD)",
		"| ACME | 10 | 2024-01-01 | $10.00 |",
		"| **Total** | | | $10.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("rendered report misses %q:\n%s", want, md)
		}
	}
}
