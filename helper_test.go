package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// test helpers shared by the package tests.

func d(str string) Date             { return MustParseDate(str) }
func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// acmeProvider is the reference fixture: ACME bought cheap, worth more later,
// with one dividend in between.
func acmeProvider() *MemProvider {
	p := NewMemProvider(SnapBackward)
	p.AddPrice("ACME", d("2024-01-01"), dec(50.0))
	p.AddPrice("ACME", d("2024-06-01"), dec(75.0))
	p.AddDividend("ACME", d("2024-03-01"), dec(1.0))
	return p
}

// downProvider fails every call with a transport error.
type downProvider struct{}

func (downProvider) PriceAtDate(context.Context, string, Date) (decimal.Decimal, error) {
	return decimal.Decimal{}, fmt.Errorf("backend is down: %w", ErrProviderUnavailable)
}
func (downProvider) IsTickerValid(context.Context, string) (bool, error) {
	return false, fmt.Errorf("backend is down: %w", ErrProviderUnavailable)
}
func (downProvider) DividendsPerShare(context.Context, string, Date, Date) ([]Dividend, error) {
	return nil, fmt.Errorf("backend is down: %w", ErrProviderUnavailable)
}
