package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Origin records where a stock's price came from: asserted by the user, or
// observed from the market data backend. Downstream consumers use it to tell
// a reported acquisition price from an authoritative quote.
type Origin int

const (
	// UserDefined means the price was supplied by the user and only the
	// ticker was validated against the backend.
	UserDefined Origin = iota
	// MarketProvider means the price was fetched from the backend.
	MarketProvider
)

func (o Origin) String() string {
	switch o {
	case UserDefined:
		return "user-defined"
	case MarketProvider:
		return "market-provider"
	}
	return "unknown"
}

// Stock is a priced reference to a ticker at a point in time. It is immutable
// once constructed; a new price at a new date is a new Stock.
type Stock struct {
	ticker string
	price  decimal.Decimal
	date   time.Time // always carries an explicit UTC offset
	origin Origin
}

// Ticker returns the security's symbol.
func (s Stock) Ticker() string { return s.ticker }

// Price returns the price the stock was constructed with.
func (s Stock) Price() decimal.Decimal { return s.price }

// Date returns the instant the price refers to.
func (s Stock) Date() time.Time { return s.date }

// Origin returns the provenance of the price.
func (s Stock) Origin() Origin { return s.origin }

func (s Stock) String() string {
	return fmt.Sprintf("%s@%s (%s, %s)", s.ticker, s.price, s.date.Format(DateFormat), s.origin)
}

// NewUserStock builds a Stock from a user-asserted price, after checking the
// ticker exists. The price is taken as given (it is what the user actually
// paid); only the symbol is validated against the backend.
func NewUserStock(ctx context.Context, p MarketDataProvider, ticker string, price decimal.Decimal, date time.Time) (Stock, error) {
	if ticker == "" {
		return Stock{}, fmt.Errorf("empty ticker: %w", ErrInvalidTicker)
	}
	if price.IsNegative() {
		return Stock{}, fmt.Errorf("negative price %s for %q", price, ticker)
	}
	ok, err := p.IsTickerValid(ctx, ticker)
	if err != nil {
		return Stock{}, fmt.Errorf("validating ticker %q: %w", ticker, err)
	}
	if !ok {
		return Stock{}, fmt.Errorf("unknown ticker %q: %w", ticker, ErrInvalidTicker)
	}
	return Stock{ticker: ticker, price: price, date: date.UTC(), origin: UserDefined}, nil
}

// NewMarketStock builds a Stock priced by the backend at the session covering
// date. The price is authoritative market data, origin MarketProvider.
func NewMarketStock(ctx context.Context, p MarketDataProvider, ticker string, date time.Time) (Stock, error) {
	if ticker == "" {
		return Stock{}, fmt.Errorf("empty ticker: %w", ErrInvalidTicker)
	}
	price, err := p.PriceAtDate(ctx, ticker, DateOf(date))
	if err != nil {
		return Stock{}, fmt.Errorf("pricing %q: %w", ticker, err)
	}
	return Stock{ticker: ticker, price: price, date: date.UTC(), origin: MarketProvider}, nil
}
