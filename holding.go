package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// RawHolding is one row of a portfolio file, before resolution: what was
// bought, how much of it, at what price, on which day. It is transient input,
// consumed once by the loader.
type RawHolding struct {
	Symbol    string          `json:"symbol"`
	Quantity  uint32          `json:"quantity"`
	PricePaid decimal.Decimal `json:"pricePaid"`
	Date      Date            `json:"date"`
}

// Holding is a quantity of a Stock acquired at a price. It is immutable after
// resolution: valuations are pure functions of a Holding and a query date,
// never in-place updates.
type Holding struct {
	stock    Stock
	quantity uint32
}

// NewHolding builds a Holding from an already constructed Stock.
func NewHolding(stock Stock, quantity uint32) Holding {
	return Holding{stock: stock, quantity: quantity}
}

// Stock returns the priced stock reference of the holding.
func (h Holding) Stock() Stock { return h.stock }

// Quantity returns the number of shares held.
func (h Holding) Quantity() uint32 { return h.quantity }

// Ticker returns the symbol of the held security.
func (h Holding) Ticker() string { return h.stock.Ticker() }

func (h Holding) String() string {
	return fmt.Sprintf("%d x %s", h.quantity, h.stock)
}

// ResolveHolding resolves a raw portfolio row into a Holding.
//
// The row's calendar date is anchored at the market close of that day
// (Date.Close, 16:00 UTC) so the acquisition instant never depends on a local
// timezone. The price paid is user-asserted; only the symbol is validated.
func ResolveHolding(ctx context.Context, raw RawHolding, p MarketDataProvider) (Holding, error) {
	stock, err := NewUserStock(ctx, p, raw.Symbol, raw.PricePaid, raw.Date.Close())
	if err != nil {
		return Holding{}, err
	}
	return Holding{stock: stock, quantity: raw.Quantity}, nil
}

// InitialValue returns quantity × acquisition price. Pure, no I/O.
func (h Holding) InitialValue() decimal.Decimal {
	return h.stock.Price().Mul(decimal.NewFromUint64(uint64(h.quantity)))
}

// ValueAt returns quantity × the backend's price at the given day.
//
// It deliberately re-queries the backend instead of reusing the stock's
// price: the stored price is the acquisition price, not a current quote.
func (h Holding) ValueAt(ctx context.Context, p MarketDataProvider, day Date) (decimal.Decimal, error) {
	price, err := p.PriceAtDate(ctx, h.stock.Ticker(), day)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("valuing %q at %s: %w", h.stock.Ticker(), day, err)
	}
	return price.Mul(decimal.NewFromUint64(uint64(h.quantity))), nil
}

// DividendIncome sums amount-per-share × quantity over every dividend with an
// ex-date in [acquisition day, end). Dividends detached before ownership are
// excluded by the window itself, not by filtering.
func (h Holding) DividendIncome(ctx context.Context, p MarketDataProvider, end Date) (decimal.Decimal, error) {
	from := DateOf(h.stock.Date())
	dividends, err := p.DividendsPerShare(ctx, h.stock.Ticker(), from, end)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("dividends of %q over [%s, %s): %w", h.stock.Ticker(), from, end, err)
	}
	qty := decimal.NewFromUint64(uint64(h.quantity))
	var total decimal.Decimal
	for _, d := range dividends {
		total = total.Add(d.Amount.Mul(qty))
	}
	return total, nil
}
