// Package eodhd implements the wallet market data contract on top of the
// EOD Historical Data API (https://eodhd.com).
package eodhd

import (
	"context"
	"fmt"
	"sort"

	"github.com/mbareau/wallet"
	"github.com/shopspring/decimal"
)

// DemoAPIKey is eodhd.com's public demo key. It only grants access to a
// handful of tickers (AAPL.US, MCD.US, ...) but needs no account.
const DemoAPIKey = "demo"

// Client queries eodhd.com. It is stateless between calls apart from the
// daily disk cache of HTTP responses, and safe for concurrent use.
type Client struct {
	apiKey string
	snap   wallet.SnapPolicy
	window int // bounded lookaround for snapping, in days
}

// Option configures a Client.
type Option func(*Client)

// WithSnap sets the closed-day fallback policy for price lookups.
func WithSnap(policy wallet.SnapPolicy) Option {
	return func(c *Client) { c.snap = policy }
}

// WithSnapWindow bounds, in days, how far a snapping lookup may roam.
func WithSnapWindow(days int) Option {
	return func(c *Client) {
		if days > 0 {
			c.window = days
		}
	}
}

// New returns a Client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{apiKey: apiKey, snap: wallet.SnapBackward, window: wallet.DefaultSnapWindow}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PriceAtDate returns the close of the session covering day, snapping within
// the client's window according to its policy. When day is today and the EOD
// feed has not published yet, it falls back to the last intraday trade.
func (c *Client) PriceAtDate(ctx context.Context, ticker string, day wallet.Date) (decimal.Decimal, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		...
	//	  },
	from, to := day, day
	switch c.snap {
	case wallet.SnapBackward:
		from = day.Add(-c.window)
	case wallet.SnapForward:
		to = day.Add(c.window)
	}

	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, c.apiKey, from, to)
	type info struct {
		Date  wallet.Date     `json:"date"`
		Close decimal.Decimal `json:"close"`
	}
	content := make([]info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching eod prices for %q: %w", ticker, err)
	}

	prices := make(map[wallet.Date]decimal.Decimal, len(content))
	for _, i := range content {
		prices[i.Date] = i.Close
	}

	if price, ok := prices[day]; ok {
		return price, nil
	}
	step := 0
	switch c.snap {
	case wallet.SnapBackward:
		step = -1
	case wallet.SnapForward:
		step = +1
	case wallet.SnapNone:
		return decimal.Decimal{}, fmt.Errorf("%q has no session on %s: %w", ticker, day, wallet.ErrNoPriceData)
	}
	for i, d := 1, day; i <= c.window; i++ {
		d = d.Add(step)
		if price, ok := prices[d]; ok {
			return price, nil
		}
	}

	// The EOD feed lags the market; for today the last trade is the best close we have.
	if day == wallet.Today() {
		if price, err := c.lastTrade(ticker); err == nil {
			return price, nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("%q within %d days of %s: %w", ticker, c.window, day, wallet.ErrNoPriceData)
}

// IsTickerValid reports whether the symbol is known to eodhd's search.
// An unknown symbol is (false, nil); only transport failures are errors.
func (c *Client) IsTickerValid(ctx context.Context, ticker string) (bool, error) {
	results, err := c.Search(ticker)
	if err != nil {
		return false, fmt.Errorf("searching %q: %w", ticker, err)
	}
	for _, r := range results {
		if r.Code == ticker || r.Code+"."+r.Exchange == ticker {
			return true, nil
		}
	}
	return false, nil
}

// DividendsPerShare returns the dividend events with ex-dates in [from, to),
// ascending.
func (c *Client) DividendsPerShare(ctx context.Context, ticker string, from, to wallet.Date) ([]wallet.Dividend, error) {
	// https://eodhd.com/api/div/AAPL.US?api_token=demo&fmt=json
	// the api bounds are inclusive, our window is half-open.
	addr := fmt.Sprintf("https://eodhd.com/api/div/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, c.apiKey, from, to.Add(-1))

	type apiDividend struct {
		Date  wallet.Date     `json:"date"` // ex-dividend date, see https://eodhd.com/financial-apis/api-splits-dividends
		Value decimal.Decimal `json:"value"`
	}
	content := make([]apiDividend, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("fetching dividends for %q: %w", ticker, err)
	}

	dividends := make([]wallet.Dividend, 0, len(content))
	for _, d := range content {
		if d.Date.Before(from) || !d.Date.Before(to) {
			continue
		}
		dividends = append(dividends, wallet.Dividend{ExDate: d.Date, Amount: d.Value})
	}
	sort.Slice(dividends, func(i, j int) bool { return dividends[i].ExDate.Before(dividends[j].ExDate) })
	return dividends, nil
}

var _ wallet.MarketDataProvider = (*Client)(nil)
