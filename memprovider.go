package wallet

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// MemProvider is a deterministic in-memory MarketDataProvider. It backs the
// package tests and any caller that wants to value a portfolio against a
// fixed data set; it never fails with transport errors on its own.
//
// The zero value is empty and unusable; use NewMemProvider. It is immutable
// after the Add calls that build it, and therefore safe for concurrent reads.
type MemProvider struct {
	prices    map[string]map[Date]decimal.Decimal
	dividends map[string][]Dividend
	snap      SnapPolicy
	window    int
}

// NewMemProvider returns an empty in-memory provider with the given snap policy.
func NewMemProvider(snap SnapPolicy) *MemProvider {
	return &MemProvider{
		prices:    make(map[string]map[Date]decimal.Decimal),
		dividends: make(map[string][]Dividend),
		snap:      snap,
		window:    DefaultSnapWindow,
	}
}

// AddPrice records the close price of ticker on a given day. Adding any price
// makes the ticker known to IsTickerValid.
func (m *MemProvider) AddPrice(ticker string, day Date, price decimal.Decimal) *MemProvider {
	days, ok := m.prices[ticker]
	if !ok {
		days = make(map[Date]decimal.Decimal)
		m.prices[ticker] = days
	}
	days[day] = price
	return m
}

// AddDividend records a dividend event for ticker.
func (m *MemProvider) AddDividend(ticker string, exDate Date, amount decimal.Decimal) *MemProvider {
	m.dividends[ticker] = append(m.dividends[ticker], Dividend{ExDate: exDate, Amount: amount})
	sort.Slice(m.dividends[ticker], func(i, j int) bool {
		return m.dividends[ticker][i].ExDate.Before(m.dividends[ticker][j].ExDate)
	})
	if _, ok := m.prices[ticker]; !ok {
		m.prices[ticker] = make(map[Date]decimal.Decimal)
	}
	return m
}

func (m *MemProvider) PriceAtDate(_ context.Context, ticker string, day Date) (decimal.Decimal, error) {
	days, ok := m.prices[ticker]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", ticker, ErrInvalidTicker)
	}
	if price, ok := days[day]; ok {
		return price, nil
	}
	step := 0
	switch m.snap {
	case SnapBackward:
		step = -1
	case SnapForward:
		step = +1
	case SnapNone:
		return decimal.Decimal{}, fmt.Errorf("%q on %s: %w", ticker, day, ErrNoPriceData)
	}
	for i, d := 1, day; i <= m.window; i++ {
		d = d.Add(step)
		if price, ok := days[d]; ok {
			return price, nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("%q within %d days of %s: %w", ticker, m.window, day, ErrNoPriceData)
}

func (m *MemProvider) IsTickerValid(_ context.Context, ticker string) (bool, error) {
	_, ok := m.prices[ticker]
	return ok, nil
}

func (m *MemProvider) DividendsPerShare(_ context.Context, ticker string, from, to Date) ([]Dividend, error) {
	if _, ok := m.prices[ticker]; !ok {
		return nil, fmt.Errorf("%q: %w", ticker, ErrInvalidTicker)
	}
	out := []Dividend{}
	for _, d := range m.dividends[ticker] {
		// half-open window [from, to)
		if d.ExDate.Before(from) || !d.ExDate.Before(to) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

var _ MarketDataProvider = (*MemProvider)(nil)
