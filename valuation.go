package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrZeroInitialValue means ROI is undefined because the initial value is zero.
var ErrZeroInitialValue = errors.New("initial value is zero")

var hundred = decimal.NewFromInt(100)

// ROI returns (current − initial) / initial × 100.
// It fails with ErrZeroInitialValue when initial is zero: the ratio is
// undefined and reporting that beats inventing a number.
func ROI(initial, current decimal.Decimal) (Percent, error) {
	if initial.IsZero() {
		return 0, ErrZeroInitialValue
	}
	roi := current.Sub(initial).Div(initial).Mul(hundred)
	return Percent(roi.InexactFloat64()), nil
}

// Valuation is the result row for one holding, handed to presentation as is.
type Valuation struct {
	Ticker         string
	Quantity       uint32
	InitialValue   decimal.Decimal
	CurrentValue   decimal.Decimal
	ROI            Percent
	DividendIncome decimal.Decimal
}

// PortfolioValuation aggregates per-holding rows and portfolio totals at a date.
type PortfolioValuation struct {
	Date     Date
	Rows     []Valuation    // one per successfully valued holding, input order
	Failures []HoldingError // per-holding failures under PartialSuccess

	InitialValue   decimal.Decimal
	CurrentValue   decimal.Decimal
	DividendIncome decimal.Decimal
	ROI            Percent // aggregate over the succeeded rows
}

// ValuePortfolio values every holding at the given day: initial value,
// current value, ROI and dividend income since acquisition. Backend calls
// fan out bounded by opts.MaxParallel; rows keep the input order of holdings.
//
// The batch policy is the same as the loader's: under PartialSuccess failed
// holdings land in Failures and the totals cover the rows that succeeded;
// under FailFast the first failure aborts the valuation.
func ValuePortfolio(ctx context.Context, holdings []Holding, p MarketDataProvider, day Date, opts LoadOptions) (*PortfolioValuation, error) {
	rows := make([]Valuation, len(holdings))
	errs := fanOut(ctx, len(holdings), opts, func(ctx context.Context, i int) error {
		row, err := valueHolding(ctx, holdings[i], p, day)
		if err != nil {
			return err
		}
		rows[i] = row
		return nil
	})

	if opts.Policy == FailFast {
		if i := firstFailure(errs); i >= 0 {
			return nil, HoldingError{Ticker: holdings[i].Ticker(), Err: errs[i]}
		}
	}

	pv := &PortfolioValuation{Date: day}
	for i, err := range errs {
		if err != nil {
			pv.Failures = append(pv.Failures, HoldingError{Ticker: holdings[i].Ticker(), Err: err})
			continue
		}
		pv.Rows = append(pv.Rows, rows[i])
		pv.InitialValue = pv.InitialValue.Add(rows[i].InitialValue)
		pv.CurrentValue = pv.CurrentValue.Add(rows[i].CurrentValue)
		pv.DividendIncome = pv.DividendIncome.Add(rows[i].DividendIncome)
	}
	if roi, err := ROI(pv.InitialValue, pv.CurrentValue); err == nil {
		pv.ROI = roi
	}
	return pv, nil
}

// valueHolding computes the full result row for a single holding.
func valueHolding(ctx context.Context, h Holding, p MarketDataProvider, day Date) (Valuation, error) {
	current, err := h.ValueAt(ctx, p, day)
	if err != nil {
		return Valuation{}, err
	}
	income, err := h.DividendIncome(ctx, p, day)
	if err != nil {
		return Valuation{}, err
	}
	row := Valuation{
		Ticker:         h.Ticker(),
		Quantity:       h.Quantity(),
		InitialValue:   h.InitialValue(),
		CurrentValue:   current,
		DividendIncome: income,
	}
	// a zero-quantity row has no defined ROI, its zero value stands for "undefined"
	if roi, err := ROI(row.InitialValue, row.CurrentValue); err == nil {
		row.ROI = roi
	} else if !errors.Is(err, ErrZeroInitialValue) {
		return Valuation{}, err
	}
	return row, nil
}

// PortfolioValueAt sums ValueAt across holdings, with the batch policy of the
// loader. Under PartialSuccess the sum covers the holdings that succeeded and
// the failures are reported alongside.
func PortfolioValueAt(ctx context.Context, holdings []Holding, p MarketDataProvider, day Date, opts LoadOptions) (decimal.Decimal, []HoldingError, error) {
	return sumHoldings(ctx, holdings, opts, func(ctx context.Context, h Holding) (decimal.Decimal, error) {
		return h.ValueAt(ctx, p, day)
	})
}

// TotalDividends sums DividendIncome across holdings, each holding using its
// own acquisition date as the window start.
func TotalDividends(ctx context.Context, holdings []Holding, p MarketDataProvider, end Date, opts LoadOptions) (decimal.Decimal, []HoldingError, error) {
	return sumHoldings(ctx, holdings, opts, func(ctx context.Context, h Holding) (decimal.Decimal, error) {
		return h.DividendIncome(ctx, p, end)
	})
}

func sumHoldings(ctx context.Context, holdings []Holding, opts LoadOptions, fn func(ctx context.Context, h Holding) (decimal.Decimal, error)) (decimal.Decimal, []HoldingError, error) {
	values := make([]decimal.Decimal, len(holdings))
	errs := fanOut(ctx, len(holdings), opts, func(ctx context.Context, i int) error {
		v, err := fn(ctx, holdings[i])
		if err != nil {
			return err
		}
		values[i] = v
		return nil
	})

	if opts.Policy == FailFast {
		if i := firstFailure(errs); i >= 0 {
			return decimal.Decimal{}, nil, HoldingError{Ticker: holdings[i].Ticker(), Err: errs[i]}
		}
	}

	var total decimal.Decimal
	var failures []HoldingError
	for i, err := range errs {
		if err != nil {
			failures = append(failures, HoldingError{Ticker: holdings[i].Ticker(), Err: err})
			continue
		}
		total = total.Add(values[i])
	}
	return total, failures, nil
}

// check that batch errors are classifiable with errors.Is.
var _ interface{ Unwrap() error } = ResolveError{}
var _ interface{ Unwrap() error } = HoldingError{}
