package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Policy is the batch error policy shared by loading and valuation.
type Policy int

const (
	// PartialSuccess collects successes and failures side by side; a failing
	// row never cancels its siblings. Results keep input order. The default:
	// one bad ticker must not blackhole a whole portfolio.
	PartialSuccess Policy = iota
	// FailFast aborts the whole batch on the first failure and cancels the
	// remaining in-flight calls.
	FailFast
)

func (p Policy) String() string {
	if p == FailFast {
		return "fail-fast"
	}
	return "partial-success"
}

// ParsePolicy parses a policy name as used in CLI flags.
func ParsePolicy(str string) (Policy, error) {
	switch str {
	case "partial-success", "":
		return PartialSuccess, nil
	case "fail-fast":
		return FailFast, nil
	}
	return PartialSuccess, errors.New("invalid policy " + str + ": want partial-success or fail-fast")
}

// DefaultMaxParallel bounds the number of simultaneous backend calls when the
// caller does not choose one. Unbounded fan-out is never used.
const DefaultMaxParallel = 4

// LoadOptions tunes a batch operation.
type LoadOptions struct {
	MaxParallel int    // maximum simultaneous backend calls, DefaultMaxParallel if <= 0
	Policy      Policy // batch error policy
}

// ResolveError is a failure attributable to one raw portfolio row.
type ResolveError struct {
	Raw RawHolding
	Err error
}

func (e ResolveError) Error() string {
	return fmt.Sprintf("holding %q (%s): %v", e.Raw.Symbol, e.Raw.Date, e.Err)
}

func (e ResolveError) Unwrap() error { return e.Err }

// HoldingError is a failure attributable to one already-resolved holding.
type HoldingError struct {
	Ticker string
	Err    error
}

func (e HoldingError) Error() string {
	return fmt.Sprintf("holding %q: %v", e.Ticker, e.Err)
}

func (e HoldingError) Unwrap() error { return e.Err }

// LoadPortfolio resolves every raw row into a Holding, concurrently against
// the backend, each resolution independent of its siblings.
//
// Under PartialSuccess it returns the resolved holdings (input order
// preserved) together with one ResolveError per failed row, and a nil error.
// Under FailFast the first failure cancels the remaining calls and is
// returned as the error.
func LoadPortfolio(ctx context.Context, raws []RawHolding, p MarketDataProvider, opts LoadOptions) ([]Holding, []ResolveError, error) {
	results := make([]Holding, len(raws))
	errs := fanOut(ctx, len(raws), opts, func(ctx context.Context, i int) error {
		h, err := ResolveHolding(ctx, raws[i], p)
		if err != nil {
			return err
		}
		results[i] = h
		return nil
	})

	if opts.Policy == FailFast {
		if i := firstFailure(errs); i >= 0 {
			return nil, nil, ResolveError{Raw: raws[i], Err: errs[i]}
		}
		return results, nil, nil
	}

	holdings := make([]Holding, 0, len(raws))
	var failures []ResolveError
	for i, err := range errs {
		if err != nil {
			failures = append(failures, ResolveError{Raw: raws[i], Err: err})
			continue
		}
		holdings = append(holdings, results[i])
	}
	return holdings, failures, nil
}

// firstFailure returns the index of the failure worth reporting under
// FailFast: the first error that is not a cancellation echo, or the first
// error at all. -1 when every index succeeded.
func firstFailure(errs []error) int {
	first := -1
	for i, err := range errs {
		if err == nil {
			continue
		}
		if first < 0 {
			first = i
		}
		if !errors.Is(err, context.Canceled) {
			return i
		}
	}
	return first
}

// fanOut runs fn(i) for every index with at most opts.MaxParallel in flight,
// and returns the per-index errors in input order. Under FailFast the first
// failure cancels the context shared by the remaining calls; under
// PartialSuccess every index runs to completion regardless of siblings.
//
// Results are correlated by index, so callers get input order no matter the
// completion order of the underlying calls.
func fanOut(ctx context.Context, n int, opts LoadOptions, fn func(ctx context.Context, i int) error) []error {
	errs := make([]error, n)
	if n == 0 {
		return errs
	}
	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, maxParallel)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(ctx, i); err != nil {
				errs[i] = err
				if opts.Policy == FailFast {
					cancel()
				}
			}
		}(i)
	}
	wg.Wait()
	return errs
}
