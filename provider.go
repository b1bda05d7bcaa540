package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Errors a market data backend can surface. Implementations wrap them with
// context (ticker, date, transport detail) so callers classify with errors.Is.
var (
	// ErrInvalidTicker means the backend reports the symbol does not exist.
	ErrInvalidTicker = errors.New("invalid ticker")
	// ErrNoPriceData means no trading session data exists near the requested date.
	ErrNoPriceData = errors.New("no price data")
	// ErrProviderUnavailable means a transient transport or backend failure.
	// Retrying is the backend's business; the core treats it as terminal for the call.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrMalformedResponse means the backend returned data that cannot be parsed.
	ErrMalformedResponse = errors.New("malformed response")
)

// Dividend is a single dividend event for a security.
type Dividend struct {
	ExDate Date            `json:"exDate"`
	Amount decimal.Decimal `json:"amount"` // per share
}

// SnapPolicy decides what PriceAtDate does when the exact date has no
// trading session (weekend, holiday): fail, or snap to a nearby session
// within a bounded window.
type SnapPolicy int

const (
	// SnapBackward uses the most recent session at or before the date.
	// Valuing on a Sunday yields Friday's close. This is the default.
	SnapBackward SnapPolicy = iota
	// SnapForward uses the first session at or after the date.
	SnapForward
	// SnapNone fails with ErrNoPriceData unless the exact date has a session.
	SnapNone
)

// DefaultSnapWindow bounds, in days, how far a snapping lookup may roam.
const DefaultSnapWindow = 7

func (s SnapPolicy) String() string {
	switch s {
	case SnapBackward:
		return "backward"
	case SnapForward:
		return "forward"
	case SnapNone:
		return "none"
	}
	return "unknown"
}

// ParseSnapPolicy parses a snap policy name as used in CLI flags.
func ParseSnapPolicy(str string) (SnapPolicy, error) {
	switch str {
	case "backward", "":
		return SnapBackward, nil
	case "forward":
		return SnapForward, nil
	case "none":
		return SnapNone, nil
	}
	return SnapBackward, errors.New("invalid snap policy " + str + ": want backward, forward or none")
}

// MarketDataProvider is the sole boundary to any concrete market data
// backend. Implementations must be idempotent for identical inputs (modulo
// backend-side data revisions) and safe for concurrent use.
type MarketDataProvider interface {
	// PriceAtDate returns the closing price of the trading session covering
	// day, snapping to a nearby session according to the implementation's
	// SnapPolicy. It fails with ErrNoPriceData when no session exists within
	// the snap window.
	PriceAtDate(ctx context.Context, ticker string, day Date) (decimal.Decimal, error)

	// IsTickerValid reports whether the symbol exists. An unknown symbol is
	// (false, nil), not an error; ErrProviderUnavailable is for transport
	// failures only.
	IsTickerValid(ctx context.Context, ticker string) (bool, error)

	// DividendsPerShare returns all dividend events with ex-dates in
	// [from, to), ascending by date. No events is an empty slice, not an error.
	DividendsPerShare(ctx context.Context, ticker string, from, to Date) ([]Dividend, error)
}
