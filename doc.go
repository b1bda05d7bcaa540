// Package wallet values an investor's holdings over time.
//
// It combines user-supplied purchase records with prices and dividend
// history obtained from a market data backend. The backend is anything
// implementing [MarketDataProvider]; the rest of the package derives the
// metrics: initial value, value at an arbitrary date, dividend income over a
// window, and return on investment.
//
// Entities are immutable once constructed. A [Stock] is a priced reference
// to a ticker at a point in time, tagged with the provenance of its price; a
// [Holding] is a quantity of a Stock. Valuing a holding at a new date is a
// pure function of the holding and the date, never a mutation.
//
// Batch operations (loading a portfolio, valuing it) fan out to the backend
// with bounded concurrency and an explicit error [Policy]: partial-success
// by default, fail-fast on demand.
package wallet
