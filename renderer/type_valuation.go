package renderer

import (
	"github.com/mbareau/wallet"
)

// Valuation is the view model of a portfolio valuation report. All amounts
// are preformatted in the reporting currency.
type Valuation struct {
	Date     string
	Currency string
	Rows     []ValuationRow
	Failures []FailureRow

	TotalInitial   string
	TotalCurrent   string
	TotalROI       string
	TotalDividends string
}

// ValuationRow is one security line of the report.
type ValuationRow struct {
	Ticker    string
	Quantity  uint32
	Initial   string
	Current   string
	ROI       string
	Dividends string
}

// FailureRow names a holding that could not be processed and why.
type FailureRow struct {
	Ticker string
	Reason string
}

// Dividends is the view model of a dividend income report.
type Dividends struct {
	Date     string
	Currency string
	Rows     []DividendRow
	Failures []FailureRow
	Total    string
}

// DividendRow is one security line of the dividend report.
type DividendRow struct {
	Ticker   string
	Quantity uint32
	Since    string
	Income   string
}

// NewValuation builds the report view from a computed portfolio valuation.
// Amounts are formatted in the given currency, ROI with an explicit sign.
func NewValuation(pv *wallet.PortfolioValuation, currency string) *Valuation {
	v := &Valuation{
		Date:           pv.Date.String(),
		Currency:       currency,
		TotalInitial:   wallet.M(pv.InitialValue, currency).String(),
		TotalCurrent:   wallet.M(pv.CurrentValue, currency).String(),
		TotalROI:       pv.ROI.SignedString(),
		TotalDividends: wallet.M(pv.DividendIncome, currency).String(),
	}
	for _, row := range pv.Rows {
		v.Rows = append(v.Rows, ValuationRow{
			Ticker:    row.Ticker,
			Quantity:  row.Quantity,
			Initial:   wallet.M(row.InitialValue, currency).String(),
			Current:   wallet.M(row.CurrentValue, currency).String(),
			ROI:       row.ROI.SignedString(),
			Dividends: wallet.M(row.DividendIncome, currency).String(),
		})
	}
	for _, f := range pv.Failures {
		v.Failures = append(v.Failures, FailureRow{Ticker: f.Ticker, Reason: f.Err.Error()})
	}
	return v
}

// NewDividends builds the dividend report view from a computed portfolio
// valuation; the acquisition date of each row comes from the holdings.
func NewDividends(pv *wallet.PortfolioValuation, holdings []wallet.Holding, currency string) *Dividends {
	since := make(map[string]string, len(holdings))
	for _, h := range holdings {
		since[h.Ticker()] = wallet.DateOf(h.Stock().Date()).String()
	}

	d := &Dividends{
		Date:     pv.Date.String(),
		Currency: currency,
		Total:    wallet.M(pv.DividendIncome, currency).String(),
	}
	for _, row := range pv.Rows {
		d.Rows = append(d.Rows, DividendRow{
			Ticker:   row.Ticker,
			Quantity: row.Quantity,
			Since:    since[row.Ticker],
			Income:   wallet.M(row.DividendIncome, currency).String(),
		})
	}
	for _, f := range pv.Failures {
		d.Failures = append(d.Failures, FailureRow{Ticker: f.Ticker, Reason: f.Err.Error()})
	}
	return d
}
