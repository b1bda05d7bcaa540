package eodhd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mbareau/wallet"
	"github.com/shopspring/decimal"
)

/*
	{
	    "code": "AAPL.US",
	    "timestamp": 1712074500,
	    "gmtoffset": 0,
	    "open": 170.03,
	    "high": 170.9,
	    "low": 168.82,
	    "close": 169.65,
	    "previousClose": 170.03,
	    "change": -0.38,
	    "change_p": -0.2235
	}
*/

// lastTrade returns the last intraday price for a ticker from the real-time
// endpoint. The endpoint is moody: "close" is a float most of the time but
// turns into the string "NA" (or a localized number) when the session has no
// trades yet, so the value is extracted with jsonpath and coerced.
func (c *Client) lastTrade(ticker string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, c.apiKey)

	var jobj any
	// intraday by nature, never worth caching for a day
	if err := jwget(newUncachedClient(), addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error retrieving last trade of %q: %w", ticker, err)
	}

	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing last trade of %q: %q %v: %w", ticker, path, err, wallet.ErrMalformedResponse)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("last trade of %q is neither a float nor a string (%v): %w", ticker, jval, wallet.ErrMalformedResponse)
		}
		if sval == "NA" {
			return decimal.Decimal{}, fmt.Errorf("no intraday trade yet for %q: %w", ticker, wallet.ErrNoPriceData)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("last trade of %q is an invalid string %q: %v: %w", ticker, sval, err, wallet.ErrMalformedResponse)
		}
	}
	if val == 0 {
		// an empty session reports 0, no value to return
		log.Printf("empty intraday close for %q, ignoring", ticker)
		return decimal.Decimal{}, fmt.Errorf("empty intraday close for %q: %w", ticker, wallet.ErrNoPriceData)
	}
	return decimal.NewFromFloat(val), nil
}
