package wallet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePortfolio decodes raw holding rows from a stream of JSONL data, one
// row per line:
//
//	{"symbol":"ACME","quantity":10,"pricePaid":50.0,"date":"2024-01-01"}
//
// The order of the rows is preserved, it is the order of the loaded portfolio.
func DecodePortfolio(r io.Reader) ([]RawHolding, error) {
	var raws []RawHolding
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var raw RawHolding
		if err := json.Unmarshal(lineBytes, &raw); err != nil {
			return nil, fmt.Errorf("could not decode holding on line %d %q: %w", line, string(lineBytes), err)
		}
		if raw.Symbol == "" {
			return nil, fmt.Errorf("missing symbol on line %d %q", line, string(lineBytes))
		}
		if raw.Date.IsZero() {
			return nil, fmt.Errorf("missing date on line %d %q", line, string(lineBytes))
		}
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read portfolio: %w", err)
	}
	return raws, nil
}

// EncodePortfolio writes raw holding rows as JSONL, one row per line.
func EncodePortfolio(w io.Writer, raws []RawHolding) error {
	enc := json.NewEncoder(w)
	for _, raw := range raws {
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("could not encode holding %q: %w", raw.Symbol, err)
		}
	}
	return nil
}
