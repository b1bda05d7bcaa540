package eodhd

import (
	"fmt"
	"net/url"

	"github.com/mbareau/wallet"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string      `json:"Code"`
	Exchange          string      `json:"Exchange"`
	Name              string      `json:"Name"`
	Type              string      `json:"Type"`
	Country           string      `json:"Country"`
	Currency          string      `json:"Currency"`
	ISIN              string      `json:"ISIN"`
	PreviousClose     float64     `json:"previousClose"`
	PreviousCloseDate wallet.Date `json:"previousCloseDate"`
}

// Search queries the EODHD search endpoint for a symbol or name. It backs
// IsTickerValid, and lets callers suggest candidates for a symbol the backend
// does not know.
func (c *Client) Search(term string) ([]SearchResult, error) {
	apiURL := fmt.Sprintf("https://eodhd.com/api/search/%s?api_token=%s&fmt=json", url.PathEscape(term), url.QueryEscape(c.apiKey))

	var results []SearchResult
	if err := jwget(newDailyCachingClient(), apiURL, &results); err != nil {
		return nil, err
	}
	return results, nil
}
