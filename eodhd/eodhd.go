// Package eodhd implements a dividend source backed by the EOD Historical
// Data API (https://eodhd.com).
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/kjoseph/divitrack"
	"github.com/kjoseph/divitrack/date"
	"github.com/shopspring/decimal"
)

// Client queries the EODHD API. Responses are cached on disk with a daily
// expiry, so repeated runs within a day do not hit the API again.
type Client struct {
	apiKey string
	httpc  *http.Client
	base   string
}

// NewClient returns a client for the given API key. An empty key falls back
// to the public demo key, which only serves a handful of US tickers.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		apiKey = "demo"
	}
	return &Client{apiKey: apiKey, httpc: newDailyCachingClient(), base: "https://eodhd.com"}
}

// Dividends fetches the full dividend payout history for a ticker.
//
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE", e.g. "ITC.NSE".
func (c *Client) Dividends(ticker string) ([]divitrack.DividendEvent, error) {
	// https://eodhd.com/api/div/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2023-02-10",
	//		"declarationDate": "2023-02-02",
	//		"value": 0.23,
	//		"unadjustedValue": 0.23,
	//		"currency": "USD",
	//	  },
	addr := fmt.Sprintf("%s/api/div/%s?fmt=json&api_token=%s", c.base, url.PathEscape(ticker), c.apiKey)

	type apiDividend struct {
		Date     date.Date       `json:"date"` // ex-dividend date, see https://eodhd.com/financial-apis/api-splits-dividends
		Value    decimal.Decimal `json:"value"`
		Currency string          `json:"currency"`
	}

	content := make([]apiDividend, 0)
	if err := jwget(c.httpc, addr, &content); err != nil {
		return nil, err
	}

	events := make([]divitrack.DividendEvent, 0, len(content))
	for _, d := range content {
		events = append(events, divitrack.DividendEvent{
			RecordDate: d.Date,
			Amount:     d.Value,
			Currency:   d.Currency,
		})
	}
	// The API returns chronological order already, but the source contract
	// requires it, so enforce it.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].RecordDate.Before(events[j].RecordDate)
	})
	return events, nil
}

var _ divitrack.DividendSource = (*Client)(nil)
