// Package yahoo implements a dividend source backed by the Yahoo Finance
// chart API, the same data the yfinance tooling scrapes.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/kjoseph/divitrack"
	"github.com/kjoseph/divitrack/date"
	"github.com/shopspring/decimal"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": { "currency": "INR", "symbol": "ITC.NS", ... },
	                "timestamp": [ ... ],
	                "events": {
	                    "dividends": {
	                        "1675221300": { "amount": 5.5, "date": 1675221300 },
	                        ...
	                    }
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/

// Client queries the Yahoo Finance chart API. No API key is required.
type Client struct {
	httpc *http.Client
	base  string
}

// NewClient returns a ready to use client.
func NewClient() *Client {
	return &Client{httpc: new(http.Client), base: "https://query1.finance.yahoo.com"}
}

// Dividends fetches the full dividend payout history for a ticker.
//
// The chart API returns dividend events keyed by epoch seconds in the
// exchange's timezone; each is normalized to a timezone-naive date before it
// reaches the engine.
func (c *Client) Dividends(ticker string) ([]divitrack.DividendEvent, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=max&interval=1d&events=div", c.base, url.PathEscape(ticker))

	var jobj any
	if err := jwget(c.httpc, addr, &jobj); err != nil {
		return nil, fmt.Errorf("lookup %q: %w", ticker, err)
	}

	// The API reports unknown tickers inside the payload, not with a status code.
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil && desc != nil {
		return nil, fmt.Errorf("lookup %q: %v", ticker, desc)
	}

	jval, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj)
	if err != nil {
		// No events object at all: the ticker exists but has no dividend history.
		return nil, nil
	}
	divs, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("lookup %q: unexpected dividends payload %T", ticker, jval)
	}
	return parseEvents(divs)
}

// parseEvents converts the chart API dividend map into chronological events.
// Each entry looks like {"amount": 5.5, "date": 1675221300}.
func parseEvents(divs map[string]any) ([]divitrack.DividendEvent, error) {
	events := make([]divitrack.DividendEvent, 0, len(divs))
	for _, v := range divs {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected dividend entry %v", v)
		}
		amount, aok := obj["amount"].(float64)
		epoch, eok := obj["date"].(float64)
		if !aok || !eok {
			return nil, fmt.Errorf("unexpected dividend entry %v", v)
		}
		events = append(events, divitrack.DividendEvent{
			RecordDate: date.FromTime(time.Unix(int64(epoch), 0).UTC()),
			Amount:     decimal.NewFromFloat(amount),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].RecordDate.Before(events[j].RecordDate)
	})
	return events, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; divitrack)")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

var _ divitrack.DividendSource = (*Client)(nil)
