package divitrack

import (
	"github.com/kjoseph/divitrack/date"
	"github.com/shopspring/decimal"
)

// DividendEvent is one historical payout record for a ticker: the ex-date and
// the per-share amount, as supplied by a market data provider. Events are
// read-only; the provider's timestamps are already normalized to a
// timezone-naive date.Date.
type DividendEvent struct {
	RecordDate date.Date
	Amount     decimal.Decimal // per-share amount
	Currency   string          // informational, may be empty
}

// DividendSource provides the full dividend payout history for a ticker.
//
// Implementations must return events in chronological order. An empty series
// with a nil error means the provider knows the ticker but found no payouts.
// Implementations do not retry: the engine makes exactly one attempt per
// holding.
type DividendSource interface {
	Dividends(ticker string) ([]DividendEvent, error)
}

// FetchResult is the outcome of one provider lookup during an aggregation
// run. Failures are values, not control flow: the engine aggregates them into
// per-holding warnings instead of aborting.
type FetchResult struct {
	Ticker string
	Events []DividendEvent
	Err    error
}

// Empty reports whether the lookup succeeded but carried no payout events.
func (r FetchResult) Empty() bool { return r.Err == nil && len(r.Events) == 0 }

func fetch(src DividendSource, ticker string) FetchResult {
	events, err := src.Dividends(ticker)
	return FetchResult{Ticker: ticker, Events: events, Err: err}
}
