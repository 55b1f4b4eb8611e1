package divitrack

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/kjoseph/divitrack/date"
	"github.com/shopspring/decimal"
)

// WithholdingRate is the flat TDS estimate applied to the gross dividend
// income when enabled. It is informational: TDS is a pre-paid credit against
// the tax liability, so it is reported alongside the net figure, never
// subtracted from it.
const WithholdingRate = Percent(10)

// DefaultPacing is the delay inserted between provider lookups, a guard
// against the provider's anti-abuse measures.
const DefaultPacing = 100 * time.Millisecond

// TaxConfig holds the user's tax situation for the estimate.
type TaxConfig struct {
	Slab             Percent // income tax slab: one of 0, 10, 20 or 30 percent
	ApplyWithholding bool    // apply the flat 10% TDS estimate
}

// PayoutLineItem is one qualifying dividend payout for one holding.
type PayoutLineItem struct {
	Ticker         string
	DisplayName    string
	RecordDate     date.Date
	AmountPerShare decimal.Decimal
	Quantity       int
	TotalPayout    Money // AmountPerShare × Quantity, exact
}

// Name returns the display name, or the ticker when none was provided.
func (it PayoutLineItem) Name() string {
	if it.DisplayName != "" {
		return it.DisplayName
	}
	return it.Ticker
}

// Warning records a holding that contributed nothing to the aggregate and why.
type Warning struct {
	Ticker string
	Reason string
}

// Summary holds the four aggregate figures of a run.
type Summary struct {
	GrossDividend Money
	Withholding   Money // informational, not part of NetInHand
	IncomeTax     Money
	NetInHand     Money // GrossDividend − IncomeTax
	Slab          Percent
}

// Report is the full outcome of an aggregation run. Items are sorted by
// record date, most recent first. Warnings carry the holdings that were
// skipped; they are part of the report so no failure goes unseen.
type Report struct {
	Items    []PayoutLineItem
	Warnings []Warning
	Summary  Summary
}

type aggregator struct {
	pacing   time.Duration
	progress io.Writer
	currency string
}

// Option configures an aggregation run.
type Option func(*aggregator)

// WithPacing overrides the delay inserted between provider lookups.
// A zero duration disables pacing entirely (useful in tests).
func WithPacing(d time.Duration) Option {
	return func(a *aggregator) { a.pacing = d }
}

// WithProgress sends one line per holding to w while the run progresses.
func WithProgress(w io.Writer) Option {
	return func(a *aggregator) { a.progress = w }
}

// WithCurrency overrides the reporting currency (no conversion is performed).
func WithCurrency(currency string) Option {
	return func(a *aggregator) { a.currency = currency }
}

// Aggregate scans the dividend history of every holding and produces the
// payout report.
//
// Holdings are processed sequentially in portfolio order, one blocking lookup
// each. A failed or empty lookup becomes a warning and contributes zero: a
// single holding's failure never aborts the run. For each holding, only
// events whose record date falls strictly after the purchase date qualify;
// a dividend on the purchase date itself does not count.
//
// Aggregate is pure with respect to its inputs: running it twice over an
// unchanged portfolio and unchanged provider data yields identical reports.
func Aggregate(p *Portfolio, cfg TaxConfig, src DividendSource, opts ...Option) (*Report, error) {
	if p == nil {
		return nil, errors.New("no portfolio")
	}
	if src == nil {
		return nil, errors.New("no dividend source")
	}
	a := &aggregator{pacing: DefaultPacing, progress: io.Discard, currency: DefaultCurrency}
	for _, opt := range opts {
		opt(a)
	}

	report := &Report{}
	gross := M(0, a.currency)

	first := true
	for h := range p.Holdings() {
		if !first && a.pacing > 0 {
			time.Sleep(a.pacing)
		}
		first = false
		fmt.Fprintf(a.progress, "Verifying %s...\n", h.Ticker)

		res := fetch(src, h.Ticker)
		if res.Err != nil {
			report.Warnings = append(report.Warnings, Warning{
				Ticker: h.Ticker,
				Reason: fmt.Sprintf("data error, check the symbol: %v", res.Err),
			})
			continue
		}
		if res.Empty() {
			report.Warnings = append(report.Warnings, Warning{
				Ticker: h.Ticker,
				Reason: "no dividend history",
			})
			continue
		}

		for _, ev := range res.Events {
			if !ev.RecordDate.After(h.PurchaseDate) {
				continue
			}
			payout := M(ev.Amount, a.currency).Mul(Q(h.Quantity))
			gross = gross.Add(payout)
			report.Items = append(report.Items, PayoutLineItem{
				Ticker:         h.Ticker,
				DisplayName:    h.DisplayName,
				RecordDate:     ev.RecordDate,
				AmountPerShare: ev.Amount,
				Quantity:       h.Quantity,
				TotalPayout:    payout,
			})
		}
	}

	// Most recent payouts first, for presentation and export.
	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[j].RecordDate.Before(report.Items[i].RecordDate)
	})

	report.Summary = newSummary(gross, cfg)
	return report, nil
}

func newSummary(gross Money, cfg TaxConfig) Summary {
	withholding := M(0, gross.Currency())
	if cfg.ApplyWithholding {
		withholding = WithholdingRate.Of(gross)
	}
	incomeTax := cfg.Slab.Of(gross)
	return Summary{
		GrossDividend: gross,
		Withholding:   withholding,
		IncomeTax:     incomeTax,
		NetInHand:     gross.Sub(incomeTax),
		Slab:          cfg.Slab,
	}
}
