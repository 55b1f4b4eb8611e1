package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kjoseph/divitrack"
	"github.com/kjoseph/divitrack/eodhd"
	"github.com/kjoseph/divitrack/yahoo"
)

// taxFlags holds the flags shared by the commands that run an aggregation
// (report, export, assist).
type taxFlags struct {
	slab   int
	tds    bool
	source string
	apiKey string
	delay  time.Duration
}

func (c *taxFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.slab, "slab", 30, "Income tax slab percentage: 0, 10, 20 or 30.")
	f.BoolVar(&c.tds, "tds", true, "Show the flat 10% TDS estimate.")
	f.StringVar(&c.source, "source", "yahoo", "Market data provider: yahoo or eodhd.")
	f.StringVar(&c.apiKey, "eodhd-api-key", os.Getenv("EODHD_API_KEY"), "EODHD API key (defaults to the EODHD_API_KEY environment variable).")
	f.DurationVar(&c.delay, "delay", divitrack.DefaultPacing, "Pacing delay between provider lookups.")
}

func (c *taxFlags) taxConfig() (divitrack.TaxConfig, error) {
	slab, err := divitrack.ParseSlab(c.slab)
	if err != nil {
		return divitrack.TaxConfig{}, err
	}
	return divitrack.TaxConfig{Slab: slab, ApplyWithholding: c.tds}, nil
}

func (c *taxFlags) newSource() (divitrack.DividendSource, error) {
	switch c.source {
	case "yahoo":
		return yahoo.NewClient(), nil
	case "eodhd":
		return eodhd.NewClient(c.apiKey), nil
	default:
		return nil, fmt.Errorf("unknown market data source %q: want yahoo or eodhd", c.source)
	}
}

// runReport loads the portfolio and runs a full aggregation with progress on
// stderr.
func (c *taxFlags) runReport() (*divitrack.Report, error) {
	p, err := DecodePortfolio()
	if err != nil {
		return nil, err
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("the portfolio is empty: add stocks first with 'divitrack add'")
	}
	cfg, err := c.taxConfig()
	if err != nil {
		return nil, err
	}
	src, err := c.newSource()
	if err != nil {
		return nil, err
	}
	return divitrack.Aggregate(p, cfg, src,
		divitrack.WithPacing(c.delay),
		divitrack.WithProgress(os.Stderr),
	)
}
