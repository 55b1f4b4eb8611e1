package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack"
	"github.com/kjoseph/divitrack/date"
)

type addCmd struct {
	selection string
	ticker    string
	quantity  int
	date      string
	name      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a stock holding to the portfolio" }
func (*addCmd) Usage() string {
	return `divitrack add [-t <ticker> | -sel <selection>] [-q <quantity>] [-d <purchase_date>] [-n <name>]

  Adds a holding to the portfolio session file. The stock can be given either
  as a raw symbol (-t ITC.NS) or as a reference-list selection
  (-sel "Wipro Ltd (WIPRO)"), in which case the NSE suffix is appended and
  the company name is kept as the display name.

Usage Examples:
$ divitrack add -t ITC.NS -q 100 -d 2023-01-01
$ divitrack add -sel "Wipro Ltd (WIPRO)" -q 50 -d 2022-06-15
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Stock symbol, e.g. ITC.NS.")
	f.StringVar(&c.selection, "sel", "", `Reference-list selection, e.g. "Wipro Ltd (WIPRO)".`)
	f.IntVar(&c.quantity, "q", 100, "Quantity held.")
	f.StringVar(&c.date, "d", "2023-01-01", "Purchase date.")
	f.StringVar(&c.name, "n", "", "Display name for the stock (defaults to the selection's company name).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing purchase date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var ticker, display string
	switch {
	case c.selection != "":
		ticker, display, err = divitrack.ResolveSelection(c.selection)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving selection: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.ticker != "":
		ticker, err = divitrack.CleanTicker(c.ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error validating ticker: %v\n", err)
			return subcommands.ExitFailure
		}
		if advice := divitrack.SuffixAdvice(ticker); advice != "" {
			fmt.Fprintln(os.Stderr, advice)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: one of -t or -sel is required.")
		return subcommands.ExitUsageError
	}

	if c.name != "" {
		display = c.name
	}

	h, err := divitrack.NewHolding(ticker, c.quantity, on, display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := AppendHolding(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d × %s (purchased %s) to %s\n", h.Quantity, h.Ticker, h.PurchaseDate, *portfolioFile)
	return subcommands.ExitSuccess
}
