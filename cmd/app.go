// Package cmd implements the CLI application to track dividend income.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack"
)

// Commands lists all subcommands in registration order.
// A main package calls Register on each and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&clearCmd{},
	&holdingsCmd{},
	&reportCmd{},
	&exportCmd{},
	&searchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.jsonl", "Path to the portfolio session file (JSONL format)")

// DecodePortfolio loads the session file, or an empty portfolio when none
// exists yet.
func DecodePortfolio() (*divitrack.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		return divitrack.NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	p, err := divitrack.DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", *portfolioFile, err)
	}
	return p, nil
}

// AppendHolding appends a single holding to the session file, creating it if
// it doesn't exist.
func AppendHolding(h divitrack.Holding) error {
	f, err := os.OpenFile(*portfolioFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return divitrack.EncodeHolding(f, h)
}

// printMarkdown renders a markdown document to the terminal. It falls back to
// the raw source when the terminal renderer is unavailable.
func printMarkdown(source string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(source); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(source)
}
