package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the holdings in the portfolio" }
func (*holdingsCmd) Usage() string {
	return `divitrack holdings

  Prints the current portfolio as a table.
`
}

func (*holdingsCmd) SetFlags(*flag.FlagSet) {}

func (*holdingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingsMarkdown(p))
	return subcommands.ExitSuccess
}
