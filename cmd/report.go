package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack/renderer"
)

type reportCmd struct {
	taxFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the dividend income report" }
func (*reportCmd) Usage() string {
	return `divitrack report [-slab <0|10|20|30>] [-tds] [-source <yahoo|eodhd>]

  Fetches the dividend history of every holding, keeps the payouts dated
  strictly after each purchase date, and prints the income summary and
  the per-payout transaction log.

Usage Examples:
$ divitrack report
$ divitrack report -slab 20 -source eodhd
`
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.runReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
