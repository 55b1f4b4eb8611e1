package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack"
)

type exportCmd struct {
	taxFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the dividend transaction log as CSV" }
func (*exportCmd) Usage() string {
	return `divitrack export [-o <file>] [-slab <0|10|20|30>] [-source <yahoo|eodhd>]

  Computes the dividend report and writes the transaction log to a CSV
  file, newest payout first.

Usage Examples:
$ divitrack export
$ divitrack export -o statement.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.taxFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "dividend_statement.csv", "Output CSV file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.runReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := divitrack.ExportCSV(out, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d payouts to %s\n", len(report.Items), c.output)
	return subcommands.ExitSuccess
}
