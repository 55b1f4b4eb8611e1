package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack/nse"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the NSE equity list for a stock" }
func (*searchCmd) Usage() string {
	return `divitrack search <query>

  Searches the NSE equity reference list by symbol or company name and
  prints matching selections, ready for 'divitrack add -sel'.

Usage Examples:
$ divitrack search wipro
`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (*searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}

	list, err := nse.Fetch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load the NSE equity list: %v\n", err)
		fmt.Fprintln(os.Stderr, "Add the stock manually with 'divitrack add -t <SYMBOL>.NS' instead.")
		return subcommands.ExitFailure
	}

	matches := list.Search(query)
	if len(matches) == 0 {
		fmt.Printf("No stocks matching %q.\n", query)
		return subcommands.ExitSuccess
	}
	for _, eq := range matches {
		fmt.Println(eq.Selection())
	}
	return subcommands.ExitSuccess
}
