package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all holdings from the portfolio" }
func (*clearCmd) Usage() string {
	return `divitrack clear

  Deletes the portfolio session file, removing every holding.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (*clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.Remove(*portfolioFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Portfolio is already empty.")
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Portfolio cleared.")
	return subcommands.ExitSuccess
}
