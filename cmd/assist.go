package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack/agent"
	"github.com/kjoseph/divitrack/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	taxFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask an AI assistant about the dividend report" }
func (*assistCmd) Usage() string {
	return `divitrack assist [question]

  Computes the dividend report and starts an interactive chat session
  briefed with it, so you can ask questions about the figures. Requires
  Gemini API credentials in the environment.

Usage Examples:
$ divitrack assist
$ divitrack assist "which stock paid the most since I bought it?"
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.runReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	briefing := renderer.ReportMarkdown(report)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, briefing, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
