package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kjoseph/divitrack/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately when
// the process was started as a regular command.
func completion() {
	taxFlags := map[string]complete.Predictor{
		"slab":   predict.Set{"0", "10", "20", "30"},
		"source": predict.Set{"yahoo", "eodhd"},
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"t":   predict.Nothing,
				"sel": predict.Nothing,
			}},
			"clear":    {},
			"holdings": {},
			"report":   {Flags: taxFlags},
			"export": {Flags: map[string]complete.Predictor{
				"slab":   predict.Set{"0", "10", "20", "30"},
				"source": predict.Set{"yahoo", "eodhd"},
				"o":      predict.Files("*.csv"),
			}},
			"search": {},
			"topic":  {Args: predict.Set{"readme", "disclaimer", "portfolio", "tax"}},
			"assist": {Flags: taxFlags},
		},
	}
	root.Complete("divitrack")
}
