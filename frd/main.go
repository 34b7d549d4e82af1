package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/avenel/freelance/cmd"
)

func main() {
	completion().Complete("frd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion. Every report
// subcommand takes the same flag set.
func completion() *complete.Command {
	report := func() *complete.Command {
		return &complete.Command{
			Flags: map[string]complete.Predictor{
				"s":    predict.Files("*.json"),
				"path": predict.Something,
				"from": predict.Something,
				"to":   predict.Something,
				"c":    predict.Set{"EUR", "USD", "GBP", "CHF"},
				"v":    predict.Nothing,
			},
		}
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":    report(),
			"breakdown":  report(),
			"monthly":    report(),
			"details":    report(),
			"fixedcosts": report(),
			"projection": report(),
		},
	}
}
