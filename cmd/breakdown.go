package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	reportFlags
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display recognized revenue grouped by client" }
func (*breakdownCmd) Usage() string {
	return `frd breakdown [-s <snapshot>] [-from <date>] [-to <date>]

  Displays recognized revenue of finished tasks grouped by client,
  largest first.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewRevenueBreakdown(s, rng, opts...)
	printMarkdown(renderer.BreakdownMarkdown(report, rng, c.currency))
	return subcommands.ExitSuccess
}
