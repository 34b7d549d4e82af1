package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// projectionCmd holds the flags for the 'projection' subcommand.
type projectionCmd struct {
	reportFlags
}

func (*projectionCmd) Name() string     { return "projection" }
func (*projectionCmd) Synopsis() string { return "display future and lost revenue estimates" }
func (*projectionCmd) Usage() string {
	return `frd projection [-s <snapshot>] [-from <date>] [-to <date>]

  Displays the remaining revenue to collect on live tasks and the
  totals parked on on-hold tasks.
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *projectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewAdditionalFinancials(s, rng, opts...)
	printMarkdown(renderer.ProjectionMarkdown(report, rng, c.currency))
	return subcommands.ExitSuccess
}
