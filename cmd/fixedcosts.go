package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// fixedcostsCmd holds the flags for the 'fixedcosts' subcommand.
type fixedcostsCmd struct {
	reportFlags
}

func (*fixedcostsCmd) Name() string     { return "fixedcosts" }
func (*fixedcostsCmd) Synopsis() string { return "display prorated fixed costs for a period" }
func (*fixedcostsCmd) Usage() string {
	return `frd fixedcosts [-s <snapshot>] [-from <date>] [-to <date>]

  Displays each recurring cost's prorated share of the period. With no
  range, the current calendar month is reported.
`
}

func (c *fixedcostsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *fixedcostsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewFixedCostDetails(s, rng, opts...)
	printMarkdown(renderer.FixedCostsMarkdown(report, c.currency))
	return subcommands.ExitSuccess
}
