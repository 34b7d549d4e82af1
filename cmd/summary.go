package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	reportFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display revenue, costs and profit for a period" }
func (*summaryCmd) Usage() string {
	return `frd summary [-s <snapshot>] [-from <date>] [-to <date>]

  Displays the period's recognized revenue, collaborator and fixed
  costs, and profit. With no range, reports over all time.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewFinancialSummary(s, rng, opts...)
	printMarkdown(renderer.SummaryMarkdown(report, c.currency))
	return subcommands.ExitSuccess
}
