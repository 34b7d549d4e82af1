package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// detailsCmd holds the flags for the 'details' subcommand.
type detailsCmd struct {
	reportFlags
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "display the task-level revenue and cost lines" }
func (*detailsCmd) Usage() string {
	return `frd details [-s <snapshot>] [-from <date>] [-to <date>]

  Displays one line per task with recognized revenue and one per
  collaborator payout, for drill-down.
`
}

func (c *detailsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewTaskDetails(s, rng, opts...)
	printMarkdown(renderer.DetailsMarkdown(report, rng, c.currency))
	return subcommands.ExitSuccess
}
