package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avenel/freelance"
	"github.com/avenel/freelance/renderer"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	reportFlags
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly revenue/cost/profit series" }
func (*monthlyCmd) Usage() string {
	return `frd monthly [-s <snapshot>] [-from <date>] [-to <date>]

  Displays the month-by-month series. With no range, every month that
  carries data is listed.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rng, opts, err := c.load()
	if err != nil {
		return fail(err)
	}
	report := freelance.NewMonthlyFinancials(s, rng, opts...)
	printMarkdown(renderer.MonthlyMarkdown(report, c.currency))
	return subcommands.ExitSuccess
}
