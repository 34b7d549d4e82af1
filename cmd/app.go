// Package cmd implements the CLI application to report on a dashboard
// snapshot.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/avenel/freelance"
)

// Commands is the list a main package registers on its commander.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&breakdownCmd{},
	&monthlyCmd{},
	&detailsCmd{},
	&fixedcostsCmd{},
	&projectionCmd{},
}

// reportFlags holds the flags every report subcommand shares.
type reportFlags struct {
	snapshotFile string
	path         string
	from         string
	to           string
	currency     string
	verbose      bool
}

func (r *reportFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.snapshotFile, "s", "snapshot.json", "Path to the dashboard snapshot export (JSON)")
	f.StringVar(&r.path, "path", "", "JSONPath of the snapshot inside the export document (e.g. $.data)")
	f.StringVar(&r.from, "from", "", "Start of the report window (inclusive, e.g. 2024-03-01)")
	f.StringVar(&r.to, "to", "", "End of the report window (inclusive)")
	f.StringVar(&r.currency, "c", "EUR", "Currency code used for display only")
	f.BoolVar(&r.verbose, "v", false, "Log degraded records (dangling ids, malformed formulas)")
}

// load decodes the snapshot and parses the range flags.
func (r *reportFlags) load() (*freelance.Snapshot, freelance.Range, []freelance.Option, error) {
	var rng freelance.Range
	if r.from != "" {
		d, err := freelance.ParseDate(r.from)
		if err != nil {
			return nil, rng, nil, fmt.Errorf("parsing -from: %w", err)
		}
		rng.From = d
	}
	if r.to != "" {
		d, err := freelance.ParseDate(r.to)
		if err != nil {
			return nil, rng, nil, fmt.Errorf("parsing -to: %w", err)
		}
		rng.To = d
	}

	f, err := os.Open(r.snapshotFile)
	if err != nil {
		return nil, rng, nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	s, err := freelance.DecodeSnapshotAt(f, r.path)
	if err != nil {
		return nil, rng, nil, err
	}

	var opts []freelance.Option
	if r.verbose {
		opts = append(opts, freelance.WithObserver(newObserver()))
	}
	return s, rng, opts, nil
}

// fail prints the error and maps it to the conventional exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the terminal renderer cannot be set up.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// zerologObserver routes engine diagnostics to a zerolog logger.
type zerologObserver struct {
	log zerolog.Logger
}

func (z zerologObserver) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologObserver) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }

func newObserver() freelance.Observer {
	w := zerolog.NewConsoleWriter()
	w.Out = os.Stderr
	log := zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return zerologObserver{log: log}
}
