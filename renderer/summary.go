package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/avenel/freelance"
)

// SummaryMarkdown renders the period summary as a markdown document.
func SummaryMarkdown(s *freelance.FinancialSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(rangeTitle("Financial Summary", s.Range))

	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Revenue", FormatAmount(s.Revenue, currency)},
			{"Costs", FormatAmount(s.Costs, currency)},
			{"Profit", SignedAmount(s.Profit, currency)},
		},
	})

	return doc.String()
}

// ProjectionMarkdown renders the forward-looking figures.
func ProjectionMarkdown(a *freelance.AdditionalFinancials, rng freelance.Range, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(rangeTitle("Projections", rng))

	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Future revenue", FormatAmount(a.FutureRevenue, currency)},
			{"Lost revenue", FormatAmount(a.LostRevenue, currency)},
		},
	})

	return doc.String()
}
