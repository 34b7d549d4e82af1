package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/avenel/freelance"
)

// BreakdownMarkdown renders the per-client revenue slices.
func BreakdownMarkdown(b []freelance.RevenueBreakdown, rng freelance.Range, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(rangeTitle("Revenue by Client", rng))
	if len(b) == 0 {
		doc.PlainText("No recognized revenue in this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(b))
	var total float64
	for _, slice := range b {
		rows = append(rows, []string{slice.Name, FormatAmount(slice.Value, currency)})
		total += slice.Value
	}
	rows = append(rows, []string{"Total", FormatAmount(total, currency)})
	doc.Table(md.TableSet{
		Header: []string{"Client", "Revenue"},
		Rows:   rows,
	})

	return doc.String()
}
