package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/avenel/freelance"
)

// FixedCostsMarkdown renders the per-cost proration for the period.
func FixedCostsMarkdown(d *freelance.FixedCostDetails, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(rangeTitle("Fixed Costs", d.Range))
	if len(d.FixedCostItems) == 0 {
		doc.PlainText("No fixed costs apply to this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(d.FixedCostItems)+1)
	for _, it := range d.FixedCostItems {
		rows = append(rows, []string{it.Name, FormatAmount(it.Amount, currency)})
	}
	rows = append(rows, []string{"Total", FormatAmount(d.TotalFixedCosts, currency)})
	doc.Table(md.TableSet{
		Header: []string{"Cost", "Prorated"},
		Rows:   rows,
	})

	return doc.String()
}
