package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/avenel/freelance"
)

// DetailsMarkdown renders the task drill-down lists.
func DetailsMarkdown(d *freelance.TaskDetails, rng freelance.Range, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(rangeTitle("Task Details", rng))

	doc.H2("Revenue")
	if len(d.RevenueItems) == 0 {
		doc.PlainText("No recognized revenue in this period.")
	} else {
		doc.Table(detailTable(d.RevenueItems, currency))
	}

	doc.H2("Costs")
	if len(d.CostItems) == 0 {
		doc.PlainText("No recognized costs in this period.")
	} else {
		doc.Table(detailTable(d.CostItems, currency))
	}

	return doc.String()
}

func detailTable(items []freelance.TaskDetail, currency string) md.TableSet {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name, it.ClientName, FormatAmount(it.Amount, currency)})
	}
	return md.TableSet{
		Header: []string{"Task", "Client", "Amount"},
		Rows:   rows,
	}
}
