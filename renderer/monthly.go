package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/avenel/freelance"
)

// MonthlyMarkdown renders the monthly time series.
func MonthlyMarkdown(months []freelance.MonthlyFinancials, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Financials")
	if len(months) == 0 {
		doc.PlainText("No financial activity found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			m.MonthYear,
			FormatAmount(m.Revenue, currency),
			FormatAmount(m.Costs, currency),
			SignedAmount(m.Profit, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Revenue", "Costs", "Profit"},
		Rows:   rows,
	})

	return doc.String()
}
