package freelance

import "strconv"

// ValueColumnID is the id of the column whose cells carry an item's
// monetary value. A quote without this exact column has a grand total of
// 0, even when other "sum"-aggregated numeric columns are present; that
// is the documented contract, kept under product review rather than
// silently widened.
const ValueColumnID = "unitPrice"

// itemValue computes one item's monetary value for the quote's value
// column. When the value column carries a row formula, the formula is
// evaluated over the row's numeric cells; otherwise the item's own unit
// price is the value.
func itemValue(it Item, cols []Column) Money {
	var valueCol *Column
	for i := range cols {
		if cols[i].ID == ValueColumnID {
			valueCol = &cols[i]
			break
		}
	}
	if valueCol == nil {
		return M(0)
	}
	if valueCol.RowFormula == "" {
		return M(it.UnitPrice)
	}
	vars := make(map[string]float64, len(cols))
	for _, col := range cols {
		vars[col.ID] = numericCell(it, col)
	}
	return M(evalFormula(valueCol.RowFormula, vars))
}

// numericCell extracts the numeric value of one cell. Cells are raw JSON
// values; anything that is not a number or a numeric string counts as 0.
func numericCell(it Item, col Column) float64 {
	if col.ID == ValueColumnID {
		return it.UnitPrice
	}
	switch v := it.CustomFields[col.ID].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// quoteTotal computes the quote's grand total: the sum of all item
// values across all sections. It is a pure function of the quote's grid;
// the UI's cached total is never consulted.
func quoteTotal(q *Quote) Money {
	if q == nil {
		return M(0)
	}
	return gridTotal(q.Sections, q.Columns)
}

// collabQuoteTotal computes a collaborator quote's total the same way,
// except that a zero grid total (sections holding only non-monetary
// custom columns, a frequent shape for collaborator quotes) falls back
// to the record's stored total.
func collabQuoteTotal(cq *CollaboratorQuote) Money {
	if cq == nil {
		return M(0)
	}
	total := gridTotal(cq.Sections, cq.Columns)
	if total.IsZero() && cq.Total != nil {
		return M(*cq.Total)
	}
	return total
}

func gridTotal(sections []Section, cols []Column) Money {
	total := M(0)
	for _, sec := range sections {
		for _, it := range sec.Items {
			total = total.Add(itemValue(it, cols))
		}
	}
	return total
}
