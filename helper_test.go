package freelance

import (
	"math"
	"testing"
	"time"
)

// fptr returns a pointer to v, for the optional amount fields.
func fptr(v float64) *float64 { return &v }

// priceColumns is the single-column grid most quotes use.
func priceColumns() []Column {
	return []Column{{ID: ValueColumnID, Name: "Unit Price", Type: ColNumber}}
}

// pricedQuote builds a quote with one section of plainly priced items.
func pricedQuote(id string, prices ...float64) Quote {
	items := make([]Item, 0, len(prices))
	for i, p := range prices {
		items = append(items, Item{ID: string(rune('a' + i)), UnitPrice: p})
	}
	return Quote{
		ID:       id,
		Columns:  priceColumns(),
		Sections: []Section{{ID: "s1", Name: "Work", Items: items}},
	}
}

func date(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
