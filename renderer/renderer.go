// Package renderer turns report shapes into markdown for the terminal
// and for export. It owns all formatting concerns: the engine's numbers
// are currency-unit-agnostic, the renderer is where a currency code
// finally matters.
package renderer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Rhymond/go-money"

	"github.com/avenel/freelance"
)

// FormatAmount renders a report amount in the given ISO currency, using
// the currency's own minor-unit convention. An unknown or empty code
// falls back to a plain two-decimal number.
func FormatAmount(v float64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	minor := int64(math.Round(v * math.Pow10(cur.Fraction)))
	return money.New(minor, code).Display()
}

// SignedAmount is FormatAmount with an explicit sign, "-" for zero.
func SignedAmount(v float64, code string) string {
	if v == 0 {
		return "-"
	}
	if v > 0 {
		return "+" + FormatAmount(v, code)
	}
	return FormatAmount(v, code)
}

func rangeTitle(what string, rng freelance.Range) string {
	switch {
	case rng.IsOpen():
		return what + " (all time)"
	case rng.From.IsZero():
		return fmt.Sprintf("%s until %s", what, rng.To)
	case rng.To.IsZero():
		return fmt.Sprintf("%s since %s", what, rng.From)
	default:
		return fmt.Sprintf("%s %s to %s", what, rng.From, rng.To)
	}
}
