package freelance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

// Clamp constrains the percent to [0, 100]. Out-of-domain shares do show
// up in hand-edited payment records (150%, -10%) and must not inflate or
// refund a quote.
func (p Percent) Clamp() Percent {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Of returns the clamped share of the given amount.
func (p Percent) Of(m Money) Money {
	share := decimal.NewFromFloat(float64(p.Clamp())).Div(decimal.NewFromInt(100))
	return m.Mul(share)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
