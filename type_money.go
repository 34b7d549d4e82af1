package freelance

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the dashboard's single working
// currency. The unit is whatever the user types amounts in; the engine
// never converts, it only adds, scales and compares.
type Money struct {
	value decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// scalar operators.
func (m Money) Mul(q decimal.Decimal) Money { return Money{value: m.value.Mul(q)} }
func (m Money) Div(q decimal.Decimal) Money { return Money{value: m.value.Div(q)} }

// Max returns the greater of m and n.
func Max(m, n Money) Money {
	if m.LessThan(n) {
		return n
	}
	return m
}

// AsFloat exports the value for the report shapes, which are plain
// float64 for the consuming UI.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String returns the string representation of the money value.
func (m Money) String() string { return m.value.String() }

func (m Money) MarshalJSON() ([]byte, error)  { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }
