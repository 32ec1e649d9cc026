package fundpool

import "github.com/shopspring/decimal"

// Quantity is a dimensionless count: shares of an instrument or units of
// the fund. Fund units are fractional by nature, so it shares the same
// decimal backing as Money.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity.
func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity     { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) String() string              { return q.value.String() }

// Div returns q/p, zero when p is zero.
func (q Quantity) Div(p Quantity) Quantity {
	if p.IsZero() {
		return Quantity{}
	}
	return Quantity{value: q.value.Div(p.value)}
}

// Share returns q/p as a Percent, 0 when p is zero.
func (q Quantity) Share(p Quantity) Percent {
	if p.IsZero() {
		return 0
	}
	return Percent(q.value.Div(p.value).InexactFloat64() * 100)
}

// Decimal exposes the raw decimal value for persistence.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
