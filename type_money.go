package fundpool

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in a given currency.
//
// All pool-level figures (capital, cash, market value, equity) are in the
// pool currency; trade prices and position costs of foreign instruments
// are in the instrument currency until explicitly converted.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the full currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the money value using its currency conventions.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// Div divides the amount by a quantity. A zero quantity yields zero: every
// division in the engine has a defined fallback instead of an error.
func (m Money) Div(q Quantity) Money {
	if q.IsZero() {
		return Money{cur: m.cur}
	}
	return Money{value: m.value.Div(q.value), cur: m.cur}
}

// DivPrice divides the amount by a unit price, yielding a quantity of
// units. A zero price yields zero units.
func (m Money) DivPrice(price Money) Quantity {
	if price.IsZero() {
		return Quantity{}
	}
	return Quantity{value: m.value.Div(price.value)}
}

// Scale multiplies the amount by a raw decimal factor, used for currency
// conversion by an exchange rate.
func (m Money) Scale(factor decimal.Decimal) Money {
	return Money{value: m.value.Mul(factor), cur: m.cur}
}

// In rewrites the amount into another currency at face value. The caller
// is responsible for applying an exchange rate through Scale first.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n as a Percent, 0 when n is zero.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// cur resolves the currency of a binary operation, treating "" as weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Decimal exposes the raw decimal value for persistence.
func (m Money) Decimal() decimal.Decimal { return m.value }

// InexactFloat64 returns the closest float64. For rendering only, the
// engine keeps every calculation in decimals.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
