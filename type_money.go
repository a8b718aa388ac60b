package netbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
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

// Money represents a signed monetary value in a single asset.
//
// A Money with a negative amount is a liability (e.g. the secondary leg of a
// long position). The zero value carries the weak "" asset that merges with
// any other asset in binary operations.
type Money struct {
	value decimal.Decimal // as major unit value
	asset Asset
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, asset Asset) Money {
	return Money{value: newDecimal(value), asset: asset}
}

// currency returns the money's asset as a full go-money currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, string(m.asset)).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Asset() Asset                    { return m.asset }
func (m Money) Amount() decimal.Decimal         { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.asset == n.asset }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Sign() int                       { return m.value.Sign() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), asset: m.asset} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), asset: m.asset} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), asset: m.asset} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value), asset: m.asset} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), asset: asset(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), asset: asset(m, n)} }

// Round returns the money rounded half away from zero to 'scale' decimal places.
func (m Money) Round(scale int32) Money {
	return Money{value: m.value.Round(scale), asset: m.asset}
}

// makes the "" asset totally weak.
func asset(A, B Money) Asset {
	if A.asset == "" {
		return B.asset
	}
	if B.asset == "" {
		return A.asset
	}
	if A.asset != B.asset {
		panic("asset mismatch " + string(A.asset) + " != " + string(B.asset))
	}
	return A.asset
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
