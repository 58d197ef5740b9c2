package taxform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a number of shares. Shares from an employee plan are routinely
// fractional (ESPP purchases, partial sales), so quantities use exact decimal
// arithmetic rather than floats.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for Quantity from a numeric literal.
func Q[T float64 | int](value T) Quantity {
	switch v := any(value).(type) {
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	default:
		panic("unsupported type")
	}
}

// quantitySeparators strips the thousands separators found in the documents:
// the salary certificate uses the Swiss apostrophe (2'255.5) and the
// brokerage export uses commas (1,175.99).
var quantitySeparators = strings.NewReplacer(",", "", "'", "")

// ParseQuantity parses a share quantity as printed in either document.
func ParseQuantity(str string) (Quantity, error) {
	str = quantitySeparators.Replace(strings.TrimSpace(str))
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", str, err)
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Neg() Quantity               { return Quantity{value: q.value.Neg()} }
func (q Quantity) Abs() Quantity               { return Quantity{value: q.value.Abs()} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }

// StringFixed renders the quantity with a fixed number of decimal places,
// the way each report column is transcribed into the tax form.
func (q Quantity) StringFixed(places int32) string { return q.value.StringFixed(places) }
