package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a currency amount displayed with two decimal places
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the nearest float64 value
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the amount with exactly two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format prefixes the amount with a dollar sign
func (m Money) Format() string {
	if m.Decimal.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(2)
	}
	return "$" + m.String()
}

// Compact renders large amounts in millions or billions, e.g. "$425.00M".
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(billion):
		return sign + "$" + abs.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return sign + "$" + abs.Div(million).StringFixed(2) + "M"
	default:
		return m.Format()
	}
}

var (
	million = decimal.NewFromInt(1_000_000)
	billion = decimal.NewFromInt(1_000_000_000)
)

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundFloat rounds v to the given number of decimal places, half away from zero.
// Non-finite values are returned unchanged.
func RoundFloat(v float64, places int32) float64 {
	if !IsFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundWhole rounds v to the nearest whole unit, leaving non-finite values alone.
func RoundWhole(v float64) float64 {
	return RoundFloat(v, 0)
}
