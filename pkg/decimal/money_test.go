package decimal

import (
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m3.Decimal.Equal(stddec.RequireFromString("123.45")) {
		t.Fatalf("NewMoneyFromString mismatch: got %s", m3.Decimal)
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRound(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestFormatAndCompact(t *testing.T) {
	cases := []struct {
		in      float64
		format  string
		compact string
	}{
		{1234.5, "$1234.50", "$1234.50"},
		{-50, "-$50.00", "-$50.00"},
		{425_000_000, "$425000000.00", "$425.00M"},
		{1_250_000_000, "$1250000000.00", "$1.25B"},
		{-80_000_000, "-$80000000.00", "-$80.00M"},
	}
	for _, c := range cases {
		m := NewMoney(c.in)
		if got := m.Format(); got != c.format {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.format)
		}
		if got := m.Compact(); got != c.compact {
			t.Fatalf("Compact(%v) got %s want %s", c.in, got, c.compact)
		}
	}
}

func TestRoundFloat(t *testing.T) {
	cases := []struct {
		in     float64
		places int32
		want   float64
	}{
		{71.42857142857143, 1, 71.4},
		{28.571428571428573, 1, 28.6},
		{10.214285714285715, 2, 10.21},
		{5.3125, 2, 5.31},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{1111111.111, 0, 1111111},
	}
	for _, c := range cases {
		if got := RoundFloat(c.in, c.places); got != c.want {
			t.Fatalf("RoundFloat(%v, %d) got %v want %v", c.in, c.places, got, c.want)
		}
	}
	if got := RoundWhole(11111111.11); got != 11111111 {
		t.Fatalf("RoundWhole got %v", got)
	}
}

func TestRoundFloatKeepsNonFinite(t *testing.T) {
	if !math.IsNaN(RoundFloat(math.NaN(), 2)) {
		t.Fatalf("NaN should pass through")
	}
	if !math.IsInf(RoundFloat(math.Inf(1), 2), 1) {
		t.Fatalf("+Inf should pass through")
	}
	if !math.IsInf(RoundWhole(math.Inf(-1)), -1) {
		t.Fatalf("-Inf should pass through")
	}
	if IsFinite(math.NaN()) || !IsFinite(0) {
		t.Fatalf("IsFinite logic failure")
	}
}
