package calculation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivideByZero marks a zero denominator (total value, share count, price, total debt, EBITDA, total interest).
	ErrDivideByZero = errors.New("divide by zero")
	// ErrInvalidRange marks an input outside its domain (negative rate or amount, non-positive share count, NaN).
	ErrInvalidRange = errors.New("invalid range")
)

// CalcError is returned in strict mode. It unwraps to ErrDivideByZero or ErrInvalidRange.
type CalcError struct {
	Calculator string
	Field      string
	Err        error
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Calculator, e.Field, e.Err)
}

func (e *CalcError) Unwrap() error { return e.Err }

// Kind returns a stable identifier for the error class.
func (e *CalcError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrDivideByZero):
		return "divide_by_zero"
	case errors.Is(e.Err, ErrInvalidRange):
		return "invalid_range"
	}
	return "unknown"
}

// checker accumulates the first failed precondition for one calculator.
type checker struct {
	calculator string
	err        error
}

func (c *checker) fail(field string, kind error) {
	if c.err == nil {
		c.err = &CalcError{Calculator: c.calculator, Field: field, Err: kind}
	}
}

func (c *checker) finite(field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.fail(field, ErrInvalidRange)
	}
}

func (c *checker) nonNegative(field string, v float64) {
	c.finite(field, v)
	if v < 0 {
		c.fail(field, ErrInvalidRange)
	}
}

func (c *checker) nonZero(field string, v float64) {
	if v == 0 {
		c.fail(field, ErrDivideByZero)
	}
}
