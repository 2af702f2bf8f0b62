package decimal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrNotDigits is returned when a payload contains anything but ASCII digits.
var ErrNotDigits = errors.New("payload is not a digit sequence")

// Divisor returns the power of ten that turns a digit buffer into a value with
// scale fractional digits. A scale of zero or less yields 10, not 1: the
// buffer always reserves at least one fractional position.
func Divisor(scale int) decimal.Decimal {
	if scale <= 0 {
		return decimal.NewFromInt(10)
	}
	return decimal.New(1, int32(scale))
}

// FromDigits interprets digits as an integer and divides it by Divisor(scale).
func FromDigits(digits string, scale int) (decimal.Decimal, error) {
	if digits == "" {
		return decimal.Zero, fmt.Errorf("empty payload: %w", ErrNotDigits)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return decimal.Zero, fmt.Errorf("%q at offset %d: %w", digits[i], i, ErrNotDigits)
		}
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(Divisor(scale)), nil
}

// Float64 returns the nearest float64 for d.
func Float64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// FromFloat returns the shortest decimal that reads back as v, limited to
// scale fractional digits. Only values carrying more fractional digits than
// scale are rounded, half-even on the exact binary value. v must be finite.
func FromFloat(v float64, scale int) decimal.Decimal {
	if scale < 0 {
		scale = 0
	}
	d := decimal.NewFromFloat(v)
	if int(-d.Exponent()) <= scale {
		return d
	}
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', scale, 64))
}

// Shifted returns v with its digit buffer extended by one trailing digit,
// i.e. the value the field holds after d is typed at the pinned position.
func Shifted(v float64, d int, scale int) float64 {
	div := Divisor(scale)
	buf := decimal.NewFromFloat(v).Mul(div).Round(0)
	return buf.Mul(decimal.NewFromInt(10)).Add(decimal.NewFromInt(int64(d))).Div(div).InexactFloat64()
}
