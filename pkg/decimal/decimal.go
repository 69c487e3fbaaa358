// Package decimal holds the float helpers used wherever the console derives a
// quantity or money delta from two decimal-bearing fields.
package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision returns the number of digits after the decimal point in the
// shortest base-10 form of v. Values without a fractional part (including
// NaN and the infinities) report 0.
func Precision(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}

// Sub returns num1 - num2 without binary floating-point drift. The result is
// rounded (half away from zero) to the larger precision of the two operands,
// so Sub(0.3, 0.1) is exactly 0.2.
//
// Non-finite operands have no decimal form; for those the plain IEEE
// difference is returned unchanged.
func Sub(num1, num2 float64) float64 {
	if !finite(num1) || !finite(num2) {
		return num1 - num2
	}
	places := max(Precision(num1), Precision(num2))
	d := decimal.NewFromFloat(num1).
		Sub(decimal.NewFromFloat(num2)).
		Round(int32(places))
	f, _ := d.Float64()
	return f
}

// Add is Sub with the second operand negated. Running totals on order forms
// are accumulated this way.
func Add(num1, num2 float64) float64 {
	return Sub(num1, -num2)
}

// Places returns the number of fractional digits carried by d.
func Places(d decimal.Decimal) int {
	if exp := d.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// Diff is the decimal.Decimal counterpart of Sub: a - b rounded to the larger
// number of fractional digits carried by either operand.
func Diff(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Round(int32(max(Places(a), Places(b))))
}

// Sum adds every value, skipping nothing. An empty call yields zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
