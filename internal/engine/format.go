package engine

import (
	"math"
	"strconv"
)

// formatDigits is the number of significant decimal digits a result is
// rounded to before display. Rounding at 12 digits absorbs float64
// representation noise (0.1+0.2 renders as 0.3) while keeping every
// digit a typical entry produces.
const formatDigits = 12

// Magnitude bounds for fixed-point display. Outside them scientific
// notation is more readable than a wall of zeros.
const (
	fixedMax = 1e15
	fixedMin = 1e-6
)

// Format canonicalizes a result for display. Non-finite values pass
// through in their literal textual form. Finite values are rounded to
// formatDigits significant digits, with trailing fractional zeros
// stripped and whole values collapsed to integer form; magnitudes
// outside the fixed-point bounds render in scientific notation.
//
// Format never fails.
func Format(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	// Round at formatDigits significant digits ('e' precision counts
	// digits after the leading one), then reparse and print the shortest
	// representation of the rounded value. The shortest form carries no
	// trailing zeros and renders whole values without a decimal point.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'e', formatDigits-1, 64), 64)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if rounded == 0 {
		// Fold negative zero into "0".
		return "0"
	}
	if abs := math.Abs(rounded); abs >= fixedMax || abs < fixedMin {
		return strconv.FormatFloat(rounded, 'g', -1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
