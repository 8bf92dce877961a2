package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxDecimals is the number of fractional digits kept for non-integer
// results.
const MaxDecimals = 10

// Format renders v for the display: integers without a decimal point,
// other values rounded to MaxDecimals places with trailing zeros removed.
// Negative zero renders as "0". NaN and infinities are errors.
func Format(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", newError(KindNonFinite, 0, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v != math.Trunc(v) {
		rounded, err := strconv.ParseFloat(toFixed(v, MaxDecimals), 64)
		if err != nil {
			return "", newError(KindNonFinite, 0, strconv.FormatFloat(v, 'g', -1, 64))
		}
		v = rounded
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

// toFixed writes v with exactly places fractional digits. The exact binary
// value of |v| is rounded half up, so ties go away from zero.
func toFixed(v float64, places int) string {
	// 53 mantissa bits times a power of ten below 2^64 stays exact.
	const prec = 128

	x := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(v))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x.Mul(x, new(big.Float).SetPrec(prec).SetInt(scale))

	n, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(prec).Sub(x, new(big.Float).SetPrec(prec).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	s := digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	if v < 0 {
		s = "-" + s
	}
	return s
}
