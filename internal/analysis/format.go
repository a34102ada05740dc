package analysis

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way JavaScript converts a number to a string:
// shortest round-trip digits, plain decimal for magnitudes in [1e-6, 1e21),
// exponential otherwise, and "NaN"/"Infinity" for non-finite values.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// FormatFixed renders v with exactly digits decimals like JavaScript's
// Number.prototype.toFixed: the exact binary value is rounded half away from
// zero, non-finite values keep their names, and magnitudes of 1e21 or more
// fall back to FormatNumber.
func FormatFixed(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	} else if digits > 100 {
		digits = 100
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return FormatNumber(v)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	// 1100 fractional digits hold the exact expansion of any float64.
	exact := strconv.FormatFloat(v, 'f', 1100, 64)
	intPart, frac, _ := strings.Cut(exact, ".")

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		kept = incrementDecimal(kept)
	}
	split := len(kept) - digits
	out := string(kept[:split])
	if digits > 0 {
		out += "." + string(kept[split:])
	}
	if neg {
		out = "-" + out
	}
	return out
}

// incrementDecimal adds one to a string of decimal digits.
func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}
