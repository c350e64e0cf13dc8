package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/umi000/AMMA-Stress/internal/summary"
)

// Placeholder is shown for statistics missing from a summary export.
const Placeholder = "—"

// FormatNumber prints integers as-is and everything else, including
// integers above one million, with two decimals.
func FormatNumber(v summary.Value) string {
	n, ok := v.Get()
	if !ok {
		return Placeholder
	}
	if n != math.Trunc(n) || n > 1e6 {
		return toFixed(n, 2)
	}
	if n == 0 {
		// -0
		return "0"
	}
	return numberString(n)
}

// FormatMillis formats a duration given in milliseconds. From one second
// up it is shown in seconds with two decimals.
func FormatMillis(v summary.Value) string {
	n, ok := v.Get()
	if !ok {
		return Placeholder
	}
	if n >= 1000 {
		return toFixed(n/1000, 2) + " s"
	}

	ms := math.Floor(n + 0.5)
	if ms == 0 {
		// drops the sign of -0
		ms = 0
	}
	return numberString(ms) + " ms"
}

// FormatRate formats a 0..1 rate as a percentage with two decimals.
func FormatRate(v summary.Value) string {
	n, ok := v.Get()
	if !ok {
		return Placeholder
	}
	return toFixed(n*100, 2) + "%"
}

// numberString prints n the way a JavaScript number converts to a string.
// Magnitudes from 1e21 up switch to exponent form ("1e+21").
func numberString(n float64) string {
	if math.Abs(n) >= 1e21 {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// toFixed formats n with prec decimals. Exact halves round away from zero;
// strconv alone would round them to even (0.125 -> "0.12"). Like
// Number.prototype.toFixed it falls back to numberString from 1e21 up.
func toFixed(n float64, prec int) string {
	if math.Abs(n) >= 1e21 {
		return numberString(n)
	}
	if n == 0 {
		// -0
		n = 0
	}
	s := strconv.FormatFloat(n, 'f', prec, 64)

	exact := strings.TrimRight(strconv.FormatFloat(math.Abs(n), 'f', 1100, 64), "0")
	dot := strings.IndexByte(exact, '.')
	frac := exact[dot+1:]
	if len(frac) != prec+1 || frac[prec] != '5' {
		return s
	}

	end := dot + 1 + prec
	if prec == 0 {
		end = dot
	}
	rounded := incrementLastDigit(exact[:end])
	if n < 0 {
		return "-" + rounded
	}
	return rounded
}

// incrementLastDigit adds one unit in the last place of a plain decimal
// string, carrying through the integer part.
func incrementLastDigit(s string) string {
	digits := []byte(s)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] == '.' {
			continue
		}
		if digits[i] < '9' {
			digits[i]++
			return string(digits)
		}
		digits[i] = '0'
	}
	return "1" + string(digits)
}
