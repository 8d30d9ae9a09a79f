package currency

import (
	"math"
	"strconv"
	"strings"
)

// ParseBRL converts a Brazilian-formatted price such as "R$ 1.549,65"
// into its numeric value: the currency symbol and thousands dots are
// stripped and the decimal comma becomes a decimal point. Anything that
// still fails to parse yields 0, so callers cannot distinguish a parse
// failure from a genuinely zero price. The result is never negative and
// never NaN.
func ParseBRL(s string) float64 {
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
