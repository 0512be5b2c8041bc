package breakdown

import (
	"math"
	"strconv"
	"strings"
)

// FormatPercent renders a proportion as a percentage with at most one
// decimal and no trailing zeros: 0.5 is "50%", 1/3 is "33.3%".
func FormatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "NaN%"
	}
	s := strconv.FormatFloat(math.Round(p*1000)/10, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if s == "-0" {
		s = "0"
	}
	return s + "%"
}
