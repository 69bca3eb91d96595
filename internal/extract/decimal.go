package extract

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a European-format number string (1.234,56) to a
// float64. A trailing "USD" marker is tolerated. Malformed input yields
// 0.0 so that a bad numeric token never aborts extraction.
func ParseDecimal(s string) float64 {
	if s == "" {
		return 0
	}

	clean := strings.TrimSpace(strings.ReplaceAll(s, "USD", ""))
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}
