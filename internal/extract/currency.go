package extract

import (
	"regexp"
	"strings"
)

// CurrencyUnknown is the sentinel used when no currency can be detected.
const CurrencyUnknown = "UNKNOWN"

var totalAmountPattern = regexp.MustCompile(`TOTAL AMOUNT\s+([A-Z]{3})`)

// DetectCurrency scans the trailing two pages (or the only page) for a
// "TOTAL AMOUNT <code>" marker and returns the 3-letter currency code of
// the first match. When the marker carries no code, a page mentioning
// both "TOTAL AMOUNT" and a known currency literal decides instead.
// Returns CurrencyUnknown when neither heuristic succeeds.
func DetectCurrency(pages []Page) string {
	window := pages
	if len(pages) > 2 {
		window = pages[len(pages)-2:]
	}

	for _, page := range window {
		for _, line := range page.Lines {
			if m := totalAmountPattern.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}

	for _, page := range window {
		text := strings.Join(page.Lines, "\n")
		if !strings.Contains(text, "TOTAL AMOUNT") {
			continue
		}
		if strings.Contains(text, "USD") {
			return "USD"
		}
		if strings.Contains(text, "EUR") {
			return "EUR"
		}
	}

	return CurrencyUnknown
}
