package extract

import "regexp"

// weightRowPattern matches one row of the customs weight summary table:
// an 8-digit HS code followed by two European-format amounts, the first
// of which is the aggregate net weight for that code.
var weightRowPattern = regexp.MustCompile(`(\d{8})\s+([\d.]+,\d+)\s+[\d.]+,\d+`)

// BuildWeightIndex pre-scans every page for weight summary rows and maps
// each HS code to its reported weight. A code appearing more than once
// keeps the last value seen.
func BuildWeightIndex(pages []Page) WeightIndex {
	index := make(WeightIndex)
	for _, page := range pages {
		for _, line := range page.Lines {
			for _, m := range weightRowPattern.FindAllStringSubmatch(line, -1) {
				index[m[1]] = ParseDecimal(m[2])
			}
		}
	}
	return index
}
