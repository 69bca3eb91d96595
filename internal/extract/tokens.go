package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var shortDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)

// isOrderConfirmationToken reports whether tok looks like an order
// confirmation number (e.g. OC12345678).
func isOrderConfirmationToken(tok string) bool {
	return strings.HasPrefix(tok, "OC") && len(tok) > 8 && tok[2] >= '0' && tok[2] <= '9'
}

// isPurchaseOrderToken reports whether tok looks like a purchase order
// reference (e.g. PO-9988).
func isPurchaseOrderToken(tok string) bool {
	return strings.HasPrefix(tok, "PO-")
}

// isItemCode reports whether tok qualifies as an item code
// (e.g. F0900B032.2683 or KIT200). Order confirmation numbers, PO
// references and short dates are excluded; everything else with at
// least three characters and one digit passes.
func isItemCode(tok string) bool {
	if len(tok) < 3 {
		return false
	}
	if isOrderConfirmationToken(tok) || isPurchaseOrderToken(tok) {
		return false
	}
	if shortDatePattern.MatchString(tok) {
		return false
	}
	return strings.ContainsFunc(tok, unicode.IsDigit)
}

// firstToken returns the first whitespace-delimited token of line, or ""
// for a blank line.
func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
