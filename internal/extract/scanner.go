package extract

import (
	"regexp"
	"strings"
)

const transactionMarker = " PZ "

var (
	invoiceHeaderPattern = regexp.MustCompile(`FATTURA\s+(\d{4}/[A-Z]{2}/\d{3})(?:.*DATE\s+(\d{2}/\d{2}/\d{2}))?`)
	purchaseOrderPattern = regexp.MustCompile(`REF\s+(PO-[A-Za-z0-9-]+)(?:\s+(\d{2}/\d{2}/\d{2}))?`)
	hsCodePattern        = regexp.MustCompile(`H\.?S\.?\s*(\d{8})`)
)

// scanState is the scanner's sticky context. Context captured on one
// page stays valid on the next until a new value is seen; only the
// scanner owns and mutates it.
type scanState struct {
	invoiceNumber     string
	invoiceDate       string
	orderConfirmation string
	purchaseOrder     string
	purchaseOrderDate string
	itemCode          string
	hsCode            string
	pending           *Row
}

// scanner walks the full line stream of a document and assembles rows.
type scanner struct {
	state    scanState
	rows     []Row
	index    WeightIndex
	currency string
	supplier string
}

// Scan processes every page in order, every line within a page in
// order, and returns the committed line-item rows. A row stays pending
// (open to HS-code backfill) until the next transaction line starts or
// the document ends; page boundaries never commit.
func Scan(pages []Page, index WeightIndex, currency, supplier string) []Row {
	s := &scanner{
		index:    index,
		currency: currency,
		supplier: supplier,
	}

	for _, page := range pages {
		for _, raw := range page.Lines {
			s.processLine(page.Number, strings.TrimSpace(raw))
		}
	}
	s.commitPending()

	return s.rows
}

// processLine applies the capture rules in fixed order. Several rules
// may fire on the same line, and later rules see state set by earlier
// ones.
func (s *scanner) processLine(pageNum int, line string) {
	if pageNum == 1 && strings.Contains(line, "INVOICE N.") {
		s.captureHeader(line)
	}

	if isOrderConfirmationToken(line) {
		s.state.orderConfirmation = firstToken(line)
	}

	if strings.Contains(line, "REF PO-") {
		s.capturePurchaseOrder(line)
	}

	if strings.Contains(line, "H.S") || strings.Contains(line, "HS") {
		s.captureHSCode(line)
	}

	if !strings.Contains(line, transactionMarker) {
		if tok := firstToken(line); tok != "" && isItemCode(tok) {
			s.state.itemCode = tok
		}
		return
	}

	s.processTransaction(line)
}

// captureHeader extracts the invoice number and date from the first-page
// header line. State is updated only on a successful match.
func (s *scanner) captureHeader(line string) {
	m := invoiceHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	s.state.invoiceNumber = m[1]
	if m[2] != "" {
		s.state.invoiceDate = m[2]
	}
}

// capturePurchaseOrder updates the sticky PO number, and the PO date
// only when the reference line carries one.
func (s *scanner) capturePurchaseOrder(line string) {
	m := purchaseOrderPattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	s.state.purchaseOrder = m[1]
	if m[2] != "" {
		s.state.purchaseOrderDate = m[2]
	}
}

// captureHSCode updates the sticky HS code and backfills the pending
// row, if any. The HS code line for an item may sit below its
// transaction line or on the following page, so the open row must be
// corrected retroactively.
func (s *scanner) captureHSCode(line string) {
	m := hsCodePattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	s.state.hsCode = m[1]

	if s.state.pending != nil {
		s.state.pending.HSCode = m[1]
		s.state.pending.TotalWeight = s.index[m[1]]
	}
}

// processTransaction commits the previous pending row and opens a new
// one. Hitting the next transaction line is the only commit trigger
// besides end of document.
func (s *scanner) processTransaction(line string) {
	s.commitPending()

	row, ok := s.parseTransaction(line)
	if !ok {
		return
	}
	s.state.pending = &row
}

// parseTransaction splits a transaction line into description and math
// parts and builds a row from the parsed values plus sticky context.
// Returns ok=false when the line cannot be parsed; the caller skips it
// without mutating state.
func (s *scanner) parseTransaction(line string) (Row, bool) {
	descPart, mathPart, found := strings.Cut(line, transactionMarker)
	if !found {
		return Row{}, false
	}
	description := strings.TrimSpace(descPart)

	// The item code may be merged into the description instead of
	// sitting on its own line above.
	if words := strings.Fields(description); len(words) > 0 && isItemCode(words[0]) {
		s.state.itemCode = words[0]
		description = strings.Join(words[1:], " ")
	}

	// Positional layout: first token quantity, second-to-last unit
	// price, last amount. Tokens in between are ignored.
	tokens := strings.Fields(mathPart)
	if len(tokens) == 0 {
		return Row{}, false
	}
	qtyStr := tokens[0]
	amountStr := tokens[len(tokens)-1]
	priceStr := "0"
	if len(tokens) >= 2 {
		priceStr = tokens[len(tokens)-2]
	}

	// The sticky HS code is tentative: if the code for this item
	// appears further down the stream, captureHSCode overwrites it.
	return Row{
		InvoiceNumber:     s.state.invoiceNumber,
		InvoiceDate:       s.state.invoiceDate,
		SupplierName:      s.supplier,
		OrderConfirmation: s.state.orderConfirmation,
		PONumber:          s.state.purchaseOrder,
		PODate:            s.state.purchaseOrderDate,
		ItemCode:          s.state.itemCode,
		Description:       description,
		Currency:          s.currency,
		Quantity:          ParseDecimal(qtyStr),
		Price:             ParseDecimal(priceStr),
		Discount:          0,
		Amount:            ParseDecimal(amountStr),
		HSCode:            s.state.hsCode,
		TotalWeight:       s.index[s.state.hsCode],
	}, true
}

// commitPending appends the open row to the output and clears it.
func (s *scanner) commitPending() {
	if s.state.pending == nil {
		return
	}
	s.rows = append(s.rows, *s.state.pending)
	s.state.pending = nil
}
