package extract

// Page holds the ordered text lines of a single document page.
// Pages with no extractable text carry an empty Lines slice.
type Page struct {
	Number int // 1-based page number
	Lines  []string
}

// Row is one extracted invoice line item.
//
// Discount is always zero and VAT always empty in this invoice layout;
// the columns exist because the export format carries them.
type Row struct {
	InvoiceNumber     string
	InvoiceDate       string
	SupplierName      string
	OrderConfirmation string
	PONumber          string
	PODate            string
	ItemCode          string
	Description       string
	FigureNumber      string
	Size              string
	LotNumber         string
	ProductCategory   string
	Origin            string
	Currency          string
	Quantity          float64
	Price             float64
	Discount          float64
	Amount            float64
	VAT               string
	HSCode            string
	UnitWeight        float64
	TotalWeight       float64
}

// WeightIndex maps an 8-digit HS classification code to the summary
// weight figure reported for it in the document's weight table.
type WeightIndex map[string]float64

// Totals holds the precomputed sums rendered into the export totals row.
type Totals struct {
	Quantity    float64
	Amount      float64
	TotalWeight float64
}

// SumTotals computes quantity, amount and total weight sums over rows.
func SumTotals(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Quantity += r.Quantity
		t.Amount += r.Amount
		t.TotalWeight += r.TotalWeight
	}
	return t
}
