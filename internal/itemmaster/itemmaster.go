// Package itemmaster loads the optional item reference table used to
// enrich extracted line items with catalog fields. The table is an XLSX
// workbook keyed by item code; its absence is not an error for the
// extraction pipeline, only for this loader.
package itemmaster

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Item holds the reference fields for one item code.
type Item struct {
	ItemCode        string
	FigureNumber    string
	Size            string
	ProductCategory string
	Origin          string
	// Description, when non-empty, replaces the extracted description.
	Description string
}

// Table is an item-code keyed lookup over the loaded reference rows.
type Table struct {
	items map[string]Item
}

// column maps a normalized header name to an Item field setter.
var columns = map[string]func(*Item, string){
	"itemcode":        func(i *Item, v string) { i.ItemCode = v },
	"code":            func(i *Item, v string) { i.ItemCode = v },
	"figureno":        func(i *Item, v string) { i.FigureNumber = v },
	"figurenumber":    func(i *Item, v string) { i.FigureNumber = v },
	"size":            func(i *Item, v string) { i.Size = v },
	"productcategory": func(i *Item, v string) { i.ProductCategory = v },
	"category":        func(i *Item, v string) { i.ProductCategory = v },
	"origin":          func(i *Item, v string) { i.Origin = v },
	"description":     func(i *Item, v string) { i.Description = v },
	"itemdesc":        func(i *Item, v string) { i.Description = v },
}

// Load reads the item master workbook at path. The first sheet is used;
// the first row is treated as the header row and matched by normalized
// name (case and punctuation insensitive). Rows without an item code
// are skipped.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open item master: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("item master has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read item master rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("item master has no data rows: %s", path)
	}

	setters := make(map[int]func(*Item, string))
	for col, header := range rows[0] {
		if setter, ok := columns[normalizeHeader(header)]; ok {
			setters[col] = setter
		}
	}

	table := &Table{items: make(map[string]Item, len(rows)-1)}
	for _, row := range rows[1:] {
		var item Item
		for col, value := range row {
			if setter, ok := setters[col]; ok {
				setter(&item, strings.TrimSpace(value))
			}
		}
		if item.ItemCode == "" {
			continue
		}
		table.items[item.ItemCode] = item
	}

	return table, nil
}

// Lookup returns the reference item for code, if present.
func (t *Table) Lookup(code string) (Item, bool) {
	item, ok := t.items[code]
	return item, ok
}

// Len returns the number of loaded items.
func (t *Table) Len() int {
	return len(t.items)
}

// normalizeHeader lowercases a header cell and strips everything except
// letters and digits, so "Figure No." and "figure_number" both resolve.
func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
