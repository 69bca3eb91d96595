// Package export renders extracted line items to an XLSX workbook. Each
// sheet carries a totals row, then the header row, then the data rows.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/litsol/invoicexl/internal/extract"
)

// RawSheetName is the sheet holding the extracted rows as scanned.
const RawSheetName = "Invoice"

// MergedSheetName is the sheet holding the consolidated rows.
const MergedSheetName = "Merged"

var rawHeader = []string{
	"Inv No.", "Inv Date", "Supplier Name", "Order confirmation number",
	"PO No", "PO Date", "ItemCode", "Item Desc", "Figure No", "Size",
	"Lot No", "Product Category", "Origin", "Currency", "Qty", "Price",
	"Discount", "Amount", "VAT", "HSCode", "Unit Weight", "Total Weight",
}

// mergedHeader drops the order confirmation column; merged rows span
// confirmations.
var mergedHeader = []string{
	"Inv No.", "Inv Date", "Supplier Name",
	"PO No", "PO Date", "ItemCode", "Item Desc", "Figure No", "Size",
	"Lot No", "Product Category", "Origin", "Currency", "Qty", "Price",
	"Discount", "Amount", "VAT", "HSCode", "Unit Weight", "Total Weight",
}

// WriteWorkbook writes the raw rows (and, when non-nil, the merged
// rows) to an XLSX workbook at path.
func WriteWorkbook(path string, rows, merged []extract.Row, totals extract.Totals) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RawSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := writeSheet(f, RawSheetName, rawHeader, rawCells, rows, totals); err != nil {
		return err
	}

	if merged != nil {
		if _, err := f.NewSheet(MergedSheetName); err != nil {
			return fmt.Errorf("failed to create merged sheet: %w", err)
		}
		if err := writeSheet(f, MergedSheetName, mergedHeader, mergedCells, merged, totals); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheet lays out one sheet: totals on row 1, header on row 2, data
// from row 3.
func writeSheet(f *excelize.File, sheet string, header []string,
	cells func(extract.Row) []any, rows []extract.Row, totals extract.Totals,
) error {
	totalsRow := make([]any, len(header))
	totalsRow[0] = "TOTALS"
	for col, name := range header {
		switch name {
		case "Qty":
			totalsRow[col] = totals.Quantity
		case "Amount":
			totalsRow[col] = totals.Amount
		case "Total Weight":
			totalsRow[col] = totals.TotalWeight
		}
	}
	if err := setRow(f, sheet, 1, totalsRow); err != nil {
		return err
	}

	headerRow := make([]any, len(header))
	for col, name := range header {
		headerRow[col] = name
	}
	if err := setRow(f, sheet, 2, headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		if err := setRow(f, sheet, 3+i, cells(row)); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes one row of values starting at column A.
func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", rowNum, sheet, err)
	}
	return nil
}

// rawCells lays out one extracted row in the raw column order.
func rawCells(r extract.Row) []any {
	return []any{
		r.InvoiceNumber, r.InvoiceDate, r.SupplierName, r.OrderConfirmation,
		r.PONumber, r.PODate, r.ItemCode, r.Description, r.FigureNumber, r.Size,
		r.LotNumber, r.ProductCategory, r.Origin, r.Currency, r.Quantity, r.Price,
		r.Discount, r.Amount, r.VAT, r.HSCode, r.UnitWeight, r.TotalWeight,
	}
}

// mergedCells lays out one consolidated row, without the order
// confirmation column.
func mergedCells(r extract.Row) []any {
	return []any{
		r.InvoiceNumber, r.InvoiceDate, r.SupplierName,
		r.PONumber, r.PODate, r.ItemCode, r.Description, r.FigureNumber, r.Size,
		r.LotNumber, r.ProductCategory, r.Origin, r.Currency, r.Quantity, r.Price,
		r.Discount, r.Amount, r.VAT, r.HSCode, r.UnitWeight, r.TotalWeight,
	}
}
