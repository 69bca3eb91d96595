package invoice

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/litsol/invoicexl/internal/extract"
	"github.com/litsol/invoicexl/internal/itemmaster"
)

const testSupplier = "VIR VALVOINDUSTRIA ING. RIZZIO S.P.A."

// fixturePages is a two-page document with sticky context, two
// transactions sharing one HS code, a weight summary row and a total
// amount marker.
func fixturePages() []extract.Page {
	return []extract.Page{
		{Number: 1, Lines: []string{
			"INVOICE N. FATTURA 1234/AB/001 DATE 15/03/24",
			"OC12345678 ORDER CONFIRMATION",
			"REF PO-9988 12/01/24",
			"H.S 84818019",
			"F0900B032.2683 VALVE BALL PZ 10 25,50 255,00",
			"KIT200 SPARE KIT PZ 2 5,00 10,00",
		}},
		{Number: 2, Lines: []string{
			"84818019 12,00 265,00",
			"TOTAL AMOUNT USD 265,00",
		}},
	}
}

// writeItemMaster builds a reference workbook in a temp dir.
func writeItemMaster(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "items.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestService_ExtractPages(t *testing.T) {
	service := NewService(1024*1024, testSupplier)

	result := service.extractPages(fixturePages(), ExtractFileRequest{Path: "fixture.pdf"})

	require.Len(t, result.Rows, 2)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, "USD", result.Currency)
	assert.Empty(t, result.Warnings)
	assert.Nil(t, result.Merged)

	first := result.Rows[0]
	assert.Equal(t, "1234/AB/001", first.InvoiceNumber)
	assert.Equal(t, testSupplier, first.SupplierName)
	assert.Equal(t, "F0900B032.2683", first.ItemCode)
	assert.Equal(t, "84818019", first.HSCode)

	// 12kg over 12 units across both rows.
	assert.Equal(t, 1.0, first.UnitWeight)
	assert.Equal(t, 10.0, first.TotalWeight)
	assert.Equal(t, 2.0, result.Rows[1].TotalWeight)

	assert.Equal(t, 12.0, result.Totals.Quantity)
	assert.Equal(t, 265.0, result.Totals.Amount)
	assert.Equal(t, 12.0, result.Totals.TotalWeight)
}

func TestService_ExtractPages_Enrichment(t *testing.T) {
	itemsPath := writeItemMaster(t, [][]any{
		{"Item Code", "Figure No", "Size", "Product Category", "Origin", "Description"},
		{"F0900B032.2683", "9001", "1/2\"", "Ball Valves", "IT", ""},
		{"KIT200", "9002", "DN50", "Spare Kits", "IT", "REPAIR KIT"},
	})

	service := NewService(1024*1024, testSupplier)
	result := service.extractPages(fixturePages(), ExtractFileRequest{
		Path:           "fixture.pdf",
		ItemMasterPath: itemsPath,
	})

	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Warnings)

	first := result.Rows[0]
	assert.Equal(t, "9001", first.FigureNumber)
	assert.Equal(t, "Ball Valves", first.ProductCategory)
	// Empty override keeps the extracted description.
	assert.Equal(t, "VALVE BALL", first.Description)

	second := result.Rows[1]
	assert.Equal(t, "9002", second.FigureNumber)
	assert.Equal(t, "REPAIR KIT", second.Description)
}

func TestService_ExtractPages_MissingItemMasterWarns(t *testing.T) {
	service := NewService(1024*1024, testSupplier)

	result := service.extractPages(fixturePages(), ExtractFileRequest{
		Path:           "fixture.pdf",
		ItemMasterPath: filepath.Join(t.TempDir(), "missing.xlsx"),
	})

	// Enrichment failure degrades to a warning; the rows still come out,
	// with the catalog columns left empty.
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "item master unavailable")
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Rows[0].FigureNumber)
	assert.Equal(t, "VALVE BALL", result.Rows[0].Description)
}

func TestService_ExtractPages_Merge(t *testing.T) {
	pages := []extract.Page{
		{Number: 1, Lines: []string{
			"REF PO-9988 12/01/24",
			"KIT200 FIRST BATCH PZ 1 5,00 5,00",
			"KIT200 SECOND BATCH PZ 2 5,00 10,00",
		}},
	}

	service := NewService(1024*1024, testSupplier)
	result := service.extractPages(pages, ExtractFileRequest{Path: "fixture.pdf", Merge: true})

	require.Len(t, result.Rows, 2)
	require.Len(t, result.Merged, 1)
	assert.Equal(t, 3.0, result.Merged[0].Quantity)
	assert.Equal(t, 15.0, result.Merged[0].Amount)
	assert.Equal(t, "FIRST BATCH", result.Merged[0].Description)
}

func TestEnrichRows(t *testing.T) {
	itemsPath := writeItemMaster(t, [][]any{
		{"Item Code", "Figure No", "Size", "Product Category", "Origin", "Description"},
		{"F0900B032.2683", "9001", "1/2\"", "Ball Valves", "IT", ""},
		{"KIT200", "9002", "DN50", "Spare Kits", "IT", "REPAIR KIT"},
	})
	table, err := itemmaster.Load(itemsPath)
	require.NoError(t, err)

	rows := []extract.Row{
		{ItemCode: "F0900B032.2683", Description: "VALVE BALL"},
		{ItemCode: "KIT200", Description: "SPARE KIT"},
		{ItemCode: "UNKNOWN99", Description: "UNLISTED"},
	}

	enrichRows(rows, table)

	// Catalog fields always apply; the description only when the table
	// carries a non-empty override.
	assert.Equal(t, "9001", rows[0].FigureNumber)
	assert.Equal(t, "IT", rows[0].Origin)
	assert.Equal(t, "VALVE BALL", rows[0].Description)

	assert.Equal(t, "REPAIR KIT", rows[1].Description)
	assert.Equal(t, "DN50", rows[1].Size)

	assert.Empty(t, rows[2].FigureNumber)
	assert.Equal(t, "UNLISTED", rows[2].Description)
}

func TestService_ExtractFile_UnreadableDocument(t *testing.T) {
	service := NewService(1024*1024, testSupplier)

	_, err := service.ExtractFile(ExtractFileRequest{
		Path: filepath.Join(t.TempDir(), "missing.pdf"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document validation failed")
}
