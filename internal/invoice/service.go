// Package invoice orchestrates the extraction pipeline: document
// validation, page text gathering, the pre-passes, the line-item scan,
// the reconciliation post-passes and item-master enrichment.
package invoice

import (
	"fmt"

	"github.com/litsol/invoicexl/internal/extract"
	"github.com/litsol/invoicexl/internal/itemmaster"
	"github.com/litsol/invoicexl/internal/pdf"
)

// Service handles invoice extraction by orchestrating the pipeline components.
type Service struct {
	validator *pdf.Validator
	supplier  string
}

// NewService creates a new extraction service.
func NewService(maxFileSize int64, supplierName string) *Service {
	return &Service{
		validator: pdf.NewValidator(maxFileSize),
		supplier:  supplierName,
	}
}

// ExtractFileRequest describes one extraction run.
type ExtractFileRequest struct {
	// Path is the invoice PDF to process.
	Path string
	// ItemMasterPath optionally points at the item reference workbook.
	ItemMasterPath string
	// Merge also produces the consolidated row set.
	Merge bool
}

// ExtractFileResult is the outcome of one extraction run.
type ExtractFileResult struct {
	Path     string
	Pages    int
	Currency string
	Rows     []extract.Row
	// Merged is nil unless requested.
	Merged []extract.Row
	Totals extract.Totals
	// Warnings carries recoverable problems (e.g. missing item master)
	// that the caller should surface to the user.
	Warnings []string
}

// ExtractFile runs the full pipeline over one invoice document.
// Malformed data inside a readable document degrades gracefully; only
// inability to read the document itself returns an error.
func (s *Service) ExtractFile(req ExtractFileRequest) (*ExtractFileResult, error) {
	if err := s.validator.ValidateFile(req.Path); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}

	doc, err := pdf.Open(req.Path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := make([]extract.Page, 0, doc.PageCount())
	for _, p := range doc.AllPages() {
		pages = append(pages, extract.Page{Number: p.Number, Lines: p.Lines})
	}

	return s.extractPages(pages, req), nil
}

// extractPages runs the pipeline over already-gathered page text: the
// pre-passes, the scan, weight allocation, item-master enrichment,
// totals and the optional merge.
func (s *Service) extractPages(pages []extract.Page, req ExtractFileRequest) *ExtractFileResult {
	result := &ExtractFileResult{
		Path:  req.Path,
		Pages: len(pages),
	}

	weightIndex := extract.BuildWeightIndex(pages)
	result.Currency = extract.DetectCurrency(pages)

	rows := extract.Scan(pages, weightIndex, result.Currency, s.supplier)
	extract.AllocateWeights(rows, weightIndex)

	if req.ItemMasterPath != "" {
		table, err := itemmaster.Load(req.ItemMasterPath)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("item master unavailable, enrichment columns left empty: %v", err))
		} else {
			enrichRows(rows, table)
		}
	}

	result.Rows = rows
	result.Totals = extract.SumTotals(rows)

	if req.Merge {
		result.Merged = extract.MergeRows(rows)
	}

	return result
}

// enrichRows fills the catalog columns from the reference table. The
// description override applies only when the table carries one.
func enrichRows(rows []extract.Row, table *itemmaster.Table) {
	for i := range rows {
		item, ok := table.Lookup(rows[i].ItemCode)
		if !ok {
			continue
		}
		rows[i].FigureNumber = item.FigureNumber
		rows[i].Size = item.Size
		rows[i].ProductCategory = item.ProductCategory
		rows[i].Origin = item.Origin
		if item.Description != "" {
			rows[i].Description = item.Description
		}
	}
}
