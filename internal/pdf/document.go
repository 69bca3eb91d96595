package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageText holds the ordered text lines of a single page.
type PageText struct {
	Number int // 1-based page number
	Lines  []string
}

// Document provides per-page text access to an opened PDF file.
type Document struct {
	file   *os.File
	reader *pdf.Reader
	path   string
}

// Open opens the PDF at path for text extraction. Failure to open or
// parse the document is fatal for that document; callers should not
// expect partial output afterwards.
func Open(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Document{file: f, reader: reader, path: path}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// PageLines returns the ordered text lines of the given 1-based page.
// Blank or scanned pages yield an empty slice and no error, so callers
// can skip them without special handling.
func (d *Document) PageLines(pageNum int) ([]string, error) {
	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, d.reader.NumPage())
	}
	return d.pageLines(pageNum), nil
}

// AllPages extracts text lines for every page in page order. Pages that
// fail to extract are included with no lines rather than aborting the
// document.
func (d *Document) AllPages() []PageText {
	pages := make([]PageText, 0, d.reader.NumPage())
	for pageNum := 1; pageNum <= d.reader.NumPage(); pageNum++ {
		pages = append(pages, PageText{
			Number: pageNum,
			Lines:  d.pageLines(pageNum),
		})
	}
	return pages
}

// pageLines extracts the text rows of one page, top to bottom, each row
// joined into a single line. Extraction panics inside the PDF library
// are treated as "no text on this page".
func (d *Document) pageLines(pageNum int) (lines []string) {
	defer func() {
		if recover() != nil {
			lines = nil
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil
	}

	for _, row := range rows {
		var builder strings.Builder
		for _, word := range row.Content {
			if builder.Len() > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(word.S)
		}
		if line := strings.TrimSpace(builder.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
