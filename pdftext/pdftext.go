// Package pdftext extracts the text rows of a PDF document.
//
// Both input documents are machine-generated tables, so the extraction works
// row by row: the fragments the PDF stores for one visual row are joined, in
// reading order, into a single line that the parsers can split into columns.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// A Document is the extracted text of a PDF, one entry per page.
type Document struct {
	path  string
	pages []PageText
}

// PageText holds the text rows of one page.
type PageText struct {
	Number int // 1-based, as printed in the page footer
	Lines  []string
}

// Verbose turns the diagnostics of the underlying PDF library on or off.
// They are only useful when a document fails to parse.
func Verbose(on bool) { pdf.DebugOn = on }

// Load reads the PDF at path and extracts its text rows page by page. The
// underlying library signals malformed content by panicking, so Load turns
// that into an error the caller can report.
func Load(path string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("malformed pdf %q: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open pdf %q: %w", path, err)
	}
	defer f.Close()

	doc = &Document{path: path}
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("cannot extract text from page %d of %q: %w", n, path, err)
		}
		pt := PageText{Number: n}
		for _, row := range rows {
			pt.Lines = append(pt.Lines, joinRow(row))
		}
		doc.pages = append(doc.pages, pt)
	}
	return doc, nil
}

// joinRow reconstructs one logical line from the positioned fragments of a
// row. Fragments come in reading order; a single space keeps the table
// columns apart the way the on-page layout does.
func joinRow(row *pdf.Row) string {
	parts := make([]string, 0, len(row.Content))
	for _, word := range row.Content {
		s := strings.TrimSpace(word.S)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Pages returns the extracted pages in document order.
func (d *Document) Pages() []PageText { return d.pages }

// Text returns the whole document as newline-separated rows, the form the
// line parsers work on.
func (d *Document) Text() string {
	var b strings.Builder
	for _, p := range d.pages {
		for _, line := range p.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
