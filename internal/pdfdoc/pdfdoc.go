// Package pdfdoc reads positioned text and rules out of PDF files.
package pdfdoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/cleared-dev/passbook/internal/layout"
)

// Document is an open PDF. Close must be called when done.
type Document struct {
	path string
	file *os.File
	r    *pdf.Reader
}

// Open opens the PDF at path.
func Open(path string) (doc *Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, fmt.Errorf("opening pdf %s: %v", path, rec)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	return &Document{path: path, file: f, r: r}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// NumPages returns the page count.
func (d *Document) NumPages() int { return d.r.NumPage() }

// Page returns glyphs and rectangles of page n (1-based). The PDF library
// panics on malformed content streams; those panics come back as errors.
func (d *Document) Page(n int) (page layout.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			page, err = layout.Page{}, fmt.Errorf("reading page %d of %s: %v", n, d.path, rec)
		}
	}()

	page.Number = n
	p := d.r.Page(n)
	if p.V.IsNull() {
		return page, nil
	}

	content := p.Content()
	page.Glyphs = make([]layout.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		page.Glyphs = append(page.Glyphs, layout.Glyph{X: t.X, Y: t.Y, W: t.W, Size: t.FontSize, S: t.S})
	}
	for _, r := range content.Rect {
		page.Rules = append(page.Rules, layout.NewRule(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y))
	}
	return page, nil
}

// PageSource is the read side of a Document.
type PageSource interface {
	NumPages() int
	Page(n int) (layout.Page, error)
}

// Text returns the text of the first maxPages pages, one line per visual
// row. maxPages <= 0 reads every page.
func Text(src PageSource, maxPages int, opts layout.Options) (string, error) {
	n := src.NumPages()
	if maxPages > 0 && maxPages < n {
		n = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		page, err := src.Page(i)
		if err != nil {
			return "", err
		}
		for _, l := range layout.Lines(page.Glyphs, opts) {
			sb.WriteString(l.Text())
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
