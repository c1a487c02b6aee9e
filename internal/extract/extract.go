// Package extract pulls raw transaction tables out of statement PDFs. Three
// interchangeable strategies read the same document with different layout
// heuristics; each returns an empty table when nothing qualifies.
package extract

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
	"github.com/cleared-dev/passbook/internal/pdfdoc"
)

// Kind names a strategy.
type Kind string

const (
	KindStructured Kind = "structured"
	KindTextLayout Kind = "text-layout"
	KindStream     Kind = "stream"
)

// Priority is the fixed order strategies are tried in, and the tie-break
// order when their results are compared.
var Priority = []Kind{KindStructured, KindTextLayout, KindStream}

// Strategy produces a RawTable from the document at path.
type Strategy interface {
	Kind() Kind
	Extract(path string) (model.RawTable, error)
}

// Document is an open, page-addressable PDF.
type Document interface {
	pdfdoc.PageSource
	Close() error
}

// Opener opens the document at path.
type Opener func(path string) (Document, error)

// OpenPDF opens path with pdfdoc.
func OpenPDF(path string) (Document, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Options tunes the strategies.
type Options struct {
	Layout          layout.Options
	MinHeaderCells  int     // structured: segments needed for a header line
	MinColumns      int     // stream: columns needed for a candidate table
	MaxWrappedLines int     // stream: single-segment lines tolerated inside a table
	MaxRowGap       float64 // stream: baseline gap, in line pitches, that ends a table
}

// DefaultOptions returns the built-in tuning.
func DefaultOptions() Options {
	return Options{
		Layout:          layout.DefaultOptions(),
		MinHeaderCells:  3,
		MinColumns:      5,
		MaxWrappedLines: 2,
		MaxRowGap:       2.5,
	}
}

// readPages opens path, reads every page and closes the document.
func readPages(open Opener, path string) ([]layout.Page, error) {
	doc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := make([]layout.Page, 0, doc.NumPages())
	for n := 1; n <= doc.NumPages(); n++ {
		p, err := doc.Page(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// run is the shared Extract body: read pages, apply fromPages, log.
func run(kind Kind, open Opener, path string, fromPages func([]layout.Page) model.RawTable) (model.RawTable, error) {
	pages, err := readPages(open, path)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("%s extraction: %w", kind, err)
	}
	t := fromPages(pages)
	log.Debug().
		Str("strategy", string(kind)).
		Int("pages", len(pages)).
		Int("rows", t.Len()).
		Msg("extracted")
	return t, nil
}

// containsLabel reports whether any cell contains sub (case-sensitive).
func containsLabel(cells []string, sub string) bool {
	for _, c := range cells {
		if strings.Contains(c, sub) {
			return true
		}
	}
	return false
}

// hasLabels reports whether every want label appears exactly among cells.
func hasLabels(cells []string, want ...string) bool {
	for _, w := range want {
		found := false
		for _, c := range cells {
			if c == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
