package extract

import (
	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
)

// TextLayout reads ruled tables page by page. A table qualifies when a
// header cell mentions "Date".
type TextLayout struct {
	opts Options
	open Opener
}

// NewTextLayout creates the text-layout strategy.
func NewTextLayout(opts Options, open Opener) *TextLayout {
	return &TextLayout{opts: opts, open: open}
}

// Kind returns KindTextLayout.
func (s *TextLayout) Kind() Kind { return KindTextLayout }

// Extract reads the document at path.
func (s *TextLayout) Extract(path string) (model.RawTable, error) {
	return run(s.Kind(), s.open, path, s.FromPages)
}

// FromPages builds the stacked table from already-read pages.
func (s *TextLayout) FromPages(pages []layout.Page) model.RawTable {
	var candidates []model.RawTable
	for _, p := range pages {
		for _, grid := range layout.Grids(p, s.opts.Layout) {
			if len(grid) <= 1 || !containsLabel(grid[0], model.ColDate) {
				continue
			}
			candidates = append(candidates, model.RawTable{Header: grid[0], Rows: grid[1:]})
		}
	}
	return model.Stack(candidates...)
}
