package extract

import (
	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
)

// Structured reads header-anchored tables. Any line of at least
// MinHeaderCells segments that carries both a "Date" and a "Description"
// label starts a table; its segments anchor the columns of every following
// line up to the next such header or the end of the page.
type Structured struct {
	opts Options
	open Opener
}

// NewStructured creates the structured-table strategy.
func NewStructured(opts Options, open Opener) *Structured {
	return &Structured{opts: opts, open: open}
}

// Kind returns KindStructured.
func (s *Structured) Kind() Kind { return KindStructured }

// Extract reads the document at path.
func (s *Structured) Extract(path string) (model.RawTable, error) {
	return run(s.Kind(), s.open, path, s.FromPages)
}

// FromPages builds the stacked table from already-read pages.
func (s *Structured) FromPages(pages []layout.Page) model.RawTable {
	var candidates []model.RawTable
	for _, p := range pages {
		var cur *model.RawTable
		var anchors []layout.Segment
		for _, l := range layout.Lines(p.Glyphs, s.opts.Layout) {
			if s.isHeader(l) {
				if cur != nil {
					candidates = append(candidates, *cur)
				}
				cur = &model.RawTable{Header: l.Texts()}
				anchors = l.Segments
				continue
			}
			if cur != nil {
				cur.Rows = append(cur.Rows, layout.AssignByAnchors(l, anchors))
			}
		}
		if cur != nil {
			candidates = append(candidates, *cur)
		}
	}

	if len(candidates) == 0 {
		return model.RawTable{}
	}
	return model.Stack(candidates...).DropUnnamed()
}

func (s *Structured) isHeader(l layout.Line) bool {
	return len(l.Segments) >= s.opts.MinHeaderCells &&
		hasLabels(l.Texts(), model.ColDate, model.ColDescription)
}
