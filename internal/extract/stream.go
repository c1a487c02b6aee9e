package extract

import (
	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
)

// spanTolerance merges column extents that nearly touch.
const spanTolerance = 1.0

// Stream reads whitespace-separated tables: blocks of multi-segment lines
// whose columns follow the text edges. A block ends at a vertical gap wider
// than MaxRowGap line pitches. A block qualifies when it has enough
// columns and its first row mentions "Date"; that row becomes the header.
type Stream struct {
	opts Options
	open Opener
}

// NewStream creates the stream strategy.
func NewStream(opts Options, open Opener) *Stream {
	return &Stream{opts: opts, open: open}
}

// Kind returns KindStream.
func (s *Stream) Kind() Kind { return KindStream }

// Extract reads the document at path.
func (s *Stream) Extract(path string) (model.RawTable, error) {
	return run(s.Kind(), s.open, path, s.FromPages)
}

// FromPages builds the stacked table from already-read pages.
func (s *Stream) FromPages(pages []layout.Page) model.RawTable {
	var candidates []model.RawTable
	for _, p := range pages {
		lines := layout.Lines(p.Glyphs, s.opts.Layout)
		maxGap := layout.Pitch(lines) * s.opts.MaxRowGap
		for _, block := range layout.Runs(lines, 2, s.opts.MaxWrappedLines, maxGap) {
			var tabular []layout.Line
			for _, l := range block {
				if len(l.Segments) >= 2 {
					tabular = append(tabular, l)
				}
			}
			spans := layout.TextEdgeColumns(tabular, spanTolerance)
			if len(spans) < s.opts.MinColumns {
				continue
			}

			rows := make([][]string, 0, len(block))
			for _, l := range block {
				rows = append(rows, layout.AssignBySpans(l, spans))
			}
			if !containsLabel(rows[0], model.ColDate) {
				continue
			}
			candidates = append(candidates, model.RawTable{Header: rows[0], Rows: rows[1:]})
		}
	}
	return model.Stack(candidates...)
}
