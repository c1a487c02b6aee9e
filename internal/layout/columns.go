package layout

import (
	"math"
	"sort"
	"strings"
)

// AssignByAnchors distributes a line's segments over the columns defined by
// anchors (usually the header segments). Column boundaries sit halfway
// between neighbouring anchors.
func AssignByAnchors(line Line, anchors []Segment) []string {
	bounds := make([]float64, 0, len(anchors))
	for i := 0; i+1 < len(anchors); i++ {
		bounds = append(bounds, (anchors[i].X1+anchors[i+1].X0)/2)
	}

	cells := make([][]string, len(anchors))
	for _, s := range line.Segments {
		col := sort.SearchFloat64s(bounds, s.Center())
		if col >= len(cells) {
			col = len(cells) - 1
		}
		cells[col] = append(cells[col], s.Text)
	}
	return joinCells(cells)
}

// Span is a horizontal column extent.
type Span struct {
	X0, X1 float64
}

// TextEdgeColumns derives column spans by merging the horizontal extents of
// every segment; spans closer than tol are merged.
func TextEdgeColumns(lines []Line, tol float64) []Span {
	var spans []Span
	for _, l := range lines {
		for _, s := range l.Segments {
			spans = append(spans, Span{X0: s.X0, X1: s.X1})
		}
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].X0 < spans[j].X0 })

	merged := []Span{spans[0]}
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.X0 <= last.X1+tol {
			last.X1 = math.Max(last.X1, sp.X1)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// AssignBySpans distributes a line's segments over spans. A segment belongs
// to the span containing its left edge, or to the nearest span.
func AssignBySpans(line Line, spans []Span) []string {
	cells := make([][]string, len(spans))
	if len(spans) == 0 {
		return nil
	}
	for _, s := range line.Segments {
		best, bestDist := 0, math.Inf(1)
		for i, sp := range spans {
			var d float64
			switch {
			case s.X0 < sp.X0:
				d = sp.X0 - s.X0
			case s.X0 > sp.X1:
				d = s.X0 - sp.X1
			}
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		cells[best] = append(cells[best], s.Text)
	}
	return joinCells(cells)
}

// Runs splits lines into blocks of multi-segment lines. Up to maxSingle
// consecutive single-segment lines (wrapped text) may sit inside a block;
// leading and trailing ones are not part of it. A baseline gap wider than
// maxGap also ends a block; maxGap <= 0 disables that check.
func Runs(lines []Line, minSegments, maxSingle int, maxGap float64) [][]Line {
	var runs [][]Line
	var cur, pending []Line
	flush := func() {
		if len(cur) > 0 {
			runs = append(runs, cur)
		}
		cur, pending = nil, nil
	}

	for _, l := range lines {
		if len(cur) > 0 && maxGap > 0 {
			prev := cur[len(cur)-1]
			if len(pending) > 0 {
				prev = pending[len(pending)-1]
			}
			if prev.Y-l.Y > maxGap {
				flush()
			}
		}
		if len(l.Segments) >= minSegments {
			cur = append(cur, pending...)
			cur = append(cur, l)
			pending = nil
			continue
		}
		if len(cur) == 0 {
			continue
		}
		pending = append(pending, l)
		if len(pending) > maxSingle {
			flush()
		}
	}
	flush()
	return runs
}

// Pitch returns the median baseline distance between consecutive lines,
// or 0 when there are fewer than two lines.
func Pitch(lines []Line) float64 {
	var gaps []float64
	for i := 1; i < len(lines); i++ {
		if d := lines[i-1].Y - lines[i].Y; d > 0 {
			gaps = append(gaps, d)
		}
	}
	if len(gaps) == 0 {
		return 0
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}

func joinCells(cells [][]string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.Join(c, " ")
	}
	return out
}
