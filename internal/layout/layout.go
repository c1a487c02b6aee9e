// Package layout reconstructs lines, columns and ruled grids from positioned
// glyphs. Coordinates are PDF user space: Y grows upwards.
package layout

import (
	"math"
	"sort"
	"strings"
)

// Glyph is one positioned piece of text, usually a single character.
type Glyph struct {
	X, Y float64 // baseline origin
	W    float64 // advance width, may be 0 when the font has no metrics
	Size float64 // font size
	S    string
}

// Rule is an axis-aligned rectangle drawn on the page (cell border, line).
type Rule struct {
	X0, Y0, X1, Y1 float64 // X0 <= X1, Y0 <= Y1
}

// NewRule builds a Rule from any two opposite corners.
func NewRule(x0, y0, x1, y1 float64) Rule {
	return Rule{
		X0: math.Min(x0, x1), Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1), Y1: math.Max(y0, y1),
	}
}

// Page holds everything the extractors need from one document page.
type Page struct {
	Number int
	Glyphs []Glyph
	Rules  []Rule
}

// Options tunes the geometric heuristics. All values are in points.
type Options struct {
	RowTolerance  float64 // max baseline difference within one line
	SegmentGap    float64 // horizontal gap that splits a line into segments
	RuleTolerance float64 // snapping distance for grid edges
}

// DefaultOptions returns tolerances that suit typical A4 statements.
func DefaultOptions() Options {
	return Options{
		RowTolerance:  3,
		SegmentGap:    8,
		RuleTolerance: 2,
	}
}

// Segment is a run of glyphs on one line with no wide gap inside it.
type Segment struct {
	X0, X1 float64
	Y      float64
	Text   string
}

// Center returns the horizontal midpoint.
func (s Segment) Center() float64 { return (s.X0 + s.X1) / 2 }

// Line is one visual row of text.
type Line struct {
	Y        float64
	Segments []Segment
}

// Texts returns the segment texts in reading order.
func (l Line) Texts() []string {
	out := make([]string, len(l.Segments))
	for i, s := range l.Segments {
		out[i] = s.Text
	}
	return out
}

// Text joins the segments with single spaces.
func (l Line) Text() string { return strings.Join(l.Texts(), " ") }

// Lines groups glyphs into lines ordered top to bottom and splits every line
// into segments.
func Lines(glyphs []Glyph, opts Options) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var buckets [][]Glyph
	var anchor float64
	for _, g := range sorted {
		if len(buckets) == 0 || math.Abs(anchor-g.Y) > opts.RowTolerance {
			buckets = append(buckets, nil)
			anchor = g.Y
		}
		buckets[len(buckets)-1] = append(buckets[len(buckets)-1], g)
	}

	lines := make([]Line, 0, len(buckets))
	for _, b := range buckets {
		segs := segments(b, opts)
		if len(segs) == 0 {
			continue
		}
		lines = append(lines, Line{Y: b[0].Y, Segments: segs})
	}
	return lines
}

type segmentBuilder struct {
	seg          Segment
	text         strings.Builder
	pendingSpace bool
}

func (b *segmentBuilder) finish() Segment {
	b.seg.Text = strings.Join(strings.Fields(b.text.String()), " ")
	return b.seg
}

func segments(glyphs []Glyph, opts Options) []Segment {
	sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].X < glyphs[j].X })

	var out []Segment
	var cur *segmentBuilder
	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			if cur != nil {
				cur.pendingSpace = true
			}
			continue
		}

		gap := 0.0
		if cur != nil {
			gap = g.X - cur.seg.X1
		}
		if cur == nil || gap > opts.SegmentGap {
			if cur != nil {
				out = append(out, cur.finish())
			}
			cur = &segmentBuilder{seg: Segment{X0: g.X, X1: g.X + g.W, Y: g.Y}}
			cur.text.WriteString(g.S)
			continue
		}

		// Fonts without explicit spaces still leave a visible gap between words.
		if cur.pendingSpace || (g.Size > 0 && gap > g.Size*0.2) {
			cur.text.WriteByte(' ')
		}
		cur.pendingSpace = false
		cur.text.WriteString(g.S)
		cur.seg.X1 = math.Max(cur.seg.X1, g.X+g.W)
	}
	if cur != nil {
		out = append(out, cur.finish())
	}
	return out
}
