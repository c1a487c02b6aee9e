package model

import "strings"

// RawTable is tabular data as pulled out of a document, before normalization.
// Rows may be ragged; a missing cell reads as "".
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t RawTable) Len() int { return len(t.Rows) }

// Cell returns row[col], or "" when the row is too short.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// DropUnnamed removes columns whose label is blank and every repeat of a
// label already seen.
func (t RawTable) DropUnnamed() RawTable {
	seen := make(map[string]bool, len(t.Header))
	var keep []int
	for i, h := range t.Header {
		label := strings.TrimSpace(h)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		keep = append(keep, i)
	}

	out := RawTable{Header: make([]string, len(keep))}
	for i, col := range keep {
		out.Header[i] = t.Header[col]
	}
	for _, row := range t.Rows {
		r := make([]string, len(keep))
		for i, col := range keep {
			r[i] = Cell(row, col)
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// columnKey distinguishes the n-th occurrence of a label within one table.
type columnKey struct {
	label string
	nth   int
}

// Stack concatenates tables in order, aligning columns by label. The result
// header is the union of labels in first-seen order; cells for columns a
// table lacks are "".
func Stack(tables ...RawTable) RawTable {
	var out RawTable
	index := make(map[columnKey]int)

	for _, t := range tables {
		counts := make(map[string]int)
		mapping := make([]int, len(t.Header))
		for i, h := range t.Header {
			key := columnKey{label: h, nth: counts[h]}
			counts[h]++
			col, ok := index[key]
			if !ok {
				col = len(out.Header)
				index[key] = col
				out.Header = append(out.Header, h)
			}
			mapping[i] = col
		}

		for _, row := range t.Rows {
			r := make([]string, len(out.Header))
			for i, col := range mapping {
				r[col] = Cell(row, i)
			}
			out.Rows = append(out.Rows, r)
		}
	}

	// Earlier rows were sized before later tables added columns.
	for i, row := range out.Rows {
		if len(row) < len(out.Header) {
			padded := make([]string, len(out.Header))
			copy(padded, row)
			out.Rows[i] = padded
		}
	}
	return out
}
