// Package pdftest renders small bank-statement PDFs for tests.
package pdftest

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	left      = 40.0
	colWidth  = 120.0
	rowHeight = 16.0
	fontSize  = 9.0
)

// Table is a block of cells drawn at fixed column positions.
type Table struct {
	Header []string // drawn as the first row; may be nil
	Rows   [][]string
	Ruled  bool // draw a rectangle around every cell
}

// Page is one statement page: free text lines followed by tables.
type Page struct {
	Lines  []string
	Tables []Table
}

// ColumnX returns the left edge of column i in points.
func ColumnX(i int) float64 { return left + float64(i)*colWidth }

// Write renders pages into a PDF at path.
func Write(path string, pages ...Page) error {
	doc := gofpdf.New("L", "pt", "A4", "")
	doc.SetCompression(false)

	for _, p := range pages {
		doc.AddPage()
		doc.SetFont("Helvetica", "", fontSize)

		y := 40.0
		for _, line := range p.Lines {
			doc.Text(left, y, line)
			y += rowHeight
		}
		y += rowHeight

		for _, t := range p.Tables {
			y = drawTable(doc, t, y) + rowHeight*2
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing test pdf: %w", err)
	}
	return nil
}

func drawTable(doc *gofpdf.Fpdf, t Table, y float64) float64 {
	var rows [][]string
	if t.Header != nil {
		rows = append(rows, t.Header)
	}
	rows = append(rows, t.Rows...)

	for _, row := range rows {
		for i, cell := range row {
			if t.Ruled {
				doc.SetXY(ColumnX(i), y)
				doc.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
				continue
			}
			if cell != "" {
				doc.Text(ColumnX(i)+2, y+11, cell)
			}
		}
		y += rowHeight
	}
	return y
}
